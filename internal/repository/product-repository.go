package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Godson70118993/Backend-produit/internal/domain"
)

// ProductRepository implements the product storage operations. Every method
// takes the request-scoped session as an explicit argument; the repository
// itself holds no connection state.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// GetByID returns the product with the given id, or domain.ErrProductNotFound.
func (r *ProductRepository) GetByID(db *gorm.DB, id uint) (*domain.Product, error) {
	var product domain.Product
	err := db.First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("error getting product: %w", err)
	}
	return &product, nil
}

// List returns up to limit products in creation order, skipping the first skip.
func (r *ProductRepository) List(db *gorm.DB, skip, limit int) ([]domain.Product, error) {
	products := []domain.Product{}
	err := db.Order("id").Offset(skip).Limit(limit).Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	return products, nil
}

// Create persists a new product and returns it with its assigned id.
func (r *ProductRepository) Create(db *gorm.DB, in domain.ProductInput) (*domain.Product, error) {
	product := domain.Product{
		Name:        *in.Name,
		Description: in.DescriptionOrEmpty(),
		Price:       *in.Price,
	}
	if err := db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("error creating product: %w", err)
	}
	return &product, nil
}

// Update overwrites all mutable fields of the product with the given id.
// Lookup and write happen in one transaction; an absent id writes nothing.
func (r *ProductRepository) Update(db *gorm.DB, id uint, in domain.ProductInput) (*domain.Product, error) {
	var product domain.Product
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProductNotFound
			}
			return fmt.Errorf("error getting product: %w", err)
		}

		product.Name = *in.Name
		product.Description = in.DescriptionOrEmpty()
		product.Price = *in.Price

		if err := tx.Save(&product).Error; err != nil {
			return fmt.Errorf("error updating product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes the product with the given id. Returns false when no row
// matched. Hard delete, no tombstone.
func (r *ProductRepository) Delete(db *gorm.DB, id uint) (bool, error) {
	result := db.Delete(&domain.Product{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("error deleting product: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
