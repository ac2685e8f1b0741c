package domain

import "errors"

// ErrProductNotFound is returned when a lookup by id matches no row.
var ErrProductNotFound = errors.New("product not found")

// Product is the persisted catalog entity.
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"index"`
	Description string  `json:"description" gorm:"index"`
	Price       float64 `json:"price"`
}

func (Product) TableName() string {
	return "products"
}

// ProductInput is the request body shared by create and update.
// Pointer fields distinguish an absent field from a zero value.
type ProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// DescriptionOrEmpty returns the description, defaulting to "" when omitted.
func (in ProductInput) DescriptionOrEmpty() string {
	if in.Description == nil {
		return ""
	}
	return *in.Description
}
