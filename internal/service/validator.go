package service

import (
	"errors"

	"github.com/Godson70118993/Backend-produit/internal/domain"
)

// Custom error types for better error handling
var (
	ErrMissingName  = errors.New("field name is required")
	ErrMissingPrice = errors.New("field price is required")
)

// ValidateProduct checks that the required fields of a product body are
// present. Description is optional. Type errors never reach this point: they
// fail JSON decoding first.
func ValidateProduct(in domain.ProductInput) error {
	if in.Name == nil {
		return ErrMissingName
	}
	if in.Price == nil {
		return ErrMissingPrice
	}
	return nil
}
