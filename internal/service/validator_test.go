package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Godson70118993/Backend-produit/internal/domain"
)

func TestValidateProduct(t *testing.T) {
	name := "Widget"
	description := "small"
	price := 9.99

	valid := domain.ProductInput{Name: &name, Description: &description, Price: &price}
	assert.NoError(t, ValidateProduct(valid))

	// description is optional
	assert.NoError(t, ValidateProduct(domain.ProductInput{Name: &name, Price: &price}))

	assert.ErrorIs(t, ValidateProduct(domain.ProductInput{Price: &price}), ErrMissingName)
	assert.ErrorIs(t, ValidateProduct(domain.ProductInput{Name: &name}), ErrMissingPrice)
	assert.ErrorIs(t, ValidateProduct(domain.ProductInput{}), ErrMissingName)
}

func TestValidateProductZeroValues(t *testing.T) {
	// present-but-zero fields are valid; only absence fails
	name := ""
	price := 0.0
	assert.NoError(t, ValidateProduct(domain.ProductInput{Name: &name, Price: &price}))
}
