package dto

import "github.com/shopspring/decimal"

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// PriceOptionRequest is one price variant of a product payload.
type PriceOptionRequest struct {
	Label string          `json:"label" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

// CreateProductRequest defines the data needed to create a product. The
// price options provided here become the product's full option set.
type CreateProductRequest struct {
	CategoryID   string               `json:"categoryID" binding:"required"`
	Name         string               `json:"name" binding:"required"`
	Description  string               `json:"description"`
	ImageURL     string               `json:"imageURL"`
	PriceOptions []PriceOptionRequest `json:"priceOptions" binding:"dive"`
}

// UpdateProductRequest defines the data allowed for updating a product.
// A non-nil PriceOptions slice replaces the stored option set wholesale.
type UpdateProductRequest struct {
	CategoryID   *string              `json:"categoryID"`
	Name         *string              `json:"name"`
	Description  *string              `json:"description"`
	ImageURL     *string              `json:"imageURL"`
	IsActive     *bool                `json:"isActive"`
	PriceOptions []PriceOptionRequest `json:"priceOptions" binding:"omitempty,dive"`
}
