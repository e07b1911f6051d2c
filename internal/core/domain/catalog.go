package domain

import "github.com/shopspring/decimal"

// Category is a product grouping.
type Category struct {
	CategoryID  string `json:"categoryID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}

// Product is a catalog item belonging to a category.
type Product struct {
	ProductID   string        `json:"productID"`
	CategoryID  string        `json:"categoryID"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	ImageURL    string        `json:"imageURL"`
	IsActive    bool          `json:"isActive"`
	PriceOptions []PriceOption `json:"priceOptions,omitempty"`
	AuditFields
}

// PriceOption is a named price variant of a product (e.g. pack sizes).
// The set is replaced wholesale whenever the product is saved.
type PriceOption struct {
	PriceOptionID string          `json:"priceOptionID"`
	ProductID     string          `json:"productID"`
	Label         string          `json:"label"`
	Price         decimal.Decimal `json:"price"`
}
