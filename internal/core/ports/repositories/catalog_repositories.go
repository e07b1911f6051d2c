package repositories

import (
	"context"

	"github.com/kmateev/biz_admin_app/internal/core/domain"
)

// CategoryRepository defines persistence operations for product categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, c domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, c domain.Category) error
	// DeleteCategory returns apperrors.ErrConflict while products still
	// reference the category.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// ProductRepository defines persistence operations for products and their
// price options. Price options are replaced wholesale on every save.
type ProductRepository interface {
	SaveProduct(ctx context.Context, p domain.Product) error
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, categoryID string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, p domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}
