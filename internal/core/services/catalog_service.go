package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kmateev/biz_admin_app/internal/core/domain"
	portsrepo "github.com/kmateev/biz_admin_app/internal/core/ports/repositories"
	"github.com/kmateev/biz_admin_app/internal/dto"
)

// CatalogService manages product categories, products and price options.
type CatalogService struct {
	categoryRepo portsrepo.CategoryRepository
	productRepo  portsrepo.ProductRepository
}

func NewCatalogService(categoryRepo portsrepo.CategoryRepository, productRepo portsrepo.ProductRepository) *CatalogService {
	return &CatalogService{categoryRepo: categoryRepo, productRepo: productRepo}
}

func (s *CatalogService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	now := time.Now()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CatalogService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	category.Touch(updaterUserID, time.Now())

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory fails with ErrConflict while products still reference it.
func (s *CatalogService) DeleteCategory(ctx context.Context, categoryID string) error {
	return s.categoryRepo.DeleteCategory(ctx, categoryID)
}

func buildPriceOptions(productID string, reqs []dto.PriceOptionRequest) []domain.PriceOption {
	options := make([]domain.PriceOption, 0, len(reqs))
	for _, or := range reqs {
		options = append(options, domain.PriceOption{
			PriceOptionID: uuid.NewString(),
			ProductID:     productID,
			Label:         or.Label,
			Price:         or.Price,
		})
	}
	return options
}

func (s *CatalogService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	productID := uuid.NewString()
	product := domain.Product{
		ProductID:    productID,
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		IsActive:     true,
		PriceOptions: buildPriceOptions(productID, req.PriceOptions),
		AuditFields:  domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *CatalogService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

func (s *CatalogService) ListProducts(ctx context.Context, categoryID string) ([]domain.Product, error) {
	return s.productRepo.ListProducts(ctx, categoryID)
}

// UpdateProduct applies field changes; a non-nil PriceOptions slice replaces
// the stored option set wholesale.
func (s *CatalogService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.PriceOptions != nil {
		product.PriceOptions = buildPriceOptions(productID, req.PriceOptions)
	}
	product.Touch(updaterUserID, time.Now())

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, productID string) error {
	return s.productRepo.DeleteProduct(ctx, productID)
}
