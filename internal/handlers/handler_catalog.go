package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kmateev/biz_admin_app/internal/core/services"
	"github.com/kmateev/biz_admin_app/internal/dto"
	"github.com/kmateev/biz_admin_app/pkg/response"
)

type catalogHandler struct {
	catalogService *services.CatalogService
}

func newCatalogHandler(catalogService *services.CatalogService) *catalogHandler {
	return &catalogHandler{catalogService: catalogService}
}

// registerCatalogRoutes registers routes related to the product catalog.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService *services.CatalogService) {
	h := newCatalogHandler(catalogService)
	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:categoryID", h.getCategory)
		categories.PUT("/:categoryID", h.updateCategory)
		categories.DELETE("/:categoryID", h.deleteCategory)
	}
	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:productID", h.getProduct)
		products.PUT("/:productID", h.updateProduct)
		products.DELETE("/:productID", h.deleteProduct)
	}
}

// createCategory godoc
// @Summary      Create a product category
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        category  body      dto.CreateCategoryRequest  true  "Category details"
// @Success      201       {object}  response.Envelope{data=domain.Category}
// @Failure      400       {object}  response.Envelope
// @Security     BearerAuth
// @Router       /catalog/categories [post]
func (h *catalogHandler) createCategory(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateCategoryRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	category, err := h.catalogService.CreateCategory(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create category")
		return
	}

	response.OK(c, http.StatusCreated, category)
}

// listCategories godoc
// @Summary      List product categories
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  response.Envelope{data=[]domain.Category}
// @Security     BearerAuth
// @Router       /catalog/categories [get]
func (h *catalogHandler) listCategories(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	categories, err := h.catalogService.ListCategories(ctx)
	if err != nil {
		respondServiceError(c, logger, err, "list categories")
		return
	}

	response.OK(c, http.StatusOK, categories)
}

// getCategory godoc
// @Summary      Get a category by ID
// @Tags         Catalog
// @Produce      json
// @Param        categoryID  path      string  true  "Category ID"
// @Success      200         {object}  response.Envelope{data=domain.Category}
// @Failure      404         {object}  response.Envelope
// @Security     BearerAuth
// @Router       /catalog/categories/{categoryID} [get]
func (h *catalogHandler) getCategory(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	category, err := h.catalogService.GetCategoryByID(ctx, c.Param("categoryID"))
	if err != nil {
		respondServiceError(c, logger, err, "get category")
		return
	}

	response.OK(c, http.StatusOK, category)
}

// updateCategory godoc
// @Summary      Update a category
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        categoryID  path      string                     true  "Category ID"
// @Param        category    body      dto.UpdateCategoryRequest  true  "Fields to update"
// @Success      200         {object}  response.Envelope{data=domain.Category}
// @Failure      404         {object}  response.Envelope
// @Security     BearerAuth
// @Router       /catalog/categories/{categoryID} [put]
func (h *catalogHandler) updateCategory(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.UpdateCategoryRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	category, err := h.catalogService.UpdateCategory(ctx, c.Param("categoryID"), req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "update category")
		return
	}

	response.OK(c, http.StatusOK, category)
}

// deleteCategory godoc
// @Summary      Delete a category
// @Description  Fails with 409 when products still reference the category.
// @Tags         Catalog
// @Param        categoryID  path  string  true  "Category ID"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Failure      409  {object}  response.Envelope
// @Security     BearerAuth
// @Router       /catalog/categories/{categoryID} [delete]
func (h *catalogHandler) deleteCategory(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	if err := h.catalogService.DeleteCategory(ctx, c.Param("categoryID")); err != nil {
		respondServiceError(c, logger, err, "delete category")
		return
	}

	response.NoContent(c)
}

// createProduct godoc
// @Summary      Create a product with its price options
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        product  body      dto.CreateProductRequest  true  "Product details"
// @Success      201      {object}  response.Envelope{data=domain.Product}
// @Failure      400      {object}  response.Envelope
// @Security     BearerAuth
// @Router       /catalog/products [post]
func (h *catalogHandler) createProduct(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateProductRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	product, err := h.catalogService.CreateProduct(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create product")
		return
	}

	response.OK(c, http.StatusCreated, product)
}

// listProducts godoc
// @Summary      List active products
// @Tags         Catalog
// @Produce      json
// @Param        categoryID  query     string  false  "Filter by category"
// @Success      200         {object}  response.Envelope{data=[]domain.Product}
// @Security     BearerAuth
// @Router       /catalog/products [get]
func (h *catalogHandler) listProducts(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	products, err := h.catalogService.ListProducts(ctx, c.Query("categoryID"))
	if err != nil {
		respondServiceError(c, logger, err, "list products")
		return
	}

	response.OK(c, http.StatusOK, products)
}

// getProduct godoc
// @Summary      Get a product by ID
// @Tags         Catalog
// @Produce      json
// @Param        productID  path      string  true  "Product ID"
// @Success      200        {object}  response.Envelope{data=domain.Product}
// @Failure      404        {object}  response.Envelope
// @Security     BearerAuth
// @Router       /catalog/products/{productID} [get]
func (h *catalogHandler) getProduct(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	product, err := h.catalogService.GetProductByID(ctx, c.Param("productID"))
	if err != nil {
		respondServiceError(c, logger, err, "get product")
		return
	}

	response.OK(c, http.StatusOK, product)
}

// updateProduct godoc
// @Summary      Update a product
// @Description  When price options are present in the body they replace the existing set wholesale.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        productID  path      string                    true  "Product ID"
// @Param        product    body      dto.UpdateProductRequest  true  "Fields to update"
// @Success      200        {object}  response.Envelope{data=domain.Product}
// @Failure      404        {object}  response.Envelope
// @Security     BearerAuth
// @Router       /catalog/products/{productID} [put]
func (h *catalogHandler) updateProduct(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.UpdateProductRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	product, err := h.catalogService.UpdateProduct(ctx, c.Param("productID"), req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "update product")
		return
	}

	response.OK(c, http.StatusOK, product)
}

// deleteProduct godoc
// @Summary      Delete a product and its price options
// @Tags         Catalog
// @Param        productID  path  string  true  "Product ID"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Security     BearerAuth
// @Router       /catalog/products/{productID} [delete]
func (h *catalogHandler) deleteProduct(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	if err := h.catalogService.DeleteProduct(ctx, c.Param("productID")); err != nil {
		respondServiceError(c, logger, err, "delete product")
		return
	}

	response.NoContent(c)
}
