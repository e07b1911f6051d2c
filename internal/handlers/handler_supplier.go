package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kmateev/biz_admin_app/internal/core/services"
	"github.com/kmateev/biz_admin_app/internal/dto"
	"github.com/kmateev/biz_admin_app/pkg/response"
)

type supplierHandler struct {
	supplierService *services.SupplierService
}

func newSupplierHandler(supplierService *services.SupplierService) *supplierHandler {
	return &supplierHandler{supplierService: supplierService}
}

// registerSupplierRoutes registers routes related to suppliers and their payments.
func registerSupplierRoutes(rg *gin.RouterGroup, supplierService *services.SupplierService) {
	h := newSupplierHandler(supplierService)
	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/:supplierID", h.getSupplier)
		suppliers.PUT("/:supplierID", h.updateSupplier)
		suppliers.DELETE("/:supplierID", h.deleteSupplier)
		suppliers.POST("/:supplierID/payments", h.createPayment)
		suppliers.GET("/:supplierID/payments", h.listPayments)
	}
	payments := rg.Group("/payments")
	{
		payments.GET("", h.listAllPayments)
		payments.GET("/:paymentID", h.getPayment)
		payments.POST("/:paymentID/confirm", h.confirmPayment)
	}
}

// createSupplier godoc
// @Summary      Create a supplier
// @Tags         Suppliers
// @Accept       json
// @Produce      json
// @Param        supplier  body      dto.CreateSupplierRequest  true  "Supplier details"
// @Success      201       {object}  response.Envelope{data=domain.Supplier}
// @Failure      400       {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/suppliers [post]
func (h *supplierHandler) createSupplier(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateSupplierRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	supplier, err := h.supplierService.CreateSupplier(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create supplier")
		return
	}

	response.OK(c, http.StatusCreated, supplier)
}

// listSuppliers godoc
// @Summary      List suppliers
// @Tags         Suppliers
// @Produce      json
// @Success      200  {object}  response.Envelope{data=[]domain.Supplier}
// @Security     BearerAuth
// @Router       /financial/suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	suppliers, err := h.supplierService.ListSuppliers(ctx)
	if err != nil {
		respondServiceError(c, logger, err, "list suppliers")
		return
	}

	response.OK(c, http.StatusOK, suppliers)
}

// getSupplier godoc
// @Summary      Get a supplier by ID
// @Tags         Suppliers
// @Produce      json
// @Param        supplierID  path      string  true  "Supplier ID"
// @Success      200         {object}  response.Envelope{data=domain.Supplier}
// @Failure      404         {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/suppliers/{supplierID} [get]
func (h *supplierHandler) getSupplier(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	supplier, err := h.supplierService.GetSupplierByID(ctx, c.Param("supplierID"))
	if err != nil {
		respondServiceError(c, logger, err, "get supplier")
		return
	}

	response.OK(c, http.StatusOK, supplier)
}

// updateSupplier godoc
// @Summary      Update a supplier
// @Tags         Suppliers
// @Accept       json
// @Produce      json
// @Param        supplierID  path      string                     true  "Supplier ID"
// @Param        supplier    body      dto.UpdateSupplierRequest  true  "Fields to update"
// @Success      200         {object}  response.Envelope{data=domain.Supplier}
// @Failure      404         {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/suppliers/{supplierID} [put]
func (h *supplierHandler) updateSupplier(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.UpdateSupplierRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(ctx, c.Param("supplierID"), req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "update supplier")
		return
	}

	response.OK(c, http.StatusOK, supplier)
}

// deleteSupplier godoc
// @Summary      Delete a supplier
// @Description  Fails with 409 when payments still reference the supplier.
// @Tags         Suppliers
// @Param        supplierID  path  string  true  "Supplier ID"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Failure      409  {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/suppliers/{supplierID} [delete]
func (h *supplierHandler) deleteSupplier(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	if err := h.supplierService.DeleteSupplier(ctx, c.Param("supplierID")); err != nil {
		respondServiceError(c, logger, err, "delete supplier")
		return
	}

	response.NoContent(c)
}

// createPayment godoc
// @Summary      Record a payment owed to a supplier
// @Description  New payments start in the in_pay state until confirmed.
// @Tags         Suppliers
// @Accept       json
// @Produce      json
// @Param        supplierID  path      string                    true  "Supplier ID"
// @Param        payment     body      dto.CreatePaymentRequest  true  "Payment details"
// @Success      201         {object}  response.Envelope{data=domain.SupplierPayment}
// @Failure      400         {object}  response.Envelope
// @Failure      404         {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/suppliers/{supplierID}/payments [post]
func (h *supplierHandler) createPayment(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreatePaymentRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	payment, err := h.supplierService.CreatePayment(ctx, c.Param("supplierID"), req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create payment")
		return
	}

	response.OK(c, http.StatusCreated, payment)
}

// listPayments godoc
// @Summary      List payments for a supplier
// @Tags         Suppliers
// @Produce      json
// @Param        supplierID  path      string  true  "Supplier ID"
// @Success      200         {object}  response.Envelope{data=[]domain.SupplierPayment}
// @Security     BearerAuth
// @Router       /financial/suppliers/{supplierID}/payments [get]
func (h *supplierHandler) listPayments(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	payments, err := h.supplierService.ListPayments(ctx, c.Param("supplierID"))
	if err != nil {
		respondServiceError(c, logger, err, "list payments")
		return
	}

	response.OK(c, http.StatusOK, payments)
}

// listAllPayments godoc
// @Summary      List supplier payments
// @Tags         Suppliers
// @Produce      json
// @Param        supplierID  query     string  false  "Filter by supplier ID"
// @Success      200         {object}  response.Envelope{data=[]domain.SupplierPayment}
// @Security     BearerAuth
// @Router       /financial/payments [get]
func (h *supplierHandler) listAllPayments(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	payments, err := h.supplierService.ListPayments(ctx, c.Query("supplierID"))
	if err != nil {
		respondServiceError(c, logger, err, "list payments")
		return
	}

	response.OK(c, http.StatusOK, payments)
}

// getPayment godoc
// @Summary      Get a supplier payment by ID
// @Tags         Suppliers
// @Produce      json
// @Param        paymentID  path      string  true  "Payment ID"
// @Success      200        {object}  response.Envelope{data=domain.SupplierPayment}
// @Failure      404        {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/payments/{paymentID} [get]
func (h *supplierHandler) getPayment(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	payment, err := h.supplierService.GetPaymentByID(ctx, c.Param("paymentID"))
	if err != nil {
		respondServiceError(c, logger, err, "get payment")
		return
	}

	response.OK(c, http.StatusOK, payment)
}

// confirmPayment godoc
// @Summary      Confirm a supplier payment
// @Description  Posts the settlement journal entry and marks the payment paid in one transaction. Confirming twice answers 409.
// @Tags         Suppliers
// @Accept       json
// @Produce      json
// @Param        paymentID  path      string                     true  "Payment ID"
// @Param        accounts   body      dto.ConfirmPaymentRequest  true  "Ledger accounts for the settlement entry"
// @Success      200        {object}  response.Envelope{data=domain.SupplierPayment}
// @Failure      404        {object}  response.Envelope
// @Failure      409        {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/payments/{paymentID}/confirm [post]
func (h *supplierHandler) confirmPayment(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.ConfirmPaymentRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	payment, err := h.supplierService.ConfirmPayment(ctx, c.Param("paymentID"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "confirm payment")
		return
	}

	response.OK(c, http.StatusOK, payment)
}
