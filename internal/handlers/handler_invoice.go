package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kmateev/biz_admin_app/internal/core/services"
	"github.com/kmateev/biz_admin_app/internal/dto"
	"github.com/kmateev/biz_admin_app/pkg/response"
)

type invoiceHandler struct {
	receivableService *services.ReceivableService
	payableService    *services.PayableService
}

func newInvoiceHandler(receivableService *services.ReceivableService, payableService *services.PayableService) *invoiceHandler {
	return &invoiceHandler{receivableService: receivableService, payableService: payableService}
}

// registerInvoiceRoutes registers routes related to receivables and payables.
func registerInvoiceRoutes(rg *gin.RouterGroup, receivableService *services.ReceivableService, payableService *services.PayableService) {
	h := newInvoiceHandler(receivableService, payableService)
	receivables := rg.Group("/receivables")
	{
		receivables.POST("", h.createReceivable)
		receivables.GET("", h.listReceivables)
		receivables.GET("/:receivableID", h.getReceivable)
		receivables.POST("/bulk-payments", h.settleReceivablesBulk)
	}
	payables := rg.Group("/payables")
	{
		payables.POST("", h.createPayable)
		payables.GET("", h.listPayables)
		payables.GET("/:payableID", h.getPayable)
		payables.POST("/:payableID/settle", h.settlePayable)
	}
}

// createReceivable godoc
// @Summary      Create a receivable invoice
// @Tags         Invoices
// @Accept       json
// @Produce      json
// @Param        receivable  body      dto.CreateReceivableRequest  true  "Receivable details"
// @Success      201         {object}  response.Envelope{data=domain.Receivable}
// @Failure      400         {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/receivables [post]
func (h *invoiceHandler) createReceivable(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateReceivableRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	receivable, err := h.receivableService.CreateReceivable(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create receivable")
		return
	}

	response.OK(c, http.StatusCreated, receivable)
}

// listReceivables godoc
// @Summary      List receivables
// @Tags         Invoices
// @Produce      json
// @Param        clientID  query     string  false  "Filter by client"
// @Param        status    query     string  false  "Filter by status"
// @Success      200       {object}  response.Envelope{data=[]domain.Receivable}
// @Security     BearerAuth
// @Router       /financial/receivables [get]
func (h *invoiceHandler) listReceivables(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	receivables, err := h.receivableService.ListReceivables(ctx, c.Query("clientID"), c.Query("status"))
	if err != nil {
		respondServiceError(c, logger, err, "list receivables")
		return
	}

	response.OK(c, http.StatusOK, receivables)
}

// getReceivable godoc
// @Summary      Get a receivable by ID
// @Tags         Invoices
// @Produce      json
// @Param        receivableID  path      string  true  "Receivable ID"
// @Success      200           {object}  response.Envelope{data=domain.Receivable}
// @Failure      404           {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/receivables/{receivableID} [get]
func (h *invoiceHandler) getReceivable(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	receivable, err := h.receivableService.GetReceivableByID(ctx, c.Param("receivableID"))
	if err != nil {
		respondServiceError(c, logger, err, "get receivable")
		return
	}

	response.OK(c, http.StatusOK, receivable)
}

// settleReceivablesBulk godoc
// @Summary      Settle a batch of receivables
// @Description  Marks every listed receivable paid and posts one aggregate journal entry. The batch is all or nothing.
// @Tags         Invoices
// @Accept       json
// @Produce      json
// @Param        batch  body      dto.BulkPaymentRequest  true  "Receivable IDs and ledger accounts"
// @Success      200    {object}  response.Envelope{data=[]domain.Receivable}
// @Failure      400    {object}  response.Envelope
// @Failure      409    {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/receivables/bulk-payments [post]
func (h *invoiceHandler) settleReceivablesBulk(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.BulkPaymentRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	receivables, err := h.receivableService.SettleBulk(ctx, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "settle receivables bulk")
		return
	}

	response.OK(c, http.StatusOK, receivables)
}

// createPayable godoc
// @Summary      Create a payable invoice
// @Tags         Invoices
// @Accept       json
// @Produce      json
// @Param        payable  body      dto.CreatePayableRequest  true  "Payable details"
// @Success      201      {object}  response.Envelope{data=domain.Payable}
// @Failure      400      {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/payables [post]
func (h *invoiceHandler) createPayable(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreatePayableRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	payable, err := h.payableService.CreatePayable(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create payable")
		return
	}

	response.OK(c, http.StatusCreated, payable)
}

// listPayables godoc
// @Summary      List payables
// @Tags         Invoices
// @Produce      json
// @Param        supplierID  query     string  false  "Filter by supplier"
// @Param        status      query     string  false  "Filter by status"
// @Success      200         {object}  response.Envelope{data=[]domain.Payable}
// @Security     BearerAuth
// @Router       /financial/payables [get]
func (h *invoiceHandler) listPayables(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	payables, err := h.payableService.ListPayables(ctx, c.Query("supplierID"), c.Query("status"))
	if err != nil {
		respondServiceError(c, logger, err, "list payables")
		return
	}

	response.OK(c, http.StatusOK, payables)
}

// getPayable godoc
// @Summary      Get a payable by ID
// @Tags         Invoices
// @Produce      json
// @Param        payableID  path      string  true  "Payable ID"
// @Success      200        {object}  response.Envelope{data=domain.Payable}
// @Failure      404        {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/payables/{payableID} [get]
func (h *invoiceHandler) getPayable(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	payable, err := h.payableService.GetPayableByID(ctx, c.Param("payableID"))
	if err != nil {
		respondServiceError(c, logger, err, "get payable")
		return
	}

	response.OK(c, http.StatusOK, payable)
}

// settlePayable godoc
// @Summary      Settle a payable
// @Description  Marks the payable paid and posts the settlement journal entry in one transaction.
// @Tags         Invoices
// @Accept       json
// @Produce      json
// @Param        payableID  path      string                    true  "Payable ID"
// @Param        accounts   body      dto.SettlePayableRequest  true  "Ledger accounts for the settlement entry"
// @Success      200        {object}  response.Envelope{data=domain.Payable}
// @Failure      404        {object}  response.Envelope
// @Failure      409        {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/payables/{payableID}/settle [post]
func (h *invoiceHandler) settlePayable(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.SettlePayableRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	payable, err := h.payableService.SettlePayable(ctx, c.Param("payableID"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "settle payable")
		return
	}

	response.OK(c, http.StatusOK, payable)
}
