package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kmateev/biz_admin_app/internal/core/services"
	"github.com/kmateev/biz_admin_app/internal/dto"
	"github.com/kmateev/biz_admin_app/pkg/pagination"
	"github.com/kmateev/biz_admin_app/pkg/response"
)

type capitalHandler struct {
	capitalService *services.CapitalService
}

func newCapitalHandler(capitalService *services.CapitalService) *capitalHandler {
	return &capitalHandler{capitalService: capitalService}
}

// registerCapitalRoutes registers routes related to equity and depreciation entries.
func registerCapitalRoutes(rg *gin.RouterGroup, capitalService *services.CapitalService) {
	h := newCapitalHandler(capitalService)
	equity := rg.Group("/equity-entries")
	{
		equity.POST("", h.createEquityEntry)
		equity.GET("", h.listEquityEntries)
		equity.POST("/bulk", h.createEquityEntriesBulk)
	}
	depreciation := rg.Group("/depreciation-entries")
	{
		depreciation.POST("", h.createDepreciationEntry)
		depreciation.GET("", h.listDepreciationEntries)
		depreciation.POST("/bulk", h.createDepreciationEntriesBulk)
	}
}

// createEquityEntry godoc
// @Summary      Record an equity entry
// @Tags         Capital
// @Accept       json
// @Produce      json
// @Param        entry  body      dto.CreateEquityEntryRequest  true  "Equity entry"
// @Success      201    {object}  response.Envelope{data=domain.EquityEntry}
// @Failure      400    {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/equity-entries [post]
func (h *capitalHandler) createEquityEntry(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateEquityEntryRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entry, err := h.capitalService.CreateEquityEntry(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create equity entry")
		return
	}

	response.OK(c, http.StatusCreated, entry)
}

// listEquityEntries godoc
// @Summary      List equity entries
// @Tags         Capital
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Items per page"
// @Success      200    {object}  response.Envelope{data=response.List}
// @Security     BearerAuth
// @Router       /financial/equity-entries [get]
func (h *capitalHandler) listEquityEntries(c *gin.Context) {
	ctx, logger := handlerCtx(c)
	params := pagination.Parse(c)

	entries, total, err := h.capitalService.ListEquityEntries(ctx, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "list equity entries")
		return
	}

	response.OK(c, http.StatusOK, response.List{Items: entries, Total: total, Page: params.Page, Limit: params.Limit})
}

// createEquityEntriesBulk godoc
// @Summary      Record a batch of equity entries
// @Description  Validates every entry before writing. The batch is all or nothing.
// @Tags         Capital
// @Accept       json
// @Produce      json
// @Param        batch  body      dto.BulkEquityRequest  true  "Equity entries"
// @Success      201    {object}  response.Envelope{data=[]domain.EquityEntry}
// @Failure      400    {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/equity-entries/bulk [post]
func (h *capitalHandler) createEquityEntriesBulk(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.BulkEquityRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entries, err := h.capitalService.CreateEquityEntriesBulk(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create equity entries bulk")
		return
	}

	response.OK(c, http.StatusCreated, entries)
}

// createDepreciationEntry godoc
// @Summary      Record a depreciation entry
// @Tags         Capital
// @Accept       json
// @Produce      json
// @Param        entry  body      dto.CreateDepreciationEntryRequest  true  "Depreciation entry"
// @Success      201    {object}  response.Envelope{data=domain.DepreciationEntry}
// @Failure      400    {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/depreciation-entries [post]
func (h *capitalHandler) createDepreciationEntry(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateDepreciationEntryRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entry, err := h.capitalService.CreateDepreciationEntry(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create depreciation entry")
		return
	}

	response.OK(c, http.StatusCreated, entry)
}

// listDepreciationEntries godoc
// @Summary      List depreciation entries
// @Tags         Capital
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Items per page"
// @Success      200    {object}  response.Envelope{data=response.List}
// @Security     BearerAuth
// @Router       /financial/depreciation-entries [get]
func (h *capitalHandler) listDepreciationEntries(c *gin.Context) {
	ctx, logger := handlerCtx(c)
	params := pagination.Parse(c)

	entries, total, err := h.capitalService.ListDepreciationEntries(ctx, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "list depreciation entries")
		return
	}

	response.OK(c, http.StatusOK, response.List{Items: entries, Total: total, Page: params.Page, Limit: params.Limit})
}

// createDepreciationEntriesBulk godoc
// @Summary      Record a batch of depreciation entries
// @Description  Validates every entry before writing. The batch is all or nothing.
// @Tags         Capital
// @Accept       json
// @Produce      json
// @Param        batch  body      dto.BulkDepreciationRequest  true  "Depreciation entries"
// @Success      201    {object}  response.Envelope{data=[]domain.DepreciationEntry}
// @Failure      400    {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/depreciation-entries/bulk [post]
func (h *capitalHandler) createDepreciationEntriesBulk(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.BulkDepreciationRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entries, err := h.capitalService.CreateDepreciationEntriesBulk(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create depreciation entries bulk")
		return
	}

	response.OK(c, http.StatusCreated, entries)
}
