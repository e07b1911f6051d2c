package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kmateev/biz_admin_app/internal/core/services"
	"github.com/kmateev/biz_admin_app/internal/dto"
	"github.com/kmateev/biz_admin_app/pkg/pagination"
	"github.com/kmateev/biz_admin_app/pkg/response"
)

type cashHandler struct {
	cashService *services.CashService
}

func newCashHandler(cashService *services.CashService) *cashHandler {
	return &cashHandler{cashService: cashService}
}

// registerCashRoutes registers routes related to cash accounts and their ledgers.
func registerCashRoutes(rg *gin.RouterGroup, cashService *services.CashService) {
	h := newCashHandler(cashService)
	cashAccounts := rg.Group("/cash-accounts")
	{
		cashAccounts.POST("", h.createCashAccount)
		cashAccounts.GET("", h.listCashAccounts)
		cashAccounts.GET("/:cashAccountID", h.getCashAccount)
		cashAccounts.PUT("/:cashAccountID", h.updateCashAccount)
		cashAccounts.DELETE("/:cashAccountID", h.deactivateCashAccount)
		cashAccounts.POST("/:cashAccountID/entries", h.createCashEntry)
		cashAccounts.GET("/:cashAccountID/ledger", h.getLedger)
	}
}

// createCashAccount godoc
// @Summary      Create a cash account
// @Tags         Cash
// @Accept       json
// @Produce      json
// @Param        account  body      dto.CreateCashAccountRequest  true  "Cash account details"
// @Success      201      {object}  response.Envelope{data=domain.CashAccount}
// @Failure      400      {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/cash-accounts [post]
func (h *cashHandler) createCashAccount(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateCashAccountRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	account, err := h.cashService.CreateCashAccount(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create cash account")
		return
	}

	response.OK(c, http.StatusCreated, account)
}

// listCashAccounts godoc
// @Summary      List cash accounts
// @Tags         Cash
// @Produce      json
// @Success      200  {object}  response.Envelope{data=[]domain.CashAccount}
// @Security     BearerAuth
// @Router       /financial/cash-accounts [get]
func (h *cashHandler) listCashAccounts(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	accounts, err := h.cashService.ListCashAccounts(ctx)
	if err != nil {
		respondServiceError(c, logger, err, "list cash accounts")
		return
	}

	response.OK(c, http.StatusOK, accounts)
}

// getCashAccount godoc
// @Summary      Get a cash account by ID
// @Tags         Cash
// @Produce      json
// @Param        cashAccountID  path      string  true  "Cash account ID"
// @Success      200            {object}  response.Envelope{data=domain.CashAccount}
// @Failure      404            {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/cash-accounts/{cashAccountID} [get]
func (h *cashHandler) getCashAccount(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	account, err := h.cashService.GetCashAccountByID(ctx, c.Param("cashAccountID"))
	if err != nil {
		respondServiceError(c, logger, err, "get cash account")
		return
	}

	response.OK(c, http.StatusOK, account)
}

// updateCashAccount godoc
// @Summary      Update a cash account
// @Tags         Cash
// @Accept       json
// @Produce      json
// @Param        cashAccountID  path      string                        true  "Cash account ID"
// @Param        account        body      dto.UpdateCashAccountRequest  true  "Fields to update"
// @Success      200            {object}  response.Envelope{data=domain.CashAccount}
// @Failure      404            {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/cash-accounts/{cashAccountID} [put]
func (h *cashHandler) updateCashAccount(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.UpdateCashAccountRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	account, err := h.cashService.UpdateCashAccount(ctx, c.Param("cashAccountID"), req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "update cash account")
		return
	}

	response.OK(c, http.StatusOK, account)
}

// deactivateCashAccount godoc
// @Summary      Deactivate a cash account
// @Tags         Cash
// @Param        cashAccountID  path  string  true  "Cash account ID"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Failure      409  {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/cash-accounts/{cashAccountID} [delete]
func (h *cashHandler) deactivateCashAccount(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.cashService.DeactivateCashAccount(ctx, c.Param("cashAccountID"), userID); err != nil {
		respondServiceError(c, logger, err, "deactivate cash account")
		return
	}

	response.NoContent(c)
}

// createCashEntry godoc
// @Summary      Record a cash movement
// @Description  Positive amounts are inflows, negative amounts outflows. Inactive accounts reject new entries.
// @Tags         Cash
// @Accept       json
// @Produce      json
// @Param        cashAccountID  path      string                      true  "Cash account ID"
// @Param        entry          body      dto.CreateCashEntryRequest  true  "Cash entry"
// @Success      201            {object}  response.Envelope{data=domain.CashEntry}
// @Failure      400            {object}  response.Envelope
// @Failure      409            {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/cash-accounts/{cashAccountID}/entries [post]
func (h *cashHandler) createCashEntry(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateCashEntryRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entry, err := h.cashService.CreateCashEntry(ctx, c.Param("cashAccountID"), req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create cash entry")
		return
	}

	response.OK(c, http.StatusCreated, entry)
}

// getLedger godoc
// @Summary      Get the running-balance ledger for a cash account
// @Description  Entries are ordered by entry date and carry a server-computed running balance. The opening balance of each page accounts for all prior entries.
// @Tags         Cash
// @Produce      json
// @Param        cashAccountID  path      string  true   "Cash account ID"
// @Param        page           query     int     false  "Page number"
// @Param        limit          query     int     false  "Items per page"
// @Success      200            {object}  response.Envelope{data=dto.CashLedgerResponse}
// @Failure      404            {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/cash-accounts/{cashAccountID}/ledger [get]
func (h *cashHandler) getLedger(c *gin.Context) {
	ctx, logger := handlerCtx(c)
	params := pagination.Parse(c)

	ledger, err := h.cashService.GetLedger(ctx, c.Param("cashAccountID"), params)
	if err != nil {
		respondServiceError(c, logger, err, "get cash ledger")
		return
	}

	response.OK(c, http.StatusOK, ledger)
}
