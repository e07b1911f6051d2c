package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kmateev/biz_admin_app/internal/core/services"
	"github.com/kmateev/biz_admin_app/internal/dto"
	"github.com/kmateev/biz_admin_app/pkg/pagination"
	"github.com/kmateev/biz_admin_app/pkg/response"
)

type accountHandler struct {
	accountService *services.AccountService
}

func newAccountHandler(accountService *services.AccountService) *accountHandler {
	return &accountHandler{accountService: accountService}
}

// registerAccountRoutes registers routes related to ledger accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService *services.AccountService) {
	h := newAccountHandler(accountService)
	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.PUT("/:accountID", h.updateAccount)
		accounts.DELETE("/:accountID", h.deactivateAccount)
	}
}

// createAccount godoc
// @Summary      Create a ledger account
// @Tags         Accounts
// @Accept       json
// @Produce      json
// @Param        account  body      dto.CreateAccountRequest  true  "Account details"
// @Success      201      {object}  response.Envelope{data=domain.Account}
// @Failure      400      {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateAccountRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	account, err := h.accountService.CreateAccount(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create account")
		return
	}

	response.OK(c, http.StatusCreated, account)
}

// listAccounts godoc
// @Summary      List ledger accounts
// @Tags         Accounts
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Items per page"
// @Success      200    {object}  response.Envelope{data=response.List}
// @Security     BearerAuth
// @Router       /financial/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	ctx, logger := handlerCtx(c)
	params := pagination.Parse(c)

	accounts, total, err := h.accountService.ListAccounts(ctx, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "list accounts")
		return
	}

	response.OK(c, http.StatusOK, response.List{Items: accounts, Total: total, Page: params.Page, Limit: params.Limit})
}

// getAccount godoc
// @Summary      Get a ledger account by ID
// @Tags         Accounts
// @Produce      json
// @Param        accountID  path      string  true  "Account ID"
// @Success      200        {object}  response.Envelope{data=domain.Account}
// @Failure      404        {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	account, err := h.accountService.GetAccountByID(ctx, c.Param("accountID"))
	if err != nil {
		respondServiceError(c, logger, err, "get account")
		return
	}

	response.OK(c, http.StatusOK, account)
}

// updateAccount godoc
// @Summary      Update a ledger account
// @Description  Name, description and active flag only. Type and balance are immutable.
// @Tags         Accounts
// @Accept       json
// @Produce      json
// @Param        accountID  path      string                    true  "Account ID"
// @Param        account    body      dto.UpdateAccountRequest  true  "Fields to update"
// @Success      200        {object}  response.Envelope{data=domain.Account}
// @Failure      400        {object}  response.Envelope
// @Failure      404        {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/accounts/{accountID} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.UpdateAccountRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	account, err := h.accountService.UpdateAccount(ctx, c.Param("accountID"), req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "update account")
		return
	}

	response.OK(c, http.StatusOK, account)
}

// deactivateAccount godoc
// @Summary      Deactivate a ledger account
// @Description  Soft delete. Already inactive accounts answer 409.
// @Tags         Accounts
// @Param        accountID  path  string  true  "Account ID"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Failure      409  {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/accounts/{accountID} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.accountService.DeactivateAccount(ctx, c.Param("accountID"), userID); err != nil {
		respondServiceError(c, logger, err, "deactivate account")
		return
	}

	response.NoContent(c)
}
