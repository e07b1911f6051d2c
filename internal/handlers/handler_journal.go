package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kmateev/biz_admin_app/internal/core/services"
	"github.com/kmateev/biz_admin_app/internal/dto"
	"github.com/kmateev/biz_admin_app/pkg/pagination"
	"github.com/kmateev/biz_admin_app/pkg/response"
)

type journalHandler struct {
	journalService *services.JournalService
}

func newJournalHandler(journalService *services.JournalService) *journalHandler {
	return &journalHandler{journalService: journalService}
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService *services.JournalService) {
	h := newJournalHandler(journalService)
	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:journalID", h.getJournal)
		journals.POST("/:journalID/reverse", h.reverseJournal)
	}
}

// createJournal godoc
// @Summary      Post a journal entry
// @Description  Validates that debits equal credits and applies account balance changes atomically.
// @Tags         Journals
// @Accept       json
// @Produce      json
// @Param        journal  body      dto.CreateJournalRequest  true  "Journal entry"
// @Success      201      {object}  response.Envelope{data=domain.Journal}
// @Failure      400      {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateJournalRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	journal, err := h.journalService.CreateJournal(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create journal")
		return
	}

	response.OK(c, http.StatusCreated, journal)
}

// listJournals godoc
// @Summary      List journal entries
// @Tags         Journals
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Items per page"
// @Success      200    {object}  response.Envelope{data=response.List}
// @Security     BearerAuth
// @Router       /financial/journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	ctx, logger := handlerCtx(c)
	params := pagination.Parse(c)

	journals, total, err := h.journalService.ListJournals(ctx, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "list journals")
		return
	}

	response.OK(c, http.StatusOK, response.List{Items: journals, Total: total, Page: params.Page, Limit: params.Limit})
}

// getJournal godoc
// @Summary      Get a journal entry with its lines
// @Tags         Journals
// @Produce      json
// @Param        journalID  path      string  true  "Journal ID"
// @Success      200        {object}  response.Envelope{data=domain.Journal}
// @Failure      404        {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	journal, err := h.journalService.GetJournalByID(ctx, c.Param("journalID"))
	if err != nil {
		respondServiceError(c, logger, err, "get journal")
		return
	}

	response.OK(c, http.StatusOK, journal)
}

// reverseJournal godoc
// @Summary      Reverse a posted journal entry
// @Description  Creates a mirror entry with flipped line types and undoes the balance changes. Only posted entries can be reversed.
// @Tags         Journals
// @Produce      json
// @Param        journalID  path      string  true  "Journal ID"
// @Success      201        {object}  response.Envelope{data=domain.Journal}
// @Failure      404        {object}  response.Envelope
// @Failure      409        {object}  response.Envelope
// @Security     BearerAuth
// @Router       /financial/journals/{journalID}/reverse [post]
func (h *journalHandler) reverseJournal(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	reversal, err := h.journalService.ReverseJournal(ctx, c.Param("journalID"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "reverse journal")
		return
	}

	response.OK(c, http.StatusCreated, reversal)
}
