package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kmateev/biz_admin_app/internal/core/services"
	"github.com/kmateev/biz_admin_app/internal/dto"
	"github.com/kmateev/biz_admin_app/pkg/pagination"
	"github.com/kmateev/biz_admin_app/pkg/response"
)

type reportHandler struct {
	reportService *services.ReportService
}

func newReportHandler(reportService *services.ReportService) *reportHandler {
	return &reportHandler{reportService: reportService}
}

// registerReportRoutes registers routes related to field visit reports.
func registerReportRoutes(rg *gin.RouterGroup, reportService *services.ReportService) {
	h := newReportHandler(reportService)
	feedback := rg.Group("/feedback-reports")
	{
		feedback.POST("", h.createFeedbackReport)
		feedback.GET("", h.listFeedbackReports)
		feedback.GET("/export", h.exportFeedbackReports)
	}
	visibility := rg.Group("/visibility-reports")
	{
		visibility.POST("", h.createVisibilityReport)
		visibility.GET("", h.listVisibilityReports)
		visibility.GET("/export", h.exportVisibilityReports)
	}
}

func (h *reportHandler) bindFilter(c *gin.Context) (dto.ReportQueryParams, bool) {
	_, logger := handlerCtx(c)
	var params dto.ReportQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind report query", "error", err.Error())
		response.Err(c, http.StatusBadRequest, "invalid query parameters: "+err.Error())
		return params, false
	}
	return params, true
}

// createFeedbackReport godoc
// @Summary      File a client feedback report
// @Tags         Reports
// @Accept       json
// @Produce      json
// @Param        report  body      dto.CreateFeedbackReportRequest  true  "Feedback report"
// @Success      201     {object}  response.Envelope{data=domain.FeedbackReport}
// @Failure      400     {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/feedback-reports [post]
func (h *reportHandler) createFeedbackReport(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateFeedbackReportRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	report, err := h.reportService.CreateFeedbackReport(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create feedback report")
		return
	}

	response.OK(c, http.StatusCreated, report)
}

// listFeedbackReports godoc
// @Summary      List client feedback reports
// @Tags         Reports
// @Produce      json
// @Param        country  query     string  false  "Filter by country"
// @Param        repID    query     string  false  "Filter by sales rep"
// @Param        from     query     string  false  "Visit date lower bound (YYYY-MM-DD)"
// @Param        to       query     string  false  "Visit date upper bound (YYYY-MM-DD)"
// @Param        page     query     int     false  "Page number"
// @Param        limit    query     int     false  "Items per page"
// @Success      200      {object}  response.Envelope{data=response.List}
// @Failure      400      {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/feedback-reports [get]
func (h *reportHandler) listFeedbackReports(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	params, ok := h.bindFilter(c)
	if !ok {
		return
	}
	filter, err := services.ParseFilter(params)
	if err != nil {
		respondServiceError(c, logger, err, "list feedback reports")
		return
	}
	page := pagination.Parse(c)

	reports, total, err := h.reportService.ListFeedbackReports(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "list feedback reports")
		return
	}

	response.OK(c, http.StatusOK, response.List{Items: reports, Total: total, Page: page.Page, Limit: page.Limit})
}

// exportFeedbackReports godoc
// @Summary      Export client feedback reports as CSV
// @Description  Applies the same filters as the list endpoint and streams the full result set.
// @Tags         Reports
// @Produce      text/csv
// @Param        country  query  string  false  "Filter by country"
// @Param        repID    query  string  false  "Filter by sales rep"
// @Param        from     query  string  false  "Visit date lower bound (YYYY-MM-DD)"
// @Param        to       query  string  false  "Visit date upper bound (YYYY-MM-DD)"
// @Success      200  {string}  string  "CSV payload"
// @Failure      400  {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/feedback-reports/export [get]
func (h *reportHandler) exportFeedbackReports(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	params, ok := h.bindFilter(c)
	if !ok {
		return
	}
	filter, err := services.ParseFilter(params)
	if err != nil {
		respondServiceError(c, logger, err, "export feedback reports")
		return
	}

	data, err := h.reportService.ExportFeedbackReportsCSV(ctx, filter)
	if err != nil {
		respondServiceError(c, logger, err, "export feedback reports")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="feedback_reports.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// createVisibilityReport godoc
// @Summary      File a shelf visibility report
// @Tags         Reports
// @Accept       json
// @Produce      json
// @Param        report  body      dto.CreateVisibilityReportRequest  true  "Visibility report"
// @Success      201     {object}  response.Envelope{data=domain.VisibilityReport}
// @Failure      400     {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/visibility-reports [post]
func (h *reportHandler) createVisibilityReport(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateVisibilityReportRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	report, err := h.reportService.CreateVisibilityReport(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create visibility report")
		return
	}

	response.OK(c, http.StatusCreated, report)
}

// listVisibilityReports godoc
// @Summary      List shelf visibility reports
// @Tags         Reports
// @Produce      json
// @Param        country  query     string  false  "Filter by country"
// @Param        repID    query     string  false  "Filter by sales rep"
// @Param        from     query     string  false  "Visit date lower bound (YYYY-MM-DD)"
// @Param        to       query     string  false  "Visit date upper bound (YYYY-MM-DD)"
// @Param        page     query     int     false  "Page number"
// @Param        limit    query     int     false  "Items per page"
// @Success      200      {object}  response.Envelope{data=response.List}
// @Failure      400      {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/visibility-reports [get]
func (h *reportHandler) listVisibilityReports(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	params, ok := h.bindFilter(c)
	if !ok {
		return
	}
	filter, err := services.ParseFilter(params)
	if err != nil {
		respondServiceError(c, logger, err, "list visibility reports")
		return
	}
	page := pagination.Parse(c)

	reports, total, err := h.reportService.ListVisibilityReports(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "list visibility reports")
		return
	}

	response.OK(c, http.StatusOK, response.List{Items: reports, Total: total, Page: page.Page, Limit: page.Limit})
}

// exportVisibilityReports godoc
// @Summary      Export shelf visibility reports as CSV
// @Tags         Reports
// @Produce      text/csv
// @Param        country  query  string  false  "Filter by country"
// @Param        repID    query  string  false  "Filter by sales rep"
// @Param        from     query  string  false  "Visit date lower bound (YYYY-MM-DD)"
// @Param        to       query  string  false  "Visit date upper bound (YYYY-MM-DD)"
// @Success      200  {string}  string  "CSV payload"
// @Failure      400  {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/visibility-reports/export [get]
func (h *reportHandler) exportVisibilityReports(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	params, ok := h.bindFilter(c)
	if !ok {
		return
	}
	filter, err := services.ParseFilter(params)
	if err != nil {
		respondServiceError(c, logger, err, "export visibility reports")
		return
	}

	data, err := h.reportService.ExportVisibilityReportsCSV(ctx, filter)
	if err != nil {
		respondServiceError(c, logger, err, "export visibility reports")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="visibility_reports.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
