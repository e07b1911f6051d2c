package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kmateev/biz_admin_app/internal/core/services"
	"github.com/kmateev/biz_admin_app/internal/dto"
	"github.com/kmateev/biz_admin_app/pkg/response"
)

type noticeboardHandler struct {
	noticeboardService *services.NoticeboardService
}

func newNoticeboardHandler(noticeboardService *services.NoticeboardService) *noticeboardHandler {
	return &noticeboardHandler{noticeboardService: noticeboardService}
}

// registerNoticeboardRoutes registers routes related to notices and tasks.
func registerNoticeboardRoutes(rg *gin.RouterGroup, noticeboardService *services.NoticeboardService) {
	h := newNoticeboardHandler(noticeboardService)
	notices := rg.Group("/notices")
	{
		notices.POST("", h.createNotice)
		notices.GET("", h.listNotices)
		notices.GET("/:noticeID", h.getNotice)
		notices.PUT("/:noticeID", h.updateNotice)
		notices.DELETE("/:noticeID", h.deleteNotice)
	}
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.createTask)
		tasks.GET("", h.listTasks)
		tasks.GET("/:taskID", h.getTask)
		tasks.PUT("/:taskID", h.updateTask)
		tasks.DELETE("/:taskID", h.deleteTask)
	}
}

// createNotice godoc
// @Summary      Publish a notice
// @Tags         Noticeboard
// @Accept       json
// @Produce      json
// @Param        notice  body      dto.CreateNoticeRequest  true  "Notice details"
// @Success      201     {object}  response.Envelope{data=domain.Notice}
// @Failure      400     {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/notices [post]
func (h *noticeboardHandler) createNotice(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateNoticeRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	notice, err := h.noticeboardService.CreateNotice(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create notice")
		return
	}

	response.OK(c, http.StatusCreated, notice)
}

// listNotices godoc
// @Summary      List notices
// @Description  Country filtering also returns global notices that carry no country.
// @Tags         Noticeboard
// @Produce      json
// @Param        country  query     string  false  "Filter by country"
// @Param        status   query     string  false  "Filter by status"
// @Success      200      {object}  response.Envelope{data=[]domain.Notice}
// @Security     BearerAuth
// @Router       /sales/notices [get]
func (h *noticeboardHandler) listNotices(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	notices, err := h.noticeboardService.ListNotices(ctx, c.Query("country"), c.Query("status"))
	if err != nil {
		respondServiceError(c, logger, err, "list notices")
		return
	}

	response.OK(c, http.StatusOK, notices)
}

// getNotice godoc
// @Summary      Get a notice by ID
// @Tags         Noticeboard
// @Produce      json
// @Param        noticeID  path      string  true  "Notice ID"
// @Success      200       {object}  response.Envelope{data=domain.Notice}
// @Failure      404       {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/notices/{noticeID} [get]
func (h *noticeboardHandler) getNotice(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	notice, err := h.noticeboardService.GetNoticeByID(ctx, c.Param("noticeID"))
	if err != nil {
		respondServiceError(c, logger, err, "get notice")
		return
	}

	response.OK(c, http.StatusOK, notice)
}

// updateNotice godoc
// @Summary      Update a notice
// @Tags         Noticeboard
// @Accept       json
// @Produce      json
// @Param        noticeID  path      string                   true  "Notice ID"
// @Param        notice    body      dto.UpdateNoticeRequest  true  "Fields to update"
// @Success      200       {object}  response.Envelope{data=domain.Notice}
// @Failure      404       {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/notices/{noticeID} [put]
func (h *noticeboardHandler) updateNotice(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.UpdateNoticeRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	notice, err := h.noticeboardService.UpdateNotice(ctx, c.Param("noticeID"), req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "update notice")
		return
	}

	response.OK(c, http.StatusOK, notice)
}

// deleteNotice godoc
// @Summary      Delete a notice
// @Tags         Noticeboard
// @Param        noticeID  path  string  true  "Notice ID"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/notices/{noticeID} [delete]
func (h *noticeboardHandler) deleteNotice(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	if err := h.noticeboardService.DeleteNotice(ctx, c.Param("noticeID")); err != nil {
		respondServiceError(c, logger, err, "delete notice")
		return
	}

	response.NoContent(c)
}

// createTask godoc
// @Summary      Create a task
// @Tags         Noticeboard
// @Accept       json
// @Produce      json
// @Param        task  body      dto.CreateTaskRequest  true  "Task details"
// @Success      201   {object}  response.Envelope{data=domain.Task}
// @Failure      400   {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/tasks [post]
func (h *noticeboardHandler) createTask(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateTaskRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	task, err := h.noticeboardService.CreateTask(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create task")
		return
	}

	response.OK(c, http.StatusCreated, task)
}

// listTasks godoc
// @Summary      List tasks
// @Tags         Noticeboard
// @Produce      json
// @Param        assigneeID  query     string  false  "Filter by assignee"
// @Param        status      query     string  false  "Filter by status"
// @Success      200         {object}  response.Envelope{data=[]domain.Task}
// @Security     BearerAuth
// @Router       /sales/tasks [get]
func (h *noticeboardHandler) listTasks(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	tasks, err := h.noticeboardService.ListTasks(ctx, c.Query("assigneeID"), c.Query("status"))
	if err != nil {
		respondServiceError(c, logger, err, "list tasks")
		return
	}

	response.OK(c, http.StatusOK, tasks)
}

// getTask godoc
// @Summary      Get a task by ID
// @Tags         Noticeboard
// @Produce      json
// @Param        taskID  path      string  true  "Task ID"
// @Success      200     {object}  response.Envelope{data=domain.Task}
// @Failure      404     {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/tasks/{taskID} [get]
func (h *noticeboardHandler) getTask(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	task, err := h.noticeboardService.GetTaskByID(ctx, c.Param("taskID"))
	if err != nil {
		respondServiceError(c, logger, err, "get task")
		return
	}

	response.OK(c, http.StatusOK, task)
}

// updateTask godoc
// @Summary      Update a task
// @Tags         Noticeboard
// @Accept       json
// @Produce      json
// @Param        taskID  path      string                 true  "Task ID"
// @Param        task    body      dto.UpdateTaskRequest  true  "Fields to update"
// @Success      200     {object}  response.Envelope{data=domain.Task}
// @Failure      404     {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/tasks/{taskID} [put]
func (h *noticeboardHandler) updateTask(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.UpdateTaskRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	task, err := h.noticeboardService.UpdateTask(ctx, c.Param("taskID"), req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "update task")
		return
	}

	response.OK(c, http.StatusOK, task)
}

// deleteTask godoc
// @Summary      Delete a task
// @Tags         Noticeboard
// @Param        taskID  path  string  true  "Task ID"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/tasks/{taskID} [delete]
func (h *noticeboardHandler) deleteTask(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	if err := h.noticeboardService.DeleteTask(ctx, c.Param("taskID")); err != nil {
		respondServiceError(c, logger, err, "delete task")
		return
	}

	response.NoContent(c)
}
