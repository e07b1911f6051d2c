package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kmateev/biz_admin_app/internal/core/services"
	"github.com/kmateev/biz_admin_app/internal/dto"
	"github.com/kmateev/biz_admin_app/pkg/response"
)

type salesHandler struct {
	salesService *services.SalesService
}

func newSalesHandler(salesService *services.SalesService) *salesHandler {
	return &salesHandler{salesService: salesService}
}

// registerSalesRoutes registers routes related to managers, sales reps and clients.
func registerSalesRoutes(rg *gin.RouterGroup, salesService *services.SalesService) {
	h := newSalesHandler(salesService)
	managers := rg.Group("/managers")
	{
		managers.POST("", h.createManager)
		managers.GET("", h.listManagers)
		managers.GET("/:managerID", h.getManager)
		managers.PUT("/:managerID", h.updateManager)
		managers.DELETE("/:managerID", h.deleteManager)
	}
	reps := rg.Group("/sales-reps")
	{
		reps.POST("", h.createSalesRep)
		reps.GET("", h.listSalesReps)
		reps.GET("/:repID", h.getSalesRep)
		reps.PUT("/:repID", h.updateSalesRep)
		reps.DELETE("/:repID", h.deleteSalesRep)
	}
	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:clientID", h.getClient)
		clients.PUT("/:clientID", h.updateClient)
		clients.DELETE("/:clientID", h.deleteClient)
	}
}

// createManager godoc
// @Summary      Create a manager with channel assignments
// @Tags         Sales
// @Accept       json
// @Produce      json
// @Param        manager  body      dto.CreateManagerRequest  true  "Manager details"
// @Success      201      {object}  response.Envelope{data=domain.Manager}
// @Failure      400      {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/managers [post]
func (h *salesHandler) createManager(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateManagerRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	manager, err := h.salesService.CreateManager(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create manager")
		return
	}

	response.OK(c, http.StatusCreated, manager)
}

// listManagers godoc
// @Summary      List managers
// @Tags         Sales
// @Produce      json
// @Success      200  {object}  response.Envelope{data=[]domain.Manager}
// @Security     BearerAuth
// @Router       /sales/managers [get]
func (h *salesHandler) listManagers(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	managers, err := h.salesService.ListManagers(ctx)
	if err != nil {
		respondServiceError(c, logger, err, "list managers")
		return
	}

	response.OK(c, http.StatusOK, managers)
}

// getManager godoc
// @Summary      Get a manager by ID
// @Tags         Sales
// @Produce      json
// @Param        managerID  path      string  true  "Manager ID"
// @Success      200        {object}  response.Envelope{data=domain.Manager}
// @Failure      404        {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/managers/{managerID} [get]
func (h *salesHandler) getManager(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	manager, err := h.salesService.GetManagerByID(ctx, c.Param("managerID"))
	if err != nil {
		respondServiceError(c, logger, err, "get manager")
		return
	}

	response.OK(c, http.StatusOK, manager)
}

// updateManager godoc
// @Summary      Update a manager
// @Description  When channels are present in the body they replace the assignments wholesale.
// @Tags         Sales
// @Accept       json
// @Produce      json
// @Param        managerID  path      string                    true  "Manager ID"
// @Param        manager    body      dto.UpdateManagerRequest  true  "Fields to update"
// @Success      200        {object}  response.Envelope{data=domain.Manager}
// @Failure      404        {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/managers/{managerID} [put]
func (h *salesHandler) updateManager(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.UpdateManagerRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	manager, err := h.salesService.UpdateManager(ctx, c.Param("managerID"), req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "update manager")
		return
	}

	response.OK(c, http.StatusOK, manager)
}

// deleteManager godoc
// @Summary      Delete a manager and their channel assignments
// @Tags         Sales
// @Param        managerID  path  string  true  "Manager ID"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Failure      409  {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/managers/{managerID} [delete]
func (h *salesHandler) deleteManager(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	if err := h.salesService.DeleteManager(ctx, c.Param("managerID")); err != nil {
		respondServiceError(c, logger, err, "delete manager")
		return
	}

	response.NoContent(c)
}

// createSalesRep godoc
// @Summary      Create a sales representative
// @Tags         Sales
// @Accept       json
// @Produce      json
// @Param        rep  body      dto.CreateSalesRepRequest  true  "Sales rep details"
// @Success      201  {object}  response.Envelope{data=domain.SalesRep}
// @Failure      400  {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/sales-reps [post]
func (h *salesHandler) createSalesRep(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateSalesRepRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	rep, err := h.salesService.CreateSalesRep(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create sales rep")
		return
	}

	response.OK(c, http.StatusCreated, rep)
}

// listSalesReps godoc
// @Summary      List sales representatives
// @Tags         Sales
// @Produce      json
// @Param        country  query     string  false  "Filter by country"
// @Success      200      {object}  response.Envelope{data=[]domain.SalesRep}
// @Security     BearerAuth
// @Router       /sales/sales-reps [get]
func (h *salesHandler) listSalesReps(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	reps, err := h.salesService.ListSalesReps(ctx, c.Query("country"))
	if err != nil {
		respondServiceError(c, logger, err, "list sales reps")
		return
	}

	response.OK(c, http.StatusOK, reps)
}

// getSalesRep godoc
// @Summary      Get a sales representative by ID
// @Tags         Sales
// @Produce      json
// @Param        repID  path      string  true  "Sales rep ID"
// @Success      200    {object}  response.Envelope{data=domain.SalesRep}
// @Failure      404    {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/sales-reps/{repID} [get]
func (h *salesHandler) getSalesRep(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	rep, err := h.salesService.GetSalesRepByID(ctx, c.Param("repID"))
	if err != nil {
		respondServiceError(c, logger, err, "get sales rep")
		return
	}

	response.OK(c, http.StatusOK, rep)
}

// updateSalesRep godoc
// @Summary      Update a sales representative
// @Tags         Sales
// @Accept       json
// @Produce      json
// @Param        repID  path      string                     true  "Sales rep ID"
// @Param        rep    body      dto.UpdateSalesRepRequest  true  "Fields to update"
// @Success      200    {object}  response.Envelope{data=domain.SalesRep}
// @Failure      404    {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/sales-reps/{repID} [put]
func (h *salesHandler) updateSalesRep(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.UpdateSalesRepRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	rep, err := h.salesService.UpdateSalesRep(ctx, c.Param("repID"), req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "update sales rep")
		return
	}

	response.OK(c, http.StatusOK, rep)
}

// deleteSalesRep godoc
// @Summary      Delete a sales representative
// @Description  Fails with 409 when clients or reports still reference the rep.
// @Tags         Sales
// @Param        repID  path  string  true  "Sales rep ID"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Failure      409  {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/sales-reps/{repID} [delete]
func (h *salesHandler) deleteSalesRep(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	if err := h.salesService.DeleteSalesRep(ctx, c.Param("repID")); err != nil {
		respondServiceError(c, logger, err, "delete sales rep")
		return
	}

	response.NoContent(c)
}

// createClient godoc
// @Summary      Create a client
// @Tags         Sales
// @Accept       json
// @Produce      json
// @Param        client  body      dto.CreateClientRequest  true  "Client details"
// @Success      201     {object}  response.Envelope{data=domain.Client}
// @Failure      400     {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/clients [post]
func (h *salesHandler) createClient(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateClientRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	client, err := h.salesService.CreateClient(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create client")
		return
	}

	response.OK(c, http.StatusCreated, client)
}

// listClients godoc
// @Summary      List clients
// @Tags         Sales
// @Produce      json
// @Param        country  query     string  false  "Filter by country"
// @Success      200      {object}  response.Envelope{data=[]domain.Client}
// @Security     BearerAuth
// @Router       /sales/clients [get]
func (h *salesHandler) listClients(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	clients, err := h.salesService.ListClients(ctx, c.Query("country"))
	if err != nil {
		respondServiceError(c, logger, err, "list clients")
		return
	}

	response.OK(c, http.StatusOK, clients)
}

// getClient godoc
// @Summary      Get a client by ID
// @Tags         Sales
// @Produce      json
// @Param        clientID  path      string  true  "Client ID"
// @Success      200       {object}  response.Envelope{data=domain.Client}
// @Failure      404       {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/clients/{clientID} [get]
func (h *salesHandler) getClient(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	client, err := h.salesService.GetClientByID(ctx, c.Param("clientID"))
	if err != nil {
		respondServiceError(c, logger, err, "get client")
		return
	}

	response.OK(c, http.StatusOK, client)
}

// updateClient godoc
// @Summary      Update a client
// @Tags         Sales
// @Accept       json
// @Produce      json
// @Param        clientID  path      string                   true  "Client ID"
// @Param        client    body      dto.UpdateClientRequest  true  "Fields to update"
// @Success      200       {object}  response.Envelope{data=domain.Client}
// @Failure      404       {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/clients/{clientID} [put]
func (h *salesHandler) updateClient(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.UpdateClientRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	client, err := h.salesService.UpdateClient(ctx, c.Param("clientID"), req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "update client")
		return
	}

	response.OK(c, http.StatusOK, client)
}

// deleteClient godoc
// @Summary      Delete a client
// @Description  Fails with 409 when receivables or reports still reference the client.
// @Tags         Sales
// @Param        clientID  path  string  true  "Client ID"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Failure      409  {object}  response.Envelope
// @Security     BearerAuth
// @Router       /sales/clients/{clientID} [delete]
func (h *salesHandler) deleteClient(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	if err := h.salesService.DeleteClient(ctx, c.Param("clientID")); err != nil {
		respondServiceError(c, logger, err, "delete client")
		return
	}

	response.NoContent(c)
}
