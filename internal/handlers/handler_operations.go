package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kmateev/biz_admin_app/internal/core/services"
	"github.com/kmateev/biz_admin_app/internal/dto"
	"github.com/kmateev/biz_admin_app/pkg/response"
)

type operationsHandler struct {
	serviceTypeService *services.ServiceTypeService
	requestService     *services.RequestService
	staffService       *services.StaffService
}

func newOperationsHandler(serviceTypeService *services.ServiceTypeService, requestService *services.RequestService, staffService *services.StaffService) *operationsHandler {
	return &operationsHandler{
		serviceTypeService: serviceTypeService,
		requestService:     requestService,
		staffService:       staffService,
	}
}

// registerOperationsRoutes registers routes related to service types, service requests and staff.
func registerOperationsRoutes(rg *gin.RouterGroup, serviceTypeService *services.ServiceTypeService, requestService *services.RequestService, staffService *services.StaffService) {
	h := newOperationsHandler(serviceTypeService, requestService, staffService)
	serviceTypes := rg.Group("/service-types")
	{
		serviceTypes.POST("", h.createServiceType)
		serviceTypes.GET("", h.listServiceTypes)
		serviceTypes.GET("/:serviceTypeID", h.getServiceType)
		serviceTypes.PUT("/:serviceTypeID", h.updateServiceType)
		serviceTypes.DELETE("/:serviceTypeID", h.deleteServiceType)
	}
	requests := rg.Group("/requests")
	{
		requests.POST("", h.createRequest)
		requests.GET("", h.listRequests)
		requests.GET("/:requestID", h.getRequest)
		requests.PATCH("/:requestID", h.patchRequest)
	}
	staff := rg.Group("/staff")
	{
		staff.POST("", h.createStaff)
		staff.GET("", h.listStaff)
		staff.GET("/:staffID", h.getStaff)
		staff.PUT("/:staffID", h.updateStaff)
		staff.DELETE("/:staffID", h.deleteStaff)
	}
}

// createServiceType godoc
// @Summary      Create a service type
// @Tags         Operations
// @Accept       json
// @Produce      json
// @Param        serviceType  body      dto.CreateServiceTypeRequest  true  "Service type details"
// @Success      201          {object}  response.Envelope{data=domain.ServiceType}
// @Failure      400          {object}  response.Envelope
// @Security     BearerAuth
// @Router       /service-types [post]
func (h *operationsHandler) createServiceType(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateServiceTypeRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	serviceType, err := h.serviceTypeService.CreateServiceType(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create service type")
		return
	}

	response.OK(c, http.StatusCreated, serviceType)
}

// listServiceTypes godoc
// @Summary      List service types
// @Tags         Operations
// @Produce      json
// @Success      200  {object}  response.Envelope{data=[]domain.ServiceType}
// @Security     BearerAuth
// @Router       /service-types [get]
func (h *operationsHandler) listServiceTypes(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	serviceTypes, err := h.serviceTypeService.ListServiceTypes(ctx)
	if err != nil {
		respondServiceError(c, logger, err, "list service types")
		return
	}

	response.OK(c, http.StatusOK, serviceTypes)
}

// getServiceType godoc
// @Summary      Get a service type by ID
// @Tags         Operations
// @Produce      json
// @Param        serviceTypeID  path      string  true  "Service type ID"
// @Success      200            {object}  response.Envelope{data=domain.ServiceType}
// @Failure      404            {object}  response.Envelope
// @Security     BearerAuth
// @Router       /service-types/{serviceTypeID} [get]
func (h *operationsHandler) getServiceType(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	serviceType, err := h.serviceTypeService.GetServiceTypeByID(ctx, c.Param("serviceTypeID"))
	if err != nil {
		respondServiceError(c, logger, err, "get service type")
		return
	}

	response.OK(c, http.StatusOK, serviceType)
}

// updateServiceType godoc
// @Summary      Update a service type
// @Tags         Operations
// @Accept       json
// @Produce      json
// @Param        serviceTypeID  path      string                        true  "Service type ID"
// @Param        serviceType    body      dto.UpdateServiceTypeRequest  true  "Fields to update"
// @Success      200            {object}  response.Envelope{data=domain.ServiceType}
// @Failure      404            {object}  response.Envelope
// @Security     BearerAuth
// @Router       /service-types/{serviceTypeID} [put]
func (h *operationsHandler) updateServiceType(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.UpdateServiceTypeRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	serviceType, err := h.serviceTypeService.UpdateServiceType(ctx, c.Param("serviceTypeID"), req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "update service type")
		return
	}

	response.OK(c, http.StatusOK, serviceType)
}

// deleteServiceType godoc
// @Summary      Delete a service type
// @Description  Fails with 409 when service requests still reference the type.
// @Tags         Operations
// @Param        serviceTypeID  path  string  true  "Service type ID"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Failure      409  {object}  response.Envelope
// @Security     BearerAuth
// @Router       /service-types/{serviceTypeID} [delete]
func (h *operationsHandler) deleteServiceType(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	if err := h.serviceTypeService.DeleteServiceType(ctx, c.Param("serviceTypeID")); err != nil {
		respondServiceError(c, logger, err, "delete service type")
		return
	}

	response.NoContent(c)
}

// createRequest godoc
// @Summary      Open a service request
// @Tags         Operations
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateRequestRequest  true  "Request details"
// @Success      201      {object}  response.Envelope{data=domain.ServiceRequest}
// @Failure      400      {object}  response.Envelope
// @Security     BearerAuth
// @Router       /requests [post]
func (h *operationsHandler) createRequest(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateRequestRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	request, err := h.requestService.CreateRequest(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create request")
		return
	}

	response.OK(c, http.StatusCreated, request)
}

// listRequests godoc
// @Summary      List service requests
// @Tags         Operations
// @Produce      json
// @Param        status    query     string  false  "Filter by status"
// @Param        priority  query     string  false  "Filter by priority"
// @Success      200       {object}  response.Envelope{data=[]domain.ServiceRequest}
// @Security     BearerAuth
// @Router       /requests [get]
func (h *operationsHandler) listRequests(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	requests, err := h.requestService.ListRequests(ctx, c.Query("status"), c.Query("priority"))
	if err != nil {
		respondServiceError(c, logger, err, "list requests")
		return
	}

	response.OK(c, http.StatusOK, requests)
}

// getRequest godoc
// @Summary      Get a service request by ID
// @Tags         Operations
// @Produce      json
// @Param        requestID  path      string  true  "Request ID"
// @Success      200        {object}  response.Envelope{data=domain.ServiceRequest}
// @Failure      404        {object}  response.Envelope
// @Security     BearerAuth
// @Router       /requests/{requestID} [get]
func (h *operationsHandler) getRequest(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	request, err := h.requestService.GetRequestByID(ctx, c.Param("requestID"))
	if err != nil {
		respondServiceError(c, logger, err, "get request")
		return
	}

	response.OK(c, http.StatusOK, request)
}

// patchRequest godoc
// @Summary      Partially update a service request
// @Description  Only the fields present in the body are changed. An empty patch answers 400.
// @Tags         Operations
// @Accept       json
// @Produce      json
// @Param        requestID  path      string                   true  "Request ID"
// @Param        patch      body      dto.PatchRequestRequest  true  "Fields to change"
// @Success      200        {object}  response.Envelope{data=domain.ServiceRequest}
// @Failure      400        {object}  response.Envelope
// @Failure      404        {object}  response.Envelope
// @Security     BearerAuth
// @Router       /requests/{requestID} [patch]
func (h *operationsHandler) patchRequest(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.PatchRequestRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	request, err := h.requestService.PatchRequest(ctx, c.Param("requestID"), req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "patch request")
		return
	}

	response.OK(c, http.StatusOK, request)
}

// createStaff godoc
// @Summary      Add a staff member
// @Tags         Operations
// @Accept       json
// @Produce      json
// @Param        staff  body      dto.CreateStaffRequest  true  "Staff details"
// @Success      201    {object}  response.Envelope{data=domain.Staff}
// @Failure      400    {object}  response.Envelope
// @Security     BearerAuth
// @Router       /staff [post]
func (h *operationsHandler) createStaff(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateStaffRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	staff, err := h.staffService.CreateStaff(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create staff")
		return
	}

	response.OK(c, http.StatusCreated, staff)
}

// listStaff godoc
// @Summary      List staff members
// @Tags         Operations
// @Produce      json
// @Success      200  {object}  response.Envelope{data=[]domain.Staff}
// @Security     BearerAuth
// @Router       /staff [get]
func (h *operationsHandler) listStaff(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	staff, err := h.staffService.ListStaff(ctx)
	if err != nil {
		respondServiceError(c, logger, err, "list staff")
		return
	}

	response.OK(c, http.StatusOK, staff)
}

// getStaff godoc
// @Summary      Get a staff member by ID
// @Tags         Operations
// @Produce      json
// @Param        staffID  path      string  true  "Staff ID"
// @Success      200      {object}  response.Envelope{data=domain.Staff}
// @Failure      404      {object}  response.Envelope
// @Security     BearerAuth
// @Router       /staff/{staffID} [get]
func (h *operationsHandler) getStaff(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	staff, err := h.staffService.GetStaffByID(ctx, c.Param("staffID"))
	if err != nil {
		respondServiceError(c, logger, err, "get staff")
		return
	}

	response.OK(c, http.StatusOK, staff)
}

// updateStaff godoc
// @Summary      Update a staff member
// @Tags         Operations
// @Accept       json
// @Produce      json
// @Param        staffID  path      string                  true  "Staff ID"
// @Param        staff    body      dto.UpdateStaffRequest  true  "Fields to update"
// @Success      200      {object}  response.Envelope{data=domain.Staff}
// @Failure      404      {object}  response.Envelope
// @Security     BearerAuth
// @Router       /staff/{staffID} [put]
func (h *operationsHandler) updateStaff(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.UpdateStaffRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	staff, err := h.staffService.UpdateStaff(ctx, c.Param("staffID"), req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "update staff")
		return
	}

	response.OK(c, http.StatusOK, staff)
}

// deleteStaff godoc
// @Summary      Remove a staff member
// @Tags         Operations
// @Param        staffID  path  string  true  "Staff ID"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Security     BearerAuth
// @Router       /staff/{staffID} [delete]
func (h *operationsHandler) deleteStaff(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	if err := h.staffService.DeleteStaff(ctx, c.Param("staffID")); err != nil {
		respondServiceError(c, logger, err, "delete staff")
		return
	}

	response.NoContent(c)
}
