package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kmateev/biz_admin_app/internal/core/services"
	"github.com/kmateev/biz_admin_app/internal/dto"
	"github.com/kmateev/biz_admin_app/pkg/pagination"
	"github.com/kmateev/biz_admin_app/pkg/response"
)

type userHandler struct {
	userService *services.UserService
}

func newUserHandler(userService *services.UserService) *userHandler {
	return &userHandler{userService: userService}
}

// registerUserRoutes registers routes related to users.
func registerUserRoutes(rg *gin.RouterGroup, userService *services.UserService) {
	h := newUserHandler(userService)
	users := rg.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:userID", h.getUser)
		users.PUT("/:userID", h.updateUser)
	}
}

// createUser godoc
// @Summary      Create a new user
// @Description  Admin only.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        user  body      dto.CreateUserRequest  true  "User details"
// @Success      201   {object}  response.Envelope{data=domain.User}
// @Failure      400   {object}  response.Envelope
// @Failure      403   {object}  response.Envelope
// @Failure      409   {object}  response.Envelope
// @Security     BearerAuth
// @Router       /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.CreateUserRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	if !requireAdmin(c, logger) {
		return
	}

	user, err := h.userService.CreateUser(ctx, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "create user")
		return
	}

	response.OK(c, http.StatusCreated, user)
}

// listUsers godoc
// @Summary      List users
// @Tags         Users
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Items per page"
// @Success      200    {object}  response.Envelope{data=response.List}
// @Security     BearerAuth
// @Router       /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	ctx, logger := handlerCtx(c)
	params := pagination.Parse(c)

	users, total, err := h.userService.ListUsers(ctx, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "list users")
		return
	}

	response.OK(c, http.StatusOK, response.List{Items: users, Total: total, Page: params.Page, Limit: params.Limit})
}

// getUser godoc
// @Summary      Get a user by ID
// @Tags         Users
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {object}  response.Envelope{data=domain.User}
// @Failure      404     {object}  response.Envelope
// @Security     BearerAuth
// @Router       /users/{userID} [get]
func (h *userHandler) getUser(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	user, err := h.userService.GetUserByID(ctx, c.Param("userID"))
	if err != nil {
		respondServiceError(c, logger, err, "get user")
		return
	}

	response.OK(c, http.StatusOK, user)
}

// updateUser godoc
// @Summary      Update a user
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        userID  path      string                 true  "User ID"
// @Param        user    body      dto.UpdateUserRequest  true  "Fields to update"
// @Success      200     {object}  response.Envelope{data=domain.User}
// @Failure      400     {object}  response.Envelope
// @Failure      404     {object}  response.Envelope
// @Security     BearerAuth
// @Router       /users/{userID} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.UpdateUserRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	user, err := h.userService.UpdateUser(ctx, c.Param("userID"), req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "update user")
		return
	}

	response.OK(c, http.StatusOK, user)
}
