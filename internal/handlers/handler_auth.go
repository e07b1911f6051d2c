package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kmateev/biz_admin_app/internal/core/services"
	"github.com/kmateev/biz_admin_app/internal/dto"
	"github.com/kmateev/biz_admin_app/pkg/response"
)

type authHandler struct {
	authService *services.AuthService
}

func newAuthHandler(authService *services.AuthService) *authHandler {
	return &authHandler{authService: authService}
}

// registerAuthRoutes registers the public authentication routes.
func registerAuthRoutes(rg *gin.RouterGroup, authService *services.AuthService) {
	h := newAuthHandler(authService)
	rg.POST("/login", h.login)
}

// login godoc
// @Summary      Authenticate a user
// @Description  Verifies credentials and returns a signed JWT.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      dto.LoginRequest  true  "Login credentials"
// @Success      200          {object}  response.Envelope{data=dto.LoginResponse}
// @Failure      400          {object}  response.Envelope
// @Failure      401          {object}  response.Envelope
// @Router       /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	ctx, logger := handlerCtx(c)

	var req dto.LoginRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	res, err := h.authService.Login(ctx, req)
	if err != nil {
		respondServiceError(c, logger, err, "login")
		return
	}

	response.OK(c, http.StatusOK, res)
}
