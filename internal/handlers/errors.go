package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kmateev/biz_admin_app/internal/apperrors"
	"github.com/kmateev/biz_admin_app/internal/core/domain"
	"github.com/kmateev/biz_admin_app/internal/middleware"
	"github.com/kmateev/biz_admin_app/pkg/response"
)

// respondServiceError maps apperrors sentinels onto HTTP statuses. Unknown
// errors become an opaque 500 so internals never leak to clients.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		response.Err(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized", slog.String("action", action))
		response.Err(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("action", action))
		response.Err(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflict", slog.String("action", action), slog.String("error", err.Error()))
		response.Err(c, http.StatusConflict, err.Error())
	default:
		logger.Error("Unexpected error", slog.String("action", action), slog.String("error", err.Error()))
		response.Err(c, http.StatusInternalServerError, "internal server error")
	}
}

// bindJSON binds the request body, answering 400 on failure.
func bindJSON(c *gin.Context, logger *slog.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind request body", slog.String("error", err.Error()))
		response.Err(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return false
	}
	return true
}

// requireUserID pulls the authenticated user out of the gin context,
// answering 401 when the auth middleware did not run or the token was bad.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		response.Err(c, http.StatusUnauthorized, "unauthorized")
		return "", false
	}
	return userID, true
}

// requireAdmin answers 403 unless the authenticated user carries the admin
// role.
func requireAdmin(c *gin.Context, logger *slog.Logger) bool {
	role, ok := middleware.GetUserRoleFromContext(c)
	if !ok || role != string(domain.RoleAdmin) {
		logger.Warn("Admin-only endpoint called without admin role", "role", role)
		response.Err(c, http.StatusForbidden, "admin role required")
		return false
	}
	return true
}

// handlerCtx is a convenience bundle for the values every handler needs.
func handlerCtx(c *gin.Context) (context.Context, *slog.Logger) {
	ctx := c.Request.Context()
	return ctx, middleware.GetLoggerFromCtx(ctx)
}
