package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/kmateev/biz_admin_app/internal/apperrors"
	"github.com/kmateev/biz_admin_app/internal/core/domain"
	"github.com/kmateev/biz_admin_app/internal/middleware"
	"github.com/kmateev/biz_admin_app/internal/utils"
	"github.com/kmateev/biz_admin_app/pkg/response"
)

type HandlerHelpersTestSuite struct {
	suite.Suite
	logger *slog.Logger
}

func (s *HandlerHelpersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.logger = slog.Default()
}

func (s *HandlerHelpersTestSuite) newContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func (s *HandlerHelpersTestSuite) decodeEnvelope(w *httptest.ResponseRecorder) response.Envelope {
	var env response.Envelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func (s *HandlerHelpersTestSuite) TestRespondServiceError_StatusMapping() {
	cases := []struct {
		err        error
		wantStatus int
	}{
		{fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation), http.StatusBadRequest},
		{apperrors.ErrUnauthorized, http.StatusUnauthorized},
		{apperrors.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: username taken", apperrors.ErrDuplicate), http.StatusConflict},
		{fmt.Errorf("%w: invoice already paid", apperrors.ErrConflict), http.StatusConflict},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		c, w := s.newContext("")
		respondServiceError(c, s.logger, tc.err, "test action")

		s.Equal(tc.wantStatus, w.Code, "error %v", tc.err)
		env := s.decodeEnvelope(w)
		s.False(env.Success)
		s.NotEmpty(env.Error)
	}
}

func (s *HandlerHelpersTestSuite) TestRespondServiceError_HidesInternalDetail() {
	c, w := s.newContext("")
	respondServiceError(c, s.logger, errors.New("pq: relation accounts does not exist"), "test action")

	s.Equal(http.StatusInternalServerError, w.Code)
	env := s.decodeEnvelope(w)
	s.Equal("internal server error", env.Error)
	s.NotContains(w.Body.String(), "relation")
}

func (s *HandlerHelpersTestSuite) TestBindJSON_InvalidBody() {
	c, w := s.newContext(`{"username":`)

	var req struct {
		Username string `json:"username" binding:"required"`
	}
	ok := bindJSON(c, s.logger, &req)

	s.False(ok)
	s.Equal(http.StatusBadRequest, w.Code)
	env := s.decodeEnvelope(w)
	s.False(env.Success)
	s.Contains(env.Error, "invalid request format")
}

func (s *HandlerHelpersTestSuite) TestBindJSON_MissingRequiredField() {
	c, w := s.newContext(`{}`)

	var req struct {
		Username string `json:"username" binding:"required"`
	}
	ok := bindJSON(c, s.logger, &req)

	s.False(ok)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerHelpersTestSuite) TestRequireUserID_MissingAuthContext() {
	c, w := s.newContext("")

	userID, ok := requireUserID(c, s.logger)

	s.False(ok)
	s.Empty(userID)
	s.Equal(http.StatusUnauthorized, w.Code)
	env := s.decodeEnvelope(w)
	s.False(env.Success)
}

const adminCheckSecret = "test-secret-for-role-checks"

// adminCheckRouter runs the real auth middleware so the role claim travels
// through the same context keys production requests use.
func (s *HandlerHelpersTestSuite) adminCheckRouter() *gin.Engine {
	r := gin.New()
	r.POST("/admin-check", middleware.AuthMiddleware(adminCheckSecret), func(c *gin.Context) {
		if !requireAdmin(c, s.logger) {
			return
		}
		response.OK(c, http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func (s *HandlerHelpersTestSuite) serveWithRole(role domain.UserRole) *httptest.ResponseRecorder {
	token, err := utils.GenerateJWT("user-1", "someone", string(role), adminCheckSecret, "test", time.Hour)
	s.Require().NoError(err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin-check", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	s.adminCheckRouter().ServeHTTP(w, req)
	return w
}

func (s *HandlerHelpersTestSuite) TestRequireAdmin_AdminRolePasses() {
	w := s.serveWithRole(domain.RoleAdmin)

	s.Equal(http.StatusOK, w.Code)
	env := s.decodeEnvelope(w)
	s.True(env.Success)
}

func (s *HandlerHelpersTestSuite) TestRequireAdmin_UserRoleForbidden() {
	w := s.serveWithRole(domain.RoleUser)

	s.Equal(http.StatusForbidden, w.Code)
	env := s.decodeEnvelope(w)
	s.False(env.Success)
	s.Equal("admin role required", env.Error)
}

func (s *HandlerHelpersTestSuite) TestRequireAdmin_MissingAuthContext() {
	c, w := s.newContext("")

	ok := requireAdmin(c, s.logger)

	s.False(ok)
	s.Equal(http.StatusForbidden, w.Code)
}

func TestHandlerHelpersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerHelpersTestSuite))
}
