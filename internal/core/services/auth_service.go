package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kmateev/biz_admin_app/internal/apperrors"
	portsrepo "github.com/kmateev/biz_admin_app/internal/core/ports/repositories"
	"github.com/kmateev/biz_admin_app/internal/dto"
	"github.com/kmateev/biz_admin_app/internal/middleware"
	"github.com/kmateev/biz_admin_app/internal/utils"
)

// AuthService verifies credentials and issues JWTs.
type AuthService struct {
	userRepo  portsrepo.UserRepository
	jwtSecret string
	jwtIssuer string
	jwtExpiry time.Duration
}

func NewAuthService(userRepo portsrepo.UserRepository, jwtSecret, jwtIssuer string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtIssuer: jwtIssuer,
		jwtExpiry: jwtExpiry,
	}
}

// Login checks the credentials and returns a signed token with the user.
// Unknown usernames and wrong passwords both come back as ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("Login attempt with wrong password", "username", req.Username)
		return nil, apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(user.UserID, user.Username, string(user.Role), s.jwtSecret, s.jwtIssuer, s.jwtExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.LoginResponse{Token: token, User: *user}, nil
}
