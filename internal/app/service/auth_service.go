package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"problem_app/internal/common"
	"problem_app/internal/domain/model"
	"problem_app/internal/logger"
	"problem_app/internal/platform/metrics"
)

// TokenIssuer mints bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *model.User) (string, time.Time, error)
}

type AuthService struct {
	users  *UserService
	tokens TokenIssuer
	log    *logger.Logger
}

func NewAuthService(users *UserService, tokens TokenIssuer, log *logger.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

var errInvalidCredentials = common.Wrapf(common.ErrUnauthorized, "Invalid username or password")

// Login verifies credentials and issues a token. Unknown users, inactive
// users and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, common.Validationf("Username and password are required")
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if isNotFound(err) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.users.VerifyPassword(req.Password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, errInvalidCredentials
	}

	if err := s.users.UpgradeHash(ctx, user, req.Password); err != nil {
		s.log.Warn("failed to upgrade legacy password hash", "user_id", user.ID, "error", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return s.issue(user)
}

// Register creates an active account and logs it in.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, common.Validationf("Username, email and password are required")
	}

	exists, err := s.users.Exists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, common.Wrapf(common.ErrBadRequest, "Username already exists")
	}

	user, err := s.users.Create(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, common.ErrConflict) {
			return nil, common.Wrapf(common.ErrBadRequest, "Username already exists")
		}
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.log.Info("user registered", "user_id", user.ID, "username", user.Username)
	return s.issue(user)
}

func (s *AuthService) issue(user *model.User) (*LoginResponse, error) {
	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &LoginResponse{
		Token:     token,
		Username:  user.Username,
		Email:     user.Email,
		ExpiresAt: expiresAt,
	}, nil
}
