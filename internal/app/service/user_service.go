package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"problem_app/internal/app/presence"
	"problem_app/internal/common"
	"problem_app/internal/common/security"
	"problem_app/internal/domain/model"
	"problem_app/internal/domain/repository"
	"problem_app/internal/logger"
)

// UserService is the credential store plus the online users view.
type UserService struct {
	userRepo repository.UserRepository
	tracker  presence.Tracker
	window   time.Duration
	log      *logger.Logger
	now      func() time.Time
}

func NewUserService(userRepo repository.UserRepository, tracker presence.Tracker, window time.Duration, log *logger.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		tracker:  tracker,
		window:   window,
		log:      log,
		now:      time.Now,
	}
}

// FindByUsername returns the active user with exactly this username.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.userRepo.FindByUsername(ctx, username)
}

func (s *UserService) Exists(ctx context.Context, username string) (bool, error) {
	return s.userRepo.Exists(ctx, username)
}

// Create stores a new active user with a freshly hashed password.
func (s *UserService) Create(ctx context.Context, username, email, password string) (*model.User, error) {
	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *UserService) VerifyPassword(password, hash string) bool {
	return security.CheckPasswordHash(password, hash)
}

// UpgradeHash rehashes a legacy digest with bcrypt after a successful login.
func (s *UserService) UpgradeHash(ctx context.Context, user *model.User, password string) error {
	if !security.IsLegacyHash(user.PasswordHash) {
		return nil
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return err
	}
	user.PasswordHash = hash
	return nil
}

// Touch marks the user as seen now. Failures are logged and swallowed.
func (s *UserService) Touch(ctx context.Context, userID string) {
	if err := s.tracker.Touch(ctx, userID, s.now()); err != nil {
		s.log.Warn("failed to record presence", "user_id", userID, "error", err)
	}
}

// ListOnline returns every active user, flagged online when seen within the window.
func (s *UserService) ListOnline(ctx context.Context) ([]model.UserSummary, error) {
	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	seen, err := s.tracker.LastSeen(ctx, ids)
	if err != nil {
		s.log.Warn("presence lookup failed, reporting everyone offline", "error", err)
		seen = map[string]time.Time{}
	}

	cutoff := s.now().Add(-s.window)
	summaries := make([]model.UserSummary, 0, len(users))
	for _, u := range users {
		summary := model.UserSummary{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			IsActive: u.IsActive,
		}
		if at, ok := seen[u.ID]; ok {
			at := at
			summary.LastSeenAt = &at
			summary.Online = !at.Before(cutoff)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, common.ErrNotFound)
}
