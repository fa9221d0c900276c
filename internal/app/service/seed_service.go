package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"problem_app/internal/domain/repository"
	"problem_app/internal/logger"
)

const (
	seedUsername = "test"
	seedEmail    = "test@example.com"
	seedPassword = "test"
)

// SeedService fills an empty database with the default catalogue and a test account.
type SeedService struct {
	db           *sql.DB
	problemRepo  repository.ProblemRepository
	categoryRepo repository.CategoryRepository
	users        *UserService
	log          *logger.Logger
	now          func() time.Time
}

func NewSeedService(db *sql.DB, problemRepo repository.ProblemRepository, categoryRepo repository.CategoryRepository, users *UserService, log *logger.Logger) *SeedService {
	return &SeedService{
		db:           db,
		problemRepo:  problemRepo,
		categoryRepo: categoryRepo,
		users:        users,
		log:          log,
		now:          time.Now,
	}
}

// Seed runs every seeding step and returns the joined errors. A failing step
// does not stop the others.
func (s *SeedService) Seed(ctx context.Context) error {
	return errors.Join(
		s.seedCategories(ctx),
		s.seedProblems(ctx),
		s.seedTestUser(ctx),
	)
}

func (s *SeedService) seedCategories(ctx context.Context) error {
	n, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if n > 0 {
		return nil
	}

	now := s.now().UTC()
	for _, c := range defaultCategories {
		c.ID = uuid.NewString()
		c.IsActive = true
		c.CreatedAt = now
		if err := s.categoryRepo.Create(ctx, &c); err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
	}
	s.log.Info("seeded categories", "count", len(defaultCategories))
	return nil
}

// seedProblems inserts the defaults with their fixed numbers in one transaction.
func (s *SeedService) seedProblems(ctx context.Context) error {
	n, err := s.problemRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed problems: %w", err)
	}
	if n > 0 {
		return nil
	}

	now := s.now().UTC()
	err = repository.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, p := range defaultProblems {
			p.ID = uuid.NewString()
			p.IsActive = true
			p.CreatedAt = now
			p.UpdatedAt = now
			if err := s.problemRepo.Create(ctx, tx, &p); err != nil {
				return fmt.Errorf("seed problem %d: %w", p.ProblemNumber, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("seeded problems", "count", len(defaultProblems))
	return nil
}

func (s *SeedService) seedTestUser(ctx context.Context) error {
	exists, err := s.users.Exists(ctx, seedUsername)
	if err != nil {
		return fmt.Errorf("seed test user: %w", err)
	}
	if exists {
		return nil
	}
	if _, err := s.users.Create(ctx, seedUsername, seedEmail, seedPassword); err != nil {
		return fmt.Errorf("seed test user: %w", err)
	}
	s.log.Info("seeded test user", "username", seedUsername)
	return nil
}
