package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"problem_app/internal/common"
	"problem_app/internal/domain/model"
	"problem_app/internal/domain/repository"
	"problem_app/internal/logger"
	"problem_app/internal/platform/metrics"
)

// allCategories is the filter value the client sends for "no filter".
const allCategories = "all"

type ProblemService struct {
	db           *sql.DB // For transactions
	problemRepo  repository.ProblemRepository
	sequenceRepo repository.SequenceRepository
	categoryRepo repository.CategoryRepository
	renderer     *Renderer
	log          *logger.Logger
	now          func() time.Time
}

func NewProblemService(
	db *sql.DB,
	problemRepo repository.ProblemRepository,
	sequenceRepo repository.SequenceRepository,
	categoryRepo repository.CategoryRepository,
	renderer *Renderer,
	log *logger.Logger,
) *ProblemService {
	return &ProblemService{
		db:           db,
		problemRepo:  problemRepo,
		sequenceRepo: sequenceRepo,
		categoryRepo: categoryRepo,
		renderer:     renderer,
		log:          log,
		now:          time.Now,
	}
}

func (s *ProblemService) ListProblems(ctx context.Context, category string) ([]model.Problem, error) {
	category = strings.TrimSpace(category)
	if strings.EqualFold(category, allCategories) {
		category = ""
	}
	problems, err := s.problemRepo.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	return problems, nil
}

// GetProblem returns an active problem with its description rendered to HTML.
func (s *ProblemService) GetProblem(ctx context.Context, id string) (*model.Problem, error) {
	problem, err := s.problemRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, common.Wrapf(common.ErrNotFound, "Problem not found")
		}
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}
	problem.DescriptionHTML = s.renderer.Markdown(problem.Description)
	return problem, nil
}

// CreateProblem stores a new problem. The id, number, active flag and
// timestamps supplied by the caller are discarded.
func (s *ProblemService) CreateProblem(ctx context.Context, p model.Problem) (*model.Problem, error) {
	if err := validateProblem(&p); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	p.ID = uuid.NewString()
	p.IsActive = true
	p.CreatedAt = now
	p.UpdatedAt = now
	p.DescriptionHTML = ""

	err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		number, err := s.sequenceRepo.NextProblemNumber(ctx, tx)
		if err != nil {
			return err
		}
		p.ProblemNumber = number
		return s.problemRepo.Create(ctx, tx, &p)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create problem: %w", err)
	}

	metrics.ProblemsCreatedTotal.Inc()
	s.log.Info("problem created", "problem_id", p.ID, "problem_number", p.ProblemNumber)
	return &p, nil
}

// UpdateProblem replaces the editable fields of an existing problem. The
// stored number, active flag and creation time are kept.
func (s *ProblemService) UpdateProblem(ctx context.Context, id string, p model.Problem) (*model.Problem, error) {
	if err := validateProblem(&p); err != nil {
		return nil, err
	}

	existing, err := s.problemRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, common.Wrapf(common.ErrNotFound, "Problem not found")
		}
		return nil, fmt.Errorf("failed to load problem: %w", err)
	}

	p.ID = existing.ID
	p.ProblemNumber = existing.ProblemNumber
	p.IsActive = existing.IsActive
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = s.now().UTC()
	p.DescriptionHTML = ""

	if err := s.problemRepo.Update(ctx, nil, &p); err != nil {
		if isNotFound(err) {
			return nil, common.Wrapf(common.ErrNotFound, "Problem not found")
		}
		return nil, fmt.Errorf("failed to update problem: %w", err)
	}
	return &p, nil
}

func (s *ProblemService) DeleteProblem(ctx context.Context, id string) error {
	if err := s.problemRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return common.Wrapf(common.ErrNotFound, "Problem not found")
		}
		return fmt.Errorf("failed to delete problem: %w", err)
	}
	s.log.Info("problem deleted", "problem_id", id)
	return nil
}

func (s *ProblemService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory stores c as supplied, deriving Key from Name when it is empty.
// Counts are taken as given.
func (s *ProblemService) CreateCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, common.Validationf("Category name is required")
	}
	if c.ProblemCount < 0 || c.EasyCount < 0 || c.MediumCount < 0 || c.HardCount < 0 {
		return nil, common.Validationf("Category counts must not be negative")
	}
	if strings.TrimSpace(c.Key) == "" {
		c.Key = slug.Make(c.Name)
	}

	c.ID = uuid.NewString()
	c.IsActive = true
	c.CreatedAt = s.now().UTC()

	if err := s.categoryRepo.Create(ctx, &c); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &c, nil
}

func validateProblem(p *model.Problem) error {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return common.Validationf("Title is required")
	}
	if !p.Difficulty.Valid() {
		return common.Validationf("Difficulty must be one of Easy, Medium, Hard")
	}
	if p.Likes < 0 {
		return common.Validationf("Likes must not be negative")
	}
	if p.AcceptanceRate < 0 || p.AcceptanceRate > 100 {
		return common.Validationf("Acceptance rate must be between 0 and 100")
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return nil
}
