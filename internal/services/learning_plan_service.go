package services

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"skillsphere/internal/models/db_models"
	"skillsphere/internal/repositories"
	"skillsphere/pkg/utils"
)

const maxThumbnailURLLength = 512

var imageURLPattern = regexp.MustCompile(`(?i)^https?://.*\.(jpg|jpeg|png|gif|bmp|webp)$`)

type LearningPlanInput struct {
	Title        string
	Description  string
	Duration     *int
	ThumbnailURL string
	Status       string
}

func (in LearningPlanInput) validate() (db_models.LearningPlanStatus, error) {
	if strings.TrimSpace(in.Title) == "" {
		return "", utils.NewValidationError("title is required")
	}
	if in.Duration != nil && *in.Duration < 0 {
		return "", utils.NewValidationError("duration cannot be negative")
	}
	if err := validateThumbnailURL(in.ThumbnailURL); err != nil {
		return "", err
	}
	if in.Status == "" {
		return db_models.LearningPlanNotStarted, nil
	}
	return parseLearningPlanStatus(in.Status)
}

// validateThumbnailURL accepts an empty value.
func validateThumbnailURL(url string) error {
	if url == "" {
		return nil
	}
	if len(url) > maxThumbnailURLLength {
		return utils.NewValidationError("thumbnail URL is too long (max 512 characters)")
	}
	if !imageURLPattern.MatchString(url) {
		return utils.NewValidationError("invalid thumbnail URL: must be an http(s) image URL")
	}
	return nil
}

func parseLearningPlanStatus(raw string) (db_models.LearningPlanStatus, error) {
	status := db_models.LearningPlanStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", utils.NewValidationError("invalid learning plan status: " + raw)
	}
	return status, nil
}

type LearningPlanServiceInterface interface {
	Create(ctx context.Context, caller *Principal, in LearningPlanInput) (*db_models.LearningPlan, error)
	ListMine(ctx context.Context, caller *Principal) ([]db_models.LearningPlan, error)
	ListAll(ctx context.Context, status string) ([]db_models.LearningPlan, error)
	Update(ctx context.Context, planID uint, caller *Principal, in LearningPlanInput) (*db_models.LearningPlan, error)
	UpdateStatus(ctx context.Context, planID uint, caller *Principal, status string) (*db_models.LearningPlan, error)
}

type LearningPlanService struct {
	planRepo repositories.LearningPlanRepository
	guard    OwnershipGuard
	log      *zap.Logger
}

func NewLearningPlanService(planRepo repositories.LearningPlanRepository, log *zap.Logger) LearningPlanServiceInterface {
	return &LearningPlanService{
		planRepo: planRepo,
		log:      log.Named("learning_plans"),
	}
}

func (s *LearningPlanService) Create(ctx context.Context, caller *Principal, in LearningPlanInput) (*db_models.LearningPlan, error) {
	if caller == nil {
		return nil, utils.ErrUnauthenticated
	}
	if caller.Source != SourceUser {
		return nil, utils.NewForbiddenError("only users can create learning plans")
	}
	status, err := in.validate()
	if err != nil {
		return nil, err
	}

	plan := &db_models.LearningPlan{
		OwnerID:      caller.ID,
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		Duration:     in.Duration,
		ThumbnailURL: in.ThumbnailURL,
		Status:       status,
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, storeError(s.log, "create learning plan", err)
	}
	return plan, nil
}

func (s *LearningPlanService) ListMine(ctx context.Context, caller *Principal) ([]db_models.LearningPlan, error) {
	if caller == nil {
		return nil, utils.ErrUnauthenticated
	}
	if caller.Source != SourceUser {
		return []db_models.LearningPlan{}, nil
	}

	plans, err := s.planRepo.ListByOwner(ctx, caller.ID)
	if err != nil {
		return nil, storeError(s.log, "list learning plans", err)
	}
	return plans, nil
}

// ListAll returns every plan, optionally narrowed to one status.
func (s *LearningPlanService) ListAll(ctx context.Context, status string) ([]db_models.LearningPlan, error) {
	var filter db_models.LearningPlanStatus
	if status != "" {
		parsed, err := parseLearningPlanStatus(status)
		if err != nil {
			return nil, err
		}
		filter = parsed
	}

	plans, err := s.planRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, storeError(s.log, "list all learning plans", err)
	}
	return plans, nil
}

func (s *LearningPlanService) Update(ctx context.Context, planID uint, caller *Principal, in LearningPlanInput) (*db_models.LearningPlan, error) {
	plan, err := s.load(ctx, planID, caller)
	if err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = string(plan.Status)
	}
	status, err := in.validate()
	if err != nil {
		return nil, err
	}

	plan.Title = strings.TrimSpace(in.Title)
	plan.Description = in.Description
	plan.Duration = in.Duration
	plan.ThumbnailURL = in.ThumbnailURL
	plan.Status = status
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, storeError(s.log, "update learning plan", err)
	}
	return plan, nil
}

func (s *LearningPlanService) UpdateStatus(ctx context.Context, planID uint, caller *Principal, status string) (*db_models.LearningPlan, error) {
	parsed, err := parseLearningPlanStatus(status)
	if err != nil {
		return nil, err
	}
	plan, err := s.load(ctx, planID, caller)
	if err != nil {
		return nil, err
	}

	plan.Status = parsed
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, storeError(s.log, "update learning plan status", err)
	}
	return plan, nil
}

func (s *LearningPlanService) load(ctx context.Context, planID uint, caller *Principal) (*db_models.LearningPlan, error) {
	plan, err := s.planRepo.FindById(ctx, planID)
	if err != nil {
		return nil, storeError(s.log, "find learning plan", err)
	}
	if plan == nil {
		return nil, utils.ErrLearningPlanNotFound
	}
	if err := s.guard.Authorize(plan.OwnerID, caller, OwnerOnly); err != nil {
		return nil, err
	}
	return plan, nil
}
