package repositories

import (
	"context"

	"gorm.io/gorm"
	"skillsphere/internal/models/db_models"
)

type LearningPlanRepository interface {
	Create(ctx context.Context, plan *db_models.LearningPlan) error
	FindById(ctx context.Context, id uint) (*db_models.LearningPlan, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]db_models.LearningPlan, error)
	// ListAll filters by status unless status is empty.
	ListAll(ctx context.Context, status db_models.LearningPlanStatus) ([]db_models.LearningPlan, error)
	Update(ctx context.Context, plan *db_models.LearningPlan) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type learningPlanRepository struct {
	db *gorm.DB
}

func NewLearningPlanRepository(db *gorm.DB) LearningPlanRepository {
	return &learningPlanRepository{db: db}
}

func (r *learningPlanRepository) Create(ctx context.Context, plan *db_models.LearningPlan) error {
	return translateErr(r.db.WithContext(ctx).Create(plan).Error)
}

func (r *learningPlanRepository) FindById(ctx context.Context, id uint) (*db_models.LearningPlan, error) {
	var plan db_models.LearningPlan
	found, err := firstOrNil(r.db.WithContext(ctx).First(&plan, "id = ?", id).Error)
	if !found {
		return nil, err
	}
	return &plan, nil
}

func (r *learningPlanRepository) ListByOwner(ctx context.Context, ownerID uint) ([]db_models.LearningPlan, error) {
	var plans []db_models.LearningPlan
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *learningPlanRepository) ListAll(ctx context.Context, status db_models.LearningPlanStatus) ([]db_models.LearningPlan, error) {
	var plans []db_models.LearningPlan
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *learningPlanRepository) Update(ctx context.Context, plan *db_models.LearningPlan) error {
	return translateErr(r.db.WithContext(ctx).Save(plan).Error)
}

func (r *learningPlanRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.LearningPlan{})
	return res.RowsAffected, res.Error
}
