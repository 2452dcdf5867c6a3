package repositories

import (
	"context"

	"gorm.io/gorm"
	"skillsphere/internal/models/db_models"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *db_models.SubscriptionPlan) error
	FindById(ctx context.Context, id uint) (*db_models.SubscriptionPlan, error)
	FindByIdForUpdate(ctx context.Context, id uint) (*db_models.SubscriptionPlan, error)
	// FindByNameForShare takes a shared lock so the plan cannot be deleted
	// while the surrounding transaction references it.
	FindByNameForShare(ctx context.Context, name string) (*db_models.SubscriptionPlan, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	GetAllPlans(ctx context.Context) ([]db_models.SubscriptionPlan, error)
	Update(ctx context.Context, plan *db_models.SubscriptionPlan) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type PlanRepositoryImpl struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &PlanRepositoryImpl{db: db}
}

func (p *PlanRepositoryImpl) Create(ctx context.Context, plan *db_models.SubscriptionPlan) error {
	return translateErr(p.db.WithContext(ctx).Create(plan).Error)
}

func (p *PlanRepositoryImpl) FindById(ctx context.Context, id uint) (*db_models.SubscriptionPlan, error) {
	var plan db_models.SubscriptionPlan
	found, err := firstOrNil(p.db.WithContext(ctx).First(&plan, "id = ?", id).Error)
	if !found {
		return nil, err
	}
	return &plan, nil
}

func (p *PlanRepositoryImpl) FindByIdForUpdate(ctx context.Context, id uint) (*db_models.SubscriptionPlan, error) {
	var plan db_models.SubscriptionPlan
	found, err := firstOrNil(p.db.WithContext(ctx).Clauses(forUpdate()).First(&plan, "id = ?", id).Error)
	if !found {
		return nil, err
	}
	return &plan, nil
}

func (p *PlanRepositoryImpl) FindByNameForShare(ctx context.Context, name string) (*db_models.SubscriptionPlan, error) {
	var plan db_models.SubscriptionPlan
	found, err := firstOrNil(p.db.WithContext(ctx).Clauses(forShare()).First(&plan, "name = ?", name).Error)
	if !found {
		return nil, err
	}
	return &plan, nil
}

func (p *PlanRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Model(&db_models.SubscriptionPlan{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (p *PlanRepositoryImpl) GetAllPlans(ctx context.Context) ([]db_models.SubscriptionPlan, error) {

	var plans []db_models.SubscriptionPlan
	err := p.db.WithContext(ctx).Order("price ASC, id ASC").Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (p *PlanRepositoryImpl) Update(ctx context.Context, plan *db_models.SubscriptionPlan) error {
	return translateErr(p.db.WithContext(ctx).Save(plan).Error)
}

func (p *PlanRepositoryImpl) Delete(ctx context.Context, id uint) (int64, error) {
	res := p.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.SubscriptionPlan{})
	return res.RowsAffected, res.Error
}
