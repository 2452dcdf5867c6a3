package repositories

import (
	"context"

	"gorm.io/gorm"
	"skillsphere/internal/models/db_models"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *db_models.Subscription) error
	FindById(ctx context.Context, id uint) (*db_models.Subscription, error)
	ListByUser(ctx context.Context, userID uint) ([]db_models.Subscription, error)
	ListActiveByUser(ctx context.Context, userID uint) ([]db_models.Subscription, error)
	ListAll(ctx context.Context) ([]db_models.Subscription, error)
	// ListActiveEndedBefore returns active subscriptions whose end date is before ts.
	ListActiveEndedBefore(ctx context.Context, ts int64) ([]db_models.Subscription, error)
	CountByPlanName(ctx context.Context, planName string) (int64, error)
	Update(ctx context.Context, sub *db_models.Subscription) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *db_models.Subscription) error {
	return translateErr(r.db.WithContext(ctx).Create(sub).Error)
}

func (r *subscriptionRepository) FindById(ctx context.Context, id uint) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	found, err := firstOrNil(r.db.WithContext(ctx).First(&sub, "id = ?", id).Error)
	if !found {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) ListByUser(ctx context.Context, userID uint) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subscriptionRepository) ListActiveByUser(ctx context.Context, userID uint) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("id").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subscriptionRepository) ListAll(ctx context.Context) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	if err := r.db.WithContext(ctx).Order("id").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subscriptionRepository) ListActiveEndedBefore(ctx context.Context, ts int64) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := r.db.WithContext(ctx).
		Where("active = ? AND end_date IS NOT NULL AND end_date < ?", true, ts).
		Order("id").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subscriptionRepository) CountByPlanName(ctx context.Context, planName string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("plan_name = ?", planName).
		Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) Update(ctx context.Context, sub *db_models.Subscription) error {
	return translateErr(r.db.WithContext(ctx).Save(sub).Error)
}

func (r *subscriptionRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.Subscription{})
	return res.RowsAffected, res.Error
}
