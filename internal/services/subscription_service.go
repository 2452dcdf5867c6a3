package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
	"skillsphere/internal/models/db_models"
	"skillsphere/internal/repositories"
	"skillsphere/pkg/metrics"
	"skillsphere/pkg/utils"
)

// PlanInput is the admin payload for subscription plans. Description is a
// comma separated feature list.
type PlanInput struct {
	Name        string
	Description string
	Price       float64
}

func (in PlanInput) features() ([]string, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, utils.NewValidationError("plan name cannot be empty")
	}
	if in.Price < 0 || math.IsNaN(in.Price) || math.IsInf(in.Price, 0) {
		return nil, utils.NewValidationError("price cannot be negative")
	}

	var features []string
	for _, f := range strings.Split(in.Description, ",") {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	if len(features) == 0 {
		return nil, utils.NewValidationError("plan features cannot be empty")
	}
	return features, nil
}

type SubscriptionServiceInterface interface {
	CreateSubscription(ctx context.Context, userID uint, planName string) (*db_models.Subscription, error)
	UpdateSubscription(ctx context.Context, subscriptionID uint, planName string, active bool, caller *Principal) (*db_models.Subscription, error)
	GetUserSubscriptions(ctx context.Context, userID uint) ([]db_models.Subscription, error)
	GetAllSubscriptions(ctx context.Context) ([]db_models.Subscription, error)
	GetActiveSubscription(ctx context.Context, userID uint) (*db_models.Subscription, error)
	ExpireDue(ctx context.Context, now time.Time) (int, error)

	CreatePlan(ctx context.Context, in PlanInput) (*db_models.SubscriptionPlan, error)
	UpdatePlan(ctx context.Context, planID uint, in PlanInput) (*db_models.SubscriptionPlan, error)
	ListPlans(ctx context.Context) ([]db_models.SubscriptionPlan, error)
}

type SubscriptionService struct {
	store repositories.Store
	guard OwnershipGuard
	log   *zap.Logger
	now   func() time.Time
}

func NewSubscriptionService(store repositories.Store, log *zap.Logger) SubscriptionServiceInterface {
	return &SubscriptionService{
		store: store,
		log:   log.Named("subscriptions"),
		now:   time.Now,
	}
}

// CreateSubscription closes every active subscription of the user and opens a
// new one-month subscription, all in one transaction. The user row lock
// serializes concurrent creations for the same user.
func (s *SubscriptionService) CreateSubscription(ctx context.Context, userID uint, planName string) (*db_models.Subscription, error) {
	planName = strings.TrimSpace(planName)
	if planName == "" {
		return nil, utils.NewValidationError("plan is required")
	}

	var created *db_models.Subscription
	err := s.store.Transaction(ctx, func(tx repositories.Repos) error {
		plan, err := tx.Plans().FindByNameForShare(ctx, planName)
		if err != nil {
			return err
		}
		if plan == nil {
			return utils.ErrPlanNotFound
		}

		user, err := tx.Users().FindUserByIdForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return utils.ErrUserNotFound
		}

		now := s.now()
		if err := deactivateActive(ctx, tx, userID, 0, now.Unix()); err != nil {
			return err
		}

		end := utils.AddMonthsUnix(now.Unix(), 1)
		created = &db_models.Subscription{
			UserID:    userID,
			PlanName:  plan.Name,
			StartDate: now.Unix(),
			EndDate:   &end,
			Active:    true,
		}
		return tx.Subscriptions().Create(ctx, created)
	})
	if err != nil {
		return nil, txError(s.log, "create subscription", err)
	}

	s.log.Info("subscription created",
		zap.Uint("user_id", userID), zap.String("plan", created.PlanName), zap.Uint("subscription_id", created.ID))
	return created, nil
}

// deactivateActive closes the user's active subscriptions except keep.
func deactivateActive(ctx context.Context, tx repositories.Repos, userID, keep uint, now int64) error {
	active, err := tx.Subscriptions().ListActiveByUser(ctx, userID)
	if err != nil {
		return err
	}
	for i := range active {
		if active[i].ID == keep {
			continue
		}
		active[i].Deactivate(now)
		if err := tx.Subscriptions().Update(ctx, &active[i]); err != nil {
			return err
		}
	}
	return nil
}

// UpdateSubscription changes plan and active flag. Reactivating a subscription
// closes the user's other active subscriptions in the same transaction.
func (s *SubscriptionService) UpdateSubscription(ctx context.Context, subscriptionID uint, planName string, active bool, caller *Principal) (*db_models.Subscription, error) {
	planName = strings.TrimSpace(planName)
	if planName == "" {
		return nil, utils.NewValidationError("plan is required")
	}

	var updated *db_models.Subscription
	err := s.store.Transaction(ctx, func(tx repositories.Repos) error {
		sub, err := tx.Subscriptions().FindById(ctx, subscriptionID)
		if err != nil {
			return err
		}
		if sub == nil {
			return utils.ErrSubscriptionNotFound
		}
		if err := s.guard.Authorize(sub.UserID, caller, OwnerOrAdmin); err != nil {
			return err
		}

		plan, err := tx.Plans().FindByNameForShare(ctx, planName)
		if err != nil {
			return err
		}
		if plan == nil {
			return utils.ErrPlanNotFound
		}

		now := s.now().Unix()
		sub.PlanName = plan.Name
		if active {
			if _, err := tx.Users().FindUserByIdForUpdate(ctx, sub.UserID); err != nil {
				return err
			}
			if err := deactivateActive(ctx, tx, sub.UserID, sub.ID, now); err != nil {
				return err
			}
			sub.Activate()
		} else {
			sub.Deactivate(now)
		}

		if err := tx.Subscriptions().Update(ctx, sub); err != nil {
			return err
		}
		updated = sub
		return nil
	})
	if err != nil {
		return nil, txError(s.log, "update subscription", err)
	}
	return updated, nil
}

func (s *SubscriptionService) GetUserSubscriptions(ctx context.Context, userID uint) ([]db_models.Subscription, error) {
	subs, err := s.store.Subscriptions().ListByUser(ctx, userID)
	if err != nil {
		return nil, storeError(s.log, "list user subscriptions", err)
	}
	return subs, nil
}

func (s *SubscriptionService) GetAllSubscriptions(ctx context.Context) ([]db_models.Subscription, error) {
	subs, err := s.store.Subscriptions().ListAll(ctx)
	if err != nil {
		return nil, storeError(s.log, "list subscriptions", err)
	}
	return subs, nil
}

// GetActiveSubscription returns nil when the user has no active subscription.
func (s *SubscriptionService) GetActiveSubscription(ctx context.Context, userID uint) (*db_models.Subscription, error) {
	active, err := s.store.Subscriptions().ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, storeError(s.log, "list active subscriptions", err)
	}
	if len(active) == 0 {
		return nil, nil
	}
	return &active[0], nil
}

// ExpireDue deactivates active subscriptions whose end date has passed and
// returns how many were closed.
func (s *SubscriptionService) ExpireDue(ctx context.Context, now time.Time) (int, error) {
	expired := 0
	err := s.store.Transaction(ctx, func(tx repositories.Repos) error {
		due, err := tx.Subscriptions().ListActiveEndedBefore(ctx, now.Unix())
		if err != nil {
			return err
		}
		for i := range due {
			due[i].Active = false
			if err := tx.Subscriptions().Update(ctx, &due[i]); err != nil {
				return err
			}
		}
		expired = len(due)
		return nil
	})
	if err != nil {
		return 0, txError(s.log, "expire subscriptions", err)
	}

	if expired > 0 {
		metrics.SubscriptionsExpired.Add(float64(expired))
		s.log.Info("subscriptions expired", zap.Int("count", expired))
	}
	return expired, nil
}

func (s *SubscriptionService) CreatePlan(ctx context.Context, in PlanInput) (*db_models.SubscriptionPlan, error) {
	features, err := in.features()
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	exists, err := s.store.Plans().ExistsByName(ctx, name)
	if err != nil {
		return nil, storeError(s.log, "check plan name", err)
	}
	if exists {
		return nil, utils.ErrPlanNameTaken
	}

	plan := &db_models.SubscriptionPlan{Name: name, Features: features, Price: in.Price}
	if err := s.store.Plans().Create(ctx, plan); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, utils.ErrPlanNameTaken
		}
		return nil, storeError(s.log, "create plan", err)
	}
	return plan, nil
}

// UpdatePlan rewrites a plan. Renaming is refused while subscriptions still
// reference the old name, because they are linked by name.
func (s *SubscriptionService) UpdatePlan(ctx context.Context, planID uint, in PlanInput) (*db_models.SubscriptionPlan, error) {
	features, err := in.features()
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)

	var updated *db_models.SubscriptionPlan
	err = s.store.Transaction(ctx, func(tx repositories.Repos) error {
		plan, err := tx.Plans().FindByIdForUpdate(ctx, planID)
		if err != nil {
			return err
		}
		if plan == nil {
			return utils.ErrPlanNotFound
		}

		if name != plan.Name {
			taken, err := tx.Plans().ExistsByName(ctx, name)
			if err != nil {
				return err
			}
			if taken {
				return utils.ErrPlanNameTaken
			}
			inUse, err := tx.Subscriptions().CountByPlanName(ctx, plan.Name)
			if err != nil {
				return err
			}
			if inUse > 0 {
				return utils.ErrPlanInUse
			}
		}

		plan.Name = name
		plan.Features = features
		plan.Price = in.Price
		if err := tx.Plans().Update(ctx, plan); err != nil {
			if errors.Is(err, repositories.ErrDuplicateKey) {
				return utils.ErrPlanNameTaken
			}
			return err
		}
		updated = plan
		return nil
	})
	if err != nil {
		return nil, txError(s.log, "update plan", err)
	}
	return updated, nil
}

func (s *SubscriptionService) ListPlans(ctx context.Context) ([]db_models.SubscriptionPlan, error) {
	plans, err := s.store.Plans().GetAllPlans(ctx)
	if err != nil {
		return nil, storeError(s.log, "list plans", err)
	}
	return plans, nil
}
