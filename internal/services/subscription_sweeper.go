package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const sweepTimeout = time.Minute

// SubscriptionSweeper periodically closes subscriptions whose end date has
// passed.
type SubscriptionSweeper struct {
	cron *cron.Cron
	subs SubscriptionServiceInterface
	log  *zap.Logger
	now  func() time.Time
}

func NewSubscriptionSweeper(spec string, subs SubscriptionServiceInterface, log *zap.Logger) (*SubscriptionSweeper, error) {
	s := &SubscriptionSweeper{
		cron: cron.New(),
		subs: subs,
		log:  log.Named("subscription_sweeper"),
		now:  time.Now,
	}
	if _, err := s.cron.AddFunc(spec, func() { s.Sweep(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", spec, err)
	}
	return s, nil
}

// Sweep runs one expiry pass.
func (s *SubscriptionSweeper) Sweep(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	n, err := s.subs.ExpireDue(ctx, s.now())
	if err != nil {
		s.log.Warn("expiry sweep failed", zap.Error(err))
		return 0
	}
	return n
}

func (s *SubscriptionSweeper) Start() {
	s.cron.Start()
	s.log.Info("subscription sweeper started")
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *SubscriptionSweeper) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
