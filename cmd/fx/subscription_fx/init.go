package subscription_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"skillsphere/internal/config"
	"skillsphere/internal/services"
)

var Module = fx.Options(
	fx.Provide(services.NewSubscriptionService, provideSweeper),
	fx.Invoke(func(*services.SubscriptionSweeper) {}),
)

func provideSweeper(lc fx.Lifecycle, cfg *config.Config, subs services.SubscriptionServiceInterface,
	log *zap.Logger) (*services.SubscriptionSweeper, error) {
	sweeper, err := services.NewSubscriptionSweeper(cfg.SubscriptionSweepSpec, subs, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.Stop(ctx)
		},
	})
	return sweeper, nil
}
