package memcache_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"skillsphere/internal/config"
	mem "skillsphere/pkg/memcache"
)

var Module = fx.Options(
	fx.Provide(provideRevokedTokens, provideRevocationSweeper),
	fx.Invoke(func(*mem.RevocationSweeper) {}),
)

func provideRevokedTokens() mem.RevokedTokenStore {
	return mem.NewRevokedTokens()
}

func provideRevocationSweeper(lc fx.Lifecycle, cfg *config.Config, store mem.RevokedTokenStore,
	log *zap.Logger) (*mem.RevocationSweeper, error) {
	sweeper, err := mem.NewRevocationSweeper(cfg.RevocationSweepSpec, store, log)
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
