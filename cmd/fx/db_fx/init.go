package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"skillsphere/internal/config"
	"skillsphere/internal/infra"
	"skillsphere/internal/repositories"
)

var Module = fx.Provide(
	provideDB, provideStore, provideAccountRepo)

func provideDB(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := infra.Migrate(db); err != nil {
		infra.ClosePostgresql(db, log)
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})
	return db, nil
}

func provideStore(db *gorm.DB) repositories.Store {
	return repositories.NewStore(db)
}

func provideAccountRepo(store repositories.Store) repositories.AccountRepository {
	return store.Users()
}
