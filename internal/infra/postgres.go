package infra

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"skillsphere/internal/config"
	"skillsphere/internal/models/db_models"
)

// activeSubscriptionIndex keeps at most one active subscription per user even
// if a code path forgets to deactivate the previous one.
const activeSubscriptionIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_subscriptions_one_active
	ON subscriptions (user_id) WHERE active`

const sharedAccountSequence = `ALTER TABLE admins ALTER COLUMN id SET DEFAULT nextval('users_id_seq'::regclass)`

func InitPostgresql(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Error("error connecting to database", zap.Error(err))
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	return connectionPool, nil
}

// Migrate creates or updates every table and the storage-level constraints
// that AutoMigrate cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Admin{},
		&db_models.Post{},
		&db_models.Comment{},
		&db_models.Reaction{},
		&db_models.Note{},
		&db_models.LearningPlan{},
		&db_models.SubscriptionPlan{},
		&db_models.Subscription{},
		&db_models.UserFollower{},
		&db_models.Quiz{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := db.Exec(activeSubscriptionIndex).Error; err != nil {
		return fmt.Errorf("create active subscription index: %w", err)
	}
	return shareAccountIDs(db)
}

// shareAccountIDs draws admin ids from the users sequence. Tokens carry only
// the numeric id, so a user and an admin must never hold the same one.
func shareAccountIDs(db *gorm.DB) error {
	if err := db.Exec(sharedAccountSequence).Error; err != nil {
		return fmt.Errorf("share account id sequence: %w", err)
	}
	return nil
}

func ClosePostgresql(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Warn("error closing database connection", zap.Error(err))
	} else {
		log.Info("postgres connection closed")
	}
}
