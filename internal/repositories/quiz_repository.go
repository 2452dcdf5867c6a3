package repositories

import (
	"context"

	"gorm.io/gorm"
	"skillsphere/internal/models/db_models"
)

type QuizRepository interface {
	Create(ctx context.Context, quiz *db_models.Quiz) error
	List(ctx context.Context) ([]db_models.Quiz, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(ctx context.Context, quiz *db_models.Quiz) error {
	return translateErr(r.db.WithContext(ctx).Create(quiz).Error)
}

func (r *quizRepository) List(ctx context.Context) ([]db_models.Quiz, error) {
	var quizzes []db_models.Quiz
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}
