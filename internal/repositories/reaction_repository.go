package repositories

import (
	"context"

	"gorm.io/gorm"
	"skillsphere/internal/models/db_models"
)

type ReactionRepository interface {
	FindByPostAndUser(ctx context.Context, postID, userID uint) (*db_models.Reaction, error)
	ListByPost(ctx context.Context, postID uint) ([]db_models.Reaction, error)
	Create(ctx context.Context, reaction *db_models.Reaction) error
	UpdateType(ctx context.Context, id uint, reactionType db_models.ReactionType) error
	Delete(ctx context.Context, id uint) (int64, error)
	DeleteByPost(ctx context.Context, postID uint) (int64, error)
}

type reactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) FindByPostAndUser(ctx context.Context, postID, userID uint) (*db_models.Reaction, error) {
	var reaction db_models.Reaction
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		First(&reaction).Error
	found, err := firstOrNil(err)
	if !found {
		return nil, err
	}
	return &reaction, nil
}

func (r *reactionRepository) ListByPost(ctx context.Context, postID uint) ([]db_models.Reaction, error) {
	var reactions []db_models.Reaction
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&reactions).Error
	if err != nil {
		return nil, err
	}
	return reactions, nil
}

func (r *reactionRepository) Create(ctx context.Context, reaction *db_models.Reaction) error {
	return translateErr(r.db.WithContext(ctx).Create(reaction).Error)
}

func (r *reactionRepository) UpdateType(ctx context.Context, id uint, reactionType db_models.ReactionType) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Reaction{}).
		Where("id = ?", id).
		Update("type", reactionType).Error
}

func (r *reactionRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.Reaction{})
	return res.RowsAffected, res.Error
}

func (r *reactionRepository) DeleteByPost(ctx context.Context, postID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&db_models.Reaction{})
	return res.RowsAffected, res.Error
}
