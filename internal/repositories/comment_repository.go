package repositories

import (
	"context"

	"gorm.io/gorm"
	"skillsphere/internal/models/db_models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *db_models.Comment) error
	FindById(ctx context.Context, id uint) (*db_models.Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]db_models.Comment, error)
	UpdateText(ctx context.Context, id uint, text string) error
	Delete(ctx context.Context, id uint) (int64, error)
	DeleteByPost(ctx context.Context, postID uint) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *db_models.Comment) error {
	return translateErr(r.db.WithContext(ctx).Create(comment).Error)
}

func (r *commentRepository) FindById(ctx context.Context, id uint) (*db_models.Comment, error) {
	var comment db_models.Comment
	found, err := firstOrNil(r.db.WithContext(ctx).First(&comment, "id = ?", id).Error)
	if !found {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]db_models.Comment, error) {
	var comments []db_models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) UpdateText(ctx context.Context, id uint, text string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Comment{}).
		Where("id = ?", id).
		Update("text", text).Error
}

func (r *commentRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.Comment{})
	return res.RowsAffected, res.Error
}

func (r *commentRepository) DeleteByPost(ctx context.Context, postID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&db_models.Comment{})
	return res.RowsAffected, res.Error
}
