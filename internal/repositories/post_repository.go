package repositories

import (
	"context"

	"gorm.io/gorm"
	"skillsphere/internal/models/db_models"
)

type PostRepository interface {
	Create(ctx context.Context, post *db_models.Post) error
	FindById(ctx context.Context, id uint) (*db_models.Post, error)
	// FindByIdForUpdate locks the post row until the surrounding transaction ends.
	FindByIdForUpdate(ctx context.Context, id uint) (*db_models.Post, error)
	List(ctx context.Context) ([]db_models.Post, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]db_models.Post, error)
	Update(ctx context.Context, post *db_models.Post) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *db_models.Post) error {
	return translateErr(r.db.WithContext(ctx).Create(post).Error)
}

func (r *postRepository) FindById(ctx context.Context, id uint) (*db_models.Post, error) {
	var post db_models.Post
	found, err := firstOrNil(r.db.WithContext(ctx).First(&post, "id = ?", id).Error)
	if !found {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindByIdForUpdate(ctx context.Context, id uint) (*db_models.Post, error) {
	var post db_models.Post
	found, err := firstOrNil(r.db.WithContext(ctx).Clauses(forUpdate()).First(&post, "id = ?", id).Error)
	if !found {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]db_models.Post, error) {
	var posts []db_models.Post
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ListByOwner(ctx context.Context, ownerID uint) ([]db_models.Post, error) {
	var posts []db_models.Post
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *db_models.Post) error {
	return translateErr(r.db.WithContext(ctx).Save(post).Error)
}

func (r *postRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.Post{})
	return res.RowsAffected, res.Error
}
