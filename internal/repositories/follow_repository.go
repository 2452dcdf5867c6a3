package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"skillsphere/internal/models/db_models"
)

type FollowRepository interface {
	// Create reports false when the edge already existed.
	Create(ctx context.Context, edge *db_models.UserFollower) (bool, error)
	Delete(ctx context.Context, userID, followerID uint) (int64, error)
	ListFollowers(ctx context.Context, userID uint) ([]db_models.User, error)
	ListFollowing(ctx context.Context, followerID uint) ([]db_models.User, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, edge *db_models.UserFollower) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(edge)
	if res.Error != nil {
		return false, translateErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *followRepository) Delete(ctx context.Context, userID, followerID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND follower_id = ?", userID, followerID).
		Delete(&db_models.UserFollower{})
	return res.RowsAffected, res.Error
}

func (r *followRepository) ListFollowers(ctx context.Context, userID uint) ([]db_models.User, error) {
	var users []db_models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN user_followers ON user_followers.follower_id = users.id").
		Where("user_followers.user_id = ?", userID).
		Order("users.username").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, followerID uint) ([]db_models.User, error) {
	var users []db_models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN user_followers ON user_followers.user_id = users.id").
		Where("user_followers.follower_id = ?", followerID).
		Order("users.username").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
