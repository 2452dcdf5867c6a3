package services

import (
	"context"

	"go.uber.org/zap"
	"skillsphere/internal/models/db_models"
	"skillsphere/internal/repositories"
	"skillsphere/pkg/utils"
)

// Profile is the public view of a user: who follows them, who they follow
// and what they have posted, newest first.
type Profile struct {
	User      db_models.User
	Followers []db_models.User
	Following []db_models.User
	Posts     []db_models.Post
}

type FollowServiceInterface interface {
	Follow(ctx context.Context, userID uint, caller *Principal) (*Profile, error)
	Unfollow(ctx context.Context, userID uint, caller *Principal) (*Profile, error)
	GetProfile(ctx context.Context, userID uint) (*Profile, error)
}

type FollowService struct {
	store repositories.Store
	log   *zap.Logger
}

func NewFollowService(store repositories.Store, log *zap.Logger) FollowServiceInterface {
	return &FollowService{
		store: store,
		log:   log.Named("follows"),
	}
}

// Follow is idempotent and returns the profile of the followed user.
func (s *FollowService) Follow(ctx context.Context, userID uint, caller *Principal) (*Profile, error) {
	if err := s.checkFollower(ctx, userID, caller); err != nil {
		return nil, err
	}

	created, err := s.store.Follows().Create(ctx, &db_models.UserFollower{UserID: userID, FollowerID: caller.ID})
	if err != nil {
		return nil, storeError(s.log, "create follow", err)
	}
	if created {
		s.log.Debug("user followed", zap.Uint("user_id", userID), zap.Uint("follower_id", caller.ID))
	}
	return s.GetProfile(ctx, userID)
}

// Unfollow is idempotent and returns the profile of the unfollowed user.
func (s *FollowService) Unfollow(ctx context.Context, userID uint, caller *Principal) (*Profile, error) {
	if err := s.checkFollower(ctx, userID, caller); err != nil {
		return nil, err
	}

	if _, err := s.store.Follows().Delete(ctx, userID, caller.ID); err != nil {
		return nil, storeError(s.log, "delete follow", err)
	}
	return s.GetProfile(ctx, userID)
}

func (s *FollowService) checkFollower(ctx context.Context, userID uint, caller *Principal) error {
	if caller == nil {
		return utils.ErrUnauthenticated
	}
	if caller.Source != SourceUser {
		return utils.NewForbiddenError("only users can follow")
	}
	if caller.ID == userID {
		return utils.NewValidationError("cannot follow yourself")
	}

	target, err := s.store.Users().FindUserById(ctx, userID)
	if err != nil {
		return storeError(s.log, "find user", err)
	}
	if target == nil {
		return utils.ErrUserNotFound
	}
	return nil
}

func (s *FollowService) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	user, err := s.store.Users().FindUserById(ctx, userID)
	if err != nil {
		return nil, storeError(s.log, "find user", err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	profile := &Profile{User: *user}
	if profile.Followers, err = s.store.Follows().ListFollowers(ctx, userID); err != nil {
		return nil, storeError(s.log, "list followers", err)
	}
	if profile.Following, err = s.store.Follows().ListFollowing(ctx, userID); err != nil {
		return nil, storeError(s.log, "list following", err)
	}
	if profile.Posts, err = s.store.Posts().ListByOwner(ctx, userID); err != nil {
		return nil, storeError(s.log, "list user posts", err)
	}
	return profile, nil
}
