package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"skillsphere/internal/models/db_models"
	"skillsphere/internal/repositories"
	"skillsphere/pkg/metrics"
	"skillsphere/pkg/utils"
)

// PostInput carries the editable fields of a post.
type PostInput struct {
	Title    string
	Content  string
	Category string
	Tags     []string
	Images   []string
}

func (in PostInput) validate() error {
	if in.Title == "" {
		return utils.NewValidationError("title is required")
	}
	if in.Content == "" {
		return utils.NewValidationError("content is required")
	}
	return nil
}

// ContentServiceInterface owns every mutation that must keep an aggregate and
// its dependents consistent.
type ContentServiceInterface interface {
	UpdatePost(ctx context.Context, postID uint, caller *Principal, in PostInput) (*db_models.Post, error)
	DeletePost(ctx context.Context, postID uint, caller *Principal) error

	UpdateComment(ctx context.Context, postID, commentID uint, caller *Principal, text string) (*db_models.Comment, error)
	DeleteComment(ctx context.Context, commentID uint, caller *Principal) error

	DeleteNote(ctx context.Context, noteID uint, caller *Principal) error
	DeleteLearningPlan(ctx context.Context, planID uint, caller *Principal) error
	DeleteSubscription(ctx context.Context, subscriptionID uint, caller *Principal) error
	DeleteSubscriptionPlan(ctx context.Context, planID uint) error
}

type ContentService struct {
	store repositories.Store
	guard OwnershipGuard
	log   *zap.Logger
}

func NewContentService(store repositories.Store, log *zap.Logger) ContentServiceInterface {
	return &ContentService{
		store: store,
		log:   log.Named("content"),
	}
}

func (s *ContentService) UpdatePost(ctx context.Context, postID uint, caller *Principal, in PostInput) (*db_models.Post, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var updated *db_models.Post
	err := s.store.Transaction(ctx, func(tx repositories.Repos) error {
		post, err := tx.Posts().FindByIdForUpdate(ctx, postID)
		if err != nil {
			return err
		}
		if post == nil {
			return utils.ErrPostNotFound
		}
		if err := s.guard.Authorize(post.OwnerID, caller, OwnerOnly); err != nil {
			return err
		}

		post.Title = in.Title
		post.Content = in.Content
		post.Category = in.Category
		post.Tags = in.Tags
		post.Images = in.Images
		if err := tx.Posts().Update(ctx, post); err != nil {
			return err
		}
		updated = post
		return nil
	})
	if err != nil {
		return nil, txError(s.log, "update post", err)
	}
	return updated, nil
}

// DeletePost removes the post together with its reactions and comments. The
// post row stays locked for the whole transaction so no reaction or comment
// can be attached halfway through.
func (s *ContentService) DeletePost(ctx context.Context, postID uint, caller *Principal) error {
	var reactions, comments int64

	err := s.store.Transaction(ctx, func(tx repositories.Repos) error {
		post, err := tx.Posts().FindByIdForUpdate(ctx, postID)
		if err != nil {
			return err
		}
		if post == nil {
			return utils.ErrPostNotFound
		}
		if err := s.guard.Authorize(post.OwnerID, caller, OwnerOnly); err != nil {
			return err
		}

		if reactions, err = tx.Reactions().DeleteByPost(ctx, postID); err != nil {
			return err
		}
		if comments, err = tx.Comments().DeleteByPost(ctx, postID); err != nil {
			return err
		}
		_, err = tx.Posts().Delete(ctx, postID)
		return err
	})
	if err != nil {
		return txError(s.log, "delete post", err)
	}

	metrics.CascadeDeletes.WithLabelValues("reactions").Add(float64(reactions))
	metrics.CascadeDeletes.WithLabelValues("comments").Add(float64(comments))
	s.log.Info("post deleted",
		zap.Uint("post_id", postID),
		zap.Int64("reactions", reactions),
		zap.Int64("comments", comments))
	return nil
}

func (s *ContentService) UpdateComment(ctx context.Context, postID, commentID uint, caller *Principal, text string) (*db_models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, utils.NewValidationError("comment text is required")
	}

	var comment *db_models.Comment
	// The post lock orders the edit against DeletePost.
	err := s.store.Transaction(ctx, func(tx repositories.Repos) error {
		post, err := tx.Posts().FindByIdForUpdate(ctx, postID)
		if err != nil {
			return err
		}
		if post == nil {
			return utils.ErrPostNotFound
		}

		comment, err = tx.Comments().FindById(ctx, commentID)
		if err != nil {
			return err
		}
		if comment == nil || comment.PostID != postID {
			return utils.ErrCommentNotFound
		}
		if err := s.guard.Authorize(comment.AuthorID, caller, OwnerOnly); err != nil {
			return err
		}

		comment.Text = text
		return tx.Comments().UpdateText(ctx, commentID, text)
	})
	if err != nil {
		return nil, txError(s.log, "update comment", err)
	}
	return comment, nil
}

func (s *ContentService) DeleteComment(ctx context.Context, commentID uint, caller *Principal) error {
	comment, err := s.store.Comments().FindById(ctx, commentID)
	if err != nil {
		return storeError(s.log, "find comment", err)
	}
	if comment == nil {
		return utils.ErrCommentNotFound
	}
	if err := s.guard.Authorize(comment.AuthorID, caller, OwnerOnly); err != nil {
		return err
	}

	if _, err := s.store.Comments().Delete(ctx, commentID); err != nil {
		return storeError(s.log, "delete comment", err)
	}
	return nil
}

func (s *ContentService) DeleteNote(ctx context.Context, noteID uint, caller *Principal) error {
	note, err := s.store.Notes().FindById(ctx, noteID)
	if err != nil {
		return storeError(s.log, "find note", err)
	}
	if note == nil {
		return utils.ErrNoteNotFound
	}
	if err := s.guard.Authorize(note.OwnerID, caller, OwnerOnly); err != nil {
		return err
	}

	if _, err := s.store.Notes().Delete(ctx, noteID); err != nil {
		return storeError(s.log, "delete note", err)
	}
	return nil
}

func (s *ContentService) DeleteLearningPlan(ctx context.Context, planID uint, caller *Principal) error {
	plan, err := s.store.LearningPlans().FindById(ctx, planID)
	if err != nil {
		return storeError(s.log, "find learning plan", err)
	}
	if plan == nil {
		return utils.ErrLearningPlanNotFound
	}
	if err := s.guard.Authorize(plan.OwnerID, caller, OwnerOnly); err != nil {
		return err
	}

	if _, err := s.store.LearningPlans().Delete(ctx, planID); err != nil {
		return storeError(s.log, "delete learning plan", err)
	}
	return nil
}

func (s *ContentService) DeleteSubscription(ctx context.Context, subscriptionID uint, caller *Principal) error {
	sub, err := s.store.Subscriptions().FindById(ctx, subscriptionID)
	if err != nil {
		return storeError(s.log, "find subscription", err)
	}
	if sub == nil {
		return utils.ErrSubscriptionNotFound
	}
	if err := s.guard.Authorize(sub.UserID, caller, OwnerOrAdmin); err != nil {
		return err
	}

	if _, err := s.store.Subscriptions().Delete(ctx, subscriptionID); err != nil {
		return storeError(s.log, "delete subscription", err)
	}
	return nil
}

// DeleteSubscriptionPlan refuses while any subscription references the plan
// name. Subscription creation takes a share lock on the plan row, so the
// count and the delete cannot interleave with a new subscription.
func (s *ContentService) DeleteSubscriptionPlan(ctx context.Context, planID uint) error {
	err := s.store.Transaction(ctx, func(tx repositories.Repos) error {
		plan, err := tx.Plans().FindByIdForUpdate(ctx, planID)
		if err != nil {
			return err
		}
		if plan == nil {
			return utils.ErrPlanNotFound
		}

		inUse, err := tx.Subscriptions().CountByPlanName(ctx, plan.Name)
		if err != nil {
			return err
		}
		if inUse > 0 {
			return utils.ErrPlanInUse
		}

		_, err = tx.Plans().Delete(ctx, planID)
		return err
	})
	return txError(s.log, "delete subscription plan", err)
}
