package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"skillsphere/internal/models/db_models"
	"skillsphere/internal/repositories"
	"skillsphere/pkg/utils"
)

// PostDetail is a post with everything hanging off it. MyReaction is empty
// for anonymous callers or when the caller has not reacted.
type PostDetail struct {
	Post       db_models.Post
	Comments   []db_models.Comment
	Reactions  ReactionSummary
	MyReaction db_models.ReactionType
}

type PostServiceInterface interface {
	CreatePost(ctx context.Context, caller *Principal, in PostInput) (*db_models.Post, error)
	GetPost(ctx context.Context, postID uint, caller *Principal) (*PostDetail, error)
	ListPosts(ctx context.Context) ([]db_models.Post, error)
	AddComment(ctx context.Context, postID uint, caller *Principal, text string) (*db_models.Comment, error)
}

type PostService struct {
	store repositories.Store
	log   *zap.Logger
}

func NewPostService(store repositories.Store, log *zap.Logger) PostServiceInterface {
	return &PostService{
		store: store,
		log:   log.Named("posts"),
	}
}

func (s *PostService) CreatePost(ctx context.Context, caller *Principal, in PostInput) (*db_models.Post, error) {
	if caller == nil {
		return nil, utils.ErrUnauthenticated
	}
	if caller.Source != SourceUser {
		return nil, utils.NewForbiddenError("only users can create posts")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	post := &db_models.Post{
		OwnerID:  caller.ID,
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
		Tags:     in.Tags,
		Images:   in.Images,
	}
	if err := s.store.Posts().Create(ctx, post); err != nil {
		return nil, storeError(s.log, "create post", err)
	}
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, postID uint, caller *Principal) (*PostDetail, error) {
	post, err := s.store.Posts().FindById(ctx, postID)
	if err != nil {
		return nil, storeError(s.log, "find post", err)
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	comments, err := s.store.Comments().ListByPost(ctx, postID)
	if err != nil {
		return nil, storeError(s.log, "list comments", err)
	}

	summary, err := summarize(ctx, s.store.Reactions(), postID)
	if err != nil {
		return nil, storeError(s.log, "summarize reactions", err)
	}

	detail := &PostDetail{Post: *post, Comments: comments, Reactions: summary}
	if caller != nil && caller.Source == SourceUser {
		mine, err := s.store.Reactions().FindByPostAndUser(ctx, postID, caller.ID)
		if err != nil {
			return nil, storeError(s.log, "find reaction", err)
		}
		if mine != nil {
			detail.MyReaction = mine.Type
		}
	}
	return detail, nil
}

func (s *PostService) ListPosts(ctx context.Context) ([]db_models.Post, error) {
	posts, err := s.store.Posts().List(ctx)
	if err != nil {
		return nil, storeError(s.log, "list posts", err)
	}
	return posts, nil
}

func (s *PostService) AddComment(ctx context.Context, postID uint, caller *Principal, text string) (*db_models.Comment, error) {
	if caller == nil {
		return nil, utils.ErrUnauthenticated
	}
	if caller.Source != SourceUser {
		return nil, utils.NewForbiddenError("only users can comment")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, utils.NewValidationError("comment text is required")
	}

	var comment *db_models.Comment
	// Locking the post keeps a concurrent DeletePost from orphaning the comment.
	err := s.store.Transaction(ctx, func(tx repositories.Repos) error {
		post, err := tx.Posts().FindByIdForUpdate(ctx, postID)
		if err != nil {
			return err
		}
		if post == nil {
			return utils.ErrPostNotFound
		}
		comment = &db_models.Comment{PostID: postID, AuthorID: caller.ID, Text: text}
		return tx.Comments().Create(ctx, comment)
	})
	if err != nil {
		return nil, txError(s.log, "add comment", err)
	}
	return comment, nil
}
