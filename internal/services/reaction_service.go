package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"skillsphere/internal/models/db_models"
	"skillsphere/internal/repositories"
	"skillsphere/pkg/metrics"
	"skillsphere/pkg/utils"
)

const maxReactionAttempts = 3

type ReactionOutcome string

const (
	ReactionAdded   ReactionOutcome = "ADDED"
	ReactionRemoved ReactionOutcome = "REMOVED"
	ReactionChanged ReactionOutcome = "CHANGED"
)

// ReactionSummary counts the reactions of one post per type.
type ReactionSummary map[db_models.ReactionType]int64

type ReactionResult struct {
	Outcome ReactionOutcome
	// Current is empty when the reaction was toggled off.
	Current db_models.ReactionType
	Summary ReactionSummary
}

type ReactionServiceInterface interface {
	React(ctx context.Context, postID uint, caller *Principal, reactionType string) (*ReactionResult, error)
	Summary(ctx context.Context, postID uint) (ReactionSummary, error)
}

type ReactionService struct {
	store repositories.Store
	log   *zap.Logger
}

func NewReactionService(store repositories.Store, log *zap.Logger) ReactionServiceInterface {
	return &ReactionService{
		store: store,
		log:   log.Named("reactions"),
	}
}

// ParseReactionType normalises raw to one of the known reaction types.
func ParseReactionType(raw string) (db_models.ReactionType, error) {
	candidate := db_models.ReactionType(strings.ToUpper(strings.TrimSpace(raw)))
	for _, t := range db_models.ReactionTypes {
		if t == candidate {
			return t, nil
		}
	}
	return "", utils.NewValidationError("invalid reaction type: " + raw)
}

// nextReaction is the per (post, user) transition function.
func nextReaction(current *db_models.Reaction, requested db_models.ReactionType) ReactionOutcome {
	switch {
	case current == nil:
		return ReactionAdded
	case current.Type == requested:
		return ReactionRemoved
	default:
		return ReactionChanged
	}
}

func (s *ReactionService) React(ctx context.Context, postID uint, caller *Principal, reactionType string) (*ReactionResult, error) {
	if caller == nil {
		return nil, utils.ErrUnauthenticated
	}
	if caller.Source != SourceUser {
		return nil, utils.NewForbiddenError("only users can react to posts")
	}

	requested, err := ParseReactionType(reactionType)
	if err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		result, err := s.react(ctx, postID, caller.ID, requested)
		if err == nil {
			metrics.Reactions.WithLabelValues(string(result.Outcome)).Inc()
			return result, nil
		}
		if !errors.Is(err, repositories.ErrDuplicateKey) || attempt == maxReactionAttempts {
			return nil, txError(s.log, "react", err)
		}
		metrics.ReactionRetries.Inc()
		s.log.Debug("reaction conflict, retrying",
			zap.Uint("post_id", postID), zap.Uint("user_id", caller.ID), zap.Int("attempt", attempt))
	}
}

func (s *ReactionService) react(ctx context.Context, postID, userID uint, requested db_models.ReactionType) (*ReactionResult, error) {
	var result *ReactionResult

	err := s.store.Transaction(ctx, func(tx repositories.Repos) error {
		post, err := tx.Posts().FindByIdForUpdate(ctx, postID)
		if err != nil {
			return storeError(s.log, "lock post", err)
		}
		if post == nil {
			return utils.ErrPostNotFound
		}

		current, err := tx.Reactions().FindByPostAndUser(ctx, postID, userID)
		if err != nil {
			return storeError(s.log, "find reaction", err)
		}

		outcome := nextReaction(current, requested)
		switch outcome {
		case ReactionAdded:
			err = tx.Reactions().Create(ctx, &db_models.Reaction{PostID: postID, UserID: userID, Type: requested})
		case ReactionRemoved:
			_, err = tx.Reactions().Delete(ctx, current.ID)
		case ReactionChanged:
			err = tx.Reactions().UpdateType(ctx, current.ID, requested)
		}
		if err != nil {
			if errors.Is(err, repositories.ErrDuplicateKey) {
				return err
			}
			return storeError(s.log, "write reaction", err)
		}

		summary, err := summarize(ctx, tx.Reactions(), postID)
		if err != nil {
			return storeError(s.log, "summarize reactions", err)
		}

		result = &ReactionResult{Outcome: outcome, Summary: summary}
		if outcome != ReactionRemoved {
			result.Current = requested
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ReactionService) Summary(ctx context.Context, postID uint) (ReactionSummary, error) {
	summary, err := summarize(ctx, s.store.Reactions(), postID)
	if err != nil {
		return nil, storeError(s.log, "summarize reactions", err)
	}
	return summary, nil
}

func summarize(ctx context.Context, repo repositories.ReactionRepository, postID uint) (ReactionSummary, error) {
	reactions, err := repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	summary := make(ReactionSummary, len(db_models.ReactionTypes))
	for _, r := range reactions {
		summary[r.Type]++
	}
	return summary, nil
}
