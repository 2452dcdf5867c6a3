package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDuplicateKey is returned when a write violates a unique constraint.
var ErrDuplicateKey = errors.New("duplicate key")

// Repos groups the repositories bound to one database handle, either the
// shared pool or a single transaction.
type Repos interface {
	Users() AccountRepository
	Posts() PostRepository
	Comments() CommentRepository
	Reactions() ReactionRepository
	Notes() NoteRepository
	LearningPlans() LearningPlanRepository
	Plans() PlanRepository
	Subscriptions() SubscriptionRepository
	Follows() FollowRepository
	Quizzes() QuizRepository
}

// Store is the persistence boundary of the services. Transaction runs fn with
// repositories bound to one transaction; fn returning an error rolls back
// every write made through tx.
type Store interface {
	Repos
	Transaction(ctx context.Context, fn func(tx Repos) error) error
}

type gormRepos struct {
	db *gorm.DB
}

func (r gormRepos) Users() AccountRepository { return NewAccountRepository(r.db) }

func (r gormRepos) Posts() PostRepository { return NewPostRepository(r.db) }

func (r gormRepos) Comments() CommentRepository { return NewCommentRepository(r.db) }

func (r gormRepos) Reactions() ReactionRepository { return NewReactionRepository(r.db) }

func (r gormRepos) Notes() NoteRepository { return NewNoteRepository(r.db) }

func (r gormRepos) LearningPlans() LearningPlanRepository { return NewLearningPlanRepository(r.db) }

func (r gormRepos) Plans() PlanRepository { return NewPlanRepository(r.db) }

func (r gormRepos) Subscriptions() SubscriptionRepository { return NewSubscriptionRepository(r.db) }

func (r gormRepos) Follows() FollowRepository { return NewFollowRepository(r.db) }

func (r gormRepos) Quizzes() QuizRepository { return NewQuizRepository(r.db) }

type gormStore struct {
	gormRepos
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{gormRepos{db: db}}
}

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Repos) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(gormRepos{db: tx})
	})
}

func forUpdate() clause.Expression {
	return clause.Locking{Strength: "UPDATE"}
}

func forShare() clause.Expression {
	return clause.Locking{Strength: "SHARE"}
}

// translateErr maps driver-level failures onto repository errors.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	return err
}

// firstOrNil returns (false, nil) when the query found no row.
func firstOrNil(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}
