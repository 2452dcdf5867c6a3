// Package memory provides an in-memory implementation of repositories.Store.
// It is safe for concurrent use and is intended for tests and local
// development. Transactions hold the store lock for their whole duration and
// restore a snapshot when the callback fails.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"skillsphere/internal/models/db_models"
	"skillsphere/internal/repositories"
)

type state struct {
	nextID        uint
	users         map[uint]db_models.User
	admins        map[uint]db_models.Admin
	posts         map[uint]db_models.Post
	comments      map[uint]db_models.Comment
	reactions     map[uint]db_models.Reaction
	notes         map[uint]db_models.Note
	learningPlans map[uint]db_models.LearningPlan
	plans         map[uint]db_models.SubscriptionPlan
	subscriptions map[uint]db_models.Subscription
	follows       map[followKey]db_models.UserFollower
	quizzes       map[uint]db_models.Quiz
}

type followKey struct{ user, follower uint }

func newState() *state {
	return &state{
		nextID:        1,
		users:         make(map[uint]db_models.User),
		admins:        make(map[uint]db_models.Admin),
		posts:         make(map[uint]db_models.Post),
		comments:      make(map[uint]db_models.Comment),
		reactions:     make(map[uint]db_models.Reaction),
		notes:         make(map[uint]db_models.Note),
		learningPlans: make(map[uint]db_models.LearningPlan),
		plans:         make(map[uint]db_models.SubscriptionPlan),
		subscriptions: make(map[uint]db_models.Subscription),
		follows:       make(map[followKey]db_models.UserFollower),
		quizzes:       make(map[uint]db_models.Quiz),
	}
}

func copyMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (s *state) clone() *state {
	return &state{
		nextID:        s.nextID,
		users:         copyMap(s.users),
		admins:        copyMap(s.admins),
		posts:         copyMap(s.posts),
		comments:      copyMap(s.comments),
		reactions:     copyMap(s.reactions),
		notes:         copyMap(s.notes),
		learningPlans: copyMap(s.learningPlans),
		plans:         copyMap(s.plans),
		subscriptions: copyMap(s.subscriptions),
		follows:       copyMap(s.follows),
		quizzes:       copyMap(s.quizzes),
	}
}

func (s *state) newID() uint {
	id := s.nextID
	s.nextID++
	return id
}

// assignID keeps an explicit id, as an INSERT with a primary key would, and
// otherwise draws the next one.
func (s *state) assignID(id uint) uint {
	if id == 0 {
		return s.newID()
	}
	if id >= s.nextID {
		s.nextID = id + 1
	}
	return id
}

// Store implements repositories.Store.
type Store struct {
	mu       sync.Mutex
	data     *state
	failures map[string]error
}

var _ repositories.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		data:     newState(),
		failures: make(map[string]error),
	}
}

// FailOn makes the named operation (for example "comments.DeleteByPost")
// return err until cleared with a nil err.
func (m *Store) FailOn(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failures, op)
		return
	}
	m.failures[op] = err
}

func (m *Store) Transaction(_ context.Context, fn func(tx repositories.Repos) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.data.clone()
	if err := fn(view{store: m, inTx: true}); err != nil {
		m.data = snapshot
		return err
	}
	return nil
}

func (m *Store) Users() repositories.AccountRepository { return accounts{view{store: m}} }

func (m *Store) Posts() repositories.PostRepository { return posts{view{store: m}} }

func (m *Store) Comments() repositories.CommentRepository { return comments{view{store: m}} }

func (m *Store) Reactions() repositories.ReactionRepository { return reactions{view{store: m}} }

func (m *Store) Notes() repositories.NoteRepository { return notes{view{store: m}} }

func (m *Store) LearningPlans() repositories.LearningPlanRepository {
	return learningPlans{view{store: m}}
}

func (m *Store) Plans() repositories.PlanRepository { return plans{view{store: m}} }

func (m *Store) Subscriptions() repositories.SubscriptionRepository {
	return subscriptions{view{store: m}}
}

func (m *Store) Follows() repositories.FollowRepository { return follows{view{store: m}} }

func (m *Store) Quizzes() repositories.QuizRepository { return quizzes{view{store: m}} }

// view is the repositories.Repos handed to callers. Inside a transaction the
// store lock is already held, so the per-call locking is skipped.
type view struct {
	store *Store
	inTx  bool
}

func (v view) Users() repositories.AccountRepository { return accounts{v} }

func (v view) Posts() repositories.PostRepository { return posts{v} }

func (v view) Comments() repositories.CommentRepository { return comments{v} }

func (v view) Reactions() repositories.ReactionRepository { return reactions{v} }

func (v view) Notes() repositories.NoteRepository { return notes{v} }

func (v view) LearningPlans() repositories.LearningPlanRepository { return learningPlans{v} }

func (v view) Plans() repositories.PlanRepository { return plans{v} }

func (v view) Subscriptions() repositories.SubscriptionRepository { return subscriptions{v} }

func (v view) Follows() repositories.FollowRepository { return follows{v} }

func (v view) Quizzes() repositories.QuizRepository { return quizzes{v} }

// do runs fn with exclusive access to the data, honouring injected failures.
func (v view) do(op string, fn func(d *state) error) error {
	if !v.inTx {
		v.store.mu.Lock()
		defer v.store.mu.Unlock()
	}
	if err, ok := v.store.failures[op]; ok {
		return err
	}
	return fn(v.store.data)
}

func duplicate(what string) error {
	return fmt.Errorf("%w: %s", repositories.ErrDuplicateKey, what)
}

func sortedValues[V any](in map[uint]V, keep func(V) bool, less func(a, b V) bool) []V {
	out := make([]V, 0, len(in))
	for _, v := range in {
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
