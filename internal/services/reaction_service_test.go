package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"skillsphere/internal/models/db_models"
	"skillsphere/internal/repositories/memory"
	"skillsphere/pkg/utils"
)

func reactionRows(t *testing.T, store *memory.Store, postID, userID uint) []db_models.Reaction {
	t.Helper()
	all, err := store.Reactions().ListByPost(context.Background(), postID)
	require.NoError(t, err)
	var mine []db_models.Reaction
	for _, r := range all {
		if r.UserID == userID {
			mine = append(mine, r)
		}
	}
	return mine
}

func TestReactionService_Transitions(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewReactionService(store, nopLogger)

	owner := seedUser(t, store, "owner")
	fan := seedUser(t, store, "fan")
	post := seedPost(t, store, owner)

	res, err := svc.React(ctx, post.ID, fan, "like")
	require.NoError(t, err)
	assert.Equal(t, ReactionAdded, res.Outcome)
	assert.Equal(t, db_models.ReactionLike, res.Current)
	assert.EqualValues(t, 1, res.Summary[db_models.ReactionLike])

	rows := reactionRows(t, store, post.ID, fan.ID)
	require.Len(t, rows, 1)
	firstID := rows[0].ID

	res, err = svc.React(ctx, post.ID, fan, "LOVE")
	require.NoError(t, err)
	assert.Equal(t, ReactionChanged, res.Outcome)
	rows = reactionRows(t, store, post.ID, fan.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, firstID, rows[0].ID, "type changes in place")
	assert.Equal(t, db_models.ReactionLove, rows[0].Type)

	res, err = svc.React(ctx, post.ID, fan, "LOVE")
	require.NoError(t, err)
	assert.Equal(t, ReactionRemoved, res.Outcome)
	assert.Empty(t, res.Current)
	assert.Empty(t, reactionRows(t, store, post.ID, fan.ID))
}

func TestReactionService_ToggleIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewReactionService(store, nopLogger)

	user := seedUser(t, store, "u")
	post := seedPost(t, store, user)

	_, err := svc.React(ctx, post.ID, user, "LIKE")
	require.NoError(t, err)
	_, err = svc.React(ctx, post.ID, user, "LIKE")
	require.NoError(t, err)

	assert.Empty(t, reactionRows(t, store, post.ID, user.ID))
}

func TestReactionService_LastNonCancelingRequestWins(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewReactionService(store, nopLogger)

	user := seedUser(t, store, "u")
	post := seedPost(t, store, user)

	sequence := []string{"LIKE", "WOW", "SAD", "SAD", "ANGRY", "HAHA", "LIKE"}
	var want db_models.ReactionType
	for _, raw := range sequence {
		_, err := svc.React(ctx, post.ID, user, raw)
		require.NoError(t, err)

		requested := db_models.ReactionType(raw)
		if want == requested {
			want = ""
		} else {
			want = requested
		}

		rows := reactionRows(t, store, post.ID, user.ID)
		if want == "" {
			assert.Empty(t, rows)
			continue
		}
		require.Len(t, rows, 1)
		assert.Equal(t, want, rows[0].Type)
	}
}

func TestReactionService_ConcurrentRequestsKeepOneRow(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewReactionService(store, nopLogger)

	user := seedUser(t, store, "u")
	post := seedPost(t, store, user)

	var wg sync.WaitGroup
	for i := 0; i < 9; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.React(ctx, post.ID, user, "LIKE")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Nine toggles of the same type end in the reacted state.
	rows := reactionRows(t, store, post.ID, user.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, db_models.ReactionLike, rows[0].Type)
}

func TestReactionService_Rejections(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewReactionService(store, nopLogger)

	user := seedUser(t, store, "u")
	admin := seedAdmin(t, store, "root")
	post := seedPost(t, store, user)

	_, err := svc.React(ctx, post.ID, user, "MEH")
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.React(ctx, post.ID+100, user, "LIKE")
	assert.ErrorIs(t, err, utils.ErrPostNotFound)

	_, err = svc.React(ctx, post.ID, nil, "LIKE")
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)

	_, err = svc.React(ctx, post.ID, admin, "LIKE")
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestNextReaction(t *testing.T) {
	like := &db_models.Reaction{Type: db_models.ReactionLike}

	assert.Equal(t, ReactionAdded, nextReaction(nil, db_models.ReactionLike))
	assert.Equal(t, ReactionRemoved, nextReaction(like, db_models.ReactionLike))
	assert.Equal(t, ReactionChanged, nextReaction(like, db_models.ReactionSad))
}
