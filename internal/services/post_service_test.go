package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"skillsphere/internal/models/db_models"
	"skillsphere/internal/repositories/memory"
	"skillsphere/pkg/utils"
)

func TestPostService(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	posts := NewPostService(store, nopLogger)
	reactions := NewReactionService(store, nopLogger)

	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	admin := seedAdmin(t, store, "root")

	_, err := posts.CreatePost(ctx, nil, PostInput{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
	_, err = posts.CreatePost(ctx, admin, PostInput{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	first, err := posts.CreatePost(ctx, alice, PostInput{Title: "one", Content: "c", Images: []string{"https://x.io/a.png"}})
	require.NoError(t, err)
	second, err := posts.CreatePost(ctx, bob, PostInput{Title: "two", Content: "c"})
	require.NoError(t, err)

	list, err := posts.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")

	_, err = posts.AddComment(ctx, first.ID, bob, "  ")
	assert.ErrorIs(t, err, utils.ErrValidation)
	_, err = posts.AddComment(ctx, 999, bob, "hi")
	assert.ErrorIs(t, err, utils.ErrPostNotFound)
	_, err = posts.AddComment(ctx, first.ID, bob, "hi")
	require.NoError(t, err)

	_, err = reactions.React(ctx, first.ID, bob, "WOW")
	require.NoError(t, err)

	detail, err := posts.GetPost(ctx, first.ID, bob)
	require.NoError(t, err)
	assert.Len(t, detail.Comments, 1)
	assert.EqualValues(t, 1, detail.Reactions[db_models.ReactionWow])
	assert.Equal(t, db_models.ReactionWow, detail.MyReaction)
	assert.Equal(t, []string{"https://x.io/a.png"}, []string(detail.Post.Images))

	anonymous, err := posts.GetPost(ctx, first.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, anonymous.MyReaction)
}
