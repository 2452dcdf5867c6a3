package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"skillsphere/internal/models/db_models"
	"skillsphere/internal/repositories/memory"
	"skillsphere/pkg/utils"
)

type postFixture struct {
	store    *memory.Store
	content  ContentServiceInterface
	posts    PostServiceInterface
	react    ReactionServiceInterface
	owner    *Principal
	stranger *Principal
	post     *db_models.Post
}

// newPostFixture seeds a post by owner with two comments and one reaction.
func newPostFixture(t *testing.T) *postFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	f := &postFixture{
		store:   store,
		content: NewContentService(store, nopLogger),
		posts:   NewPostService(store, nopLogger),
		react:   NewReactionService(store, nopLogger),
	}
	f.owner = seedUser(t, store, "alice")
	f.stranger = seedUser(t, store, "bob")

	post, err := f.posts.CreatePost(ctx, f.owner, PostInput{Title: "Go tips", Content: "use gofmt", Tags: []string{"go"}})
	require.NoError(t, err)
	f.post = post

	_, err = f.posts.AddComment(ctx, post.ID, f.owner, "first")
	require.NoError(t, err)
	_, err = f.posts.AddComment(ctx, post.ID, f.stranger, "second")
	require.NoError(t, err)
	_, err = f.react.React(ctx, post.ID, f.stranger, "LIKE")
	require.NoError(t, err)
	return f
}

func (f *postFixture) assertIntact(t *testing.T) {
	t.Helper()
	detail, err := f.posts.GetPost(context.Background(), f.post.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, f.post.Title, detail.Post.Title)
	assert.Len(t, detail.Comments, 2)
	assert.EqualValues(t, 1, detail.Reactions[db_models.ReactionLike])
}

func (f *postFixture) assertGone(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := f.posts.GetPost(ctx, f.post.ID, nil)
	assert.ErrorIs(t, err, utils.ErrPostNotFound)

	comments, err := f.store.Comments().ListByPost(ctx, f.post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	reactions, err := f.store.Reactions().ListByPost(ctx, f.post.ID)
	require.NoError(t, err)
	assert.Empty(t, reactions)
}

func TestContentService_DeletePostScenario(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)

	err := f.content.DeletePost(ctx, f.post.ID, f.stranger)
	assert.ErrorIs(t, err, utils.ErrForbidden)
	f.assertIntact(t)

	require.NoError(t, f.content.DeletePost(ctx, f.post.ID, f.owner))
	f.assertGone(t)

	err = f.content.DeletePost(ctx, f.post.ID, f.owner)
	assert.ErrorIs(t, err, utils.ErrPostNotFound)
}

func TestContentService_DeletePostRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)

	f.store.FailOn("posts.Delete", errors.New("disk full"))
	err := f.content.DeletePost(ctx, f.post.ID, f.owner)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	f.store.FailOn("posts.Delete", nil)
	f.assertIntact(t)
}

func TestContentService_AdminCannotDeleteOthersPost(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	admin := seedAdmin(t, f.store, "root")

	err := f.content.DeletePost(ctx, f.post.ID, admin)
	assert.ErrorIs(t, err, utils.ErrForbidden)
	f.assertIntact(t)
}

func TestContentService_UpdatePost(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)

	_, err := f.content.UpdatePost(ctx, f.post.ID, f.stranger, PostInput{Title: "hijack", Content: "x"})
	assert.ErrorIs(t, err, utils.ErrForbidden)
	f.assertIntact(t)

	_, err = f.content.UpdatePost(ctx, f.post.ID, f.owner, PostInput{Content: "x"})
	assert.ErrorIs(t, err, utils.ErrValidation)

	updated, err := f.content.UpdatePost(ctx, f.post.ID, f.owner, PostInput{Title: "Go tips v2", Content: "use go vet"})
	require.NoError(t, err)
	assert.Equal(t, "Go tips v2", updated.Title)

	detail, err := f.posts.GetPost(ctx, f.post.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "use go vet", detail.Post.Content)
	assert.Len(t, detail.Comments, 2)
}

func TestContentService_Comments(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)

	comments, err := f.store.Comments().ListByPost(ctx, f.post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	bobs := comments[1]
	require.Equal(t, f.stranger.ID, bobs.AuthorID)

	// The post owner does not own other people's comments.
	_, err = f.content.UpdateComment(ctx, f.post.ID, bobs.ID, f.owner, "edited")
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = f.content.UpdateComment(ctx, f.post.ID+1000, bobs.ID, f.stranger, "edited")
	assert.ErrorIs(t, err, utils.ErrPostNotFound)

	other, err := f.posts.CreatePost(ctx, f.stranger, PostInput{Title: "Other", Content: "body"})
	require.NoError(t, err)
	_, err = f.content.UpdateComment(ctx, other.ID, bobs.ID, f.stranger, "edited")
	assert.ErrorIs(t, err, utils.ErrCommentNotFound)

	edited, err := f.content.UpdateComment(ctx, f.post.ID, bobs.ID, f.stranger, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", edited.Text)

	assert.ErrorIs(t, f.content.DeleteComment(ctx, bobs.ID, f.owner), utils.ErrForbidden)
	require.NoError(t, f.content.DeleteComment(ctx, bobs.ID, f.stranger))
	assert.ErrorIs(t, f.content.DeleteComment(ctx, bobs.ID, f.stranger), utils.ErrCommentNotFound)
}

func TestContentService_UpdateCommentRunsInTransaction(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)

	comments, err := f.store.Comments().ListByPost(ctx, f.post.ID)
	require.NoError(t, err)
	bobs := comments[1]

	boom := errors.New("boom")
	f.store.FailOn("comments.UpdateText", boom)
	_, err = f.content.UpdateComment(ctx, f.post.ID, bobs.ID, f.stranger, "edited")
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	f.store.FailOn("comments.UpdateText", nil)

	stored, err := f.store.Comments().FindById(ctx, bobs.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", stored.Text)

	// Once the post is gone its comments can no longer be edited.
	require.NoError(t, f.content.DeletePost(ctx, f.post.ID, f.owner))
	_, err = f.content.UpdateComment(ctx, f.post.ID, bobs.ID, f.stranger, "edited")
	assert.ErrorIs(t, err, utils.ErrPostNotFound)
}

func TestContentService_SingleEntityDeletes(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	content := NewContentService(store, nopLogger)
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	admin := seedAdmin(t, store, "root")

	note := &db_models.Note{OwnerID: alice.ID, Title: "n"}
	require.NoError(t, store.Notes().Create(ctx, note))
	assert.ErrorIs(t, content.DeleteNote(ctx, note.ID, bob), utils.ErrForbidden)
	require.NoError(t, content.DeleteNote(ctx, note.ID, alice))
	assert.ErrorIs(t, content.DeleteNote(ctx, note.ID, alice), utils.ErrNoteNotFound)

	lp := &db_models.LearningPlan{OwnerID: alice.ID, Title: "lp", Status: db_models.LearningPlanNotStarted}
	require.NoError(t, store.LearningPlans().Create(ctx, lp))
	assert.ErrorIs(t, content.DeleteLearningPlan(ctx, lp.ID, bob), utils.ErrForbidden)
	require.NoError(t, content.DeleteLearningPlan(ctx, lp.ID, alice))

	sub := &db_models.Subscription{UserID: alice.ID, PlanName: "Pro", Active: true}
	require.NoError(t, store.Subscriptions().Create(ctx, sub))
	assert.ErrorIs(t, content.DeleteSubscription(ctx, sub.ID, bob), utils.ErrForbidden)
	require.NoError(t, content.DeleteSubscription(ctx, sub.ID, admin))
	assert.ErrorIs(t, content.DeleteSubscription(ctx, sub.ID, alice), utils.ErrSubscriptionNotFound)
}

func TestContentService_DeleteSubscriptionPlan(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	content := NewContentService(store, nopLogger)
	subs := NewSubscriptionService(store, nopLogger)

	user := seedUser(t, store, "alice")
	pro := seedPlan(t, store, "Pro", 10)
	basic := seedPlan(t, store, "Basic", 5)

	_, err := subs.CreateSubscription(ctx, user.ID, "Pro")
	require.NoError(t, err)

	err = content.DeleteSubscriptionPlan(ctx, pro.ID)
	assert.ErrorIs(t, err, utils.ErrPlanInUse)
	still, err := store.Plans().FindById(ctx, pro.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)

	require.NoError(t, content.DeleteSubscriptionPlan(ctx, basic.ID))
	gone, err := store.Plans().FindById(ctx, basic.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.ErrorIs(t, content.DeleteSubscriptionPlan(ctx, basic.ID), utils.ErrPlanNotFound)
}
