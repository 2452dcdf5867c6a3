package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"skillsphere/internal/repositories/memory"
	"skillsphere/pkg/utils"
)

func usernames(profile *Profile) (followers, following []string) {
	for _, u := range profile.Followers {
		followers = append(followers, u.Username)
	}
	for _, u := range profile.Following {
		following = append(following, u.Username)
	}
	return followers, following
}

func TestFollowService_FollowAndUnfollow(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewFollowService(store, nopLogger)

	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	carol := seedUser(t, store, "carol")

	profile, err := svc.Follow(ctx, alice.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.User.Username)
	followers, _ := usernames(profile)
	assert.Equal(t, []string{"bob"}, followers)

	// Following twice keeps a single edge.
	_, err = svc.Follow(ctx, alice.ID, bob)
	require.NoError(t, err)
	profile, err = svc.Follow(ctx, alice.ID, carol)
	require.NoError(t, err)
	followers, _ = usernames(profile)
	assert.Equal(t, []string{"bob", "carol"}, followers)

	bobs, err := svc.GetProfile(ctx, bob.ID)
	require.NoError(t, err)
	_, following := usernames(bobs)
	assert.Equal(t, []string{"alice"}, following)

	profile, err = svc.Unfollow(ctx, alice.ID, bob)
	require.NoError(t, err)
	followers, _ = usernames(profile)
	assert.Equal(t, []string{"carol"}, followers)

	_, err = svc.Unfollow(ctx, alice.ID, bob)
	require.NoError(t, err)
}

func TestFollowService_Rejections(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewFollowService(store, nopLogger)

	alice := seedUser(t, store, "alice")
	root := seedAdmin(t, store, "root")

	_, err := svc.Follow(ctx, alice.ID, alice)
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.Unfollow(ctx, alice.ID, alice)
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.Follow(ctx, alice.ID+1000, alice)
	assert.ErrorIs(t, err, utils.ErrUserNotFound)

	_, err = svc.Follow(ctx, alice.ID, root)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = svc.Follow(ctx, alice.ID, nil)
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)

	store.FailOn("follows.Create", errors.New("connection reset"))
	bob := seedUser(t, store, "bob")
	_, err = svc.Follow(ctx, alice.ID, bob)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestFollowService_ProfileListsPostsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewFollowService(store, nopLogger)
	posts := NewPostService(store, nopLogger)

	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")

	_, err := posts.CreatePost(ctx, alice, PostInput{Title: "first", Content: "a"})
	require.NoError(t, err)
	_, err = posts.CreatePost(ctx, alice, PostInput{Title: "second", Content: "b"})
	require.NoError(t, err)
	_, err = posts.CreatePost(ctx, bob, PostInput{Title: "other", Content: "c"})
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, profile.Posts, 2)
	assert.Equal(t, "second", profile.Posts[0].Title)
	assert.Empty(t, profile.Followers)

	_, err = svc.GetProfile(ctx, alice.ID+1000)
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}
