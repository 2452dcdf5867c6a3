package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"skillsphere/internal/models/db_models"
	"skillsphere/internal/repositories/memory"
	"skillsphere/pkg/utils"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var nopLogger = zap.NewNop()

func newTokenService(t *testing.T) *utils.TokenService {
	t.Helper()
	tokens, err := utils.NewTokenService(utils.TokenConfig{
		Secret: []byte(testSecret),
		Issuer: "skillsphere-test",
		TTL:    time.Hour,
	})
	require.NoError(t, err)
	return tokens
}

func seedUser(t *testing.T, store *memory.Store, username string) *Principal {
	t.Helper()
	user := &db_models.User{Username: username, PasswordHash: "x"}
	require.NoError(t, store.Users().CreateUser(context.Background(), user))
	return &Principal{ID: user.ID, DisplayName: user.Username, Source: SourceUser}
}

func seedAdmin(t *testing.T, store *memory.Store, username string) *Principal {
	t.Helper()
	admin := &db_models.Admin{Username: username, PasswordHash: "x"}
	require.NoError(t, store.Users().CreateAdmin(context.Background(), admin))
	return &Principal{ID: admin.ID, DisplayName: admin.Username, IsAdmin: true, Source: SourceAdmin}
}

func seedPost(t *testing.T, store *memory.Store, owner *Principal) *db_models.Post {
	t.Helper()
	post := &db_models.Post{OwnerID: owner.ID, Title: "title", Content: "content"}
	require.NoError(t, store.Posts().Create(context.Background(), post))
	return post
}

func seedPlan(t *testing.T, store *memory.Store, name string, price float64) *db_models.SubscriptionPlan {
	t.Helper()
	plan := &db_models.SubscriptionPlan{Name: name, Features: []string{"feature"}, Price: price}
	require.NoError(t, store.Plans().Create(context.Background(), plan))
	return plan
}
