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

func TestAccountService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	tokens := newTokenService(t)
	svc := NewAccountService(store.Users(), tokens, nopLogger)

	registered, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", registered.Principal.DisplayName)

	subject, err := tokens.Verify(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.Principal.Subject(), subject)

	_, err = svc.Register(ctx, "alice", "other")
	assert.ErrorIs(t, err, utils.ErrUsernameTaken)

	loggedIn, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.Principal.ID, loggedIn.Principal.ID)
	assert.Equal(t, SourceUser, loggedIn.Principal.Source)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "secret1")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestAccountService_AdminLogin(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewAccountService(store.Users(), newTokenService(t), nopLogger)

	hash, err := utils.HashPassword("rootpass")
	require.NoError(t, err)
	require.NoError(t, store.Users().CreateAdmin(ctx, &db_models.Admin{Username: "root", PasswordHash: hash}))

	res, err := svc.Login(ctx, "root", "rootpass")
	require.NoError(t, err)
	assert.True(t, res.Principal.IsAdmin)
	assert.Equal(t, SourceAdmin, res.Principal.Source)

	me, err := svc.Me(ctx, res.Principal)
	require.NoError(t, err)
	assert.Equal(t, "root", me.DisplayName)

	_, err = svc.Me(ctx, nil)
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
}

func TestAccountService_RegisterValidation(t *testing.T) {
	svc := NewAccountService(memory.NewStore().Users(), newTokenService(t), nopLogger)

	_, err := svc.Register(context.Background(), "  ", "secret1")
	assert.ErrorIs(t, err, utils.ErrValidation)
}
