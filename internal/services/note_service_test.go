package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"skillsphere/internal/repositories/memory"
	"skillsphere/pkg/utils"
)

func TestNoteService(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewNoteService(store.Notes(), nopLogger)

	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")

	note, err := svc.CreateNote(ctx, alice, "groceries", "milk")
	require.NoError(t, err)

	_, err = svc.CreateNote(ctx, alice, "", "empty title")
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.UpdateNote(ctx, note.ID, bob, "mine", "")
	assert.ErrorIs(t, err, utils.ErrForbidden)

	updated, err := svc.UpdateNote(ctx, note.ID, alice, "groceries", "milk, eggs")
	require.NoError(t, err)
	assert.Equal(t, "milk, eggs", updated.Content)

	notes, err := svc.ListNotes(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	notes, err = svc.ListNotes(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, notes)
}
