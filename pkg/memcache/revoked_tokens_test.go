package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevokedTokens_RevokeAndExpire(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewRevokedTokens()
	store.now = func() time.Time { return now }

	store.Revoke("tok-a", now.Add(time.Hour))
	store.Revoke("tok-b", now.Add(-time.Minute)) // already expired, ignored

	assert.True(t, store.IsRevoked("tok-a"))
	assert.False(t, store.IsRevoked("tok-b"))
	assert.False(t, store.IsRevoked("unknown"))

	now = now.Add(2 * time.Hour)
	assert.False(t, store.IsRevoked("tok-a"))
}

func TestRevokedTokens_Sweep(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewRevokedTokens()
	store.now = func() time.Time { return now }

	store.Revoke("short", now.Add(time.Minute))
	store.Revoke("long", now.Add(time.Hour))

	now = now.Add(10 * time.Minute)
	assert.Equal(t, 1, store.Sweep())
	assert.True(t, store.IsRevoked("long"))
}
