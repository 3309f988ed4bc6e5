package session_test

import (
	"sync"
	"testing"
	"time"

	"github.com/mthompson/stickit/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateThenValidate(t *testing.T) {
	store := session.NewStore(0)

	token := store.Create("bob")
	require.NotEmpty(t, token)

	sess, ok := store.Validate(token)
	require.True(t, ok)
	assert.Equal(t, "bob", sess.Username)
	assert.Equal(t, token, sess.Token)
}

func TestStore_TokensNotReusedAcrossLogins(t *testing.T) {
	store := session.NewStore(0)

	first := store.Create("bob")
	second := store.Create("bob")
	assert.NotEqual(t, first, second)

	// Both logins stay valid independently.
	_, ok := store.Validate(first)
	assert.True(t, ok)
	_, ok = store.Validate(second)
	assert.True(t, ok)
}

func TestStore_UnknownToken(t *testing.T) {
	store := session.NewStore(0)

	_, ok := store.Validate("never-issued")
	assert.False(t, ok)

	_, ok = store.Validate("")
	assert.False(t, ok)
}

func TestStore_Revoke(t *testing.T) {
	store := session.NewStore(0)
	token := store.Create("bob")

	store.Revoke(token)

	_, ok := store.Validate(token)
	assert.False(t, ok)

	// Idempotent: revoking again (or revoking garbage) is not an error.
	store.Revoke(token)
	store.Revoke("absent")

	_, ok = store.Validate(token)
	assert.False(t, ok)
}

func TestStore_ExpiredSessionEvictedOnValidate(t *testing.T) {
	store := session.NewStore(10 * time.Millisecond)
	token := store.Create("alice")

	time.Sleep(20 * time.Millisecond)

	_, ok := store.Validate(token)
	assert.False(t, ok)

	// Eviction happened on first detection, not on a later sweep.
	_, ok = store.Validate(token)
	assert.False(t, ok)
}

func TestStore_FarFuturePolicyDoesNotExpire(t *testing.T) {
	store := session.NewStore(0)
	token := store.Create("alice")

	sess, ok := store.Validate(token)
	require.True(t, ok)
	assert.False(t, sess.Expired())
	assert.True(t, sess.ExpiresAt.Equal(session.FarFuture))
}

func TestStore_ConcurrentValidateAndRevoke(t *testing.T) {
	store := session.NewStore(0)

	tokens := make([]string, 50)
	for i := range tokens {
		tokens[i] = store.Create("user")
	}

	var wg sync.WaitGroup
	for _, token := range tokens {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Validate(token)
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Revoke(token)
		}()
	}
	wg.Wait()

	for _, token := range tokens {
		_, ok := store.Validate(token)
		assert.False(t, ok)
	}
}
