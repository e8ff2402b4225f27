package guestcart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyLock_SerializesSameKey(t *testing.T) {
	l := newKeyLock()
	ctx := context.Background()

	unlock, err := l.lock(ctx, "guest-1")
	require.NoError(t, err)

	// A different key is independent.
	other, err := l.lock(ctx, "guest-2")
	require.NoError(t, err)
	other()

	acquired := make(chan func())
	go func() {
		next, err := l.lock(ctx, "guest-1")
		if err == nil {
			acquired <- next
		}
	}()

	select {
	case <-acquired:
		t.Fatal("second holder entered while the key was locked")
	case <-time.After(20 * time.Millisecond):
	}

	unlock()
	unlock() // second call is a no-op

	select {
	case next := <-acquired:
		next()
	case <-time.After(time.Second):
		t.Fatal("waiter never acquired the released key")
	}

	assert.Empty(t, l.entries)
}

func TestKeyLock_HonorsContext(t *testing.T) {
	l := newKeyLock()

	unlock, err := l.lock(context.Background(), "guest-1")
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = l.lock(ctx, "guest-1")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	l.mu.Lock()
	assert.Equal(t, 1, l.entries["guest-1"].refs)
	l.mu.Unlock()
}

func TestBlobRepository_LockRejectsBadID(t *testing.T) {
	repo := NewRepository(newTestBucket(t), "guest-carts/")

	_, err := repo.Lock(context.Background(), "../escape")
	require.Error(t, err)
}
