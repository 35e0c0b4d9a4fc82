package memkv

import (
	"context"
	"testing"
	"time"

	"github.com/momeni/autorent/pkg/core/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ repo.SessionStore = (*Store)(nil)

func TestStoreGetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := New()
	_, found, err := s.Get(ctx, "cart:a")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "cart:a", "[]"))
	v, found, err := s.Get(ctx, "cart:a")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", v)

	require.NoError(t, s.Set(ctx, "cart:a", `[{"days":2}]`))
	v, _, _ = s.Get(ctx, "cart:a")
	assert.Equal(t, `[{"days":2}]`, v)

	require.NoError(t, s.Delete(ctx, "cart:a"))
	require.NoError(t, s.Delete(ctx, "cart:a"), "deleting twice")
	_, found, _ = s.Get(ctx, "cart:a")
	assert.False(t, found)
}

func TestStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := New()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.SetTTL(ctx, "session", "x", time.Minute))
	require.NoError(t, s.SetTTL(ctx, "forever", "y", 0))

	now = now.Add(59 * time.Second)
	_, found, _ := s.Get(ctx, "session")
	assert.True(t, found)

	now = now.Add(time.Second)
	_, found, _ = s.Get(ctx, "session")
	assert.False(t, found, "expired entries are not reported")
	assert.Equal(t, 1, s.Len(), "expired entries are collected on read")

	_, found, _ = s.Get(ctx, "forever")
	assert.True(t, found)
}
