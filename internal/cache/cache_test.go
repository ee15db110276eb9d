package cache

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "leasehub/internal/errors"
)

func TestNilClientBehavesLikeMiss(t *testing.T) {
	var c *Client
	ctx := context.Background()

	v, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, v)
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.Error(t, c.Ping(ctx))
}

func TestMemory_SetGetDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), 0))
	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)

	require.NoError(t, m.Delete(ctx, "k"))
	v, _ = m.Get(ctx, "k")
	assert.Nil(t, v)
}

func TestMemory_Expiry(t *testing.T) {
	m := NewMemory()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))
	now = now.Add(59 * time.Second)
	v, _ := m.Get(ctx, "k")
	assert.NotNil(t, v)

	now = now.Add(time.Second)
	v, _ = m.Get(ctx, "k")
	assert.Nil(t, v)
}

func TestJSONHelpers(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	type item struct{ Name string }
	require.NoError(t, SetJSON(ctx, m, "item", item{Name: "a"}, 0))

	var got item
	found, err := GetJSON(ctx, m, "item", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a", got.Name)

	found, err = GetJSON(ctx, m, "missing", &got)
	assert.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, m.Set(ctx, "bad", []byte("{"), 0))
	_, err = GetJSON(ctx, m, "bad", &got)
	assert.Error(t, err)
}

func TestQueryKey_OrderIndependent(t *testing.T) {
	a := url.Values{}
	a.Set("city", "Austin")
	a.Set("minPrice", "900")

	b := url.Values{}
	b.Set("minPrice", "900")
	b.Set("city", "Austin")

	assert.Equal(t, QueryKey("listings", a), QueryKey("listings", b))
	assert.Contains(t, QueryKey("listings", a), "listings:")

	b.Set("city", "Dallas")
	assert.NotEqual(t, QueryKey("listings", a), QueryKey("listings", b))
}

func TestMemory_SetNX(t *testing.T) {
	m := NewMemory()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	ok, err := m.SetNX(ctx, "lock", []byte("1"), time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.SetNX(ctx, "lock", []byte("2"), time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "held lock")

	now = now.Add(time.Minute)
	ok, err = m.SetNX(ctx, "lock", []byte("3"), time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "expired lock")

	require.NoError(t, m.Delete(ctx, "lock"))
	ok, _ = m.SetNX(ctx, "lock", []byte("4"), 0)
	assert.True(t, ok)
}

func TestStrict_ReportsUnreachableRedis(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// the fail-safe client hides the outage
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)

	strict := c.Strict()
	assert.ErrorIs(t, strict.Set(ctx, "k", []byte("v"), time.Minute), apperrors.ErrStoreUnavailable)
	_, err = strict.Get(ctx, "k")
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.ErrorIs(t, strict.Delete(ctx, "k"), apperrors.ErrStoreUnavailable)
	_, err = strict.SetNX(ctx, "k", []byte("v"), time.Minute)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestStrict_NilClient(t *testing.T) {
	var c *Client
	_, err := c.Strict().Get(context.Background(), "k")
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}
