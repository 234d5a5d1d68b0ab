package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKV struct {
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMemKV() *memKV {
	return &memKV{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

var _ scs.Store = (*SessionStore)(nil)

func TestSessionStore_RoundTrip(t *testing.T) {
	kv := newMemKV()
	store := NewSessionStore(kv)

	require.NoError(t, store.Commit("tok", []byte("payload"), time.Now().Add(time.Hour)))
	assert.Greater(t, kv.ttls["session:tok"], 59*time.Minute)

	data, found, err := store.Find("tok")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("payload"), data)

	require.NoError(t, store.Delete("tok"))
	_, found, err = store.Find("tok")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionStore_ExpiredCommitDeletes(t *testing.T) {
	kv := newMemKV()
	store := NewSessionStore(kv)
	kv.data["session:old"] = []byte("x")

	require.NoError(t, store.Commit("old", []byte("y"), time.Now().Add(-time.Second)))
	_, found, _ := store.Find("old")
	assert.False(t, found)
}

func TestClient_NilIsSafe(t *testing.T) {
	var c *Client
	ctx := context.Background()

	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Second))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.Ping(ctx))
}

type failingKV struct{ err error }

func (f failingKV) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingKV) Set(context.Context, string, []byte, time.Duration) error { return f.err }
func (f failingKV) Delete(context.Context, string) error { return f.err }

func TestSessionStore_SurfacesStorageErrors(t *testing.T) {
	store := NewSessionStore(failingKV{err: errors.New("connection refused")})

	assert.Error(t, store.Commit("tok", []byte("payload"), time.Now().Add(time.Hour)))
	_, found, err := store.Find("tok")
	assert.Error(t, err)
	assert.False(t, found)
	assert.Error(t, store.Delete("tok"))
}

func TestClient_StrictReportsUnreachableRedis(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	t.Cleanup(func() { _ = c.Close() })
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	assert.Error(t, c.Strict().Set(ctx, "k", []byte("v"), time.Minute))

	_, err := c.Strict().Get(ctx, "k")
	assert.Error(t, err)
	assert.Error(t, NewSessionStore(c.Strict()).Commit("tok", []byte("x"), time.Now().Add(time.Hour)))
}

func TestClient_StrictWithoutRedis(t *testing.T) {
	var c *Client
	assert.Error(t, c.Strict().Set(context.Background(), "k", nil, time.Second))
}
