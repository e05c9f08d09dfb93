package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, opts ...RedisOption) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})
	return NewRedisStore(rdb, opts...), mr
}

func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()
	rs, _ := newRedisStore(t)
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "nested", "session.json")),
		"redis":  rs,
	}
}

func TestStores_GetSetClear(t *testing.T) {
	for name, s := range storesUnderTest(t) {
		s := s
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			v, err := s.Get(ctx, KeyAccessToken)
			require.NoError(t, err)
			assert.Empty(t, v, "missing key must read as empty")

			require.NoError(t, s.Set(ctx, KeyAccessToken, "tok"))
			require.NoError(t, s.Set(ctx, "theme", "dark"))

			v, err = s.Get(ctx, KeyAccessToken)
			require.NoError(t, err)
			assert.Equal(t, "tok", v)

			require.NoError(t, s.Clear(ctx))
			for _, k := range []string{KeyAccessToken, "theme"} {
				v, err = s.Get(ctx, k)
				require.NoError(t, err)
				assert.Empty(t, v, "clear must drop %s", k)
			}

			// clearing an empty store is not an error
			require.NoError(t, s.Clear(ctx))
		})
	}
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewMemoryStore()
	_, err := s.Get(ctx, KeyAccessToken)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Set(ctx, KeyAccessToken, "x"), context.Canceled)
}

func TestFileStore_Permissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileStore(path)
	require.NoError(t, s.Set(context.Background(), KeyAPIKey, "k"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// a second store on the same path sees the value
	v, err := NewFileStore(path).Get(context.Background(), KeyAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "k", v)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err := NewFileStore(path).Get(context.Background(), KeyAccessToken)
	assert.Error(t, err)
}

func TestRedisStore_KeyAndTTL(t *testing.T) {
	s, mr := newRedisStore(t, WithRedisKey("tenant:42"), WithRedisTTL(0))
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, KeyTokenType, "bearer"))
	assert.Equal(t, "bearer", mr.HGet("tenant:42", KeyTokenType))
	assert.False(t, mr.Exists(DefaultRedisKey))

	ttlStore, mr2 := newRedisStore(t, WithRedisTTL(time.Minute))
	require.NoError(t, ttlStore.Set(ctx, KeyAccessToken, "tok"))
	assert.Greater(t, int64(mr2.TTL(DefaultRedisKey)), int64(0))
}
