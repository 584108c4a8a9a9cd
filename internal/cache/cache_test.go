package cache_test

import (
	"testing"
	"time"

	"github.com/leighmacdonald/dyn-scroll/internal/cache"
	"github.com/stretchr/testify/require"
)

func TestFilesystem(t *testing.T) {
	fsCache, err := cache.New(t.TempDir())
	require.NoError(t, err)

	key := cache.Key{Source: "abc", Width: 40, Height: 20}
	_, errMiss := fsCache.Get(key)
	require.ErrorIs(t, errMiss, cache.ErrCacheMiss)

	require.NoError(t, fsCache.Set(key, []byte("rendered")))
	body, errGet := fsCache.Get(key)
	require.NoError(t, errGet)
	require.Equal(t, []byte("rendered"), body)

	// Same source at another size is a different entry.
	_, errSize := fsCache.Get(cache.Key{Source: "abc", Width: 41, Height: 20})
	require.ErrorIs(t, errSize, cache.ErrCacheMiss)
}

func TestFilesystemExpired(t *testing.T) {
	fsCache, err := cache.New(t.TempDir())
	require.NoError(t, err)

	key := cache.Key{Source: "old", Width: 1, Height: 1}
	require.NoError(t, fsCache.Set(key, []byte("x")))

	stale := fsCache.WithMaxAge(-time.Second)
	_, errGet := stale.Get(key)
	require.ErrorIs(t, errGet, cache.ErrCacheMiss)

	// The stale entry was removed.
	_, errGet = fsCache.Get(key)
	require.ErrorIs(t, errGet, cache.ErrCacheMiss)
}

func TestNoop(t *testing.T) {
	var noop cache.Noop
	require.NoError(t, noop.Set(cache.Key{}, []byte("x")))
	_, err := noop.Get(cache.Key{})
	require.ErrorIs(t, err, cache.ErrCacheMiss)
}
