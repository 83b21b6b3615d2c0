// Package kvtest holds the behaviour every kv.Store implementation must share.
package kvtest

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkedink/internal/storage/kv"
)

func Run(t *testing.T, newStore func(t *testing.T) kv.Store) {
	t.Run("get absent", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Get(context.Background(), "users")
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("put then get", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Put(ctx, "currentUserId", []byte("acc-1")))

		e, err := s.Get(ctx, "currentUserId")
		require.NoError(t, err)
		assert.Equal(t, []byte("acc-1"), e.Value)
		assert.Positive(t, e.Version)
	})

	t.Run("versions increase", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Put(ctx, "a", []byte("1")))
		first, err := s.Get(ctx, "a")
		require.NoError(t, err)

		require.NoError(t, s.Put(ctx, "a", []byte("2")))
		second, err := s.Get(ctx, "a")
		require.NoError(t, err)

		assert.Greater(t, second.Version, first.Version)
	})

	t.Run("put all", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.PutAll(ctx, map[string][]byte{
			"userPosts":    []byte(`["a","b","c"]`),
			"styleProfile": []byte(`{}`),
		}))

		for _, key := range []string{"userPosts", "styleProfile"} {
			_, err := s.Get(ctx, key)
			assert.NoError(t, err, key)
		}
	})

	t.Run("compare and swap", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		v1, err := s.CompareAndSwap(ctx, "users", 0, []byte(`[]`))
		require.NoError(t, err)

		_, err = s.CompareAndSwap(ctx, "users", 0, []byte(`[1]`))
		assert.ErrorIs(t, err, kv.ErrVersionConflict, "key exists, version 0 must fail")

		v2, err := s.CompareAndSwap(ctx, "users", v1, []byte(`[2]`))
		require.NoError(t, err)
		assert.Greater(t, v2, v1)

		_, err = s.CompareAndSwap(ctx, "users", v1, []byte(`[3]`))
		assert.ErrorIs(t, err, kv.ErrVersionConflict, "stale version must fail")

		e, err := s.Get(ctx, "users")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[2]`), e.Value)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Put(ctx, "currentUserId", []byte("acc-1")))
		require.NoError(t, s.Delete(ctx, "currentUserId"))
		require.NoError(t, s.Delete(ctx, "currentUserId"))

		_, err := s.Get(ctx, "currentUserId")
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("recreated key does not reuse version", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		v1, err := s.CompareAndSwap(ctx, "k", 0, []byte("x"))
		require.NoError(t, err)
		require.NoError(t, s.Delete(ctx, "k"))
		v2, err := s.CompareAndSwap(ctx, "k", 0, []byte("y"))
		require.NoError(t, err)

		assert.NotEqual(t, v1, v2)
		_, err = s.CompareAndSwap(ctx, "k", v1, []byte("z"))
		assert.ErrorIs(t, err, kv.ErrVersionConflict)
	})

	t.Run("concurrent updates are not lost", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		const writers = 8
		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := kv.UpdateJSON(ctx, s, "counter", func(n *int) error {
					*n++
					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		n, err := kv.LoadJSON[int](ctx, s, "counter")
		require.NoError(t, err)
		assert.Equal(t, writers, n)
	})
}
