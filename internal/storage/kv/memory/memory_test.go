package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkedink/internal/storage/kv"
	"linkedink/internal/storage/kv/kvtest"
)

func TestStore(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) kv.Store {
		return New()
	})
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := New()
	ctx := context.Background()

	value := []byte("acc-1")
	require.NoError(t, s.Put(ctx, "currentUserId", value))
	value[0] = 'X'

	e, err := s.Get(ctx, "currentUserId")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", string(e.Value))

	e.Value[0] = 'Y'
	again, err := s.Get(ctx, "currentUserId")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", string(again.Value))
}
