package locker

import (
	"carelink-service/internal/app/contracts/mocks"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLockService(t *testing.T) {
	ctx := context.Background()

	t.Run("Acquire And Release", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		svc := NewLockService(repo, zap.NewNop())

		repo.On("TrySetNX", ctx, "reminder:leader", mock.AnythingOfType("string"), time.Minute).Return(true, nil)
		acquired, value, err := svc.TryLock(ctx, "reminder:leader", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, value)

		repo.On("Get", ctx, "reminder:leader").Return(`"`+value+`"`, nil)
		repo.On("Delete", ctx, "reminder:leader").Return(nil)
		assert.NoError(t, svc.Unlock(ctx, "reminder:leader", value))
		repo.AssertExpectations(t)
	})

	t.Run("Held By Another Instance", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		svc := NewLockService(repo, zap.NewNop())

		repo.On("TrySetNX", ctx, "reminder:leader", mock.Anything, time.Minute).Return(false, nil)
		acquired, value, err := svc.TryLock(ctx, "reminder:leader", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, value)
	})

	t.Run("Unlock Foreign Lock Fails Without Delete", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		svc := NewLockService(repo, zap.NewNop())

		repo.On("Get", ctx, "reminder:leader").Return(`"someone-else"`, nil)
		assert.Error(t, svc.Unlock(ctx, "reminder:leader", "mine"))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Refresh Owned Lock", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		svc := NewLockService(repo, zap.NewNop())

		repo.On("Get", ctx, "reminder:leader").Return(`"mine"`, nil)
		repo.On("Expire", ctx, "reminder:leader", 2*time.Minute).Return(true, nil)
		assert.NoError(t, svc.Refresh(ctx, "reminder:leader", "mine", 2*time.Minute))
		repo.AssertExpectations(t)
	})

	t.Run("Refresh Expired Lock", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		svc := NewLockService(repo, zap.NewNop())

		repo.On("Get", ctx, "reminder:leader").Return("", nil)
		assert.Error(t, svc.Refresh(ctx, "reminder:leader", "mine", time.Minute))
		repo.AssertNotCalled(t, "Expire", mock.Anything, mock.Anything, mock.Anything)
	})
}
