package ratelimiter

import (
	"aesthetics-service/internal/app/services/shared/memstore"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockCounterStore struct {
	mock.Mock
}

func (m *MockCounterStore) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

func TestResourceLimiter_ApplyResourceLimiter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 30, 0, time.UTC)

	t.Run("Allows Up To Quota Then Reports Retry After", func(t *testing.T) {
		limiter := NewResourceLimiter(memstore.NewMemoryCounterStore(), zap.NewNop())
		in := &ApplyResourceLimiterInput{
			ResourceName:      "recDemoProvider01",
			LimiterGroupName:  "scan-upload",
			WindowDurationSec: 60,
			MaxQuota:          2,
			NowUTC:            now,
		}

		for i := 0; i < 2; i++ {
			out, err := limiter.ApplyResourceLimiter(ctx, in)
			require.NoError(t, err)
			assert.True(t, out.Allowed)
		}

		out, err := limiter.ApplyResourceLimiter(ctx, in)
		require.NoError(t, err)
		assert.False(t, out.Allowed)
		assert.Equal(t, 31, out.RetryAfterSecs)
	})

	t.Run("Next Window Starts Fresh", func(t *testing.T) {
		limiter := NewResourceLimiter(memstore.NewMemoryCounterStore(), zap.NewNop())
		in := &ApplyResourceLimiterInput{ResourceName: "p1", LimiterGroupName: "scan-upload", WindowDurationSec: 60, MaxQuota: 1, NowUTC: now}

		out, _ := limiter.ApplyResourceLimiter(ctx, in)
		assert.True(t, out.Allowed)
		out, _ = limiter.ApplyResourceLimiter(ctx, in)
		assert.False(t, out.Allowed)

		in.NowUTC = now.Add(time.Minute)
		out, _ = limiter.ApplyResourceLimiter(ctx, in)
		assert.True(t, out.Allowed)
	})

	t.Run("Resources Are Counted Separately", func(t *testing.T) {
		limiter := NewResourceLimiter(memstore.NewMemoryCounterStore(), zap.NewNop())
		first := &ApplyResourceLimiterInput{ResourceName: "p1", LimiterGroupName: "scan-upload", MaxQuota: 1, NowUTC: now}
		second := &ApplyResourceLimiterInput{ResourceName: "p2", LimiterGroupName: "scan-upload", MaxQuota: 1, NowUTC: now}

		out, _ := limiter.ApplyResourceLimiter(ctx, first)
		assert.True(t, out.Allowed)
		out, _ = limiter.ApplyResourceLimiter(ctx, second)
		assert.True(t, out.Allowed)
	})

	t.Run("Zero Quota Disables Limiter", func(t *testing.T) {
		store := new(MockCounterStore)
		limiter := NewResourceLimiter(store, zap.NewNop())

		out, err := limiter.ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{ResourceName: "p1", LimiterGroupName: "scan-upload"})
		require.NoError(t, err)
		assert.True(t, out.Allowed)
		store.AssertNotCalled(t, "IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Key Is Namespaced By Group And Window", func(t *testing.T) {
		store := new(MockCounterStore)
		store.On("IncrementWithTTL", ctx, "SCAN-UPLOAD:recdemoprovider01:28575960", 61*time.Second).Return(1, nil)
		limiter := NewResourceLimiter(store, zap.NewNop())

		out, err := limiter.ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{
			ResourceName:      " recDemoProvider01 ",
			LimiterGroupName:  "scan-upload",
			WindowDurationSec: 60,
			MaxQuota:          5,
			NowUTC:            now,
		})
		require.NoError(t, err)
		assert.True(t, out.Allowed)
		store.AssertExpectations(t)
	})

	t.Run("Store Failure", func(t *testing.T) {
		store := new(MockCounterStore)
		store.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(0, errors.New("connection refused"))
		limiter := NewResourceLimiter(store, zap.NewNop())

		out, err := limiter.ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{ResourceName: "p1", LimiterGroupName: "scan-upload", MaxQuota: 1, NowUTC: now})
		assert.Error(t, err)
		assert.False(t, out.Allowed)
	})

	t.Run("Nil Input", func(t *testing.T) {
		limiter := NewResourceLimiter(memstore.NewMemoryCounterStore(), zap.NewNop())
		_, err := limiter.ApplyResourceLimiter(ctx, nil)
		assert.Error(t, err)
	})
}
