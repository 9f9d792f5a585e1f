package draft_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/outbound/draft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires a running Redis: ETDAH_TEST_REDIS_ADDR=localhost:6379 go test ./...
func redisStore(t *testing.T) *draft.RedisStore {
	t.Helper()
	addr := os.Getenv("ETDAH_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("ETDAH_TEST_REDIS_ADDR not set")
	}
	s, err := draft.NewRedisStore(context.Background(), addr, "", 0, time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRedisStore_RoundTrip(t *testing.T) {
	s := redisStore(t)
	ctx := context.Background()
	key := "test_" + t.Name()

	d := sampleDraft(time.Now())
	require.NoError(t, s.Save(ctx, key, d))

	got, err := s.Load(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, d, *got)

	require.NoError(t, s.Clear(ctx, key))
	got, err = s.Load(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNewRedisStore_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := draft.NewRedisStore(ctx, "127.0.0.1:1", "", 0, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}
