package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemates/website/internal/testutil"
)

func TestRedisCacheRepo(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	client := testutil.SetupTestRedis(t)
	defer func() {
		if err := client.Close(); err != nil {
			t.Logf("failed to close redis client: %v", err)
		}
	}()

	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	t.Run("set and get round trip", func(t *testing.T) {
		err := repo.Set(ctx, "projects:list", []byte(`[{"id":"p1"}]`), time.Minute)
		require.NoError(t, err)

		got, err := repo.Get(ctx, "projects:list")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[{"id":"p1"}]`), got)
	})

	t.Run("missing key returns nil without error", func(t *testing.T) {
		got, err := repo.Get(ctx, "no-such-key")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete reports whether the key existed", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "doomed", []byte("x"), time.Minute))

		existed, err := repo.Delete(ctx, "doomed")
		require.NoError(t, err)
		assert.True(t, existed)

		existed, err = repo.Delete(ctx, "doomed")
		require.NoError(t, err)
		assert.False(t, existed)
	})

	t.Run("expired entries disappear", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "short-lived", []byte("x"), 50*time.Millisecond))
		time.Sleep(100 * time.Millisecond)

		got, err := repo.Get(ctx, "short-lived")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("empty keys are rejected", func(t *testing.T) {
		assert.Error(t, repo.Set(ctx, "", []byte("x"), time.Minute))

		_, err := repo.Get(ctx, "")
		assert.Error(t, err)

		_, err = repo.Delete(ctx, "")
		assert.Error(t, err)
	})

	t.Run("health check succeeds", func(t *testing.T) {
		assert.NoError(t, repo.Health(ctx))
	})
}
