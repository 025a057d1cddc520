package repository

import (
	"context"
	"ctchen222/three-in-a-row/internal/api/apperror"
	"ctchen222/three-in-a-row/internal/db"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) DeviceRepository {
	t.Helper()
	pool, err := db.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })
	return NewDeviceRepository(pool)
}

func TestDeviceRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	// Given: a freshly created device
	created, err := repo.Create(ctx, "dev-1")
	require.NoError(t, err)

	// When: it is looked up
	found, err := repo.FindByID(ctx, "dev-1")

	// Then: it has empty tallies
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Zero(t, found.Wins)
	assert.Zero(t, found.Losses)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestDeviceRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.Create(ctx, "dev-1")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "dev-1")
	assert.Error(t, err)
}

func TestDeviceRepository_FindByID_NotFound(t *testing.T) {
	_, err := newTestRepository(t).FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperror.ErrDeviceNotFound)
}

func TestDeviceRepository_RecordResult(t *testing.T) {
	ctx := context.Background()

	t.Run("credits both devices", func(t *testing.T) {
		repo := newTestRepository(t)
		_, err := repo.Create(ctx, "winner")
		require.NoError(t, err)
		_, err = repo.Create(ctx, "loser")
		require.NoError(t, err)

		require.NoError(t, repo.RecordResult(ctx, "winner", "loser"))
		require.NoError(t, repo.RecordResult(ctx, "winner", "loser"))

		winner, err := repo.FindByID(ctx, "winner")
		require.NoError(t, err)
		loser, err := repo.FindByID(ctx, "loser")
		require.NoError(t, err)
		assert.Equal(t, 2, winner.Wins)
		assert.Zero(t, winner.Losses)
		assert.Equal(t, 2, loser.Losses)
		assert.Zero(t, loser.Wins)
	})

	t.Run("unknown loser rolls back", func(t *testing.T) {
		repo := newTestRepository(t)
		_, err := repo.Create(ctx, "winner")
		require.NoError(t, err)

		err = repo.RecordResult(ctx, "winner", "ghost")
		assert.ErrorIs(t, err, apperror.ErrDeviceNotFound)

		winner, err := repo.FindByID(ctx, "winner")
		require.NoError(t, err)
		assert.Zero(t, winner.Wins)
	})
}
