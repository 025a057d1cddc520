package repository

import (
	"ctchen222/three-in-a-row/internal/api/apperror"
	"ctchen222/three-in-a-row/internal/api/models"
	"ctchen222/three-in-a-row/internal/game"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRepository_CreateAndFind(t *testing.T) {
	ctx, rdb := newRedis(t)
	repo := NewMatchRepository(rdb, time.Hour)

	// Given: a new 4x4 match
	created, err := repo.Create(ctx, "m-1", 4, "dev-x", "dev-o")
	require.NoError(t, err)

	// When: it is read back
	found, err := repo.FindByID(ctx, "m-1")

	// Then: X moves first on an empty board
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, 4, found.Board.Size())
	assert.Len(t, found.Board.EmptyCells(), 16)
	assert.Equal(t, "dev-x", found.NextTurn)
	assert.Equal(t, game.NoResult, found.Winner)
	assert.Equal(t, models.MatchInProgress, found.Status)
	assert.Equal(t, map[string]game.PlayerMark{"dev-x": game.PlayerX, "dev-o": game.PlayerO}, found.Players())

	ttl, err := rdb.TTL(ctx, "match:m-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestMatchRepository_FindByID_NotFound(t *testing.T) {
	ctx, rdb := newRedis(t)
	_, err := NewMatchRepository(rdb, 0).FindByID(ctx, "missing")
	assert.ErrorIs(t, err, apperror.ErrMatchNotFound)
}

func TestMatchRepository_ApplyMove(t *testing.T) {
	ctx, rdb := newRedis(t)
	repo := NewMatchRepository(rdb, 0)
	_, err := repo.Create(ctx, "m-1", 3, "dev-x", "dev-o")
	require.NoError(t, err)

	// Rejections leave the match untouched.
	_, err = repo.ApplyMove(ctx, "m-1", "dev-o", 0, 0)
	assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
	_, err = repo.ApplyMove(ctx, "m-1", "stranger", 0, 0)
	assert.ErrorIs(t, err, apperror.ErrNotParticipant)
	_, err = repo.ApplyMove(ctx, "m-1", "dev-x", 3, 0)
	assert.ErrorIs(t, err, apperror.ErrInvalidMove)
	_, err = repo.ApplyMove(ctx, "missing", "dev-x", 0, 0)
	assert.ErrorIs(t, err, apperror.ErrMatchNotFound)

	moves := []struct {
		device   string
		row, col int
	}{
		{"dev-x", 0, 0},
		{"dev-o", 1, 0},
		{"dev-x", 0, 1},
		{"dev-o", 1, 1},
	}
	for _, mv := range moves {
		res, err := repo.ApplyMove(ctx, "m-1", mv.device, mv.row, mv.col)
		require.NoError(t, err)
		assert.False(t, res.Finished)
	}

	_, err = repo.ApplyMove(ctx, "m-1", "dev-o", 2, 2)
	assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
	_, err = repo.ApplyMove(ctx, "m-1", "dev-x", 1, 1)
	assert.ErrorIs(t, err, apperror.ErrInvalidMove)

	// X completes the top row.
	res, err := repo.ApplyMove(ctx, "m-1", "dev-x", 0, 2)
	require.NoError(t, err)
	assert.True(t, res.Finished)
	assert.Equal(t, game.GameResult(game.PlayerX), res.Match.Winner)
	assert.Empty(t, res.Match.NextTurn)

	_, err = repo.ApplyMove(ctx, "m-1", "dev-o", 2, 2)
	assert.ErrorIs(t, err, apperror.ErrMatchFinished)

	found, err := repo.FindByID(ctx, "m-1")
	require.NoError(t, err)
	assert.Equal(t, models.MatchFinished, found.Status)
	assert.Equal(t, game.PlayerX, found.Board.At(0, 2))
}

func TestMatchRepository_ApplyMove_ConcurrentMovesFinishOnce(t *testing.T) {
	ctx, rdb := newRedis(t)
	repo := NewMatchRepository(rdb, 0)
	_, err := repo.Create(ctx, "m-1", 3, "dev-x", "dev-o")
	require.NoError(t, err)

	for _, mv := range [][3]any{{"dev-x", 0, 0}, {"dev-o", 1, 0}, {"dev-x", 0, 1}, {"dev-o", 1, 1}} {
		_, err := repo.ApplyMove(ctx, "m-1", mv[0].(string), mv[1].(int), mv[2].(int))
		require.NoError(t, err)
	}

	// Several racing requests for the winning move: exactly one lands.
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		finished int
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := repo.ApplyMove(ctx, "m-1", "dev-x", 0, 2)
			if err == nil && res.Finished {
				mu.Lock()
				finished++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, finished)
}
