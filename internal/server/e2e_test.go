package server_test

import (
	"context"
	"ctchen222/three-in-a-row/internal/api/controller"
	apirepository "ctchen222/three-in-a-row/internal/api/repository"
	"ctchen222/three-in-a-row/internal/api/service"
	"ctchen222/three-in-a-row/internal/client"
	"ctchen222/three-in-a-row/internal/db"
	"ctchen222/three-in-a-row/internal/events"
	"ctchen222/three-in-a-row/internal/game"
	"ctchen222/three-in-a-row/internal/match"
	"ctchen222/three-in-a-row/internal/repository"
	"ctchen222/three-in-a-row/internal/server"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// startStack runs the whole service against a Redis container and an
// in-memory SQLite database and returns its base URL.
func startStack(t *testing.T) string {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)
	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	rdb, err := db.NewRedisClient(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })

	pool, err := db.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	deviceRepo := apirepository.NewDeviceRepository(pool)
	matchService, err := service.NewMatchService(
		deviceRepo,
		repository.NewMatchRepository(rdb, time.Hour),
		repository.NewMatchmakingRepository(rdb),
		repository.NewDeviceStateRepository(rdb, time.Hour),
		events.NewRedisPublisher(rdb),
		time.Minute,
	)
	require.NoError(t, err)

	srv := server.NewServer(
		controller.NewDeviceController(service.NewDeviceService(deviceRepo)),
		controller.NewMatchController(matchService),
	)
	httpSrv := httptest.NewServer(srv.Handler())
	t.Cleanup(httpSrv.Close)
	return httpSrv.URL
}

func TestOnlineMatchEndToEnd(t *testing.T) {
	baseURL := startStack(t)
	ctx := context.Background()

	newPlayer := func() *match.RemoteController {
		c := match.NewRemoteController(client.New(baseURL, time.Second), match.Options{
			PollInterval: 20 * time.Millisecond,
		})
		t.Cleanup(c.Close)
		require.NoError(t, c.Register(ctx))
		return c
	}
	first, second := newPlayer(), newPlayer()

	// Given the first player is queued
	require.NoError(t, first.RequestMatch(ctx, 3))
	assert.Equal(t, match.PhaseWaiting, first.View().Phase)

	// When the second player asks for the same size
	require.NoError(t, second.RequestMatch(ctx, 3))

	// Then both end up in the same match and the first player moves first
	require.Equal(t, match.PhaseInProgress, second.View().Phase)
	require.Eventually(t, func() bool {
		return first.View().Phase == match.PhaseInProgress && first.View().Board.Size() == 3
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, second.View().MatchID, first.View().MatchID)
	assert.Equal(t, game.PlayerX, first.View().Players[first.View().ParticipantID])

	moveWhenTurn := func(c *match.RemoteController, row, col int) {
		t.Helper()
		require.Eventually(t, func() bool {
			v := c.View()
			return v.Turn == v.ParticipantID
		}, 5*time.Second, 10*time.Millisecond)
		require.NoError(t, c.PlayMove(ctx, row, col))
	}

	// X takes the top row while O plays the middle row.
	moveWhenTurn(first, 0, 0)
	moveWhenTurn(second, 1, 0)
	moveWhenTurn(first, 0, 1)
	moveWhenTurn(second, 1, 1)
	moveWhenTurn(first, 0, 2)

	view := first.View()
	assert.Equal(t, match.PhaseTerminal, view.Phase)
	assert.Equal(t, game.GameResult(game.PlayerX), view.Winner)
	assert.Equal(t, match.Tally{Wins: 1}, view.Tally)

	require.Eventually(t, func() bool {
		v := second.View()
		return v.Phase == match.PhaseTerminal && v.Tally == match.Tally{Losses: 1}
	}, 5*time.Second, 10*time.Millisecond)
	assert.True(t, first.View().Board.Equal(second.View().Board))
}
