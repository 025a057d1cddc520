package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_InMemory(t *testing.T) {
	ctx := context.Background()
	pool, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	_, err = pool.ExecContext(ctx, `INSERT INTO devices (id) VALUES (?)`, "dev-1")
	require.NoError(t, err)

	var wins, losses int
	require.NoError(t, pool.QueryRowxContext(ctx, `SELECT wins, losses FROM devices WHERE id = ?`, "dev-1").Scan(&wins, &losses))
	assert.Zero(t, wins)
	assert.Zero(t, losses)

	// Migrating twice is harmless.
	assert.NoError(t, Migrate(ctx, pool))
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not a url")
	assert.Error(t, err)
}
