package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=matchmaking_repository.go -destination=mocks/mock_matchmaking_repository.go -package=mocks

// MatchmakingRepository defines the interface for matchmaking queue operations.
// There is one queue per board size.
type MatchmakingRepository interface {
	// Pair takes the longest-waiting other device out of the queue for size.
	// When nobody else is waiting, deviceID is queued and opponentID is empty.
	Pair(ctx context.Context, deviceID string, size int) (opponentID string, err error)
	RemoveFromQueue(ctx context.Context, deviceID string, size int) error
}

type redisMatchmakingRepository struct {
	rdb *redis.Client
}

// NewMatchmakingRepository creates a new Redis-based MatchmakingRepository.
func NewMatchmakingRepository(rdb *redis.Client) MatchmakingRepository {
	return &redisMatchmakingRepository{rdb: rdb}
}

func queueKey(size int) string {
	return fmt.Sprintf("queue:matchmaking:%d", size)
}

// Pair inspects and updates the queue in one WATCH transaction, so two
// devices joining at once can never take the same opponent.
func (r *redisMatchmakingRepository) Pair(ctx context.Context, deviceID string, size int) (string, error) {
	ctx, span := tracer.Start(ctx, "MatchmakingRepository.Pair")
	defer span.End()
	span.SetAttributes(attribute.String("device.id", deviceID), attribute.Int("board.size", size))

	key := queueKey(size)
	var opponentID string

	txf := func(tx *redis.Tx) error {
		queued, err := tx.LRange(ctx, key, 0, -1).Result()
		if err != nil {
			return err
		}

		opponentID = ""
		for _, id := range queued {
			if id != deviceID {
				opponentID = id
				break
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			switch {
			case opponentID != "":
				pipe.LRem(ctx, key, 1, opponentID)
				pipe.LRem(ctx, key, 0, deviceID)
			case !slices.Contains(queued, deviceID):
				pipe.RPush(ctx, key, deviceID)
			}
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.rdb.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			slog.DebugContext(ctx, "Matchmaking queue changed, retrying", "device.id", deviceID, "board.size", size)
			continue
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "pairing failed")
			return "", fmt.Errorf("failed to pair device %s: %w", deviceID, err)
		}
		if opponentID != "" {
			slog.InfoContext(ctx, "Matcher paired devices", "device.id", deviceID, "opponent.id", opponentID, "board.size", size)
		}
		return opponentID, nil
	}
	span.SetStatus(codes.Error, "too much contention")
	return "", fmt.Errorf("failed to pair device %s: %w", deviceID, redis.TxFailedErr)
}

// RemoveFromQueue removes a specific device from the queue for size.
func (r *redisMatchmakingRepository) RemoveFromQueue(ctx context.Context, deviceID string, size int) error {
	ctx, span := tracer.Start(ctx, "MatchmakingRepository.RemoveFromQueue")
	defer span.End()

	// LRem removes count occurrences of value from the list.
	// If count is 0, all occurrences are removed.
	if err := r.rdb.LRem(ctx, queueKey(size), 0, deviceID).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to remove device %s from queue: %w", deviceID, err)
	}
	return nil
}
