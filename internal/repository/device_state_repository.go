package repository

import (
	"context"
	"ctchen222/three-in-a-row/internal/api/apperror"
	"ctchen222/three-in-a-row/internal/api/models"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

//go:generate mockgen -source=device_state_repository.go -destination=mocks/mock_device_state_repository.go -package=mocks

// DeviceStateRepository keeps the matchmaking state a device polls while it
// waits for an opponent.
type DeviceStateRepository interface {
	SetWaiting(ctx context.Context, id string, size int) error
	// Touch records that a waiting device is still polling.
	Touch(ctx context.Context, id string) error
	UpdateForMatch(ctx context.Context, id, matchID string) error
	// Find returns apperror.ErrNotWaiting when the device has no state.
	Find(ctx context.Context, id string) (*models.DeviceState, error)
	Clear(ctx context.Context, id string) error
}

type redisDeviceStateRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewDeviceStateRepository creates a new Redis-based DeviceStateRepository.
func NewDeviceStateRepository(rdb *redis.Client, ttl time.Duration) DeviceStateRepository {
	return &redisDeviceStateRepository{rdb: rdb, ttl: ttl}
}

func deviceKey(id string) string {
	return fmt.Sprintf("device:%s", id)
}

// SetWaiting records that a device joined the queue for size.
func (r *redisDeviceStateRepository) SetWaiting(ctx context.Context, id string, size int) error {
	ctx, span := tracer.Start(ctx, "DeviceStateRepository.SetWaiting")
	defer span.End()

	key := deviceKey(id)
	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, "status", models.DeviceWaiting, "size", size, "seen_at", time.Now().UnixMilli())
	r.expire(ctx, pipe, key)
	if _, err := pipe.Exec(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to mark device %s as waiting: %w", id, err)
	}
	return nil
}

func (r *redisDeviceStateRepository) Touch(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "DeviceStateRepository.Touch")
	defer span.End()

	key := deviceKey(id)
	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, key, "seen_at", time.Now().UnixMilli())
	r.expire(ctx, pipe, key)
	if _, err := pipe.Exec(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to touch device %s: %w", id, err)
	}
	return nil
}

// UpdateForMatch updates a device's state when it is put into a match.
func (r *redisDeviceStateRepository) UpdateForMatch(ctx context.Context, id, matchID string) error {
	ctx, span := tracer.Start(ctx, "DeviceStateRepository.UpdateForMatch")
	defer span.End()

	key := deviceKey(id)
	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, key, "status", models.DeviceMatched, "match_id", matchID)
	r.expire(ctx, pipe, key)
	if _, err := pipe.Exec(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to attach device %s to match: %w", id, err)
	}
	return nil
}

func (r *redisDeviceStateRepository) Find(ctx context.Context, id string) (*models.DeviceState, error) {
	ctx, span := tracer.Start(ctx, "DeviceStateRepository.Find")
	defer span.End()

	data, err := r.rdb.HGetAll(ctx, deviceKey(id)).Result()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get device state: %w", err)
	}
	// A Touch racing a Clear can leave a hash without a status.
	if data["status"] == "" {
		return nil, apperror.ErrNotWaiting
	}

	state := &models.DeviceState{
		Status:  data["status"],
		MatchID: data["match_id"],
	}
	if raw, ok := data["size"]; ok {
		if state.Size, err = strconv.Atoi(raw); err != nil {
			return nil, fmt.Errorf("failed to parse queued size of device %s: %w", id, err)
		}
	}
	if raw, ok := data["seen_at"]; ok {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse last poll of device %s: %w", id, err)
		}
		state.SeenAt = time.UnixMilli(ms)
	}
	return state, nil
}

// Clear forgets a device's matchmaking state.
func (r *redisDeviceStateRepository) Clear(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "DeviceStateRepository.Clear")
	defer span.End()

	return r.rdb.Del(ctx, deviceKey(id)).Err()
}

func (r *redisDeviceStateRepository) expire(ctx context.Context, pipe redis.Pipeliner, key string) {
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
}
