package repository

import (
	"context"
	"ctchen222/three-in-a-row/internal/api/apperror"
	"ctchen222/three-in-a-row/internal/api/models"
	"ctchen222/three-in-a-row/internal/game"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=match_repository.go -destination=mocks/mock_match_repository.go -package=mocks

var tracer = otel.Tracer("repository")

// Fields of the match:<id> hash.
const (
	fieldSize     = "size"
	fieldBoard    = "board"
	fieldPlayerX  = "player_x"
	fieldPlayerO  = "player_o"
	fieldNextTurn = "next_turn"
	fieldWinner   = "winner"
	fieldStatus   = "status"
)

// maxTxRetries bounds optimistic transaction retries under contention.
const maxTxRetries = 10

// MoveResult is the state after an accepted move. Finished is true only for
// the move that ended the match.
type MoveResult struct {
	Match    *models.Match
	Finished bool
}

// MatchRepository defines the interface for match state operations.
type MatchRepository interface {
	Create(ctx context.Context, id string, size int, playerXID, playerOID string) (*models.Match, error)
	FindByID(ctx context.Context, id string) (*models.Match, error)
	// ApplyMove validates and applies deviceID's move atomically.
	ApplyMove(ctx context.Context, id, deviceID string, row, col int) (*MoveResult, error)
}

type redisMatchRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewMatchRepository creates a new Redis-based MatchRepository. Match keys
// expire ttl after their last write; zero keeps them forever.
func NewMatchRepository(rdb *redis.Client, ttl time.Duration) MatchRepository {
	return &redisMatchRepository{rdb: rdb, ttl: ttl}
}

func matchKey(id string) string {
	return fmt.Sprintf("match:%s", id)
}

// Create stores a new match with an empty board. X moves first.
func (r *redisMatchRepository) Create(ctx context.Context, id string, size int, playerXID, playerOID string) (*models.Match, error) {
	ctx, span := tracer.Start(ctx, "MatchRepository.Create")
	defer span.End()
	span.SetAttributes(attribute.String("match.id", id), attribute.Int("board.size", size))

	board, err := game.NewBoard(size)
	if err != nil {
		return nil, err
	}
	m := &models.Match{
		ID:       id,
		Board:    board,
		PlayerX:  playerXID,
		PlayerO:  playerOID,
		NextTurn: playerXID,
		Winner:   game.NoResult,
		Status:   models.MatchInProgress,
	}

	boardJSON, err := json.Marshal(board.Cells())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal initial board: %w", err)
	}

	key := matchKey(id)
	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, key,
		fieldSize, size,
		fieldBoard, boardJSON,
		fieldPlayerX, playerXID,
		fieldPlayerO, playerOID,
		fieldNextTurn, playerXID,
		fieldWinner, "",
		fieldStatus, models.MatchInProgress,
	)
	r.expire(ctx, pipe, key)
	if _, err := pipe.Exec(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		return nil, fmt.Errorf("failed to create match in redis: %w", err)
	}
	return m, nil
}

// FindByID retrieves the current match state from Redis.
func (r *redisMatchRepository) FindByID(ctx context.Context, id string) (*models.Match, error) {
	ctx, span := tracer.Start(ctx, "MatchRepository.FindByID")
	defer span.End()
	span.SetAttributes(attribute.String("match.id", id))

	data, err := r.rdb.HGetAll(ctx, matchKey(id)).Result()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get match state from redis: %w", err)
	}
	m, err := decodeMatch(id, data)
	if err != nil && !errors.Is(err, apperror.ErrMatchNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "corrupt match")
	}
	return m, err
}

// ApplyMove runs inside a WATCH transaction so concurrent moves on the same
// match are serialized.
func (r *redisMatchRepository) ApplyMove(ctx context.Context, id, deviceID string, row, col int) (*MoveResult, error) {
	ctx, span := tracer.Start(ctx, "MatchRepository.ApplyMove")
	defer span.End()
	span.SetAttributes(
		attribute.String("match.id", id),
		attribute.String("device.id", deviceID),
		attribute.Int("move.row", row),
		attribute.Int("move.col", col),
	)

	key := matchKey(id)
	var result *MoveResult

	txf := func(tx *redis.Tx) error {
		data, err := tx.HGetAll(ctx, key).Result()
		if err != nil {
			return err
		}
		m, err := decodeMatch(id, data)
		if err != nil {
			return err
		}

		if m.Status == models.MatchFinished || m.Winner.IsFinal() {
			return apperror.ErrMatchFinished
		}
		mark := m.MarkOf(deviceID)
		if mark == game.None {
			return apperror.ErrNotParticipant
		}
		if m.NextTurn != deviceID {
			return apperror.ErrNotYourTurn
		}
		next, err := m.Board.Place(row, col, mark)
		if err != nil {
			return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
		}

		m.Board = next
		m.Winner = game.CheckWinner(next)
		if m.Winner.IsFinal() {
			m.Status = models.MatchFinished
			m.NextTurn = ""
		} else {
			m.NextTurn = m.DeviceOf(mark.Opponent())
		}

		boardJSON, err := json.Marshal(next.Cells())
		if err != nil {
			return fmt.Errorf("failed to marshal updated board: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key,
				fieldBoard, boardJSON,
				fieldNextTurn, m.NextTurn,
				fieldWinner, string(m.Winner),
				fieldStatus, m.Status,
			)
			r.expire(ctx, pipe, key)
			return nil
		})
		if err != nil {
			return err
		}
		result = &MoveResult{Match: m, Finished: m.Status == models.MatchFinished}
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.rdb.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "move rejected")
			return nil, err
		}
		return result, nil
	}
	span.SetStatus(codes.Error, "too much contention")
	return nil, fmt.Errorf("failed to apply move to match %s: %w", id, redis.TxFailedErr)
}

func (r *redisMatchRepository) expire(ctx context.Context, pipe redis.Pipeliner, key string) {
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
}

func decodeMatch(id string, data map[string]string) (*models.Match, error) {
	if len(data) == 0 {
		return nil, apperror.ErrMatchNotFound
	}

	size, err := strconv.Atoi(data[fieldSize])
	if err != nil {
		return nil, fmt.Errorf("failed to parse size of match %s: %w", id, err)
	}
	var cells []game.PlayerMark
	if err := json.Unmarshal([]byte(data[fieldBoard]), &cells); err != nil {
		return nil, fmt.Errorf("failed to unmarshal board of match %s: %w", id, err)
	}
	board, err := game.BoardFromCells(size, cells)
	if err != nil {
		return nil, fmt.Errorf("failed to load board of match %s: %w", id, err)
	}
	winner, err := game.ParseResult(data[fieldWinner])
	if err != nil {
		return nil, fmt.Errorf("failed to load winner of match %s: %w", id, err)
	}

	return &models.Match{
		ID:       id,
		Board:    board,
		PlayerX:  data[fieldPlayerX],
		PlayerO:  data[fieldPlayerO],
		NextTurn: data[fieldNextTurn],
		Winner:   winner,
		Status:   data[fieldStatus],
	}, nil
}
