package service

import (
	"context"
	"ctchen222/three-in-a-row/internal/api/apperror"
	"ctchen222/three-in-a-row/internal/api/models"
	apirepository "ctchen222/three-in-a-row/internal/api/repository"
	"ctchen222/three-in-a-row/internal/events"
	"ctchen222/three-in-a-row/internal/game"
	"ctchen222/three-in-a-row/internal/repository"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=match_service.go -destination=mocks/mock_match_service.go -package=mocks

// DefaultQueueTimeout is how long a queued device may go without polling
// before it is no longer offered as an opponent.
const DefaultQueueTimeout = 10 * time.Second

// JoinResult is either a freshly created match or a queue slot.
type JoinResult struct {
	Queued bool
	Match  *models.Match
}

// WaitingStatus tells a queued device whether it has been paired.
type WaitingStatus struct {
	Status  string
	MatchID string
	Players map[string]game.PlayerMark
}

// MatchService defines the interface for matchmaking and match play.
type MatchService interface {
	Join(ctx context.Context, deviceID string, size int) (*JoinResult, error)
	WaitingStatus(ctx context.Context, deviceID string) (*WaitingStatus, error)
	Get(ctx context.Context, matchID string) (*models.Match, error)
	Move(ctx context.Context, matchID, deviceID string, row, col int) (*models.Match, error)
}

type matchService struct {
	deviceRepo      apirepository.DeviceRepository
	matchRepo       repository.MatchRepository
	matchmakingRepo repository.MatchmakingRepository
	stateRepo       repository.DeviceStateRepository
	publisher       events.Publisher
	queueTimeout    time.Duration
	metrics         *matchMetrics
	newID           func() string
	now             func() time.Time
}

// NewMatchService creates a new MatchService.
func NewMatchService(
	deviceRepo apirepository.DeviceRepository,
	matchRepo repository.MatchRepository,
	matchmakingRepo repository.MatchmakingRepository,
	stateRepo repository.DeviceStateRepository,
	publisher events.Publisher,
	queueTimeout time.Duration,
) (MatchService, error) {
	metrics, err := newMatchMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to create match metrics: %w", err)
	}
	if publisher == nil {
		publisher = events.Discard
	}
	if queueTimeout <= 0 {
		queueTimeout = DefaultQueueTimeout
	}
	return &matchService{
		deviceRepo:      deviceRepo,
		matchRepo:       matchRepo,
		matchmakingRepo: matchmakingRepo,
		stateRepo:       stateRepo,
		publisher:       publisher,
		queueTimeout:    queueTimeout,
		metrics:         metrics,
		newID:           uuid.NewString,
		now:             time.Now,
	}, nil
}

// Join pairs the device with the longest-waiting device of the same board
// size, or queues it. The device that waited gets X and moves first.
func (s *matchService) Join(ctx context.Context, deviceID string, size int) (*JoinResult, error) {
	ctx, span := tracer.Start(ctx, "MatchService.Join", trace.WithAttributes(
		attribute.String("device.id", deviceID),
		attribute.Int("board.size", size),
	))
	defer span.End()

	if !game.ValidSize(size) {
		return nil, fmt.Errorf("%w: %d", game.ErrInvalidSize, size)
	}
	if _, err := s.deviceRepo.FindByID(ctx, deviceID); err != nil {
		return nil, err
	}

	// Leave any queue of another size first.
	if state, err := s.stateRepo.Find(ctx, deviceID); err == nil && state.Status == models.DeviceWaiting && state.Size != size {
		if err := s.matchmakingRepo.RemoveFromQueue(ctx, deviceID, state.Size); err != nil {
			slog.WarnContext(ctx, "Failed to leave previous queue", "device.id", deviceID, "board.size", state.Size, "error", err)
		}
	}

	// The waiting record must exist before the device becomes visible in the
	// queue, or a fast opponent's pairing could be overwritten.
	if err := s.stateRepo.SetWaiting(ctx, deviceID, size); err != nil {
		span.RecordError(err)
		return nil, err
	}
	// Pair removes the entry it returns, so skipping an abandoned one shrinks
	// the queue and the loop ends.
	var opponentID string
	for {
		var err error
		opponentID, err = s.matchmakingRepo.Pair(ctx, deviceID, size)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "pairing failed")
			return nil, err
		}
		if opponentID == "" {
			slog.InfoContext(ctx, "Device queued", "device.id", deviceID, "board.size", size)
			return &JoinResult{Queued: true}, nil
		}

		waiting, err := s.stillWaiting(ctx, opponentID, size)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		if waiting {
			break
		}
		slog.InfoContext(ctx, "Skipped abandoned queue entry", "device.id", deviceID, "opponent.id", opponentID, "board.size", size)
	}

	m, err := s.matchRepo.Create(ctx, s.newID(), size, opponentID, deviceID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "match creation failed")
		return nil, err
	}
	for _, id := range []string{opponentID, deviceID} {
		if err := s.stateRepo.UpdateForMatch(ctx, id, m.ID); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	s.metrics.created.Add(ctx, 1, metric.WithAttributes(attribute.Int("board.size", size)))
	slog.InfoContext(ctx, "Match created", "match.id", m.ID, "player.x", opponentID, "player.o", deviceID, "board.size", size)
	s.publish(ctx, events.MatchCreated, events.MatchCreatedPayload{
		MatchID: m.ID,
		Size:    size,
		PlayerX: opponentID,
		PlayerO: deviceID,
	})
	return &JoinResult{Match: m}, nil
}

// WaitingStatus reports whether deviceID has been paired since it queued.
func (s *matchService) WaitingStatus(ctx context.Context, deviceID string) (*WaitingStatus, error) {
	ctx, span := tracer.Start(ctx, "MatchService.WaitingStatus")
	defer span.End()

	state, err := s.stateRepo.Find(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if state.Status != models.DeviceMatched {
		if err := s.stateRepo.Touch(ctx, deviceID); err != nil {
			slog.WarnContext(ctx, "Failed to record waiting poll", "device.id", deviceID, "error", err)
		}
		return &WaitingStatus{Status: models.DeviceWaiting}, nil
	}

	m, err := s.matchRepo.FindByID(ctx, state.MatchID)
	if err != nil {
		return nil, err
	}
	return &WaitingStatus{Status: models.DeviceMatched, MatchID: m.ID, Players: m.Players()}, nil
}

func (s *matchService) Get(ctx context.Context, matchID string) (*models.Match, error) {
	ctx, span := tracer.Start(ctx, "MatchService.Get")
	defer span.End()

	return s.matchRepo.FindByID(ctx, matchID)
}

// Move applies a move and, on the move that ends the match, records the
// result for both devices.
func (s *matchService) Move(ctx context.Context, matchID, deviceID string, row, col int) (*models.Match, error) {
	ctx, span := tracer.Start(ctx, "MatchService.Move", trace.WithAttributes(
		attribute.String("match.id", matchID),
		attribute.String("device.id", deviceID),
	))
	defer span.End()

	res, err := s.matchRepo.ApplyMove(ctx, matchID, deviceID, row, col)
	if err != nil {
		if !isRejection(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "move failed")
		}
		return nil, err
	}
	s.metrics.moves.Add(ctx, 1)

	if !res.Finished {
		return res.Match, nil
	}

	m := res.Match
	s.metrics.finished.Add(ctx, 1, metric.WithAttributes(attribute.String("match.winner", string(m.Winner))))
	slog.InfoContext(ctx, "Match finished", "match.id", m.ID, "match.winner", string(m.Winner))

	finished := events.MatchFinishedPayload{MatchID: m.ID, Winner: string(m.Winner)}
	if winner := m.Winner.Mark(); winner != game.None {
		finished.WinnerID, finished.LoserID = m.DeviceOf(winner), m.DeviceOf(winner.Opponent())
		if err := s.deviceRepo.RecordResult(ctx, finished.WinnerID, finished.LoserID); err != nil {
			// The move itself stands; only the tally is lost.
			span.RecordError(err)
			slog.ErrorContext(ctx, "Failed to record match result", "match.id", m.ID, "error", err)
		}
	}
	s.publish(ctx, events.MatchFinished, finished)
	return m, nil
}

// publish is best effort: a lost event never fails the request.
func (s *matchService) publish(ctx context.Context, eventType string, payload any) {
	if err := s.publisher.Publish(ctx, eventType, payload); err != nil {
		slog.WarnContext(ctx, "Failed to publish event", "event.type", eventType, "error", err)
	}
}

// stillWaiting reports whether a device taken from the queue for size is
// still waiting there and has polled within the queue timeout. A device that
// went quiet loses its waiting state, so its next poll learns it left the
// queue.
func (s *matchService) stillWaiting(ctx context.Context, id string, size int) (bool, error) {
	state, err := s.stateRepo.Find(ctx, id)
	if errors.Is(err, apperror.ErrNotWaiting) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if state.Status != models.DeviceWaiting || state.Size != size {
		return false, nil
	}
	if s.now().Sub(state.SeenAt) > s.queueTimeout {
		if err := s.stateRepo.Clear(ctx, id); err != nil {
			slog.WarnContext(ctx, "Failed to clear abandoned device", "device.id", id, "error", err)
		}
		return false, nil
	}
	return true, nil
}

func isRejection(err error) bool {
	return errors.Is(err, apperror.ErrNotYourTurn) ||
		errors.Is(err, apperror.ErrInvalidMove) ||
		errors.Is(err, apperror.ErrNotParticipant) ||
		errors.Is(err, apperror.ErrMatchFinished) ||
		errors.Is(err, apperror.ErrMatchNotFound)
}
