package match

import (
	"context"
	"ctchen222/three-in-a-row/internal/game"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// MatchState is the authoritative state of a remote match.
type MatchState struct {
	MatchID string
	Board   game.Board
	// Turn is the participant id expected to move next.
	Turn    string
	Winner  game.GameResult
	Players map[string]game.PlayerMark
}

// JoinResult is the answer to a join request: either a match or a queue slot.
type JoinResult struct {
	Queued bool
	State  MatchState
}

// WaitingStatus reports whether a queued participant has been paired.
type WaitingStatus struct {
	Matched bool
	MatchID string
	Players map[string]game.PlayerMark
}

// Service is the remote match service. Implementations classify rejected
// moves as ErrNotYourTurn or ErrIllegalMove, unknown ids as ErrNotFound,
// unexpected payloads as ErrMalformed, and everything else as ErrTransient.
type Service interface {
	Register(ctx context.Context) (string, error)
	Stats(ctx context.Context, participantID string) (Tally, error)
	Join(ctx context.Context, participantID string, size int) (JoinResult, error)
	WaitingStatus(ctx context.Context, participantID string) (WaitingStatus, error)
	Match(ctx context.Context, matchID string) (MatchState, error)
	Move(ctx context.Context, matchID, participantID string, row, col int) (MatchState, error)
}
