// Package match holds the two match controllers a front end drives: a local
// controller playing against an automated opponent, and a remote controller
// that mirrors a server-authoritative online match.
package match

import (
	"context"
	"ctchen222/three-in-a-row/internal/bot"
	"ctchen222/three-in-a-row/internal/game"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Mode selects which controller New builds.
type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Phase is the lifecycle state of a controller.
type Phase string

const (
	PhaseUnregistered Phase = "unregistered"
	PhaseIdle         Phase = "idle"
	PhaseWaiting      Phase = "waiting"
	PhaseInProgress   Phase = "in_progress"
	PhaseTerminal     Phase = "terminal"
)

// User-facing messages reported through View.Error.
const (
	MsgConnect       = "Error connecting to server."
	MsgSync          = "Error syncing match."
	MsgCreateMatch   = "Error creating match."
	MsgWaitStatus    = "Error checking waiting status."
	MsgNotYourTurn   = "Not your turn."
	MsgIllegalMove   = "Invalid move."
	MsgMove          = "Error making move."
	MsgResetDevice   = "Error resetting device."
	MsgPollingHalted = "Lost connection to the match."
)

var (
	ErrNotYourTurn   = errors.New("not your turn")
	ErrIllegalMove   = errors.New("illegal move")
	ErrTransient     = errors.New("match service unavailable")
	ErrMalformed     = errors.New("malformed response from match service")
	ErrNotFound      = errors.New("not found on match service")
	ErrNotRegistered = errors.New("participant is not registered")
	ErrMatchActive   = errors.New("a match is already active")
	ErrUnknownMode   = errors.New("unknown controller mode")
)

// Tally is a cumulative win/loss counter.
type Tally struct {
	Wins   int
	Losses int
}

// View is a snapshot of everything a front end renders.
type View struct {
	Phase Phase
	Board game.Board
	// Turn is a mark for local matches and a participant id for remote ones.
	Turn        string
	Winner      game.GameResult
	WinningLine []int
	Players     map[string]game.PlayerMark

	ParticipantID string
	MatchID       string
	Tally         Tally
	Waiting       bool
	Error         string
}

// Controller is the capability set shared by local and remote matches.
type Controller interface {
	View() View
	// PlayMove plays for the local user. Moves that are not allowed right now
	// are ignored and return nil.
	PlayMove(ctx context.Context, row, col int) error
	Restart(ctx context.Context) error
	// Close cancels any scheduled work owned by the controller.
	Close()
}

// Matchmaker is implemented by controllers that pair with remote opponents.
type Matchmaker interface {
	RequestMatch(ctx context.Context, size int) error
	ResetParticipant(ctx context.Context) error
}

// Options configures New. Zero values fall back to defaults.
type Options struct {
	Size int

	// Offline
	ThinkTime time.Duration
	Policy    bot.Policy

	// Online
	Service         Service
	PollInterval    time.Duration
	MaxPollFailures int

	Logger *slog.Logger
}

const (
	DefaultThinkTime       = time.Second
	DefaultPollInterval    = 2 * time.Second
	DefaultMaxPollFailures = 3
)

// New builds the controller for mode. An offline controller starts a match of
// opts.Size right away; an online controller registers a participant first
// and returns the registration error, if any.
func New(ctx context.Context, mode Mode, opts Options) (Controller, error) {
	switch mode {
	case ModeOffline:
		c := NewLocalController(opts)
		if err := c.Start(opts.Size); err != nil {
			return nil, err
		}
		return c, nil
	case ModeOnline:
		if opts.Service == nil {
			return nil, fmt.Errorf("%w: online mode needs a match service", ErrUnknownMode)
		}
		c := NewRemoteController(opts.Service, opts)
		if err := c.Register(ctx); err != nil {
			c.Close()
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
