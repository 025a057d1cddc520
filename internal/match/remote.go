package match

import (
	"context"
	"ctchen222/three-in-a-row/internal/game"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"
)

// RemoteController mirrors an online match held by a Service. The service is
// the only authority on board, turn and winner: the controller adopts what it
// is told and never settles a match itself.
type RemoteController struct {
	// opMu serializes user operations; mu guards the fields below and is
	// shared with the poll loop.
	opMu sync.Mutex
	mu   sync.Mutex

	svc             Service
	logger          *slog.Logger
	pollInterval    time.Duration
	maxPollFailures int

	phase         Phase
	participantID string
	matchID       string
	size          int
	board         game.Board
	turn          string
	winner        game.GameResult
	players       map[string]game.PlayerMark
	tally         Tally
	waiting       bool
	message       string

	generation uint64
	// stateSeq counts adopted move results so a poll fetched before a move
	// cannot roll the board back.
	stateSeq uint64
	stopPoll context.CancelFunc
	polls    sync.WaitGroup
}

// NewRemoteController returns an unregistered controller backed by svc.
func NewRemoteController(svc Service, opts Options) *RemoteController {
	c := &RemoteController{
		svc:             svc,
		logger:          loggerOrDefault(opts.Logger).With("match.mode", string(ModeOnline)),
		pollInterval:    opts.PollInterval,
		maxPollFailures: opts.MaxPollFailures,
		phase:           PhaseUnregistered,
		size:            opts.Size,
	}
	if c.pollInterval <= 0 {
		c.pollInterval = DefaultPollInterval
	}
	if c.maxPollFailures <= 0 {
		c.maxPollFailures = DefaultMaxPollFailures
	}
	return c
}

// Register obtains a participant id and its tallies. It is a no-op once the
// controller holds an id. Failures are not retried.
func (c *RemoteController) Register(ctx context.Context) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()
	return c.register(ctx, MsgConnect)
}

func (c *RemoteController) register(ctx context.Context, failure string) error {
	c.mu.Lock()
	if c.participantID != "" {
		c.mu.Unlock()
		return nil
	}
	generation := c.generation
	c.mu.Unlock()

	id, err := c.svc.Register(ctx)
	if err != nil {
		c.setMessage(generation, failure)
		c.logger.ErrorContext(ctx, "Failed to register participant", "error", err)
		return fmt.Errorf("failed to register participant: %w", err)
	}
	tally, statsErr := c.svc.Stats(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return nil
	}
	c.participantID = id
	c.phase = PhaseIdle
	c.message = ""
	c.logger.InfoContext(ctx, "Participant registered", "participant.id", id)
	if statsErr != nil {
		c.message = failure
		c.logger.ErrorContext(ctx, "Failed to fetch participant stats", "participant.id", id, "error", statsErr)
		return fmt.Errorf("failed to fetch stats for %s: %w", id, statsErr)
	}
	c.tally = tally
	return nil
}

// RequestMatch asks the service for a match of the given size. The
// controller either enters the returned match or waits in the queue; in both
// cases it starts polling the service.
func (c *RemoteController) RequestMatch(ctx context.Context, size int) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if !game.ValidSize(size) {
		return fmt.Errorf("%w: %d", game.ErrInvalidSize, size)
	}

	c.mu.Lock()
	switch c.phase {
	case PhaseUnregistered:
		c.mu.Unlock()
		return ErrNotRegistered
	case PhaseWaiting, PhaseInProgress:
		c.mu.Unlock()
		return ErrMatchActive
	}
	c.stopPollingLocked()
	c.generation++
	generation := c.generation
	id := c.participantID
	c.clearMatchLocked()
	c.size = size
	c.phase = PhaseWaiting
	c.waiting = true
	c.mu.Unlock()

	res, err := c.svc.Join(ctx, id, size)

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return nil
	}
	if err == nil && !res.Queued {
		err = c.checkStateLocked(res.State)
	}
	if err != nil {
		c.waiting = false
		c.phase = PhaseIdle
		c.message = MsgCreateMatch
		c.logger.ErrorContext(ctx, "Failed to join match", "participant.id", id, "error", err)
		return fmt.Errorf("failed to join match: %w", err)
	}

	if res.Queued {
		c.logger.InfoContext(ctx, "Waiting for an opponent", "participant.id", id, "board.size", size)
	} else {
		c.waiting = false
		c.adoptLocked(res.State)
		c.logger.InfoContext(ctx, "Match joined", "participant.id", id, "match.id", c.matchID)
	}
	if c.phase != PhaseTerminal {
		c.startPollingLocked(generation)
	}
	return nil
}

// PlayMove submits the participant's move. It does nothing unless a match is
// in progress, no winner is known and the participant holds the turn.
// Rejections leave the state untouched and are reported through the returned
// error and View.Error.
func (c *RemoteController) PlayMove(ctx context.Context, row, col int) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.Lock()
	if c.phase != PhaseInProgress || c.winner.IsFinal() || c.participantID == "" || c.turn != c.participantID {
		c.mu.Unlock()
		return nil
	}
	generation := c.generation
	matchID, id := c.matchID, c.participantID
	c.mu.Unlock()

	st, err := c.svc.Move(ctx, matchID, id, row, col)

	c.mu.Lock()
	if generation != c.generation {
		c.mu.Unlock()
		return nil
	}
	if err == nil {
		err = c.checkStateLocked(st)
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrNotYourTurn):
			c.message = MsgNotYourTurn
		case errors.Is(err, ErrIllegalMove):
			c.message = MsgIllegalMove
		default:
			c.message = MsgMove
			if !errors.Is(err, ErrTransient) {
				err = fmt.Errorf("%w: %w", ErrTransient, err)
			}
		}
		c.mu.Unlock()
		c.logger.WarnContext(ctx, "Move rejected", "match.id", matchID, "move.row", row, "move.col", col, "error", err)
		return fmt.Errorf("failed to submit move: %w", err)
	}

	c.stateSeq++
	c.message = ""
	finished := c.adoptLocked(st)
	if finished {
		c.stopPollingLocked()
	} else if c.stopPoll == nil {
		// Polling gave up earlier; an accepted move shows the service is back.
		c.startPollingLocked(generation)
		c.logger.InfoContext(ctx, "Resumed polling", "match.id", matchID)
	}
	c.mu.Unlock()

	if finished {
		c.refreshTally(ctx, generation)
	}
	return nil
}

// Restart leaves the current match or queue locally. The service cleans up
// abandoned matches on its own.
func (c *RemoteController) Restart(ctx context.Context) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopPollingLocked()
	c.generation++
	c.clearMatchLocked()
	if c.participantID == "" {
		c.phase = PhaseUnregistered
	} else {
		c.phase = PhaseIdle
	}
	c.logger.InfoContext(ctx, "Left remote match", "participant.id", c.participantID)
	return nil
}

// ResetParticipant discards the participant id, its tallies and any match,
// then registers a new participant.
func (c *RemoteController) ResetParticipant(ctx context.Context) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.Lock()
	c.stopPollingLocked()
	c.generation++
	c.clearMatchLocked()
	c.participantID = ""
	c.tally = Tally{}
	c.phase = PhaseUnregistered
	c.mu.Unlock()

	return c.register(ctx, MsgResetDevice)
}

// Close waits for an in-flight operation, stops polling and waits for every
// poll loop to exit.
func (c *RemoteController) Close() {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.Lock()
	c.generation++
	c.stopPollingLocked()
	c.mu.Unlock()

	c.polls.Wait()
}

// View returns a snapshot of the match.
func (c *RemoteController) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	return View{
		Phase:         c.phase,
		Board:         c.board,
		Turn:          c.turn,
		Winner:        c.winner,
		Players:       maps.Clone(c.players),
		ParticipantID: c.participantID,
		MatchID:       c.matchID,
		Tally:         c.tally,
		Waiting:       c.waiting,
		Error:         c.message,
	}
}

func (c *RemoteController) clearMatchLocked() {
	c.matchID = ""
	c.board = game.Board{}
	c.turn = ""
	c.winner = game.NoResult
	c.players = nil
	c.waiting = false
	c.message = ""
}

// checkStateLocked rejects a state whose board does not fit the current
// match.
func (c *RemoteController) checkStateLocked(st MatchState) error {
	if n := st.Board.Size(); n > 0 && c.size > 0 && n != c.size {
		return fmt.Errorf("%w: %dx%d board in a size %d match", ErrMalformed, n, n, c.size)
	}
	return nil
}

// adoptLocked overwrites the local copy with the service's state and reports
// whether the match is over.
func (c *RemoteController) adoptLocked(st MatchState) bool {
	if st.MatchID != "" {
		c.matchID = st.MatchID
	}
	if st.Board.Size() > 0 {
		c.board = st.Board
		c.size = st.Board.Size()
	}
	if st.Players != nil {
		c.players = maps.Clone(st.Players)
	}
	c.turn = st.Turn
	c.winner = st.Winner

	if c.winner.IsFinal() {
		c.phase = PhaseTerminal
		c.waiting = false
		return true
	}
	c.phase = PhaseInProgress
	return false
}

func (c *RemoteController) setMessage(generation uint64, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation == c.generation {
		c.message = msg
	}
}

func (c *RemoteController) refreshTally(ctx context.Context, generation uint64) {
	c.mu.Lock()
	id := c.participantID
	c.mu.Unlock()

	tally, err := c.svc.Stats(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return
	}
	if err != nil {
		c.message = MsgSync
		c.logger.ErrorContext(ctx, "Failed to refresh stats", "participant.id", id, "error", err)
		return
	}
	c.tally = tally
}
