package match

import (
	"context"
	"ctchen222/three-in-a-row/internal/bot"
	"ctchen222/three-in-a-row/internal/game"
	"log/slog"
	"sync"
	"time"
)

// scheduleFunc runs f once after d and returns a function that cancels it.
type scheduleFunc func(d time.Duration, f func()) (cancel func() bool)

func afterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// LocalController runs an offline match: the user plays X and an automated
// opponent answers as O after a short think time.
type LocalController struct {
	mu sync.Mutex

	logger    *slog.Logger
	policy    bot.Policy
	thinkTime time.Duration
	schedule  scheduleFunc
	human     game.PlayerMark
	opponent  game.PlayerMark

	phase  Phase
	size   int
	board  game.Board
	turn   game.PlayerMark
	winner game.GameResult
	line   []int
	tally  Tally

	// generation changes whenever the current match is abandoned, so a
	// scheduled opponent move from an older match never lands.
	generation    uint64
	cancelPending func() bool
}

// NewLocalController returns an idle controller. Call Start to begin a match.
func NewLocalController(opts Options) *LocalController {
	c := &LocalController{
		logger:    loggerOrDefault(opts.Logger).With("match.mode", string(ModeOffline)),
		policy:    opts.Policy,
		thinkTime: opts.ThinkTime,
		schedule:  afterFunc,
		human:     game.PlayerX,
		opponent:  game.PlayerO,
		phase:     PhaseIdle,
	}
	if c.policy == nil {
		c.policy = bot.NewPolicy(bot.Easy, nil)
	}
	if c.thinkTime <= 0 {
		c.thinkTime = DefaultThinkTime
	}
	return c
}

// Start begins a new match on an empty size x size board with the user to
// move. Tallies are kept.
func (c *LocalController) Start(size int) error {
	board, err := game.NewBoard(size)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked(board)
	c.logger.Info("Local match started", "board.size", size)
	return nil
}

// Restart abandons the current match and starts a fresh one of the same size.
func (c *LocalController) Restart(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	size := c.size
	if size == 0 {
		size = game.MinSize
	}
	board, err := game.NewBoard(size)
	if err != nil {
		return err
	}
	c.resetLocked(board)
	c.logger.InfoContext(ctx, "Local match restarted", "board.size", size)
	return nil
}

func (c *LocalController) resetLocked(board game.Board) {
	c.cancelPendingLocked()
	c.generation++
	c.phase = PhaseInProgress
	c.size = board.Size()
	c.board = board
	c.turn = c.human
	c.winner = game.NoResult
	c.line = nil
}

// ResetStats zeroes the win/loss tally.
func (c *LocalController) ResetStats() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tally = Tally{}
}

// PlayMove places the user's mark. It does nothing when the match is over,
// when it is the opponent's turn, or when the cell is taken or off the board.
func (c *LocalController) PlayMove(ctx context.Context, row, col int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseInProgress || c.turn != c.human {
		return nil
	}
	next, err := c.board.Place(row, col, c.human)
	if err != nil {
		c.logger.DebugContext(ctx, "Ignoring move", "move.row", row, "move.col", col, "error", err)
		return nil
	}
	c.applyLocked(next, c.human)
	return nil
}

func (c *LocalController) opponentMove(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation || c.phase != PhaseInProgress || c.turn != c.opponent {
		return
	}
	c.cancelPending = nil

	row, col, ok := c.policy.NextMove(c.board, c.opponent)
	if !ok {
		return
	}
	next, err := c.board.Place(row, col, c.opponent)
	if err != nil {
		c.logger.Error("Opponent policy chose an unplayable cell", "move.row", row, "move.col", col, "error", err)
		return
	}
	c.applyLocked(next, c.opponent)
}

// applyLocked adopts a board on which mark has just moved and settles the
// match or hands the turn over.
func (c *LocalController) applyLocked(next game.Board, mark game.PlayerMark) {
	c.board = next

	if out := game.Evaluate(next); out.Winner != game.None {
		c.winner = game.GameResult(out.Winner)
		c.line = out.Line
		c.phase = PhaseTerminal
		if out.Winner == c.human {
			c.tally.Wins++
		} else {
			c.tally.Losses++
		}
		c.logger.Info("Local match won", "match.winner", string(out.Winner))
		return
	}
	if next.IsFull() {
		c.winner = game.Draw
		c.phase = PhaseTerminal
		c.logger.Info("Local match drawn")
		return
	}

	c.turn = mark.Opponent()
	if c.turn == c.opponent {
		generation := c.generation
		c.cancelPending = c.schedule(c.thinkTime, func() { c.opponentMove(generation) })
	}
}

func (c *LocalController) cancelPendingLocked() {
	if c.cancelPending != nil {
		c.cancelPending()
		c.cancelPending = nil
	}
}

// Close cancels a pending opponent move. The controller can still be
// restarted afterwards.
func (c *LocalController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelPendingLocked()
	c.generation++
}

// View returns a snapshot of the match.
func (c *LocalController) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	var line []int
	if c.line != nil {
		line = append([]int(nil), c.line...)
	}
	return View{
		Phase:       c.phase,
		Board:       c.board,
		Turn:        string(c.turn),
		Winner:      c.winner,
		WinningLine: line,
		Tally:       c.tally,
	}
}
