package bot

import (
	"ctchen222/three-in-a-row/internal/game"
	"math/rand/v2"
)

// Difficulty levels understood by NewPolicy.
const (
	Easy   = "easy"
	Medium = "medium"
	Hard   = "hard"
)

// Policy chooses the next cell for an automated player.
type Policy interface {
	// NextMove returns the cell to play, or ok == false when the board has no
	// free cell.
	NextMove(board game.Board, mark game.PlayerMark) (row, col int, ok bool)
}

// PolicyFunc adapts a plain function to Policy.
type PolicyFunc func(board game.Board, mark game.PlayerMark) (row, col int, ok bool)

func (f PolicyFunc) NextMove(board game.Board, mark game.PlayerMark) (int, int, bool) {
	return f(board, mark)
}

// NewPolicy returns the policy for a difficulty. Unknown values fall back to
// Easy, which is the uniform random reference opponent. A nil rng uses the
// global source.
func NewPolicy(difficulty string, rng *rand.Rand) Policy {
	picker := &picker{rng: rng}
	switch difficulty {
	case Medium:
		return &BlockingPolicy{picker: picker}
	case Hard:
		return &StrategicPolicy{picker: picker}
	default:
		return &RandomPolicy{picker: picker}
	}
}

// picker draws uniformly from a list of cells.
type picker struct {
	rng *rand.Rand
}

func (p *picker) intN(n int) int {
	if p == nil || p.rng == nil {
		return rand.IntN(n)
	}
	return p.rng.IntN(n)
}

func (p *picker) pick(board game.Board, cells []int) (row, col int, ok bool) {
	if len(cells) == 0 {
		return -1, -1, false
	}
	row, col = board.Coords(cells[p.intN(len(cells))])
	return row, col, true
}
