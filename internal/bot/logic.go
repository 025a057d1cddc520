package bot

import (
	"ctchen222/three-in-a-row/internal/game"
)

// RandomPolicy plays a uniformly random free cell.
type RandomPolicy struct {
	picker *picker
}

func (p *RandomPolicy) NextMove(board game.Board, _ game.PlayerMark) (row, col int, ok bool) {
	return p.picker.pick(board, board.EmptyCells())
}

// BlockingPolicy wins if it can, blocks if it must, otherwise moves randomly.
type BlockingPolicy struct {
	picker *picker
}

func (p *BlockingPolicy) NextMove(board game.Board, mark game.PlayerMark) (row, col int, ok bool) {
	if row, col, found := findWinningMove(board, mark); found {
		return row, col, true
	}
	if row, col, found := findWinningMove(board, mark.Opponent()); found {
		return row, col, true
	}
	return p.picker.pick(board, board.EmptyCells())
}

// StrategicPolicy extends BlockingPolicy with a preference for the center,
// then the corners, before falling back to any free cell.
type StrategicPolicy struct {
	picker *picker
}

func (p *StrategicPolicy) NextMove(board game.Board, mark game.PlayerMark) (row, col int, ok bool) {
	// 1. Win
	if row, col, found := findWinningMove(board, mark); found {
		return row, col, true
	}

	// 2. Block
	if row, col, found := findWinningMove(board, mark.Opponent()); found {
		return row, col, true
	}

	n := board.Size()

	// 3. Center, only defined for odd sizes
	if n%2 == 1 {
		mid := n / 2
		if board.At(mid, mid) == game.None {
			return mid, mid, true
		}
	}

	// 4. Corners
	var corners []int
	for _, rc := range [][2]int{{0, 0}, {0, n - 1}, {n - 1, 0}, {n - 1, n - 1}} {
		if board.At(rc[0], rc[1]) == game.None {
			corners = append(corners, board.Index(rc[0], rc[1]))
		}
	}
	if len(corners) > 0 {
		return p.picker.pick(board, corners)
	}

	// 5. Anything left
	return p.picker.pick(board, board.EmptyCells())
}

// findWinningMove looks for a line where mark holds every cell but one and
// the remaining cell is free.
func findWinningMove(board game.Board, mark game.PlayerMark) (row, col int, found bool) {
	if !mark.IsPlayer() {
		return -1, -1, false
	}
	cells := board.Cells()
	for _, line := range game.Lines(board.Size()) {
		free := -1
		owned := 0
		for _, idx := range line {
			switch cells[idx] {
			case mark:
				owned++
			case game.None:
				if free == -1 {
					free = idx
				} else {
					free = -2
				}
			}
		}
		if owned == len(line)-1 && free >= 0 {
			row, col = board.Coords(free)
			return row, col, true
		}
	}
	return -1, -1, false
}
