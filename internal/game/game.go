package game

import (
	"errors"
	"fmt"
	"strings"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

// GameResult is the settled outcome of a match: a winning mark or Draw.
type GameResult string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Game results
	NoResult GameResult = ""
	Draw     GameResult = "Draw"

	// Supported board sizes
	MinSize = 3
	MaxSize = 7
)

var (
	ErrInvalidSize  = errors.New("invalid board size")
	ErrInvalidMark  = errors.New("invalid mark")
	ErrOutOfRange   = errors.New("cell out of range")
	ErrCellOccupied = errors.New("cell already occupied")
)

// Opponent returns the other player's mark, or None for an empty mark.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return None
	}
}

// IsPlayer reports whether m is X or O.
func (m PlayerMark) IsPlayer() bool {
	return m == PlayerX || m == PlayerO
}

// ParseMark accepts "", "X" and "O". Anything else is rejected.
func ParseMark(s string) (PlayerMark, error) {
	switch m := PlayerMark(s); m {
	case None, PlayerX, PlayerO:
		return m, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrInvalidMark, s)
	}
}

// ParseResult accepts "", "X", "O" and "Draw".
func ParseResult(s string) (GameResult, error) {
	switch r := GameResult(s); r {
	case NoResult, Draw, GameResult(PlayerX), GameResult(PlayerO):
		return r, nil
	default:
		return NoResult, fmt.Errorf("%w: result %q", ErrInvalidMark, s)
	}
}

// IsFinal reports whether r settles the match.
func (r GameResult) IsFinal() bool {
	return r != NoResult
}

// Mark returns the winning mark, or None for a draw or an open match.
func (r GameResult) Mark() PlayerMark {
	if m := PlayerMark(r); m.IsPlayer() {
		return m
	}
	return None
}

// ValidSize reports whether size is a supported board dimension.
func ValidSize(size int) bool {
	return size >= MinSize && size <= MaxSize
}

// Board is a size x size grid stored row-major. A Board is never modified in
// place: Place returns a new Board. The zero value is an empty, sizeless board.
type Board struct {
	size  int
	cells []PlayerMark
}

// NewBoard returns an empty board of the given size.
func NewBoard(size int) (Board, error) {
	if !ValidSize(size) {
		return Board{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return Board{size: size, cells: make([]PlayerMark, size*size)}, nil
}

// BoardFromCells builds a board from a flat row-major slice.
func BoardFromCells(size int, cells []PlayerMark) (Board, error) {
	if !ValidSize(size) {
		return Board{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if len(cells) != size*size {
		return Board{}, fmt.Errorf("%w: %d cells for size %d", ErrInvalidSize, len(cells), size)
	}
	copied := make([]PlayerMark, len(cells))
	for i, c := range cells {
		if _, err := ParseMark(string(c)); err != nil {
			return Board{}, err
		}
		copied[i] = c
	}
	return Board{size: size, cells: copied}, nil
}

// BoardFromRows builds a board from a square slice of rows.
func BoardFromRows(rows [][]PlayerMark) (Board, error) {
	size := len(rows)
	cells := make([]PlayerMark, 0, size*size)
	for i, row := range rows {
		if len(row) != size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, i, len(row), size)
		}
		cells = append(cells, row...)
	}
	return BoardFromCells(size, cells)
}

func (b Board) Size() int { return b.size }

// Cells returns a copy of the flat row-major cells.
func (b Board) Cells() []PlayerMark {
	out := make([]PlayerMark, len(b.cells))
	copy(out, b.cells)
	return out
}

// Rows converts the board to a slice of rows, the shape used on the wire.
func (b Board) Rows() [][]PlayerMark {
	rows := make([][]PlayerMark, b.size)
	for r := range rows {
		rows[r] = make([]PlayerMark, b.size)
		copy(rows[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return rows
}

// InRange reports whether (row, col) addresses a cell of the board.
func (b Board) InRange(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// Index converts (row, col) to a flat index. The caller checks InRange.
func (b Board) Index(row, col int) int {
	return row*b.size + col
}

// Coords converts a flat index back to (row, col).
func (b Board) Coords(index int) (row, col int) {
	return index / b.size, index % b.size
}

// At returns the mark at (row, col), or None when out of range.
func (b Board) At(row, col int) PlayerMark {
	if !b.InRange(row, col) {
		return None
	}
	return b.cells[b.Index(row, col)]
}

// Place returns a copy of the board with mark written at (row, col).
func (b Board) Place(row, col int, mark PlayerMark) (Board, error) {
	if !mark.IsPlayer() {
		return b, fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}
	if !b.InRange(row, col) {
		return b, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	idx := b.Index(row, col)
	if b.cells[idx] != None {
		return b, fmt.Errorf("%w: (%d, %d)", ErrCellOccupied, row, col)
	}
	next := b.Cells()
	next[idx] = mark
	return Board{size: b.size, cells: next}, nil
}

// IsFull reports whether every cell holds a mark. A sizeless board is not full.
func (b Board) IsFull() bool {
	if b.size == 0 {
		return false
	}
	for _, c := range b.cells {
		if c == None {
			return false
		}
	}
	return true
}

// EmptyCells returns the flat indices of the free cells in ascending order.
func (b Board) EmptyCells() []int {
	var free []int
	for i, c := range b.cells {
		if c == None {
			free = append(free, i)
		}
	}
	return free
}

// Equal reports whether both boards have the same size and contents.
func (b Board) Equal(other Board) bool {
	if b.size != other.size || len(b.cells) != len(other.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board one row per line, with '.' for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			m := b.cells[b.Index(r, c)]
			if m == None {
				sb.WriteByte('.')
			} else {
				sb.WriteString(string(m))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
