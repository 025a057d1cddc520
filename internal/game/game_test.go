package game

import (
	"errors"
	"reflect"
	"testing"
)

const (
	x = PlayerX
	o = PlayerO
	e = None
)

func mustBoard(t *testing.T, size int, cells ...PlayerMark) Board {
	t.Helper()
	b, err := BoardFromCells(size, cells)
	if err != nil {
		t.Fatalf("BoardFromCells() error = %v", err)
	}
	return b
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		board    Board
		want     PlayerMark
		wantLine []int
	}{
		{
			name:  "No winner - empty board",
			board: mustBoard(t, 3, e, e, e, e, e, e, e, e, e),
			want:  None,
		},
		{
			name:     "X wins - first row",
			board:    mustBoard(t, 3, x, x, x, e, o, e, e, e, o),
			want:     PlayerX,
			wantLine: []int{0, 1, 2},
		},
		{
			name:     "O wins - second column",
			board:    mustBoard(t, 3, x, o, e, x, o, e, e, o, e),
			want:     PlayerO,
			wantLine: []int{1, 4, 7},
		},
		{
			name:     "X wins - main diagonal",
			board:    mustBoard(t, 3, x, e, e, e, x, e, e, e, x),
			want:     PlayerX,
			wantLine: []int{0, 4, 8},
		},
		{
			name:     "O wins - anti-diagonal",
			board:    mustBoard(t, 3, e, e, o, e, o, e, o, e, e),
			want:     PlayerO,
			wantLine: []int{2, 4, 6},
		},
		{
			name:  "No winner - full board",
			board: mustBoard(t, 3, x, o, x, x, o, o, o, x, x),
			want:  None,
		},
		{
			name: "O wins - last row of 4x4",
			board: mustBoard(t, 4,
				x, x, x, e,
				e, e, e, e,
				x, e, e, e,
				o, o, o, o),
			want:     PlayerO,
			wantLine: []int{12, 13, 14, 15},
		},
		{
			name: "No winner - three of four in a row",
			board: mustBoard(t, 4,
				x, x, x, e,
				o, o, o, e,
				e, e, e, e,
				e, e, e, e),
			want: None,
		},
		{
			name: "Row is reported before column",
			board: mustBoard(t, 3,
				x, x, x,
				x, o, o,
				x, o, o),
			want:     PlayerX,
			wantLine: []int{0, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.board)
			if got.Winner != tt.want {
				t.Errorf("Evaluate() winner = %q, want %q", got.Winner, tt.want)
			}
			if !reflect.DeepEqual(got.Line, tt.wantLine) {
				t.Errorf("Evaluate() line = %v, want %v", got.Line, tt.wantLine)
			}
		})
	}
}

func TestEvaluate_EveryLineForEverySize(t *testing.T) {
	for size := MinSize; size <= MaxSize; size++ {
		for i, line := range Lines(size) {
			for _, mark := range []PlayerMark{PlayerX, PlayerO} {
				cells := make([]PlayerMark, size*size)
				for _, idx := range line {
					cells[idx] = mark
				}
				b := mustBoard(t, size, cells...)

				got := Evaluate(b)
				if got.Winner != mark || !reflect.DeepEqual(got.Line, line) {
					t.Errorf("size %d line %d mark %s: got %+v, want winner %s line %v", size, i, mark, got, mark, line)
				}
				if again := Evaluate(b); !reflect.DeepEqual(again, got) {
					t.Errorf("size %d line %d: second evaluation %+v differs from %+v", size, i, again, got)
				}
			}
		}
	}
}

func TestLines(t *testing.T) {
	for size := MinSize; size <= MaxSize; size++ {
		lines := Lines(size)
		if len(lines) != 2*size+2 {
			t.Fatalf("Lines(%d) returned %d lines, want %d", size, len(lines), 2*size+2)
		}
		for _, line := range lines {
			if len(line) != size {
				t.Errorf("Lines(%d) has a line of length %d", size, len(line))
			}
		}
	}

	want := [][]int{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
		{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
		{0, 4, 8}, {2, 4, 6},
	}
	if got := Lines(3); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines(3) = %v, want %v", got, want)
	}
}

func TestCheckWinner(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  GameResult
	}{
		{"Open board", mustBoard(t, 3, x, e, e, e, o, e, e, e, e), NoResult},
		{"X wins", mustBoard(t, 3, x, x, x, e, o, e, e, e, o), GameResult(PlayerX)},
		{"Full board is a draw", mustBoard(t, 3, x, o, x, x, o, o, o, x, x), Draw},
		{"Win on the last cell is not a draw", mustBoard(t, 3, x, o, x, o, x, o, o, x, x), GameResult(PlayerX)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckWinner(tt.board); got != tt.want {
				t.Errorf("CheckWinner() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBoard_Place(t *testing.T) {
	b, err := NewBoard(3)
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}

	next, err := b.Place(1, 2, PlayerX)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if next.At(1, 2) != PlayerX {
		t.Errorf("At(1, 2) = %q, want X", next.At(1, 2))
	}
	if b.At(1, 2) != None {
		t.Errorf("original board was modified: At(1, 2) = %q", b.At(1, 2))
	}

	if _, err := next.Place(1, 2, PlayerO); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("Place() on occupied cell error = %v, want ErrCellOccupied", err)
	}
	if _, err := next.Place(3, 0, PlayerO); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Place() out of range error = %v, want ErrOutOfRange", err)
	}
	if _, err := next.Place(-1, 0, PlayerO); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Place() negative index error = %v, want ErrOutOfRange", err)
	}
	if _, err := next.Place(0, 0, None); !errors.Is(err, ErrInvalidMark) {
		t.Errorf("Place() with empty mark error = %v, want ErrInvalidMark", err)
	}
}

func TestNewBoard_InvalidSize(t *testing.T) {
	for _, size := range []int{-1, 0, 2, 8} {
		if _, err := NewBoard(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewBoard(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestBoardFromRows(t *testing.T) {
	rows := [][]PlayerMark{{x, e, e}, {e, o, e}, {e, e, x}}
	b, err := BoardFromRows(rows)
	if err != nil {
		t.Fatalf("BoardFromRows() error = %v", err)
	}
	if !reflect.DeepEqual(b.Rows(), rows) {
		t.Errorf("Rows() = %v, want %v", b.Rows(), rows)
	}

	if _, err := BoardFromRows([][]PlayerMark{{x, e, e}, {e, o}, {e, e, x}}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("ragged rows error = %v, want ErrInvalidSize", err)
	}
	if _, err := BoardFromRows([][]PlayerMark{{"Z", e, e}, {e, o, e}, {e, e, x}}); !errors.Is(err, ErrInvalidMark) {
		t.Errorf("unknown mark error = %v, want ErrInvalidMark", err)
	}
}

func TestBoard_IsFull(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{"Sizeless board is not full", Board{}, false},
		{"Empty board is not full", mustBoard(t, 3, e, e, e, e, e, e, e, e, e), false},
		{"Partial board is not full", mustBoard(t, 3, x, e, e, e, o, e, e, e, e), false},
		{"Full board is full", mustBoard(t, 3, x, o, x, x, o, o, o, x, x), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.IsFull(); got != tt.want {
				t.Errorf("IsFull() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlayerMark_Opponent(t *testing.T) {
	if PlayerX.Opponent() != PlayerO || PlayerO.Opponent() != PlayerX || None.Opponent() != None {
		t.Error("Opponent() does not swap X and O")
	}
}
