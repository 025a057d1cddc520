package game

// Outcome is the result of evaluating a board for a completed line.
type Outcome struct {
	Winner PlayerMark
	Line   []int
}

// Lines enumerates every candidate line of a size x size board as flat
// indices: the rows, then the columns, then the main and anti diagonals.
func Lines(size int) [][]int {
	if size <= 0 {
		return nil
	}
	lines := make([][]int, 0, 2*size+2)

	// Rows
	for r := 0; r < size; r++ {
		row := make([]int, size)
		for c := range row {
			row[c] = r*size + c
		}
		lines = append(lines, row)
	}

	// Columns
	for c := 0; c < size; c++ {
		col := make([]int, size)
		for r := range col {
			col[r] = r*size + c
		}
		lines = append(lines, col)
	}

	// Diagonals
	diag := make([]int, size)
	anti := make([]int, size)
	for i := 0; i < size; i++ {
		diag[i] = i*size + i
		anti[i] = i*size + (size - 1 - i)
	}
	return append(lines, diag, anti)
}

// Evaluate returns the first line, in Lines order, whose cells all hold the
// same non-empty mark. A board without such a line yields a zero Outcome;
// telling a draw apart is left to the caller.
func Evaluate(b Board) Outcome {
	for _, line := range Lines(b.size) {
		first := b.cells[line[0]]
		if first == None {
			continue
		}
		won := true
		for _, idx := range line[1:] {
			if b.cells[idx] != first {
				won = false
				break
			}
		}
		if won {
			winning := make([]int, len(line))
			copy(winning, line)
			return Outcome{Winner: first, Line: winning}
		}
	}
	return Outcome{Winner: None}
}

// CheckWinner folds Evaluate and IsFull into a GameResult.
func CheckWinner(b Board) GameResult {
	if out := Evaluate(b); out.Winner != None {
		return GameResult(out.Winner)
	}
	if b.IsFull() {
		return Draw
	}
	return NoResult
}
