package domain

// Board holds the grid state. Row 0 is the top row and row Rows-1 is the
// bottom, so gravity pulls dropped pieces toward higher row indices.
type Board struct {
	Rows  int
	Cols  int
	Cells [][]PlayerID
}

func NewBoard(rows, cols int) *Board {
	cells := make([][]PlayerID, rows)
	for i := range cells {
		cells[i] = make([]PlayerID, cols)
	}
	return &Board{
		Rows:  rows,
		Cols:  cols,
		Cells: cells,
	}
}

func (b *Board) IsValidMove(column int) bool {
	if column < 0 || column >= b.Cols {
		return false
	}

	// here Cells[0] represents the top row
	return b.Cells[0][column] == Empty
}

// Drop places a piece at the lowest empty row of the column and returns
// the row it landed on.
func (b *Board) Drop(column int, player PlayerID) (int, error) {
	if column < 0 || column >= b.Cols {
		return -1, ErrInvalidMove
	}

	// shifting the disk from top to bottom till it
	// reaches the end or another disk
	for row := b.Rows - 1; row >= 0; row-- {
		if b.Cells[row][column] == Empty {
			b.Cells[row][column] = player
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

func (b *Board) IsFull() bool {
	for c := 0; c < b.Cols; c++ {
		if b.Cells[0][c] == Empty {
			return false
		}
	}

	return true
}

// ValidMoves lists the playable columns in ascending order
func (b *Board) ValidMoves() []int {
	validMoves := []int{}
	for col := 0; col < b.Cols; col++ {
		if b.IsValidMove(col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// Clone creates a deep copy of the board, the copy shares no cell
// storage with the original
func (b *Board) Clone() *Board {
	cells := make([][]PlayerID, len(b.Cells))
	for i := range b.Cells {
		cells[i] = make([]PlayerID, len(b.Cells[i]))
		copy(cells[i], b.Cells[i])
	}
	return &Board{
		Rows:  b.Rows,
		Cols:  b.Cols,
		Cells: cells,
	}
}

// Simulate drops a piece on a copy of the board and gives the result
// to the caller, the receiver is left untouched
func (b *Board) Simulate(column int, player PlayerID) (*Board, int, error) {
	newBoard := b.Clone()
	row, err := newBoard.Drop(column, player)
	if err != nil {
		return nil, -1, err
	}
	return newBoard, row, nil
}
