package domain

// HasFour scans every horizontal, vertical and diagonal 4-window on the
// board and reports whether the player fully occupies one of them.
func HasFour(b *Board, player PlayerID) bool {
	// horizontal
	for r := 0; r < b.Rows; r++ {
		for c := 0; c+ToWin <= b.Cols; c++ {
			if b.Cells[r][c] == player && b.Cells[r][c+1] == player && b.Cells[r][c+2] == player && b.Cells[r][c+3] == player {
				return true
			}
		}
	}

	// vertical
	for c := 0; c < b.Cols; c++ {
		for r := 0; r+ToWin <= b.Rows; r++ {
			if b.Cells[r][c] == player && b.Cells[r+1][c] == player && b.Cells[r+2][c] == player && b.Cells[r+3][c] == player {
				return true
			}
		}
	}

	// diagonal going down-right (like this "\")
	for r := 0; r+ToWin <= b.Rows; r++ {
		for c := 0; c+ToWin <= b.Cols; c++ {
			if b.Cells[r][c] == player && b.Cells[r+1][c+1] == player && b.Cells[r+2][c+2] == player && b.Cells[r+3][c+3] == player {
				return true
			}
		}
	}

	// diagonal going up-right (like this "/")
	for r := ToWin - 1; r < b.Rows; r++ {
		for c := 0; c+ToWin <= b.Cols; c++ {
			if b.Cells[r][c] == player && b.Cells[r-1][c+1] == player && b.Cells[r-2][c+2] == player && b.Cells[r-3][c+3] == player {
				return true
			}
		}
	}

	return false
}

// CheckWinAt only checks the lines passing through the specific position
// (row, column). This is more efficient than scanning the entire board
// and is used after every real move.
func CheckWinAt(b *Board, row, column int, player PlayerID) bool {
	// Check horizontal (through this row)
	count := 0
	for c := 0; c < b.Cols; c++ {
		if b.Cells[row][c] == player {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
	}

	// Check vertical (through this column)
	count = 0
	for r := 0; r < b.Rows; r++ {
		if b.Cells[r][column] == player {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
	}

	// Check diagonal \ (through this position)
	count = 0
	// Find starting position of this diagonal
	startRow, startCol := row, column
	for startRow > 0 && startCol > 0 {
		startRow--
		startCol--
	}
	// Scan the diagonal
	for startRow < b.Rows && startCol < b.Cols {
		if b.Cells[startRow][startCol] == player {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
		startRow++
		startCol++
	}

	// Check diagonal / (through this position)
	count = 0
	// Find starting position of this diagonal
	startRow, startCol = row, column
	for startRow < b.Rows-1 && startCol > 0 {
		startRow++
		startCol--
	}
	// Scan the diagonal
	for startRow >= 0 && startCol < b.Cols {
		if b.Cells[startRow][startCol] == player {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
		startRow--
		startCol++
	}

	return false
}
