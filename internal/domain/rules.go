package domain

// Directions are the four axis vectors; each is scanned both ways.
var Directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// CountInDirection counts contiguous cells of the given value starting one
// step away from (row, col).
func CountInDirection(b *Board, row, col, dRow, dCol int, cell Cell) int {
	count := 0
	r, c := row+dRow, col+dCol
	for InBounds(r, c) && b[r][c] == cell {
		count++
		r += dRow
		c += dCol
	}
	return count
}

// WinningLine returns the cells of the first line of five or more found,
// scanning row-major and then by direction. Only line starts are reported so
// each line is returned whole.
func WinningLine(b Board) ([]Move, bool) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			cell := b[row][col]
			if cell == Empty {
				continue
			}
			for _, dir := range Directions {
				dRow, dCol := dir[0], dir[1]
				// skip unless this is the first stone of the run
				if InBounds(row-dRow, col-dCol) && b[row-dRow][col-dCol] == cell {
					continue
				}
				length := 1 + CountInDirection(&b, row, col, dRow, dCol, cell)
				if length < ToWin {
					continue
				}
				line := make([]Move, 0, length)
				for i := 0; i < length; i++ {
					line = append(line, NewMove(row+i*dRow, col+i*dCol))
				}
				return line, true
			}
		}
	}
	return nil, false
}
