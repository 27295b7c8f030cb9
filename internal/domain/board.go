package domain

import "strings"

// Board is the fixed 15x15 grid, row-major.
type Board [Size][Size]Cell

// ParseBoard validates a caller supplied grid.
func ParseBoard(rows [][]int) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, ErrInvalidBoard
	}
	for r, row := range rows {
		if len(row) != Size {
			return b, ErrInvalidBoard
		}
		for c, v := range row {
			cell := Cell(v)
			if cell != Empty && cell != Black && cell != White {
				return b, ErrInvalidBoard
			}
			b[r][c] = cell
		}
	}
	return b, nil
}

// ParseSide accepts "black"/"white" or "1"/"2".
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "1", "b":
		return SideBlack, nil
	case "white", "2", "w":
		return SideWhite, nil
	}
	return 0, ErrInvalidSide
}

func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// At returns the cell, treating off-board coordinates as not addressable.
func (b *Board) At(row, col int) (Cell, bool) {
	if !InBounds(row, col) {
		return Empty, false
	}
	return b[row][col], true
}

func (b *Board) IsEmpty(row, col int) bool {
	cell, ok := b.At(row, col)
	return ok && cell == Empty
}

// WithStone places side's stone at (row, col) while fn runs and restores the
// previous cell afterwards, including when fn panics.
func (b *Board) WithStone(row, col int, side Side, fn func()) {
	prev := b[row][col]
	b[row][col] = side.Cell()
	defer func() { b[row][col] = prev }()
	fn()
}

func (b *Board) StoneCount() int {
	count := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != Empty {
				count++
			}
		}
	}
	return count
}

func (b *Board) IsFull() bool {
	return b.StoneCount() == Size*Size
}

// Rows converts the board back to the wire representation.
func (b *Board) Rows() [][]int {
	rows := make([][]int, Size)
	for r := range rows {
		rows[r] = make([]int, Size)
		for c := 0; c < Size; c++ {
			rows[r][c] = int(b[r][c])
		}
	}
	return rows
}

// Key is a compact, stable encoding used for cache keys.
func (b *Board) Key() string {
	var sb strings.Builder
	sb.Grow(Size * Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sb.WriteByte(byte('0' + b[r][c]))
		}
	}
	return sb.String()
}
