package domain

import "strconv"

// Move addresses one cell, 0-indexed.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewMove(row, col int) Move {
	return Move{Row: row, Col: col}
}

func (m Move) InBounds() bool {
	return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size
}

// Notation renders the move as column letter plus 1-indexed row, e.g. H8.
func (m Move) Notation() string {
	if !m.InBounds() {
		return "?"
	}
	return string(Columns[m.Col]) + strconv.Itoa(m.Row+1)
}
