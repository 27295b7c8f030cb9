package suggest

import (
	"fmt"
	"strings"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

const systemPrompt = "You are a strong Gomoku (five in a row) player on a 15x15 board. " +
	"Reply with exactly one empty intersection in the form H8 (column letter A-O, row number 1-15)."

// BuildPrompt renders the position as a labelled grid: X black, O white,
// . empty.
func BuildPrompt(b domain.Board, mover domain.Side) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < domain.Size; c++ {
		sb.WriteByte(' ')
		sb.WriteByte(domain.Columns[c])
	}
	sb.WriteByte('\n')

	for r := 0; r < domain.Size; r++ {
		fmt.Fprintf(&sb, "%3d", r+1)
		for c := 0; c < domain.Size; c++ {
			sb.WriteByte(' ')
			sb.WriteByte(cellSymbol(b[r][c]))
		}
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "\nYou play %s (%c). Which intersection do you choose?", mover, cellSymbol(mover.Cell()))
	return sb.String()
}

func cellSymbol(c domain.Cell) byte {
	switch c {
	case domain.Black:
		return 'X'
	case domain.White:
		return 'O'
	default:
		return '.'
	}
}
