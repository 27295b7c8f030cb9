package bot

import "github.com/iamasit07/5-in-a-row/backend/internal/domain"

// threatCheck is one priority tier of the critical-move scan.
type threatCheck struct {
	reason     domain.CriticalReason
	asOpponent bool
	test       func(b *domain.Board, row, col int, side domain.Side) bool
}

// criticalTiers are evaluated in order; each tier scans every empty cell
// before the next one is tried.
var criticalTiers = []threatCheck{
	{reason: domain.ReasonWin, asOpponent: false, test: MakesFive},
	{reason: domain.ReasonBlockWin, asOpponent: true, test: MakesFive},
	{reason: domain.ReasonCreateOpenFour, asOpponent: false, test: IsOpenFour},
	{reason: domain.ReasonBlockOpenFour, asOpponent: true, test: IsOpenFour},
}

// FindCriticalMove returns the first forced move in tier order, scanning
// cells row-major within each tier.
func FindCriticalMove(b *domain.Board, mover domain.Side) (domain.Move, domain.CriticalReason, bool) {
	for _, tier := range criticalTiers {
		side := mover
		if tier.asOpponent {
			side = mover.Opponent()
		}
		if move, ok := scanTier(b, side, tier.test); ok {
			return move, tier.reason, true
		}
	}
	return domain.Move{}, domain.ReasonNone, false
}

func scanTier(b *domain.Board, side domain.Side, test func(*domain.Board, int, int, domain.Side) bool) (domain.Move, bool) {
	for row := 0; row < domain.Size; row++ {
		for col := 0; col < domain.Size; col++ {
			if b[row][col] != domain.Empty {
				continue
			}
			if test(b, row, col, side) {
				return domain.NewMove(row, col), true
			}
		}
	}
	return domain.Move{}, false
}

// MakesFive reports whether side's stone at the empty cell (row, col) would
// complete five or more in a row.
func MakesFive(b *domain.Board, row, col int, side domain.Side) bool {
	if !b.IsEmpty(row, col) {
		return false
	}

	found := false
	b.WithStone(row, col, side, func() {
		for _, dir := range domain.Directions {
			if contiguous(b, row, col, dir[0], dir[1], side).count >= domain.ToWin {
				found = true
				return
			}
		}
	})
	return found
}

// IsOpenFour reports whether side's stone at (row, col) would form four or
// more contiguous stones with at least one open end. Gaps are not crossed.
func IsOpenFour(b *domain.Board, row, col int, side domain.Side) bool {
	if !b.IsEmpty(row, col) {
		return false
	}

	found := false
	b.WithStone(row, col, side, func() {
		for _, dir := range domain.Directions {
			line := contiguous(b, row, col, dir[0], dir[1], side)
			if line.count >= 4 && line.openEnds >= 1 {
				found = true
				return
			}
		}
	})
	return found
}

type straightLine struct {
	count    int
	openEnds int
}

// contiguous counts side's straight run through (row, col) along one axis,
// the stone at (row, col) included, and how many ends touch an empty cell.
func contiguous(b *domain.Board, row, col, dRow, dCol int, side domain.Side) straightLine {
	stone := side.Cell()
	pos := domain.CountInDirection(b, row, col, dRow, dCol, stone)
	neg := domain.CountInDirection(b, row, col, -dRow, -dCol, stone)

	line := straightLine{count: pos + neg + 1}
	if b.IsEmpty(row+dRow*(pos+1), col+dCol*(pos+1)) {
		line.openEnds++
	}
	if b.IsEmpty(row-dRow*(neg+1), col-dCol*(neg+1)) {
		line.openEnds++
	}
	return line
}
