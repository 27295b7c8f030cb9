package bot

import "github.com/iamasit07/5-in-a-row/backend/internal/domain"

// Run is the result of scanning one half-axis away from a reference cell.
type Run struct {
	Count   int  // same-side stones, reference cell excluded
	Blocked bool // capped by the edge or an opposing stone
}

// scanHalfAxis walks from the neighbour of (row, col) along (dRow, dCol)
// counting side's stones. When the run stops on an empty cell it looks one
// cell further and, if that holds side's stone, folds the run behind the gap
// into the count. At most one gap is crossed.
func scanHalfAxis(b *domain.Board, row, col, dRow, dCol int, side domain.Side) Run {
	stone := side.Cell()
	count := domain.CountInDirection(b, row, col, dRow, dCol, stone)

	stopRow, stopCol := row+dRow*(count+1), col+dCol*(count+1)
	if !domain.InBounds(stopRow, stopCol) || b[stopRow][stopCol] != domain.Empty {
		return Run{Count: count, Blocked: true}
	}

	// gap-jump
	nextRow, nextCol := stopRow+dRow, stopCol+dCol
	if domain.InBounds(nextRow, nextCol) && b[nextRow][nextCol] == stone {
		count += 1 + domain.CountInDirection(b, nextRow, nextCol, dRow, dCol, stone)
	}

	return Run{Count: count, Blocked: false}
}

// lineAt is the merged view of both half-axes for one direction, with the
// stone at (row, col) itself included in Total.
type lineAt struct {
	Total       int
	OneBlocked  bool
	BothBlocked bool
}

func scanAxis(b *domain.Board, row, col, dRow, dCol int, side domain.Side) lineAt {
	pos := scanHalfAxis(b, row, col, dRow, dCol, side)
	neg := scanHalfAxis(b, row, col, -dRow, -dCol, side)
	return lineAt{
		Total:       pos.Count + neg.Count + 1,
		OneBlocked:  pos.Blocked || neg.Blocked,
		BothBlocked: pos.Blocked && neg.Blocked,
	}
}
