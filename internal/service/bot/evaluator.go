package bot

import "github.com/iamasit07/5-in-a-row/backend/internal/domain"

const (
	// Pattern values per axis, summed across the four axes.
	SCORE_FIVE       = 100000
	SCORE_OPEN_FOUR  = 10000
	SCORE_FOUR       = 1000
	SCORE_OPEN_THREE = 500
	SCORE_THREE      = 100
	SCORE_OPEN_TWO   = 50
	SCORE_TWO        = 10
	SCORE_ONE        = 1
)

// ScorePlacement rates placing side's stone on the empty cell (row, col).
// The stone is placed only for the duration of the call.
func ScorePlacement(b *domain.Board, row, col int, side domain.Side) int {
	if !b.IsEmpty(row, col) {
		return 0
	}

	score := 0
	b.WithStone(row, col, side, func() {
		for _, dir := range domain.Directions {
			score += axisScore(scanAxis(b, row, col, dir[0], dir[1], side))
		}
	})
	return score
}

func axisScore(line lineAt) int {
	if line.Total >= 5 {
		return SCORE_FIVE
	}
	if line.BothBlocked {
		return 0
	}

	switch line.Total {
	case 4:
		if !line.OneBlocked {
			return SCORE_OPEN_FOUR
		}
		return SCORE_FOUR
	case 3:
		if !line.OneBlocked {
			return SCORE_OPEN_THREE
		}
		return SCORE_THREE
	case 2:
		if !line.OneBlocked {
			return SCORE_OPEN_TWO
		}
		return SCORE_TWO
	default:
		return SCORE_ONE
	}
}
