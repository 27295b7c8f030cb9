package bot

import "github.com/iamasit07/5-in-a-row/backend/internal/domain"

// candidateRadius is the Chebyshev distance around stones that is searched.
const candidateRadius = 2

// GenerateCandidates lists empty cells near existing stones in first-seen
// order: occupied cells row-major, then each 5x5 neighbourhood row-major.
// An empty board yields only the center.
func GenerateCandidates(b *domain.Board) []domain.Move {
	if b.StoneCount() == 0 {
		return []domain.Move{domain.NewMove(domain.Center, domain.Center)}
	}

	var seen [domain.Size][domain.Size]bool
	candidates := make([]domain.Move, 0, 64)

	for row := 0; row < domain.Size; row++ {
		for col := 0; col < domain.Size; col++ {
			if b[row][col] == domain.Empty {
				continue
			}
			for r := row - candidateRadius; r <= row+candidateRadius; r++ {
				for c := col - candidateRadius; c <= col+candidateRadius; c++ {
					if !b.IsEmpty(r, c) || seen[r][c] {
						continue
					}
					seen[r][c] = true
					candidates = append(candidates, domain.NewMove(r, c))
				}
			}
		}
	}

	return candidates
}

// fallbackMove is used when no candidate exists: the center if free, else
// the first empty cell in row-major order.
func fallbackMove(b *domain.Board) (domain.Move, bool) {
	if b.IsEmpty(domain.Center, domain.Center) {
		return domain.NewMove(domain.Center, domain.Center), true
	}
	for row := 0; row < domain.Size; row++ {
		for col := 0; col < domain.Size; col++ {
			if b[row][col] == domain.Empty {
				return domain.NewMove(row, col), true
			}
		}
	}
	return domain.Move{}, false
}
