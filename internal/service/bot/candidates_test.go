package bot

import (
	"testing"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

func TestGenerateCandidatesEmptyBoard(t *testing.T) {
	var b domain.Board
	got := GenerateCandidates(&b)
	if len(got) != 1 || got[0] != domain.NewMove(7, 7) {
		t.Fatalf("expected only the center, got %+v", got)
	}
}

func TestGenerateCandidatesSingleStone(t *testing.T) {
	var b domain.Board
	place(&b, domain.Black, [2]int{7, 7})

	got := GenerateCandidates(&b)
	if len(got) != 24 {
		t.Fatalf("expected 24 candidates, got %d", len(got))
	}
	if got[0] != domain.NewMove(5, 5) {
		t.Fatalf("expected first candidate (5,5), got %+v", got[0])
	}

	seen := map[domain.Move]bool{}
	for _, m := range got {
		if seen[m] {
			t.Fatalf("duplicate candidate %+v", m)
		}
		seen[m] = true
		if m == domain.NewMove(7, 7) {
			t.Fatalf("occupied cell returned as candidate")
		}
		dr, dc := m.Row-7, m.Col-7
		if dr < -2 || dr > 2 || dc < -2 || dc > 2 {
			t.Fatalf("candidate %+v outside radius 2", m)
		}
	}
}

func TestGenerateCandidatesClipsAndDeduplicates(t *testing.T) {
	var b domain.Board
	place(&b, domain.Black, [2]int{0, 0})
	place(&b, domain.White, [2]int{0, 1})

	got := GenerateCandidates(&b)
	// union of the clipped 3x3 and 3x4 neighbourhoods minus the two stones
	if len(got) != 10 {
		t.Fatalf("expected 10 candidates, got %d: %+v", len(got), got)
	}
	if got[0] != domain.NewMove(0, 2) {
		t.Fatalf("expected first candidate (0,2), got %+v", got[0])
	}
}

func TestFallbackMovePrefersCenter(t *testing.T) {
	var b domain.Board
	move, ok := fallbackMove(&b)
	if !ok || move != domain.NewMove(7, 7) {
		t.Fatalf("expected center fallback, got %+v", move)
	}

	place(&b, domain.Black, [2]int{7, 7})
	move, ok = fallbackMove(&b)
	if !ok || move != domain.NewMove(0, 0) {
		t.Fatalf("expected first empty cell, got %+v", move)
	}
}
