package bot

import (
	"testing"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

func TestAcceptSuggestionThreshold(t *testing.T) {
	if !acceptSuggestion(800, 1000, DefaultAcceptRatio) {
		t.Fatalf("expected 800 to be accepted against 1000")
	}
	if acceptSuggestion(799, 1000, DefaultAcceptRatio) {
		t.Fatalf("expected 799 to be rejected against 1000")
	}
}

func TestBlendRejectsOccupiedCell(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	var b domain.Board
	place(&b, domain.Black, [2]int{7, 7})
	heuristic := Decision{Move: domain.NewMove(6, 6), Score: 1, Source: SourceRuleEngine}

	got := engine.Blend(b, domain.SideWhite, heuristic, domain.NewMove(7, 7))
	if got != heuristic {
		t.Fatalf("expected heuristic decision, got %+v", got)
	}
}

func TestBlendRejectsOffBoardCell(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	var b domain.Board
	heuristic := Decision{Move: domain.NewMove(7, 7), Score: 1, Source: SourceRuleEngine}

	got := engine.Blend(b, domain.SideBlack, heuristic, domain.NewMove(15, 3))
	if got != heuristic {
		t.Fatalf("expected heuristic decision, got %+v", got)
	}
}

func TestBlendAcceptsAndRejectsByScore(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	var b domain.Board
	place(&b, domain.Black, [2]int{7, 7})
	corner := domain.NewMove(0, 0) // scores 3 for black here

	low := Decision{Move: domain.NewMove(6, 6), Score: 3.5, Source: SourceRuleEngine}
	got := engine.Blend(b, domain.SideBlack, low, corner)
	if got.Move != corner || got.Source != SourceSuggestion {
		t.Fatalf("expected suggestion to be accepted, got %+v", got)
	}
	if got.Score != 3 {
		t.Fatalf("expected suggested score 3, got %f", got.Score)
	}

	high := Decision{Move: domain.NewMove(6, 6), Score: 1000, Source: SourceRuleEngine}
	got = engine.Blend(b, domain.SideBlack, high, corner)
	if got != high {
		t.Fatalf("expected heuristic decision, got %+v", got)
	}
}

func TestBlendKeepsForcedDecision(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	var b domain.Board
	forced := Decision{Move: domain.NewMove(3, 3), Reason: domain.ReasonBlockWin, Source: SourceRuleEngine}

	if got := engine.Blend(b, domain.SideBlack, forced, domain.NewMove(7, 7)); got != forced {
		t.Fatalf("expected forced decision to stand, got %+v", got)
	}
}

func TestBlendThresholdIsInclusive(t *testing.T) {
	// centre of an empty board scores 4, a corner 3
	var b domain.Board
	centre := domain.NewMove(7, 7)
	corner := domain.NewMove(0, 0)

	tests := []struct {
		name      string
		weights   Weights
		heuristic float64
	}{
		{"default ratio", DefaultWeights(), 5},
		{"heuristic 1000", Weights{AttackWeight: DefaultAttackWeight, AcceptRatio: 0.004}, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(tt.weights)
			heuristic := Decision{Move: domain.NewMove(6, 6), Score: tt.heuristic, Source: SourceRuleEngine}

			got := engine.Blend(b, domain.SideBlack, heuristic, centre)
			if got.Move != centre || got.Source != SourceSuggestion {
				t.Fatalf("expected suggestion exactly at the threshold to be accepted, got %+v", got)
			}

			got = engine.Blend(b, domain.SideBlack, heuristic, corner)
			if got != heuristic {
				t.Fatalf("expected suggestion one point below the threshold to be rejected, got %+v", got)
			}
		})
	}
}

func TestDecideBlendsOnlyUnforcedMoves(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	var b domain.Board
	place(&b, domain.Black, row(7, 3, 4, 5, 6)...)
	suggestion := domain.NewMove(0, 0)

	got, err := engine.Decide(b, domain.SideBlack, &suggestion)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Reason != domain.ReasonWin || got.Move != domain.NewMove(7, 2) {
		t.Fatalf("expected forced win at (7,2), got %+v", got)
	}
}
