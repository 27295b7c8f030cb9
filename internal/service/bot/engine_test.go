package bot

import (
	"errors"
	"math"
	"testing"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

func TestDecideEmptyBoardPlaysCenter(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	var b domain.Board
	d, err := engine.Decide(b, domain.SideBlack, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Move != domain.NewMove(7, 7) {
		t.Fatalf("expected (7,7), got %+v", d.Move)
	}
	if d.Forced() {
		t.Fatalf("expected heuristic decision, got %s", d.Reason)
	}
}

func TestDecideTakesWin(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	var b domain.Board
	place(&b, domain.White, row(7, 3, 4, 5, 6)...)
	place(&b, domain.Black, row(8, 3, 4, 5)...)

	suggestion := domain.NewMove(0, 0)
	d, err := engine.Decide(b, domain.SideWhite, &suggestion)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Move != domain.NewMove(7, 2) || d.Reason != domain.ReasonWin {
		t.Fatalf("expected WIN at (7,2), got %+v", d)
	}
	if d.Label() != "rule-engine:WIN" {
		t.Fatalf("expected label rule-engine:WIN, got %s", d.Label())
	}
	if d.Source != SourceRuleEngine {
		t.Fatalf("expected suggestion to be ignored for forced moves, got source %s", d.Source)
	}
}

func TestDecideFullBoard(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	var b domain.Board
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			b[r][c] = domain.Black
		}
	}

	_, err := engine.Decide(b, domain.SideWhite, nil)
	if !errors.Is(err, domain.ErrNoLegalMove) {
		t.Fatalf("expected ErrNoLegalMove, got %v", err)
	}
}

func TestDecideInvalidSide(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	var b domain.Board
	if _, err := engine.Decide(b, domain.Side(7), nil); !errors.Is(err, domain.ErrInvalidSide) {
		t.Fatalf("expected ErrInvalidSide, got %v", err)
	}
}

func TestSelectMoveTieBreaksByFirstSeen(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	var b domain.Board
	place(&b, domain.Black, [2]int{7, 7})

	sel, ok := engine.SelectMove(&b, domain.SideWhite)
	if !ok {
		t.Fatalf("expected a selection")
	}
	// (5,5), (5,7), (6,6) ... tie on 4*1.1 + 53; the first generated wins
	if sel.Move != domain.NewMove(5, 5) {
		t.Fatalf("expected (5,5), got %+v", sel.Move)
	}
	if math.Abs(sel.Score-57.4) > 1e-9 {
		t.Fatalf("expected score 57.4, got %f", sel.Score)
	}
}

func TestSelectMoveDoesNotMutateBoard(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	var b domain.Board
	place(&b, domain.Black, row(7, 6, 7)...)
	place(&b, domain.White, row(8, 6, 8)...)
	before := b

	engine.SelectMove(&b, domain.SideWhite)
	if b != before {
		t.Fatalf("expected board to be unchanged")
	}
}

func TestDecisionLabelHeuristic(t *testing.T) {
	d := Decision{Score: 57.4, Source: SourceRuleEngine}
	if d.Label() != "57.4" {
		t.Fatalf("expected label 57.4, got %s", d.Label())
	}
}

func TestNewEngineDefaultsNonPositiveWeights(t *testing.T) {
	engine := NewEngine(Weights{})
	if engine.Weights() != DefaultWeights() {
		t.Fatalf("expected defaults, got %+v", engine.Weights())
	}
}
