package bot

import (
	"log"
	"strconv"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

const (
	SourceRuleEngine = "rule-engine"
	SourceSuggestion = "suggestion"

	DefaultAttackWeight = 1.1
	DefaultAcceptRatio  = 0.8
)

// Weights holds the tunable constants of the heuristic path.
type Weights struct {
	// AttackWeight multiplies the mover's own placement score so that
	// offence wins close calls against pure denial.
	AttackWeight float64
	// AcceptRatio is the share of the heuristic score a suggested move must
	// reach to replace the heuristic choice.
	AcceptRatio float64
}

func DefaultWeights() Weights {
	return Weights{AttackWeight: DefaultAttackWeight, AcceptRatio: DefaultAcceptRatio}
}

// Engine selects moves. It holds no per-call state and is safe for
// concurrent use.
type Engine struct {
	weights Weights
}

func NewEngine(w Weights) *Engine {
	if w.AttackWeight <= 0 {
		w.AttackWeight = DefaultAttackWeight
	}
	if w.AcceptRatio <= 0 {
		w.AcceptRatio = DefaultAcceptRatio
	}
	return &Engine{weights: w}
}

func (e *Engine) Weights() Weights {
	return e.weights
}

// Selection is the outcome of the heuristic path.
type Selection struct {
	Move  domain.Move
	Score float64
}

// Decision is the final answer for one position.
type Decision struct {
	Move   domain.Move           `json:"move"`
	Reason domain.CriticalReason `json:"reason,omitempty"`
	Score  float64               `json:"score"`
	Source string                `json:"source"`
}

// Forced reports whether a critical tier produced the move.
func (d Decision) Forced() bool {
	return d.Reason != domain.ReasonNone
}

// Label is "rule-engine:<TIER>" for forced moves and the heuristic score
// otherwise.
func (d Decision) Label() string {
	if d.Forced() {
		return SourceRuleEngine + ":" + string(d.Reason)
	}
	return strconv.FormatFloat(d.Score, 'f', -1, 64)
}

// SelectMove scores every candidate and returns the best one. It assumes no
// critical move exists; callers wanting the full priority order use Decide.
func (e *Engine) SelectMove(b *domain.Board, mover domain.Side) (Selection, bool) {
	candidates := GenerateCandidates(b)
	if len(candidates) == 0 {
		move, ok := fallbackMove(b)
		if !ok {
			return Selection{}, false
		}
		candidates = []domain.Move{move}
	}

	opponent := mover.Opponent()
	best := Selection{Move: candidates[0]}
	first := true
	for _, m := range candidates {
		attack := ScorePlacement(b, m.Row, m.Col, mover)
		threat := ScorePlacement(b, m.Row, m.Col, opponent)
		combined := float64(attack)*e.weights.AttackWeight + float64(threat)

		if first || combined > best.Score {
			best = Selection{Move: m, Score: combined}
			first = false
		}
	}
	return best, true
}

// Heuristic runs the critical scan and, if nothing is forced, the heuristic
// selection. The board is copied so the caller's grid is never touched.
func (e *Engine) Heuristic(board domain.Board, mover domain.Side) (Decision, error) {
	if !mover.Valid() {
		return Decision{}, domain.ErrInvalidSide
	}
	if board.IsFull() {
		return Decision{}, domain.ErrNoLegalMove
	}

	b := board
	if move, reason, ok := FindCriticalMove(&b, mover); ok {
		log.Printf("[ENGINE] %s forced %s for %s", reason, move.Notation(), mover)
		return Decision{Move: move, Reason: reason, Source: SourceRuleEngine}, nil
	}

	sel, ok := e.SelectMove(&b, mover)
	if !ok {
		return Decision{}, domain.ErrNoLegalMove
	}
	return Decision{Move: sel.Move, Score: sel.Score, Source: SourceRuleEngine}, nil
}

// Decide is the single decision entrypoint. suggestion may be nil; it is only
// considered when no critical move is forced.
func (e *Engine) Decide(board domain.Board, mover domain.Side, suggestion *domain.Move) (Decision, error) {
	decision, err := e.Heuristic(board, mover)
	if err != nil {
		return Decision{}, err
	}
	if decision.Forced() || suggestion == nil {
		return decision, nil
	}
	return e.Blend(board, mover, decision, *suggestion), nil
}
