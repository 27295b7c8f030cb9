package bot

import "github.com/iamasit07/5-in-a-row/backend/internal/domain"

// Blend substitutes suggested for the heuristic decision when the suggested
// cell is empty and scores at least AcceptRatio of the heuristic score.
// Forced decisions are returned unchanged.
func (e *Engine) Blend(board domain.Board, mover domain.Side, heuristic Decision, suggested domain.Move) Decision {
	if heuristic.Forced() {
		return heuristic
	}
	if !board.IsEmpty(suggested.Row, suggested.Col) {
		return heuristic
	}

	b := board
	suggestedScore := ScorePlacement(&b, suggested.Row, suggested.Col, mover)
	if !acceptSuggestion(suggestedScore, heuristic.Score, e.weights.AcceptRatio) {
		return heuristic
	}

	return Decision{
		Move:   suggested,
		Score:  float64(suggestedScore),
		Source: SourceSuggestion,
	}
}

func acceptSuggestion(suggestedScore int, heuristicScore, ratio float64) bool {
	return float64(suggestedScore) >= heuristicScore*ratio
}
