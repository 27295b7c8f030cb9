package game

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
	"github.com/iamasit07/5-in-a-row/backend/internal/repository/postgres"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/bot"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/suggest"
	"github.com/iamasit07/5-in-a-row/backend/pkg/uid"
)

const suggestionKeyPrefix = "suggestion:"

// Options wires the optional collaborators. Any nil collaborator disables
// the matching feature.
type Options struct {
	Suggester         suggest.Suggester
	Models            ModelRepository
	Decisions         DecisionRepository
	Cache             CacheRepository
	DefaultModel      string
	SuggestionTimeout time.Duration
	CacheTTL          time.Duration
}

// Service is the entry point for move decisions (facade)
type Service struct {
	engine *bot.Engine
	opts   Options
}

func NewService(engine *bot.Engine, opts Options) *Service {
	if opts.SuggestionTimeout <= 0 {
		opts.SuggestionTimeout = 4 * time.Second
	}
	return &Service{engine: engine, opts: opts}
}

type MoveRequest struct {
	Board      [][]int
	Side       string
	Suggestion string // optional advisory move text supplied by the caller
	UserID     *int64
}

type MoveResult struct {
	DecisionID  string                `json:"decision_id,omitempty"`
	Row         int                   `json:"row"`
	Col         int                   `json:"col"`
	Notation    string                `json:"notation"`
	Reason      string                `json:"reason"`
	Critical    domain.CriticalReason `json:"critical,omitempty"`
	Score       float64               `json:"score"`
	Source      string                `json:"source"`
	Suggested   *domain.Move          `json:"suggested,omitempty"`
	WinningLine []domain.Move         `json:"winning_line,omitempty"`
}

// RequestMove validates the request and returns the engine's move. The only
// error for a well-formed request is domain.ErrNoLegalMove.
func (s *Service) RequestMove(ctx context.Context, req MoveRequest) (*MoveResult, error) {
	board, err := domain.ParseBoard(req.Board)
	if err != nil {
		return nil, err
	}
	side, err := domain.ParseSide(req.Side)
	if err != nil {
		return nil, err
	}

	// The heuristic answer exists before any suggestion is requested.
	decision, err := s.engine.Heuristic(board, side)
	if err != nil {
		return nil, err
	}

	var suggested *domain.Move
	if !decision.Forced() {
		suggested = s.resolveSuggestion(ctx, board, side, req.Suggestion)
		if suggested != nil {
			decision = s.engine.Blend(board, side, decision, *suggested)
		}
	}

	result := &MoveResult{
		DecisionID: uid.GenerateDecisionID(),
		Row:        decision.Move.Row,
		Col:        decision.Move.Col,
		Notation:   decision.Move.Notation(),
		Reason:     decision.Label(),
		Critical:   decision.Reason,
		Score:      decision.Score,
		Source:     decision.Source,
		Suggested:  suggested,
	}
	// the line is read from the position after the chosen move
	after := board
	after[decision.Move.Row][decision.Move.Col] = side.Cell()
	if line, ok := domain.WinningLine(after); ok {
		result.WinningLine = line
	}

	s.recordDecision(result, side, board, req.UserID)
	return result, nil
}

// resolveSuggestion never fails: any problem yields nil and the heuristic
// move stands.
func (s *Service) resolveSuggestion(ctx context.Context, board domain.Board, side domain.Side, text string) *domain.Move {
	if text != "" {
		move, ok := suggest.ParseMove(text)
		if !ok {
			log.Printf("[SUGGEST] Ignoring unparseable suggestion %q", text)
			return nil
		}
		return &move
	}

	if s.opts.Suggester == nil {
		return nil
	}
	model, ok := s.activeModel()
	if !ok {
		return nil
	}

	key := suggestionKeyPrefix + model.Model + ":" + strconv.Itoa(int(side)) + ":" + board.Key()
	if move, ok := s.cachedSuggestion(ctx, key); ok {
		return &move
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.opts.SuggestionTimeout)
	defer cancel()

	move, err := s.opts.Suggester.Suggest(fetchCtx, board, side, model)
	if err != nil {
		log.Printf("[SUGGEST] No suggestion (%v), keeping heuristic move", err)
		return nil
	}

	if s.opts.Cache != nil {
		value := fmt.Sprintf("%d,%d", move.Row, move.Col)
		if err := s.opts.Cache.Set(ctx, key, value, s.opts.CacheTTL); err != nil {
			log.Printf("[SUGGEST] Failed to cache suggestion: %v", err)
		}
	}
	return &move
}

func (s *Service) activeModel() (suggest.ModelSettings, bool) {
	if s.opts.Models == nil {
		return suggest.ModelSettings{Model: s.opts.DefaultModel}, true
	}

	cfg, err := s.opts.Models.GetActiveModel()
	if err != nil {
		log.Printf("[SUGGEST] Failed to load model config: %v", err)
		return suggest.ModelSettings{}, false
	}
	if cfg == nil {
		return suggest.ModelSettings{Model: s.opts.DefaultModel}, true
	}
	if !cfg.SuggestionsEnabled {
		return suggest.ModelSettings{}, false
	}
	return suggest.ModelSettings{Model: cfg.ProviderModel, Temperature: cfg.Temperature}, true
}

func (s *Service) cachedSuggestion(ctx context.Context, key string) (domain.Move, bool) {
	if s.opts.Cache == nil {
		return domain.Move{}, false
	}
	val, err := s.opts.Cache.Get(ctx, key)
	if err != nil || val == "" {
		return domain.Move{}, false
	}

	parts := strings.Split(val, ",")
	if len(parts) != 2 {
		return domain.Move{}, false
	}
	row, errRow := strconv.Atoi(parts[0])
	col, errCol := strconv.Atoi(parts[1])
	if errRow != nil || errCol != nil {
		return domain.Move{}, false
	}
	return domain.NewMove(row, col), true
}

func (s *Service) recordDecision(result *MoveResult, side domain.Side, board domain.Board, userID *int64) {
	if s.opts.Decisions == nil {
		result.DecisionID = ""
		return
	}

	record := &postgres.DecisionRecord{
		DecisionID: result.DecisionID,
		UserID:     userID,
		Side:       side.String(),
		Row:        result.Row,
		Col:        result.Col,
		Reason:     result.Reason,
		Score:      result.Score,
		Source:     result.Source,
		Board:      board.Rows(),
		CreatedAt:  time.Now(),
	}
	if result.Suggested != nil {
		r, c := result.Suggested.Row, result.Suggested.Col
		record.SuggestedRow = &r
		record.SuggestedCol = &c
	}

	if err := s.opts.Decisions.SaveDecision(record); err != nil {
		log.Printf("[DB] Failed to save decision %s: %v", result.DecisionID, err)
		result.DecisionID = ""
	}
}

// GetDecision returns nil, nil when the decision is unknown, belongs to
// another user, or persistence is disabled.
func (s *Service) GetDecision(userID int64, decisionID string) (*postgres.DecisionRecord, error) {
	if s.opts.Decisions == nil {
		return nil, nil
	}
	record, err := s.opts.Decisions.GetDecisionByID(decisionID)
	if err != nil || record == nil {
		return nil, err
	}
	if record.UserID == nil || *record.UserID != userID {
		return nil, nil
	}
	return record, nil
}

func (s *Service) GetUserDecisions(userID int64, limit int) ([]postgres.DecisionRecord, error) {
	if s.opts.Decisions == nil {
		return nil, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.opts.Decisions.GetUserDecisions(userID, limit)
}
