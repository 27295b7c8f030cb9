package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

type DecisionRepo struct {
	DB *sql.DB
}

func NewDecisionRepo(db *sql.DB) *DecisionRepo {
	return &DecisionRepo{DB: db}
}

// DecisionRecord is one logged engine decision.
type DecisionRecord struct {
	DecisionID   string    `json:"id"`
	UserID       *int64    `json:"user_id,omitempty"`
	Side         string    `json:"side"`
	Row          int       `json:"row"`
	Col          int       `json:"col"`
	Reason       string    `json:"reason"`
	Score        float64   `json:"score"`
	Source       string    `json:"source"`
	SuggestedRow *int      `json:"suggested_row,omitempty"`
	SuggestedCol *int      `json:"suggested_col,omitempty"`
	Board        [][]int   `json:"board_state,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r *DecisionRepo) SaveDecision(d *DecisionRecord) error {
	boardJSON, err := json.Marshal(d.Board)
	if err != nil {
		return fmt.Errorf("failed to marshal board state: %w", err)
	}

	query := `
	INSERT INTO ai_decision (decision_id, user_id, side, row_idx, col_idx, reason, score, source, suggested_row, suggested_col, board_state, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = r.DB.Exec(query, d.DecisionID, d.UserID, d.Side, d.Row, d.Col, d.Reason, d.Score, d.Source, d.SuggestedRow, d.SuggestedCol, string(boardJSON), d.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert decision: %w", err)
	}
	return nil
}

// GetDecisionByID returns nil, nil when the decision does not exist.
func (r *DecisionRepo) GetDecisionByID(decisionID string) (*DecisionRecord, error) {
	query := `
	SELECT decision_id, user_id, side, row_idx, col_idx, reason, score, source,
	       suggested_row, suggested_col, board_state, created_at
	FROM ai_decision
	WHERE decision_id = $1;
	`

	d, err := scanDecision(r.DB.QueryRow(query, decisionID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get decision by ID: %w", err)
	}
	return d, nil
}

// GetUserDecisions returns the most recent decisions for a user, newest first.
func (r *DecisionRepo) GetUserDecisions(userID int64, limit int) ([]DecisionRecord, error) {
	query := `
	SELECT decision_id, user_id, side, row_idx, col_idx, reason, score, source,
	       suggested_row, suggested_col, board_state, created_at
	FROM ai_decision
	WHERE user_id = $1
	ORDER BY created_at DESC
	LIMIT $2;
	`

	rows, err := r.DB.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query decisions: %w", err)
	}
	defer rows.Close()

	var decisions []DecisionRecord
	for rows.Next() {
		d, err := scanDecision(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan decision row: %w", err)
		}
		decisions = append(decisions, *d)
	}
	return decisions, rows.Err()
}

// CleanupOldDecisions deletes decisions older than daysToKeep.
func (r *DecisionRepo) CleanupOldDecisions(daysToKeep int) (int64, error) {
	query := `DELETE FROM ai_decision WHERE created_at < NOW() - make_interval(days => $1::int);`

	result, err := r.DB.Exec(query, daysToKeep)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup decisions: %w", err)
	}
	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDecision(row rowScanner) (*DecisionRecord, error) {
	var d DecisionRecord
	var userID, suggestedRow, suggestedCol sql.NullInt64
	var boardJSON []byte

	err := row.Scan(
		&d.DecisionID,
		&userID,
		&d.Side,
		&d.Row,
		&d.Col,
		&d.Reason,
		&d.Score,
		&d.Source,
		&suggestedRow,
		&suggestedCol,
		&boardJSON,
		&d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		id := userID.Int64
		d.UserID = &id
	}
	if suggestedRow.Valid && suggestedCol.Valid {
		r, c := int(suggestedRow.Int64), int(suggestedCol.Int64)
		d.SuggestedRow = &r
		d.SuggestedCol = &c
	}
	if boardJSON != nil {
		if err := json.Unmarshal(boardJSON, &d.Board); err != nil {
			return nil, fmt.Errorf("failed to unmarshal board state: %w", err)
		}
	}
	return &d, nil
}
