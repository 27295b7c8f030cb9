package postgres

import (
	"database/sql"
	"fmt"
	"time"
)

type ModelRepo struct {
	DB *sql.DB
}

func NewModelRepo(db *sql.DB) *ModelRepo {
	return &ModelRepo{DB: db}
}

// ModelConfig is the database-backed setting for the suggestion provider.
type ModelConfig struct {
	Name               string
	ProviderModel      string
	SuggestionsEnabled bool
	Temperature        float64
	UpdatedAt          time.Time
}

// GetActiveModel returns the active model row, or nil if none is active.
func (r *ModelRepo) GetActiveModel() (*ModelConfig, error) {
	query := `
	SELECT name, provider_model, suggestions_enabled, temperature, updated_at
	FROM ai_model_config
	WHERE is_active = TRUE
	ORDER BY updated_at DESC
	LIMIT 1;
	`

	var m ModelConfig
	err := r.DB.QueryRow(query).Scan(&m.Name, &m.ProviderModel, &m.SuggestionsEnabled, &m.Temperature, &m.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active model: %w", err)
	}
	return &m, nil
}
