package game

import (
	"context"
	"time"

	"github.com/iamasit07/5-in-a-row/backend/internal/repository/postgres"
)

type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type DecisionRepository interface {
	SaveDecision(d *postgres.DecisionRecord) error
	GetDecisionByID(decisionID string) (*postgres.DecisionRecord, error)
	GetUserDecisions(userID int64, limit int) ([]postgres.DecisionRecord, error)
}

type ModelRepository interface {
	GetActiveModel() (*postgres.ModelConfig, error)
}
