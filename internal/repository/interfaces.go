package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkaminski/samplescope/pkg/models"
)

// ScenarioRepository defines the interface for saved-scenario data operations
type ScenarioRepository interface {
	Create(ctx context.Context, scenario *models.Scenario) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Scenario, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]*models.Scenario, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
