package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/pkaminski/samplescope/internal/repository"
	"github.com/pkaminski/samplescope/pkg/models"
)

// ScenarioHandler handles scenario-preset HTTP requests
type ScenarioHandler struct {
	repo repository.ScenarioRepository
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler(repo repository.ScenarioRepository) *ScenarioHandler {
	return &ScenarioHandler{repo: repo}
}

// CreateScenario saves a parameter preset for later recall
func (h *ScenarioHandler) CreateScenario(ctx context.Context, req *models.CreateScenarioRequest) (*models.CreateScenarioResponse, error) {
	log.Info().Str("sessionID", req.Body.SessionID).Str("name", req.Body.Name).Msg("Saving scenario")

	scenario := &models.Scenario{
		ID:         uuid.New().String(),
		SessionID:  req.Body.SessionID,
		Name:       req.Body.Name,
		Parameters: req.Body.Parameters,
		CreatedAt:  time.Now(),
	}

	if err := h.repo.Create(ctx, scenario); err != nil {
		return nil, huma.Error500InternalServerError("Failed to save scenario", err)
	}

	log.Info().Str("scenarioID", scenario.ID).Msg("Scenario saved")
	return &models.CreateScenarioResponse{Body: *scenario}, nil
}

// GetScenario returns a saved scenario by ID
func (h *ScenarioHandler) GetScenario(ctx context.Context, req *models.GetScenarioRequest) (*models.GetScenarioResponse, error) {
	scenarioID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid scenario ID", err)
	}

	scenario, err := h.repo.GetByID(ctx, scenarioID)
	if err != nil {
		return nil, huma.Error404NotFound("Scenario not found", err)
	}

	return &models.GetScenarioResponse{Body: *scenario}, nil
}

// ListScenarios returns all scenarios saved by a session, newest first
func (h *ScenarioHandler) ListScenarios(ctx context.Context, req *models.ListScenariosRequest) (*models.ListScenariosResponse, error) {
	scenarios, err := h.repo.GetBySessionID(ctx, req.SessionID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list scenarios", err)
	}

	body := models.ListScenariosResponseBody{Scenarios: make([]models.Scenario, 0, len(scenarios))}
	for _, s := range scenarios {
		body.Scenarios = append(body.Scenarios, *s)
	}

	return &models.ListScenariosResponse{Body: body}, nil
}
