package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/pkaminski/samplescope/internal/api/handlers"
	"github.com/pkaminski/samplescope/internal/render"
	"github.com/pkaminski/samplescope/internal/repository"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(router *chi.Mux, api huma.API, renderSvc render.RenderService, scenarioRepo repository.ScenarioRepository) {
	// Initialize handlers
	renderHandler := handlers.NewRenderHandler(renderSvc)
	scenarioHandler := handlers.NewScenarioHandler(scenarioRepo)

	// Register render routes
	huma.Register(api, huma.Operation{
		OperationID: "renderScene",
		Method:      http.MethodPost,
		Path:        "/api/renders",
		Summary:     "Render a sampling scene",
		Description: "Computes the analog reference curve, the discrete samples and the idealized DFT spectrum for the given parameters",
		Tags:        []string{"Render"},
	}, renderHandler.RenderScene)

	huma.Register(api, huma.Operation{
		OperationID: "renderAudio",
		Method:      http.MethodPost,
		Path:        "/api/renders/audio",
		Summary:     "Render an audio preview",
		Description: "Renders the configured signal as a WAV file and returns a pre-signed download URL",
		Tags:        []string{"Render"},
	}, renderHandler.RenderAudio)

	// Register scenario routes
	huma.Register(api, huma.Operation{
		OperationID: "createScenario",
		Method:      http.MethodPost,
		Path:        "/api/scenarios",
		Summary:     "Save a scenario",
		Description: "Saves a parameter preset so a session can recall it later",
		Tags:        []string{"Scenario"},
	}, scenarioHandler.CreateScenario)

	huma.Register(api, huma.Operation{
		OperationID: "getScenario",
		Method:      http.MethodGet,
		Path:        "/api/scenarios/{id}",
		Summary:     "Get a scenario",
		Description: "Returns a saved scenario by ID",
		Tags:        []string{"Scenario"},
	}, scenarioHandler.GetScenario)

	huma.Register(api, huma.Operation{
		OperationID: "listScenarios",
		Method:      http.MethodGet,
		Path:        "/api/scenarios",
		Summary:     "List scenarios",
		Description: "Returns the scenarios saved by a session, newest first",
		Tags:        []string{"Scenario"},
	}, scenarioHandler.ListScenarios)
}
