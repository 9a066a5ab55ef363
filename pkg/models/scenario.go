package models

import "time"

// Scenario is a saved parameter preset so a session can recall or share a
// configuration later.
type Scenario struct {
	ID         string           `json:"id" doc:"Scenario unique identifier"`
	SessionID  string           `json:"session_id" doc:"Client session identifier"`
	Name       string           `json:"name" doc:"Display name"`
	Parameters RenderParameters `json:"parameters" doc:"Saved render parameters"`
	CreatedAt  time.Time        `json:"created_at" doc:"When the scenario was saved"`
}

// CreateScenarioRequest represents a request to save a parameter preset
type CreateScenarioRequest struct {
	Body struct {
		SessionID  string           `json:"session_id" minLength:"10" maxLength:"50" required:"true" doc:"Client session identifier"`
		Name       string           `json:"name" minLength:"1" maxLength:"100" required:"true" doc:"Display name"`
		Parameters RenderParameters `json:"parameters" required:"true" doc:"Render parameters to save"`
	}
}

// CreateScenarioResponse represents the saved scenario
type CreateScenarioResponse struct {
	Body Scenario
}

// GetScenarioRequest represents a request to fetch a scenario by ID
type GetScenarioRequest struct {
	ID string `path:"id" doc:"Scenario ID"`
}

// GetScenarioResponse represents a single scenario
type GetScenarioResponse struct {
	Body Scenario
}

// ListScenariosRequest represents a request to list a session's scenarios
type ListScenariosRequest struct {
	SessionID string `query:"session_id" required:"true" doc:"Client session identifier"`
}

// ListScenariosResponseBody is the body of the scenario list response
type ListScenariosResponseBody struct {
	Scenarios []Scenario `json:"scenarios" doc:"Saved scenarios, newest first"`
}

// ListScenariosResponse represents the scenario list
type ListScenariosResponse struct {
	Body ListScenariosResponseBody
}
