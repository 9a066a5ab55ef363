package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkaminski/samplescope/internal/repository"
	"github.com/pkaminski/samplescope/pkg/models"
)

// PostgresScenarioRepository implements ScenarioRepository for PostgreSQL
type PostgresScenarioRepository struct {
	db *sql.DB
}

// NewPostgresScenarioRepository creates a new PostgreSQL scenario repository
func NewPostgresScenarioRepository(db *sql.DB) repository.ScenarioRepository {
	return &PostgresScenarioRepository{db: db}
}

// Create inserts a new scenario record
func (r *PostgresScenarioRepository) Create(ctx context.Context, scenario *models.Scenario) error {
	params, err := json.Marshal(scenario.Parameters)
	if err != nil {
		return fmt.Errorf("failed to marshal parameters: %w", err)
	}

	query := `
		INSERT INTO scenarios (id, session_id, name, parameters, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = r.db.ExecContext(ctx, query,
		scenario.ID,
		scenario.SessionID,
		scenario.Name,
		string(params),
		scenario.CreatedAt)

	return err
}

// GetByID retrieves a scenario by ID
func (r *PostgresScenarioRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Scenario, error) {
	query := `
		SELECT id, session_id, name, parameters, created_at
		FROM scenarios
		WHERE id = $1`

	var scenario models.Scenario
	var paramsStr string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&scenario.ID,
		&scenario.SessionID,
		&scenario.Name,
		&paramsStr,
		&scenario.CreatedAt)

	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(paramsStr), &scenario.Parameters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal parameters: %w", err)
	}

	return &scenario, nil
}

// GetBySessionID retrieves scenarios by session ID, newest first
func (r *PostgresScenarioRepository) GetBySessionID(ctx context.Context, sessionID string) ([]*models.Scenario, error) {
	query := `
		SELECT id, session_id, name, parameters, created_at
		FROM scenarios
		WHERE session_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scenarios []*models.Scenario
	for rows.Next() {
		var scenario models.Scenario
		var paramsStr string

		err := rows.Scan(
			&scenario.ID,
			&scenario.SessionID,
			&scenario.Name,
			&paramsStr,
			&scenario.CreatedAt)

		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(paramsStr), &scenario.Parameters); err != nil {
			return nil, fmt.Errorf("failed to unmarshal parameters: %w", err)
		}

		scenarios = append(scenarios, &scenario)
	}

	return scenarios, rows.Err()
}

// Delete removes a scenario by ID
func (r *PostgresScenarioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM scenarios WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
