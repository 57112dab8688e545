package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"foundercast/pkg/models"
)

// Session is one saved modeling session: the founder's inputs and the
// scenario set they produced.
type Session struct {
	ID        string                `json:"id"`
	Input     models.UserInput      `json:"input"`
	Scenarios []models.ScenarioData `json:"scenarios"`
	SavedAt   time.Time             `json:"saved_at"`
}

// SessionRepo stores sessions with an upsert on the session ID.
//
// Schema assumption (managed outside this service):
//
//	CREATE TABLE IF NOT EXISTS modeling_sessions (
//	  id UUID PRIMARY KEY,
//	  company TEXT,
//	  session_json JSONB,
//	  updated_at TIMESTAMPTZ
//	);
type SessionRepo struct{}

// NewSessionRepo creates a repository instance.
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{}
}

// Save persists a session. An empty ID gets a fresh UUID; the assigned ID is
// returned so the client can load the session later.
func (r *SessionRepo) Save(ctx context.Context, session Session) (string, error) {
	pool := GetPool()
	if pool == nil {
		return "", fmt.Errorf("database pool not initialized")
	}

	if session.ID == "" {
		session.ID = uuid.NewString()
	} else if _, err := uuid.Parse(session.ID); err != nil {
		return "", fmt.Errorf("invalid session id %q: %w", session.ID, err)
	}
	session.SavedAt = time.Now().UTC()

	jsonData, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	query := `
		INSERT INTO modeling_sessions (id, company, session_json, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id)
		DO UPDATE SET
			company = EXCLUDED.company,
			session_json = EXCLUDED.session_json,
			updated_at = EXCLUDED.updated_at;
	`

	if _, err := pool.Exec(ctx, query, session.ID, session.Input.CompanyName, jsonData, session.SavedAt); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return session.ID, nil
}

// Load retrieves a session by ID.
func (r *SessionRepo) Load(ctx context.Context, id string) (Session, error) {
	pool := GetPool()
	if pool == nil {
		return Session{}, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT session_json FROM modeling_sessions WHERE id = $1`

	var jsonData []byte
	if err := pool.QueryRow(ctx, query, id).Scan(&jsonData); err != nil {
		if err == pgx.ErrNoRows {
			return Session{}, fmt.Errorf("no session found for id %s", id)
		}
		return Session{}, fmt.Errorf("failed to load session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(jsonData, &session); err != nil {
		return Session{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return session, nil
}
