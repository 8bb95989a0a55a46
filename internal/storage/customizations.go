// Package storage persists per-user API customizations in SQLite. The
// synthesis path consumes these records read-only; the web layer owns
// writes.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when no customization exists for a key.
var ErrNotFound = errors.New("customization not found")

// CustomizationRecord is one user's override bundle for an API within a
// use case, keyed by (UseCaseID, APIName, UserID).
type CustomizationRecord struct {
	ID         string            `json:"id"`
	UseCaseID  string            `json:"useCaseId"`
	APIName    string            `json:"apiName"`
	UserID     string            `json:"userId"`
	Payload    map[string]any    `json:"payload,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty"`
	Notes      string            `json:"notes,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// CustomizationStore handles SQLite customization storage.
type CustomizationStore struct {
	db *sql.DB
}

// NewCustomizationStore opens (creating if needed) the store at dbPath.
func NewCustomizationStore(dbPath string) (*CustomizationStore, error) {
	// Expand ~ in path
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	store := &CustomizationStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *CustomizationStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS customizations (
			id TEXT PRIMARY KEY,
			use_case_id TEXT NOT NULL,
			api_name TEXT NOT NULL,
			user_id TEXT NOT NULL,
			payload TEXT,
			headers TEXT,
			parameters TEXT,
			notes TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			UNIQUE (use_case_id, api_name, user_id)
		);

		CREATE INDEX IF NOT EXISTS idx_customizations_key
			ON customizations(use_case_id, api_name, user_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *CustomizationStore) Close() error {
	return s.db.Close()
}

// Save upserts a customization by its (useCaseId, apiName, userId) key.
func (s *CustomizationStore) Save(rec *CustomizationRecord) error {
	now := time.Now()
	if rec.ID == "" {
		rec.ID = GenerateID()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	payloadJSON, _ := json.Marshal(rec.Payload)
	headersJSON, _ := json.Marshal(rec.Headers)
	paramsJSON, _ := json.Marshal(rec.Parameters)

	_, err := s.db.Exec(`
		INSERT INTO customizations (id, use_case_id, api_name, user_id, payload, headers, parameters, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (use_case_id, api_name, user_id) DO UPDATE SET
			payload = excluded.payload,
			headers = excluded.headers,
			parameters = excluded.parameters,
			notes = excluded.notes,
			updated_at = excluded.updated_at
	`, rec.ID, rec.UseCaseID, rec.APIName, rec.UserID, string(payloadJSON), string(headersJSON), string(paramsJSON), rec.Notes, rec.CreatedAt, rec.UpdatedAt)

	return err
}

// Get retrieves the customization for a key, or ErrNotFound.
func (s *CustomizationStore) Get(useCaseID, apiName, userID string) (*CustomizationRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, use_case_id, api_name, user_id, payload, headers, parameters, notes, created_at, updated_at
		FROM customizations
		WHERE use_case_id = ? AND api_name = ? AND user_id = ?
	`, useCaseID, apiName, userID)

	var rec CustomizationRecord
	var payloadJSON, headersJSON, paramsJSON string

	err := row.Scan(&rec.ID, &rec.UseCaseID, &rec.APIName, &rec.UserID, &payloadJSON, &headersJSON, &paramsJSON, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	json.Unmarshal([]byte(payloadJSON), &rec.Payload)
	json.Unmarshal([]byte(headersJSON), &rec.Headers)
	json.Unmarshal([]byte(paramsJSON), &rec.Parameters)

	return &rec, nil
}

// ListForUseCase returns every customization recorded for a use case.
func (s *CustomizationStore) ListForUseCase(useCaseID string) ([]*CustomizationRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, use_case_id, api_name, user_id, payload, headers, parameters, notes, created_at, updated_at
		FROM customizations
		WHERE use_case_id = ?
		ORDER BY updated_at DESC
	`, useCaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*CustomizationRecord
	for rows.Next() {
		var rec CustomizationRecord
		var payloadJSON, headersJSON, paramsJSON string

		if err := rows.Scan(&rec.ID, &rec.UseCaseID, &rec.APIName, &rec.UserID, &payloadJSON, &headersJSON, &paramsJSON, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}

		json.Unmarshal([]byte(payloadJSON), &rec.Payload)
		json.Unmarshal([]byte(headersJSON), &rec.Headers)
		json.Unmarshal([]byte(paramsJSON), &rec.Parameters)
		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}

// GenerateID creates a new UUID for a record.
func GenerateID() string {
	return uuid.New().String()
}
