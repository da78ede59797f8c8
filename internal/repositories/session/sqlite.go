// Package session persists the current-session slot in a single app_state row.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/photostudio/internal/dbx"
	"github.com/dmitrijs2005/photostudio/internal/models"
)

const storageKey = "session_user"

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, view *models.SessionUser) error {
	if view == nil {
		return errors.New("session view is nil")
	}
	raw, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, storageKey, raw)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (*models.SessionUser, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, storageKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	view := &models.SessionUser{}
	if err := json.Unmarshal(raw, view); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return view, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, storageKey)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
