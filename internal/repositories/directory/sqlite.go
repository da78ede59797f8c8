// Package directory persists the user directory as one JSON-serialized map
// (email -> full user record) under a single app_state row.
//
// The whole map is read, modified, and written back on every update. That is
// acceptable for a single-writer local client; concurrent writers would see
// last-write-wins with no lost-update detection.
package directory

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/photostudio/internal/cryptox"
	"github.com/dmitrijs2005/photostudio/internal/dbx"
	"github.com/dmitrijs2005/photostudio/internal/models"
	"github.com/dmitrijs2005/photostudio/internal/plans"
)

// storageKey is the app_state row holding the serialized directory.
const storageKey = "user_directory"

// Demo account credentials, seeded on first use.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password"
	demoName     = "Demo User"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// withTx runs fn inside a transaction when the repository holds a root
// handle. A repository already bound to a transaction runs fn on it directly.
func (r *SQLiteRepository) withTx(ctx context.Context, fn func(ctx context.Context, q dbx.DBTX) error) error {
	if db, ok := r.db.(*sql.DB); ok {
		return dbx.WithTx(ctx, db, nil, fn)
	}
	return fn(ctx, r.db)
}

func load(ctx context.Context, q dbx.DBTX) (map[string]*models.User, error) {
	var raw []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, storageKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return map[string]*models.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user directory: %w", err)
	}

	users := map[string]*models.User{}
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("failed to decode user directory: %w", err)
	}
	return users, nil
}

func save(ctx context.Context, q dbx.DBTX, users map[string]*models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode user directory: %w", err)
	}
	_, err = q.ExecContext(ctx, `
		INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, storageKey, raw)
	if err != nil {
		return fmt.Errorf("failed to save user directory: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := load(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return users[email], nil
}

// Upsert replaces the record keyed by the user's email. The load-modify-save
// cycle runs in one transaction so a concurrent writer on the same handle
// cannot interleave between read and write.
func (r *SQLiteRepository) Upsert(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	return r.withTx(ctx, func(ctx context.Context, q dbx.DBTX) error {
		users, err := load(ctx, q)
		if err != nil {
			return err
		}
		users[user.Email] = user
		return save(ctx, q, users)
	})
}

func (r *SQLiteRepository) Seed(ctx context.Context) error {
	return r.withTx(ctx, func(ctx context.Context, q dbx.DBTX) error {
		users, err := load(ctx, q)
		if err != nil {
			return err
		}
		if len(users) > 0 {
			return nil
		}

		salt := cryptox.NewSalt()
		demo := &models.User{
			Email:    DemoEmail,
			Name:     demoName,
			Salt:     salt,
			Verifier: cryptox.MakeVerifier([]byte(DemoPassword), salt),
			Picture:  models.AvatarURL(demoName),
			Plan:     plans.TierFree,
			Gallery:  []models.GalleryItem{},
		}
		users[demo.Email] = demo
		return save(ctx, q, users)
	})
}
