package services

import (
	"database/sql"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/photostudio/internal/logging"
	"github.com/dmitrijs2005/photostudio/internal/repositories/blobs"
	"github.com/dmitrijs2005/photostudio/internal/repositories/directory"
	"github.com/dmitrijs2005/photostudio/internal/repositories/session"

	_ "modernc.org/sqlite"
)

// fixture wires the full service stack over a shared in-memory database.
type fixture struct {
	db        *sql.DB
	users     directory.Repository
	blobs     blobs.Repository
	sessions  session.Repository
	projector *SessionProjector
	auth      *AuthService
	quota     *QuotaLedger
	gallery   *GalleryManager
	clk       *clock.Mock
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db, err := sql.Open("sqlite", "file:services?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS app_state (key TEXT PRIMARY KEY, value BLOB NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS media_blobs (key TEXT PRIMARY KEY, data BLOB NOT NULL)`,
		`DELETE FROM app_state`,
		`DELETE FROM media_blobs`,
	} {
		_, err = db.Exec(stmt)
		require.NoError(t, err)
	}

	log := logging.NewDefault("error")
	users := directory.NewSQLiteRepository(db)
	blobRepo := blobs.NewSQLiteRepository(db)
	sessions := session.NewSQLiteRepository(db)
	projector := NewSessionProjector(sessions)
	clk := clock.NewMock()

	return &fixture{
		db:        db,
		users:     users,
		blobs:     blobRepo,
		sessions:  sessions,
		projector: projector,
		auth:      NewAuthService(users, projector, log),
		quota:     NewQuotaLedger(users, projector, log),
		gallery:   NewGalleryManager(users, blobRepo, projector, clk, log, t.TempDir()),
		clk:       clk,
	}
}
