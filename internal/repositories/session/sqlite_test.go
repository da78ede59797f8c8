package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/photostudio/internal/models"
	"github.com/dmitrijs2005/photostudio/internal/plans"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:sessionrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS app_state (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM app_state`)
	require.NoError(t, err)
	return db
}

func TestLoad_EmptySlot(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	view, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, view)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	in := &models.SessionUser{
		Email:      "ada@example.com",
		Name:       "Ada",
		Plan:       plans.TierCreator,
		ImagesUsed: 3,
		Gallery:    []models.GalleryItem{{ID: 9, Kind: models.ItemKindImage, Prompt: "p", BlobKey: "ada@example.com-9"}},
	}
	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestSave_ReplacesSlot(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &models.SessionUser{Email: "first@example.com"}))
	require.NoError(t, repo.Save(ctx, &models.SessionUser{Email: "second@example.com"}))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "second@example.com", out.Email)
}

func TestClear(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &models.SessionUser{Email: "ada@example.com"}))
	require.NoError(t, repo.Clear(ctx))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, out)

	// Clearing an empty slot is a no-op.
	require.NoError(t, repo.Clear(ctx))
}
