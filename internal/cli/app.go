package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/benbjohnson/clock"

	"github.com/dmitrijs2005/photostudio/internal/config"
	"github.com/dmitrijs2005/photostudio/internal/logging"
	"github.com/dmitrijs2005/photostudio/internal/providers"
	"github.com/dmitrijs2005/photostudio/internal/providers/fal"
	"github.com/dmitrijs2005/photostudio/internal/repositories/blobs"
	"github.com/dmitrijs2005/photostudio/internal/repositories/directory"
	"github.com/dmitrijs2005/photostudio/internal/repositories/session"
	"github.com/dmitrijs2005/photostudio/internal/services"
	"github.com/dmitrijs2005/photostudio/internal/storage"
)

// App is the interactive studio client. It owns the database handle and the
// service stack built over it.
type App struct {
	cfg       *config.Config
	log       logging.Logger
	db        *sql.DB
	auth      *services.AuthService
	quota     *services.QuotaLedger
	gallery   *services.GalleryManager
	projector *services.SessionProjector

	images providers.ImageGenerator
	videos providers.VideoGenerator

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database, seeds the demo account, and wires the
// service stack and the generation provider.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, cfg.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	users := directory.NewSQLiteRepository(db)
	if err := users.Seed(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed directory: %w", err)
	}

	projector := services.NewSessionProjector(session.NewSQLiteRepository(db))
	blobRepo := blobs.NewSQLiteRepository(db)

	var opts []fal.Option
	if cfg.FalBaseURL != "" {
		opts = append(opts, fal.WithBaseURL(cfg.FalBaseURL))
	}
	provider := fal.NewClient(cfg.FalAPIKey, opts...)

	return &App{
		cfg:       cfg,
		log:       log,
		db:        db,
		auth:      services.NewAuthService(users, projector, log),
		quota:     services.NewQuotaLedger(users, projector, log),
		gallery:   services.NewGalleryManager(users, blobRepo, projector, clock.New(), log, cfg.CacheDir),
		projector: projector,
		images:    provider,
		videos:    provider,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run restores the previous session, starts the REPL, and blocks until the
// user exits.
func (a *App) Run(ctx context.Context) error {
	view, err := a.projector.Restore(ctx)
	if err != nil {
		return err
	}
	if view != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", view.Name)
	}

	defer a.Close(ctx)
	a.Main(ctx)
	return nil
}

// Close releases materialized gallery handles and the database handle.
func (a *App) Close(ctx context.Context) {
	a.gallery.ReleaseAll(ctx)
	if err := a.db.Close(); err != nil {
		a.log.Warn(ctx, "failed to close database", "error", err)
	}
}

func (a *App) isSignedIn() bool {
	return a.projector.Current() != nil
}

// promptName shows who is signed in inside the REPL prompt.
func (a *App) promptName() string {
	if view := a.projector.Current(); view != nil {
		return view.Email
	}
	return "guest"
}
