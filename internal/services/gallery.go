package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/photostudio/internal/common"
	"github.com/dmitrijs2005/photostudio/internal/filex"
	"github.com/dmitrijs2005/photostudio/internal/logging"
	"github.com/dmitrijs2005/photostudio/internal/models"
	"github.com/dmitrijs2005/photostudio/internal/repositories/blobs"
	"github.com/dmitrijs2005/photostudio/internal/repositories/directory"
)

// GalleryManager maintains the active user's catalog of saved artifacts and
// keeps it in lockstep with the blob store: a catalog entry exists iff its
// blob does. Blob writes happen before catalog writes; blob-delete failures
// during removal are logged and swallowed so catalog consistency wins over
// storage reclamation.
type GalleryManager struct {
	users     directory.Repository
	blobs     blobs.Repository
	projector *SessionProjector
	clk       clock.Clock
	log       logging.Logger
	cacheDir  string

	mu      sync.Mutex
	lastID  int64
	handles []*Handle
}

// NewGalleryManager constructs a manager. The clock is injected so tests can
// control the timestamp-derived item ids.
func NewGalleryManager(users directory.Repository, blobRepo blobs.Repository, projector *SessionProjector, clk clock.Clock, log logging.Logger, cacheDir string) *GalleryManager {
	return &GalleryManager{
		users:     users,
		blobs:     blobRepo,
		projector: projector,
		clk:       clk,
		log:       log,
		cacheDir:  cacheDir,
	}
}

// AddParams describes a new gallery item.
type AddParams struct {
	Kind   models.ItemKind
	Prompt string
	// NarrationScript accompanies video items only.
	NarrationScript string
	Data            []byte
}

// BlobKey derives the deterministic blob key for an item of the given user.
// One key belongs to exactly one item.
func BlobKey(email string, itemID int64) string {
	return fmt.Sprintf("%s-%d", email, itemID)
}

// nextID returns a timestamp-derived id, bumped past the previous one when
// the clock has not advanced.
func (g *GalleryManager) nextID() int64 {
	id := g.clk.Now().UTC().UnixNano()
	if id <= g.lastID {
		id = g.lastID + 1
	}
	g.lastID = id
	return id
}

func (g *GalleryManager) activeUser(ctx context.Context) (*models.User, error) {
	current := g.projector.Current()
	if current == nil {
		return nil, common.ErrNoActiveSession
	}
	user, err := g.users.FindByEmail(ctx, current.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", current.Email, common.ErrNotFound)
	}
	return user, nil
}

// Add stores the binary payload and appends a new catalog entry. If the blob
// write fails nothing is added; if the catalog write fails the blob is
// removed again so no orphan survives.
func (g *GalleryManager) Add(ctx context.Context, p AddParams) (*models.GalleryItem, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	user, err := g.activeUser(ctx)
	if err != nil {
		return nil, err
	}

	id := g.nextID()
	key := BlobKey(user.Email, id)

	if err := g.blobs.Put(ctx, key, p.Data); err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	item := models.GalleryItem{
		ID:              id,
		Kind:            p.Kind,
		Prompt:          p.Prompt,
		NarrationScript: p.NarrationScript,
		BlobKey:         key,
		CreatedAt:       g.clk.Now().UTC().Format(time.RFC3339),
	}
	user.Gallery = append(user.Gallery, item)

	if err := g.users.Upsert(ctx, user); err != nil {
		if delErr := g.blobs.Delete(ctx, key); delErr != nil {
			g.log.Warn(ctx, "orphaned blob after failed catalog write", "key", key, "error", delErr)
		}
		return nil, fmt.Errorf("persist gallery: %w", err)
	}

	if _, err := g.projector.Publish(ctx, user); err != nil {
		return nil, err
	}

	g.log.Info(ctx, "gallery item added", "email", user.Email, "id", id, "kind", p.Kind)
	return &item, nil
}

// Remove deletes the item with the given id and its blob. Unknown ids are a
// no-op, so repeated removal is safe. A failing blob delete is logged but
// does not block the catalog update.
func (g *GalleryManager) Remove(ctx context.Context, itemID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	user, err := g.activeUser(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, item := range user.Gallery {
		if item.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	if err := g.blobs.Delete(ctx, user.Gallery[idx].BlobKey); err != nil {
		g.log.Warn(ctx, "failed to delete blob, removing catalog entry anyway",
			"key", user.Gallery[idx].BlobKey, "error", err)
	}

	user.Gallery = append(user.Gallery[:idx], user.Gallery[idx+1:]...)
	if err := g.users.Upsert(ctx, user); err != nil {
		return fmt.Errorf("persist gallery: %w", err)
	}

	if _, err := g.projector.Publish(ctx, user); err != nil {
		return err
	}

	g.log.Info(ctx, "gallery item removed", "email", user.Email, "id", itemID)
	return nil
}

// List resolves the active user's items, most recent id first, into transient
// display handles. Handles from the previous List call are released first so
// repeated refreshes do not accumulate materialized files.
func (g *GalleryManager) List(ctx context.Context) ([]*Handle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	user, err := g.activeUser(ctx)
	if err != nil {
		return nil, err
	}

	g.releaseAllLocked(ctx)

	items := append([]models.GalleryItem(nil), user.Gallery...)
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })

	dir, err := filex.EnsureDir(g.cacheDir)
	if err != nil {
		return nil, err
	}

	handles := make([]*Handle, 0, len(items))
	for _, item := range items {
		data, err := g.blobs.Get(ctx, item.BlobKey)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				g.log.Warn(ctx, "catalog entry without blob, skipping", "key", item.BlobKey)
				continue
			}
			return nil, fmt.Errorf("resolve blob %s: %w", item.BlobKey, err)
		}

		path := filepath.Join(dir, uuid.New().String()+extFor(item.Kind))
		if err := os.WriteFile(path, data, 0o660); err != nil {
			return nil, fmt.Errorf("materialize %s: %w", item.BlobKey, err)
		}
		handles = append(handles, &Handle{Item: item, Path: path})
	}

	g.handles = handles
	return handles, nil
}

// ReleaseAll frees every handle from the last List call. Call on teardown.
func (g *GalleryManager) ReleaseAll(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.releaseAllLocked(ctx)
}

func (g *GalleryManager) releaseAllLocked(ctx context.Context) {
	for _, h := range g.handles {
		if err := h.Release(); err != nil {
			g.log.Warn(ctx, "failed to release display handle", "path", h.Path, "error", err)
		}
	}
	g.handles = nil
}

func extFor(kind models.ItemKind) string {
	if kind == models.ItemKindVideo {
		return ".mp4"
	}
	return ".png"
}

// Handle is a transient on-disk materialization of one gallery item, valid
// until released or until the next List call.
type Handle struct {
	Item models.GalleryItem
	Path string

	once sync.Once
}

// Release removes the materialized file. Safe to call more than once.
func (h *Handle) Release() error {
	var err error
	h.once.Do(func() {
		if rmErr := os.Remove(h.Path); rmErr != nil && !os.IsNotExist(rmErr) {
			err = rmErr
		}
	})
	return err
}
