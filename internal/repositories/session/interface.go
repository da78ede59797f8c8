package session

import (
	"context"

	"github.com/dmitrijs2005/photostudio/internal/models"
)

// Repository persists the "current session" slot: the credential-free view of
// the signed-in user, kept separately from the durable directory so an app
// restart can restore the active identity without re-authenticating.
type Repository interface {
	// Save writes the session slot.
	Save(ctx context.Context, view *models.SessionUser) error

	// Load reads the session slot, returning (nil, nil) when empty.
	Load(ctx context.Context) (*models.SessionUser, error)

	// Clear empties the session slot. Safe to call when already empty.
	Clear(ctx context.Context) error
}
