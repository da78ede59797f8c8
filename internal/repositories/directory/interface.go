package directory

import (
	"context"

	"github.com/dmitrijs2005/photostudio/internal/models"
)

// Repository is the user directory: a keyed collection of full user records,
// including credential material. It is the only component allowed to read or
// write stored credentials.
type Repository interface {
	// FindByEmail returns the record for email, or (nil, nil) when absent.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// Upsert inserts or replaces the record keyed by its email.
	Upsert(ctx context.Context, user *models.User) error

	// Seed inserts the demo account when the directory is empty, so demo
	// access flows always succeed. Safe to call repeatedly.
	Seed(ctx context.Context) error
}
