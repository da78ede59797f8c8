// Package services contains the application services of the PhotoStudio
// core: session projection, the auth coordinator, the quota ledger, and the
// gallery manager. Services compose the repositories; the presentation layer
// talks only to services and never sees a full user record.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/photostudio/internal/models"
	"github.com/dmitrijs2005/photostudio/internal/repositories/session"
)

// SessionProjector derives the credential-free session view of a user record
// and keeps it in two places: an in-memory copy for fast reads and a durable
// "current session" slot so an app restart can restore the active identity.
//
// Writes to the session slot never feed back into the user directory; only
// the coordinator's explicit update path mutates durable records.
type SessionProjector struct {
	sessions session.Repository

	mu      sync.RWMutex
	current *models.SessionUser
}

// NewSessionProjector constructs a projector over the given session slot.
func NewSessionProjector(sessions session.Repository) *SessionProjector {
	return &SessionProjector{sessions: sessions}
}

// Publish projects user to its session view, persists the slot, and makes the
// view current. The returned view never carries credential material.
func (p *SessionProjector) Publish(ctx context.Context, user *models.User) (*models.SessionUser, error) {
	view := user.Session()
	if err := p.sessions.Save(ctx, view); err != nil {
		return nil, fmt.Errorf("publish session: %w", err)
	}

	p.mu.Lock()
	p.current = view
	p.mu.Unlock()

	return view, nil
}

// Clear removes the session slot and forgets the in-memory view.
func (p *SessionProjector) Clear(ctx context.Context) error {
	if err := p.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	p.mu.Lock()
	p.current = nil
	p.mu.Unlock()

	return nil
}

// Restore reads the session slot at startup and, when present, makes it the
// current view. Returns nil when no session was stored.
func (p *SessionProjector) Restore(ctx context.Context) (*models.SessionUser, error) {
	view, err := p.sessions.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if view == nil {
		return nil, nil
	}

	p.mu.Lock()
	p.current = view
	p.mu.Unlock()

	return view, nil
}

// Current returns the active session view, or nil when signed out.
func (p *SessionProjector) Current() *models.SessionUser {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}
