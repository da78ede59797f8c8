package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/photostudio/internal/common"
	"github.com/dmitrijs2005/photostudio/internal/logging"
	"github.com/dmitrijs2005/photostudio/internal/models"
	"github.com/dmitrijs2005/photostudio/internal/plans"
	"github.com/dmitrijs2005/photostudio/internal/repositories/directory"
)

// QuotaLedger tracks per-user consumption against the active plan's included
// allowances and gates paid generation calls.
//
// Quota exhaustion is an expected, user-recoverable condition, so the
// TryConsume predicates report it as a plain false rather than an error.
// The mutex serializes check-then-increment within this process; cross-process
// writers are not coordinated.
type QuotaLedger struct {
	users     directory.Repository
	projector *SessionProjector
	log       logging.Logger

	mu sync.Mutex
}

// NewQuotaLedger constructs a ledger over the given directory and projector.
func NewQuotaLedger(users directory.Repository, projector *SessionProjector, log logging.Logger) *QuotaLedger {
	return &QuotaLedger{users: users, projector: projector, log: log}
}

// Remaining summarizes what the active user may still consume.
type Remaining struct {
	Plan         plans.Plan
	Images       int
	VideoSeconds int
}

// activeUser resolves the durable record behind the current session.
func (q *QuotaLedger) activeUser(ctx context.Context) (*models.User, plans.Plan, error) {
	current := q.projector.Current()
	if current == nil {
		return nil, plans.Plan{}, common.ErrNoActiveSession
	}

	user, err := q.users.FindByEmail(ctx, current.Email)
	if err != nil {
		return nil, plans.Plan{}, err
	}
	if user == nil {
		return nil, plans.Plan{}, fmt.Errorf("user %s: %w", current.Email, common.ErrNotFound)
	}

	plan, ok := plans.ByTier(user.Plan)
	if !ok {
		return nil, plans.Plan{}, fmt.Errorf("plan tier %q: %w", user.Plan, common.ErrInvalidInput)
	}
	return user, plan, nil
}

// Remaining returns the unconsumed allowances of the active user without
// mutating anything. The presentation layer uses it to pre-gate provider
// calls.
func (q *QuotaLedger) Remaining(ctx context.Context) (Remaining, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	user, plan, err := q.activeUser(ctx)
	if err != nil {
		return Remaining{}, err
	}
	return Remaining{
		Plan:         plan,
		Images:       plan.ImagesIncluded - user.ImagesUsed,
		VideoSeconds: plan.VideoSecondsIncluded - user.VideoSecondsUsed,
	}, nil
}

// TryConsumeImage records one image generation. Returns false without
// mutation when the image allowance is exhausted.
func (q *QuotaLedger) TryConsumeImage(ctx context.Context) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	user, plan, err := q.activeUser(ctx)
	if err != nil {
		return false, err
	}

	if user.ImagesUsed >= plan.ImagesIncluded {
		q.log.Debug(ctx, "image quota exhausted", "email", user.Email, "used", user.ImagesUsed)
		return false, nil
	}

	user.ImagesUsed++
	if err := q.persist(ctx, user); err != nil {
		return false, err
	}
	return true, nil
}

// TryConsumeVideoSeconds records seconds of video generation. The whole
// request is rejected (false, no mutation) when usage plus the requested
// amount would exceed the allowance; there is no partial consumption.
func (q *QuotaLedger) TryConsumeVideoSeconds(ctx context.Context, seconds int) (bool, error) {
	if seconds <= 0 {
		return false, fmt.Errorf("seconds must be positive: %w", common.ErrInvalidInput)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	user, plan, err := q.activeUser(ctx)
	if err != nil {
		return false, err
	}

	if user.VideoSecondsUsed+seconds > plan.VideoSecondsIncluded {
		q.log.Debug(ctx, "video quota exhausted", "email", user.Email,
			"used", user.VideoSecondsUsed, "requested", seconds)
		return false, nil
	}

	user.VideoSecondsUsed += seconds
	if err := q.persist(ctx, user); err != nil {
		return false, err
	}
	return true, nil
}

func (q *QuotaLedger) persist(ctx context.Context, user *models.User) error {
	if err := q.users.Upsert(ctx, user); err != nil {
		return fmt.Errorf("persist usage: %w", err)
	}
	if _, err := q.projector.Publish(ctx, user); err != nil {
		return err
	}
	return nil
}
