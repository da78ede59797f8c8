package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/photostudio/internal/common"
	"github.com/dmitrijs2005/photostudio/internal/plans"
)

func TestQuota_NoActiveSession(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.quota.Remaining(ctx)
	require.ErrorIs(t, err, common.ErrNoActiveSession)

	_, err = f.quota.TryConsumeImage(ctx)
	require.ErrorIs(t, err, common.ErrNoActiveSession)

	_, err = f.quota.TryConsumeVideoSeconds(ctx, 5)
	require.ErrorIs(t, err, common.ErrNoActiveSession)
}

func TestQuota_ImageAllowanceExhausts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.auth.SignUp(ctx, "Ada", "ada@example.com", "secret")
	require.NoError(t, err)

	// Free tier includes 3 images.
	for i := 0; i < 3; i++ {
		ok, err := f.quota.TryConsumeImage(ctx)
		require.NoError(t, err)
		require.True(t, ok, "consume %d", i+1)
	}

	ok, err := f.quota.TryConsumeImage(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	// Rejection did not mutate usage.
	rem, err := f.quota.Remaining(ctx)
	require.NoError(t, err)
	require.Zero(t, rem.Images)
	require.Equal(t, 3, f.projector.Current().ImagesUsed)
}

func TestQuota_VideoWholeRequestRejection(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.auth.SignUp(ctx, "Ada", "ada@example.com", "secret")
	require.NoError(t, err)

	// Free tier includes 5 video seconds; a 6-second request is rejected
	// outright, no partial consumption.
	ok, err := f.quota.TryConsumeVideoSeconds(ctx, 6)
	require.NoError(t, err)
	require.False(t, ok)

	rem, err := f.quota.Remaining(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, rem.VideoSeconds)

	ok, err = f.quota.TryConsumeVideoSeconds(ctx, 5)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = f.quota.TryConsumeVideoSeconds(ctx, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestQuota_VideoSecondsMustBePositive(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.auth.SignUp(ctx, "Ada", "ada@example.com", "secret")
	require.NoError(t, err)

	_, err = f.quota.TryConsumeVideoSeconds(ctx, 0)
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = f.quota.TryConsumeVideoSeconds(ctx, -3)
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestQuota_PlanSwitchUnblocks(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.auth.SignUp(ctx, "Ada", "ada@example.com", "secret")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		ok, err := f.quota.TryConsumeImage(ctx)
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, err := f.quota.TryConsumeImage(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = f.auth.SwitchPlan(ctx, plans.TierStarter)
	require.NoError(t, err)

	ok, err = f.quota.TryConsumeImage(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	rem, err := f.quota.Remaining(ctx)
	require.NoError(t, err)
	require.Equal(t, 99, rem.Images)
	require.Equal(t, plans.TierStarter, rem.Plan.Name)
}

func TestQuota_ConsumptionSurvivesRestart(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	view, err := f.auth.SignUp(ctx, "Ada", "ada@example.com", "secret")
	require.NoError(t, err)

	ok, err := f.quota.TryConsumeImage(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	// A fresh projector over the same database restores the updated view.
	restored := NewSessionProjector(f.sessions)
	got, err := restored.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, view.Email, got.Email)
	require.Equal(t, 1, got.ImagesUsed)
}
