package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/photostudio/internal/common"
	"github.com/dmitrijs2005/photostudio/internal/plans"
	"github.com/dmitrijs2005/photostudio/internal/repositories/directory"
)

func TestSignUp_ThenSignIn(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	view, err := f.auth.SignUp(ctx, "Ada Lovelace", "ada@example.com", "secret")
	require.NoError(t, err)
	require.NotNil(t, view)
	require.Equal(t, "ada@example.com", view.Email)
	require.Equal(t, "Ada Lovelace", view.Name)
	require.Equal(t, plans.TierFree, view.Plan)
	require.Zero(t, view.ImagesUsed)
	require.Zero(t, view.VideoSecondsUsed)
	require.Empty(t, view.Gallery)
	require.Contains(t, view.Picture, "ui-avatars.com")

	require.NoError(t, f.auth.SignOut(ctx))
	require.Nil(t, f.projector.Current())

	again, err := f.auth.SignIn(ctx, "ada@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, view.Email, again.Email)
	require.Equal(t, again, f.projector.Current())
}

func TestSignUp_DuplicateEmailLeavesDirectoryUnchanged(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.auth.SignUp(ctx, "Ada", "ada@example.com", "secret")
	require.NoError(t, err)

	_, err = f.auth.SignUp(ctx, "Impostor", "ada@example.com", "other")
	require.ErrorIs(t, err, common.ErrAlreadyExists)

	// The original credential and profile still work.
	view, err := f.auth.SignIn(ctx, "ada@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "Ada", view.Name)
}

func TestSignUp_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.auth.SignUp(ctx, "", "ada@example.com", "secret")
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = f.auth.SignUp(ctx, "Ada", "not-an-email", "secret")
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = f.auth.SignUp(ctx, "Ada", "ada@example.com", "")
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestSignIn_UnknownEmail(t *testing.T) {
	f := setup(t)

	_, err := f.auth.SignIn(context.Background(), "nobody@example.com", "pw")
	require.ErrorIs(t, err, common.ErrNotFound)
	require.Nil(t, f.projector.Current())
}

func TestSignIn_WrongPasswordMutatesNothing(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.auth.SignUp(ctx, "Ada", "ada@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, f.auth.SignOut(ctx))

	_, err = f.auth.SignIn(ctx, "ada@example.com", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredential)
	require.Nil(t, f.projector.Current())

	stored, err := f.sessions.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, stored)
}

func TestQuickDemoAccess(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.users.Seed(ctx))

	view, err := f.auth.QuickDemoAccess(ctx)
	require.NoError(t, err)
	require.Equal(t, directory.DemoEmail, view.Email)
	require.Equal(t, plans.TierFree, view.Plan)
}

func TestSwitchPlan_ResetsCounters(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.auth.SignUp(ctx, "Ada", "ada@example.com", "secret")
	require.NoError(t, err)

	ok, err := f.quota.TryConsumeImage(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	view, err := f.auth.SwitchPlan(ctx, plans.TierCreator)
	require.NoError(t, err)
	require.Equal(t, plans.TierCreator, view.Plan)
	require.Zero(t, view.ImagesUsed)
	require.Zero(t, view.VideoSecondsUsed)

	user, err := f.users.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, plans.TierCreator, user.Plan)
	require.Zero(t, user.ImagesUsed)
}

func TestSwitchPlan_SignedOutIsNoOp(t *testing.T) {
	f := setup(t)

	view, err := f.auth.SwitchPlan(context.Background(), plans.TierPro)
	require.NoError(t, err)
	require.Nil(t, view)
}

func TestSwitchPlan_UnknownTier(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.auth.SignUp(ctx, "Ada", "ada@example.com", "secret")
	require.NoError(t, err)

	_, err = f.auth.SwitchPlan(ctx, "platinum")
	require.ErrorIs(t, err, common.ErrInvalidInput)
}
