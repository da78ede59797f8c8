package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/photostudio/internal/models"
	"github.com/dmitrijs2005/photostudio/internal/plans"
)

func TestProjector_PublishStripsCredentialMaterial(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := &models.User{
		Email:    "ada@example.com",
		Name:     "Ada",
		Salt:     []byte("salt"),
		Verifier: []byte("verifier"),
		Plan:     plans.TierFree,
		Gallery:  []models.GalleryItem{},
	}

	view, err := f.projector.Publish(ctx, user)
	require.NoError(t, err)
	require.Equal(t, user.Email, view.Email)
	require.Equal(t, user.Name, view.Name)

	stored, err := f.sessions.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, view.Email, stored.Email)
}

func TestProjector_RestoreEmptySlot(t *testing.T) {
	f := setup(t)

	view, err := f.projector.Restore(context.Background())
	require.NoError(t, err)
	require.Nil(t, view)
	require.Nil(t, f.projector.Current())
}

func TestProjector_RestoreAfterRestart(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := &models.User{Email: "ada@example.com", Name: "Ada", Plan: plans.TierPro}
	_, err := f.projector.Publish(ctx, user)
	require.NoError(t, err)

	fresh := NewSessionProjector(f.sessions)
	require.Nil(t, fresh.Current())

	view, err := fresh.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, view)
	require.Equal(t, "ada@example.com", view.Email)
	require.Equal(t, plans.TierPro, view.Plan)
	require.Equal(t, view, fresh.Current())
}

func TestProjector_ClearForgetsBoth(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.projector.Publish(ctx, &models.User{Email: "ada@example.com", Plan: plans.TierFree})
	require.NoError(t, err)

	require.NoError(t, f.projector.Clear(ctx))
	require.Nil(t, f.projector.Current())

	stored, err := f.sessions.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, stored)
}
