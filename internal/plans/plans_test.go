package plans

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByTier_KnownTiers(t *testing.T) {
	free, ok := ByTier(TierFree)
	require.True(t, ok)
	require.Equal(t, 3, free.ImagesIncluded)
	require.Equal(t, 5, free.VideoSecondsIncluded)
	require.Equal(t, 0, free.Price)

	pro, ok := ByTier(TierPro)
	require.True(t, ok)
	require.Equal(t, 500, pro.ImagesIncluded)
	require.Equal(t, 300, pro.VideoSecondsIncluded)
	require.Equal(t, 50, pro.Price)
}

func TestByTier_Unknown(t *testing.T) {
	_, ok := ByTier(Tier("Platinum"))
	require.False(t, ok)
	require.False(t, Valid(Tier("Platinum")))
}

func TestTiers_OrderedByPrice(t *testing.T) {
	tiers := Tiers()
	require.Len(t, tiers, 4)

	prev := -1
	for _, tier := range tiers {
		p, ok := ByTier(tier)
		require.True(t, ok)
		require.Greater(t, p.Price, prev, "tiers must be in ascending price order")
		prev = p.Price
	}
}
