package platforms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup_CaseInsensitive(t *testing.T) {
	s, ok := Lookup(" Instagram ")
	require.True(t, ok)
	require.Equal(t, "Instagram", s.Name)

	_, ok = Lookup("myspace")
	require.False(t, ok)
}

func TestAspectRatio(t *testing.T) {
	tests := []struct {
		platform  string
		kind      string
		placement string
		want      string
	}{
		{"instagram", "image", "story", "9:16"},
		{"youtube", "video", "feed", "16:9"},
		{"tiktok", "video", "feed", "9:16"},
		{"twitter", "image", "cover", "3:1"},
		{"instagram", "image", "bogus", "1:1"},
		{"unknown", "image", "feed", "1:1"},
	}
	for _, tc := range tests {
		got := AspectRatio(tc.platform, tc.kind, tc.placement)
		require.Equal(t, tc.want, got, "%s/%s/%s", tc.platform, tc.kind, tc.placement)
	}
}

func TestNames_CoversAllPlatforms(t *testing.T) {
	names := Names()
	require.Len(t, names, 5)
	for _, n := range names {
		_, ok := Lookup(n)
		require.True(t, ok)
	}
}
