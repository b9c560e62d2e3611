package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/homeglue/spotify-home-search/internal/app/services/search"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		kind     search.Kind
		expected string
	}{
		{
			name:     "strips play prefix",
			raw:      "Play Bohemian Rhapsody",
			kind:     search.KindTrack,
			expected: "bohemian rhapsody",
		},
		{
			name:     "strips artist fillers",
			raw:      "play the band Radiohead",
			kind:     search.KindArtist,
			expected: "the radiohead",
		},
		{
			name:     "strips album filler",
			raw:      "play the album Lateralus",
			kind:     search.KindAlbum,
			expected: "the lateralus",
		},
		{
			name:     "strips song and track fillers",
			raw:      "play the song Karma Police",
			kind:     search.KindTrack,
			expected: "the karma police",
		},
		{
			name:     "strips playlist fillers",
			raw:      "play my workout playlist",
			kind:     search.KindUserPlaylist,
			expected: "my workout",
		},
		{
			name:     "collapses whitespace",
			raw:      "  play   Daft  Punk ",
			kind:     search.KindArtist,
			expected: "daft punk",
		},
		{
			name:     "play mid-query is preserved",
			raw:      "Let Me Play Among the Stars",
			kind:     search.KindTrack,
			expected: "let me play among the stars",
		},
		{
			name:     "already clean query is untouched",
			raw:      "TWICE",
			kind:     search.KindArtist,
			expected: "twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, search.Normalize(tt.raw, tt.kind))
		})
	}
}
