package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectMatch(t *testing.T) {
	items := []Item{
		{URI: "uri:1", Name: "Abbey Road (Remastered)"},
		{URI: "uri:2", Name: "Abbey Road"},
		{URI: "uri:3", Name: "abbey road live"},
	}

	t.Run("exact match beats order", func(t *testing.T) {
		item, exact := selectMatch(items, "ABBEY ROAD")
		assert.True(t, exact)
		assert.Equal(t, "uri:2", item.URI)
	})

	t.Run("first exact match wins on ties", func(t *testing.T) {
		tied := []Item{
			{URI: "uri:a", Name: "Help!"},
			{URI: "uri:b", Name: "help!"},
		}
		item, exact := selectMatch(tied, "help!")
		assert.True(t, exact)
		assert.Equal(t, "uri:a", item.URI)
	})

	t.Run("no exact match falls back to first item", func(t *testing.T) {
		item, exact := selectMatch(items, "abbey")
		assert.False(t, exact)
		assert.Equal(t, "uri:1", item.URI)
	})
}

func TestFindSubstring(t *testing.T) {
	items := []Item{
		{URI: "uri:1", Name: "Deep Focus"},
		{URI: "uri:2", Name: "Morning Focus Session"},
	}

	t.Run("case-insensitive containment", func(t *testing.T) {
		item, ok := findSubstring(items, "FOCUS")
		assert.True(t, ok)
		assert.Equal(t, "uri:1", item.URI)
	})

	t.Run("no containment", func(t *testing.T) {
		_, ok := findSubstring(items, "sleep")
		assert.False(t, ok)
	})

	t.Run("unnamed items are skipped", func(t *testing.T) {
		_, ok := findSubstring([]Item{{URI: "uri:x"}}, "")
		assert.False(t, ok)
	})
}
