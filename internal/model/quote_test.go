package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTrimsEveryField(t *testing.T) {
	q := Quote{Text: "  hello  ", Author: " x ", Category: "\tY\n"}.Normalize()
	assert.Equal(t, Quote{Text: "hello", Author: "x", Category: "Y"}, q)
}

func TestValid(t *testing.T) {
	assert.True(t, Quote{Text: "a"}.Valid())
	assert.False(t, Quote{Text: "   "}.Valid())
	assert.False(t, Quote{Author: "x"}.Valid())
}

func TestDefaultsCategories(t *testing.T) {
	defaults := Defaults()
	require.Len(t, defaults, 3)
	var cats []string
	for _, q := range defaults {
		assert.True(t, q.Valid())
		assert.NotEmpty(t, q.Author)
		cats = append(cats, q.Category)
	}
	assert.Equal(t, []string{"Inspiration", "Wisdom", "Teamwork"}, cats)
}

func TestFromUnknown(t *testing.T) {
	q, ok := FromUnknown(map[string]any{"text": " hi ", "author": " me ", "category": "Z"})
	require.True(t, ok)
	assert.Equal(t, Quote{Text: "hi", Author: "me", Category: "Z"}, q)

	// non-string author/category coerce to ""
	q, ok = FromUnknown(map[string]any{"text": "hi", "author": 42, "category": []any{"x"}})
	require.True(t, ok)
	assert.Equal(t, Quote{Text: "hi"}, q)

	_, ok = FromUnknown(map[string]any{"text": "   "})
	assert.False(t, ok)
	_, ok = FromUnknown(map[string]any{"author": "no text"})
	assert.False(t, ok)
	_, ok = FromUnknown("just a string")
	assert.False(t, ok)
	_, ok = FromUnknown(nil)
	assert.False(t, ok)
}

func TestFilterUnknownDropsJunkSilently(t *testing.T) {
	out := FilterUnknown([]any{
		map[string]any{"text": "keep me"},
		map[string]any{"text": 7},
		"nope",
		nil,
		map[string]any{"text": "me too", "category": "C"},
	})
	require.Len(t, out, 2)
	assert.Equal(t, "keep me", out[0].Text)
	assert.Equal(t, "me too", out[1].Text)
}
