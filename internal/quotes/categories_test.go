package quotes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/dixit/internal/model"
	"github.com/Makepad-fr/dixit/internal/quotes"
)

func TestCategoriesFirstOccurrenceOrder(t *testing.T) {
	dir := t.TempDir()
	seedQuotes(t, dir, []model.Quote{
		{Text: "1", Category: "A"},
		{Text: "2", Category: "B"},
		{Text: "3", Category: "A"},
		{Text: "4"},
	})

	s := newStore(t, dir)
	assert.Equal(t, []string{"A", "B"}, s.Categories())
}

func TestCategoriesEmptyCollection(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, `[]`)
	s := newStore(t, dir)
	assert.Empty(t, s.Categories())
}

func TestSelectedCategoryDefaultsToAll(t *testing.T) {
	s := newStore(t, t.TempDir())
	assert.Equal(t, quotes.AllCategories, s.SelectedCategory())
}

func TestSelectedCategoryRoundTrip(t *testing.T) {
	s := newStore(t, t.TempDir())

	s.SetSelectedCategory("Wisdom")
	assert.Equal(t, "Wisdom", s.SelectedCategory())

	s.SetSelectedCategory(quotes.AllCategories)
	assert.Equal(t, quotes.AllCategories, s.SelectedCategory())
}

func TestSelectedCategorySurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	s := newStore(t, dir)
	s.SetSelectedCategory("Teamwork")

	reopened := newStore(t, dir)
	assert.Equal(t, "Teamwork", reopened.SelectedCategory())
}

func TestSelectedCategoryStaleValueDegradesToAll(t *testing.T) {
	dir := t.TempDir()
	s := newStore(t, dir, quotes.WithConfirmer(yes()))
	s.SetSelectedCategory("Wisdom")
	require.Equal(t, "Wisdom", s.SelectedCategory())

	// wipe the collection; "Wisdom" no longer names anything
	require.True(t, s.ClearAll())
	assert.Equal(t, quotes.AllCategories, s.SelectedCategory())
}
