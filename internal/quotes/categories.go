package quotes

import (
	"github.com/charmbracelet/log"
)

// AllCategories is the sentinel meaning "do not filter".
const AllCategories = "all"

// Categories returns the distinct non-empty categories in
// first-occurrence order. The set is derived from the collection on
// every call; it is never stored.
func (s *Store) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, q := range s.quotes {
		if q.Category == "" || seen[q.Category] {
			continue
		}
		seen[q.Category] = true
		out = append(out, q.Category)
	}
	return out
}

// SelectedCategory returns the remembered category filter. A remembered
// value that no longer matches any quote degrades to AllCategories.
func (s *Store) SelectedCategory() string {
	var v string
	if !s.durable.Get(keySelected, &v) {
		return AllCategories
	}
	if v == AllCategories {
		return AllCategories
	}
	for _, c := range s.Categories() {
		if c == v {
			return v
		}
	}
	return AllCategories
}

// SetSelectedCategory remembers the category filter across runs.
func (s *Store) SetSelectedCategory(v string) {
	if err := s.durable.Put(keySelected, v); err != nil {
		log.Warn("could not persist selected category", "err", err)
	}
}
