package quotes

import (
	"github.com/Makepad-fr/dixit/internal/model"
)

// Pick chooses one quote uniformly at random from the quotes matching
// category (AllCategories means the whole collection). Matching is
// exact and case-sensitive; stored values are already trimmed at
// insertion. An empty pool is ErrNoMatch. The chosen quote is recorded
// as the session's last shown quote.
func (s *Store) Pick(category string) (model.Quote, error) {
	var pool []model.Quote
	if category == AllCategories {
		pool = s.quotes
	} else {
		for _, q := range s.quotes {
			if q.Category == category {
				pool = append(pool, q)
			}
		}
	}
	if len(pool) == 0 {
		return model.Quote{}, ErrNoMatch
	}
	chosen := pool[s.rng.Intn(len(pool))]
	s.rememberShown(chosen)
	return chosen, nil
}

// Filtered returns the quotes matching category in insertion order,
// without choosing one.
func (s *Store) Filtered(category string) []model.Quote {
	if category == AllCategories {
		return s.Quotes()
	}
	var out []model.Quote
	for _, q := range s.quotes {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

// LastShown returns the session's most recently displayed quote, if
// one was recorded this shell session.
func (s *Store) LastShown() (model.Quote, bool) {
	var q model.Quote
	if !s.session.Get(keyLastQuote, &q) {
		return model.Quote{}, false
	}
	return q, true
}
