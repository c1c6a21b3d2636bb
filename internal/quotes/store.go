package quotes

import (
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/dixit/internal/model"
	"github.com/Makepad-fr/dixit/internal/store/jsonstore"
)

// Storage keys. The v1 suffix leaves room to change the quote encoding
// without silently misreading old data.
const (
	keyQuotes    = "dq_quotes_v1"
	keySelected  = "dq_selectedCategory"
	keyLastQuote = "dq_last_quote"
)

var (
	ErrEmptyText    = errors.New("quote text is empty")
	ErrNotArray     = errors.New("import data is not a JSON array")
	ErrNoValidItems = errors.New("no usable quotes in import")
	ErrNoMatch      = errors.New("no quotes match the selected category")
)

// Confirmer answers yes/no questions on behalf of the user. The CLI
// wires a stdin prompt, the TUI an inline key prompt, tests a canned
// answer.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// Store owns the in-memory quote collection and keeps durable storage
// in sync after every mutation. It is not safe for concurrent use;
// the program is single-threaded by construction.
type Store struct {
	durable *jsonstore.Store
	session *jsonstore.Store
	quotes  []model.Quote
	rng     *rand.Rand
	confirm Confirmer
}

// Option tunes a Store at construction time.
type Option func(*Store)

// WithRand replaces the selection random source, for deterministic
// tests.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) { s.rng = r }
}

// WithConfirmer injects the yes/no capability used by duplicate adds,
// duplicate-only imports and clear-all.
func WithConfirmer(c Confirmer) Option {
	return func(s *Store) { s.confirm = c }
}

// New hydrates a Store from durable storage. Absent or malformed data
// falls back to the built-in defaults rather than blocking startup;
// individually malformed elements inside an otherwise valid array are
// dropped.
func New(durable, session *jsonstore.Store, opts ...Option) *Store {
	s := &Store{
		durable: durable,
		session: session,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		confirm: ConfirmerFunc(func(string) bool { return false }),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.quotes = s.hydrate()
	return s
}

func (s *Store) hydrate() []model.Quote {
	var raw any
	if !s.durable.Get(keyQuotes, &raw) {
		log.Debug("no stored quotes, starting with defaults")
		return model.Defaults()
	}
	arr, ok := raw.([]any)
	if !ok {
		log.Warn("stored quotes are not an array, starting with defaults")
		return model.Defaults()
	}
	return model.FilterUnknown(arr)
}

// Quotes returns a copy of the collection in insertion order.
func (s *Store) Quotes() []model.Quote {
	out := make([]model.Quote, len(s.quotes))
	copy(out, s.quotes)
	return out
}

// Len returns the number of stored quotes.
func (s *Store) Len() int { return len(s.quotes) }

func (s *Store) hasText(text string) bool {
	for _, q := range s.quotes {
		if q.Text == text {
			return true
		}
	}
	return false
}

// persist writes the whole collection back to durable storage. A
// failed write is a warning, not an error: the in-memory collection
// stays authoritative for the rest of the process.
func (s *Store) persist() {
	if err := s.durable.Put(keyQuotes, s.quotes); err != nil {
		log.Warn("could not persist quotes", "err", err)
	}
}

func (s *Store) rememberShown(q model.Quote) {
	if err := s.session.Put(keyLastQuote, q); err != nil {
		log.Warn("could not record last shown quote", "err", err)
	}
}

// Add appends one quote. Empty text (after trimming) is ErrEmptyText
// and leaves the collection untouched. An exact-text duplicate needs
// confirmation; a declined duplicate is a no-op with added=false. The
// added quote becomes the session's last shown quote.
func (s *Store) Add(candidate model.Quote) (added bool, err error) {
	q := candidate.Normalize()
	if q.Text == "" {
		return false, ErrEmptyText
	}
	if s.hasText(q.Text) {
		if !s.confirm.Confirm("This quote already exists. Add it anyway?") {
			return false, nil
		}
	}
	s.quotes = append(s.quotes, q)
	s.persist()
	s.rememberShown(q)
	return true, nil
}

// ImportBatch merges decoded JSON into the collection. Non-array input
// is ErrNotArray; an array with no usable elements is ErrNoValidItems.
// Items whose text is already present count as duplicates. When the
// batch contains nothing new, confirmation appends the entire filtered
// set (append-all, matching the interactive "add anyway" semantics of
// Add); otherwise only the new items are appended. Returns the number
// of quotes actually added.
func (s *Store) ImportBatch(raw any) (int, error) {
	arr, ok := raw.([]any)
	if !ok {
		return 0, ErrNotArray
	}
	valid := model.FilterUnknown(arr)
	if len(valid) == 0 {
		return 0, ErrNoValidItems
	}

	// "New" means not already in the collection. Repeats inside the
	// batch itself are kept, so an exported file re-imports losslessly.
	var fresh []model.Quote
	for _, q := range valid {
		if !s.hasText(q.Text) {
			fresh = append(fresh, q)
		}
	}

	toAdd := fresh
	if len(fresh) == 0 {
		if !s.confirm.Confirm("All imported quotes already exist. Add them anyway?") {
			return 0, nil
		}
		toAdd = valid
	}

	s.quotes = append(s.quotes, toAdd...)
	s.persist()
	return len(toAdd), nil
}

// ClearAll wipes the collection after confirmation and persists the
// empty list. The session's last shown quote goes with it; it would
// point at data that no longer exists. Returns false when the user
// declines.
func (s *Store) ClearAll() bool {
	if !s.confirm.Confirm("Delete ALL quotes? This cannot be undone.") {
		return false
	}
	s.quotes = []model.Quote{}
	s.persist()
	if err := s.session.Delete(keyLastQuote); err != nil {
		log.Warn("could not clear last shown quote", "err", err)
	}
	return true
}
