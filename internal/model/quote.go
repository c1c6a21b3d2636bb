package model

import "strings"

// Quote is the domain model for one saved quote.
// There is no identity beyond the text itself; two quotes with the
// same text are considered the same quote.
type Quote struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// Normalize trims whitespace on all fields and returns the result.
func (q Quote) Normalize() Quote {
	return Quote{
		Text:     strings.TrimSpace(q.Text),
		Author:   strings.TrimSpace(q.Author),
		Category: strings.TrimSpace(q.Category),
	}
}

// Valid reports whether the quote has usable text after trimming.
func (q Quote) Valid() bool {
	return strings.TrimSpace(q.Text) != ""
}

// Defaults returns the built-in starter quotes used when storage is
// empty or unreadable.
func Defaults() []Quote {
	return []Quote{
		{Text: "The best way to predict the future is to create it.", Author: "Peter Drucker", Category: "Inspiration"},
		{Text: "Knowing yourself is the beginning of all wisdom.", Author: "Aristotle", Category: "Wisdom"},
		{Text: "Alone we can do so little; together we can do so much.", Author: "Helen Keller", Category: "Teamwork"},
	}
}

// FromUnknown converts one decoded JSON value into a Quote. It accepts
// only objects with a non-empty string "text"; "author" and "category"
// are coerced to trimmed strings, anything else becomes "".
func FromUnknown(v any) (Quote, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return Quote{}, false
	}
	text, ok := obj["text"].(string)
	if !ok || strings.TrimSpace(text) == "" {
		return Quote{}, false
	}
	q := Quote{Text: text}
	if a, ok := obj["author"].(string); ok {
		q.Author = a
	}
	if c, ok := obj["category"].(string); ok {
		q.Category = c
	}
	return q.Normalize(), true
}

// FilterUnknown keeps the well-formed elements of a decoded JSON array,
// silently dropping the rest.
func FilterUnknown(items []any) []Quote {
	out := make([]Quote, 0, len(items))
	for _, v := range items {
		if q, ok := FromUnknown(v); ok {
			out = append(out, q)
		}
	}
	return out
}
