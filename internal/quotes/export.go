package quotes

import (
	"encoding/json"
	"fmt"
)

// ExportJSON encodes the whole collection as pretty-printed JSON, the
// same shape durable storage uses, so an exported file can be imported
// back losslessly.
func (s *Store) ExportJSON() ([]byte, error) {
	b, err := json.MarshalIndent(s.quotes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// ImportJSON decodes file contents and merges them via ImportBatch.
// Content that is not valid JSON at all gets the same treatment as a
// non-array root.
func (s *Store) ImportJSON(data []byte) (int, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, ErrNotArray
	}
	return s.ImportBatch(raw)
}
