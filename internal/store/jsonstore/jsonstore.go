package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// JSON-backed key-value storage. One file per key, human-readable,
// portable. No locking for v1; fine for a local single-user tool.
//
// Two scopes exist: a durable store under the user's data dir and a
// session store under a per-shell temp dir that is abandoned when the
// shell exits.

// Store reads and writes JSON values under a root directory.
type Store struct {
	root string
}

// New returns a store rooted at dir. The directory is created lazily
// on first write.
func New(dir string) *Store {
	return &Store{root: dir}
}

// Durable returns the store that survives restarts. Resolution order:
// the DIXIT_DATA_DIR environment variable, then dataDir from config,
// then ~/.dixit.
func Durable(dataDir string) (*Store, error) {
	if env := strings.TrimSpace(os.Getenv("DIXIT_DATA_DIR")); env != "" {
		return New(env), nil
	}
	if dataDir != "" {
		return New(dataDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("home: %w", err)
	}
	return New(filepath.Join(home, ".dixit")), nil
}

// Session returns the store scoped to the current shell session. It
// lives in the OS temp dir keyed by the parent process, so consecutive
// invocations from one shell share it and a new shell starts clean.
// DIXIT_SESSION_DIR overrides the location.
func Session() *Store {
	if env := strings.TrimSpace(os.Getenv("DIXIT_SESSION_DIR")); env != "" {
		return New(env)
	}
	return New(filepath.Join(os.TempDir(), fmt.Sprintf("dixit-session-%d", os.Getppid())))
}

func (s *Store) path(key string) string {
	return filepath.Join(s.root, key+".json")
}

// Get reads and decodes the value stored under key into out. Absence
// and decode failure both report false; callers fall back to their
// defaults either way.
func (s *Store) Get(key string, out any) bool {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(b, out); err != nil {
		log.Debug("discarding unreadable stored value", "key", key, "err", err)
		return false
	}
	return true
}

// Put encodes v and writes it under key. The in-memory value stays the
// source of truth when the write fails; callers log and carry on.
func (s *Store) Put(key string, v any) error {
	// ensure the root exists with owner-only permissions
	if err := os.MkdirAll(s.root, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path(key), b, 0o600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Delete removes the value stored under key. Missing keys are not an
// error.
func (s *Store) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}
