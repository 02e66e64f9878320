// Package config provides durable persistence of the backend connection
// settings: the base URL and the role-tier shared secrets that authenticate
// every request.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// settingsFile is the fixed name of the persisted settings record.
const settingsFile = "settings.json"

// Settings holds everything needed to reach the backend.
type Settings struct {
	// BaseURL is the backend root; endpoint paths are concatenated to it
	// verbatim, so callers supply a leading slash themselves.
	BaseURL string `json:"baseUrl"`

	// OwnerPassword is the shared secret for the owner role.
	OwnerPassword string `json:"ownerPassword,omitempty"`

	// UserPassword is the shared secret for the group-admin and user roles.
	UserPassword string `json:"userPassword,omitempty"`
}

// Store persists a single Settings record as a JSON file inside a state
// directory. There is no history and no partial merge: Write replaces the
// whole record.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. The directory is created lazily
// on the first Write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path() string {
	return filepath.Join(s.dir, settingsFile)
}

// Read returns the last-saved settings, or nil when no record exists or the
// persisted bytes are not valid JSON. Corruption is deliberately treated the
// same as absence and never surfaced as an error.
func (s *Store) Read() *Settings {
	buf, err := os.ReadFile(s.path())
	if err != nil {
		return nil
	}
	var cfg Settings
	if err := json.Unmarshal(buf, &cfg); err != nil {
		return nil
	}
	return &cfg
}

// Write replaces the stored record wholesale. No URL validation is
// performed; the settings form owns input checking.
func (s *Store) Write(cfg Settings) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	buf, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(s.path(), buf, 0o600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Clear removes the stored record, reverting Read to absent.
func (s *Store) Clear() error {
	err := os.Remove(s.path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear settings: %w", err)
	}
	return nil
}

// IsReady reports whether enough is stored to attempt any backend call:
// a non-empty base URL plus at least one non-empty secret. Views use this
// as a guard before issuing network requests.
func (s *Store) IsReady() bool {
	cfg := s.Read()
	if cfg == nil {
		return false
	}
	return cfg.BaseURL != "" && (cfg.OwnerPassword != "" || cfg.UserPassword != "")
}
