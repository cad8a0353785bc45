package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const prefsFile = "prefs.json"

// Prefs are the display toggles remembered between sessions.
type Prefs struct {
	Radians bool   `json:"radians"`
	Decimal bool   `json:"decimal"`
	Game    string `json:"game,omitempty"`
}

// Store reads and writes Prefs in one directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// DefaultStore keeps prefs under the user config directory.
func DefaultStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStore(filepath.Join(dir, "guesstimate")), nil
}

func (s *Store) path() string { return filepath.Join(s.dir, prefsFile) }

// Save writes p atomically.
func (s *Store) Save(p Prefs) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path())
}

// Load returns the stored prefs. A missing file yields ok == false.
func (s *Store) Load() (p Prefs, ok bool, err error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return Prefs{}, false, nil
		}
		return Prefs{}, false, err
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Prefs{}, false, err
	}
	return p, true, nil
}
