// Package storage persists the aggregate as a single JSON document.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/hammamikhairi/culinarycompanion/internal/domain"
	"github.com/hammamikhairi/culinarycompanion/internal/logger"
)

// Compile-time interface check.
var _ domain.StateStore = (*FileStore)(nil)

// FileStore keeps the whole aggregate in one JSON file, overwritten on
// every save. Last writer wins; there is no partial-write protection.
type FileStore struct {
	path string
	log  *logger.Logger
}

// NewFileStore creates a store writing to the given path.
func NewFileStore(path string, log *logger.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// rawState mirrors AppState with pointer fields so that missing top-level
// fields can default independently of one another.
type rawState struct {
	Recipes    *[]domain.Recipe     `json:"recipes"`
	Inventory  *[]domain.Ingredient `json:"inventory"`
	CustomTags *[]string            `json:"customTags"`
	Categories *[]string            `json:"categories"`
}

// Load reads the persisted document. An absent file yields the default
// aggregate; a corrupt one degrades to the default aggregate with only a
// diagnostic log. Load never returns an error for either case.
func (s *FileStore) Load(ctx context.Context) (*domain.AppState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug("no state file at %s, starting fresh", s.path)
		} else {
			s.log.Warn("reading state file %s: %v (using defaults)", s.path, err)
		}
		return domain.NewDefaultState(), nil
	}

	var raw rawState
	if err := json.Unmarshal(data, &raw); err != nil {
		s.log.Warn("state file %s is corrupt: %v (using defaults)", s.path, err)
		return domain.NewDefaultState(), nil
	}

	// Each field defaults on its own, not all-or-nothing.
	state := domain.NewDefaultState()
	if raw.Recipes != nil {
		state.Recipes = *raw.Recipes
	}
	if raw.Inventory != nil {
		state.Inventory = *raw.Inventory
	}
	if raw.CustomTags != nil {
		state.CustomTags = *raw.CustomTags
	}
	if raw.Categories != nil {
		state.Categories = *raw.Categories
	}

	s.log.Debug("loaded state: %d recipes, %d inventory items", len(state.Recipes), len(state.Inventory))
	return state, nil
}

// Save overwrites the persisted document with the full aggregate.
func (s *FileStore) Save(ctx context.Context, state *domain.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating state dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}

	s.log.Debug("saved state to %s (%d bytes)", s.path, len(data))
	return nil
}

// ExportFilename returns the dated export file name.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("culinary-companion-export-%s.json", now.Format("2006-01-02"))
}

// ExportToFile writes the aggregate as pretty-printed JSON into dir, named
// with the current date. Returns the written path.
func ExportToFile(state *domain.AppState, dir string, now time.Time) (string, error) {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding export: %w", err)
	}

	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating export dir: %w", err)
		}
	}
	path := filepath.Join(dir, ExportFilename(now))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

// ImportFromFile reads a previously exported document and returns it as a
// replacement aggregate, verbatim. Unlike Load there is no defaulting: a
// file that cannot be read or parsed fails with ErrInvalidImport and the
// caller's state stays untouched.
func ImportFromFile(path string) (*domain.AppState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImport, err)
	}

	var state domain.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImport, err)
	}
	return &state, nil
}
