package budget

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// Draft is the persisted estimator state, so a half-finished estimate
// survives quitting the program. Selection state is deliberately not
// part of it.
type Draft struct {
	Estimate  Estimate  `json:"estimate"`
	UpdatedAt time.Time `json:"updated_at"`
}

// draftPath returns the draft file path.
func draftPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "huddle", "budget-draft.json")
}

// LoadDraft attempts to load a saved draft.
// Returns nil if no draft exists or it cannot be parsed.
func LoadDraft() *Draft {
	path := draftPath()

	// Acquire shared (read) lock - blocks if exclusive lock is held
	fileLock := flock.New(path + ".lock")
	if err := fileLock.RLock(); err != nil {
		return nil
	}
	defer fileLock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var draft Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil
	}

	return &draft
}

// SaveDraft writes the draft, creating the cache directory if needed.
// Failures are returned but callers treat them as non-fatal: a lost
// draft costs a few keystrokes, not data.
func SaveDraft(e Estimate) error {
	path := draftPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	// Acquire exclusive lock so concurrent huddle instances cannot
	// interleave writes
	fileLock := flock.New(path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return err
	}
	defer fileLock.Unlock()

	draft := Draft{Estimate: e, UpdatedAt: time.Now()}
	data, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ClearDraft removes a saved draft if present.
func ClearDraft() error {
	path := draftPath()

	fileLock := flock.New(path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return err
	}
	defer fileLock.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
