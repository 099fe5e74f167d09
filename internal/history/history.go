// Package history keeps an optional, persistent log of computed day differences.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// History represents the persistent calculation history
type History struct {
	Version     string    `json:"version"`
	LastUpdated time.Time `json:"last_updated"`
	Entries     []Entry   `json:"entries"`

	mu         sync.RWMutex
	filePath   string
	maxEntries int
	modified   bool
}

// Entry is a single calculation. From and Till hold the raw inputs; the
// values actually used are kept alongside.
type Entry struct {
	From       string    `json:"from"`
	Till       string    `json:"till"`
	UsedFrom   string    `json:"used_from"`
	UsedTill   string    `json:"used_till"`
	Clamped    bool      `json:"clamped"`
	Mode       string    `json:"mode"`
	Days       int       `json:"days"`
	ComputedAt time.Time `json:"computed_at"`
}

// Load loads the history from a JSON file at the specified path.
// Returns an empty history if the file doesn't exist.
// maxEntries bounds the number of entries kept on Add; values below 1 disable trimming.
func Load(filePath string, maxEntries int) (*History, error) {
	h := &History{
		Version:    "1",
		Entries:    []Entry{},
		filePath:   filePath,
		maxEntries: maxEntries,
	}

	// If file doesn't exist, return empty history
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return h, nil
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- filePath comes from application config
	if err != nil {
		return nil, fmt.Errorf("failed to read history file from %s: %w", filePath, err)
	}

	if err := json.Unmarshal(data, h); err != nil {
		return nil, fmt.Errorf("failed to parse history file %s: %w", filePath, err)
	}

	return h, nil
}

// Save writes the history to its JSON file atomically.
// Does nothing if the history has not been modified since the last save.
func (h *History) Save() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.saveUnlocked()
}

// saveUnlocked performs the save operation without acquiring the lock
// Caller must hold the lock
func (h *History) saveUnlocked() error {
	if !h.modified {
		return nil
	}

	h.LastUpdated = time.Now()

	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history for %s: %w", h.filePath, err)
	}

	// Atomic write: write to temp file, then rename
	dir := filepath.Dir(h.filePath)
	tmpFile, err := os.CreateTemp(dir, "history-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in directory %s for history %s: %w", dir, h.filePath, err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()    // Best effort cleanup
		_ = os.Remove(tmpPath) // Best effort cleanup
		return fmt.Errorf("failed to write temp file %s for history %s: %w", tmpPath, h.filePath, err)
	}

	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()    // Best effort cleanup
		_ = os.Remove(tmpPath) // Best effort cleanup
		return fmt.Errorf("failed to sync temp file %s for history %s: %w", tmpPath, h.filePath, err)
	}

	_ = tmpFile.Close() // Already synced

	if err := os.Rename(tmpPath, h.filePath); err != nil {
		_ = os.Remove(tmpPath) // Best effort cleanup
		return fmt.Errorf("failed to rename temp file %s to %s: %w", tmpPath, h.filePath, err)
	}

	h.modified = false
	return nil
}

// Add appends an entry, dropping the oldest entries beyond the configured maximum.
// The change is kept in memory until Save is called.
func (h *History) Add(e Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.Entries = append(h.Entries, e)
	if h.maxEntries > 0 && len(h.Entries) > h.maxEntries {
		h.Entries = append([]Entry(nil), h.Entries[len(h.Entries)-h.maxEntries:]...)
	}
	h.modified = true
}

// GetAll returns a copy of all entries, oldest first.
func (h *History) GetAll() []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	result := make([]Entry, len(h.Entries))
	copy(result, h.Entries)
	return result
}

// Count returns the number of recorded entries.
func (h *History) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.Entries)
}

// FilePath returns the file backing this history.
func (h *History) FilePath() string {
	return h.filePath
}

// Delete removes the history file from disk and clears in-memory entries.
// A missing file is not an error.
func (h *History) Delete() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.Remove(h.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete history file %s: %w", h.filePath, err)
	}

	h.Entries = []Entry{}
	h.modified = false
	return nil
}
