// Package incremental implements the sidecar completion cache that lets a
// scan run skip files it already processed successfully in a prior run.
package incremental

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// DefaultFilename is the cache's default location, relative to a corpus
// root.
const DefaultFilename = ".seams-cache.json"

// Entry records when a file was last completed and how many sentences it
// produced.
type Entry struct {
	CompletedAt string `json:"completed_at"`
	Sentences   int    `json:"sentences"`
}

// Cache is a JSON-backed map from source path to Entry. It is safe for
// concurrent use by dispatcher workers.
type Cache struct {
	path    string
	mu      sync.Mutex
	entries map[string]Entry
	dirty   bool
}

// Load reads path if it exists, or returns an empty Cache bound to path if
// it does not.
func Load(path string) (*Cache, error) {
	c := &Cache{path: path, entries: make(map[string]Entry)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("incremental: loading %s: %w", path, err)
	}
	if len(data) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(data, &c.entries); err != nil {
		return nil, fmt.Errorf("incremental: parsing %s: %w", path, err)
	}
	return c, nil
}

// Skip reports whether path already has a completion entry.
func (c *Cache) Skip(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[path]
	return ok
}

// Record stores (or overwrites) the completion entry for path. It does not
// write the cache to disk; call Save once per run.
func (c *Cache) Record(path string, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = entry
	c.dirty = true
}

// Save writes the cache to its backing file if anything changed since it
// was loaded (or since the last Save).
func (c *Cache) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty {
		return nil
	}

	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("incremental: marshaling cache: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("incremental: writing %s: %w", c.path, err)
	}
	c.dirty = false
	return nil
}
