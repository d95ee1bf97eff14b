// Package cache implements the size-bounded, TTL-based disk cache for
// provider payloads. One file per (query, language, kind) tuple under a
// dedicated subdirectory of the platform cache directory. Writes are atomic
// (temp file + rename) so a concurrent reader never observes a partial
// payload.
package cache

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// TTLs per data kind. Air quality moves slower than weather.
const (
	WeatherTTL = 15 * time.Minute
	AirTTL     = 30 * time.Minute
)

// MaxEntries bounds the cache size: after each write the oldest entries
// beyond this count are pruned.
const MaxEntries = 64

const subdir = "nimbus"

// DefaultDir resolves the platform cache directory for nimbus without
// creating it.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolving cache directory: %w", err)
	}
	return filepath.Join(base, subdir), nil
}

// Cache is a handle on the cache directory.
type Cache struct {
	dir string
}

// Open resolves (or accepts) the cache directory and creates it if absent.
// A directory that cannot be created is a fatal, unretried error.
func Open(dir string) (*Cache, error) {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory %s: %w", dir, err)
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache directory path.
func (c *Cache) Dir() string {
	return c.dir
}

// Key builds the deterministic cache filename for a query. The empty query
// means IP auto-detection and shares the "auto" slot per language, so
// repeated runs from one host reuse one entry. An empty lang omits its
// suffix; kind distinguishes payload types (e.g. "aqi").
func Key(query, lang, kind string) string {
	name := url.QueryEscape(strings.ToLower(strings.TrimSpace(query)))
	if name == "" {
		name = "auto"
	}
	if lang != "" {
		name += "_" + url.QueryEscape(strings.ToLower(lang))
	}
	if kind != "" {
		name += "_" + kind
	}
	return name + ".json"
}

// Path returns the absolute path for a cache key.
func (c *Cache) Path(key string) string {
	return filepath.Join(c.dir, key)
}

// IsValid reports whether the file at path exists and was modified within
// ttl of now. A missing file is simply invalid, not an error.
func (c *Cache) IsValid(path string, ttl time.Duration) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return time.Since(fi.ModTime()) < ttl
}

// Read returns the cached payload at path.
func (c *Cache) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cache entry: %w", err)
	}
	return data, nil
}

// Write stores payload at path atomically, then prunes entries beyond
// MaxEntries (oldest first).
func (c *Cache) Write(path string, payload []byte) error {
	tmp, err := os.CreateTemp(c.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating cache temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing cache entry: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing cache entry: %w", err)
	}
	c.prune()
	return nil
}

// prune removes the oldest entries beyond MaxEntries. Best effort: prune
// failures never fail the write that triggered them.
func (c *Cache) prune() {
	entries, err := c.list()
	if err != nil || len(entries) <= MaxEntries {
		return
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].mod.After(entries[j].mod)
	})
	for _, e := range entries[MaxEntries:] {
		_ = os.Remove(e.path)
	}
}

type entry struct {
	path string
	size int64
	mod  time.Time
}

// list enumerates cache entries, skipping temp files and subdirectories.
func (c *Cache) list() ([]entry, error) {
	dirents, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, err
	}
	var out []entry
	for _, d := range dirents {
		if d.IsDir() || strings.HasPrefix(d.Name(), ".tmp-") {
			continue
		}
		fi, err := d.Info()
		if err != nil {
			continue
		}
		out = append(out, entry{
			path: filepath.Join(c.dir, d.Name()),
			size: fi.Size(),
			mod:  fi.ModTime(),
		})
	}
	return out, nil
}

// Stats returns the entry count and total size on disk.
func (c *Cache) Stats() (count int, bytes int64, err error) {
	entries, err := c.list()
	if err != nil {
		return 0, 0, fmt.Errorf("reading cache directory: %w", err)
	}
	for _, e := range entries {
		bytes += e.size
	}
	return len(entries), bytes, nil
}

// Clear removes every cached entry under dir. Idempotent: clearing an empty
// or nonexistent directory succeeds silently.
func Clear(dir string) error {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return err
		}
	}
	if err := os.RemoveAll(dir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing cache: %w", err)
	}
	return nil
}
