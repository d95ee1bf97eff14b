// Package history provides a thin bbolt wrapper for the nimbus query log.
//
// The log is an intentional accumulator, not a cache: every successful
// current-conditions fetch appends one entry, and entries persist until the
// user clears them. Separate from the payload cache on purpose — the cache
// answers "is this fresh", the log answers "what did I look up".
//
// Buckets:
//
//	queries — log entries keyed by RFC3339Nano timestamp
//	_meta   — internal: schema version, created_at
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Current schema version. Bump when bucket layout or key format changes.
const schemaVersion = 1

var (
	bucketQueries  = []byte("queries")
	bucketInternal = []byte("_meta")
)

// Entry is one logged lookup.
type Entry struct {
	When      time.Time `json:"when"`
	Query     string    `json:"query"` // "" means IP auto-detect
	Location  string    `json:"location"`
	TempC     float64   `json:"temp_c"`
	Condition string    `json:"condition"`
	CacheHit  bool      `json:"cache_hit"`
}

// Store wraps a bbolt database.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the bbolt database at path. Parent directories
// are created automatically; the schema is migrated on every open.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating db directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening db %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the filesystem path of the open database.
func (s *Store) Path() string {
	return s.db.Path()
}

// migrate ensures all buckets exist and the schema version is recorded.
func (s *Store) migrate() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketQueries, bucketInternal} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("creating bucket %s: %w", name, err)
			}
		}
		meta := tx.Bucket(bucketInternal)
		if meta.Get([]byte("schema_version")) == nil {
			if err := meta.Put([]byte("schema_version"), []byte(fmt.Sprintf("%d", schemaVersion))); err != nil {
				return err
			}
			if err := meta.Put([]byte("created_at"), []byte(time.Now().UTC().Format(time.RFC3339))); err != nil {
				return err
			}
		}
		return nil
	})
}

// Append logs one entry, stamping When if unset. Timestamp keys keep the
// bucket in chronological order for free.
func (s *Store) Append(e Entry) error {
	if e.When.IsZero() {
		e.When = time.Now().UTC()
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding history entry: %w", err)
	}
	key := []byte(e.When.UTC().Format(time.RFC3339Nano))
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketQueries).Put(key, data)
	})
}

// List returns the most recent entries, newest first, at most limit
// (limit <= 0 means all).
func (s *Store) List(limit int) ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketQueries).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return err
			}
			entries = append(entries, e)
			if limit > 0 && len(entries) >= limit {
				break
			}
		}
		return nil
	})
	return entries, err
}

// Stats returns the entry count and approximate byte size of the log.
func (s *Store) Stats() (count int, bytes int64, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketQueries).ForEach(func(k, v []byte) error {
			count++
			bytes += int64(len(k) + len(v))
			return nil
		})
	})
	return count, bytes, err
}

// Clear deletes every logged entry.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketQueries); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		_, err := tx.CreateBucket(bucketQueries)
		return err
	})
}
