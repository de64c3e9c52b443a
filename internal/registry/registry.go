// Package registry tracks shims installed by wrapitsh so they can be
// listed later. Records describe shim locations only; removing a
// record never touches the shim on disk.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

type Entry struct {
	ShimPath    string    `json:"shim_path"`
	Target      string    `json:"target"`
	Kind        string    `json:"kind"`
	InstalledAt time.Time `json:"installed_at"`
}

type Store struct {
	Entries []Entry `json:"entries"`
}

func Load(path string) (Store, error) {
	var store Store

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store, nil
		}
		return store, fmt.Errorf("read shim registry: %w", err)
	}

	if len(data) == 0 {
		return store, nil
	}

	if err := json.Unmarshal(data, &store); err != nil {
		return store, fmt.Errorf("decode shim registry: %w", err)
	}

	return store, nil
}

func (s Store) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create registry dir: %w", err)
	}

	sorted := append([]Entry(nil), s.Entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ShimPath < sorted[j].ShimPath
	})

	data, err := json.MarshalIndent(Store{Entries: sorted}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode shim registry: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write shim registry: %w", err)
	}

	return nil
}

// Upsert records a shim, replacing any previous record for the same
// path.
func (s *Store) Upsert(entry Entry) {
	for i, existing := range s.Entries {
		if existing.ShimPath == entry.ShimPath {
			s.Entries[i] = entry
			return
		}
	}
	s.Entries = append(s.Entries, entry)
}

// RemoveByPath forgets the record for a shim path.
func (s *Store) RemoveByPath(path string) (Entry, bool) {
	for i, entry := range s.Entries {
		if entry.ShimPath == path {
			s.Entries = append(s.Entries[:i], s.Entries[i+1:]...)
			return entry, true
		}
	}
	return Entry{}, false
}
