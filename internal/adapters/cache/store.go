// Package cache persists the package picked for each command between invocations.
package cache

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/comma/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ChoiceCache backed by a single state file.
// Mutations stay in memory until Flush writes the whole mapping back.
type Store struct {
	path      string
	entries   map[string]domain.CacheEntry
	dirty     bool
	writeFile func(path string, data []byte) error
}

// LoadStore reads the state file at path. A missing file yields an empty store.
func LoadStore(path string) (*Store, error) {
	s := &Store{
		path:      filepath.Clean(path),
		entries:   make(map[string]domain.CacheEntry),
		writeFile: atomicWriteFile,
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheLoad.Error()), "path", s.path)
	}

	entries, err := decode(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheLoad.Error()), "path", s.path)
	}
	s.entries = entries

	return s, nil
}

// Active reports that choices are persisted.
func (s *Store) Active() bool {
	return true
}

// Query returns the entry stored for command.
func (s *Store) Query(command string) (domain.CacheEntry, bool) {
	entry, ok := s.entries[command]
	return entry, ok
}

// Update replaces the entry for command.
func (s *Store) Update(command string, entry domain.CacheEntry) {
	s.entries[command] = entry
	s.dirty = true
}

// Delete removes the entry for command. The store is marked dirty even if
// nothing was stored, so the state file is rewritten on the next flush.
func (s *Store) Delete(command string) {
	delete(s.entries, command)
	s.dirty = true
}

// Clear removes every entry.
func (s *Store) Clear() {
	clear(s.entries)
	s.dirty = true
}

// Flush writes the mapping to the state file if it changed since the last
// successful flush.
func (s *Store) Flush() error {
	if !s.dirty {
		return nil
	}

	if err := s.writeFile(s.path, encode(s.entries)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWrite.Error()), "path", s.path)
	}

	s.dirty = false
	return nil
}

// atomicWriteFile writes data to a temp file next to path and renames it into place.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, domain.StateFileName+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.PrivateFilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
