package cache

import (
	"github.com/adrg/xdg"
	"go.trai.ch/comma/internal/core/domain"
	"go.trai.ch/comma/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileLoader implements ports.CacheLoader for the per-user state file.
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader for the state file in the XDG state directory.
func NewFileLoader() *FileLoader {
	return &FileLoader{path: ""}
}

// NewFileLoaderWithPath creates a loader for the state file at path.
func NewFileLoaderWithPath(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load reads the state file and returns the cache it holds.
func (l *FileLoader) Load() (ports.ChoiceCache, error) {
	path := l.path
	if path == "" {
		p, err := xdg.StateFile(domain.StateFileName)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrCacheLoad.Error())
		}
		path = p
	}

	store, err := LoadStore(path)
	if err != nil {
		return nil, err
	}
	return store, nil
}
