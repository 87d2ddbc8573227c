package ports

import "go.trai.ch/comma/internal/core/domain"

// ChoiceCache is the in-memory view of the persistent command -> package mapping.
//
// Mutations only mark the cache dirty; nothing reaches the disk until Flush is called.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ChoiceCache interface {
	// Active reports whether the cache persists anything. A disabled cache
	// answers every query with a miss and ignores mutations.
	Active() bool

	// Query looks up the entry for command. It has no side effects.
	Query(command string) (domain.CacheEntry, bool)

	// Update replaces the entry for command.
	Update(command string, entry domain.CacheEntry)

	// Delete removes the entry for command, if any.
	Delete(command string)

	// Clear removes every entry.
	Clear()

	// Flush writes the mapping to disk if it was mutated since the last flush.
	Flush() error
}

// CacheLoader opens the persistent choice cache.
type CacheLoader interface {
	// Load reads the state file. A missing file yields an empty cache.
	// A corrupt or unreadable file returns an error wrapping domain.ErrCacheLoad.
	Load() (ChoiceCache, error)
}
