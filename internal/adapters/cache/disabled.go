package cache

import "go.trai.ch/comma/internal/core/domain"

// Disabled is the cache used when caching is turned off or the state file
// could not be loaded. It remembers nothing.
type Disabled struct{}

// Active reports that nothing is persisted.
func (Disabled) Active() bool { return false }

// Query always misses.
func (Disabled) Query(string) (domain.CacheEntry, bool) { return domain.CacheEntry{}, false }

// Update does nothing.
func (Disabled) Update(string, domain.CacheEntry) {}

// Delete does nothing.
func (Disabled) Delete(string) {}

// Clear does nothing.
func (Disabled) Clear() {}

// Flush does nothing.
func (Disabled) Flush() error { return nil }
