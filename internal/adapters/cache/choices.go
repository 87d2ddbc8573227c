package cache

import (
	"go.trai.ch/comma/internal/core/domain"
	"go.trai.ch/comma/internal/core/ports"
)

// ChoicesOnly wraps a cache so that only the package choice is remembered,
// never the built executable path.
type ChoicesOnly struct {
	inner ports.ChoiceCache
}

// NewChoicesOnly wraps inner.
func NewChoicesOnly(inner ports.ChoiceCache) *ChoicesOnly {
	return &ChoicesOnly{inner: inner}
}

// Active delegates to the wrapped cache.
func (c *ChoicesOnly) Active() bool { return c.inner.Active() }

// Query returns the stored entry without its path.
func (c *ChoicesOnly) Query(command string) (domain.CacheEntry, bool) {
	entry, ok := c.inner.Query(command)
	entry.Path = ""
	return entry, ok
}

// Update stores entry without its path.
func (c *ChoicesOnly) Update(command string, entry domain.CacheEntry) {
	entry.Path = ""
	c.inner.Update(command, entry)
}

// Delete delegates to the wrapped cache.
func (c *ChoicesOnly) Delete(command string) { c.inner.Delete(command) }

// Clear delegates to the wrapped cache.
func (c *ChoicesOnly) Clear() { c.inner.Clear() }

// Flush delegates to the wrapped cache.
func (c *ChoicesOnly) Flush() error { return c.inner.Flush() }
