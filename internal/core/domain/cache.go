// Package domain contains the core types of the command resolution pipeline.
package domain

import "strings"

// CacheEntry is one resolved command as persisted in the choice cache.
type CacheEntry struct {
	// Derivation is the package identifier, e.g. "nixpkgs.hello". Never empty.
	Derivation string
	// Path is the absolute path of the built executable. Empty when the
	// package has not been built yet or the path was dropped.
	Path string
}

// HasPath reports whether the entry carries a resolved executable path.
func (e CacheEntry) HasPath() bool {
	return e.Path != ""
}

// PackageChoice is the result of resolving a command, before dispatch.
type PackageChoice struct {
	Derivation string
	Path       string
}

// NewPackageChoice creates a choice for a freshly resolved derivation with no known path.
func NewPackageChoice(derivation string) PackageChoice {
	return PackageChoice{Derivation: derivation}
}

// ChoiceFromEntry converts a cached entry into a package choice.
func ChoiceFromEntry(e CacheEntry) PackageChoice {
	return PackageChoice{Derivation: e.Derivation, Path: e.Path}
}

// Entry converts the choice into its persistent form.
func (c PackageChoice) Entry() CacheEntry {
	return CacheEntry{Derivation: c.Derivation, Path: c.Path}
}

// WithPath returns a copy of the choice carrying the given executable path.
func (c PackageChoice) WithPath(path string) PackageChoice {
	c.Path = path
	return c
}

// AttrName returns the segment after the final '.' of the derivation, which is
// the attribute name understood by the install subcommand.
func (c PackageChoice) AttrName() string {
	if i := strings.LastIndexByte(c.Derivation, '.'); i >= 0 {
		return c.Derivation[i+1:]
	}
	return c.Derivation
}

// CacheLevel controls how much of a resolution is persisted.
type CacheLevel int

const (
	// CacheNone disables the choice cache entirely.
	CacheNone CacheLevel = iota
	// CacheChoice persists the chosen derivation but never the built path.
	CacheChoice
	// CachePath persists both the derivation and the built path.
	CachePath
)

// String returns the flag representation of the level.
func (l CacheLevel) String() string {
	switch l {
	case CacheNone:
		return "none"
	case CacheChoice:
		return "choice"
	case CachePath:
		return "path"
	default:
		return "unknown"
	}
}

// ParseCacheLevel parses the flag representation of a cache level.
// Numeric levels 0, 1 and 2 are accepted as aliases.
func ParseCacheLevel(s string) (CacheLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off", "0":
		return CacheNone, nil
	case "choice", "1":
		return CacheChoice, nil
	case "path", "", "2":
		return CachePath, nil
	default:
		return CacheNone, ErrInvalidCacheLevel
	}
}
