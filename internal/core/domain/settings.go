package domain

import "strings"

// Settings holds the effective configuration after merging defaults,
// the config file and the environment. CLI flags override it per run.
type Settings struct {
	// Picker is the program used to choose among several candidates.
	Picker string
	// NixpkgsFlake is the flake reference used when no channel is active.
	NixpkgsFlake string
	// CacheLevel controls what is persisted in the choice cache.
	CacheLevel CacheLevel
	// Confirm asks for confirmation before running a resolved executable.
	Confirm bool
	// UseChannel selects the channel-based package source over the flake.
	UseChannel bool
	// IndexDatabase is the nix-index database file checked for freshness.
	IndexDatabase string
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		Picker:       DefaultPicker,
		NixpkgsFlake: DefaultNixpkgsFlake,
		CacheLevel:   CachePath,
	}
}

// Source returns the package source the settings select.
func (s Settings) Source() PackageSource {
	return PackageSource{Flake: s.NixpkgsFlake, Channel: s.UseChannel}
}

// UsesChannel reports whether a NIX_PATH value points at a nixpkgs channel.
func UsesChannel(nixPath string) bool {
	return strings.Contains(nixPath, "nixpkgs=")
}

// PackageSource describes where package identifiers are resolved from.
type PackageSource struct {
	// Flake is the flake reference, e.g. "nixpkgs" or "github:NixOS/nixpkgs/nixos-unstable".
	Flake string
	// Channel selects the <nixpkgs> channel from NIX_PATH instead of Flake.
	Channel bool
}
