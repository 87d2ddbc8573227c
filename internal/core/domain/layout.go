package domain

import "time"

const (
	// AppName is the name used for per-user config directories.
	AppName = "comma"

	// StateFileName is the name of the choice cache file in the XDG state directory.
	StateFileName = "comma-choices"

	// ConfigFileName is the name of the optional config file in the XDG config directory.
	ConfigFileName = "config.yaml"

	// IndexDirName is the nix-index cache directory name.
	IndexDirName = "nix-index"

	// IndexFileName is the nix-index database file name.
	IndexFileName = "files"

	// DefaultPicker is the picker program used when none is configured.
	DefaultPicker = "fzy"

	// DefaultNixpkgsFlake is the flake reference used when none is configured.
	DefaultNixpkgsFlake = "nixpkgs"

	// DefaultShell is opened when no known shell is found in the process ancestry.
	DefaultShell = "bash"

	// IndexMaxAge is the age after which the nix-index database is reported as stale.
	IndexMaxAge = 30 * 24 * time.Hour

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// Environment variables read by comma.
const (
	EnvPicker        = "COMMA_PICKER"
	EnvNixpkgsFlake  = "COMMA_NIXPKGS_FLAKE"
	EnvCacheLevel    = "COMMA_CACHE_LEVEL"
	EnvConfirm       = "COMMA_CONFIRM"
	EnvNixPath       = "NIX_PATH"
	EnvIndexDatabase = "NIX_INDEX_DATABASE"
)
