package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheLoad is returned when the choice cache state file exists but cannot be read or decoded.
	ErrCacheLoad = zerr.New("failed to load choice cache")

	// ErrCacheWrite is returned when the choice cache cannot be written back to its state file.
	ErrCacheWrite = zerr.New("failed to write choice cache")

	// ErrNoMatch is returned when the package index knows no package providing the command.
	ErrNoMatch = zerr.New("no package provides this executable")

	// ErrIndexQueryFailed is returned when the package index query tool fails or cannot be started.
	ErrIndexQueryFailed = zerr.New("package index query failed")

	// ErrPickerSpawn is returned when the interactive picker program cannot be started.
	ErrPickerSpawn = zerr.New("failed to start picker")

	// ErrPickerOutput is returned when the picker produced output that is not valid text.
	ErrPickerOutput = zerr.New("picker produced invalid output")

	// ErrNoSelection is returned when the user aborted the interactive selection.
	ErrNoSelection = zerr.New("no package selected")

	// ErrBuildFailed is returned when the package manager did not produce a usable executable.
	ErrBuildFailed = zerr.New("failed to build package")

	// ErrProcessLookup is returned when the process table cannot be read for a pid.
	ErrProcessLookup = zerr.New("failed to read process table")

	// ErrExecFailed is returned when replacing the current process image fails.
	ErrExecFailed = zerr.New("failed to execute program")

	// ErrNoCommand is returned when no command was given to resolve.
	ErrNoCommand = zerr.New("no command specified")

	// ErrUnknownMode is returned when a dispatch mode is not recognized.
	ErrUnknownMode = zerr.New("unknown dispatch mode")

	// ErrInvalidCacheLevel is returned when a cache level string is not one of none, choice or path.
	ErrInvalidCacheLevel = zerr.New("invalid cache level, expected 'none', 'choice' or 'path'")

	// ErrInvalidLogFormat is returned when the log format is not one of pretty or json.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'pretty' or 'json'")

	// ErrConfigRead is returned when the config file exists but cannot be read.
	ErrConfigRead = zerr.New("failed to read config file")

	// ErrConfigParse is returned when the config file cannot be parsed.
	ErrConfigParse = zerr.New("failed to parse config file")

	// ErrInvalidConfigValue is returned when an environment override has an invalid value.
	ErrInvalidConfigValue = zerr.New("invalid configuration value")
)
