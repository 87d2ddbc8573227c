// Package config loads comma's settings from defaults, the user's config file
// and the environment.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/adrg/xdg"
	"go.trai.ch/comma/internal/core/domain"
	"go.trai.ch/comma/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger

	configPath string
	cacheHome  string
	lookupEnv  func(string) (string, bool)

	once     sync.Once
	settings domain.Settings
	err      error
}

// NewLoader creates a Loader using the XDG base directories and the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:    logger,
		cacheHome: xdg.CacheHome,
		lookupEnv: os.LookupEnv,
	}
}

// NewLoaderWithPaths creates a Loader with an explicit config file, cache
// home and environment lookup (used for testing).
func NewLoaderWithPaths(
	logger ports.Logger,
	configPath, cacheHome string,
	lookupEnv func(string) (string, bool),
) *Loader {
	return &Loader{
		Logger:     logger,
		configPath: configPath,
		cacheHome:  cacheHome,
		lookupEnv:  lookupEnv,
	}
}

// Load merges defaults, the config file and the environment, in that order.
// The result of the first call is returned by every later call.
func (l *Loader) Load() (domain.Settings, error) {
	l.once.Do(func() {
		l.settings, l.err = l.load()
	})
	return l.settings, l.err
}

func (l *Loader) load() (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if err := l.applyFile(&settings); err != nil {
		return settings, err
	}

	if err := l.applyEnv(&settings); err != nil {
		return settings, err
	}

	return settings, nil
}

func (l *Loader) findConfigFile() string {
	if l.configPath != "" {
		return l.configPath
	}

	path, err := xdg.SearchConfigFile(filepath.Join(domain.AppName, domain.ConfigFileName))
	if err != nil {
		return ""
	}
	return path
}

func (l *Loader) applyFile(settings *domain.Settings) error {
	path := l.findConfigFile()
	if path == "" {
		return nil
	}

	//nolint:gosec // path is the user's own config file
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigRead.Error()), "path", path)
	}

	var cfg fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParse.Error()), "path", path)
	}

	if cfg.Picker != nil && *cfg.Picker != "" {
		settings.Picker = *cfg.Picker
	}
	if cfg.NixpkgsFlake != nil && *cfg.NixpkgsFlake != "" {
		settings.NixpkgsFlake = *cfg.NixpkgsFlake
	}
	if cfg.CacheLevel != nil {
		level, err := domain.ParseCacheLevel(*cfg.CacheLevel)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigParse.Error()), "path", path)
		}
		settings.CacheLevel = level
	}
	if cfg.Confirm != nil {
		settings.Confirm = *cfg.Confirm
	}

	if l.Logger != nil {
		l.Logger.Debug("loaded config from " + path)
	}

	return nil
}

func (l *Loader) applyEnv(settings *domain.Settings) error {
	if v, ok := l.lookupEnv(domain.EnvPicker); ok && v != "" {
		settings.Picker = v
	}

	if v, ok := l.lookupEnv(domain.EnvNixpkgsFlake); ok && v != "" {
		settings.NixpkgsFlake = v
	}

	if v, ok := l.lookupEnv(domain.EnvCacheLevel); ok {
		level, err := domain.ParseCacheLevel(v)
		if err != nil {
			return envError(err, domain.EnvCacheLevel, v)
		}
		settings.CacheLevel = level
	}

	if v, ok := l.lookupEnv(domain.EnvConfirm); ok && v != "" {
		confirm, err := strconv.ParseBool(v)
		if err != nil {
			return envError(err, domain.EnvConfirm, v)
		}
		settings.Confirm = confirm
	}

	nixPath, _ := l.lookupEnv(domain.EnvNixPath)
	settings.UseChannel = domain.UsesChannel(nixPath)

	if v, ok := l.lookupEnv(domain.EnvIndexDatabase); ok && v != "" {
		settings.IndexDatabase = v
	} else if l.cacheHome != "" {
		settings.IndexDatabase = filepath.Join(l.cacheHome, domain.IndexDirName, domain.IndexFileName)
	}

	return nil
}

func envError(err error, name, value string) error {
	envErr := zerr.Wrap(err, domain.ErrInvalidConfigValue.Error())
	envErr = zerr.With(envErr, "variable", name)
	return zerr.With(envErr, "value", value)
}
