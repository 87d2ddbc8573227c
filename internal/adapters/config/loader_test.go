package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/comma/internal/adapters/config"
	"go.trai.ch/comma/internal/core/domain"
	"go.trai.ch/comma/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func envMap(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cacheHome := t.TempDir()
	loader := config.NewLoaderWithPaths(nil, filepath.Join(t.TempDir(), "missing.yaml"), cacheHome, envMap(nil))

	got, err := loader.Load()
	require.NoError(t, err)

	want := domain.DefaultSettings()
	want.IndexDatabase = filepath.Join(cacheHome, "nix-index", "files")
	assert.Equal(t, want, got)
}

func TestLoad_FileThenEnv(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any())

	path := writeConfig(t, "picker: fzf\nnixpkgs_flake: github:NixOS/nixpkgs/nixos-unstable\ncache_level: choice\nconfirm: true\n")

	loader := config.NewLoaderWithPaths(log, path, "", envMap(map[string]string{
		"COMMA_PICKER":       "sk",
		"NIX_PATH":           "nixpkgs=/nix/var/nix/profiles/per-user/root/channels/nixos",
		"NIX_INDEX_DATABASE": "/var/db/nix-index/files",
	}))

	got, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "sk", got.Picker, "environment overrides the file")
	assert.Equal(t, "github:NixOS/nixpkgs/nixos-unstable", got.NixpkgsFlake)
	assert.Equal(t, domain.CacheChoice, got.CacheLevel)
	assert.True(t, got.Confirm)
	assert.True(t, got.UseChannel)
	assert.Equal(t, "/var/db/nix-index/files", got.IndexDatabase)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Parallel()

	loader := config.NewLoaderWithPaths(nil, filepath.Join(t.TempDir(), "none.yaml"), "", envMap(map[string]string{
		"COMMA_NIXPKGS_FLAKE": "github:me/pkgs",
		"COMMA_CACHE_LEVEL":   "none",
		"COMMA_CONFIRM":       "1",
		"COMMA_PICKER":        "",
		"NIX_PATH":            "home-manager=/x",
	}))

	got, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "fzy", got.Picker, "empty variables are ignored")
	assert.Equal(t, "github:me/pkgs", got.NixpkgsFlake)
	assert.Equal(t, domain.CacheNone, got.CacheLevel)
	assert.True(t, got.Confirm)
	assert.False(t, got.UseChannel)
	assert.Empty(t, got.IndexDatabase)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		env     map[string]string
		wantErr string
	}{
		{name: "malformed yaml", file: "picker: [", wantErr: domain.ErrConfigParse.Error()},
		{name: "unknown key", file: "pickr: fzf\n", wantErr: domain.ErrConfigParse.Error()},
		{name: "bad cache level in file", file: "cache_level: always\n", wantErr: domain.ErrConfigParse.Error()},
		{
			name:    "bad cache level in env",
			env:     map[string]string{"COMMA_CACHE_LEVEL": "always"},
			wantErr: domain.ErrInvalidConfigValue.Error(),
		},
		{
			name:    "bad confirm in env",
			env:     map[string]string{"COMMA_CONFIRM": "maybe"},
			wantErr: domain.ErrInvalidConfigValue.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "absent.yaml")
			if tt.file != "" {
				path = writeConfig(t, tt.file)
			}

			_, err := config.NewLoaderWithPaths(nil, path, "", envMap(tt.env)).Load()
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any())

	got, err := config.NewLoaderWithPaths(log, writeConfig(t, ""), "", envMap(nil)).Load()
	require.NoError(t, err)
	assert.Equal(t, "fzy", got.Picker)
}

func TestLoad_ReadsFileOnce(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).Times(1)

	path := writeConfig(t, "picker: fzf\n")
	loader := config.NewLoaderWithPaths(log, path, "", envMap(nil))

	first, err := loader.Load()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("picker: sk\n"), 0o600))

	second, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "fzf", second.Picker)
}
