package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/comma/internal/core/domain"
)

func TestPackageChoice_AttrName(t *testing.T) {
	tests := []struct {
		name       string
		derivation string
		want       string
	}{
		{name: "attribute path", derivation: "nixpkgs.hello", want: "hello"},
		{name: "nested attribute path", derivation: "nixpkgs.python3Packages.black", want: "black"},
		{name: "bare name", derivation: "htop", want: "htop"},
		{name: "trailing dot", derivation: "nixpkgs.", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			choice := domain.NewPackageChoice(tt.derivation)
			assert.Equal(t, tt.want, choice.AttrName())
		})
	}
}

func TestPackageChoice_EntryConversion(t *testing.T) {
	choice := domain.NewPackageChoice("nixpkgs.htop")
	assert.Empty(t, choice.Path)
	assert.False(t, choice.Entry().HasPath())

	withPath := choice.WithPath("/nix/store/abc-htop/bin/htop")
	assert.Empty(t, choice.Path, "WithPath must not mutate the receiver")
	assert.True(t, withPath.Entry().HasPath())

	entry := withPath.Entry()
	assert.Equal(t, withPath, domain.ChoiceFromEntry(entry))
}

func TestParseCacheLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.CacheLevel
		wantErr bool
	}{
		{in: "none", want: domain.CacheNone},
		{in: "off", want: domain.CacheNone},
		{in: "0", want: domain.CacheNone},
		{in: "choice", want: domain.CacheChoice},
		{in: "1", want: domain.CacheChoice},
		{in: "path", want: domain.CachePath},
		{in: "PATH", want: domain.CachePath},
		{in: "", want: domain.CachePath},
		{in: "everything", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseCacheLevel(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidCacheLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCacheLevel_StringRoundTrip(t *testing.T) {
	for _, level := range []domain.CacheLevel{domain.CacheNone, domain.CacheChoice, domain.CachePath} {
		got, err := domain.ParseCacheLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, got)
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "run", domain.ModeRun.String())
	assert.Equal(t, "shell", domain.ModeShell.String())
	assert.Equal(t, "print-path", domain.ModePrintPath.String())
	assert.Equal(t, "install", domain.ModeInstall.String())
	assert.Equal(t, "unknown", domain.Mode(42).String())
}

func TestIsKnownShell(t *testing.T) {
	assert.True(t, domain.IsKnownShell("bash"))
	assert.True(t, domain.IsKnownShell("zsh"))
	assert.True(t, domain.IsKnownShell("fish"))
	assert.False(t, domain.IsKnownShell("sshd"))
	assert.False(t, domain.IsKnownShell("Bash"), "shell names are matched literally")
}

func TestKnownShells(t *testing.T) {
	shells := domain.KnownShells()
	for _, name := range shells {
		assert.True(t, domain.IsKnownShell(name), name)
	}
	assert.Contains(t, shells, "nu")

	shells[0] = "sshd"
	assert.False(t, domain.IsKnownShell("sshd"), "KnownShells returns a copy")
}

func TestUsesChannel(t *testing.T) {
	assert.True(t, domain.UsesChannel("nixpkgs=/nix/var/nix/profiles/per-user/root/channels/nixos"))
	assert.True(t, domain.UsesChannel("foo=/bar:nixpkgs=channel:nixos-unstable"))
	assert.False(t, domain.UsesChannel(""))
	assert.False(t, domain.UsesChannel("/home/me/.nix-defexpr/channels"))
}

func TestAncestry_Names(t *testing.T) {
	a := domain.Ancestry{
		{PID: 10, PPID: 5, Name: "comma"},
		{PID: 5, PPID: 1, Name: "bash"},
	}
	assert.Equal(t, []string{"comma", "bash"}, a.Names())
}
