package app_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/comma/internal/adapters/cache"
	"go.trai.ch/comma/internal/adapters/telemetry"
	"go.trai.ch/comma/internal/app"
	"go.trai.ch/comma/internal/core/domain"
	"go.trai.ch/comma/internal/core/ports/mocks"
	"go.trai.ch/comma/internal/engine/dispatcher"
	"go.trai.ch/comma/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

type noShell struct{}

func (noShell) DetectShell(int) (string, bool, error) { return "", false, nil }

type fixture struct {
	config    *mocks.MockConfigLoader
	index     *mocks.MockPackageIndex
	picker    *mocks.MockPicker
	manager   *mocks.MockPackageManager
	replacer  *mocks.MockProcessReplacer
	logger    *mocks.MockLogger
	statePath string
	out       *bytes.Buffer
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		config:    mocks.NewMockConfigLoader(ctrl),
		index:     mocks.NewMockPackageIndex(ctrl),
		picker:    mocks.NewMockPicker(ctrl),
		manager:   mocks.NewMockPackageManager(ctrl),
		replacer:  mocks.NewMockProcessReplacer(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		statePath: filepath.Join(t.TempDir(), "state", domain.StateFileName),
		out:       new(bytes.Buffer),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	tracer := telemetry.NewNoOpTracer()
	res := resolver.New(f.index, f.picker, tracer)
	disp := dispatcher.New(f.manager, f.replacer, noShell{}, mocks.NewMockConfirmer(ctrl), f.logger, tracer).
		WithOutput(f.out)

	f.app = app.New(f.config, cache.NewFileLoaderWithPath(f.statePath), res, disp, f.logger).WithOutput(f.out)
	return f
}

func (f *fixture) withSettings(mutate func(*domain.Settings)) {
	settings := domain.DefaultSettings()
	if mutate != nil {
		mutate(&settings)
	}
	f.config.EXPECT().Load().Return(settings, nil)
}

func (f *fixture) stored(t *testing.T) *cache.Store {
	t.Helper()

	store, err := cache.LoadStore(f.statePath)
	require.NoError(t, err)
	return store
}

func fakeBuild(t *testing.T, command string) (string, string) {
	t.Helper()

	out := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(out, "bin"), 0o750))
	exe := filepath.Join(out, "bin", command)
	require.NoError(t, os.WriteFile(exe, nil, 0o600))
	return out, exe
}

func TestApp_RunFreshCommand(t *testing.T) {
	f := newFixture(t)
	f.withSettings(nil)
	out, exe := fakeBuild(t, "htop")

	f.index.EXPECT().Candidates(gomock.Any(), "htop").Return([]string{"htop.out"}, nil)
	f.manager.EXPECT().Build(gomock.Any(), domain.PackageSource{Flake: "nixpkgs"}, "htop.out").Return(out, nil)
	f.replacer.EXPECT().Replace(exe, []string{"htop", "-t"}).DoAndReturn(func(string, []string) error {
		entry, ok := f.stored(t).Query("htop")
		require.True(t, ok, "cache must be on disk before the process is replaced")
		assert.Equal(t, domain.CacheEntry{Derivation: "htop.out", Path: exe}, entry)
		return nil
	})

	err := f.app.Run(context.Background(), []string{"htop", "-t"}, app.RunOptions{Mode: domain.ModeRun})
	require.NoError(t, err)
}

func TestApp_SecondRunUsesCache(t *testing.T) {
	f := newFixture(t)
	_, exe := fakeBuild(t, "htop")

	seed, err := cache.LoadStore(f.statePath)
	require.NoError(t, err)
	seed.Update("htop", domain.CacheEntry{Derivation: "htop.out", Path: exe})
	require.NoError(t, seed.Flush())

	f.withSettings(nil)
	f.replacer.EXPECT().Replace(exe, []string{"htop"}).Return(nil)

	err = f.app.Run(context.Background(), []string{"htop"}, app.RunOptions{Mode: domain.ModeRun})
	require.NoError(t, err)
}

func TestApp_CacheLevelChoiceDropsPath(t *testing.T) {
	f := newFixture(t)
	f.withSettings(func(s *domain.Settings) { s.CacheLevel = domain.CacheChoice })
	out, exe := fakeBuild(t, "hello")

	f.index.EXPECT().Candidates(gomock.Any(), "hello").Return([]string{"hello.out"}, nil)
	f.manager.EXPECT().Build(gomock.Any(), gomock.Any(), "hello.out").Return(out, nil)

	err := f.app.Run(context.Background(), []string{"hello"}, app.RunOptions{Mode: domain.ModePrintPath})
	require.NoError(t, err)
	assert.Equal(t, exe+"\n", f.out.String())

	entry, ok := f.stored(t).Query("hello")
	require.True(t, ok)
	assert.Equal(t, domain.CacheEntry{Derivation: "hello.out"}, entry)
}

func TestApp_CacheLevelFlagOverridesSettings(t *testing.T) {
	f := newFixture(t)
	f.withSettings(nil)
	out, _ := fakeBuild(t, "hello")

	f.index.EXPECT().Candidates(gomock.Any(), "hello").Return([]string{"hello.out"}, nil)
	f.manager.EXPECT().Build(gomock.Any(), gomock.Any(), "hello.out").Return(out, nil)

	err := f.app.Run(context.Background(), []string{"hello"}, app.RunOptions{
		Mode:       domain.ModePrintPath,
		CacheLevel: "none",
	})
	require.NoError(t, err)

	_, statErr := os.Stat(f.statePath)
	assert.ErrorIs(t, statErr, os.ErrNotExist, "a disabled cache never writes")
}

func TestApp_ShellResolvesEveryCommand(t *testing.T) {
	f := newFixture(t)
	f.withSettings(func(s *domain.Settings) { s.NixpkgsFlake = "github:NixOS/nixpkgs" })

	f.index.EXPECT().Candidates(gomock.Any(), "htop").Return([]string{"htop.out"}, nil)
	f.index.EXPECT().Candidates(gomock.Any(), "jq").Return([]string{"jq.bin", "gojq.out"}, nil)
	f.picker.EXPECT().Select(gomock.Any(), "sk", []string{"jq.bin", "gojq.out"}).Return("jq.bin", true, nil)

	source := domain.PackageSource{Flake: "github:NixOS/nixpkgs"}
	argv := []string{"nix", "shell", "github:NixOS/nixpkgs#htop.out", "github:NixOS/nixpkgs#jq.bin", "--command", "bash"}
	f.manager.EXPECT().ShellArgv(source, []string{"htop.out", "jq.bin"}, []string{"bash"}).Return(argv)
	f.replacer.EXPECT().Replace("nix", argv).Return(nil)

	err := f.app.Run(context.Background(), []string{"htop", "jq"}, app.RunOptions{
		Mode:   domain.ModeShell,
		Picker: "sk",
	})
	require.NoError(t, err)

	store := f.stored(t)
	_, ok := store.Query("jq")
	assert.True(t, ok)
}

func TestApp_PrintPackages(t *testing.T) {
	f := newFixture(t)
	f.withSettings(nil)
	f.index.EXPECT().Candidates(gomock.Any(), "ls").Return([]string{"coreutils.out", "busybox.out"}, nil)

	err := f.app.Run(context.Background(), []string{"ls"}, app.RunOptions{PrintPackages: true})
	require.NoError(t, err)
	assert.Equal(t, "Packages that contain /bin/ls:\n- coreutils.out\n- busybox.out\n", f.out.String())
}

func TestApp_EmptyCache(t *testing.T) {
	f := newFixture(t)

	seed, err := cache.LoadStore(f.statePath)
	require.NoError(t, err)
	seed.Update("htop", domain.CacheEntry{Derivation: "htop.out"})
	require.NoError(t, seed.Flush())

	f.withSettings(nil)
	err = f.app.Run(context.Background(), nil, app.RunOptions{EmptyCache: true})
	require.NoError(t, err)

	_, ok := f.stored(t).Query("htop")
	assert.False(t, ok)
}

func TestApp_Failures(t *testing.T) {
	t.Run("no command", func(t *testing.T) {
		f := newFixture(t)
		f.withSettings(nil)

		err := f.app.Run(context.Background(), nil, app.RunOptions{})
		require.ErrorIs(t, err, domain.ErrNoCommand)
	})

	t.Run("config load failure", func(t *testing.T) {
		f := newFixture(t)
		f.config.EXPECT().Load().Return(domain.Settings{}, domain.ErrConfigParse)

		err := f.app.Run(context.Background(), []string{"htop"}, app.RunOptions{})
		require.ErrorIs(t, err, domain.ErrConfigParse)
	})

	t.Run("invalid cache level flag", func(t *testing.T) {
		f := newFixture(t)
		f.withSettings(nil)

		err := f.app.Run(context.Background(), []string{"htop"}, app.RunOptions{CacheLevel: "all"})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInvalidCacheLevel.Error())
	})

	t.Run("no selection writes nothing", func(t *testing.T) {
		f := newFixture(t)
		f.withSettings(nil)
		f.index.EXPECT().Candidates(gomock.Any(), "ls").Return([]string{"a", "b"}, nil)
		f.picker.EXPECT().Select(gomock.Any(), "fzy", gomock.Any()).Return("", false, nil)

		err := f.app.Run(context.Background(), []string{"ls"}, app.RunOptions{})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrNoSelection.Error())

		_, statErr := os.Stat(f.statePath)
		assert.True(t, errors.Is(statErr, os.ErrNotExist))
	})
}

func TestApp_CorruptCacheDegrades(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(f.statePath), 0o750))
	require.NoError(t, os.WriteFile(f.statePath, []byte("garbage!!!!!!!!"), 0o600))

	f.withSettings(nil)
	f.logger.EXPECT().Warn(gomock.Any())
	out, exe := fakeBuild(t, "hello")
	f.index.EXPECT().Candidates(gomock.Any(), "hello").Return([]string{"hello.out"}, nil)
	f.manager.EXPECT().Build(gomock.Any(), gomock.Any(), "hello.out").Return(out, nil)

	err := f.app.Run(context.Background(), []string{"hello"}, app.RunOptions{Mode: domain.ModePrintPath})
	require.NoError(t, err)
	assert.Equal(t, exe+"\n", f.out.String())

	data, err := os.ReadFile(f.statePath)
	require.NoError(t, err)
	assert.Equal(t, "garbage!!!!!!!!", string(data), "a corrupt state file is left alone")
}
