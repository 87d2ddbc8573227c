package nix_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/comma/internal/adapters/nix"
	"go.trai.ch/comma/internal/core/domain"
	"go.trai.ch/comma/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func freshDatabase(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "files")
	require.NoError(t, os.WriteFile(path, []byte("db"), 0o600))
	return path
}

func TestIndex_Candidates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")
	tool := writeScript(t, dir, "nix-locate",
		`printf '%s\n' "$@" > `+argsFile+`
printf 'htop.out\n\n  btop.out  \n'`)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	idx := nix.NewIndexWithToolForTest(tool, log, freshDatabase(t), time.Now)
	got, err := idx.Candidates(context.Background(), "htop")
	require.NoError(t, err)

	assert.Equal(t, []string{"htop.out", "btop.out"}, got)
	assert.Equal(t,
		[]string{"--top-level", "--minimal", "--at-root", "--whole-name", "/bin/htop"},
		readArgs(t, argsFile))
}

func TestIndex_NoMatch(t *testing.T) {
	t.Parallel()

	tool := writeScript(t, t.TempDir(), "nix-locate", "exit 0")
	ctrl := gomock.NewController(t)

	idx := nix.NewIndexWithToolForTest(tool, mocks.NewMockLogger(ctrl), freshDatabase(t), time.Now)
	_, err := idx.Candidates(context.Background(), "definitely-not-a-command")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrNoMatch.Error())
}

func TestIndex_QueryFailed(t *testing.T) {
	t.Parallel()

	tool := writeScript(t, t.TempDir(), "nix-locate", "echo 'database corrupt' >&2\nexit 2")
	ctrl := gomock.NewController(t)

	idx := nix.NewIndexWithToolForTest(tool, mocks.NewMockLogger(ctrl), freshDatabase(t), time.Now)
	_, err := idx.Candidates(context.Background(), "htop")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrIndexQueryFailed.Error())
}

func TestIndex_ToolMissing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	missing := filepath.Join(t.TempDir(), "nix-locate")

	idx := nix.NewIndexWithToolForTest(missing, mocks.NewMockLogger(ctrl), freshDatabase(t), time.Now)
	_, err := idx.Candidates(context.Background(), "htop")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrIndexQueryFailed.Error())
}

func TestIndex_DatabaseWarnings(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	old := now.Add(-31 * 24 * time.Hour)

	tests := []struct {
		name     string
		setup    func(t *testing.T) string
		wantWarn string
	}{
		{
			name: "missing",
			setup: func(t *testing.T) string {
				t.Helper()
				return filepath.Join(t.TempDir(), "files")
			},
			wantWarn: "nix-index database does not exist",
		},
		{
			name: "stale",
			setup: func(t *testing.T) string {
				t.Helper()
				path := filepath.Join(t.TempDir(), "files")
				require.NoError(t, os.WriteFile(path, []byte("db"), 0o600))
				require.NoError(t, os.Chtimes(path, old, old))
				return path
			},
			wantWarn: "nix-index database is older than 30 days",
		},
		{
			name: "stale but read-only",
			setup: func(t *testing.T) string {
				t.Helper()
				path := filepath.Join(t.TempDir(), "files")
				require.NoError(t, os.WriteFile(path, []byte("db"), 0o400))
				require.NoError(t, os.Chtimes(path, old, old))
				return path
			},
		},
		{
			name: "fresh",
			setup: func(t *testing.T) string {
				t.Helper()
				path := filepath.Join(t.TempDir(), "files")
				require.NoError(t, os.WriteFile(path, []byte("db"), 0o600))
				require.NoError(t, os.Chtimes(path, now, now))
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			log := mocks.NewMockLogger(ctrl)
			if tt.wantWarn != "" {
				log.EXPECT().Warn(gomock.Cond(func(msg string) bool {
					return len(msg) >= len(tt.wantWarn) && msg[:len(tt.wantWarn)] == tt.wantWarn
				}))
			}

			tool := writeScript(t, t.TempDir(), "nix-locate", "echo htop.out")
			idx := nix.NewIndexWithToolForTest(tool, log, tt.setup(t), func() time.Time { return now })

			got, err := idx.Candidates(context.Background(), "htop")
			require.NoError(t, err)
			assert.Equal(t, []string{"htop.out"}, got)
		})
	}
}

func TestParseCandidates(t *testing.T) {
	t.Parallel()

	assert.Nil(t, nix.ParseCandidatesForTest([]byte("\n \n")))
	assert.Equal(t, []string{"a.out", "b.bin"}, nix.ParseCandidatesForTest([]byte("a.out\r\nb.bin")))
}

func TestIndex_DatabaseFromSettings(t *testing.T) {
	t.Parallel()

	tool := writeScript(t, t.TempDir(), "nix-locate", "echo htop.out")

	t.Run("location read at query time", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		loader := mocks.NewMockConfigLoader(ctrl)
		log := mocks.NewMockLogger(ctrl)

		idx := nix.NewIndexFromConfigWithToolForTest(tool, log, loader)

		settings := domain.DefaultSettings()
		settings.IndexDatabase = filepath.Join(t.TempDir(), "files")
		loader.EXPECT().Load().Return(settings, nil)
		log.EXPECT().Warn(gomock.Cond(func(msg string) bool {
			return strings.HasPrefix(msg, "nix-index database does not exist")
		}))

		got, err := idx.Candidates(context.Background(), "htop")
		require.NoError(t, err)
		assert.Equal(t, []string{"htop.out"}, got)
	})

	t.Run("settings failure skips the check", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		loader := mocks.NewMockConfigLoader(ctrl)
		loader.EXPECT().Load().Return(domain.Settings{}, domain.ErrConfigParse)

		idx := nix.NewIndexFromConfigWithToolForTest(tool, mocks.NewMockLogger(ctrl), loader)
		got, err := idx.Candidates(context.Background(), "htop")
		require.NoError(t, err)
		assert.Equal(t, []string{"htop.out"}, got)
	})
}
