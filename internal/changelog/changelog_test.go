package changelog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gitflow.dev/gitflow/internal/changelog"
)

var releaseDay = time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

const expectedSection = "## [v1.2.0] - 2024-03-05\n\n" +
	"### Added\n- \n\n" +
	"### Changed\n- \n\n" +
	"### Fixed\n- \n\n" +
	"### Removed\n- \n\n"

func TestRender(t *testing.T) {
	require.Equal(t, expectedSection, changelog.Render(changelog.Entry{Version: "1.2.0", Date: releaseDay}))
}

func TestRenderWithFixedDescription(t *testing.T) {
	out := changelog.Render(changelog.Entry{Version: "1.2.1", Date: releaseDay, Fixed: "crash on login"})
	require.Contains(t, out, "### Fixed\n- crash on login\n\n")
	require.True(t, strings.HasPrefix(out, "## [v1.2.1] - 2024-03-05\n"))
}

func TestNew(t *testing.T) {
	out := changelog.New(changelog.Entry{Version: "1.2.0", Date: releaseDay})
	require.Equal(t,
		"# Changelog\n\nAll notable changes to this project will be documented in this file.\n\n"+expectedSection,
		out,
	)
}

func TestInsertPreservesExistingContent(t *testing.T) {
	existing := "# Changelog\n\nAll notable changes.\n\n## [v1.1.0] - 2024-01-01\n\n### Added\n- search\n"
	out := changelog.Insert(existing, changelog.Entry{Version: "1.2.0", Date: releaseDay})

	require.Equal(t, "# Changelog\n\n"+expectedSection+"\nAll notable changes.\n\n## [v1.1.0] - 2024-01-01\n\n### Added\n- search\n", out)

	// Everything after the first line survives untouched at the end.
	require.True(t, strings.HasSuffix(out, existing[strings.IndexByte(existing, '\n')+1:]))
}

func TestInsertSingleLineDocument(t *testing.T) {
	out := changelog.Insert("# History", changelog.Entry{Version: "0.1.0", Date: releaseDay})
	require.True(t, strings.HasPrefix(out, "# History\n\n## [v0.1.0] - 2024-03-05\n"))
	require.True(t, strings.HasSuffix(out, "### Removed\n- \n\n"))
}

func TestUpdate(t *testing.T) {
	t.Run("creates missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "CHANGELOG.md")

		created, err := changelog.Update(path, changelog.Entry{Version: "1.0.0", Date: releaseDay})
		require.NoError(t, err)
		require.True(t, created)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(string(data), "# Changelog\n\nAll notable changes"))
		require.Contains(t, string(data), "## [v1.0.0] - 2024-03-05")
	})

	t.Run("inserts into existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "CHANGELOG.md")
		require.NoError(t, os.WriteFile(path, []byte("# Changelog\nold\n"), 0o644))

		created, err := changelog.Update(path, changelog.Entry{Version: "1.0.1", Date: releaseDay})
		require.NoError(t, err)
		require.False(t, created)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(string(data), "# Changelog\n\n## [v1.0.1]"))
		require.True(t, strings.HasSuffix(string(data), "### Removed\n- \n\nold\n"))
	})
}
