package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitflow.dev/gitflow/internal/manifest"
)

func TestSetVersionJSON(t *testing.T) {
	t.Run("replaces value and keeps formatting", func(t *testing.T) {
		in := "{\n    \"name\": \"app\",\n    \"version\": \"1.1.0\",\n    \"scripts\": {\"version\": \"nested\"}\n}\n"
		out, prev, err := manifest.SetVersion(manifest.FormatJSON, []byte(in), "1.2.0")
		require.NoError(t, err)
		require.Equal(t, "1.1.0", prev)
		require.Equal(t, "{\n    \"name\": \"app\",\n    \"version\": \"1.2.0\",\n    \"scripts\": {\"version\": \"nested\"}\n}\n", string(out))
	})

	t.Run("ignores nested version keys", func(t *testing.T) {
		in := `{"engines":{"version":"9"},"version":"0.1.0"}`
		out, prev, err := manifest.SetVersion(manifest.FormatJSON, []byte(in), "0.2.0")
		require.NoError(t, err)
		require.Equal(t, "0.1.0", prev)
		require.Equal(t, `{"engines":{"version":"9"},"version":"0.2.0"}`, string(out))
	})

	t.Run("tolerates comments and trailing commas", func(t *testing.T) {
		in := "{\n  // project version\n  \"version\": \"2.0.0\", /* bumped by release */\n  \"private\": true,\n}\n"
		out, prev, err := manifest.SetVersion(manifest.FormatJSON, []byte(in), "2.1.0")
		require.NoError(t, err)
		require.Equal(t, "2.0.0", prev)
		require.Equal(t, "{\n  // project version\n  \"version\": \"2.1.0\", /* bumped by release */\n  \"private\": true,\n}\n", string(out))
	})

	t.Run("handles escaped strings before the key", func(t *testing.T) {
		in := `{"description":"say \"hi\", {ok}","version":"1.0.0"}`
		out, _, err := manifest.SetVersion(manifest.FormatJSON, []byte(in), "1.0.1")
		require.NoError(t, err)
		require.Equal(t, `{"description":"say \"hi\", {ok}","version":"1.0.1"}`, string(out))
	})

	t.Run("inserts missing key as first member", func(t *testing.T) {
		in := "{\n  \"name\": \"app\"\n}\n"
		out, prev, err := manifest.SetVersion(manifest.FormatJSON, []byte(in), "1.0.0")
		require.NoError(t, err)
		require.Empty(t, prev)
		require.Equal(t, "{\n  \"version\": \"1.0.0\",\n  \"name\": \"app\"\n}\n", string(out))
	})

	t.Run("inserts into empty object", func(t *testing.T) {
		out, _, err := manifest.SetVersion(manifest.FormatJSON, []byte("{}"), "1.0.0")
		require.NoError(t, err)
		require.Equal(t, "{\n  \"version\": \"1.0.0\"\n}", string(out))
	})

	t.Run("rejects non-objects", func(t *testing.T) {
		for _, in := range []string{"[]", "not json", `{"version": }`, ""} {
			_, _, err := manifest.SetVersion(manifest.FormatJSON, []byte(in), "1.0.0")
			require.Error(t, err, in)
		}
	})
}

func TestSetVersionYAML(t *testing.T) {
	t.Run("plain scalar", func(t *testing.T) {
		in := "apiVersion: v2\nname: chart # the chart\nversion: 0.3.0\nappVersion: \"1.0\"\n"
		out, prev, err := manifest.SetVersion(manifest.FormatYAML, []byte(in), "0.4.0")
		require.NoError(t, err)
		require.Equal(t, "0.3.0", prev)
		require.Equal(t, "apiVersion: v2\nname: chart # the chart\nversion: 0.4.0\nappVersion: \"1.0\"\n", string(out))
	})

	t.Run("double quoted scalar keeps quotes", func(t *testing.T) {
		in := "name: app\nversion: \"1.0.0\"\n"
		out, prev, err := manifest.SetVersion(manifest.FormatYAML, []byte(in), "1.1.0")
		require.NoError(t, err)
		require.Equal(t, "1.0.0", prev)
		require.Equal(t, "name: app\nversion: \"1.1.0\"\n", string(out))
	})

	t.Run("appends missing key", func(t *testing.T) {
		out, prev, err := manifest.SetVersion(manifest.FormatYAML, []byte("name: app"), "1.0.0")
		require.NoError(t, err)
		require.Empty(t, prev)
		require.Equal(t, "name: app\nversion: \"1.0.0\"\n", string(out))
	})

	t.Run("rejects sequences", func(t *testing.T) {
		_, _, err := manifest.SetVersion(manifest.FormatYAML, []byte("- a\n- b\n"), "1.0.0")
		require.Error(t, err)
	})
}

func TestFormatFor(t *testing.T) {
	require.Equal(t, manifest.FormatJSON, manifest.FormatFor("package.json"))
	require.Equal(t, manifest.FormatJSON, manifest.FormatFor("tsconfig.jsonc"))
	require.Equal(t, manifest.FormatYAML, manifest.FormatFor("charts/app/Chart.yaml"))
	require.Equal(t, manifest.FormatYAML, manifest.FormatFor("pubspec.YML"))
}

func TestBump(t *testing.T) {
	dir := t.TempDir()

	t.Run("writes changed manifest", func(t *testing.T) {
		path := filepath.Join(dir, "package.json")
		require.NoError(t, os.WriteFile(path, []byte("{\n  \"version\": \"1.0.0\"\n}\n"), 0o644))

		res, err := manifest.Bump(path, "1.1.0")
		require.NoError(t, err)
		require.True(t, res.Changed)
		require.Equal(t, "1.0.0", res.Previous)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "{\n  \"version\": \"1.1.0\"\n}\n", string(data))
	})

	t.Run("reports unchanged manifest", func(t *testing.T) {
		path := filepath.Join(dir, "same.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version":"2.0.0"}`), 0o644))

		res, err := manifest.Bump(path, "2.0.0")
		require.NoError(t, err)
		require.False(t, res.Changed)
	})

	t.Run("wraps parse failures", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))

		_, err := manifest.Bump(path, "1.0.0")
		var perr *manifest.ParseError
		require.True(t, errors.As(err, &perr))
		require.Equal(t, path, perr.Path)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := manifest.Bump(filepath.Join(dir, "absent.json"), "1.0.0")
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
