package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplogRoutesOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	splog, err := NewSplogWithOptions(Options{Out: &out, Err: &errOut})
	require.NoError(t, err)

	splog.Info("Switching to %s", "develop")
	splog.Success("done")
	splog.Warn("develop branch doesn't exist")
	splog.Tip("run %s", "gitflow status")
	splog.Debug("hidden")
	splog.Error("boom %d", 1)

	require.Equal(t, "Switching to develop\n✅ done\n⚠️  develop branch doesn't exist\n💡 run gitflow status\n", out.String())
	require.Equal(t, "❌ boom 1\n", errOut.String())
}

func TestSplogDebugMode(t *testing.T) {
	var out bytes.Buffer
	splog, err := NewSplogWithOptions(Options{Out: &out, Err: &out, Debug: true})
	require.NoError(t, err)

	splog.Debug("git %s", "checkout develop")
	require.Equal(t, "git checkout develop\n", out.String())
}

func TestSplogMessagesAreNotFormatStrings(t *testing.T) {
	var out bytes.Buffer
	splog, err := NewSplogWithOptions(Options{Out: &out})
	require.NoError(t, err)

	splog.Info("100% done")
	require.Equal(t, "100% done\n", out.String())
}

func TestSplogWritesLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "gitflow.log")

	var out bytes.Buffer
	splog, err := NewSplogWithOptions(Options{Out: &out, Err: &out, LogFilePath: logPath})
	require.NoError(t, err)

	splog.Debug("git push origin develop")
	splog.Info("Release v1.2.0 completed")
	require.NoError(t, splog.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "git push origin develop")
	require.Contains(t, string(data), "Release v1.2.0 completed")
	require.NotContains(t, out.String(), "git push origin develop")
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("GITFLOW_LOG_FILE", "/tmp/custom.log")
	require.Equal(t, "/tmp/custom.log", GetLogFilePath())

	t.Setenv("GITFLOW_LOG_FILE", "off")
	require.Empty(t, GetLogFilePath())
}
