package runtime

import (
	"context"
	"io"
	"os"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/engine"
	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/internal/tui"
)

// Context provides access to engine and output for commands. It carries the
// command's context.Context so it can be passed straight to engine calls.
type Context struct {
	context.Context
	Engine   *engine.Engine
	Splog    *tui.Splog
	RepoRoot string
	Settings config.Settings
}

// NewContext creates a new context around an existing engine
func NewContext(ctx context.Context, eng *engine.Engine, splog *tui.Splog, repoRoot string) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if splog == nil {
		splog = tui.NewSplog()
	}
	return &Context{
		Context:  ctx,
		Engine:   eng,
		Splog:    splog,
		RepoRoot: repoRoot,
		Settings: eng.Settings(),
	}
}

// NewSplog creates the command logger writing to out and errOut. Debug
// output is enabled by the --debug flag or the DEBUG environment variable,
// and everything is also written to the rotated log file unless
// GITFLOW_LOG_FILE is "off".
func NewSplog(out, errOut io.Writer, debug bool) *tui.Splog {
	opts := tui.Options{
		Out:         out,
		Err:         errOut,
		Debug:       debug || os.Getenv("DEBUG") != "",
		LogFilePath: tui.GetLogFilePath(),
	}
	splog, err := tui.NewSplogWithOptions(opts)
	if err != nil {
		// The log file is optional; fall back to console only.
		opts.LogFilePath = ""
		splog, _ = tui.NewSplogWithOptions(opts)
	}
	return splog
}

// GetContext locates the repository containing dir, loads its settings and
// builds an engine over the real git gateway.
func GetContext(ctx context.Context, dir string, splog *tui.Splog) (*Context, error) {
	repoRoot, err := git.FindRepoRoot(dir)
	if err != nil {
		return nil, err
	}

	gitDir, err := git.CommonDir(ctx, repoRoot)
	if err != nil {
		return nil, err
	}
	settings, err := config.Load(gitDir)
	if err != nil {
		return nil, err
	}

	if splog == nil {
		splog = tui.NewSplog()
	}
	splog.Debug("Repository root: %s", repoRoot)

	gateway := git.NewGateway(repoRoot, splog)
	return NewContext(ctx, engine.New(gateway, settings, splog), splog, repoRoot), nil
}
