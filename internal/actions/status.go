package actions

import (
	"fmt"
	"strings"

	"gitflow.dev/gitflow/internal/branchutil"
	"gitflow.dev/gitflow/internal/engine"
	"gitflow.dev/gitflow/internal/runtime"
	"gitflow.dev/gitflow/internal/tui/style"
)

// StatusAction prints the current branch, local branches, active units of
// work, working tree state and recent commits
func StatusAction(ctx *runtime.Context) error {
	report, err := ctx.Engine.Status(ctx)
	if err != nil {
		return err
	}
	ctx.Splog.Page(RenderStatus(report))
	return nil
}

// RenderStatus formats a status report for the console
func RenderStatus(report *engine.StatusReport) string {
	var b strings.Builder

	b.WriteString(style.Header("GIT WORKFLOW STATUS"))
	b.WriteString("\n")

	current := report.CurrentBranch
	if current == "" {
		current = style.ColorDim("(detached HEAD)")
	} else {
		current = style.ColorBranchName(current, false)
	}
	fmt.Fprintf(&b, "Current branch: %s\n\n", current)

	b.WriteString("Local branches:\n")
	for _, br := range report.Branches {
		marker := "  "
		if br.IsCurrent {
			marker = "* "
		}
		line := marker + style.ColorBranchName(br.Name, br.IsCurrent)
		if br.Managed {
			line += " " + style.ColorKind(br.Kind.String())
		}
		b.WriteString("  " + line + "\n")
	}

	sections := []struct {
		kind  branchutil.Kind
		label string
	}{
		{branchutil.KindFeature, "features"},
		{branchutil.KindRelease, "releases"},
		{branchutil.KindHotfix, "hotfixes"},
	}
	for _, section := range sections {
		active := report.Active(section.kind)
		if len(active) == 0 {
			continue
		}
		ids := make([]string, 0, len(active))
		for _, br := range active {
			ids = append(ids, br.Identifier)
		}
		fmt.Fprintf(&b, "\nActive %s: %s\n", section.label, strings.Join(ids, ", "))
	}

	b.WriteString("\n")
	if report.Dirty {
		b.WriteString(style.ColorYellow("⚠️  You have uncommitted changes") + "\n")
	} else {
		b.WriteString(style.ColorGreen("✅ Working directory is clean") + "\n")
	}

	b.WriteString("\nRecent commits:\n")
	if len(report.RecentCommits) == 0 {
		b.WriteString("  " + style.ColorDim("(no commits yet)") + "\n")
	}
	for _, c := range report.RecentCommits {
		fmt.Fprintf(&b, "  %s %s\n", style.ColorHash(c.ShortHash), c.Subject)
	}
	return b.String()
}
