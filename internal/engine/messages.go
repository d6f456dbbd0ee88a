package engine

import (
	"github.com/valyala/fasttemplate"

	"gitflow.dev/gitflow/internal/branchutil"
)

// Commit, merge and tag message templates. Placeholders:
// {{branch}}, {{version}}, {{tag}}, {{develop}}, {{main}}.
const (
	featureMergeMessage = "Merge {{branch}} into {{develop}}"

	releaseMergeMessage     = "Release {{tag}}"
	releaseTagMessage       = "Release version {{version}}"
	releaseBackMergeMessage = "Merge release {{tag}} into {{develop}}"

	hotfixMergeMessage     = "Hotfix {{tag}}"
	hotfixTagMessage       = "Hotfix version {{version}}"
	hotfixBackMergeMessage = "Merge hotfix {{tag}} into {{develop}}"

	manifestCommitMessage  = "chore: bump version to {{version}}"
	changelogCommitMessage = "docs: update changelog for {{tag}}"
)

func (e *Engine) message(template string, unit branchutil.UnitOfWork) string {
	return fasttemplate.ExecuteStringStd(template, "{{", "}}", map[string]interface{}{
		"branch":  unit.BranchName,
		"version": unit.Identifier,
		"tag":     unit.TagName,
		"develop": e.settings.DevelopBranch,
		"main":    e.settings.MainBranch,
	})
}
