// Package changelog inserts version sections into a Keep a Changelog style
// markdown document.
package changelog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/valyala/fasttemplate"
)

// DateLayout is the date format used in section headings
const DateLayout = "2006-01-02"

const sectionTemplate = `## [{{tag}}] - {{date}}

### Added
- {{added}}

### Changed
- {{changed}}

### Fixed
- {{fixed}}

### Removed
- {{removed}}

`

const documentTemplate = `# Changelog

All notable changes to this project will be documented in this file.

{{section}}`

var (
	section  = fasttemplate.New(sectionTemplate, "{{", "}}")
	document = fasttemplate.New(documentTemplate, "{{", "}}")
)

// Entry describes one version section
type Entry struct {
	// Version is the bare version, e.g. "1.2.0"
	Version string
	Date    time.Time
	// Fixed pre-fills the first bullet of the Fixed subsection
	Fixed string
}

// Render returns the markdown for the entry, ending with a blank line
func Render(e Entry) string {
	return section.ExecuteString(map[string]interface{}{
		"tag":     "v" + e.Version,
		"date":    e.Date.Format(DateLayout),
		"added":   "",
		"changed": "",
		"fixed":   e.Fixed,
		"removed": "",
	})
}

// New returns a fresh changelog document containing only the entry
func New(e Entry) string {
	return document.ExecuteString(map[string]interface{}{
		"section": Render(e),
	})
}

// Insert places the entry directly after the first line of doc. Everything
// after the first line is kept byte for byte.
func Insert(doc string, e Entry) string {
	first, rest := doc, ""
	if idx := strings.IndexByte(doc, '\n'); idx >= 0 {
		first, rest = doc[:idx], doc[idx+1:]
	}

	var b strings.Builder
	b.Grow(len(doc) + len(sectionTemplate) + 32)
	b.WriteString(first)
	b.WriteString("\n\n")
	b.WriteString(Render(e))
	b.WriteString(rest)
	return b.String()
}

// Update writes the entry into the changelog at path, creating the file when
// it does not exist. It reports whether the file was created.
func Update(path string, e Entry) (bool, error) {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to read changelog: %w", err)
	}

	created := os.IsNotExist(err)
	var content string
	if created {
		content = New(e)
	} else {
		content = Insert(string(existing), e)
	}

	//nolint:gosec // changelog is a tracked project file
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("failed to write changelog: %w", err)
	}
	return created, nil
}
