// Package version parses the MAJOR.MINOR.PATCH version identifiers used by
// release and hotfix branches.
package version

import (
	"regexp"
	"strconv"

	"gitflow.dev/gitflow/internal/errors"
)

var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// Version is a validated MAJOR.MINOR.PATCH triple.
type Version struct {
	Major int
	Minor int
	Patch int

	raw string
}

// Parse validates s and returns the version it describes. Prefixes such as
// "v", pre-release suffixes and partial versions are rejected with an
// InvalidVersionError.
func Parse(s string) (Version, error) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, errors.NewInvalidVersionError(s)
	}

	parts := make([]int, 3)
	for i := range parts {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			// Only overflow gets here; the pattern guarantees digits.
			return Version{}, errors.NewInvalidVersionError(s)
		}
		parts[i] = n
	}

	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2], raw: s}, nil
}

// IsValid reports whether s would be accepted by Parse.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// String returns the version exactly as it was given to Parse.
func (v Version) String() string {
	if v.raw != "" {
		return v.raw
	}
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
}

// Tag returns the tag name for the version, e.g. "v1.2.0".
func (v Version) Tag() string {
	return "v" + v.String()
}
