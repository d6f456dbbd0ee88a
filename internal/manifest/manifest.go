// Package manifest rewrites the version field of project manifests such as
// package.json or Chart.yaml. Only the bytes of the version value change;
// formatting, key order and comments are preserved.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// VersionKey is the top-level field holding the project version
const VersionKey = "version"

// Format is the serialization format of a manifest
type Format int

const (
	// FormatJSON covers package.json, composer.json and JSONC variants
	FormatJSON Format = iota
	// FormatYAML covers Chart.yaml, pubspec.yaml and similar
	FormatYAML
)

// FormatFor picks the format from the file extension. Anything that is not
// YAML is treated as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseError is returned when a manifest cannot be understood
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Result describes the outcome of a bump
type Result struct {
	Path     string
	Previous string
	// Changed is false when the manifest already carried the version
	Changed bool
}

// SetVersion returns data with its top-level version set to version, along
// with the previous value (empty when the field was absent).
func SetVersion(format Format, data []byte, version string) ([]byte, string, error) {
	if format == FormatYAML {
		return setYAMLVersion(data, version)
	}
	return setJSONVersion(data, version)
}

// Bump rewrites the manifest at path in place. The file is left untouched
// when it already carries version.
func Bump(path, version string) (Result, error) {
	res := Result{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("failed to read manifest: %w", err)
	}

	updated, previous, err := SetVersion(FormatFor(path), data, version)
	if err != nil {
		return res, &ParseError{Path: path, Err: err}
	}
	res.Previous = previous

	if previous == version {
		return res, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return res, fmt.Errorf("failed to stat manifest: %w", err)
	}
	if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("failed to write manifest: %w", err)
	}

	res.Changed = true
	return res, nil
}
