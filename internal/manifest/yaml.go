package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
)

var versionPath = mustPath("$." + VersionKey)

func mustPath(s string) *yaml.Path {
	p, err := yaml.PathString(s)
	if err != nil {
		panic(err)
	}
	return p
}

// setYAMLVersion replaces the scalar under the top-level version key in place,
// keeping its quoting. A missing key is appended to the end of the document.
func setYAMLVersion(data []byte, version string) ([]byte, string, error) {
	file, err := parser.ParseBytes(data, parser.ParseComments)
	if err != nil {
		return nil, "", err
	}
	if len(file.Docs) == 0 || !isMapping(file.Docs[0].Body) {
		return nil, "", errors.New("manifest is not a YAML mapping")
	}

	node, err := versionPath.FilterFile(file)
	if yaml.IsNotFoundNodeError(err) {
		return appendYAMLVersion(data, version), "", nil
	}
	if err != nil {
		return nil, "", err
	}

	scalar, ok := node.(ast.ScalarNode)
	if !ok {
		return nil, "", fmt.Errorf("%s is not a scalar", VersionKey)
	}
	previous := fmt.Sprint(scalar.GetValue())

	if out, ok := spliceYAMLScalar(data, node.GetToken(), version); ok {
		return out, previous, nil
	}

	// The token could not be mapped back onto the source; fall back to
	// rewriting through the AST.
	if err := versionPath.ReplaceWithReader(file, strings.NewReader(strconv.Quote(version))); err != nil {
		return nil, "", err
	}
	return []byte(file.String() + "\n"), previous, nil
}

func isMapping(n ast.Node) bool {
	switch n.(type) {
	case *ast.MappingNode, *ast.MappingValueNode:
		return true
	}
	return false
}

// spliceYAMLScalar overwrites the source text of tok with version. It reports
// false when the text at the token position does not match the token.
func spliceYAMLScalar(data []byte, tok *token.Token, version string) ([]byte, bool) {
	if tok == nil || tok.Position == nil {
		return nil, false
	}
	start, ok := offsetOf(data, tok.Position.Line, tok.Position.Column)
	if !ok {
		return nil, false
	}

	var raw, replacement string
	switch tok.Type {
	case token.DoubleQuoteType:
		raw = `"` + tok.Value + `"`
		replacement = `"` + version + `"`
	case token.SingleQuoteType:
		raw = "'" + tok.Value + "'"
		replacement = "'" + version + "'"
	default:
		raw = tok.Value
		replacement = version
	}

	if !bytes.HasPrefix(data[start:], []byte(raw)) {
		return nil, false
	}

	out := make([]byte, 0, len(data)-len(raw)+len(replacement))
	out = append(out, data[:start]...)
	out = append(out, replacement...)
	out = append(out, data[start+len(raw):]...)
	return out, true
}

// offsetOf converts a 1-based line and rune column into a byte offset.
func offsetOf(data []byte, line, column int) (int, bool) {
	if line < 1 || column < 1 {
		return 0, false
	}
	off := 0
	for l := 1; l < line; l++ {
		nl := bytes.IndexByte(data[off:], '\n')
		if nl < 0 {
			return 0, false
		}
		off += nl + 1
	}
	for c := 1; c < column; c++ {
		if off >= len(data) || data[off] == '\n' {
			return 0, false
		}
		_, size := utf8.DecodeRune(data[off:])
		off += size
	}
	return off, off <= len(data)
}

func appendYAMLVersion(data []byte, version string) []byte {
	out := make([]byte, 0, len(data)+len(version)+16)
	out = append(out, data...)
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	out = append(out, VersionKey+": "...)
	out = append(out, strconv.Quote(version)...)
	out = append(out, '\n')
	return out
}
