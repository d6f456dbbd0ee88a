package manifest

import (
	"bytes"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/tidwall/jsonc"
)

// setJSONVersion locates the top-level "version" member and splices the new
// value over the old one. Comments and trailing commas are tolerated; jsonc
// keeps byte offsets stable so spans found in the cleaned copy apply to the
// original.
func setJSONVersion(data []byte, version string) ([]byte, string, error) {
	clean := jsonc.ToJSON(data)

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(clean, &doc); err != nil {
		return nil, "", fmt.Errorf("manifest is not a JSON object: %w", err)
	}

	encoded, err := json.Marshal(version)
	if err != nil {
		return nil, "", err
	}

	s := &jsonScanner{buf: clean}
	open, members, err := s.topLevelMembers()
	if err != nil {
		return nil, "", err
	}

	// Duplicate keys resolve to the last occurrence, as in Unmarshal.
	var target *member
	for i := range members {
		if members[i].key == VersionKey {
			target = &members[i]
		}
	}

	if target == nil {
		return insertJSONMember(data, clean, open, encoded), "", nil
	}

	raw := clean[target.valueStart:target.valueEnd]
	var previous string
	if err := json.Unmarshal(raw, &previous); err != nil {
		// Non-string versions are replaced but reported verbatim.
		previous = string(raw)
	}

	out := make([]byte, 0, len(data)+len(encoded))
	out = append(out, data[:target.valueStart]...)
	out = append(out, encoded...)
	out = append(out, data[target.valueEnd:]...)
	return out, previous, nil
}

// insertJSONMember adds "version" as the first member of the object opened
// at offset open, copying the whitespace that precedes the existing first
// member so indentation matches.
func insertJSONMember(data, clean []byte, open int, encoded []byte) []byte {
	first := skipSpace(clean, open+1)

	var ins bytes.Buffer
	if clean[first] == '}' {
		ins.WriteString("\n  \"version\": ")
		ins.Write(encoded)
		ins.WriteString("\n")
	} else {
		// Indentation of the first member, without any comment text.
		indent := clean[open+1 : first]
		if nl := bytes.LastIndexByte(indent, '\n'); nl >= 0 {
			indent = indent[nl:]
		}
		ins.WriteString(`"version":`)
		if len(indent) > 0 {
			ins.WriteByte(' ')
		}
		ins.Write(encoded)
		ins.WriteByte(',')
		ins.Write(indent)
	}

	out := make([]byte, 0, len(data)+ins.Len())
	out = append(out, data[:first]...)
	out = append(out, ins.Bytes()...)
	out = append(out, data[first:]...)
	return out
}

type member struct {
	key        string
	valueStart int
	valueEnd   int
}

var errTruncated = errors.New("unexpected end of JSON input")

// jsonScanner walks an already validated JSON document. It only needs to
// find member boundaries, so it does not re-validate values.
type jsonScanner struct {
	buf []byte
}

func (s *jsonScanner) topLevelMembers() (int, []member, error) {
	i := skipSpace(s.buf, 0)
	if i >= len(s.buf) || s.buf[i] != '{' {
		return 0, nil, errors.New("manifest is not a JSON object")
	}
	open := i
	i++

	var members []member
	for {
		i = skipSpace(s.buf, i)
		if i >= len(s.buf) {
			return 0, nil, errTruncated
		}
		switch s.buf[i] {
		case '}':
			return open, members, nil
		case ',':
			i++
			continue
		case '"':
		default:
			return 0, nil, fmt.Errorf("unexpected %q at offset %d", s.buf[i], i)
		}

		keyEnd, err := s.stringEnd(i)
		if err != nil {
			return 0, nil, err
		}
		var key string
		if err := json.Unmarshal(s.buf[i:keyEnd], &key); err != nil {
			return 0, nil, err
		}

		i = skipSpace(s.buf, keyEnd)
		if i >= len(s.buf) || s.buf[i] != ':' {
			return 0, nil, fmt.Errorf("expected ':' after key %q", key)
		}
		start := skipSpace(s.buf, i+1)
		end, err := s.valueEnd(start)
		if err != nil {
			return 0, nil, err
		}

		members = append(members, member{key: key, valueStart: start, valueEnd: end})
		i = end
	}
}

// stringEnd returns the offset just past the string starting at i.
func (s *jsonScanner) stringEnd(i int) (int, error) {
	for j := i + 1; j < len(s.buf); j++ {
		switch s.buf[j] {
		case '\\':
			j++
		case '"':
			return j + 1, nil
		}
	}
	return 0, errTruncated
}

// valueEnd returns the offset just past the value starting at i.
func (s *jsonScanner) valueEnd(i int) (int, error) {
	if i >= len(s.buf) {
		return 0, errTruncated
	}
	switch s.buf[i] {
	case '"':
		return s.stringEnd(i)
	case '{', '[':
		depth := 0
		for j := i; j < len(s.buf); j++ {
			switch s.buf[j] {
			case '"':
				end, err := s.stringEnd(j)
				if err != nil {
					return 0, err
				}
				j = end - 1
			case '{', '[':
				depth++
			case '}', ']':
				depth--
				if depth == 0 {
					return j + 1, nil
				}
			}
		}
		return 0, errTruncated
	default:
		j := i
		for j < len(s.buf) && !isDelimiter(s.buf[j]) {
			j++
		}
		return j, nil
	}
}

func isDelimiter(c byte) bool {
	switch c {
	case ',', '}', ']', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func skipSpace(buf []byte, i int) int {
	for i < len(buf) {
		switch buf[i] {
		case ' ', '\t', '\n', '\r':
			i++
		default:
			return i
		}
	}
	return i
}
