/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package lineage

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Path is the ordered list of Kind names from the outermost ancestor to the
// Kind itself. A nil Path belongs to the root Kind.
type Path []string

// String returns the dot-joined form of the path.
func (p Path) String() string {
	return strings.Join(p, Sep)
}

// Leaf returns the last name of the path, or "" for the root path.
func (p Path) Leaf() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// HasPrefix reports whether q is a (non-strict) prefix of p.
func (p Path) HasPrefix(q Path) bool {
	if len(q) > len(p) {
		return false
	}
	for i := range q {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Append returns a new Path with name added at the end. p is not modified.
func (p Path) Append(name string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, name)
}

// Sep separates segments in a Pattern.
const Sep = "."

// Wildcard matches exactly one Kind name inside a Pattern.
const Wildcard = "*"

// Pattern is the canonical, validated textual form of a lineage rule.
type Pattern string

const (
	// MaxSegments bounds how deep a rule may reach into the hierarchy.
	MaxSegments = 16

	// patternFmt accepts identifier-like segments or the wildcard.
	patternFmt = `^(\*|[A-Za-z_][A-Za-z0-9_]*)(\.(\*|[A-Za-z_][A-Za-z0-9_]*))*$`
)

var patternRe = regexp.MustCompile(patternFmt)

var (
	// ErrPatternInvalid is returned when a value cannot be parsed as a Pattern.
	ErrPatternInvalid = errors.New("errkind: invalid lineage pattern")
)

var (
	_ encoding.TextMarshaler   = (*Pattern)(nil)
	_ encoding.TextUnmarshaler = (*Pattern)(nil)
)

// Normalize trims surrounding spaces and converts "/" separators to ".".
// Kind names are case-sensitive, so the case is left untouched.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, "/", Sep)
}

// ParsePattern normalizes and validates s.
//
// A pattern made only of wildcards is rejected: it would match every Kind at
// that depth regardless of its branch.
func ParsePattern(s string) (Pattern, error) {
	s = Normalize(s)
	if !patternRe.MatchString(s) {
		return "", ErrPatternInvalid
	}
	segs := strings.Split(s, Sep)
	if len(segs) > MaxSegments {
		return "", ErrPatternInvalid
	}
	allWild := true
	for _, seg := range segs {
		if seg != Wildcard {
			allWild = false
			break
		}
	}
	if allWild {
		return "", ErrPatternInvalid
	}
	return Pattern(s), nil
}

// MustParsePattern is the panic-on-error variant of ParsePattern.
func MustParsePattern(s string) Pattern {
	p, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Segments splits the pattern into its segments.
func (p Pattern) Segments() []string {
	if p == "" {
		return nil
	}
	return strings.Split(string(p), Sep)
}

// String returns the canonical textual form of the pattern.
func (p Pattern) String() string {
	return string(p)
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) {
	if _, err := ParsePattern(string(p)); err != nil {
		return nil, err
	}
	return []byte(p), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pattern) UnmarshalText(text []byte) error {
	parsed, err := ParsePattern(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
