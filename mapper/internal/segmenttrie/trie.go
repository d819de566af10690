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

package segmenttrie

import (
	"errors"
	"strings"
)

// Wildcard is the segment that matches exactly one path segment.
const Wildcard = "*"

// Trie is a segment-aware prefix index over Kind lineages.
// Each node represents one Kind name; the wildcard "*" matches exactly one
// name. The trie supports longest-prefix-match (LPM) with segment
// boundaries, so a rule attached to a deeper descendant wins over a rule
// attached to one of its ancestors.
type Trie[T any] struct {
	// children contains next segments, including "*" for a single-segment wildcard.
	children map[string]*Trie[T]
	// hasVal marks that this node carries a value for the prefix ending here.
	hasVal bool
	val    T
	// pattern is the dotted prefix as inserted, set only when hasVal=true.
	// It is reported by MatchWithPattern for Explain().
	pattern string
}

var (
	// ErrInvalidPrefix is returned when inserting a prefix that is empty,
	// has empty segments, or consists only of wildcards.
	ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")
)

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with the given prefix segments.
//
// Examples:
//
//	["ApiError"]
//	["ApiError", "NotFoundError"]
//	["ApiError", "*", "Timeout"]
//
// A prefix made only of "*" segments is rejected, because it is too generic.
// Inserting the same prefix twice keeps the last value.
func (t *Trie[T]) Insert(segs []string, val T) error {
	if t == nil || len(segs) == 0 {
		return ErrInvalidPrefix
	}

	allWild := true
	for _, s := range segs {
		if s == "" {
			return ErrInvalidPrefix
		}
		if s != Wildcard {
			allWild = false
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = strings.Join(segs, ".")
	return nil
}

// Match finds the value of the deepest prefix matching path.
// Both exact segment matches and "*" wildcard branches are explored; at equal
// depth the exact branch wins.
func (t *Trie[T]) Match(path []string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(path)
	return v, ok
}

// MatchWithPattern is Match that also returns the pattern of the matching
// rule, for diagnostics.
func (t *Trie[T]) MatchWithPattern(path []string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	best := -1
	var bestVal T
	var bestPat string

	var dfs func(n *Trie[T], depth int)
	dfs = func(n *Trie[T], depth int) {
		if n.hasVal && depth > best {
			best = depth
			bestVal = n.val
			bestPat = n.pattern
		}
		if depth >= len(path) {
			return
		}
		seg := path[depth]
		if seg == "" {
			return
		}
		// exact first, so it claims a depth before the wildcard can.
		if next, ok := n.children[seg]; ok {
			dfs(next, depth+1)
		}
		if next, ok := n.children[Wildcard]; ok {
			dfs(next, depth+1)
		}
	}

	dfs(t, 0)
	if best < 0 {
		return zero, false, ""
	}
	return bestVal, true, bestPat
}
