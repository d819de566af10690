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

package mapper

import (
	"fmt"

	"google.golang.org/grpc/codes"

	"dirpx.dev/errkind/lineage"
	"dirpx.dev/errkind/mapper/internal/segmenttrie"
)

// freezeHTTPOverrides makes an immutable copy of the HTTP overrides map,
// rejecting statuses that cannot be written on the wire.
func freezeHTTPOverrides(src map[string]int) (map[string]int, error) {
	if len(src) == 0 {
		return nil, nil
	}
	dst := make(map[string]int, len(src))
	for k, v := range src {
		if !validHTTP(v) {
			return nil, fmt.Errorf("mapper: invalid HTTP override %d for kind %q", v, k)
		}
		dst[k] = v
	}
	return dst, nil
}

// freezeGRPCOverrides makes an immutable copy of the gRPC overrides map,
// converting ints into typed gRPC codes.
func freezeGRPCOverrides(src map[string]int) (map[string]codes.Code, error) {
	if len(src) == 0 {
		return nil, nil
	}
	dst := make(map[string]codes.Code, len(src))
	for k, v := range src {
		if !validGRPC(v) {
			return nil, fmt.Errorf("mapper: invalid gRPC override %d for kind %q", v, k)
		}
		dst[k] = codes.Code(v)
	}
	return dst, nil
}

// freezeDerive makes an immutable copy of the HTTP -> gRPC derivation table.
func freezeDerive(src map[int]int) (map[int]codes.Code, error) {
	dst := make(map[int]codes.Code, len(src))
	for h, g := range src {
		if !validGRPC(g) {
			return nil, fmt.Errorf("mapper: invalid gRPC code %d derived from HTTP %d", g, h)
		}
		dst[h] = codes.Code(g)
	}
	return dst, nil
}

// buildTrie compiles rules into a segment trie. Each pattern is normalized
// and validated with lineage.ParsePattern before insertion.
func buildTrie[T any](rules []patternRule, valid func(int) bool, conv func(int) T) (*segmenttrie.Trie[T], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	t := segmenttrie.New[T]()
	for _, r := range rules {
		p, err := lineage.ParsePattern(r.pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", r.pattern, err)
		}
		if !valid(r.val) {
			return nil, fmt.Errorf("pattern %q: invalid status %d", r.pattern, r.val)
		}
		if err := t.Insert(p.Segments(), conv(r.val)); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
	}
	return t, nil
}
