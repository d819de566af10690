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
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/errkind/apis"
	"dirpx.dev/errkind/lineage"
	"dirpx.dev/errkind/mapper/internal/segmenttrie"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP -> gRPC derivation, fallbacks).
//  2. Apply user-provided options (overrides, rules, derivations).
//  3. Normalize and validate every pattern (via lineage.ParsePattern) and
//     every status value.
//  4. Build the HTTP and gRPC segment tries.
//  5. Freeze all maps into fresh copies.
//
// Errors returned from this function indicate invalid patterns or statuses.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	if !validHTTP(b.fallbackHTTP) {
		return nil, fmt.Errorf("mapper: invalid HTTP fallback %d", b.fallbackHTTP)
	}
	if !validGRPC(b.fallbackGRPC) {
		return nil, fmt.Errorf("mapper: invalid gRPC fallback %d", b.fallbackGRPC)
	}

	httpTrie, err := buildTrie(b.httpRules, validHTTP, func(v int) int { return v })
	if err != nil {
		return nil, fmt.Errorf("mapper: HTTP rule: %w", err)
	}
	grpcTrie, err := buildTrie(b.grpcRules, validGRPC, func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, fmt.Errorf("mapper: gRPC rule: %w", err)
	}

	httpOverride, err := freezeHTTPOverrides(b.httpOverride)
	if err != nil {
		return nil, err
	}
	grpcOverride, err := freezeGRPCOverrides(b.grpcOverride)
	if err != nil {
		return nil, err
	}
	derive, err := freezeDerive(b.derive)
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpOverride: httpOverride,
		grpcOverride: grpcOverride,
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
		derive:       derive,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: codes.Code(b.fallbackGRPC),
	}, nil
}

// mapper is the immutable apis.Mapper implementation. Lookups are
// O(lineage depth) and safe for concurrent use once constructed.
type mapper struct {
	// httpOverride holds explicit HTTP statuses keyed by leaf Kind name.
	httpOverride map[string]int
	// grpcOverride holds explicit gRPC codes keyed by leaf Kind name.
	grpcOverride map[string]codes.Code

	// httpTrie and grpcTrie resolve statuses by lineage prefix.
	httpTrie *segmenttrie.Trie[int]
	grpcTrie *segmenttrie.Trie[codes.Code]

	// derive maps a resolved HTTP status to a gRPC code.
	derive map[int]codes.Code

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// Tier names reported by Explain.
const (
	sourceOverride  = "override"
	sourceRule      = "rule"
	sourceSuggested = "suggested"
	sourceDerived   = "derived"
	sourceFallback  = "fallback"
)

// HTTPStatus resolves an HTTP status for the given lineage.
//
// Resolution order (highest to lowest):
//  1. exact override for the leaf Kind name;
//  2. longest-prefix-match rule on the lineage;
//  3. the suggested status, when it is a valid HTTP status;
//  4. fallback (500 unless configured).
func (m *mapper) HTTPStatus(p lineage.Path, suggested int) int {
	v, _, _ := m.resolveHTTP(p, suggested)
	return v
}

// GRPCStatus resolves a gRPC code for the given lineage.
//
// Resolution order:
//  1. exact override for the leaf Kind name;
//  2. longest-prefix-match rule on the lineage;
//  3. derived from the resolved HTTP status;
//  4. fallback (codes.Internal unless configured).
func (m *mapper) GRPCStatus(p lineage.Path, suggested int) codes.Code {
	v, _, _ := m.resolveGRPC(p, suggested)
	return v
}

// Status resolves both HTTP and gRPC using the same inputs.
func (m *mapper) Status(p lineage.Path, suggested int) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(p, suggested),
		GRPC: m.GRPCStatus(p, suggested),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a lineage.
//
// Example output:
//
//	lineage="ApiError.NotFoundError" suggested=404
//	http: source=rule pattern="ApiError" -> 500
//	grpc: source=derived http=500 -> INTERNAL(13)
//
// source is one of override, rule, suggested, derived or fallback.
func (m *mapper) Explain(p lineage.Path, suggested int) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "lineage=%q suggested=%d\n", p.String(), suggested)

	hv, hsrc, hpat := m.resolveHTTP(p, suggested)
	switch hsrc {
	case sourceRule:
		_, _ = fmt.Fprintf(&b, "http: source=%s pattern=%q -> %d\n", hsrc, hpat, hv)
	default:
		_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", hsrc, hv)
	}

	gv, gsrc, gpat := m.resolveGRPC(p, suggested)
	switch gsrc {
	case sourceRule:
		_, _ = fmt.Fprintf(&b, "grpc: source=%s pattern=%q -> %s", gsrc, gpat, grpcName(gv))
	case sourceDerived:
		_, _ = fmt.Fprintf(&b, "grpc: source=%s http=%d -> %s", gsrc, hv, grpcName(gv))
	default:
		_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s", gsrc, grpcName(gv))
	}
	return b.String()
}

// resolveHTTP returns the HTTP status together with the tier that produced
// it and, for rules, the matching pattern.
func (m *mapper) resolveHTTP(p lineage.Path, suggested int) (int, string, string) {
	if v, ok := m.httpOverride[p.Leaf()]; ok && len(p) > 0 {
		return v, sourceOverride, ""
	}
	if v, ok, pat := m.httpTrie.MatchWithPattern(p); ok {
		return v, sourceRule, pat
	}
	if validHTTP(suggested) {
		return suggested, sourceSuggested, ""
	}
	return m.fallbackHTTP, sourceFallback, ""
}

// resolveGRPC returns the gRPC code together with the tier that produced it
// and, for rules, the matching pattern.
func (m *mapper) resolveGRPC(p lineage.Path, suggested int) (codes.Code, string, string) {
	if v, ok := m.grpcOverride[p.Leaf()]; ok && len(p) > 0 {
		return v, sourceOverride, ""
	}
	if v, ok, pat := m.grpcTrie.MatchWithPattern(p); ok {
		return v, sourceRule, pat
	}
	if v, ok := m.derive[m.HTTPStatus(p, suggested)]; ok {
		return v, sourceDerived, ""
	}
	return m.fallbackGRPC, sourceFallback, ""
}

// grpcName renders a gRPC code as NAME(number).
func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}
