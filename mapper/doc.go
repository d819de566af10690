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

// Package mapper provides deterministic, immutable mappings from errkind
// Kinds to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// Every errkind instance belongs to a Kind, and every Kind has a lineage: the
// names of its ancestors down to itself, e.g. ApiError.NotFoundError. An
// instance may also suggest a status through its statusCode attribute.
// Transport layers need one concrete HTTP status and one gRPC code; package
// mapper turns (lineage, suggested status) into that pair in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - branch-aware: a rule on a Kind applies to all of its descendants;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// HTTP is resolved in the following order:
//
//  1. exact override for the leaf Kind name;
//  2. longest-prefix-match (LPM) of the lineage against the HTTP rules;
//  3. the instance's own statusCode, when it is a valid HTTP status;
//  4. global fallback (500).
//
// gRPC uses the same first two tiers with its own rules, then derives the
// code from the resolved HTTP status (404 -> NotFound, 503 -> Unavailable,
// ...), then falls back to codes.Internal. The gRPC result is never
// codes.OK, even for Kinds that declare a 2xx statusCode.
//
// Rules are lineage patterns: "."-separated Kind names where "*" matches
// exactly one name:
//
//	WithHTTPRule("ApiError", http.StatusInternalServerError)
//	WithHTTPRule("ApiError.*.Timeout", http.StatusGatewayTimeout)
//
// The more specific rule wins.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride("TeapotError", 418),
//	    mapper.WithGRPCRule("ApiError.AuthError", int(codes.Unauthenticated)),
//	)
//	if err != nil {
//	    // invalid pattern or status
//	}
//
//	st := m.Status(inst.Kind().Lineage(), inst.StatusCode())
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a lineage was
// resolved, including which tier matched and, for rules, which pattern was
// used. It is intended for inspection and logging, not for machine parsing.
package mapper
