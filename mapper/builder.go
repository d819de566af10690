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
	"net/http"

	"google.golang.org/grpc/codes"
)

type patternRule struct {
	// pattern is the raw lineage pattern (may contain "*").
	// It is validated/normalized when we build the trie.
	pattern string
	// val is the numeric transport status to apply when this pattern matches.
	val int
}

type builder struct {
	// httpOverride holds exact per-kind HTTP overrides, keyed by Kind name.
	httpOverride map[string]int
	// grpcOverride holds exact per-kind gRPC overrides as ints; converted in New().
	grpcOverride map[string]int

	// httpRules and grpcRules are compiled into segment tries in New().
	httpRules []patternRule
	grpcRules []patternRule

	// derive maps a resolved HTTP status to a gRPC code, seeded from defaultGRPC.
	derive map[int]int

	// global fallbacks used when nothing else matched.
	fallbackHTTP int
	fallbackGRPC int
}

// newBuilder creates a builder seeded with library defaults.
func newBuilder() *builder {
	b := &builder{
		httpOverride: make(map[string]int),
		grpcOverride: make(map[string]int),
		derive:       make(map[int]int, len(defaultGRPC)),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: int(codes.Internal),
	}
	for k, v := range defaultGRPC {
		b.derive[k] = int(v)
	}
	return b
}
