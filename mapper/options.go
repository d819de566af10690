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

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPOverride registers an exact HTTP status for every Kind named kind.
// Overrides take precedence over rules and over the instance's statusCode.
func WithHTTPOverride(kind string, http int) Option {
	return func(b *builder) { b.httpOverride[kind] = http }
}

// WithGRPCOverride registers an exact gRPC code for every Kind named kind.
func WithGRPCOverride(kind string, grpc int) Option {
	return func(b *builder) { b.grpcOverride[kind] = grpc }
}

// WithHTTPRule adds an HTTP longest-prefix-match rule. pattern is a lineage
// pattern (see package lineage); a more specific pattern wins.
func WithHTTPRule(pattern string, http int) Option {
	return func(b *builder) { b.httpRules = append(b.httpRules, patternRule{pattern, http}) }
}

// WithGRPCRule adds a gRPC longest-prefix-match rule.
func WithGRPCRule(pattern string, grpc int) Option {
	return func(b *builder) { b.grpcRules = append(b.grpcRules, patternRule{pattern, grpc}) }
}

// WithGRPCForHTTP sets or replaces the gRPC code derived from a resolved
// HTTP status.
func WithGRPCForHTTP(http, grpc int) Option {
	return func(b *builder) { b.derive[http] = grpc }
}

// WithFallback replaces the statuses used when nothing else matched.
func WithFallback(http, grpc int) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
