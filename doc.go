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

// Package errkind builds hierarchies of structured error kinds.
//
// A Kind is an immutable descriptor: a name plus default attributes (code,
// statusCode, message, custom fields), behavior methods, an optional
// constructor and a set of fields hidden from clients. Kinds are declared
// once, usually in a package-level var block, and specialized with Define:
//
//	var (
//	    ApiError = errkind.MustDefine("ApiError",
//	        errkind.Code(5005),
//	        errkind.StatusCode(500),
//	        errkind.Message("api error"),
//	        errkind.Exclude("qs"),
//	    )
//
//	    NotFoundError = ApiError.MustDefine("NotFoundError",
//	        errkind.Code(4004),
//	        errkind.StatusCode(404),
//	        errkind.Message("not found"),
//	    )
//	)
//
// A child Kind inherits every attribute and method of its parent and may
// override any of them. Exclusions only accumulate: a field hidden by an
// ancestor stays hidden in every descendant. A constructor declared on a Kind
// is used by its descendants until one of them declares its own.
//
// Instances are created per occurrence and are ordinary Go errors:
//
//	err := NotFoundError.New()
//	NotFoundError.Is(err) // true
//	ApiError.Is(err)      // true
//	errkind.Root.Is(err)  // true
//
// Friendly returns the client-facing projection of an instance: every field
// except reserved structural keys (see package attr) and the Kind's
// exclusions, plus "success": false. Rendering that projection over HTTP or
// gRPC is left to the httpx and grpcx packages.
package errkind
