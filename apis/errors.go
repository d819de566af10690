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

package apis

// FriendlyError is an error that can describe itself to a client.
//
// Friendly returns a fresh, plain mapping that is safe to marshal and to
// expose: internal and excluded fields are already stripped and the
// "success": false marker is present.
type FriendlyError interface {
	error

	// Friendly returns the client-facing projection of the error.
	Friendly() map[string]any
}

// CodedError is an error that carries a numeric, application-level code,
// e.g. 4004. Zero means "no code".
type CodedError interface {
	error

	// Code returns the application-level error code.
	Code() int
}

// StatusError is an error that suggests a transport status, usually an HTTP
// status. Zero means "no suggestion"; mappers then fall back to their own
// rules.
type StatusError interface {
	error

	// StatusCode returns the suggested transport status.
	StatusCode() int
}

// CausedError is an error that exposes its immediate underlying cause.
// It matches the errors.Unwrap contract.
type CausedError interface {
	error

	// Unwrap returns the underlying cause, or nil.
	Unwrap() error
}
