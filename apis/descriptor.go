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

// ErrorDescriptor is a flat, transport-friendly summary of one error
// occurrence, meant for structured logs, traces and diagnostics.
//
// Unlike the friendly projection it ignores exclusions: it only carries
// identification and resolved statuses, never arbitrary fields.
type ErrorDescriptor struct {
	// Kind is the name of the error's Kind, e.g. "NotFoundError".
	Kind string `json:"kind"`

	// Lineage is the dot-joined path of Kind names, e.g.
	// "ApiError.NotFoundError".
	Lineage string `json:"lineage,omitempty"`

	// Code is the application-level code; 0 when not set.
	Code int `json:"code,omitempty"`

	// HTTPStatus is the resolved HTTP status.
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code (as integer).
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the human-readable message of the occurrence.
	Message string `json:"message,omitempty"`
}
