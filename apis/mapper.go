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

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/errkind/lineage"
)

// Mapper is an immutable, concurrency-safe view of the status rules.
// It resolves the lineage of a Kind, together with the status code the
// instance itself suggests, into transport statuses for HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status for an error of the given lineage.
	// suggested is the instance's own statusCode (0 if none).
	HTTPStatus(p lineage.Path, suggested int) int

	// GRPCStatus returns the gRPC status for an error of the given lineage.
	// It never returns codes.OK.
	GRPCStatus(p lineage.Path, suggested int) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same matching logic.
	Status(p lineage.Path, suggested int) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(p lineage.Path, suggested int) string
}

// Status represents a resolved pair of transport statuses for a single error.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
