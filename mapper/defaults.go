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

// defaultGRPC derives a gRPC code from a resolved HTTP status. It follows the
// usual gateway conventions. 2xx/3xx statuses are deliberately absent: an
// error must never travel as codes.OK.
var defaultGRPC = map[int]codes.Code{
	// 4xx: client/protocol/resource issues.
	http.StatusBadRequest:            codes.InvalidArgument,
	http.StatusUnauthorized:          codes.Unauthenticated,
	http.StatusForbidden:             codes.PermissionDenied,
	http.StatusNotFound:              codes.NotFound,
	http.StatusMethodNotAllowed:      codes.Unimplemented,
	http.StatusRequestTimeout:        codes.DeadlineExceeded,
	http.StatusConflict:              codes.Aborted,
	http.StatusGone:                  codes.NotFound, // gRPC has no 410; NotFound is the closest practical choice.
	http.StatusPreconditionFailed:    codes.FailedPrecondition,
	http.StatusRequestEntityTooLarge: codes.OutOfRange,
	http.StatusUnprocessableEntity:   codes.InvalidArgument,
	http.StatusTooEarly:              codes.FailedPrecondition,
	http.StatusTooManyRequests:       codes.ResourceExhausted,
	499:                              codes.Canceled, // nginx "client closed request".

	// 5xx: server / dependency / transient issues.
	http.StatusInternalServerError: codes.Internal,
	http.StatusNotImplemented:      codes.Unimplemented,
	http.StatusBadGateway:          codes.Unavailable,
	http.StatusServiceUnavailable:  codes.Unavailable,
	http.StatusGatewayTimeout:      codes.DeadlineExceeded,
}

// validHTTP reports whether s can be written as the final status of an error
// response. 1xx statuses are informational: net/http would follow them with
// an implicit 200 once the body is written.
func validHTTP(s int) bool {
	return s >= 200 && s <= 599
}

// validGRPC reports whether c is a known, non-OK gRPC code.
func validGRPC(c int) bool {
	return c > int(codes.OK) && c <= int(codes.Unauthenticated)
}
