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

// Package grpcx maps errkind errors onto gRPC statuses.
package grpcx

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errkind"
	"dirpx.dev/errkind/adapter"
	"dirpx.dev/errkind/apis"
)

// Status converts an errkind instance into a gRPC status. The friendly
// projection travels as a google.protobuf.Struct detail; if it cannot be
// attached, the bare status is returned.
func Status(m apis.Mapper, e *errkind.Instance) *gstatus.Status {
	st := m.Status(e.Kind().Lineage(), e.StatusCode())
	base := gstatus.New(st.GRPC, e.Message())

	if with, err := base.WithDetails(adapter.ToStruct(e.Friendly())); err == nil {
		return with
	}
	return base
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that turns
// errkind errors returned by handlers into gRPC statuses resolved through m.
//
// Errors that do not wrap an errkind instance are returned as-is.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var e *errkind.Instance
		if !errors.As(err, &e) {
			// Not ours, return as-is.
			return nil, err
		}
		return nil, Status(m, e).Err()
	}
}

// ExtractFriendly pulls the friendly projection out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractFriendly(err error) (map[string]any, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			return adapter.FromStruct(s), true
		}
	}
	return nil, false
}

// Code returns the gRPC code carried by err, or codes.Unknown for errors
// that are not gRPC statuses.
func Code(err error) gcodes.Code {
	if st, ok := gstatus.FromError(err); ok {
		return st.Code()
	}
	return gcodes.Unknown
}
