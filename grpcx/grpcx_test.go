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

package grpcx

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"

	"dirpx.dev/errkind"
	"dirpx.dev/errkind/mapper"
)

var (
	apiError = errkind.MustDefine("ApiError",
		errkind.Code(5005),
		errkind.StatusCode(500),
		errkind.Message("api error"),
		errkind.Exclude("qs"),
	)
	notFoundError = apiError.MustDefine("NotFoundError",
		errkind.Code(4004),
		errkind.StatusCode(404),
		errkind.Message("not found"),
	)
)

func intercept(t *testing.T, handlerErr error) error {
	t.Helper()
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	icpt := UnaryServerInterceptor(m)
	_, err = icpt(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/users.v1.Users/Get"},
		func(context.Context, any) (any, error) { return nil, handlerErr })
	return err
}

func TestInterceptor_MapsInstance(t *testing.T) {
	err := intercept(t, fmt.Errorf("get: %w", notFoundError.New().Set("qs", "?id=1")))

	if Code(err) != codes.NotFound {
		t.Fatalf("code = %v, want NotFound", Code(err))
	}
	friendly, ok := ExtractFriendly(err)
	if !ok {
		t.Fatal("friendly projection missing from status details")
	}
	want := map[string]any{
		"name":       "NotFoundError",
		"code":       float64(4004),
		"statusCode": float64(404),
		"message":    "not found",
		"success":    false,
	}
	if diff := cmp.Diff(want, friendly); diff != "" {
		t.Fatalf("friendly mismatch (-want +got):\n%s", diff)
	}
}

func TestInterceptor_PassesThroughForeignErrors(t *testing.T) {
	plain := errors.New("plain")
	if err := intercept(t, plain); err != plain {
		t.Fatalf("foreign error must be returned as-is, got %v", err)
	}
}

func TestInterceptor_Success(t *testing.T) {
	m, _ := mapper.New()
	resp, err := UnaryServerInterceptor(m)(context.Background(), "req", &grpc.UnaryServerInfo{},
		func(_ context.Context, req any) (any, error) { return req, nil })
	if err != nil || resp != "req" {
		t.Fatalf("resp=%v err=%v", resp, err)
	}
}

func TestStatus_NeverOK(t *testing.T) {
	okish := errkind.MustDefine("Accepted", errkind.StatusCode(200))
	m, _ := mapper.New()
	if st := Status(m, okish.New()); st.Code() == codes.OK || st.Err() == nil {
		t.Fatal("an errkind instance must never become a nil gRPC error")
	}
}

func TestExtractFriendly_Missing(t *testing.T) {
	if _, ok := ExtractFriendly(nil); ok {
		t.Fatal("nil error has no details")
	}
	if _, ok := ExtractFriendly(errors.New("x")); ok {
		t.Fatal("non-status error has no details")
	}
	if Code(errors.New("x")) != codes.Unknown {
		t.Fatal("non-status error must map to Unknown")
	}
}
