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

// Package httpx writes errkind errors as HTTP responses.
package httpx

import (
	"errors"
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/errkind"
	"dirpx.dev/errkind/adapter"
	"dirpx.dev/errkind/apis"
)

// InternalError is the Kind used for errors that are not errkind instances.
// Its message is generic on purpose; the original error is kept as the cause.
var InternalError = errkind.MustDefine("InternalError",
	errkind.StatusCode(http.StatusInternalServerError),
	errkind.Message("internal error"),
)

// Writer is a thin adapter that turns an error into an HTTP response using
// the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Instance returns the errkind instance carried by err. Errors that do not
// wrap an instance become an InternalError caused by err.
func Instance(err error) *errkind.Instance {
	var e *errkind.Instance
	if errors.As(err, &e) {
		return e
	}
	return InternalError.New().WithCause(err)
}

// Write serializes the friendly projection of err and writes it to rw. The
// HTTP status is resolved via the Mapper from the Kind lineage and the
// instance's statusCode. A nil err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	e := Instance(err)
	st := w.Mapper.Status(e.Kind().Lineage(), e.StatusCode())

	status := st.HTTP
	if status < http.StatusOK || status > 599 {
		// A 1xx header is not final; net/http would send 200 with the body.
		status = http.StatusInternalServerError
	}

	// IMPORTANT: protojson must be used to serialize the structpb.Struct;
	// encoding/json would expose the proto wrapper fields.
	b, merr := (protojson.MarshalOptions{
		EmitUnpopulated: false,
	}).Marshal(adapter.ToStruct(e.Friendly()))
	if merr != nil {
		b = fallbackBody
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_, _ = rw.Write(b)
}

// fallbackBody is written when the friendly projection cannot be encoded,
// e.g. because a field holds invalid UTF-8.
var fallbackBody = []byte(`{"success":false}`)

// Handler adapts a handler that returns an error into an http.Handler that
// writes that error with w.
func (w Writer) Handler(fn func(http.ResponseWriter, *http.Request) error) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := fn(rw, r); err != nil {
			w.Write(rw, err)
		}
	})
}
