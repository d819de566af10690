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

package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/grpc/codes"

	"dirpx.dev/errkind"
	"dirpx.dev/errkind/apis"
	"dirpx.dev/errkind/lineage"
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

func newWriter(t *testing.T, opts ...mapper.Option) Writer {
	t.Helper()
	m, err := mapper.New(opts...)
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	return Writer{Mapper: m}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestWrite_Instance(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	w.Write(rec, fmt.Errorf("lookup: %w", notFoundError.New().Set("qs", "?id=1").Set("id", "u-1")))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}
	want := map[string]any{
		"name":       "NotFoundError",
		"code":       float64(4004),
		"statusCode": float64(404),
		"message":    "not found",
		"id":         "u-1",
		"success":    false,
	}
	if diff := cmp.Diff(want, decode(t, rec)); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_MapperRuleWins(t *testing.T) {
	w := newWriter(t, mapper.WithHTTPRule("ApiError.NotFoundError", http.StatusGone))
	rec := httptest.NewRecorder()
	w.Write(rec, notFoundError.New())
	if rec.Code != http.StatusGone {
		t.Fatalf("status = %d, want 410", rec.Code)
	}
}

func TestWrite_ForeignError(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()
	w.Write(rec, errors.New("secret dsn leaked"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	want := map[string]any{
		"name":       "InternalError",
		"statusCode": float64(500),
		"message":    "internal error",
		"success":    false,
	}
	if diff := cmp.Diff(want, decode(t, rec)); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_Nil(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()
	w.Write(rec, nil)
	if rec.Body.Len() != 0 {
		t.Fatalf("nil error must not write a body, got %q", rec.Body.String())
	}
}

func TestInstance_WrapsForeignErrors(t *testing.T) {
	cause := errors.New("boom")
	e := Instance(cause)
	if !InternalError.Is(e) || !errors.Is(e, cause) {
		t.Fatal("foreign error must become an InternalError caused by it")
	}
	nf := notFoundError.New()
	if Instance(nf) != nf {
		t.Fatal("instances must be returned as-is")
	}
}

func TestHandler(t *testing.T) {
	w := newWriter(t)
	h := w.Handler(func(rw http.ResponseWriter, r *http.Request) error {
		if r.URL.Query().Get("id") == "" {
			return notFoundError.New()
		}
		rw.WriteHeader(http.StatusNoContent)
		return nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users?id=1", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestHandler_InformationalStatusCode(t *testing.T) {
	early := errkind.MustDefine("EarlyHintsError",
		errkind.StatusCode(http.StatusEarlyHints),
		errkind.Message("boom"),
	)
	w := newWriter(t)
	srv := httptest.NewServer(w.Handler(func(http.ResponseWriter, *http.Request) error {
		return early.New()
	}))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("wire status = %d, want 500", resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(b, &body); err != nil {
		t.Fatalf("decode body %q: %v", b, err)
	}
	if body["message"] != "boom" || body["success"] != false {
		t.Fatalf("unexpected body: %v", body)
	}
}

// fixedMapper resolves every lineage to the same status.
type fixedMapper struct{ st apis.Status }

func (m fixedMapper) HTTPStatus(lineage.Path, int) int        { return m.st.HTTP }
func (m fixedMapper) GRPCStatus(lineage.Path, int) codes.Code { return m.st.GRPC }
func (m fixedMapper) Status(lineage.Path, int) apis.Status    { return m.st }
func (m fixedMapper) Explain(lineage.Path, int) string        { return "fixed" }

func TestWrite_MapperReturnsNonFinalStatus(t *testing.T) {
	w := Writer{Mapper: fixedMapper{apis.Status{HTTP: http.StatusContinue, GRPC: codes.Internal}}}
	rec := httptest.NewRecorder()
	w.Write(rec, notFoundError.New())
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestWrite_NonFiniteAttribute(t *testing.T) {
	ratio := errkind.MustDefine("RatioError",
		errkind.StatusCode(http.StatusBadRequest),
		errkind.Attr("ratio", math.NaN()),
	)
	w := newWriter(t)
	rec := httptest.NewRecorder()
	w.Write(rec, ratio.New())

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	want := map[string]any{
		"name":       "RatioError",
		"statusCode": float64(400),
		"ratio":      "NaN",
		"success":    false,
	}
	if diff := cmp.Diff(want, decode(t, rec)); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_UnencodableProjection(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()
	w.Write(rec, notFoundError.New().Set("raw", "\xff\xfe"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if diff := cmp.Diff(map[string]any{"success": false}, decode(t, rec)); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}
