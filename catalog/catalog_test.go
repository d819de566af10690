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

package catalog

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dirpx.dev/errkind"
)

func TestLoadFile(t *testing.T) {
	c, err := LoadFile(filepath.Join("testdata", "kinds.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	want := []string{"ApiError", "NotFoundError", "ApiErrorWithExclude", "ErrorWithExcludeProps"}
	if diff := cmp.Diff(want, c.Names()); diff != "" {
		t.Fatalf("Names mismatch (-want +got):\n%s", diff)
	}
	if c.Len() != 4 {
		t.Fatalf("Len() = %d", c.Len())
	}

	nf, ok := c.Kind("NotFoundError")
	if !ok {
		t.Fatal("NotFoundError missing")
	}
	api, _ := c.Kind("ApiError")
	e := nf.New().Set("qs", "?id=1")
	if !api.Is(e) || !errkind.Root.Is(e) {
		t.Fatal("nested kind must descend from its parent")
	}
	wantFriendly := map[string]any{
		"name":       "NotFoundError",
		"code":       4004,
		"statusCode": 404,
		"message":    "not found",
		"docs":       "https://example.com/errors/not-found",
		"success":    false,
	}
	if diff := cmp.Diff(wantFriendly, e.Friendly()); diff != "" {
		t.Fatalf("Friendly mismatch (-want +got):\n%s", diff)
	}

	props, _ := c.Kind("ErrorWithExcludeProps")
	if diff := cmp.Diff([]string{"customInt", "message", "qs"}, props.Exclusions()); diff != "" {
		t.Fatalf("comma-separated exclusions must accumulate (-want +got):\n%s", diff)
	}
	if props.New().StatusCode() != 505 {
		t.Fatal("parent reference must inherit attributes")
	}
}

func TestLoad_JSON(t *testing.T) {
	doc := `{"kinds": [{"name": "ApiError", "code": 1, "children": [{"name": "Leaf", "ctor": "dropped"}]}]}`
	c, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	leaf, _ := c.Kind("Leaf")
	if diff := cmp.Diff(map[string]any{"code": 1}, leaf.Attributes()); diff != "" {
		t.Fatalf("Attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_WithBase(t *testing.T) {
	base := errkind.MustDefine("ServiceError", errkind.Exclude("trace"))
	c, err := Load(strings.NewReader("kinds:\n  - name: Timeout\n"), WithBase(base))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	k, _ := c.Kind("Timeout")
	if !k.IsA(base) || !k.Excludes("trace") {
		t.Fatal("top-level kinds must specialize the base")
	}

	var depths []int
	c.Walk(func(_ *errkind.Kind, depth int) { depths = append(depths, depth) })
	if diff := cmp.Diff([]int{0}, depths); diff != "" {
		t.Fatalf("Walk depths (-want +got):\n%s", diff)
	}
}

func TestLoad_Walk(t *testing.T) {
	c, err := LoadFile(filepath.Join("testdata", "kinds.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	var got []string
	c.Walk(func(k *errkind.Kind, depth int) {
		got = append(got, strings.Repeat("-", depth)+k.Name())
	})
	want := []string{"ApiError", "-NotFoundError", "ApiErrorWithExclude", "-ErrorWithExcludeProps"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Walk mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Empty(t *testing.T) {
	c, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", c.Len())
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"missing name", "kinds:\n  - code: 1\n", errkind.ErrInvalidDefinition},
		{"duplicate", "kinds:\n  - name: A\n  - name: A\n", ErrDuplicateKind},
		{"unknown parent", "kinds:\n  - name: B\n    parent: A\n", ErrUnknownParent},
		{"forward parent", "kinds:\n  - name: B\n    parent: A\n  - name: A\n", ErrUnknownParent},
		{"nested duplicate", "kinds:\n  - name: A\n    children:\n      - name: A\n", ErrDuplicateKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Load(strings.NewReader("kinds: [")); err == nil {
		t.Fatal("malformed document must fail")
	}
	if _, err := Load(strings.NewReader("kinds:\n  - name: A\n    parent: X\n    children: []\n")); err == nil {
		t.Fatal("unknown parent must fail")
	}
	if _, err := LoadFile(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Fatal("missing file must fail")
	}
}
