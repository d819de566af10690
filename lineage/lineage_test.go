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

package lineage

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPath_Basics(t *testing.T) {
	p := Path{"ApiError", "NotFoundError"}

	if p.String() != "ApiError.NotFoundError" {
		t.Fatalf("String() = %q", p.String())
	}
	if p.Leaf() != "NotFoundError" {
		t.Fatalf("Leaf() = %q", p.Leaf())
	}
	if Path(nil).Leaf() != "" || Path(nil).String() != "" {
		t.Fatal("root path must render empty")
	}
	if !p.HasPrefix(Path{"ApiError"}) || !p.HasPrefix(p) || !p.HasPrefix(nil) {
		t.Fatal("HasPrefix must accept ancestors and itself")
	}
	if p.HasPrefix(Path{"NotFoundError"}) || p.HasPrefix(Path{"ApiError", "NotFoundError", "X"}) {
		t.Fatal("HasPrefix must reject unrelated or longer paths")
	}
}

func TestPath_AppendDoesNotAlias(t *testing.T) {
	base := make(Path, 1, 4)
	base[0] = "ApiError"

	a := base.Append("A")
	b := base.Append("B")

	if diff := cmp.Diff(Path{"ApiError", "A"}, a); diff != "" {
		t.Fatalf("Append mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Path{"ApiError", "B"}, b); diff != "" {
		t.Fatalf("Append mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePattern_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want Pattern
	}{
		{"ApiError", "ApiError"},
		{"  ApiError.NotFoundError ", "ApiError.NotFoundError"},
		{"ApiError/NotFoundError", "ApiError.NotFoundError"},
		{"ApiError.*.Timeout", "ApiError.*.Timeout"},
		{"*.Timeout", "*.Timeout"},
		{"_internal", "_internal"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePattern(tt.in)
			if err != nil {
				t.Fatalf("ParsePattern(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParsePattern(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePattern_Invalid(t *testing.T) {
	for _, in := range []string{"", "*", "*.*", "Api..Error", "Api-Error", "1Api", ".Api", "Api."} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParsePattern(in); !errors.Is(err, ErrPatternInvalid) {
				t.Fatalf("ParsePattern(%q) = %v, want ErrPatternInvalid", in, err)
			}
		})
	}
}

func TestPattern_Segments(t *testing.T) {
	got := MustParsePattern("ApiError.*.Timeout").Segments()
	if diff := cmp.Diff([]string{"ApiError", "*", "Timeout"}, got); diff != "" {
		t.Fatalf("Segments mismatch (-want +got):\n%s", diff)
	}
	if Pattern("").Segments() != nil {
		t.Fatal("empty pattern must have no segments")
	}
}

func TestPattern_Text(t *testing.T) {
	var p Pattern
	if err := p.UnmarshalText([]byte(" ApiError/NotFoundError ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if p != "ApiError.NotFoundError" {
		t.Fatalf("UnmarshalText = %q", p)
	}
	b, err := p.MarshalText()
	if err != nil || string(b) != "ApiError.NotFoundError" {
		t.Fatalf("MarshalText = %q, %v", b, err)
	}
	if _, err := Pattern("bad..pattern").MarshalText(); err == nil {
		t.Fatal("MarshalText must reject invalid patterns")
	}
}

func TestMustParsePattern_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("MustParsePattern should panic on invalid input")
		}
	}()
	_ = MustParsePattern("*")
}
