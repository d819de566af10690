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

package attr

import (
	"errors"
	"slices"
	"strings"
)

// Well-known attribute keys.
const (
	// Name holds the Kind name. It is set on every instance at construction
	// and is not declarable as an attribute.
	Name = "name"

	// Code is the numeric, application-level error code (e.g. 4004).
	Code = "code"

	// StatusCode is the transport status suggested by the Kind, usually an
	// HTTP status (e.g. 404).
	StatusCode = "statusCode"

	// Message is the human-readable explanation.
	Message = "message"

	// Description is an optional longer explanation.
	Description = "description"

	// Success is the marker every friendly projection carries, always false.
	Success = "success"
)

// Reserved structural keys.
const (
	IsError   = "isError"
	Exclude   = "exclude"
	ShowStack = "showStack"
	Ctor      = "ctor"
	Methods   = "methods"
)

// reserved is the denylist checked when declaring attributes and when
// building friendly projections.
var reserved = map[string]struct{}{
	IsError:   {},
	Exclude:   {},
	ShowStack: {},
	Ctor:      {},
	Methods:   {},
}

var (
	// ErrKeyInvalid is returned when a value cannot be used as an attribute key.
	ErrKeyInvalid = errors.New("errkind: invalid attribute key")
)

// IsReserved reports whether key is one of the reserved structural keys.
func IsReserved(key string) bool {
	_, ok := reserved[key]
	return ok
}

// Reserved returns the reserved structural keys in sorted order.
func Reserved() []string {
	out := make([]string, 0, len(reserved))
	for k := range reserved {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Validate checks that key has the basic shape of an attribute key: it must
// be non-empty and must not carry surrounding whitespace.
//
// Reserved keys pass validation; they are filtered out, not rejected.
func Validate(key string) error {
	if key == "" || strings.TrimSpace(key) != key {
		return ErrKeyInvalid
	}
	return nil
}
