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

package errkind

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"dirpx.dev/errkind/attr"
)

// Instance is one occurrence of a Kind. It implements error.
//
// An Instance is owned by whoever created it: Set and Delete mutate it in
// place without synchronization. Friendly and the getters never mutate.
type Instance struct {
	kind   *Kind
	fields map[string]any
	cause  error
}

var (
	_ error          = (*Instance)(nil)
	_ slog.LogValuer = (*Instance)(nil)
)

// New creates an instance of k.
//
// The instance gets the Kind name under "name" and every merged attribute
// default as its own field. If k has a constructor (its own or an
// ancestor's), it then runs with args and may overwrite any field. A nil
// Kind creates a Root instance.
func (k *Kind) New(args ...any) *Instance {
	if k == nil {
		k = Root
	}
	e := &Instance{
		kind:   k,
		fields: make(map[string]any, len(k.attrs)+1),
	}
	e.fields[attr.Name] = k.name
	maps.Copy(e.fields, k.attrs)

	if k.ctor != nil {
		k.ctor(e, args...)
	}
	return e
}

// Kind returns the Kind e was created from.
func (e *Instance) Kind() *Kind { return e.kind }

// IsA reports whether e is an instance of k or of one of its descendants.
func (e *Instance) IsA(k *Kind) bool {
	return e.kind.IsA(k)
}

// Error implements the built-in error interface.
//
// The format is "<name>: <message>", or "<name>" when there is no message.
func (e *Instance) Error() string {
	if e == nil {
		return "<nil>"
	}
	if msg := e.Message(); msg != "" {
		return e.Name() + ": " + msg
	}
	return e.Name()
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Instance) Unwrap() error { return e.cause }

// WithCause attaches an underlying error and returns e. The cause is visible
// to errors.Is / errors.As and in logs, never in the friendly projection.
func (e *Instance) WithCause(err error) *Instance {
	e.cause = err
	return e
}

// Get returns the field stored under key.
func (e *Instance) Get(key string) (any, bool) {
	v, ok := e.fields[key]
	return v, ok
}

// Set stores v under key and returns e for chaining. Constructors use it to
// override defaults; callers may use it to attach request-specific data.
func (e *Instance) Set(key string, v any) *Instance {
	e.fields[key] = v
	return e
}

// Delete removes the field stored under key.
func (e *Instance) Delete(key string) {
	delete(e.fields, key)
}

// Fields returns a copy of every field currently held by e, including
// excluded and reserved ones.
func (e *Instance) Fields() map[string]any {
	return maps.Clone(e.fields)
}

// Name returns the "name" field, normally the Kind name.
func (e *Instance) Name() string {
	return e.stringField(attr.Name)
}

// Message returns the "message" field, or "" when it is absent.
func (e *Instance) Message() string {
	return e.stringField(attr.Message)
}

// Description returns the "description" field, or "" when it is absent.
func (e *Instance) Description() string {
	return e.stringField(attr.Description)
}

// Code returns the "code" field as an int, or 0 when it is absent or not
// numeric.
func (e *Instance) Code() int {
	return e.intField(attr.Code)
}

// StatusCode returns the "statusCode" field as an int, or 0 when it is
// absent or not numeric.
func (e *Instance) StatusCode() int {
	return e.intField(attr.StatusCode)
}

// HasMethod reports whether name can be called on e.
func (e *Instance) HasMethod(name string) bool {
	_, ok := e.kind.methods[name]
	return ok
}

// Call invokes the method declared under name by e's Kind or the nearest
// ancestor declaring it. It returns ErrUnknownMethod if there is none.
func (e *Instance) Call(name string, args ...any) (any, error) {
	fn, ok := e.kind.methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q on %s", ErrUnknownMethod, name, e.kind)
	}
	return fn(e, args...), nil
}

// Friendly returns the client-facing projection of e.
//
// The result holds every field of e except reserved structural keys and the
// fields excluded by e's Kind or any of its ancestors, plus "success": false.
// The returned map is fresh; e is not modified.
func (e *Instance) Friendly() map[string]any {
	out := make(map[string]any, len(e.fields)+1)
	for k, v := range e.fields {
		if attr.IsReserved(k) || e.kind.Excludes(k) {
			continue
		}
		out[k] = v
	}
	out[attr.Success] = false
	return out
}

// LogValue implements slog.LogValuer.
//
// Logs are internal, so excluded fields are kept; reserved keys are not.
// Keys are sorted to keep the output stable.
func (e *Instance) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.fields)+2)
	attrs = append(attrs, slog.String("kind", e.kind.String()))
	for _, k := range slices.Sorted(maps.Keys(e.fields)) {
		if attr.IsReserved(k) {
			continue
		}
		attrs = append(attrs, slog.Any(k, e.fields[k]))
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	return slog.GroupValue(attrs...)
}

func (e *Instance) stringField(key string) string {
	switch v := e.fields[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (e *Instance) intField(key string) int {
	switch v := e.fields[key].(type) {
	case int:
		return v
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint:
		return int(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case uint64:
		return int(v)
	case float32:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
