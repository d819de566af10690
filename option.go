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
	"errors"
	"fmt"
	"maps"
	"slices"

	"dirpx.dev/errkind/attr"
)

// Option contributes one piece of a Kind declaration. Options are applied in
// order, so a later option wins over an earlier one for the same key.
type Option func(*declaration)

type attrValue struct {
	key string
	val any
}

// declaration collects what a single Define call adds on top of the parent.
type declaration struct {
	attrs   []attrValue
	exclude []string
	methods map[string]Method
	ctor    Constructor

	// err records the first malformed option; Define reports it.
	err error
}

func (d *declaration) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

// Code sets the default numeric error code.
func Code(c int) Option {
	return Attr(attr.Code, c)
}

// StatusCode sets the default transport status, usually an HTTP status.
func StatusCode(sc int) Option {
	return Attr(attr.StatusCode, sc)
}

// Message sets the default human-readable message.
func Message(msg string) Option {
	return Attr(attr.Message, msg)
}

// Description sets the default long description.
func Description(desc string) Option {
	return Attr(attr.Description, desc)
}

// Attr sets a custom attribute default. Reserved structural keys are accepted
// but never reach instances.
func Attr(key string, v any) Option {
	return func(d *declaration) {
		if err := attr.Validate(key); err != nil {
			d.fail(fmt.Errorf("attribute %q: %w", key, err))
			return
		}
		d.attrs = append(d.attrs, attrValue{key, v})
	}
}

// Attrs sets several attribute defaults at once. Keys are applied in sorted
// order so the result does not depend on map iteration.
func Attrs(kv map[string]any) Option {
	return func(d *declaration) {
		for _, k := range slices.Sorted(maps.Keys(kv)) {
			Attr(k, kv[k])(d)
		}
	}
}

// Exclude hides the given fields from friendly projections of this Kind and
// of all its descendants.
func Exclude(keys ...string) Option {
	return func(d *declaration) {
		for _, k := range keys {
			if err := attr.Validate(k); err != nil {
				d.fail(fmt.Errorf("exclusion %q: %w", k, err))
				return
			}
			d.exclude = append(d.exclude, k)
		}
	}
}

// WithMethod attaches a behavior to this Kind and its descendants. A
// descendant declaring a method with the same name replaces it for itself
// and below.
func WithMethod(name string, fn Method) Option {
	return func(d *declaration) {
		if name == "" {
			d.fail(errors.New("method with empty name"))
			return
		}
		if fn == nil {
			d.fail(fmt.Errorf("method %q is nil", name))
			return
		}
		if d.methods == nil {
			d.methods = make(map[string]Method)
		}
		d.methods[name] = fn
	}
}

// WithConstructor sets the constructor run by New after default attributes
// are copied. Descendants that do not declare their own constructor use this
// one.
func WithConstructor(fn Constructor) Option {
	return func(d *declaration) {
		if fn == nil {
			d.fail(errors.New("nil constructor"))
			return
		}
		d.ctor = fn
	}
}
