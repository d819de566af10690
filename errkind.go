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
	"strings"

	"dirpx.dev/errkind/attr"
	"dirpx.dev/errkind/lineage"
)

var (
	// ErrInvalidDefinition is returned by Define when the name is empty or a
	// declaration option has a malformed shape.
	ErrInvalidDefinition = errors.New("errkind: invalid definition")

	// ErrUnknownMethod is returned by Instance.Call when neither the Kind nor
	// any of its ancestors declares the method.
	ErrUnknownMethod = errors.New("errkind: unknown method")
)

// RootName is the name of the Root Kind.
const RootName = "Error"

// Root is the Kind every other Kind descends from. It declares nothing:
// no attributes, no exclusions, no methods and no constructor.
var Root = newRoot()

// Method is a behavior attached to a Kind. It receives the instance it is
// called on.
type Method func(e *Instance, args ...any) any

// Constructor customizes a new instance after its default attributes have
// been copied. It receives the arguments given to Kind.New.
type Constructor func(e *Instance, args ...any)

// Kind is an immutable error descriptor produced by Define.
//
// Every table is resolved at definition time, so instantiation is a flat copy
// and never walks the parent chain.
type Kind struct {
	name   string
	parent *Kind
	path   lineage.Path

	// attrs holds the merged attribute defaults (parent overlaid by child).
	attrs map[string]any
	// exclude is the union of every exclusion declared up the chain.
	exclude map[string]struct{}
	// methods holds the merged behaviors (parent overlaid by child).
	methods map[string]Method
	// ctor is the Kind's own constructor or, if it has none, the nearest
	// ancestor's.
	ctor    Constructor
	ownCtor bool

	// ancestors contains this Kind and every Kind above it, Root included.
	ancestors map[*Kind]struct{}
}

func newRoot() *Kind {
	k := &Kind{
		name:    RootName,
		attrs:   map[string]any{},
		exclude: map[string]struct{}{},
		methods: map[string]Method{},
	}
	k.ancestors = map[*Kind]struct{}{k: {}}
	return k
}

// Define declares a new Kind directly under Root.
func Define(name string, opts ...Option) (*Kind, error) {
	return Root.Define(name, opts...)
}

// MustDefine is the panic-on-error variant of Define. It is meant for
// package-level var blocks.
func MustDefine(name string, opts ...Option) *Kind {
	return Root.MustDefine(name, opts...)
}

// Define declares a new Kind that specializes k.
//
// Attributes and methods declared by opts override the ones inherited from k;
// exclusions are added to the inherited ones. Reserved structural keys and
// "name" are dropped from the declared attributes. k itself is not modified.
//
// Define returns ErrInvalidDefinition if k is nil, name is empty or holds
// the lineage separator, or an option is malformed.
func (k *Kind) Define(name string, opts ...Option) (*Kind, error) {
	if k == nil {
		return nil, fmt.Errorf("%w: nil parent for %q", ErrInvalidDefinition, name)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: empty name (parent %q)", ErrInvalidDefinition, k.name)
	}
	if strings.Contains(name, lineage.Sep) {
		return nil, fmt.Errorf("%w: name %q contains %q", ErrInvalidDefinition, name, lineage.Sep)
	}

	d := &declaration{}
	for _, opt := range opts {
		opt(d)
	}
	if d.err != nil {
		return nil, fmt.Errorf("%w: kind %q: %w", ErrInvalidDefinition, name, d.err)
	}

	child := &Kind{
		name:   name,
		parent: k,
		path:   k.path.Append(name),
	}

	// (1) attributes: parent first, then the declaration on top.
	child.attrs = maps.Clone(k.attrs)
	for _, a := range d.attrs {
		if a.key == attr.Name || attr.IsReserved(a.key) {
			continue
		}
		child.attrs[a.key] = a.val
	}

	// (2) exclusions only grow.
	child.exclude = maps.Clone(k.exclude)
	for _, key := range d.exclude {
		child.exclude[key] = struct{}{}
	}

	// (3) methods: child wins on collision.
	child.methods = maps.Clone(k.methods)
	maps.Copy(child.methods, d.methods)

	// (4) constructor: own, else nearest ancestor's.
	child.ctor, child.ownCtor = k.ctor, false
	if d.ctor != nil {
		child.ctor, child.ownCtor = d.ctor, true
	}

	// (5) identity set for is-a checks.
	child.ancestors = maps.Clone(k.ancestors)
	child.ancestors[child] = struct{}{}

	return child, nil
}

// MustDefine is the panic-on-error variant of Kind.Define.
func (k *Kind) MustDefine(name string, opts ...Option) *Kind {
	child, err := k.Define(name, opts...)
	if err != nil {
		panic(err)
	}
	return child
}

// Name returns the name given at definition time.
func (k *Kind) Name() string { return k.name }

// TypeName returns the Kind name. Consumers use it to branch on the kind of
// an error without identity checks.
func (k *Kind) TypeName() string { return k.name }

// InternalType returns the Kind name; it is an alias of TypeName kept for
// consumers that distinguish a type tag from a display name.
func (k *Kind) InternalType() string { return k.name }

// Parent returns the Kind k specializes, or nil for Root.
func (k *Kind) Parent() *Kind { return k.parent }

// Lineage returns the names from the outermost user-defined ancestor down to
// k. Root has an empty lineage.
func (k *Kind) Lineage() lineage.Path {
	return slices.Clone(k.path)
}

// Attributes returns a copy of the merged attribute defaults.
func (k *Kind) Attributes() map[string]any {
	return maps.Clone(k.attrs)
}

// Exclusions returns the merged exclusion set in sorted order.
func (k *Kind) Exclusions() []string {
	return slices.Sorted(maps.Keys(k.exclude))
}

// Excludes reports whether key is hidden from friendly projections.
func (k *Kind) Excludes(key string) bool {
	_, ok := k.exclude[key]
	return ok
}

// Methods returns the names of every method available on instances of k, in
// sorted order.
func (k *Kind) Methods() []string {
	return slices.Sorted(maps.Keys(k.methods))
}

// HasConstructor reports whether instances of k run a constructor, either
// declared on k or inherited from an ancestor.
func (k *Kind) HasConstructor() bool { return k.ctor != nil }

// DeclaresConstructor reports whether k declared its own constructor.
func (k *Kind) DeclaresConstructor() bool { return k.ownCtor }

// IsA reports whether k is other or descends from it.
func (k *Kind) IsA(other *Kind) bool {
	if k == nil || other == nil {
		return false
	}
	_, ok := k.ancestors[other]
	return ok
}

// Is reports whether err, or any error it wraps, is an instance of k or of a
// Kind descending from k.
func (k *Kind) Is(err error) bool {
	var e *Instance
	if !errors.As(err, &e) {
		return false
	}
	return e.kind.IsA(k)
}

// String returns the dot-joined lineage, or the Root name.
func (k *Kind) String() string {
	if len(k.path) == 0 {
		return k.name
	}
	return k.path.String()
}
