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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"dirpx.dev/errkind"
)

var (
	// ErrDuplicateKind is returned when two entries declare the same name.
	ErrDuplicateKind = errors.New("errkind: duplicate kind in catalog")

	// ErrUnknownParent is returned when "parent" names a Kind that is not
	// declared earlier in the catalog.
	ErrUnknownParent = errors.New("errkind: unknown parent kind in catalog")
)

// Catalog is an immutable set of Kinds loaded from a document.
type Catalog struct {
	base  *errkind.Kind
	kinds map[string]*errkind.Kind
	order []string
}

// Option configures Load.
type Option func(*loader)

// WithBase makes top-level entries specialize base instead of errkind.Root.
func WithBase(base *errkind.Kind) Option {
	return func(l *loader) { l.base = base }
}

// document is the top-level shape of a catalog file.
type document struct {
	Kinds []map[string]any `yaml:"kinds"`
}

// node is one decoded Kind entry.
type node struct {
	Name     string           `mapstructure:"name"`
	Parent   string           `mapstructure:"parent"`
	Exclude  []string         `mapstructure:"exclude"`
	Children []map[string]any `mapstructure:"children"`
	Attrs    map[string]any   `mapstructure:",remain"`
}

type loader struct {
	base *errkind.Kind
	cat  *Catalog
}

// LoadFile reads a catalog from path.
func LoadFile(path string, opts ...Option) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load reads a catalog document from r and defines every Kind it declares.
// Entries are defined in document order, parents before children.
func Load(r io.Reader, opts ...Option) (*Catalog, error) {
	l := &loader{base: errkind.Root}
	for _, opt := range opts {
		opt(l)
	}
	l.cat = &Catalog{base: l.base, kinds: make(map[string]*errkind.Kind)}

	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	for i, raw := range doc.Kinds {
		if err := l.define(nil, raw, fmt.Sprintf("kinds[%d]", i)); err != nil {
			return nil, err
		}
	}
	return l.cat, nil
}

// define decodes raw and defines it under parent (or under the entry's
// "parent" / the base Kind when parent is nil), then recurses into children.
func (l *loader) define(parent *errkind.Kind, raw map[string]any, at string) error {
	n, err := decodeNode(raw)
	if err != nil {
		return fmt.Errorf("catalog: %s: %w", at, err)
	}

	switch {
	case n.Parent != "" && parent != nil:
		return fmt.Errorf("catalog: %s: nested kind %q cannot also name parent %q", at, n.Name, n.Parent)
	case n.Parent != "":
		p, ok := l.cat.kinds[n.Parent]
		if !ok {
			return fmt.Errorf("catalog: %s: %w: %q", at, ErrUnknownParent, n.Parent)
		}
		parent = p
	case parent == nil:
		parent = l.base
	}

	if _, dup := l.cat.kinds[n.Name]; dup {
		return fmt.Errorf("catalog: %s: %w: %q", at, ErrDuplicateKind, n.Name)
	}

	k, err := parent.Define(n.Name, errkind.Attrs(n.Attrs), errkind.Exclude(n.Exclude...))
	if err != nil {
		return fmt.Errorf("catalog: %s: %w", at, err)
	}
	l.cat.kinds[n.Name] = k
	l.cat.order = append(l.cat.order, n.Name)

	for i, child := range n.Children {
		if err := l.define(k, child, fmt.Sprintf("%s.children[%d]", at, i)); err != nil {
			return err
		}
	}
	return nil
}

func decodeNode(raw map[string]any) (node, error) {
	var n node
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.StringToSliceHookFunc(","),
		ErrorUnused: false,
		Result:      &n,
	})
	if err != nil {
		return node{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return node{}, err
	}
	for i, e := range n.Exclude {
		n.Exclude[i] = strings.TrimSpace(e)
	}
	return n, nil
}

// Kind returns the Kind declared under name.
func (c *Catalog) Kind(name string) (*errkind.Kind, bool) {
	k, ok := c.kinds[name]
	return k, ok
}

// Names returns every declared Kind name in definition order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of Kinds in the catalog.
func (c *Catalog) Len() int { return len(c.order) }

// Walk calls fn for every Kind in definition order with its depth below the
// catalog's base Kind (top-level entries have depth 0).
func (c *Catalog) Walk(fn func(k *errkind.Kind, depth int)) {
	baseDepth := len(c.base.Lineage())
	for _, name := range c.order {
		k := c.kinds[name]
		fn(k, len(k.Lineage())-baseDepth-1)
	}
}
