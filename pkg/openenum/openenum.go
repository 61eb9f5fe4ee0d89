// Package openenum implements forward-compatible string enumerations.
//
// An open enum is a named string type whose known values are enumerable
// today but may grow on the server without a client update. Decoding never
// fails: a tag that is not in the known table is kept verbatim and encodes
// back to exactly the same string.
package openenum

import (
	"fmt"
	"sort"
)

// Registry is the known-value table of one open enum type.
//
// Registries are built once at package init and are read-only afterwards,
// so they are safe for concurrent use.
type Registry[T ~string] struct {
	name   string
	known  map[string]T
	values []T
}

// New creates a registry for the enum called name with the given known
// values, in schema order. It panics on duplicate values since that can only
// be a programming error in the declaring package.
func New[T ~string](name string, values ...T) *Registry[T] {
	r := &Registry[T]{
		name:   name,
		known:  make(map[string]T, len(values)),
		values: make([]T, 0, len(values)),
	}
	for _, v := range values {
		if _, dup := r.known[string(v)]; dup {
			panic(fmt.Sprintf("openenum: duplicate value %q in %s", string(v), name))
		}
		r.known[string(v)] = v
		r.values = append(r.values, v)
	}
	return r
}

// Name returns the enum's type name.
func (r *Registry[T]) Name() string {
	return r.name
}

// Decode maps a wire string to an enum value. Matching is exact and
// case-sensitive. Unrecognized input is returned unchanged as an unknown
// value, so Decode never fails.
func (r *Registry[T]) Decode(raw string) T {
	if v, ok := r.known[raw]; ok {
		return v
	}
	return T(raw)
}

// Encode returns the wire string of v: the canonical tag for a known value
// and the original string for an unknown one.
func (r *Registry[T]) Encode(v T) string {
	return string(v)
}

// Lookup reports whether raw is a known tag and returns its value.
func (r *Registry[T]) Lookup(raw string) (T, bool) {
	v, ok := r.known[raw]
	return v, ok
}

// IsKnown reports whether v is one of the registered values.
func (r *Registry[T]) IsKnown(v T) bool {
	_, ok := r.known[string(v)]
	return ok
}

// Values returns the known values in declaration order.
func (r *Registry[T]) Values() []T {
	out := make([]T, len(r.values))
	copy(out, r.values)
	return out
}

// Strings returns the known wire tags in declaration order.
func (r *Registry[T]) Strings() []string {
	out := make([]string, len(r.values))
	for i, v := range r.values {
		out[i] = string(v)
	}
	return out
}

// Describe returns a Descriptor for this registry.
func (r *Registry[T]) Describe() Descriptor {
	return Descriptor{Name: r.name, Values: r.Strings()}
}

// Parse is the string-parsing entry point for an enum and is identical to
// r.Decode. It exists so callers can write openenum.Parse(reg, s) next to
// strconv-style parsers.
func Parse[T ~string](r *Registry[T], raw string) T {
	return r.Decode(raw)
}

// Descriptor is a type-erased view of a registry, used for listing enums.
type Descriptor struct {
	Name   string   `json:"name" yaml:"name"`
	Values []string `json:"values" yaml:"values"`
}

// Known reports whether raw is one of the descriptor's values.
func (d Descriptor) Known(raw string) bool {
	for _, v := range d.Values {
		if v == raw {
			return true
		}
	}
	return false
}

// Describer is implemented by every Registry.
type Describer interface {
	Describe() Descriptor
}

// Set is an ordered collection of enum descriptors, typically every enum
// declared by one provider package.
type Set struct {
	byName map[string]Descriptor
}

// NewSet builds a set from the given registries.
func NewSet(enums ...Describer) *Set {
	s := &Set{byName: make(map[string]Descriptor, len(enums))}
	for _, e := range enums {
		d := e.Describe()
		s.byName[d.Name] = d
	}
	return s
}

// Get returns the descriptor named name.
func (s *Set) Get(name string) (Descriptor, bool) {
	d, ok := s.byName[name]
	return d, ok
}

// All returns every descriptor sorted by name.
func (s *Set) All() []Descriptor {
	out := make([]Descriptor, 0, len(s.byName))
	for _, d := range s.byName {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of enums in the set.
func (s *Set) Len() int {
	return len(s.byName)
}
