package arm

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Union is the dispatch table of one polymorphic type: it maps every
// registered discriminator value to a constructor for the matching variant.
//
// Dispatch is closed. A discriminator that matches no registered variant is
// a decode error, unlike open enums, which keep unknown values. The
// discriminator's own enum type is still open, so a newer tag can be held as
// a value; it just cannot be decoded into a variant shape.
type Union[T any] struct {
	name          string
	discriminator string
	variants      map[string]func() T
}

// NewUnion builds a union named name whose variants are selected by the
// discriminator field. Each constructor must return a pointer to a fresh
// variant value.
func NewUnion[T any](name, discriminator string, variants map[string]func() T) *Union[T] {
	return &Union[T]{
		name:          name,
		discriminator: discriminator,
		variants:      variants,
	}
}

// Name returns the union's type name.
func (u *Union[T]) Name() string {
	return u.name
}

// Discriminator returns the JSON name of the discriminator field.
func (u *Union[T]) Discriminator() string {
	return u.discriminator
}

// Tags returns the registered discriminator values, sorted.
func (u *Union[T]) Tags() []string {
	tags := make([]string, 0, len(u.variants))
	for tag := range u.variants {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Has reports whether tag selects a registered variant.
func (u *Union[T]) Has(tag string) bool {
	_, ok := u.variants[tag]
	return ok
}

// Decode reads the discriminator of a JSON object, selects the registered
// variant and decodes the whole object into it.
func (u *Union[T]) Decode(data []byte) (T, error) {
	var zero T

	var head map[string]json.RawMessage
	if err := json.Unmarshal(data, &head); err != nil {
		return zero, classify(u.name, err)
	}
	if head == nil {
		return zero, &DecodeError{Kind: Malformed, Type: u.name, Err: errors.New("expected JSON object, got null")}
	}

	raw, ok := head[u.discriminator]
	if !ok {
		return zero, &DecodeError{Kind: MissingDiscriminator, Type: u.name, Path: u.discriminator}
	}

	var tag string
	if err := json.Unmarshal(raw, &tag); err != nil {
		return zero, &DecodeError{Kind: TypeMismatch, Type: u.name, Path: u.discriminator, Err: err}
	}

	ctor, ok := u.variants[tag]
	if !ok {
		return zero, &DecodeError{Kind: UnknownDiscriminator, Type: u.name, Path: u.discriminator, Value: tag}
	}

	v := ctor()
	if err := Unmarshal(data, v); err != nil {
		return zero, err
	}
	return v, nil
}

// DecodeList decodes each raw element through the union.
func (u *Union[T]) DecodeList(raws []json.RawMessage) ([]T, error) {
	if raws == nil {
		return nil, nil
	}
	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		v, err := u.Decode(raw)
		if err != nil {
			return nil, WrapDecodeError(err, fmt.Sprintf("[%d]", i))
		}
		out = append(out, v)
	}
	return out, nil
}

// DecodeArray decodes a JSON array of union members.
func (u *Union[T]) DecodeArray(data []byte) ([]T, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, classify(u.name, err)
	}
	return u.DecodeList(raws)
}

// Describe returns a type-erased description of the union.
func (u *Union[T]) Describe() UnionDescriptor {
	return UnionDescriptor{
		Name:          u.name,
		Discriminator: u.discriminator,
		Tags:          u.Tags(),
	}
}

// UnionDescriptor lists the registered variants of a union.
type UnionDescriptor struct {
	Name          string   `json:"name" yaml:"name"`
	Discriminator string   `json:"discriminator" yaml:"discriminator"`
	Tags          []string `json:"tags" yaml:"tags"`
}
