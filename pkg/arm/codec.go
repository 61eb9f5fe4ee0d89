package arm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// Validator is implemented by model types with required fields.
//
// Validate methods are written to be safe on a nil receiver, so optional
// nested members can be validated without a nil check at the call site.
type Validator interface {
	Validate() error
}

// RequiredField describes one required member of a model type.
type RequiredField struct {
	Name    string
	Present bool
}

// Req reports a required pointer field.
func Req[T any](name string, v *T) RequiredField {
	return RequiredField{Name: name, Present: v != nil}
}

// ReqSlice reports a required collection field. A present empty slice
// satisfies the requirement.
func ReqSlice[T any](name string, v []T) RequiredField {
	return RequiredField{Name: name, Present: v != nil}
}

// ReqAny reports a required free-form field.
func ReqAny(name string, v any) RequiredField {
	return RequiredField{Name: name, Present: v != nil}
}

// CheckRequired returns a MissingField error for the first absent field.
func CheckRequired(typeName string, fields ...RequiredField) error {
	for _, f := range fields {
		if !f.Present {
			return NewMissingFieldError(typeName, f.Name)
		}
	}
	return nil
}

// Nested validates an optional nested member and prefixes any error path
// with field.
func Nested(field string, v Validator) error {
	if v == nil {
		return nil
	}
	return WrapDecodeError(v.Validate(), field)
}

// NestedList validates each element of a nested collection.
func NestedList[V Validator](field string, vs []V) error {
	for i, v := range vs {
		if err := Nested(fmt.Sprintf("%s[%d]", field, i), v); err != nil {
			return err
		}
	}
	return nil
}

// Unmarshal decodes a JSON payload into v and validates it.
//
// Codec failures are reported as *DecodeError; if v implements Validator its
// required-field checks run after a successful decode.
func Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return classify(typeName(v), err)
	}
	if val, ok := v.(Validator); ok {
		return val.Validate()
	}
	return nil
}

// MarshalTagged encodes v as a JSON object and writes the discriminator
// field with the given tag as its first member.
func MarshalTagged(discriminator, tag string, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	body = bytes.TrimSpace(body)
	if len(body) < 2 || body[0] != '{' {
		return nil, fmt.Errorf("marshal %s: expected JSON object, got %s", typeName(v), truncate(body))
	}

	key, err := json.Marshal(discriminator)
	if err != nil {
		return nil, err
	}
	val, err := json.Marshal(tag)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(body) + len(key) + len(val) + 2)
	buf.WriteByte('{')
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(val)
	if rest := bytes.TrimSpace(body[1 : len(body)-1]); len(rest) > 0 {
		buf.WriteByte(',')
		buf.Write(rest)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalTagged decodes data into v after checking that a present
// discriminator field carries the expected tag. A missing discriminator is
// accepted so a concrete variant can be decoded from a bare property set.
func UnmarshalTagged(data []byte, discriminator, tag, name string, v any) error {
	var head map[string]json.RawMessage
	if err := json.Unmarshal(data, &head); err != nil {
		return classify(name, err)
	}

	if raw, ok := head[discriminator]; ok {
		var got string
		if err := json.Unmarshal(raw, &got); err != nil {
			return &DecodeError{Kind: TypeMismatch, Type: name, Path: discriminator, Err: err}
		}
		if got != tag {
			return &DecodeError{Kind: DiscriminatorMismatch, Type: name, Path: discriminator, Value: got}
		}
	}

	if err := json.Unmarshal(data, v); err != nil {
		return classify(name, err)
	}
	return nil
}

// classify converts encoding/json errors into DecodeErrors.
func classify(name string, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &DecodeError{Kind: TypeMismatch, Type: name, Path: typeErr.Field, Err: err}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &DecodeError{Kind: Malformed, Type: name, Err: err}
	}

	return &DecodeError{Kind: Malformed, Type: name, Err: err}
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

func truncate(b []byte) string {
	const max = 32
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
