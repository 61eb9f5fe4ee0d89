package arm

import (
	"errors"
	"fmt"
	"strings"
)

// DecodeErrorKind classifies a structural decode failure.
type DecodeErrorKind string

const (
	// MissingField means a required field was absent.
	MissingField DecodeErrorKind = "MissingField"

	// TypeMismatch means a field held a JSON value of the wrong type.
	TypeMismatch DecodeErrorKind = "TypeMismatch"

	// Malformed means the payload was not valid JSON or not the expected container.
	Malformed DecodeErrorKind = "Malformed"

	// MissingDiscriminator means a polymorphic object had no discriminator field.
	MissingDiscriminator DecodeErrorKind = "MissingDiscriminator"

	// UnknownDiscriminator means the discriminator value matched no registered variant.
	UnknownDiscriminator DecodeErrorKind = "UnknownDiscriminator"

	// DiscriminatorMismatch means an object was decoded into a concrete variant
	// whose tag differs from the discriminator on the wire.
	DiscriminatorMismatch DecodeErrorKind = "DiscriminatorMismatch"
)

// DecodeError is returned for every structural decode failure of a model
// type. Unknown open-enum values are never reported as errors.
type DecodeError struct {
	// Kind classifies the failure.
	Kind DecodeErrorKind

	// Type is the model type being decoded.
	Type string

	// Path is the dotted JSON path of the offending field, if any.
	Path string

	// Value is the offending discriminator value, if any.
	Value string

	// Err is the underlying codec error, if any.
	Err error
}

// Error returns the error message.
func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("decode")
	if e.Type != "" {
		b.WriteString(" ")
		b.WriteString(e.Type)
	}
	b.WriteString(": ")

	switch e.Kind {
	case MissingField:
		fmt.Fprintf(&b, "missing required field %q", e.Path)
	case TypeMismatch:
		if e.Path != "" {
			fmt.Fprintf(&b, "field %q: ", e.Path)
		}
		b.WriteString("type mismatch")
	case MissingDiscriminator:
		fmt.Fprintf(&b, "missing discriminator %q", e.Path)
	case UnknownDiscriminator:
		fmt.Fprintf(&b, "unknown %s %q", e.Path, e.Value)
	case DiscriminatorMismatch:
		fmt.Fprintf(&b, "%s %q does not match this type", e.Path, e.Value)
	default:
		if e.Path != "" {
			fmt.Fprintf(&b, "field %q: ", e.Path)
		}
		b.WriteString("malformed payload")
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying codec error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewMissingFieldError creates a MissingField error for field of typeName.
func NewMissingFieldError(typeName, field string) *DecodeError {
	return &DecodeError{
		Kind: MissingField,
		Type: typeName,
		Path: field,
	}
}

// IsDecodeError checks if an error is, or wraps, a DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// DecodeErrorKindOf returns the kind of the DecodeError in err's chain, or
// the empty kind if there is none.
func DecodeErrorKindOf(err error) DecodeErrorKind {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// WrapDecodeError prefixes the path of a DecodeError with field. Other
// errors are returned unchanged, and a nil error stays nil.
func WrapDecodeError(err error, field string) error {
	if err == nil {
		return nil
	}

	var de *DecodeError
	if !errors.As(err, &de) {
		return err
	}

	wrapped := *de
	wrapped.Path = joinPath(field, de.Path)
	return &wrapped
}

func joinPath(prefix, path string) string {
	switch {
	case prefix == "":
		return path
	case path == "":
		return prefix
	case strings.HasPrefix(path, "["):
		return prefix + path
	default:
		return prefix + "." + path
	}
}
