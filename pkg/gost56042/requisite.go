package gost56042

import (
	"fmt"
	"strings"
)

// Requisite is a single key=value pair from the payment body. The package
// provides StandardRequisite for keys the standard defines and
// CustomRequisite for caller-defined keys; callers may supply their own
// implementations to carry richer types, as long as Key and Value render
// the wire form of the pair.
type Requisite interface {
	// Key returns the field name as it appears on the wire.
	Key() string

	// Value returns the field value as it appears on the wire.
	Value() string
}

// StandardRequisite is an additional requisite whose key is one of the
// fields the standard defines. Construct it with NewRequisite; a
// constructed value always satisfies the field's size class.
type StandardRequisite struct {
	field Field
	value string
}

// NewRequisite builds an additional requisite for a standard field. The
// five mandatory fields are rejected with ErrRequiredField since they
// travel in the RequiredRequisite block, keys outside the standard are
// rejected with ErrUnknownField, and values are checked against the
// field's size class and for the separator character.
func NewRequisite(f Field, value string) (StandardRequisite, error) {
	if f.isRequired() {
		return StandardRequisite{}, fmt.Errorf("%s: %w", f, ErrRequiredField)
	}
	if !f.isStandard() {
		return StandardRequisite{}, fmt.Errorf("%s: %w", f, ErrUnknownField)
	}
	if err := checkSeparator(f, value); err != nil {
		return StandardRequisite{}, err
	}
	if err := validateFieldValue(f, value); err != nil {
		return StandardRequisite{}, err
	}
	return StandardRequisite{field: f, value: value}, nil
}

// Field returns the standard field the requisite belongs to.
func (r StandardRequisite) Field() Field { return r.field }

// Key returns the wire form of the field name.
func (r StandardRequisite) Key() string { return string(r.field) }

// Value returns the field value.
func (r StandardRequisite) Value() string { return r.value }

// CustomRequisite carries a key=value pair outside the standard's field
// set. The standard does not forbid extra pairs, but exchanging them only
// works between parties that agree on their meaning, so the parser rejects
// them unless a CustomParseFunc is installed.
type CustomRequisite struct {
	key   string
	value string
}

// NewCustomRequisite builds a requisite with a caller-defined key. Keys
// colliding with a standard field are rejected with ErrStandardField so the
// field's validation cannot be bypassed; keys and values that could not be
// re-read from the serialized line (empty key, '=' in the key, separator
// anywhere) are rejected with ErrMalformedField or ErrValueContainsSeparator.
func NewCustomRequisite(key, value string) (CustomRequisite, error) {
	if Field(key).isStandard() {
		return CustomRequisite{}, fmt.Errorf("%s: %w", key, ErrStandardField)
	}
	if err := validatePairKey(key); err != nil {
		return CustomRequisite{}, err
	}
	if strings.IndexByte(value, DefaultSeparator) >= 0 {
		return CustomRequisite{}, fmt.Errorf("%s: %w", key, ErrValueContainsSeparator)
	}
	return CustomRequisite{key: key, value: value}, nil
}

// Key returns the caller-defined field name.
func (r CustomRequisite) Key() string { return r.key }

// Value returns the field value.
func (r CustomRequisite) Value() string { return r.value }

// validatePairKey checks that key can survive a serialize-parse round trip:
// it must be non-empty and free of '=' and the separator, otherwise the
// token would split into a different pair than the one written.
func validatePairKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrMalformedField)
	}
	if strings.IndexByte(key, '=') >= 0 || strings.IndexByte(key, DefaultSeparator) >= 0 {
		return fmt.Errorf("%w: key %q", ErrMalformedField, key)
	}
	return nil
}
