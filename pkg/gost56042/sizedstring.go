package gost56042

import "fmt"

// SizedString holds a string validated against a byte-length size class.
// Construct it with ExactSize or MaxSize; a constructed value always
// satisfies the class it was built with. The zero value is the empty string.
//
// Sizes are measured in bytes, not runes: the standard specifies byte
// budgets, so multi-byte UTF-8 characters reduce the number of
// representable characters. This is a documented limitation of the format,
// not of the library.
type SizedString struct {
	value string
}

// ExactSize wraps s, requiring its byte length to equal n.
func ExactSize(s string, n int) (SizedString, error) {
	if len(s) != n {
		return SizedString{}, fmt.Errorf("%w: expected exactly %d bytes, got %d", ErrSizeViolation, n, len(s))
	}
	return SizedString{value: s}, nil
}

// MaxSize wraps s, requiring its byte length to not exceed n.
func MaxSize(s string, n int) (SizedString, error) {
	if len(s) > n {
		return SizedString{}, fmt.Errorf("%w: expected at most %d bytes, got %d", ErrSizeViolation, n, len(s))
	}
	return SizedString{value: s}, nil
}

// String returns the wrapped value.
func (s SizedString) String() string { return s.value }
