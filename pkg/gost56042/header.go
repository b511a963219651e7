package gost56042

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	// formatID opens every payment line. The two bytes stand for the format
	// family; a different prefix means the input is not a payment code at all.
	formatID = "ST"

	// DefaultVersion is the format version this package implements.
	DefaultVersion = "0001"

	// DefaultSeparator divides the header from the body and the fields from
	// each other.
	DefaultSeparator byte = '|'

	// DefaultCharset is the payload encoding used unless the builder
	// overrides it.
	DefaultCharset = CharsetUTF8

	// headerLen is the fixed byte length of the service data block:
	// format id, version, charset marker, separator.
	headerLen = len(formatID) + len(DefaultVersion) + 2
)

// Header is the service data block that opens a payment line. It pins the
// format version, the payload character set, and the separator used to
// split the body. Values are populated by the builder or the parser; the
// zero value is treated as the default header when serializing.
type Header struct {
	version   string
	charset   Charset
	separator byte
}

// Version returns the four-digit format version, e.g. "0001".
func (h Header) Version() string { return h.version }

// Charset returns the payload character set.
func (h Header) Charset() Charset { return h.charset }

// Separator returns the field separator byte.
func (h Header) Separator() byte { return h.separator }

// String renders the eight header bytes, e.g. "ST00012|".
func (h Header) String() string {
	return string(h.orDefault().appendTo(make([]byte, 0, headerLen)))
}

// orDefault fills unset header parts with the standard defaults, keeping
// zero-value payments serializable.
func (h Header) orDefault() Header {
	if h.version == "" {
		h.version = DefaultVersion
	}
	if h.charset == 0 {
		h.charset = DefaultCharset
	}
	if h.separator == 0 {
		h.separator = DefaultSeparator
	}
	return h
}

func (h Header) appendTo(b []byte) []byte {
	b = append(b, formatID...)
	b = append(b, h.version...)
	return append(b, byte(h.charset), h.separator)
}

// parseHeader reads the eight-byte service data block. A non-matching
// format id, a version other than expectVersion, and an unknown charset
// marker all classify as ErrPrefixMismatch; the version and charset cases
// additionally carry their specific sentinel. An empty expectVersion
// accepts any version bytes.
func parseHeader(data []byte, expectVersion string) (Header, error) {
	if len(data) < headerLen {
		return Header{}, fmt.Errorf("%w: input is %d bytes, the header needs %d", ErrPrefixMismatch, len(data), headerLen)
	}
	if string(data[:len(formatID)]) != formatID {
		return Header{}, fmt.Errorf("%w: input starts with %q", ErrPrefixMismatch, data[:len(formatID)])
	}
	version := string(data[len(formatID) : len(formatID)+len(DefaultVersion)])
	if expectVersion != "" && version != expectVersion {
		return Header{}, errors.Join(
			ErrPrefixMismatch,
			fmt.Errorf("%w: got %q, want %q", ErrUnsupportedVersion, version, expectVersion),
		)
	}
	charset, err := parseCharset(data[headerLen-2])
	if err != nil {
		return Header{}, errors.Join(ErrPrefixMismatch, err)
	}
	sep := data[headerLen-1]
	if sep == 0 || sep >= utf8.RuneSelf || sep == '=' {
		return Header{}, fmt.Errorf("%w: separator %q must be a non-zero ASCII byte other than '='", ErrPrefixMismatch, sep)
	}
	return Header{
		version:   version,
		charset:   charset,
		separator: sep,
	}, nil
}
