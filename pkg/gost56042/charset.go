package gost56042

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Charset is the character set marker from the header's sixth position. The
// marker byte doubles as the wire representation, so the constants are the
// ASCII digits the standard assigns.
type Charset byte

const (
	// CharsetWindows1251 marks a Windows-1251 encoded payload.
	CharsetWindows1251 Charset = '1'

	// CharsetUTF8 marks a UTF-8 encoded payload.
	CharsetUTF8 Charset = '2'

	// CharsetKOI8R marks a KOI8-R encoded payload.
	CharsetKOI8R Charset = '3'
)

// parseCharset maps a header marker byte to a Charset.
func parseCharset(b byte) (Charset, error) {
	switch c := Charset(b); c {
	case CharsetWindows1251, CharsetUTF8, CharsetKOI8R:
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCharset, b)
}

// String returns the IANA-style name of the character set.
func (c Charset) String() string {
	switch c {
	case CharsetWindows1251:
		return "windows-1251"
	case CharsetUTF8:
		return "utf-8"
	case CharsetKOI8R:
		return "koi8-r"
	}
	return fmt.Sprintf("charset(%q)", byte(c))
}

// encode converts s from UTF-8 to the charset's byte representation. Runes
// outside the target repertoire fail with ErrEncodingFailed rather than
// being silently replaced, so a serialized payment always decodes back to
// the values it was built from.
func (c Charset) encode(s string) ([]byte, error) {
	switch c {
	case CharsetUTF8:
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrEncodingFailed)
		}
		return []byte(s), nil
	case CharsetWindows1251:
		b, err := charmap.Windows1251.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, errors.Join(ErrEncodingFailed, err)
		}
		return b, nil
	case CharsetKOI8R:
		b, err := charmap.KOI8R.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, errors.Join(ErrEncodingFailed, err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, byte(c))
}

// decodeLossy converts charset bytes back to a UTF-8 string, replacing
// sequences decode would reject with U+FFFD. The single-byte character
// maps are total, so only the UTF-8 path can differ from decode.
func (c Charset) decodeLossy(b []byte) string {
	s, err := c.decode(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return s
}

// decode converts charset bytes back to a UTF-8 string. The single-byte
// character maps are total, so only the UTF-8 path can reject its input.
func (c Charset) decode(b []byte) (string, error) {
	switch c {
	case CharsetUTF8:
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w: input is not valid UTF-8", ErrInvalidEncoding)
		}
		return string(b), nil
	case CharsetWindows1251:
		out, err := charmap.Windows1251.NewDecoder().Bytes(b)
		if err != nil {
			return "", errors.Join(ErrInvalidEncoding, err)
		}
		return string(out), nil
	case CharsetKOI8R:
		out, err := charmap.KOI8R.NewDecoder().Bytes(b)
		if err != nil {
			return "", errors.Join(ErrInvalidEncoding, err)
		}
		return string(out), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCharset, byte(c))
}
