package gost56042

import (
	"fmt"
	"io"
	"strings"
)

// defaultLineCapacity covers a typical payment line without growing.
const defaultLineCapacity = 308

// Bytes serializes the payment in its header's character set: the eight
// header bytes, then the present mandatory fields in canonical order, then
// the additional requisites in their stored order, all joined by the
// header's separator.
//
// Requisite implementations outside this package are validated here, since
// nothing constrains their Key and Value methods: a pair that could not be
// re-read from the line fails with ErrMalformedField or
// ErrValueContainsSeparator. Values the character set cannot represent
// fail with ErrEncodingFailed.
func (p Payment) Bytes() ([]byte, error) {
	header := p.header.orDefault()
	sep := header.Separator()

	buf := make([]byte, 0, defaultLineCapacity)
	buf = header.appendTo(buf)

	first := true
	appendPair := func(key, value string) {
		if !first {
			buf = append(buf, sep)
		}
		buf = append(buf, key...)
		buf = append(buf, '=')
		buf = append(buf, value...)
		first = false
	}

	for slot, f := range requiredFields {
		if !p.has(slot) {
			continue
		}
		value := p.required.value(f)
		if err := validatePair(string(f), value, sep); err != nil {
			return nil, err
		}
		appendPair(string(f), value)
	}
	for _, r := range p.additional {
		key, value := r.Key(), r.Value()
		if err := validatePair(key, value, sep); err != nil {
			return nil, err
		}
		appendPair(key, value)
	}

	return header.Charset().encode(string(buf))
}

// Text serializes the payment and returns the line as a UTF-8 string,
// whatever character set the wire form uses. This is the form to show to
// people or log; pass the Bytes form to barcode generators so the payload
// matches the header's charset marker.
func (p Payment) Text() (string, error) {
	b, err := p.Bytes()
	if err != nil {
		return "", err
	}
	return p.header.orDefault().Charset().decode(b)
}

// WriteTo serializes the payment into w, implementing io.WriterTo.
func (p Payment) WriteTo(w io.Writer) (int64, error) {
	b, err := p.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}

// validatePair checks that a key=value pair can survive a serialize-parse
// round trip with the given separator.
func validatePair(key, value string, sep byte) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrMalformedField)
	}
	if strings.IndexByte(key, '=') >= 0 || strings.IndexByte(key, sep) >= 0 {
		return fmt.Errorf("%w: key %q", ErrMalformedField, key)
	}
	if strings.IndexByte(value, sep) >= 0 {
		return fmt.Errorf("%s: %w", key, ErrValueContainsSeparator)
	}
	return nil
}
