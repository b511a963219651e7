package gost56042

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Builder assembles a Payment from a validated required block, optional
// additional requisites, and header overrides. Methods return the builder
// for chaining; Build never fails because every input was validated on the
// way in. Header overrides target programmer-controlled constants, so
// invalid ones panic instead of returning an error.
//
//	payment := gost56042.NewBuilder(required).
//		WithAdditionalRequisites(purpose, sum).
//		WithCharset(gost56042.CharsetWindows1251).
//		Build()
type Builder struct {
	required   RequiredRequisite
	header     Header
	additional []Requisite
}

// NewBuilder starts a payment with the mandatory field block and the
// default header: version "0001", UTF-8, '|' separator.
func NewBuilder(required RequiredRequisite) *Builder {
	return &Builder{
		required: required,
		header: Header{
			version:   DefaultVersion,
			charset:   DefaultCharset,
			separator: DefaultSeparator,
		},
	}
}

// WithAdditionalRequisites appends requisites to the additional sequence
// in the given order. Nil entries are ignored.
func (b *Builder) WithAdditionalRequisites(rs ...Requisite) *Builder {
	for _, r := range rs {
		if r != nil {
			b.additional = append(b.additional, r)
		}
	}
	return b
}

// WithCharset sets the payload character set. Panics if c is not one of
// the Charset constants.
func (b *Builder) WithCharset(c Charset) *Builder {
	if _, err := parseCharset(byte(c)); err != nil {
		panic(fmt.Sprintf("gost56042: %v", err))
	}
	b.header.charset = c
	return b
}

// WithSeparator sets the field separator. Panics unless sep is a non-zero
// ASCII byte other than '=': a multi-byte or '=' separator could not be
// told apart from payload content.
func (b *Builder) WithSeparator(sep byte) *Builder {
	if sep == 0 || sep >= utf8.RuneSelf || sep == '=' {
		panic(fmt.Sprintf("gost56042: separator %q must be a non-zero ASCII byte other than '='", sep))
	}
	b.header.separator = sep
	return b
}

// WithVersion sets the format version. Panics unless v is four ASCII
// digits, which is the only shape the header can carry.
func (b *Builder) WithVersion(v string) *Builder {
	if len(v) != len(DefaultVersion) {
		panic(fmt.Sprintf("gost56042: version %q must be %d digits", v, len(DefaultVersion)))
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			panic(fmt.Sprintf("gost56042: version %q must be %d digits", v, len(DefaultVersion)))
		}
	}
	b.header.version = v
	return b
}

// Build assembles the payment. The required block is marked fully present
// and the additional sequence is copied, so later builder reuse does not
// alias the returned value.
func (b *Builder) Build() Payment {
	return Payment{
		header:     b.header,
		required:   b.required,
		present:    allRequired,
		additional: slices.Clone(b.additional),
	}
}
