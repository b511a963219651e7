package gost56042

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ParseMode controls how much malformed or unexpected input the parser
// lets through. Header problems fail the parse in every mode; the modes
// differ in what happens to the body.
type ParseMode int

const (
	// ParseStrict rejects anything the standard does not describe: empty
	// tokens, tokens without '=', unknown keys without an accepting
	// CustomParseFunc, values that break their field's size class, and a
	// missing mandatory field all fail the parse.
	ParseStrict ParseMode = iota

	// ParseTolerant drops the tokens ParseStrict would reject instead of
	// failing on them. The five mandatory fields must still be present
	// once the dropping is done.
	ParseTolerant

	// ParseLoose drops everything ParseTolerant drops and additionally
	// allows mandatory fields to be missing, takes string input whatever
	// its charset marker, and replaces undecodable bytes with U+FFFD.
	// Absent mandatory fields stay unresolvable through Get.
	ParseLoose
)

// String names the mode for logs and error messages.
func (m ParseMode) String() string {
	switch m {
	case ParseStrict:
		return "strict"
	case ParseTolerant:
		return "tolerant"
	case ParseLoose:
		return "loose"
	}
	return fmt.Sprintf("ParseMode(%d)", int(m))
}

// CustomParseFunc converts a key the standard does not define, together
// with its raw value, into a caller requisite. Returning an error rejects
// the pair: a strict parse fails with ErrCustomRequisiteRejected, the
// other modes drop the pair. Returning a nil Requisite with a nil error
// drops the pair silently in every mode.
type CustomParseFunc func(key, value string) (Requisite, error)

// Parser reads payment lines. The zero configuration is the strict mode
// with the "0001" version; NewParser applies options on top of that. A
// configured Parser is read-only and safe for concurrent use.
type Parser struct {
	mode          ParseMode
	expectVersion string
	custom        CustomParseFunc
}

// ParserOption adjusts a Parser during construction.
type ParserOption func(*Parser)

// WithParseMode selects the parse mode.
func WithParseMode(mode ParseMode) ParserOption {
	return func(p *Parser) { p.mode = mode }
}

// WithExpectedVersion pins the header version the parser accepts. The
// empty string accepts any version bytes.
func WithExpectedVersion(v string) ParserOption {
	return func(p *Parser) { p.expectVersion = v }
}

// WithCustomRequisites installs the conversion hook for keys outside the
// standard's field set.
func WithCustomRequisites(fn CustomParseFunc) ParserOption {
	return func(p *Parser) { p.custom = fn }
}

// NewParser builds a parser from the strict defaults and the given
// options.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		mode:          ParseStrict,
		expectVersion: DefaultVersion,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// defaultParser backs the package-level Parse and ParseString.
var defaultParser = NewParser()

// Parse reads a payment line in the strict mode with default settings.
func Parse(data []byte) (Payment, error) {
	return defaultParser.ParseBytes(data)
}

// ParseString reads a payment line in the strict mode with default
// settings.
func ParseString(s string) (Payment, error) {
	return defaultParser.ParseString(s)
}

// ParseString reads a payment line from a string. Except in the loose
// mode, the header must carry the UTF-8 charset marker: a string cannot
// hold a Windows-1251 or KOI8-R body, so any other marker means the line
// was mis-decoded somewhere upstream. Lines serialized in a legacy
// charset parse through ParseBytes.
func (p *Parser) ParseString(s string) (Payment, error) {
	header, err := parseHeader([]byte(s[:min(len(s), headerLen)]), p.expectVersion)
	if err != nil {
		return Payment{}, err
	}
	body := s[headerLen:]
	if p.mode == ParseLoose {
		body = strings.ToValidUTF8(body, string(utf8.RuneError))
	} else {
		if c := header.Charset(); c != CharsetUTF8 {
			return Payment{}, fmt.Errorf("%w: string input must be marked %s, not %s", ErrPrefixMismatch, CharsetUTF8, c)
		}
		if !utf8.ValidString(body) {
			return Payment{}, fmt.Errorf("%w: input is not valid UTF-8", ErrInvalidEncoding)
		}
	}
	return p.parseBody(header, body)
}

// ParseBytes reads a payment line from its wire bytes: the eight-byte
// header, then the body decoded from the header's character set.
func (p *Parser) ParseBytes(data []byte) (Payment, error) {
	header, err := parseHeader(data, p.expectVersion)
	if err != nil {
		return Payment{}, err
	}
	var body string
	if p.mode == ParseLoose {
		body = header.Charset().decodeLossy(data[headerLen:])
	} else if body, err = header.Charset().decode(data[headerLen:]); err != nil {
		return Payment{}, err
	}
	return p.parseBody(header, body)
}

// parseBody walks the key=value tokens split on the header's separator.
// Mandatory fields are stored in their dedicated slots wherever they
// appear in the body, so a line with an unusual field order still
// resolves; everything else is collected into the additional sequence in
// input order.
func (p *Parser) parseBody(header Header, body string) (Payment, error) {
	payment := Payment{header: header}
	if body == "" {
		return p.finish(payment)
	}
	for _, token := range strings.Split(body, string(header.Separator())) {
		key, value, found := strings.Cut(token, "=")
		if !found || key == "" {
			if p.mode == ParseStrict {
				return Payment{}, fmt.Errorf("%w: token %q", ErrMalformedField, token)
			}
			continue
		}

		f := Field(key)
		if slot, ok := requiredSlot(f); ok {
			if err := payment.required.setParsed(f, value); err != nil {
				if p.mode == ParseStrict {
					return Payment{}, err
				}
				continue
			}
			payment.present |= 1 << slot
			continue
		}
		if f.isStandard() {
			if err := validateFieldValue(f, value); err != nil {
				if p.mode == ParseStrict {
					return Payment{}, err
				}
				continue
			}
			payment.additional = append(payment.additional, StandardRequisite{field: f, value: value})
			continue
		}

		if p.custom != nil {
			r, err := p.custom(key, value)
			if err != nil {
				if p.mode == ParseStrict {
					return Payment{}, errors.Join(fmt.Errorf("%w: %q", ErrCustomRequisiteRejected, key), err)
				}
				continue
			}
			if r != nil {
				payment.additional = append(payment.additional, r)
			}
			continue
		}
		if p.mode == ParseStrict {
			return Payment{}, fmt.Errorf("%w: %q", ErrUnknownRequisite, key)
		}
	}
	return p.finish(payment)
}

// finish applies the end-of-parse checks a mode requires.
func (p *Parser) finish(payment Payment) (Payment, error) {
	if p.mode != ParseLoose && payment.present != allRequired {
		var missing []string
		for slot, f := range requiredFields {
			if !payment.has(slot) {
				missing = append(missing, string(f))
			}
		}
		return Payment{}, fmt.Errorf("%w: %s", ErrMissingRequiredField, strings.Join(missing, ", "))
	}
	return payment, nil
}
