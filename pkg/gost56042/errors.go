package gost56042

import "errors"

// Errors returned while constructing, serializing, and parsing payment
// records. They are stable identities for errors.Is classification; call
// sites attach detail (field names, observed sizes, offending tokens) with
// fmt.Errorf("%w: ...") or errors.Join.
//
// Classification:
// - Construction: ErrSizeViolation, ErrValueContainsSeparator, ErrRequiredField, ErrStandardField, ErrUnknownField, ErrUnknownTechCode
// - Header: ErrPrefixMismatch (refined with ErrUnsupportedVersion or ErrUnknownCharset)
// - Body: ErrMalformedField, ErrMissingRequiredField, ErrUnknownRequisite, ErrCustomRequisiteRejected
// - Charset: ErrInvalidEncoding (decode), ErrEncodingFailed (encode)
var (
	ErrSizeViolation           = errors.New("value violates the field size class")
	ErrValueContainsSeparator  = errors.New("value contains the field separator")
	ErrRequiredField           = errors.New("field is mandatory and belongs to the required requisite")
	ErrStandardField           = errors.New("key belongs to a standard field")
	ErrUnknownField            = errors.New("field is not defined by the standard")
	ErrUnknownTechCode         = errors.New("unknown technical code")
	ErrPrefixMismatch          = errors.New("input does not start with the payment format prefix")
	ErrUnsupportedVersion      = errors.New("unsupported format version")
	ErrUnknownCharset          = errors.New("unknown charset marker")
	ErrMalformedField          = errors.New("field token is not a key=value pair")
	ErrMissingRequiredField    = errors.New("required field is missing")
	ErrUnknownRequisite        = errors.New("unknown requisite key")
	ErrCustomRequisiteRejected = errors.New("custom requisite conversion rejected the pair")
	ErrInvalidEncoding         = errors.New("payload is not valid in the declared charset")
	ErrEncodingFailed          = errors.New("value cannot be represented in the payment charset")
)
