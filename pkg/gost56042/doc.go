// Package gost56042 encodes and decodes the payment requisite lines
// carried by two-dimensional barcodes on Russian payment documents
// (GOST R 56042-2014).
//
// A payment line is an eight-byte service block followed by key=value
// fields joined with a separator:
//
//	ST00012|Name=ООО «Три кита»|PersonalAcc=40702810138250123017|BankName=ОАО "БАНК"|BIC=044525225|CorrespAcc=30101810400000000225
//
// The service block pins the format id ("ST"), the version ("0001"), the
// payload character set (Windows-1251, UTF-8, or KOI8-R), and the
// separator byte. Five fields are mandatory on every payment; the
// standard defines several dozen optional ones, and parties may exchange
// custom pairs on top.
//
// # Usage
//
// Build a payment from the mandatory block, add optional requisites, and
// serialize:
//
//	required, err := gost56042.NewRequiredRequisite(
//		"ООО «Три кита»",
//		"40702810138250123017",
//		`ОАО "БАНК"`,
//		"044525225",
//		"30101810400000000225",
//	)
//	if err != nil {
//		return err
//	}
//
//	purpose, err := gost56042.NewRequisite(gost56042.FieldPurpose, "Оплата членского взноса")
//	if err != nil {
//		return err
//	}
//
//	payment := gost56042.NewBuilder(required).
//		WithAdditionalRequisites(purpose).
//		Build()
//
//	line, err := payment.Text()
//	if err != nil {
//		return err
//	}
//
// Use Bytes instead of Text when the output feeds a barcode generator:
// Bytes honors the header's character set while Text always returns
// UTF-8.
//
// Read a payment back with the package-level Parse or ParseString, which
// are strict, or configure a Parser. ParseString expects the line to
// carry the UTF-8 charset marker, since a string cannot hold a legacy
// codepage body; lines serialized in another charset go through Parse:
//
//	parser := gost56042.NewParser(
//		gost56042.WithParseMode(gost56042.ParseTolerant),
//		gost56042.WithCustomRequisites(func(key, value string) (gost56042.Requisite, error) {
//			return gost56042.NewCustomRequisite(key, value)
//		}),
//	)
//
//	payment, err := parser.ParseString(line)
//	if err != nil {
//		return err
//	}
//
//	name, ok := payment.Get("Name")
//
// # Error Handling
//
// Errors are classified by the package sentinels and tested with
// errors.Is:
//
//	_, err := gost56042.ParseString(line)
//	switch {
//	case errors.Is(err, gost56042.ErrPrefixMismatch):
//		// not a payment line at all
//	case errors.Is(err, gost56042.ErrMissingRequiredField):
//		// a mandatory field is absent
//	case errors.Is(err, gost56042.ErrSizeViolation):
//		// a value breaks its field's byte budget
//	}
//
// Construction reports ErrSizeViolation, ErrValueContainsSeparator,
// ErrRequiredField, ErrStandardField, ErrUnknownField, and
// ErrUnknownTechCode. Parsing adds ErrMalformedField,
// ErrUnknownRequisite, ErrCustomRequisiteRejected, and
// ErrMissingRequiredField; header problems carry ErrPrefixMismatch,
// refined with ErrUnsupportedVersion or ErrUnknownCharset. Character set
// conversion reports ErrEncodingFailed when serializing and
// ErrInvalidEncoding when parsing.
//
// Field sizes are byte budgets, not character counts: the standard
// specifies them in bytes, so Cyrillic text in UTF-8 spends two bytes
// per letter.
package gost56042
