// Package qrcode renders payment records and arbitrary content as QR code
// images, either as raw PNG bytes or as a data-URI string that can be
// embedded directly into HTML pages.
//
// The package is a thin wrapper around github.com/skip2/go-qrcode that adds
// sensible defaults, input validation, and the bridge to the gost56042
// payment format.
//
// # Architecture
//
// The generic Generate and GenerateBase64Image functions accept any
// content string. The payment-aware pair builds on top of them:
//
//   - GeneratePayment serializes a gost56042.Payment with Payment.Bytes,
//     so the QR payload is written in the character set the payment's
//     header declares, then renders it as a PNG byte slice.
//   - GeneratePaymentBase64Image returns the same image as a data-URI
//     (base64-encoded PNG) which can be used inside an <img> tag.
//
// Errors that can be returned are declared as package-level variables so
// they can be compared with errors.Is.
//
// # Usage
//
//	import (
//		"github.com/dmitrymomot/paymentqr/pkg/gost56042"
//		"github.com/dmitrymomot/paymentqr/pkg/qrcode"
//	)
//
//	payment := gost56042.NewBuilder(required).Build()
//
//	// Create PNG bytes
//	img, err := qrcode.GeneratePayment(payment, 256)
//	if err != nil {
//		// handle error
//	}
//
//	// Create base64 data URI
//	dataURI, err := qrcode.GeneratePaymentBase64Image(payment, 256)
//	if err != nil {
//		// handle error
//	}
//
// # Error Handling
//
// The functions return well-defined sentinel errors:
//
//   - ErrEmptyContent             – the content argument was empty.
//   - ErrorFailedToGenerateQRCode – the underlying library could not
//     generate the QR code.
//
// The payment-aware functions additionally pass through serialization
// errors from the gost56042 package, e.g. gost56042.ErrEncodingFailed when
// a value cannot be represented in the payment's character set.
//
// See the package tests for more usage examples.
package qrcode
