package gost56042

import "fmt"

// TechCode is the technical code carried by the TechCode field. It
// classifies the payment for the receiving organization's processing
// systems. The wire representation is the two-digit string itself.
type TechCode string

const (
	// TechCodeMobile is mobile communications and landline payments.
	TechCodeMobile TechCode = "01"

	// TechCodeHousingAndUtilities is housing and utility services.
	TechCodeHousingAndUtilities TechCode = "02"

	// TechCodeTaxes is traffic police fines, taxes, duties, and budget payments.
	TechCodeTaxes TechCode = "03"

	// TechCodeSecurityServices is security service payments.
	TechCodeSecurityServices TechCode = "04"

	// TechCodeFMS is payments to migration service authorities.
	TechCodeFMS TechCode = "05"

	// TechCodePFR is payments to pension funds.
	TechCodePFR TechCode = "06"

	// TechCodeLoanRepayments is loan repayment payments.
	TechCodeLoanRepayments TechCode = "07"

	// TechCodeEducationalInstitutions is kindergarten and school payments.
	TechCodeEducationalInstitutions TechCode = "08"

	// TechCodeInternetTV is internet and television payments.
	TechCodeInternetTV TechCode = "09"

	// TechCodeEmoney is electronic money payments.
	TechCodeEmoney TechCode = "10"

	// TechCodeVacation is vacation and travel payments.
	TechCodeVacation TechCode = "11"

	// TechCodeInvestmentInsurance is investment and insurance payments.
	TechCodeInvestmentInsurance TechCode = "12"

	// TechCodeSportHealth is sport and health payments.
	TechCodeSportHealth TechCode = "13"

	// TechCodeCharity is charitable payments.
	TechCodeCharity TechCode = "14"

	// TechCodeOther is everything outside the other categories.
	TechCodeOther TechCode = "15"
)

// techCodes is the set of codes the standard defines.
var techCodes = map[TechCode]struct{}{
	TechCodeMobile:                  {},
	TechCodeHousingAndUtilities:     {},
	TechCodeTaxes:                   {},
	TechCodeSecurityServices:        {},
	TechCodeFMS:                     {},
	TechCodePFR:                     {},
	TechCodeLoanRepayments:          {},
	TechCodeEducationalInstitutions: {},
	TechCodeInternetTV:              {},
	TechCodeEmoney:                  {},
	TechCodeVacation:                {},
	TechCodeInvestmentInsurance:     {},
	TechCodeSportHealth:             {},
	TechCodeCharity:                 {},
	TechCodeOther:                   {},
}

// ParseTechCode converts a wire value to a TechCode. Values outside the
// standard's "01" through "15" set are rejected with ErrUnknownTechCode;
// the codes are not zero-padded numbers, so "1" and "001" are invalid.
func ParseTechCode(s string) (TechCode, error) {
	code := TechCode(s)
	if _, ok := techCodes[code]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTechCode, s)
	}
	return code, nil
}

// String returns the two-digit wire representation.
func (t TechCode) String() string { return string(t) }
