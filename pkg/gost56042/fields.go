package gost56042

import (
	"fmt"
	"strings"
)

// Field identifies a requisite key defined by the standard. Keys are
// case-sensitive and not caller-renamable; caller-defined keys are added
// through the Requisite interface instead, not through this type.
type Field string

// The five mandatory fields, in canonical emission order.
const (
	// FieldName is the payee name.
	FieldName Field = "Name"

	// FieldPersonalAcc is the payee account number.
	FieldPersonalAcc Field = "PersonalAcc"

	// FieldBankName is the name of the payee's bank.
	FieldBankName Field = "BankName"

	// FieldBIC is the bank identification code.
	FieldBIC Field = "BIC"

	// FieldCorrespAcc is the correspondent account of the payee's bank.
	FieldCorrespAcc Field = "CorrespAcc"
)

// Optional fields with an individual byte budget.
const (
	// FieldSum is the payment amount in kopecks.
	FieldSum Field = "Sum"

	// FieldPurpose is the payment purpose.
	FieldPurpose Field = "Purpose"

	// FieldPayeeINN is the payee taxpayer number.
	FieldPayeeINN Field = "PayeeINN"

	// FieldPayerINN is the payer taxpayer number.
	FieldPayerINN Field = "PayerINN"

	// FieldDrawerStatus is the status of the payment document drawer.
	FieldDrawerStatus Field = "DrawerStatus"

	// FieldKPP is the payee registration reason code.
	FieldKPP Field = "KPP"

	// FieldCBC is the budget classification code.
	FieldCBC Field = "CBC"

	// FieldOKTMO is the municipal territory classifier code.
	FieldOKTMO Field = "OKTMO"

	// FieldPaytReason is the tax payment reason.
	FieldPaytReason Field = "PaytReason"

	// FieldTaxPeriod is the tax period.
	FieldTaxPeriod Field = "TaxPeriod"

	// FieldDocNo is the document number.
	FieldDocNo Field = "DocNo"

	// FieldDocDate is the document date.
	FieldDocDate Field = "DocDate"

	// FieldTaxPayKind is the tax payment kind.
	FieldTaxPayKind Field = "TaxPayKind"
)

// Optional fields without an individual byte budget. Only the overall line
// capacity of the barcode bounds them.
const (
	// FieldLastName is the payer's last name.
	FieldLastName Field = "LastName"

	// FieldFirstName is the payer's first name.
	FieldFirstName Field = "FirstName"

	// FieldMiddleName is the payer's middle name.
	FieldMiddleName Field = "MiddleName"

	// FieldPayerAddress is the payer's address.
	FieldPayerAddress Field = "PayerAddress"

	// FieldPersonalAccount is the personal account of a budget recipient.
	FieldPersonalAccount Field = "PersonalAccount"

	// FieldDocIdx is the payment document index.
	FieldDocIdx Field = "DocIdx"

	// FieldPensAcc is the payer's personal account in the pension fund (SNILS).
	FieldPensAcc Field = "PensAcc"

	// FieldContract is the contract number.
	FieldContract Field = "Contract"

	// FieldPersAcc is the payer's personal account number at the organization.
	FieldPersAcc Field = "PersAcc"

	// FieldFlat is the flat number.
	FieldFlat Field = "Flat"

	// FieldPhone is the phone number.
	FieldPhone Field = "Phone"

	// FieldPayerIdType is the type of the payer's identity document.
	FieldPayerIdType Field = "PayerIdType"

	// FieldPayerIdNum is the number of the payer's identity document.
	FieldPayerIdNum Field = "PayerIdNum"

	// FieldChildFio is the full name of the child or student.
	FieldChildFio Field = "ChildFio"

	// FieldBirthDate is the birth date.
	FieldBirthDate Field = "BirthDate"

	// FieldPaymTerm is the payment due date or invoice date.
	FieldPaymTerm Field = "PaymTerm"

	// FieldPaymPeriod is the payment period.
	FieldPaymPeriod Field = "PaymPeriod"

	// FieldCategory is the payment category.
	FieldCategory Field = "Category"

	// FieldServiceName is the service code or meter name.
	FieldServiceName Field = "ServiceName"

	// FieldCounterId is the meter number.
	FieldCounterId Field = "CounterId"

	// FieldCounterVal is the meter reading.
	FieldCounterVal Field = "CounterVal"

	// FieldQuittId is the notice, accrual, or invoice number.
	FieldQuittId Field = "QuittId"

	// FieldQuittDate is the notice, accrual, invoice, or resolution date.
	FieldQuittDate Field = "QuittDate"

	// FieldInstNum is the institution number (educational, medical).
	FieldInstNum Field = "InstNum"

	// FieldClassNum is the kindergarten group or school class number.
	FieldClassNum Field = "ClassNum"

	// FieldSpecFio is the full name of the specialist providing the service.
	FieldSpecFio Field = "SpecFio"

	// FieldAddAmount is the insurance, extra service, or penalty amount in kopecks.
	FieldAddAmount Field = "AddAmount"

	// FieldRuleId is the resolution number (traffic police).
	FieldRuleId Field = "RuleId"

	// FieldExecId is the enforcement proceedings number.
	FieldExecId Field = "ExecId"

	// FieldRegType is the payment kind code (e.g. payments to Rosreestr).
	FieldRegType Field = "RegType"

	// FieldUIN is the unique accrual identifier.
	FieldUIN Field = "UIN"
)

// FieldTechCode is the technical code recommended for the service provider
// to fill in; the receiving organization may use it to route the payment to
// the relevant processing system. Its value is restricted to the TechCode
// set.
const FieldTechCode Field = "TechCode"

// requiredFields lists the mandatory fields in canonical emission order.
var requiredFields = [...]Field{FieldName, FieldPersonalAcc, FieldBankName, FieldBIC, FieldCorrespAcc}

// sizeClass is a byte-length constraint: exactly n bytes, or at most n bytes.
type sizeClass struct {
	n     int
	exact bool
}

func (c sizeClass) apply(s string) (SizedString, error) {
	if c.exact {
		return ExactSize(s, c.n)
	}
	return MaxSize(s, c.n)
}

// sizeClasses holds the standard's byte budget for every sized field. The
// constructors and the parser consult the same table, so the encode and
// decode paths can never disagree on a budget.
var sizeClasses = map[Field]sizeClass{
	FieldName:         {n: 160},
	FieldPersonalAcc:  {n: 20, exact: true},
	FieldBankName:     {n: 45},
	FieldBIC:          {n: 9, exact: true},
	FieldCorrespAcc:   {n: 20},
	FieldSum:          {n: 18},
	FieldPurpose:      {n: 210},
	FieldPayeeINN:     {n: 12},
	FieldPayerINN:     {n: 12},
	FieldDrawerStatus: {n: 2},
	FieldKPP:          {n: 9},
	FieldCBC:          {n: 20},
	FieldOKTMO:        {n: 11},
	FieldPaytReason:   {n: 2},
	FieldTaxPeriod:    {n: 10},
	FieldDocNo:        {n: 15},
	FieldDocDate:      {n: 10},
	FieldTaxPayKind:   {n: 2},
}

// unsizedFields is the set of standard fields without an individual budget.
var unsizedFields = map[Field]struct{}{
	FieldLastName:        {},
	FieldFirstName:       {},
	FieldMiddleName:      {},
	FieldPayerAddress:    {},
	FieldPersonalAccount: {},
	FieldDocIdx:          {},
	FieldPensAcc:         {},
	FieldContract:        {},
	FieldPersAcc:         {},
	FieldFlat:            {},
	FieldPhone:           {},
	FieldPayerIdType:     {},
	FieldPayerIdNum:      {},
	FieldChildFio:        {},
	FieldBirthDate:       {},
	FieldPaymTerm:        {},
	FieldPaymPeriod:      {},
	FieldCategory:        {},
	FieldServiceName:     {},
	FieldCounterId:       {},
	FieldCounterVal:      {},
	FieldQuittId:         {},
	FieldQuittDate:       {},
	FieldInstNum:         {},
	FieldClassNum:        {},
	FieldSpecFio:         {},
	FieldAddAmount:       {},
	FieldRuleId:          {},
	FieldExecId:          {},
	FieldRegType:         {},
	FieldUIN:             {},
}

func (f Field) isRequired() bool {
	_, ok := requiredSlot(f)
	return ok
}

func (f Field) isStandard() bool {
	if _, ok := sizeClasses[f]; ok {
		return true
	}
	if _, ok := unsizedFields[f]; ok {
		return true
	}
	return f == FieldTechCode
}

// validateFieldValue checks value against the field's size class and, for
// FieldTechCode, against the technical code set. It does not check for the
// separator character; the constructors do that for caller-supplied values,
// while parsed values cannot contain the separator they were split on.
func validateFieldValue(f Field, value string) error {
	if f == FieldTechCode {
		if _, err := ParseTechCode(value); err != nil {
			return err
		}
		return nil
	}
	if class, ok := sizeClasses[f]; ok {
		if _, err := class.apply(value); err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}
	return nil
}

// checkSeparator rejects caller-supplied values containing the standard '|'
// separator: the wire format defines no escaping, so such a value would
// produce an ambiguous line. This is stricter than the standard, which
// leaves the ambiguity unaddressed.
func checkSeparator(f Field, value string) error {
	if strings.IndexByte(value, DefaultSeparator) >= 0 {
		return fmt.Errorf("%s: %w", f, ErrValueContainsSeparator)
	}
	return nil
}
