package gost56042

import "fmt"

// RequiredRequisite is the block of five fields every payment must carry:
// payee name, payee account, bank name, bank identification code, and
// correspondent account. Construct it with NewRequiredRequisite; a
// constructed value always satisfies the size classes of its fields.
type RequiredRequisite struct {
	name        SizedString
	personalAcc SizedString
	bankName    SizedString
	bic         SizedString
	correspAcc  SizedString
}

// NewRequiredRequisite validates the five mandatory values in canonical
// order. Each value is checked against its field's size class and for the
// separator character; the first violation is returned with the field name
// attached.
func NewRequiredRequisite(name, personalAcc, bankName, bic, correspAcc string) (RequiredRequisite, error) {
	var (
		r   RequiredRequisite
		err error
	)
	if r.name, err = newSized(FieldName, name); err != nil {
		return RequiredRequisite{}, err
	}
	if r.personalAcc, err = newSized(FieldPersonalAcc, personalAcc); err != nil {
		return RequiredRequisite{}, err
	}
	if r.bankName, err = newSized(FieldBankName, bankName); err != nil {
		return RequiredRequisite{}, err
	}
	if r.bic, err = newSized(FieldBIC, bic); err != nil {
		return RequiredRequisite{}, err
	}
	if r.correspAcc, err = newSized(FieldCorrespAcc, correspAcc); err != nil {
		return RequiredRequisite{}, err
	}
	return r, nil
}

// Name returns the payee name.
func (r RequiredRequisite) Name() string { return r.name.String() }

// PersonalAcc returns the payee account number.
func (r RequiredRequisite) PersonalAcc() string { return r.personalAcc.String() }

// BankName returns the name of the payee's bank.
func (r RequiredRequisite) BankName() string { return r.bankName.String() }

// BIC returns the bank identification code.
func (r RequiredRequisite) BIC() string { return r.bic.String() }

// CorrespAcc returns the correspondent account of the payee's bank.
func (r RequiredRequisite) CorrespAcc() string { return r.correspAcc.String() }

// value returns the stored value for one of the five mandatory fields.
func (r RequiredRequisite) value(f Field) string {
	switch f {
	case FieldName:
		return r.name.String()
	case FieldPersonalAcc:
		return r.personalAcc.String()
	case FieldBankName:
		return r.bankName.String()
	case FieldBIC:
		return r.bic.String()
	case FieldCorrespAcc:
		return r.correspAcc.String()
	}
	return ""
}

// setParsed stores a parsed value after size validation. Separator checks
// are skipped here: the token splitter guarantees a parsed value cannot
// contain the separator it was split on.
func (r *RequiredRequisite) setParsed(f Field, value string) error {
	s, err := sizeClasses[f].apply(value)
	if err != nil {
		return fmt.Errorf("%s: %w", f, err)
	}
	switch f {
	case FieldName:
		r.name = s
	case FieldPersonalAcc:
		r.personalAcc = s
	case FieldBankName:
		r.bankName = s
	case FieldBIC:
		r.bic = s
	case FieldCorrespAcc:
		r.correspAcc = s
	}
	return nil
}

// requiredSlot maps a mandatory field to its canonical position.
func requiredSlot(f Field) (int, bool) {
	for i, r := range requiredFields {
		if f == r {
			return i, true
		}
	}
	return 0, false
}

// newSized validates a caller-supplied value for a sized field: no
// separator character, and within the field's size class.
func newSized(f Field, value string) (SizedString, error) {
	if err := checkSeparator(f, value); err != nil {
		return SizedString{}, err
	}
	s, err := sizeClasses[f].apply(value)
	if err != nil {
		return SizedString{}, fmt.Errorf("%s: %w", f, err)
	}
	return s, nil
}
