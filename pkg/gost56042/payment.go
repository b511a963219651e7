package gost56042

import "slices"

// allRequired is the presence mask with every mandatory field set.
const allRequired = 1<<len(requiredFields) - 1

// Payment is one payment record: the header, the block of mandatory
// fields, and the sequence of additional requisites in their original
// order. Values come from the Builder or the Parser and are validated on
// the way in, so a Payment in hand is always serializable.
//
// The mandatory fields live in dedicated slots rather than in the
// sequence; a presence mask distinguishes an absent field from an empty
// one, which matters for payments read in the loose parse mode.
type Payment struct {
	header     Header
	required   RequiredRequisite
	present    uint8
	additional []Requisite
}

// Header returns the service data block the payment was built or parsed
// with.
func (p Payment) Header() Header { return p.header }

// Required returns the block of mandatory fields. For payments read in the
// loose parse mode, fields that were missing from the input read as empty;
// use Get to tell the two apart.
func (p Payment) Required() RequiredRequisite { return p.required }

// Additional returns a copy of the additional requisites in their original
// order.
func (p Payment) Additional() []Requisite { return slices.Clone(p.additional) }

// Get looks up a field value by its wire key. Mandatory fields resolve
// from their dedicated slots and only when present; all other keys resolve
// from the additional sequence, first match wins.
func (p Payment) Get(key string) (string, bool) {
	if slot, ok := requiredSlot(Field(key)); ok {
		if !p.has(slot) {
			return "", false
		}
		return p.required.value(Field(key)), true
	}
	for _, r := range p.additional {
		if r.Key() == key {
			return r.Value(), true
		}
	}
	return "", false
}

// TechCode returns the payment's technical code, if one is present and
// well-formed.
func (p Payment) TechCode() (TechCode, bool) {
	v, ok := p.Get(string(FieldTechCode))
	if !ok {
		return "", false
	}
	code, err := ParseTechCode(v)
	if err != nil {
		return "", false
	}
	return code, true
}

// Equal reports whether two payments carry the same header, the same
// mandatory fields with the same presence, and the same additional
// sequence compared element-wise by key and value. Unset header parts
// compare as their defaults, so a parsed payment equals the built payment
// it round-tripped from.
func (p Payment) Equal(other Payment) bool {
	if p.header.orDefault() != other.header.orDefault() {
		return false
	}
	if p.present != other.present {
		return false
	}
	for _, f := range requiredFields {
		if p.required.value(f) != other.required.value(f) {
			return false
		}
	}
	if len(p.additional) != len(other.additional) {
		return false
	}
	for i, r := range p.additional {
		o := other.additional[i]
		if r.Key() != o.Key() || r.Value() != o.Value() {
			return false
		}
	}
	return true
}

func (p Payment) has(slot int) bool { return p.present&(1<<slot) != 0 }
