package gost56042_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paymentqr/pkg/gost56042"
)

func TestNewRequisite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		field   gost56042.Field
		value   string
		wantErr error
	}{
		{name: "sized field within budget", field: gost56042.FieldSum, value: "100000"},
		{name: "sized field at budget", field: gost56042.FieldPayeeINN, value: "620009876500"},
		{name: "unsized field", field: gost56042.FieldLastName, value: "Иванов"},
		{name: "unsized field takes any length", field: gost56042.FieldUIN, value: "18209965144380154874"},
		{name: "tech code", field: gost56042.FieldTechCode, value: "02"},
		{name: "empty value allowed", field: gost56042.FieldPurpose, value: ""},
		{name: "sized field over budget", field: gost56042.FieldSum, value: "1234567890123456789", wantErr: gost56042.ErrSizeViolation},
		{name: "cyrillic over budget by bytes", field: gost56042.FieldDrawerStatus, value: "ЮЛ", wantErr: gost56042.ErrSizeViolation},
		{name: "required field rejected", field: gost56042.FieldName, value: "ООО «Три кита»", wantErr: gost56042.ErrRequiredField},
		{name: "required account rejected", field: gost56042.FieldPersonalAcc, value: "40702810138250123017", wantErr: gost56042.ErrRequiredField},
		{name: "unknown field", field: gost56042.Field("Favourite"), value: "tea", wantErr: gost56042.ErrUnknownField},
		{name: "separator in value", field: gost56042.FieldPurpose, value: "part one|part two", wantErr: gost56042.ErrValueContainsSeparator},
		{name: "unknown tech code", field: gost56042.FieldTechCode, value: "77", wantErr: gost56042.ErrUnknownTechCode},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := gost56042.NewRequisite(tt.field, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, string(tt.field), r.Key())
			assert.Equal(t, tt.value, r.Value())
			assert.Equal(t, tt.field, r.Field())
		})
	}
}

func TestNewCustomRequisite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{name: "plain pair", key: "Foo", value: "Foo"},
		{name: "cyrillic key", key: "Тест", value: "42"},
		{name: "empty value", key: "Note", value: ""},
		{name: "equals sign in value", key: "Expr", value: "a=b"},
		{name: "standard key rejected", key: "Sum", value: "100", wantErr: gost56042.ErrStandardField},
		{name: "required key rejected", key: "Name", value: "x", wantErr: gost56042.ErrStandardField},
		{name: "empty key", key: "", value: "x", wantErr: gost56042.ErrMalformedField},
		{name: "equals sign in key", key: "a=b", value: "x", wantErr: gost56042.ErrMalformedField},
		{name: "separator in key", key: "a|b", value: "x", wantErr: gost56042.ErrMalformedField},
		{name: "separator in value", key: "Foo", value: "a|b", wantErr: gost56042.ErrValueContainsSeparator},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := gost56042.NewCustomRequisite(tt.key, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, r.Key())
			assert.Equal(t, tt.value, r.Value())
		})
	}
}

func TestNewRequiredRequisite(t *testing.T) {
	t.Parallel()

	t.Run("valid block", func(t *testing.T) {
		t.Parallel()

		r, err := gost56042.NewRequiredRequisite(
			"ООО «Три кита»",
			"40702810138250123017",
			`ОАО "БАНК"`,
			"044525225",
			"30101810400000000225",
		)
		require.NoError(t, err)
		assert.Equal(t, "ООО «Три кита»", r.Name())
		assert.Equal(t, "40702810138250123017", r.PersonalAcc())
		assert.Equal(t, `ОАО "БАНК"`, r.BankName())
		assert.Equal(t, "044525225", r.BIC())
		assert.Equal(t, "30101810400000000225", r.CorrespAcc())
	})

	tests := []struct {
		name        string
		payeeName   string
		personalAcc string
		bankName    string
		bic         string
		correspAcc  string
		wantErr     error
		wantField   string
	}{
		{
			name:        "account must be exactly twenty bytes",
			payeeName:   "ООО «Три кита»",
			personalAcc: "407028101382501230",
			bankName:    `ОАО "БАНК"`,
			bic:         "044525225",
			correspAcc:  "30101810400000000225",
			wantErr:     gost56042.ErrSizeViolation,
			wantField:   "PersonalAcc",
		},
		{
			name:        "bic must be exactly nine bytes",
			payeeName:   "ООО «Три кита»",
			personalAcc: "40702810138250123017",
			bankName:    `ОАО "БАНК"`,
			bic:         "04452522",
			correspAcc:  "30101810400000000225",
			wantErr:     gost56042.ErrSizeViolation,
			wantField:   "BIC",
		},
		{
			name:        "correspondent account over budget",
			payeeName:   "ООО «Три кита»",
			personalAcc: "40702810138250123017",
			bankName:    `ОАО "БАНК"`,
			bic:         "044525225",
			correspAcc:  "301018104000000002255",
			wantErr:     gost56042.ErrSizeViolation,
			wantField:   "CorrespAcc",
		},
		{
			name:        "separator in bank name",
			payeeName:   "ООО «Три кита»",
			personalAcc: "40702810138250123017",
			bankName:    "ОАО|БАНК",
			bic:         "044525225",
			correspAcc:  "30101810400000000225",
			wantErr:     gost56042.ErrValueContainsSeparator,
			wantField:   "BankName",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := gost56042.NewRequiredRequisite(tt.payeeName, tt.personalAcc, tt.bankName, tt.bic, tt.correspAcc)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorContains(t, err, tt.wantField)
		})
	}

	t.Run("payee name over budget", func(t *testing.T) {
		t.Parallel()

		long := make([]byte, 161)
		for i := range long {
			long[i] = 'a'
		}
		_, err := gost56042.NewRequiredRequisite(string(long), "40702810138250123017", "Bank", "044525225", "30101810400000000225")
		assert.ErrorIs(t, err, gost56042.ErrSizeViolation)
		assert.ErrorContains(t, err, "Name")
	})
}
