package sepa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCurrency_ShapeOnly(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
		hasError bool
	}{
		{"Uppercase code", "EUR", "EUR", false},
		{"Lowercase is uppercased", "chf", "CHF", false},
		{"Mixed case", "UsD", "USD", false},
		{"Not a registry member but well-shaped", "ABC", "ABC", false},
		{"Too short", "EU", "", true},
		{"Too long", "EURO", "", true},
		{"Digits", "E1R", "", true},
		{"Empty stays unset", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, err := validateCurrency(tc.code, CurrencyShapeOnly)
			if tc.hasError {
				require.Error(t, err)
				var invalidCurrency *InvalidCurrencyError
				assert.True(t, errors.As(err, &invalidCurrency))
				assert.Equal(t, tc.code, invalidCurrency.Code)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, code)
			}
		})
	}
}

func TestValidateCurrency_Strict(t *testing.T) {
	code, err := validateCurrency("eur", CurrencyStrict)
	require.NoError(t, err)
	assert.Equal(t, "EUR", code)

	// Well-shaped but not an ISO 4217 code.
	_, err = validateCurrency("ABC", CurrencyStrict)
	require.Error(t, err)
	var invalidCurrency *InvalidCurrencyError
	assert.True(t, errors.As(err, &invalidCurrency))
}

func TestValidateEnum(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		allowed  []string
		expected string
		hasError bool
	}{
		{"Exact member", "CORE", localInstrumentCodes, "CORE", false},
		{"Lowercase input normalized", "core", localInstrumentCodes, "CORE", false},
		{"B2B", "b2b", localInstrumentCodes, "B2B", false},
		{"COR1", "cor1", localInstrumentCodes, "COR1", false},
		{"Not a member", "XYZ", localInstrumentCodes, "", true},
		{"Sequence FRST", "frst", sequenceTypes, "FRST", false},
		{"Sequence RCUR", "rcur", sequenceTypes, "RCUR", false},
		{"Sequence FNAL", "fnal", sequenceTypes, "FNAL", false},
		{"Sequence OOFF", "ooff", sequenceTypes, "OOFF", false},
		{"Sequence rejects others", "LAST", sequenceTypes, "", true},
		{"Collect method DD", "dd", collectMethods, "DD", false},
		{"Collect method rejects TRF", "TRF", collectMethods, "", true},
		{"Payment method TRF", "trf", paymentMethods, "TRF", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			value, err := validateEnum("test field", tc.value, tc.allowed)
			if tc.hasError {
				require.Error(t, err)
				var invalidEnum *InvalidEnumError
				require.True(t, errors.As(err, &invalidEnum))
				assert.Equal(t, tc.value, invalidEnum.Value)
				assert.Equal(t, tc.allowed, invalidEnum.Allowed)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, value)
			}
		})
	}
}
