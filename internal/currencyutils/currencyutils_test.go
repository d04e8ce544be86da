package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		hasError bool
	}{
		{"Plain decimal", "1234.56", "1234.56", false},
		{"European decimal comma", "1234,56", "1234.56", false},
		{"European with thousand dot", "1.234,56", "1234.56", false},
		{"US with thousand comma", "1,234.56", "1234.56", false},
		{"Swiss apostrophe", "1'234.56", "1234.56", false},
		{"Comma as thousand separator only", "5,000", "5000", false},
		{"Whitespace trimmed", "  42.00 ", "42", false},
		{"Negative amount", "-10.50", "-10.5", false},
		{"Empty is zero", "", "0", false},
		{"Garbage", "ten euros", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			expected := decimal.RequireFromString(tc.expected)
			assert.True(t, got.Equal(expected), "got %s, want %s", got, expected)
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1.234,56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"1234,56", "1234.56"},
		{"5,000", "5000"},
		{"1'234.56", "1234.56"},
		{"1234.56", "1234.56"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, StandardizeAmount(tc.input))
		})
	}
}
