package sepa

import (
	"regexp"
	"strings"
)

// CurrencyValidation selects how currency codes are checked.
type CurrencyValidation int

const (
	// CurrencyShapeOnly accepts any three-letter alphabetic code,
	// uppercased on storage. This is the default.
	CurrencyShapeOnly CurrencyValidation = iota
	// CurrencyStrict additionally requires membership in the ISO 4217
	// registry of active currency codes.
	CurrencyStrict
)

var currencyShape = regexp.MustCompile(`^[A-Z]{3}$`)

// validateCurrency uppercases the code and validates it according to the
// selected mode. An empty code is returned as-is; the currency stays unset
// rather than the transfer being rejected.
func validateCurrency(code string, mode CurrencyValidation) (string, error) {
	if code == "" {
		return "", nil
	}
	c := strings.ToUpper(code)
	if !currencyShape.MatchString(c) {
		return "", &InvalidCurrencyError{Code: code}
	}
	if mode == CurrencyStrict {
		if _, ok := iso4217[c]; !ok {
			return "", &InvalidCurrencyError{Code: code}
		}
	}
	return c, nil
}

// iso4217 is the registry of active ISO 4217 currency codes, consulted
// only in CurrencyStrict mode.
var iso4217 = func() map[string]struct{} {
	codes := []string{
		"AED", "AFN", "ALL", "AMD", "ANG", "AOA", "ARS", "AUD", "AWG", "AZN",
		"BAM", "BBD", "BDT", "BGN", "BHD", "BIF", "BMD", "BND", "BOB", "BRL",
		"BSD", "BTN", "BWP", "BYN", "BZD", "CAD", "CDF", "CHF", "CLP", "CNY",
		"COP", "CRC", "CUP", "CVE", "CZK", "DJF", "DKK", "DOP", "DZD", "EGP",
		"ERN", "ETB", "EUR", "FJD", "FKP", "GBP", "GEL", "GHS", "GIP", "GMD",
		"GNF", "GTQ", "GYD", "HKD", "HNL", "HTG", "HUF", "IDR", "ILS", "INR",
		"IQD", "IRR", "ISK", "JMD", "JOD", "JPY", "KES", "KGS", "KHR", "KMF",
		"KPW", "KRW", "KWD", "KYD", "KZT", "LAK", "LBP", "LKR", "LRD", "LSL",
		"LYD", "MAD", "MDL", "MGA", "MKD", "MMK", "MNT", "MOP", "MRU", "MUR",
		"MVR", "MWK", "MXN", "MYR", "MZN", "NAD", "NGN", "NIO", "NOK", "NPR",
		"NZD", "OMR", "PAB", "PEN", "PGK", "PHP", "PKR", "PLN", "PYG", "QAR",
		"RON", "RSD", "RUB", "RWF", "SAR", "SBD", "SCR", "SDG", "SEK", "SGD",
		"SHP", "SLE", "SOS", "SRD", "SSP", "STN", "SVC", "SYP", "SZL", "THB",
		"TJS", "TMT", "TND", "TOP", "TRY", "TTD", "TWD", "TZS", "UAH", "UGX",
		"USD", "UYU", "UZS", "VES", "VND", "VUV", "WST", "XAF", "XCD", "XOF",
		"XPF", "YER", "ZAR", "ZMW", "ZWG",
	}
	m := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		m[c] = struct{}{}
	}
	return m
}()
