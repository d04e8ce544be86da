package sepa

import "strings"

// Allowed values for the enumerated payment-group fields.
var (
	paymentMethods       = []string{"TRF"}
	collectMethods       = []string{"DD"}
	localInstrumentCodes = []string{"CORE", "B2B", "COR1"}
	sequenceTypes        = []string{"FRST", "RCUR", "FNAL", "OOFF"}
)

// validateEnum uppercases value and checks membership in the allowed set.
func validateEnum(field, value string, allowed []string) (string, error) {
	v := strings.ToUpper(value)
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	return "", &InvalidEnumError{Field: field, Value: value, Allowed: allowed}
}
