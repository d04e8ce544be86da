package sepa

import (
	"fmt"
	"strings"
)

// InvalidCurrencyError reports a currency code that failed validation.
type InvalidCurrencyError struct {
	Code string
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("invalid currency code: %q", e.Code)
}

// InvalidEnumError reports a value outside an enumerated field's allowed set.
type InvalidEnumError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s: %q (allowed: %s)",
		e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// WrongMessageTypeError reports an attempt to add a payment group of the
// wrong kind to a transfer file, such as a CollectInfo on a credit file.
type WrongMessageTypeError struct {
	Got  MessageType
	Want MessageType
}

func (e *WrongMessageTypeError) Error() string {
	return fmt.Sprintf("message type is %s, group requires %s", e.Got, e.Want)
}
