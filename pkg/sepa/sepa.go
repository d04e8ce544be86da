// Package sepa is the public entry point for building SEPA
// payment-initiation documents as a library, without the CLI. It re-exports
// the document model from the internal implementation.
package sepa

import (
	"fjacquet/sepa-pain/internal/sepa"
)

// Message types.
const (
	CreditTransferMessage = sepa.CreditTransferMessage
	DirectDebitMessage    = sepa.DirectDebitMessage
)

// Currency validation modes.
const (
	CurrencyShapeOnly = sepa.CurrencyShapeOnly
	CurrencyStrict    = sepa.CurrencyStrict
)

// Document model.
type (
	MessageType        = sepa.MessageType
	CurrencyValidation = sepa.CurrencyValidation

	TransferFile = sepa.TransferFile

	PaymentInfo       = sepa.PaymentInfo
	PaymentInfoConfig = sepa.PaymentInfoConfig
	CollectInfo       = sepa.CollectInfo
	CollectInfoConfig = sepa.CollectInfoConfig

	CreditTransfer       = sepa.CreditTransfer
	CreditTransferConfig = sepa.CreditTransferConfig
	DebitTransfer        = sepa.DebitTransfer
	DebitTransferConfig  = sepa.DebitTransferConfig

	InvalidCurrencyError  = sepa.InvalidCurrencyError
	InvalidEnumError      = sepa.InvalidEnumError
	WrongMessageTypeError = sepa.WrongMessageTypeError
)

// Constructors and amount helpers.
var (
	NewTransferFile       = sepa.NewTransferFile
	NewCreditTransferFile = sepa.NewCreditTransferFile
	NewDirectDebitFile    = sepa.NewDirectDebitFile

	AmountToCents        = sepa.AmountToCents
	CentsToDecimalString = sepa.CentsToDecimalString
)
