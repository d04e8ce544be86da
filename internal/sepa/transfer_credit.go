package sepa

import (
	"github.com/shopspring/decimal"

	"fjacquet/sepa-pain/internal/xmlutils"
)

// CreditTransferConfig carries the caller-supplied fields for one credit
// transfer transaction.
type CreditTransferConfig struct {
	// ID is the instruction id shown on the bank statement.
	ID string
	// Amount is the transfer amount in major units; it is converted to
	// cents by multiplying by 100 and truncating toward zero.
	Amount decimal.Decimal
	// AmountCents is the transfer amount already expressed in cents. A
	// non-zero value takes precedence over Amount.
	AmountCents int64
	// Currency is the ISO currency code of the amount.
	Currency string
	// CreditorBIC is the beneficiary bank's BIC; the agent block is
	// emitted empty when absent.
	CreditorBIC string
	// CreditorName is the beneficiary's name.
	CreditorName string
	// CreditorAccountIBAN is the beneficiary's account.
	CreditorAccountIBAN string
	// RemittanceInformation is free-text remittance information.
	RemittanceInformation string
}

// CreditTransfer is one credit-transfer money movement. It is fully
// configured when added to its PaymentInfo and not mutated afterwards.
type CreditTransfer struct {
	id                    string
	endToEndID            string
	creditorBIC           string
	creditorName          string
	creditorAccountIBAN   string
	remittanceInformation string
	currency              string
	amountCents           int64
}

// AmountCents returns the transfer amount in cents.
func (t *CreditTransfer) AmountCents() int64 {
	return t.amountCents
}

// EndToEndID returns the system-assigned end-to-end identifier.
func (t *CreditTransfer) EndToEndID() string {
	return t.endToEndID
}

// appendTo renders the CdtTrfTxInf fragment in schema order under the
// group's PmtInf element.
func (t *CreditTransfer) appendTo(pmtInf *xmlutils.Element) {
	txInf := pmtInf.Child("CdtTrfTxInf")

	pmtID := txInf.Child("PmtId")
	pmtID.ChildText("InstrId", t.id)
	pmtID.ChildText("EndToEndId", t.endToEndID)

	txInf.Child("Amt").
		ChildText("InstdAmt", CentsToDecimalString(t.amountCents)).
		SetAttr("Ccy", t.currency)

	finInstn := txInf.Child("CdtrAgt").Child("FinInstnId")
	if t.creditorBIC != "" {
		finInstn.ChildText("BIC", t.creditorBIC)
	}

	txInf.Child("Cdtr").ChildText("Nm", t.creditorName)
	txInf.Child("CdtrAcct").Child("Id").ChildText("IBAN", t.creditorAccountIBAN)
	txInf.Child("RmtInf").ChildText("Ustrd", t.remittanceInformation)
}
