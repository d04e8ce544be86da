package sepa

import (
	"github.com/shopspring/decimal"

	"fjacquet/sepa-pain/internal/xmlutils"
)

// Defaults applied when a mandate id is given without the other fields.
const (
	defaultMandateSignatureDate = "2009-11-01"
	defaultMandateAmendment     = "false"
)

// DebitTransferConfig carries the caller-supplied fields for one direct
// debit transaction.
type DebitTransferConfig struct {
	// ID is the instruction id shown on the debtor's bank statement.
	ID string
	// Amount is the transfer amount in major units; it is converted to
	// cents by multiplying by 100 and truncating toward zero.
	Amount decimal.Decimal
	// AmountCents is the transfer amount already expressed in cents. A
	// non-zero value takes precedence over Amount.
	AmountCents int64
	// Currency is the ISO currency code of the amount.
	Currency string
	// DebtorBIC is the debtor bank's BIC; the agent block is emitted
	// empty when absent.
	DebtorBIC string
	// DebtorName is the debtor's name.
	DebtorName string
	// DebtorAccountIBAN is the debtor's account.
	DebtorAccountIBAN string
	// RemittanceInformation is free-text remittance information.
	RemittanceInformation string
	// MandateIdentification references the debtor's mandate; the mandate
	// block is emitted only when present.
	MandateIdentification string
	// MandateDateOfSignature defaults to 2009-11-01 (Y-m-d).
	MandateDateOfSignature string
	// MandateAmendmentIndicator defaults to "false".
	MandateAmendmentIndicator string
}

// DebitTransfer is one direct-debit money movement. It is fully configured
// when added to its CollectInfo and not mutated afterwards.
type DebitTransfer struct {
	id                        string
	endToEndID                string
	debtorBIC                 string
	debtorName                string
	debtorAccountIBAN         string
	remittanceInformation     string
	mandateIdentification     string
	mandateDateOfSignature    string
	mandateAmendmentIndicator string
	currency                  string
	amountCents               int64
}

// AmountCents returns the transfer amount in cents.
func (t *DebitTransfer) AmountCents() int64 {
	return t.amountCents
}

// EndToEndID returns the system-assigned end-to-end identifier.
func (t *DebitTransfer) EndToEndID() string {
	return t.endToEndID
}

// appendTo renders the DrctDbtTxInf fragment in schema order under the
// group's PmtInf element.
func (t *DebitTransfer) appendTo(pmtInf *xmlutils.Element) {
	txInf := pmtInf.Child("DrctDbtTxInf")

	pmtID := txInf.Child("PmtId")
	pmtID.ChildText("InstrId", t.id)
	pmtID.ChildText("EndToEndId", t.endToEndID)

	txInf.ChildText("InstdAmt", CentsToDecimalString(t.amountCents)).
		SetAttr("Ccy", t.currency)

	if t.mandateIdentification != "" {
		mndt := txInf.Child("DrctDbtTx").Child("MndtRltdInf")
		mndt.ChildText("MndtId", t.mandateIdentification)
		mndt.ChildText("DtOfSgntr", t.mandateDateOfSignature)
		mndt.ChildText("AmdmntInd", t.mandateAmendmentIndicator)
	}

	finInstn := txInf.Child("DbtrAgt").Child("FinInstnId")
	if t.debtorBIC != "" {
		finInstn.ChildText("BIC", t.debtorBIC)
	}

	txInf.Child("Dbtr").ChildText("Nm", t.debtorName)
	txInf.Child("DbtrAcct").Child("Id").ChildText("IBAN", t.debtorAccountIBAN)
	txInf.Child("RmtInf").ChildText("Ustrd", t.remittanceInformation)
}
