package sepa

import (
	"fmt"
	"strconv"
	"time"

	"fjacquet/sepa-pain/internal/xmlutils"
)

// CollectInfoConfig carries the caller-supplied fields for one pain.008
// payment group. Optional fields left at their zero value are either
// defaulted or omitted from the output.
type CollectInfoConfig struct {
	// ID unambiguously identifies the payment group.
	ID string
	// CategoryPurposeCode is the purpose of the group's transactions.
	CategoryPurposeCode string
	// CreditorName is the collecting party's name.
	CreditorName string
	// CreditorAccountIBAN is the collecting party's account.
	CreditorAccountIBAN string
	// CreditorAgentBIC is the collecting party's bank.
	CreditorAgentBIC string
	// CreditorAccountCurrency defaults to EUR.
	CreditorAccountCurrency string
	// CollectMethod defaults to DD and must be a member of {DD}.
	CollectMethod string
	// LocalInstrumentCode is one of CORE, B2B, COR1; omitted when empty.
	LocalInstrumentCode string
	// SequenceType is one of FRST, RCUR, FNAL, OOFF; omitted when empty.
	SequenceType string
	// RequestedCollectionDate defaults to the current date at render time.
	RequestedCollectionDate time.Time
}

// CollectInfo is one direct-debit payment group: shared creditor-side
// metadata plus an ordered list of debit transfers. The transaction count
// and control sum are maintained eagerly as transfers are added.
type CollectInfo struct {
	id                      string
	categoryPurposeCode     string
	creditorName            string
	creditorAccountIBAN     string
	creditorAgentBIC        string
	creditorAccountCurrency string
	collectMethod           string
	localInstrumentCode     string
	sequenceType            string
	requestedCollectionDate time.Time

	// messageID is a copy of the owning file's message id, captured at
	// creation to derive end-to-end ids without a live back-pointer.
	messageID  string
	validation CurrencyValidation

	numberOfTransactions int
	controlSumCents      int64
	transfers            []*DebitTransfer
}

func newCollectInfo(f *TransferFile, cfg CollectInfoConfig) (*CollectInfo, error) {
	c := &CollectInfo{
		id:                      cfg.ID,
		categoryPurposeCode:     cfg.CategoryPurposeCode,
		creditorName:            cfg.CreditorName,
		creditorAccountIBAN:     cfg.CreditorAccountIBAN,
		creditorAgentBIC:        cfg.CreditorAgentBIC,
		creditorAccountCurrency: "EUR",
		collectMethod:           "DD",
		requestedCollectionDate: cfg.RequestedCollectionDate,
		messageID:               f.MessageID,
		validation:              f.CurrencyValidation,
	}

	var err error
	if cfg.CollectMethod != "" {
		if c.collectMethod, err = validateEnum("collect method", cfg.CollectMethod, collectMethods); err != nil {
			return nil, err
		}
	}
	if cfg.LocalInstrumentCode != "" {
		if c.localInstrumentCode, err = validateEnum("local instrument code", cfg.LocalInstrumentCode, localInstrumentCodes); err != nil {
			return nil, err
		}
	}
	if cfg.SequenceType != "" {
		if c.sequenceType, err = validateEnum("sequence type", cfg.SequenceType, sequenceTypes); err != nil {
			return nil, err
		}
	}
	if cfg.CreditorAccountCurrency != "" {
		if c.creditorAccountCurrency, err = validateCurrency(cfg.CreditorAccountCurrency, c.validation); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddDebitTransfer appends one debit transfer to the group. The transfer's
// end-to-end id is derived from the file's message id and the zero-based
// position within the group. The group's count and control sum are updated
// immediately.
func (c *CollectInfo) AddDebitTransfer(cfg DebitTransferConfig) (*DebitTransfer, error) {
	currency, err := validateCurrency(cfg.Currency, c.validation)
	if err != nil {
		return nil, err
	}

	t := &DebitTransfer{
		id:                        cfg.ID,
		endToEndID:                fmt.Sprintf("%s/%d", c.messageID, c.numberOfTransactions),
		debtorBIC:                 cfg.DebtorBIC,
		debtorName:                cfg.DebtorName,
		debtorAccountIBAN:         cfg.DebtorAccountIBAN,
		remittanceInformation:     cfg.RemittanceInformation,
		mandateIdentification:     cfg.MandateIdentification,
		mandateDateOfSignature:    cfg.MandateDateOfSignature,
		mandateAmendmentIndicator: cfg.MandateAmendmentIndicator,
		currency:                  currency,
		amountCents:               resolveAmountCents(cfg.Amount, cfg.AmountCents),
	}
	if t.mandateDateOfSignature == "" {
		t.mandateDateOfSignature = defaultMandateSignatureDate
	}
	if t.mandateAmendmentIndicator == "" {
		t.mandateAmendmentIndicator = defaultMandateAmendment
	}

	c.transfers = append(c.transfers, t)
	c.numberOfTransactions++
	c.controlSumCents += t.amountCents
	return t, nil
}

// TransactionCount returns the number of transfers in the group.
func (c *CollectInfo) TransactionCount() int {
	return c.numberOfTransactions
}

// ControlSumCents returns the group's control sum in cents.
func (c *CollectInfo) ControlSumCents() int64 {
	return c.controlSumCents
}

// appendTo renders the PmtInf block and all owned transfers in schema
// order under the CstmrDrctDbtInitn wrapper.
func (c *CollectInfo) appendTo(wrapper *xmlutils.Element) {
	collectionDate := c.requestedCollectionDate
	if collectionDate.IsZero() {
		collectionDate = time.Now()
	}

	pmtInf := wrapper.Child("PmtInf")
	pmtInf.ChildText("PmtInfId", c.id)
	if c.categoryPurposeCode != "" {
		pmtInf.Child("CtgyPurp").ChildText("Cd", c.categoryPurposeCode)
	}
	pmtInf.ChildText("PmtMtd", c.collectMethod)
	pmtInf.ChildText("NbOfTxs", strconv.Itoa(c.numberOfTransactions))
	pmtInf.ChildText("CtrlSum", CentsToDecimalString(c.controlSumCents))

	pmtTpInf := pmtInf.Child("PmtTpInf")
	pmtTpInf.Child("SvcLvl").ChildText("Cd", "SEPA")
	if c.localInstrumentCode != "" {
		pmtTpInf.Child("LclInstrm").ChildText("Cd", c.localInstrumentCode)
	}
	if c.sequenceType != "" {
		pmtTpInf.ChildText("SeqTp", c.sequenceType)
	}

	pmtInf.ChildText("ReqdColltnDt", collectionDate.Format(dateLayout))
	pmtInf.Child("Cdtr").ChildText("Nm", c.creditorName)

	acct := pmtInf.Child("CdtrAcct")
	acct.Child("Id").ChildText("IBAN", c.creditorAccountIBAN)
	acct.ChildText("Ccy", c.creditorAccountCurrency)

	pmtInf.Child("CdtrAgt").Child("FinInstnId").ChildText("BIC", c.creditorAgentBIC)
	pmtInf.ChildText("ChrgBr", chargeBearer)

	for _, t := range c.transfers {
		t.appendTo(pmtInf)
	}
}
