package sepa

import (
	"fmt"
	"strconv"
	"time"

	"fjacquet/sepa-pain/internal/xmlutils"
)

// PaymentInfoConfig carries the caller-supplied fields for one pain.001
// payment group. The group holds the debtor side of the transfers: the
// account all credit transfers in the batch are drawn from.
type PaymentInfoConfig struct {
	// ID unambiguously identifies the payment group.
	ID string
	// CategoryPurposeCode is the purpose of the group's transactions.
	CategoryPurposeCode string
	// DebtorName is the paying party's name.
	DebtorName string
	// DebtorAccountIBAN is the paying party's account.
	DebtorAccountIBAN string
	// DebtorAgentBIC is the paying party's bank.
	DebtorAgentBIC string
	// DebtorAccountCurrency defaults to EUR.
	DebtorAccountCurrency string
	// PaymentMethod defaults to TRF and must be a member of {TRF}.
	PaymentMethod string
	// RequestedExecutionDate defaults to the current date at render time.
	RequestedExecutionDate time.Time
}

// PaymentInfo is one credit-transfer payment group: shared debtor-side
// metadata plus an ordered list of credit transfers.
type PaymentInfo struct {
	id                     string
	categoryPurposeCode    string
	debtorName             string
	debtorAccountIBAN      string
	debtorAgentBIC         string
	debtorAccountCurrency  string
	paymentMethod          string
	requestedExecutionDate time.Time

	messageID  string
	validation CurrencyValidation

	numberOfTransactions int
	controlSumCents      int64
	transfers            []*CreditTransfer
}

func newPaymentInfo(f *TransferFile, cfg PaymentInfoConfig) (*PaymentInfo, error) {
	p := &PaymentInfo{
		id:                     cfg.ID,
		categoryPurposeCode:    cfg.CategoryPurposeCode,
		debtorName:             cfg.DebtorName,
		debtorAccountIBAN:      cfg.DebtorAccountIBAN,
		debtorAgentBIC:         cfg.DebtorAgentBIC,
		debtorAccountCurrency:  "EUR",
		paymentMethod:          "TRF",
		requestedExecutionDate: cfg.RequestedExecutionDate,
		messageID:              f.MessageID,
		validation:             f.CurrencyValidation,
	}

	var err error
	if cfg.PaymentMethod != "" {
		if p.paymentMethod, err = validateEnum("payment method", cfg.PaymentMethod, paymentMethods); err != nil {
			return nil, err
		}
	}
	if cfg.DebtorAccountCurrency != "" {
		if p.debtorAccountCurrency, err = validateCurrency(cfg.DebtorAccountCurrency, p.validation); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// AddCreditTransfer appends one credit transfer to the group. The
// transfer's end-to-end id is derived from the file's message id and the
// zero-based position within the group.
func (p *PaymentInfo) AddCreditTransfer(cfg CreditTransferConfig) (*CreditTransfer, error) {
	currency, err := validateCurrency(cfg.Currency, p.validation)
	if err != nil {
		return nil, err
	}

	t := &CreditTransfer{
		id:                    cfg.ID,
		endToEndID:            fmt.Sprintf("%s/%d", p.messageID, p.numberOfTransactions),
		creditorBIC:           cfg.CreditorBIC,
		creditorName:          cfg.CreditorName,
		creditorAccountIBAN:   cfg.CreditorAccountIBAN,
		remittanceInformation: cfg.RemittanceInformation,
		currency:              currency,
		amountCents:           resolveAmountCents(cfg.Amount, cfg.AmountCents),
	}

	p.transfers = append(p.transfers, t)
	p.numberOfTransactions++
	p.controlSumCents += t.amountCents
	return t, nil
}

// TransactionCount returns the number of transfers in the group.
func (p *PaymentInfo) TransactionCount() int {
	return p.numberOfTransactions
}

// ControlSumCents returns the group's control sum in cents.
func (p *PaymentInfo) ControlSumCents() int64 {
	return p.controlSumCents
}

// appendTo renders the PmtInf block and all owned transfers in schema
// order under the CstmrCdtTrfInitn wrapper.
func (p *PaymentInfo) appendTo(wrapper *xmlutils.Element) {
	executionDate := p.requestedExecutionDate
	if executionDate.IsZero() {
		executionDate = time.Now()
	}

	pmtInf := wrapper.Child("PmtInf")
	pmtInf.ChildText("PmtInfId", p.id)
	if p.categoryPurposeCode != "" {
		pmtInf.Child("CtgyPurp").ChildText("Cd", p.categoryPurposeCode)
	}
	pmtInf.ChildText("PmtMtd", p.paymentMethod)
	pmtInf.ChildText("NbOfTxs", strconv.Itoa(p.numberOfTransactions))
	pmtInf.ChildText("CtrlSum", CentsToDecimalString(p.controlSumCents))

	pmtInf.Child("PmtTpInf").Child("SvcLvl").ChildText("Cd", "SEPA")

	pmtInf.ChildText("ReqdExctnDt", executionDate.Format(dateLayout))
	pmtInf.Child("Dbtr").ChildText("Nm", p.debtorName)

	acct := pmtInf.Child("DbtrAcct")
	acct.Child("Id").ChildText("IBAN", p.debtorAccountIBAN)
	acct.ChildText("Ccy", p.debtorAccountCurrency)

	pmtInf.Child("DbtrAgt").Child("FinInstnId").ChildText("BIC", p.debtorAgentBIC)
	pmtInf.ChildText("ChrgBr", chargeBearer)

	for _, t := range p.transfers {
		t.appendTo(pmtInf)
	}
}
