// Package batch loads batch description files and builds transfer files
// from them. A batch is a YAML document carrying the message header and
// payment groups; each group's transactions are listed inline or in a
// separate CSV file.
package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"fjacquet/sepa-pain/internal/currencyutils"
	"fjacquet/sepa-pain/internal/dateutils"
	"fjacquet/sepa-pain/internal/logging"
	"fjacquet/sepa-pain/internal/sepa"
)

// Description is the top-level structure of a batch file.
type Description struct {
	// MessageType is "credit" or "debit". It may be omitted when the
	// subcommand already fixes the type.
	MessageType string `yaml:"message_type"`
	// MessageID identifies the message; generated when empty.
	MessageID           string    `yaml:"message_id"`
	InitiatingPartyName string    `yaml:"initiating_party_name"`
	InitiatingPartyID   string    `yaml:"initiating_party_id"`
	Test                bool      `yaml:"test"`
	StrictCurrency      bool      `yaml:"strict_currency"`
	Payments            []Payment `yaml:"payments"`

	// baseDir resolves relative transactions_csv paths; set by LoadFile.
	baseDir string
}

// Payment is one payment group in a batch file. Name, IBAN and BIC refer
// to the batch's own side of the transfers: the debtor account for credit
// transfers, the collecting creditor account for direct debits.
type Payment struct {
	ID                  string `yaml:"id"`
	CategoryPurposeCode string `yaml:"category_purpose_code"`
	Name                string `yaml:"name"`
	IBAN                string `yaml:"iban"`
	BIC                 string `yaml:"bic"`
	Currency            string `yaml:"currency"`
	LocalInstrument     string `yaml:"local_instrument"`
	SequenceType        string `yaml:"sequence_type"`
	RequestedDate       string `yaml:"requested_date"`

	Transactions    []Transaction `yaml:"transactions"`
	TransactionsCSV string        `yaml:"transactions_csv"`
}

// Transaction is one transfer row, usable inline in YAML or as a CSV
// record. Name, IBAN and BIC refer to the counterparty.
type Transaction struct {
	ID                   string `yaml:"id" csv:"id"`
	Amount               string `yaml:"amount" csv:"amount"`
	Currency             string `yaml:"currency" csv:"currency"`
	Name                 string `yaml:"name" csv:"name"`
	IBAN                 string `yaml:"iban" csv:"iban"`
	BIC                  string `yaml:"bic" csv:"bic"`
	Remittance           string `yaml:"remittance" csv:"remittance"`
	MandateID            string `yaml:"mandate_id" csv:"mandate_id"`
	MandateSignatureDate string `yaml:"mandate_signature_date" csv:"mandate_signature_date"`
}

// Parse reads a batch description from an io.Reader.
func Parse(r io.Reader, logger logging.Logger) (*Description, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading batch description: %w", err)
	}

	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		logger.WithError(err).Error("Failed to parse batch description")
		return nil, fmt.Errorf("error parsing batch description: %w", err)
	}

	logger.Info("Parsed batch description",
		logging.Field{Key: "payments", Value: len(d.Payments)})
	return &d, nil
}

// LoadFile reads a batch description from a YAML file. Relative
// transactions_csv paths are resolved against the file's directory.
func LoadFile(path string, logger logging.Logger) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening batch file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && logger != nil {
			logger.WithError(err).Warn("Failed to close batch file")
		}
	}()

	d, err := Parse(f, logger)
	if err != nil {
		return nil, err
	}
	d.baseDir = filepath.Dir(path)
	return d, nil
}

// Build constructs a TransferFile of the given message type from the
// description. The description's own message_type, when present, must
// agree with the requested one.
func (d *Description) Build(msgType sepa.MessageType, logger logging.Logger) (*sepa.TransferFile, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	if err := d.checkMessageType(msgType); err != nil {
		return nil, err
	}

	file := sepa.NewTransferFile(msgType)
	file.MessageID = d.MessageID
	if file.MessageID == "" {
		file.MessageID = uuid.NewString()
		logger.Info("Generated message id",
			logging.Field{Key: "message_id", Value: file.MessageID})
	}
	file.InitiatingPartyName = d.InitiatingPartyName
	file.InitiatingPartyID = d.InitiatingPartyID
	file.IsTest = d.Test
	if d.StrictCurrency {
		file.CurrencyValidation = sepa.CurrencyStrict
	}

	for i := range d.Payments {
		if err := d.addPayment(file, &d.Payments[i]); err != nil {
			return nil, fmt.Errorf("payment group %d: %w", i, err)
		}
	}

	logger.Info("Built transfer file",
		logging.Field{Key: "transactions", Value: file.TransactionCount()},
		logging.Field{Key: "control_sum", Value: sepa.CentsToDecimalString(file.HeaderControlSumCents())})
	return file, nil
}

func (d *Description) checkMessageType(msgType sepa.MessageType) error {
	switch d.MessageType {
	case "":
		return nil
	case "credit":
		if msgType != sepa.CreditTransferMessage {
			return fmt.Errorf("batch describes a credit transfer but a %s was requested", msgType)
		}
	case "debit":
		if msgType != sepa.DirectDebitMessage {
			return fmt.Errorf("batch describes a direct debit but a %s was requested", msgType)
		}
	default:
		return fmt.Errorf("unknown message_type %q (use \"credit\" or \"debit\")", d.MessageType)
	}
	return nil
}

func (d *Description) addPayment(file *sepa.TransferFile, p *Payment) error {
	transactions, err := d.collectTransactions(p)
	if err != nil {
		return err
	}

	requestedDate, err := parseRequestedDate(p.RequestedDate)
	if err != nil {
		return err
	}

	switch file.MessageType() {
	case sepa.CreditTransferMessage:
		group, err := file.AddPaymentInfo(sepa.PaymentInfoConfig{
			ID:                     p.ID,
			CategoryPurposeCode:    p.CategoryPurposeCode,
			DebtorName:             p.Name,
			DebtorAccountIBAN:      p.IBAN,
			DebtorAgentBIC:         p.BIC,
			DebtorAccountCurrency:  p.Currency,
			RequestedExecutionDate: requestedDate,
		})
		if err != nil {
			return err
		}
		for _, tx := range transactions {
			amount, err := currencyutils.ParseAmount(tx.Amount)
			if err != nil {
				return err
			}
			if _, err := group.AddCreditTransfer(sepa.CreditTransferConfig{
				ID:                    tx.ID,
				Amount:                amount,
				Currency:              tx.Currency,
				CreditorBIC:           tx.BIC,
				CreditorName:          tx.Name,
				CreditorAccountIBAN:   tx.IBAN,
				RemittanceInformation: tx.Remittance,
			}); err != nil {
				return err
			}
		}
	case sepa.DirectDebitMessage:
		group, err := file.AddCollectInfo(sepa.CollectInfoConfig{
			ID:                      p.ID,
			CategoryPurposeCode:     p.CategoryPurposeCode,
			CreditorName:            p.Name,
			CreditorAccountIBAN:     p.IBAN,
			CreditorAgentBIC:        p.BIC,
			CreditorAccountCurrency: p.Currency,
			LocalInstrumentCode:     p.LocalInstrument,
			SequenceType:            p.SequenceType,
			RequestedCollectionDate: requestedDate,
		})
		if err != nil {
			return err
		}
		for _, tx := range transactions {
			amount, err := currencyutils.ParseAmount(tx.Amount)
			if err != nil {
				return err
			}
			if _, err := group.AddDebitTransfer(sepa.DebitTransferConfig{
				ID:                     tx.ID,
				Amount:                 amount,
				Currency:               tx.Currency,
				DebtorBIC:              tx.BIC,
				DebtorName:             tx.Name,
				DebtorAccountIBAN:      tx.IBAN,
				RemittanceInformation:  tx.Remittance,
				MandateIdentification:  tx.MandateID,
				MandateDateOfSignature: tx.MandateSignatureDate,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// collectTransactions returns the group's inline transactions followed by
// any rows read from its CSV file.
func (d *Description) collectTransactions(p *Payment) ([]Transaction, error) {
	transactions := p.Transactions
	if p.TransactionsCSV == "" {
		return transactions, nil
	}

	path := p.TransactionsCSV
	if !filepath.IsAbs(path) && d.baseDir != "" {
		path = filepath.Join(d.baseDir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening transactions CSV: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var rows []*Transaction
	if err := gocsv.Unmarshal(f, &rows); err != nil {
		return nil, fmt.Errorf("error reading transactions CSV: %w", err)
	}
	for _, row := range rows {
		transactions = append(transactions, *row)
	}
	return transactions, nil
}

func parseRequestedDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}
	return dateutils.ParseDate(dateStr)
}
