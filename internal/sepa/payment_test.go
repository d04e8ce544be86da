package sepa

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/sepa-pain/internal/xmlutils"
)

func TestPaymentInfo_SingleCreditTransfer(t *testing.T) {
	file := NewCreditTransferFile()
	file.MessageID = "transferID"
	file.InitiatingPartyName = "Me"

	payment, err := file.AddPaymentInfo(PaymentInfoConfig{
		ID:                     "Payment Info ID",
		DebtorName:             "My Corp",
		DebtorAccountIBAN:      "FR1420041010050500013M02606",
		DebtorAgentBIC:         "PSSTFRPPMON",
		RequestedExecutionDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = payment.AddCreditTransfer(CreditTransferConfig{
		ID:                    "Id shown in bank statement",
		Currency:              "EUR",
		Amount:                decimal.RequireFromString("0.02"),
		CreditorName:          "Their Corp",
		CreditorAccountIBAN:   "FI1350001540000056",
		CreditorBIC:           "OKOYFIHH",
		RemittanceInformation: "Transaction description",
	})
	require.NoError(t, err)

	document := file.AsXML()
	paths := xmlutils.DefaultPain001XPaths()

	assert.Contains(t, document, `xmlns="urn:iso:std:iso:20022:tech:xsd:pain.001.001.03"`)
	assert.Equal(t, "transferID", extract(t, document, paths.Header.MessageID))
	assert.Equal(t, "1", extract(t, document, paths.Header.TransactionCount))
	assert.Equal(t, "0.02", extract(t, document, paths.Header.ControlSum))
	assert.Equal(t, "Me", extract(t, document, paths.Header.InitiatingParty))

	assert.Equal(t, "Payment Info ID", extract(t, document, paths.PaymentInfo.ID))
	assert.Equal(t, "TRF", extract(t, document, paths.PaymentInfo.PaymentMethod))
	assert.Equal(t, "2026-09-01", extract(t, document, paths.PaymentInfo.ExecutionDate))
	assert.Equal(t, "My Corp", extract(t, document, paths.PaymentInfo.DebtorName))
	assert.Equal(t, "FR1420041010050500013M02606", extract(t, document, paths.PaymentInfo.DebtorIBAN))
	assert.Equal(t, "PSSTFRPPMON", extract(t, document, paths.PaymentInfo.DebtorBIC))
	assert.Equal(t, "SLEV", extract(t, document, "//PmtInf/ChrgBr"))
	assert.Equal(t, "SEPA", extract(t, document, "//PmtInf/PmtTpInf/SvcLvl/Cd"))

	assert.Equal(t, "Id shown in bank statement", extract(t, document, paths.Transaction.InstructionID))
	assert.Equal(t, "transferID/0", extract(t, document, paths.Transaction.EndToEndID))
	assert.Equal(t, "0.02", extract(t, document, paths.Transaction.Amount))
	assert.Equal(t, "EUR", extract(t, document, paths.Transaction.Currency))
	assert.Equal(t, "Their Corp", extract(t, document, paths.Transaction.CreditorName))
	assert.Equal(t, "FI1350001540000056", extract(t, document, paths.Transaction.CreditorIBAN))
	assert.Equal(t, "OKOYFIHH", extract(t, document, paths.Transaction.CreditorBIC))
	assert.Equal(t, "Transaction description", extract(t, document, paths.Transaction.RemittanceInfo))
}

func TestPaymentInfo_AmountNesting(t *testing.T) {
	file := NewCreditTransferFile()
	file.MessageID = "msg"

	payment, err := file.AddPaymentInfo(PaymentInfoConfig{ID: "p1"})
	require.NoError(t, err)
	_, err = payment.AddCreditTransfer(CreditTransferConfig{Currency: "EUR", AmountCents: 12345})
	require.NoError(t, err)

	// pain.001 wraps the amount in an extra Amt level; pain.008 does not.
	document := file.AsXML()
	assert.Contains(t, document, `<Amt><InstdAmt Ccy="EUR">123.45</InstdAmt></Amt>`)
}

func TestPaymentInfo_ConfigureValidation(t *testing.T) {
	tests := []struct {
		name     string
		cfg      PaymentInfoConfig
		hasError bool
	}{
		{"Defaults are valid", PaymentInfoConfig{ID: "p1"}, false},
		{"Lowercase payment method normalized", PaymentInfoConfig{ID: "p1", PaymentMethod: "trf"}, false},
		{"Invalid payment method", PaymentInfoConfig{ID: "p1", PaymentMethod: "DD"}, true},
		{"Valid currency", PaymentInfoConfig{ID: "p1", DebtorAccountCurrency: "usd"}, false},
		{"Invalid currency shape", PaymentInfoConfig{ID: "p1", DebtorAccountCurrency: "EURO"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			file := NewCreditTransferFile()
			file.MessageID = "msg"
			_, err := file.AddPaymentInfo(tc.cfg)
			if tc.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaymentInfo_DefaultAccountCurrency(t *testing.T) {
	file := NewCreditTransferFile()
	file.MessageID = "msg"

	_, err := file.AddPaymentInfo(PaymentInfoConfig{ID: "p1"})
	require.NoError(t, err)

	document := file.AsXML()
	assert.Equal(t, "EUR", extract(t, document, "//PmtInf/DbtrAcct/Ccy"))
}

func TestPaymentInfo_EndToEndIDsRestartPerGroup(t *testing.T) {
	file := NewCreditTransferFile()
	file.MessageID = "run-1"

	first, err := file.AddPaymentInfo(PaymentInfoConfig{ID: "p1"})
	require.NoError(t, err)
	second, err := file.AddPaymentInfo(PaymentInfoConfig{ID: "p2"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := first.AddCreditTransfer(CreditTransferConfig{Currency: "EUR", AmountCents: 100})
		require.NoError(t, err)
	}
	tx, err := second.AddCreditTransfer(CreditTransferConfig{Currency: "EUR", AmountCents: 300})
	require.NoError(t, err)
	assert.Equal(t, "run-1/0", tx.EndToEndID())

	document := file.AsXML()
	root, err := xmlutils.ParseDocument(document)
	require.NoError(t, err)
	ids, err := xmlutils.ExtractFromXML(root, xmlutils.DefaultPain001XPaths().Transaction.EndToEndID)
	require.NoError(t, err)
	assert.Equal(t, []string{"run-1/0", "run-1/1", "run-1/0"}, ids)
}

func TestPaymentInfo_EmptyAgentWhenNoBIC(t *testing.T) {
	file := NewCreditTransferFile()
	file.MessageID = "msg"

	payment, err := file.AddPaymentInfo(PaymentInfoConfig{ID: "p1"})
	require.NoError(t, err)
	_, err = payment.AddCreditTransfer(CreditTransferConfig{Currency: "EUR", AmountCents: 100})
	require.NoError(t, err)

	document := file.AsXML()
	assert.Contains(t, document, "<CdtrAgt><FinInstnId/></CdtrAgt>")
}
