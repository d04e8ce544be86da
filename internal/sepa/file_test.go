package sepa

import (
	"errors"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/sepa-pain/internal/xmlutils"
)

func TestTransferFile_MultiGroupTotals(t *testing.T) {
	file := NewDirectDebitFile()
	file.MessageID = "multi"
	file.InitiatingPartyName = "Me"

	for _, id := range []string{"first batch", "second batch"} {
		payment, err := file.AddCollectInfo(CollectInfoConfig{ID: id})
		require.NoError(t, err)
		for _, amount := range []string{"0.02", "5000.00"} {
			_, err := payment.AddDebitTransfer(DebitTransferConfig{
				Currency: "EUR",
				Amount:   decimal.RequireFromString(amount),
			})
			require.NoError(t, err)
		}
	}

	assert.Equal(t, 4, file.TransactionCount())
	assert.Equal(t, int64(1000004), file.HeaderControlSumCents())
	assert.Equal(t, file.HeaderControlSumCents(), file.TransactionControlSumCents())

	document := file.AsXML()
	assert.Equal(t, "4", extract(t, document, xmlutils.XPathHeaderTransactionCount))
	assert.Equal(t, "10000.04", extract(t, document, xmlutils.XPathHeaderControlSum))

	root, err := xmlutils.ParseDocument(document)
	require.NoError(t, err)
	groupCounts, err := xmlutils.ExtractFromXML(root, "//PmtInf/NbOfTxs")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "2"}, groupCounts)
	groupSums, err := xmlutils.ExtractFromXML(root, "//PmtInf/CtrlSum")
	require.NoError(t, err)
	assert.Equal(t, []string{"5000.02", "5000.02"}, groupSums)

	assert.NoError(t, xmlutils.VerifyDocument(document))
}

func TestTransferFile_RenderIsRepeatable(t *testing.T) {
	file := referenceDebitFile(t)

	normalize := func(document string) string {
		return regexp.MustCompile(`<CreDtTm>[^<]*</CreDtTm>`).
			ReplaceAllString(document, "<CreDtTm/>")
	}

	first := file.AsXML()
	second := file.AsXML()
	assert.Equal(t, normalize(first), normalize(second))
}

func TestTransferFile_TestAuthorisation(t *testing.T) {
	file := NewDirectDebitFile()
	file.MessageID = "msg"
	file.IsTest = true

	document := file.AsXML()
	assert.Equal(t, "TEST", extract(t, document, "//GrpHdr/Authstn/Prtry"))

	file.IsTest = false
	assert.NotContains(t, file.AsXML(), "<Authstn>")
}

func TestTransferFile_InitiatingPartyID(t *testing.T) {
	file := NewDirectDebitFile()
	file.MessageID = "msg"
	file.InitiatingPartyName = "Me"

	assert.NotContains(t, file.AsXML(), "<Id>")

	file.InitiatingPartyID = "FR00ZZZ123456"
	document := file.AsXML()
	assert.Equal(t, "FR00ZZZ123456", extract(t, document, "//GrpHdr/InitgPty/Id"))
	assert.Equal(t, "Me", extract(t, document, "//GrpHdr/InitgPty/Nm"))
}

func TestTransferFile_RejectsMismatchedGroupKind(t *testing.T) {
	debit := NewDirectDebitFile()
	debit.MessageID = "msg"
	_, err := debit.AddPaymentInfo(PaymentInfoConfig{ID: "p1"})
	require.Error(t, err)
	var wrongType *WrongMessageTypeError
	require.True(t, errors.As(err, &wrongType))
	assert.Equal(t, DirectDebitMessage, wrongType.Got)
	assert.Equal(t, CreditTransferMessage, wrongType.Want)

	credit := NewCreditTransferFile()
	credit.MessageID = "msg"
	_, err = credit.AddCollectInfo(CollectInfoConfig{ID: "p1"})
	require.Error(t, err)
	require.True(t, errors.As(err, &wrongType))
	assert.Equal(t, CreditTransferMessage, wrongType.Got)
}

func TestTransferFile_EmptyFileStillRenders(t *testing.T) {
	file := NewCreditTransferFile()
	file.MessageID = "empty"

	document := file.AsXML()
	assert.Equal(t, "0", extract(t, document, xmlutils.XPathHeaderTransactionCount))
	assert.Equal(t, "0.00", extract(t, document, xmlutils.XPathHeaderControlSum))
	assert.NotContains(t, document, "<PmtInf>")
}

func TestTransferFile_StrictCurrencyPropagates(t *testing.T) {
	file := NewDirectDebitFile()
	file.MessageID = "msg"
	file.CurrencyValidation = CurrencyStrict

	payment, err := file.AddCollectInfo(CollectInfoConfig{ID: "p1"})
	require.NoError(t, err)

	// Well-formed but unassigned code fails only under strict checking.
	_, err = payment.AddDebitTransfer(DebitTransferConfig{Currency: "ABC", AmountCents: 100})
	require.Error(t, err)
	var invalidCurrency *InvalidCurrencyError
	assert.True(t, errors.As(err, &invalidCurrency))

	_, err = payment.AddDebitTransfer(DebitTransferConfig{Currency: "CHF", AmountCents: 100})
	assert.NoError(t, err)
}

func TestMessageType_String(t *testing.T) {
	assert.Equal(t, "credit transfer (pain.001.001.03)", CreditTransferMessage.String())
	assert.Equal(t, "direct debit (pain.008.001.02)", DirectDebitMessage.String())
	assert.Equal(t, "unknown message type", MessageType(42).String())
}
