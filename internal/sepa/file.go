package sepa

import (
	"strconv"
	"time"

	"fjacquet/sepa-pain/internal/xmlutils"
)

// MessageType discriminates the two supported payment-initiation messages.
type MessageType int

const (
	// CreditTransferMessage selects pain.001.001.03 (customer credit
	// transfer initiation).
	CreditTransferMessage MessageType = iota
	// DirectDebitMessage selects pain.008.001.02 (customer direct debit
	// initiation).
	DirectDebitMessage
)

// String returns a human-readable name for the message type.
func (t MessageType) String() string {
	switch t {
	case CreditTransferMessage:
		return "credit transfer (pain.001.001.03)"
	case DirectDebitMessage:
		return "direct debit (pain.008.001.02)"
	default:
		return "unknown message type"
	}
}

const (
	creditNamespace = "urn:iso:std:iso:20022:tech:xsd:pain.001.001.03"
	debitNamespace  = "urn:iso:std:iso:20022:tech:xsd:pain.008.001.02"
	xsiNamespace    = "http://www.w3.org/2001/XMLSchema-instance"

	creditWrapperTag = "CstmrCdtTrfInitn"
	debitWrapperTag  = "CstmrDrctDbtInitn"

	// chargeBearer is fixed for SEPA: charges follow the service level.
	chargeBearer = "SLEV"

	creationTimeLayout = "2006-01-02T15:04:05"
	dateLayout         = "2006-01-02"
)

// paymentGroup is the file-side view of PaymentInfo and CollectInfo.
type paymentGroup interface {
	TransactionCount() int
	ControlSumCents() int64
	appendTo(wrapper *xmlutils.Element)
}

// TransferFile is a single payment-initiation document under construction.
// The message type is fixed at creation and selects which group kind may
// be added. Header fields may be set at any time before rendering.
type TransferFile struct {
	// MessageID unambiguously identifies the message to the bank.
	MessageID string
	// InitiatingPartyName is the sender's name.
	InitiatingPartyName string
	// InitiatingPartyID is the sender's identifier, such as a tax id.
	InitiatingPartyID string
	// CategoryPurposeCode records a file-wide purpose for the caller's own
	// bookkeeping. The group header has no element for it, so it is not
	// rendered; set the code on individual payment groups instead.
	CategoryPurposeCode string
	// IsTest marks the document so it will never be executed.
	IsTest bool
	// CurrencyValidation selects shape-only (default) or strict ISO 4217
	// checking for every currency assigned under this file.
	CurrencyValidation CurrencyValidation

	messageType MessageType
	groups      []paymentGroup
}

// NewTransferFile creates an empty file for the given message type.
func NewTransferFile(t MessageType) *TransferFile {
	return &TransferFile{messageType: t}
}

// NewCreditTransferFile creates an empty pain.001 file.
func NewCreditTransferFile() *TransferFile {
	return NewTransferFile(CreditTransferMessage)
}

// NewDirectDebitFile creates an empty pain.008 file.
func NewDirectDebitFile() *TransferFile {
	return NewTransferFile(DirectDebitMessage)
}

// MessageType returns the file's fixed message type.
func (f *TransferFile) MessageType() MessageType {
	return f.messageType
}

// AddPaymentInfo adds a credit-transfer payment group. It fails when the
// file is a direct debit file or when a configured field is invalid.
func (f *TransferFile) AddPaymentInfo(cfg PaymentInfoConfig) (*PaymentInfo, error) {
	if f.messageType != CreditTransferMessage {
		return nil, &WrongMessageTypeError{Got: f.messageType, Want: CreditTransferMessage}
	}
	p, err := newPaymentInfo(f, cfg)
	if err != nil {
		return nil, err
	}
	f.groups = append(f.groups, p)
	return p, nil
}

// AddCollectInfo adds a direct-debit payment group. It fails when the file
// is a credit transfer file or when a configured field is invalid.
func (f *TransferFile) AddCollectInfo(cfg CollectInfoConfig) (*CollectInfo, error) {
	if f.messageType != DirectDebitMessage {
		return nil, &WrongMessageTypeError{Got: f.messageType, Want: DirectDebitMessage}
	}
	c, err := newCollectInfo(f, cfg)
	if err != nil {
		return nil, err
	}
	f.groups = append(f.groups, c)
	return c, nil
}

// TransactionCount returns the number of transactions across all groups.
func (f *TransferFile) TransactionCount() int {
	n := 0
	for _, g := range f.groups {
		n += g.TransactionCount()
	}
	return n
}

// HeaderControlSumCents returns the control sum across all groups, in
// cents. TransactionControlSumCents is a historical synonym.
func (f *TransferFile) HeaderControlSumCents() int64 {
	var sum int64
	for _, g := range f.groups {
		sum += g.ControlSumCents()
	}
	return sum
}

// TransactionControlSumCents returns the control sum across all groups,
// in cents. See HeaderControlSumCents.
func (f *TransferFile) TransactionControlSumCents() int64 {
	return f.HeaderControlSumCents()
}

// AsXML renders the complete document and serializes it to a UTF-8 string.
// Counters are recomputed from the current children on every call, so the
// output of two calls on an unmodified file differs only in the CreDtTm
// timestamp.
func (f *TransferFile) AsXML() string {
	namespace, wrapperTag := debitNamespace, debitWrapperTag
	if f.messageType == CreditTransferMessage {
		namespace, wrapperTag = creditNamespace, creditWrapperTag
	}

	doc := xmlutils.NewDocument("Document",
		xmlutils.Attr{Name: "xmlns:xsi", Value: xsiNamespace},
		xmlutils.Attr{Name: "xmlns", Value: namespace},
	)
	wrapper := doc.Child(wrapperTag)

	hdr := wrapper.Child("GrpHdr")
	hdr.ChildText("MsgId", f.MessageID)
	hdr.ChildText("CreDtTm", time.Now().Format(creationTimeLayout))
	if f.IsTest {
		hdr.Child("Authstn").ChildText("Prtry", "TEST")
	}
	hdr.ChildText("NbOfTxs", strconv.Itoa(f.TransactionCount()))
	hdr.ChildText("CtrlSum", CentsToDecimalString(f.HeaderControlSumCents()))
	initgPty := hdr.Child("InitgPty")
	initgPty.ChildText("Nm", f.InitiatingPartyName)
	if f.InitiatingPartyID != "" {
		initgPty.ChildText("Id", f.InitiatingPartyID)
	}

	for _, g := range f.groups {
		g.appendTo(wrapper)
	}

	return doc.Serialize()
}
