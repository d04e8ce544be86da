package xmlutils

// PAIN008 contains the XPath expressions used to read back generated
// pain.008 (direct debit initiation) documents.
type PAIN008 struct {
	// Header contains XPath expressions for the group header
	Header struct {
		MessageID        string
		CreationDateTime string
		TransactionCount string
		ControlSum       string
		InitiatingParty  string
	}

	// PaymentInfo contains XPath expressions for the payment group block
	PaymentInfo struct {
		ID               string
		PaymentMethod    string
		TransactionCount string
		ControlSum       string
		ServiceLevel     string
		LocalInstrument  string
		SequenceType     string
		CollectionDate   string
		CreditorName     string
		CreditorIBAN     string
		CreditorBIC      string
		ChargeBearer     string
	}

	// Transaction contains XPath expressions for individual transfers
	Transaction struct {
		InstructionID     string
		EndToEndID        string
		Amount            string
		Currency          string
		MandateID         string
		MandateSignature  string
		MandateAmendment  string
		DebtorName        string
		DebtorIBAN        string
		DebtorBIC         string
		RemittanceInfo    string
	}
}

// DefaultPain008XPaths returns a PAIN008 struct with the default XPath expressions
func DefaultPain008XPaths() PAIN008 {
	p := PAIN008{}

	p.Header.MessageID = "//CstmrDrctDbtInitn/GrpHdr/MsgId"
	p.Header.CreationDateTime = "//CstmrDrctDbtInitn/GrpHdr/CreDtTm"
	p.Header.TransactionCount = "//CstmrDrctDbtInitn/GrpHdr/NbOfTxs"
	p.Header.ControlSum = "//CstmrDrctDbtInitn/GrpHdr/CtrlSum"
	p.Header.InitiatingParty = "//CstmrDrctDbtInitn/GrpHdr/InitgPty/Nm"

	p.PaymentInfo.ID = "//PmtInf/PmtInfId"
	p.PaymentInfo.PaymentMethod = "//PmtInf/PmtMtd"
	p.PaymentInfo.TransactionCount = "//PmtInf/NbOfTxs"
	p.PaymentInfo.ControlSum = "//PmtInf/CtrlSum"
	p.PaymentInfo.ServiceLevel = "//PmtInf/PmtTpInf/SvcLvl/Cd"
	p.PaymentInfo.LocalInstrument = "//PmtInf/PmtTpInf/LclInstrm/Cd"
	p.PaymentInfo.SequenceType = "//PmtInf/PmtTpInf/SeqTp"
	p.PaymentInfo.CollectionDate = "//PmtInf/ReqdColltnDt"
	p.PaymentInfo.CreditorName = "//PmtInf/Cdtr/Nm"
	p.PaymentInfo.CreditorIBAN = "//PmtInf/CdtrAcct/Id/IBAN"
	p.PaymentInfo.CreditorBIC = "//PmtInf/CdtrAgt/FinInstnId/BIC"
	p.PaymentInfo.ChargeBearer = "//PmtInf/ChrgBr"

	p.Transaction.InstructionID = "//DrctDbtTxInf/PmtId/InstrId"
	p.Transaction.EndToEndID = "//DrctDbtTxInf/PmtId/EndToEndId"
	p.Transaction.Amount = "//DrctDbtTxInf/InstdAmt"
	p.Transaction.Currency = "//DrctDbtTxInf/InstdAmt/@Ccy"
	p.Transaction.MandateID = "//DrctDbtTxInf/DrctDbtTx/MndtRltdInf/MndtId"
	p.Transaction.MandateSignature = "//DrctDbtTxInf/DrctDbtTx/MndtRltdInf/DtOfSgntr"
	p.Transaction.MandateAmendment = "//DrctDbtTxInf/DrctDbtTx/MndtRltdInf/AmdmntInd"
	p.Transaction.DebtorName = "//DrctDbtTxInf/Dbtr/Nm"
	p.Transaction.DebtorIBAN = "//DrctDbtTxInf/DbtrAcct/Id/IBAN"
	p.Transaction.DebtorBIC = "//DrctDbtTxInf/DbtrAgt/FinInstnId/BIC"
	p.Transaction.RemittanceInfo = "//DrctDbtTxInf/RmtInf/Ustrd"

	return p
}

// PAIN001 contains the XPath expressions used to read back generated
// pain.001 (credit transfer initiation) documents.
type PAIN001 struct {
	// Header contains XPath expressions for the group header
	Header struct {
		MessageID        string
		CreationDateTime string
		TransactionCount string
		ControlSum       string
		InitiatingParty  string
	}

	// PaymentInfo contains XPath expressions for the payment group block
	PaymentInfo struct {
		ID            string
		PaymentMethod string
		ExecutionDate string
		DebtorName    string
		DebtorIBAN    string
		DebtorBIC     string
	}

	// Transaction contains XPath expressions for individual transfers
	Transaction struct {
		InstructionID  string
		EndToEndID     string
		Amount         string
		Currency       string
		CreditorName   string
		CreditorIBAN   string
		CreditorBIC    string
		RemittanceInfo string
	}
}

// DefaultPain001XPaths returns a PAIN001 struct with the default XPath expressions
func DefaultPain001XPaths() PAIN001 {
	p := PAIN001{}

	p.Header.MessageID = "//CstmrCdtTrfInitn/GrpHdr/MsgId"
	p.Header.CreationDateTime = "//CstmrCdtTrfInitn/GrpHdr/CreDtTm"
	p.Header.TransactionCount = "//CstmrCdtTrfInitn/GrpHdr/NbOfTxs"
	p.Header.ControlSum = "//CstmrCdtTrfInitn/GrpHdr/CtrlSum"
	p.Header.InitiatingParty = "//CstmrCdtTrfInitn/GrpHdr/InitgPty/Nm"

	p.PaymentInfo.ID = "//PmtInf/PmtInfId"
	p.PaymentInfo.PaymentMethod = "//PmtInf/PmtMtd"
	p.PaymentInfo.ExecutionDate = "//PmtInf/ReqdExctnDt"
	p.PaymentInfo.DebtorName = "//PmtInf/Dbtr/Nm"
	p.PaymentInfo.DebtorIBAN = "//PmtInf/DbtrAcct/Id/IBAN"
	p.PaymentInfo.DebtorBIC = "//PmtInf/DbtrAgt/FinInstnId/BIC"

	p.Transaction.InstructionID = "//CdtTrfTxInf/PmtId/InstrId"
	p.Transaction.EndToEndID = "//CdtTrfTxInf/PmtId/EndToEndId"
	p.Transaction.Amount = "//CdtTrfTxInf/Amt/InstdAmt"
	p.Transaction.Currency = "//CdtTrfTxInf/Amt/InstdAmt/@Ccy"
	p.Transaction.CreditorName = "//CdtTrfTxInf/Cdtr/Nm"
	p.Transaction.CreditorIBAN = "//CdtTrfTxInf/CdtrAcct/Id/IBAN"
	p.Transaction.CreditorBIC = "//CdtTrfTxInf/CdtrAgt/FinInstnId/BIC"
	p.Transaction.RemittanceInfo = "//CdtTrfTxInf/RmtInf/Ustrd"

	return p
}

// XPath expressions shared by both message types. The group header lives
// one level below the message wrapper, so a wrapper-agnostic expression
// works for pain.001 and pain.008 alike.
const (
	XPathHeaderMessageID        = "/Document/*/GrpHdr/MsgId"
	XPathHeaderCreationDateTime = "/Document/*/GrpHdr/CreDtTm"
	XPathHeaderTransactionCount = "/Document/*/GrpHdr/NbOfTxs"
	XPathHeaderControlSum       = "/Document/*/GrpHdr/CtrlSum"

	// XPathInstructedAmount matches the per-transaction amount element of
	// either message type (DrctDbtTxInf/InstdAmt or CdtTrfTxInf/Amt/InstdAmt).
	XPathInstructedAmount = "//InstdAmt"
)
