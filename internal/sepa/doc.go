// Package sepa builds ISO 20022 payment-initiation XML documents: SEPA
// credit transfers (pain.001.001.03) and SEPA direct debits
// (pain.008.001.02).
//
// A caller constructs a TransferFile for one message type, adds payment
// groups (PaymentInfo for credit, CollectInfo for debit), adds transfers
// to each group, and serializes with AsXML. Enumerated codes and currency
// codes are validated when fields are assigned; rendering itself cannot
// fail. Transaction counts and control sums are aggregated per group as
// transfers are added and recomputed across groups at render time.
//
// A TransferFile and its subtree are not safe for concurrent mutation;
// independent files can be built concurrently.
package sepa
