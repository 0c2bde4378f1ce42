package models

import (
	"github.com/shopspring/decimal"
)

// RawMessage is an incoming SMS as delivered by the message source.
type RawMessage struct {
	Sender          string `json:"sender"`
	Body            string `json:"body"`
	TimestampMillis int64  `json:"timestampMillis"`
}

// Transaction is a structured expense record extracted from a debit SMS.
// It is immutable after construction; CategoryID and Tags are filled in
// later by the categorization layer, never by the parser.
type Transaction struct {
	ID               string          `json:"id"`
	Amount           decimal.Decimal `json:"amount"`
	Merchant         string          `json:"merchant"`
	OccurredAtMillis int64           `json:"occurredAtMillis"`
	Sender           string          `json:"sender"`
	RawText          string          `json:"rawText"`
	CategoryID       *int            `json:"categoryId,omitempty"`
	Tags             string          `json:"tags,omitempty"`
	Details          Details         `json:"details"`
}

// Details holds informational fields pulled from the message. None of them
// are required for a valid Transaction; absent fields stay zero.
type Details struct {
	Bank        Bank             `json:"bank,omitempty"`
	Mode        Mode             `json:"mode,omitempty"`
	ReferenceNo string           `json:"referenceNo,omitempty"`
	AccountTail string           `json:"accountTail,omitempty"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	// DateText is the date substring as it appeared in the message
	// (e.g. "26-Dec-24"). It is never resolved to a timestamp;
	// OccurredAtMillis is always the receipt time.
	DateText string `json:"dateText,omitempty"`
}

// Bank identifies the issuing bank of a message.
type Bank string

const (
	BankHDFC    Bank = "HDFC"
	BankICICI   Bank = "ICICI"
	BankSBI     Bank = "SBI"
	BankAxis    Bank = "Axis"
	BankKotak   Bank = "Kotak"
	BankPNB     Bank = "PNB"
	BankBOB     Bank = "BOB"
	BankCanara  Bank = "Canara"
	BankIDFC    Bank = "IDFC"
	BankYes     Bank = "Yes Bank"
	BankIndian  Bank = "Indian Bank"
	BankUnknown Bank = ""
)

// Direction says whether a message reports money leaving or entering
// the account.
type Direction string

const (
	DirectionDebit   Direction = "DEBIT"
	DirectionCredit  Direction = "CREDIT"
	DirectionUnknown Direction = "UNKNOWN"
)

// Mode is the payment rail reported by the message.
type Mode string

const (
	ModeUPI      Mode = "UPI"
	ModeNEFT     Mode = "NEFT"
	ModeIMPS     Mode = "IMPS"
	ModeATM      Mode = "ATM"
	ModePOS      Mode = "POS"
	ModeCard     Mode = "CARD"
	ModeTransfer Mode = "TRANSFER"
)

// UnknownMerchant is the sentinel used when no usable payee name could be
// extracted. Merchant is never empty.
const UnknownMerchant = "Unknown"

// RejectReason says why a message did not produce a Transaction.
type RejectReason string

const (
	// RejectNotTransaction: no transaction keyword plus amount conjunction.
	RejectNotTransaction RejectReason = "not_transaction"
	// RejectNotDebit: classified as credit or unknown direction.
	RejectNotDebit RejectReason = "not_debit"
	// RejectNoAmount: no amount pattern matched at all.
	RejectNoAmount RejectReason = "no_amount"
	// RejectBadAmount: an amount pattern matched structurally but the
	// captured figure did not parse. Hard reject, never defaults to zero.
	RejectBadAmount RejectReason = "bad_amount"
)

// ParseResult is the outcome of running one message through the parser:
// either a Transaction or an explicit rejection reason, never both.
type ParseResult struct {
	Transaction *Transaction
	Reason      RejectReason
}

// Rejected reports whether the message was discarded.
func (r ParseResult) Rejected() bool {
	return r.Transaction == nil
}
