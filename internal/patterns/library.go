package patterns

import (
	"regexp"

	"github.com/optimisticbyte/sms-expense-engine/internal/models"
)

// Library is the full set of compiled text-matching rules shared by every
// parsing stage. It is built once and treated as immutable process-wide
// configuration; concurrent use needs no synchronization.
//
// Every pattern is evaluated against the whole message and none of them
// mutate state, so a single Library can back any number of parsers.
type Library struct {
	// TransactionKeyword matches words that indicate a balance change
	// (debited, spent, ...) plus the "amount (inr)" marker phrase used
	// by POS confirmations.
	TransactionKeyword *regexp.Regexp

	// Amount patterns, in the fixed priority order they are tried:
	// AmountPOS ("Amount (INR) 985.00"), Amount ("Rs. 500.00" / "INR 500"),
	// AmountByOf ("debited by 500.00").
	AmountPOS  *regexp.Regexp
	Amount     *regexp.Regexp
	AmountByOf *regexp.Regexp

	// Date substrings following "on": 22-Dec-24, 31 Oct, 21/08/24.
	DateDMY   *regexp.Regexp
	DateSpace *regexp.Regexp
	DateSlash *regexp.Regexp

	// Payee / merchant phrases.
	PayeeTo          *regexp.Regexp // "to X" / "paid to X"
	PayeeFor         *regexp.Regexp // "for X"; excluded captures filtered in code, RE2 has no lookahead
	MerchantAt       *regexp.Regexp // "at X" (POS)
	MerchantTowards  *regexp.Regexp // "towards X" (netbanking)
	MerchantInfo     *regexp.Regexp // "Info: X" (ICICI/Axis)
	MerchantCredited *regexp.Regexp // "X credited" beneficiary-before-verb form
	TerminalOwner    *regexp.Regexp // "Terminal Owner Name X" (SBI POS)
	TrfTo            *regexp.Regexp // "trf to X" (SBI UPI)

	// HDFC-specific phrases.
	HDFCAccountOf *regexp.Regexp // NetBanking "on account of X"
	HDFCAt        *regexp.Regexp // card "At MERCHANT On DATE", wider charset than MerchantAt

	// Modes holds the payment-rail matchers in priority order; the first
	// hit wins when a message names only one rail.
	Modes []ModePattern

	// UPIID matches localpart@domain shaped tokens.
	UPIID *regexp.Regexp

	// Mode-specific reference numbers.
	UPIRef *regexp.Regexp // 10-12 digits
	UTR    *regexp.Regexp // NEFT, 16 alphanumeric
	RRN    *regexp.Regexp // IMPS, 12 digits

	Account *regexp.Regexp // masked account tails: A/c XX1234
	Balance *regexp.Regexp // available-balance figures

	// PureNumeric flags 8-15 digit strings: phone or reference numbers
	// masquerading as payee names.
	PureNumeric *regexp.Regexp

	// Merchant name cleaning rules.
	JargonPrefixes  []*regexp.Regexp
	TrailingKeyword *regexp.Regexp // start of the disclaimer/helpline tail
	TrailingPunct   *regexp.Regexp
	DisallowedChars *regexp.Regexp

	// Senders maps banks to known sender-id substrings; table order is
	// priority order and aliases must not overlap across banks.
	Senders []BankSenders

	// Mentions maps banks to name substrings found inside message bodies,
	// for when the sender id is a shared gateway.
	Mentions []BankMention
}

// ModePattern pairs a payment rail with its matcher.
type ModePattern struct {
	Mode models.Mode
	Re   *regexp.Regexp
}

// BankSenders lists the sender-id substrings a bank is known to use.
type BankSenders struct {
	Bank models.Bank
	IDs  []string
}

// BankMention lists lowercase substrings that name a bank inside a body.
type BankMention struct {
	Bank    models.Bank
	Needles []string
}

// ForExcludedPrefixes are captures the "for X" pattern must discard: the
// phrase continues with a currency marker or boilerplate, not a payee.
var ForExcludedPrefixes = []string{"INR", "Rs", "POS transaction", "dispute"}

var std = New()

// Default returns the shared Library instance.
func Default() *Library { return std }

// New compiles a fresh Library. Most callers want Default.
func New() *Library {
	return &Library{
		TransactionKeyword: regexp.MustCompile(`(?i)(?:\b(?:debited|spent|withdrawn|paid|payment|transfer|sent|purchase|owner name)\b|amount \(inr\))`),

		AmountPOS:  regexp.MustCompile(`(?i)Amount\s*\((?:INR|Rs\.?)\)?\s*([\d,]+(?:\.\d{1,2})?)`),
		Amount:     regexp.MustCompile(`(?i)(?:Rs\.?|INR)\s*([\d,]+(?:\.\d{1,2})?)`),
		AmountByOf: regexp.MustCompile(`(?i)(?:by|of)\s+(?:Rs\.?|INR)?\s*([\d,]+(?:\.\d{1,2})?)`),

		DateDMY:   regexp.MustCompile(`(?i)on\s+(\d{1,2}-[A-Za-z]{3}(?:-\d{2,4})?)`),
		DateSpace: regexp.MustCompile(`(?i)on\s+(\d{1,2}\s+[A-Za-z]{3}(?:\s+\d{2,4})?)`),
		DateSlash: regexp.MustCompile(`(?i)on\s+(\d{1,2}/\d{1,2}/\d{2,4})`),

		PayeeTo:          regexp.MustCompile(`(?i)\b(?:to|paid to)\s+([A-Za-z0-9][A-Za-z0-9\s&.'_@]{2,30}?)(?:\s+on|\s+at|\s+for|\.|\s{2,}|$)`),
		PayeeFor:         regexp.MustCompile(`(?i)\bfor\s+([A-Za-z0-9][A-Za-z0-9\s&.'_@]{2,30}?)(?:\s+on|\s+at|\.|\s{2,}|$)`),
		MerchantAt:       regexp.MustCompile(`(?i)\bat\s*:?\s*([A-Za-z0-9][A-Za-z0-9\s&.'_]{2,30}?)(?:\s+on|\.|\s{2,}|$)`),
		MerchantTowards:  regexp.MustCompile(`(?i)\btowards\s+([A-Za-z0-9][A-Za-z0-9\s&.'_]{2,30}?)(?:\s+on|\s+at|\.|\s{2,}|$)`),
		MerchantInfo:     regexp.MustCompile(`(?i)Info\s*:?\s*([A-Za-z0-9][A-Za-z0-9\s&.'*_-]{2,30}?)(?:\s+on|\s+at|\.|\s{2,}|$)`),
		MerchantCredited: regexp.MustCompile(`(?i)(?:;|\.|on)\s*([A-Za-z0-9][A-Za-z0-9\s&.'_]{2,30}?)\s+credited`),
		TerminalOwner:    regexp.MustCompile(`(?i)Terminal Owner Name\s+([A-Za-z0-9][A-Za-z0-9\s&.',-]{2,50}?)[.;]`),
		TrfTo:            regexp.MustCompile(`(?i)trf\s+to\s+([A-Za-z0-9][A-Za-z0-9\s&.'@-]{2,30}?)(?:\s+Refno|\s+on|\s+at|\.|\s{2,}|$)`),

		HDFCAccountOf: regexp.MustCompile(`(?i)on account of\s+([A-Za-z0-9\s&.'-]{3,50})(?:\s+transaction|\s+using|\.)`),
		HDFCAt:        regexp.MustCompile(`(?i)\bat\s*:?\s*([A-Za-z0-9][A-Za-z0-9\s&.',-]{2,40}?)(?:\s+on|\.|\s{2,}|$)`),

		Modes: []ModePattern{
			{models.ModeUPI, regexp.MustCompile(`(?i)\bUPI\b`)},
			{models.ModeNEFT, regexp.MustCompile(`(?i)\bNEFT\b`)},
			{models.ModeIMPS, regexp.MustCompile(`(?i)\bIMPS\b`)},
			{models.ModeATM, regexp.MustCompile(`(?i)\bATM\b`)},
			{models.ModePOS, regexp.MustCompile(`(?i)\bPOS\b`)},
			{models.ModeCard, regexp.MustCompile(`(?i)\b(?:Card|Debit Card|Credit Card)\b`)},
			{models.ModeTransfer, regexp.MustCompile(`(?i)\b(?:transfer|fund transfer)\b`)},
		},

		UPIID: regexp.MustCompile(`\b([a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+)\b`),

		UPIRef: regexp.MustCompile(`(?i)(?:UPI Ref|Txn ID|Ref No|Ref|UPI:)\s*:?\s*(\d{10,12})`),
		UTR:    regexp.MustCompile(`(?i)(?:UTR|NEFT Ref)\s*:?\s*([A-Za-z0-9]{16})`),
		RRN:    regexp.MustCompile(`(?i)(?:RRN|IMPS Ref No)\s*:?\s*(\d{12})`),

		Account: regexp.MustCompile(`(?i)(?:A/c|A/C|Account)\s+(?:No\.?)?\s*[Xx*]*(\d{4})`),
		Balance: regexp.MustCompile(`(?i)(?:Avail\.?\s*Bal|Available Balance|Total Available balance|Available Credit Limit)\s*:?\s*(?:Rs\.?|INR)?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?)`),

		PureNumeric: regexp.MustCompile(`^\d{8,15}$`),

		JargonPrefixes: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^UPI-?\d+-`),
			regexp.MustCompile(`(?i)^ICICI Bank (Credit )?Card XX\d+`),
			regexp.MustCompile(`(?i)^ICICI Bank Account XX\d+`),
			regexp.MustCompile(`(?i)^HDFC Bank (Card|A/C) [*\d]+`),
			regexp.MustCompile(`(?i)^A/c [*\dX]+`),
			regexp.MustCompile(`(?i)^Terminal Owner Name`),
			regexp.MustCompile(`(?i)^Transaction Info:`),
			regexp.MustCompile(`(?i)^Dear Customer,?`),
			regexp.MustCompile(`(?i)^INR\s+[\d,.]+\s+spent using`),
		},
		TrailingKeyword: regexp.MustCompile(`(?i)\b(on|at|for|ref|avail|avl|not you|not u|call|limit|to block|transaction|using|other services|if not)\b`),
		TrailingPunct:   regexp.MustCompile(`[.;,:]$`),
		DisallowedChars: regexp.MustCompile(`[^a-zA-Z0-9\s&'-]`),

		Senders: []BankSenders{
			{models.BankHDFC, []string{"HDFCBK", "HDFC", "HDFCBN", "HDFCBANK", "HDFC BANK", "HDFCPR"}},
			{models.BankICICI, []string{"ICICIB", "ICICI", "ICICIBK", "ICICI BANK", "ICICIP"}},
			{models.BankSBI, []string{"SBIINB", "SBIIN", "SBI", "SBIBANK", "SBIET", "SBIPS"}},
			{models.BankAxis, []string{"AXISBK", "AXIS", "AXISMB", "AXIS BANK", "AXISBT"}},
			{models.BankKotak, []string{"KOTAKM", "KOTAK"}},
			{models.BankPNB, []string{"PNBSMS", "PNB"}},
			{models.BankBOB, []string{"BOBTXN", "BOB"}},
			{models.BankCanara, []string{"CANBNK", "CANARA"}},
			{models.BankIDFC, []string{"IDFCFB", "IDFC"}},
			{models.BankYes, []string{"YESBNK", "YESBANK"}},
			{models.BankIndian, []string{"INDIAB", "INDIAN", "INDIBK"}},
		},

		Mentions: []BankMention{
			{models.BankHDFC, []string{"hdfc"}},
			{models.BankICICI, []string{"icici"}},
			{models.BankSBI, []string{"sbi", "state bank", "statbk"}},
			{models.BankAxis, []string{"axis"}},
			{models.BankIndian, []string{"indian bank", "indibk"}},
		},
	}
}
