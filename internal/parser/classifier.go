package parser

import (
	"strings"

	"github.com/optimisticbyte/sms-expense-engine/internal/models"
)

// IsTransactionMessage reports whether the text looks like a transaction
// notification: it must carry both a transaction keyword and an amount.
// Either alone is rejected — a balance-inquiry SMS has an amount but no
// keyword, and a bare "payment successful" has a keyword but no figure.
func (p *Parser) IsTransactionMessage(text string) bool {
	if !p.lib.TransactionKeyword.MatchString(text) {
		return false
	}
	return p.lib.Amount.MatchString(text) ||
		p.lib.AmountByOf.MatchString(text) ||
		p.lib.AmountPOS.MatchString(text)
}

// ClassifyDirection decides whether a message reports a debit or a credit.
// Debit wording is checked first: P2P debit confirmations often say the
// beneficiary was "credited", and credit-card product names contain
// "credit" without any credit event.
func (p *Parser) ClassifyDirection(text string) models.Direction {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "debited") ||
		strings.Contains(lower, "paid") ||
		strings.Contains(lower, "spent") ||
		strings.Contains(lower, "withdrawn") ||
		strings.Contains(lower, "sent") ||
		(strings.Contains(lower, "debit") && !strings.Contains(lower, "credit card")):
		return models.DirectionDebit
	case strings.Contains(lower, "credited") ||
		strings.Contains(lower, "received") ||
		strings.Contains(lower, "credit"):
		return models.DirectionCredit
	}
	return models.DirectionUnknown
}

// IdentifyMode returns the payment rail named by the message, or "" when
// none is. When several rails are mentioned the library's priority order
// decides (UPI first, TRANSFER last).
func (p *Parser) IdentifyMode(text string) models.Mode {
	for _, mp := range p.lib.Modes {
		if mp.Re.MatchString(text) {
			return mp.Mode
		}
	}
	return ""
}
