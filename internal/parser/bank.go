package parser

import (
	"strings"

	"github.com/optimisticbyte/sms-expense-engine/internal/models"
)

// IdentifyBank maps a sender id to a bank via case-insensitive substring
// match against the sender table. Real sender ids carry gateway prefixes
// and suffixes ("AD-HDFCBK-S"), so containment is deliberate.
func (p *Parser) IdentifyBank(sender string) models.Bank {
	upper := strings.ToUpper(sender)
	for _, bs := range p.lib.Senders {
		for _, id := range bs.IDs {
			if strings.Contains(upper, id) {
				return bs.Bank
			}
		}
	}
	return models.BankUnknown
}

// IdentifyBankFromContent finds a bank named inside the message body.
// Used when the sender id is a shared gateway number, and for the
// multi-bank spoofing retry during merchant extraction.
func (p *Parser) IdentifyBankFromContent(text string) models.Bank {
	lower := strings.ToLower(text)
	for _, bm := range p.lib.Mentions {
		for _, needle := range bm.Needles {
			if strings.Contains(lower, needle) {
				return bm.Bank
			}
		}
	}
	return models.BankUnknown
}

// identifyBankCombined prefers the sender id and falls back to the body.
func (p *Parser) identifyBankCombined(sender, text string) models.Bank {
	if b := p.IdentifyBank(sender); b != models.BankUnknown {
		return b
	}
	return p.IdentifyBankFromContent(text)
}
