package parser

import (
	"strings"

	"github.com/optimisticbyte/sms-expense-engine/internal/models"
)

// ExtractMerchant resolves a display name for the payee. It never fails;
// when nothing usable can be found it returns the "Unknown" sentinel.
//
// Resolution order:
//  1. UPI id local part, when the message is a UPI transaction.
//  2. The identified bank's strategy.
//  3. The same strategies for a different bank named in the body — relayed
//     multi-party confirmations (a gateway texting from one bank's sender
//     id about another bank's transaction) fail merchant extraction if
//     only the sender id is trusted.
//  4. The generic fallback chain.
func (p *Parser) ExtractMerchant(sender, text string) string {
	if p.IdentifyMode(text) == models.ModeUPI {
		if id := p.extractUPIID(text); id != "" {
			local := id[:strings.Index(id, "@")]
			if len(local) > 2 {
				return p.CleanMerchantName(local)
			}
		}
	}

	bank := p.identifyBankCombined(sender, text)
	if raw := p.bankMerchant(bank, text); raw != "" {
		if cleaned := p.CleanMerchantName(raw); cleaned != models.UnknownMerchant {
			return cleaned
		}
	}

	if bank != models.BankUnknown {
		// A known bank whose strategies all missed is worth recording:
		// it is how new message formats get found.
		p.log.Debug().Str("bank", string(bank)).Str("sender", sender).
			Msg("bank merchant strategies missed, falling back")
	}

	if mention := p.IdentifyBankFromContent(text); mention != models.BankUnknown && mention != bank {
		if raw := p.bankMerchant(mention, text); raw != "" {
			if cleaned := p.CleanMerchantName(raw); cleaned != models.UnknownMerchant {
				return cleaned
			}
		}
	}

	return p.CleanMerchantName(p.genericMerchant(text))
}

// bankMerchant dispatches to the strategy for banks that have one.
// Banks in the sender table without a dedicated strategy fall through
// to the generic chain.
func (p *Parser) bankMerchant(bank models.Bank, text string) string {
	switch bank {
	case models.BankHDFC:
		return p.hdfcMerchant(text)
	case models.BankICICI:
		return p.iciciMerchant(text)
	case models.BankSBI:
		return p.sbiMerchant(text)
	case models.BankAxis:
		return p.axisMerchant(text)
	case models.BankIndian:
		return p.indianBankMerchant(text)
	default:
		return ""
	}
}

// extractUPIID returns the first localpart@domain token, or "".
func (p *Parser) extractUPIID(text string) string {
	if m := p.lib.UPIID.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
