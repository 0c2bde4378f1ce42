package parser

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/optimisticbyte/sms-expense-engine/internal/models"
)

// extractDetails gathers the informational fields a message may carry.
// All of them are best-effort; a miss leaves the field zero.
func (p *Parser) extractDetails(sender, text string) models.Details {
	d := models.Details{
		Bank: p.identifyBankCombined(sender, text),
		Mode: p.IdentifyMode(text),
	}

	d.ReferenceNo = p.referenceNumber(text, d.Mode)

	if m := p.lib.Account.FindStringSubmatch(text); m != nil {
		d.AccountTail = m[1]
	}

	if m := p.lib.Balance.FindStringSubmatch(text); m != nil {
		if bal, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", "")); err == nil {
			d.Balance = &bal
		}
	}

	d.DateText = p.dateText(text)

	return d
}

// referenceNumber picks the reference format matching the payment rail:
// UPI ref numbers, NEFT UTRs, IMPS RRNs. Other rails carry no reference
// the parser recognizes.
func (p *Parser) referenceNumber(text string, mode models.Mode) string {
	var m []string
	switch mode {
	case models.ModeUPI:
		m = p.lib.UPIRef.FindStringSubmatch(text)
	case models.ModeNEFT:
		m = p.lib.UTR.FindStringSubmatch(text)
	case models.ModeIMPS:
		m = p.lib.RRN.FindStringSubmatch(text)
	default:
		return ""
	}
	if m == nil {
		return ""
	}
	return m[1]
}

// dateText returns the date substring following "on", verbatim. It is
// informational only and never resolved to a timestamp.
func (p *Parser) dateText(text string) string {
	if m := p.lib.DateDMY.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := p.lib.DateSpace.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := p.lib.DateSlash.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
