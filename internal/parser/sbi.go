package parser

// SBI merchant extraction.
//
// Observed formats:
//   "...Amount (INR) 985.00 ... Terminal Owner Name State Project Monitori."
//   "Dear UPI user A/C X8510 debited by 75.0 on date 21Aug24 trf to SARAVANAKUMAR V Refno 460921..."
//
// Tried in order: POS terminal owner, UPI "trf to".
func (p *Parser) sbiMerchant(text string) string {
	if m := p.lib.TerminalOwner.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	if m := p.lib.TrfTo.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	return ""
}
