package parser

import "strings"

// HDFC merchant extraction.
//
// Observed formats:
//   "Rs.5000 debited via NetBanking on account of TATA POWER transaction ..."
//   "Spent Rs.17072 On HDFC Bank Card 0511 At 84 ZIMSON SHOPPING ARCADE On 2025-10-04"
//   "Sent Rs.2.00 From HDFC Bank A/C *1234 To Mr Mugesh On 26/12"
//
// Tried in order: NetBanking "on account of", card "at", transfer "to".
func (p *Parser) hdfcMerchant(text string) string {
	if strings.Contains(strings.ToLower(text), "netbanking") {
		if m := p.lib.HDFCAccountOf.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}

	if m := p.lib.HDFCAt.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	if m := p.lib.PayeeTo.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	return ""
}
