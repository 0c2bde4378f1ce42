package parser

import "strings"

// Indian Bank merchant extraction.
//
// Observed format:
//   "Rs. 50.00 debited ... to SRI NANDTHI. Not you? Forward this SMS to 9220..."
//
// Indian Bank messages embed helpline and reference numbers in "to"
// phrases, so every "to X" match is considered and purely numeric
// candidates (8-15 digits) are skipped.
func (p *Parser) indianBankMerchant(text string) string {
	for _, m := range p.lib.PayeeTo.FindAllStringSubmatch(text, -1) {
		cand := strings.TrimSpace(m[1])
		if cand != "" && !p.lib.PureNumeric.MatchString(cand) {
			return cand
		}
	}
	return ""
}
