package parser

import (
	"regexp"
	"strings"

	"github.com/optimisticbyte/sms-expense-engine/internal/models"
	"github.com/optimisticbyte/sms-expense-engine/internal/patterns"
)

// genericMerchant is the bank-agnostic fallback chain: "for X", "to X",
// "at X", "towards X", "Info: X", first usable match wins. Purely numeric
// candidates are skipped everywhere — a fraud-helpline "to block, call
// 18001234567" must never surface as a payee.
func (p *Parser) genericMerchant(text string) string {
	chain := []*regexp.Regexp{
		p.lib.PayeeFor,
		p.lib.PayeeTo,
		p.lib.MerchantAt,
		p.lib.MerchantTowards,
		p.lib.MerchantInfo,
	}

	for _, re := range chain {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			cand := strings.TrimSpace(m[1])
			if cand == "" || p.lib.PureNumeric.MatchString(cand) {
				continue
			}
			if re == p.lib.PayeeFor && excludedForCapture(cand) {
				continue
			}
			return cand
		}
	}

	return models.UnknownMerchant
}

// excludedForCapture drops "for X" captures that are really currency
// markers or boilerplate ("for INR 500", "for POS transaction", "for
// dispute call ..."). RE2 has no negative lookahead, so the exclusion the
// pattern cannot express lives here.
func excludedForCapture(cand string) bool {
	for _, pfx := range patterns.ForExcludedPrefixes {
		if len(cand) >= len(pfx) && strings.EqualFold(cand[:len(pfx)], pfx) {
			return true
		}
	}
	return false
}
