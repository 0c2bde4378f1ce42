package parser

import (
	"strings"
	"unicode"

	"github.com/optimisticbyte/sms-expense-engine/internal/models"
)

// CleanMerchantName normalizes a raw payee candidate into a display name.
// Cleaning an already-clean name is a no-op. Candidates that survive as a
// bare 8-15 digit number, or shrink below 2 characters, become "Unknown".
func (p *Parser) CleanMerchantName(name string) string {
	cleaned := strings.TrimSpace(name)

	// Strip bank boilerplate prefixes ("Dear Customer,", card/account
	// headers, UPI transaction-id prefixes).
	for _, re := range p.lib.JargonPrefixes {
		cleaned = strings.TrimSpace(re.ReplaceAllString(cleaned, ""))
	}

	// Everything from the first disclaimer keyword onward is the
	// helpline/limit tail of the SMS, never part of the name.
	if loc := p.lib.TrailingKeyword.FindStringIndex(cleaned); loc != nil {
		cleaned = cleaned[:loc[0]]
	}
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimSpace(p.lib.TrailingPunct.ReplaceAllString(cleaned, ""))
	cleaned = p.lib.DisallowedChars.ReplaceAllString(cleaned, "")

	words := strings.Fields(cleaned)
	for i, w := range words {
		// Short all-caps words are acronyms (SBI, ATM) and keep their
		// casing; everything else is title-cased.
		if len(w) <= 3 && isAllUpper(w) {
			continue
		}
		words[i] = titleCase(strings.ToLower(w))
	}
	final := strings.Join(words, " ")

	if p.lib.PureNumeric.MatchString(final) {
		return models.UnknownMerchant
	}
	if len(final) < 2 {
		return models.UnknownMerchant
	}
	if len(final) > 40 {
		final = strings.TrimSpace(final[:40])
	}
	return final
}

func isAllUpper(s string) bool {
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
