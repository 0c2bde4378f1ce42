package parser

import (
	"regexp"
	"strings"
)

var (
	iciciOnSplit     = regexp.MustCompile(`(?i)\bon\b`)
	iciciSentenceEnd = regexp.MustCompile(`[.;]`)
)

// ICICI merchant extraction.
//
// Observed formats:
//   "...debited for Rs 560.00 on 12-Dec-24; VIJAY AQUA INDU credited. UPI:..."
//   "INR 250.00 spent ... for purchase of tickets on 22-Dec-24 on BOOKMYSHOW"
//   "...has been debited towards ELITE4 ..."
//   "...debited by Rs 200.00 on 31 Oct. Info:BIL*000001901069*test."
//
// The second form needs the "on" split trick: the trailing "on X" segment
// is a merchant when it does not start with a digit, a date when it does.
// Merchant names that themselves begin with a digit ("7Eleven") misfire
// here; the heuristic is kept as-is and isolated to this strategy so a
// real date recognizer can replace it later.
func (p *Parser) iciciMerchant(text string) string {
	if m := p.lib.MerchantCredited.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	parts := iciciOnSplit.Split(text, -1)
	if len(parts) >= 2 {
		last := strings.TrimSpace(parts[len(parts)-1])
		if last != "" && last[0] >= '0' && last[0] <= '9' {
			// trailing segment is a date, fall through
		} else if last != "" {
			return strings.TrimSpace(iciciSentenceEnd.Split(last, 2)[0])
		}
	}

	if m := p.lib.MerchantTowards.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	if m := p.lib.MerchantInfo.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	return ""
}
