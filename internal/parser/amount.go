package parser

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	errNoAmount  = errors.New("no amount pattern matched")
	errBadAmount = errors.New("amount matched but did not parse")
)

// extractAmount pulls the monetary value out of the message, trying the
// POS form, then the general Rs/INR form, then the bare "by/of" form.
// The first structural match is final: if its capture does not parse as a
// number the message is rejected outright rather than falling through to
// a lower-priority pattern, since a matched-but-unparseable amount means
// the pattern and the data disagree and must not silently default.
func (p *Parser) extractAmount(text string) (decimal.Decimal, error) {
	for _, re := range []*regexp.Regexp{p.lib.AmountPOS, p.lib.Amount, p.lib.AmountByOf} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		d, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			return decimal.Zero, errBadAmount
		}
		return d, nil
	}
	return decimal.Zero, errNoAmount
}
