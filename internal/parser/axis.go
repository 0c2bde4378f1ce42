package parser

// Axis merchant extraction.
//
// Observed format:
//   "...debited ... Transaction Info: FLIPKART PAYMENTS ..."
func (p *Parser) axisMerchant(text string) string {
	if m := p.lib.MerchantInfo.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
