package response

import "github.com/shopspring/decimal"

// money renders amounts with two decimals, e.g. "4.50".
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
