package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount in the given currency, e.g. "$4.50" in USD.
// Unknown currencies fall back to the plain decimal followed by the code.
func FormatMoney(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		if currency == "" {
			return amount.String()
		}
		return amount.String() + " " + currency
	}
	minor := amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}
