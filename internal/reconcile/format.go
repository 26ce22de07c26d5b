package reconcile

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Balances are displayed in the Indonesian locale: "." separates
// thousands, "," separates decimals.
var printer = message.NewPrinter(language.Indonesian)

// Format renders a balance for display. Decimal-capable accounts always
// show two decimal places, integer-only accounts are rounded to whole
// numbers.
func Format(kind AccountKind, value decimal.Decimal) string {
	if kind == KindDecimal {
		f, _ := value.Float64()
		return printer.Sprintf("%v", number.Decimal(f,
			number.MinFractionDigits(2),
			number.MaxFractionDigits(2),
		))
	}

	return printer.Sprintf("%v", number.Decimal(value.Round(0).IntPart()))
}
