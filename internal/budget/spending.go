package budget

import (
	"strings"

	"github.com/shopspring/decimal"
)

// WeekSpending sums the spending for a category within a week's
// transaction window.
//
// A transaction counts when its type is TypeSpending, its category matches
// case-insensitively and its normalized date falls into
// [week.StartDate, week.EndDate]. The contribution is always the absolute
// amount: the stored sign follows the ledger convention, spending itself
// is non-negative.
//
// Invalid input never fails: transactions with unparseable dates are
// skipped and an empty or invalid week yields zero.
func WeekSpending(transactions []Transaction, category string, week WeekRange) decimal.Decimal {
	sum := decimal.Zero

	if week.StartDate.IsZero() || week.EndDate.IsZero() {
		return sum
	}

	for _, t := range transactions {
		if t.Type != TypeSpending {
			continue
		}
		if !strings.EqualFold(t.Category, category) {
			continue
		}

		date, err := ParseDate(t.Date)
		if err != nil {
			continue
		}
		if !week.Contains(date) {
			continue
		}

		sum = sum.Add(t.Amount.Abs())
	}

	return sum
}
