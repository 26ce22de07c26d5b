package budget

import (
	"github.com/shopspring/decimal"
)

// Progress status of an allocation, derived from the spent percentage.
const (
	StatusOK      = "ok"
	StatusWarning = "warning"
	StatusOver    = "over"
)

// warningThreshold is the spent percentage at which an allocation is
// flagged before it is actually overspent.
var warningThreshold = decimal.NewFromInt(80)

// Allocation is the effective budget of one category for one week. It is
// derived on every request and never persisted.
type Allocation struct {
	Category       string          `json:"category" example:"GROCERIES"`        // Category key
	Week           int             `json:"week" example:"2"`                    // 1-based week number
	MonthlyBudget  decimal.Decimal `json:"monthlyBudget" example:"310"`         // Magnitude of the monthly budget
	OriginalBudget decimal.Decimal `json:"originalBudget" example:"70"`         // Day-share of the monthly budget before carry-over
	AdjustedBudget decimal.Decimal `json:"adjustedBudget" example:"55.71"`      // Effective budget after carry-over
	Spending       decimal.Decimal `json:"spending" example:"42.50"`            // Spending within the week
	Remaining      decimal.Decimal `json:"remaining" example:"13.21"`           // AdjustedBudget - Spending
	Percentage     decimal.Decimal `json:"percentage" example:"76.3"`           // Spending as a percentage of AdjustedBudget
	Status         string          `json:"status" example:"ok" enums:"ok,warning,over"` // Progress classification
}

// Allocate computes the WeeklyAllocation of one category for the given
// week.
func Allocate(monthlyBudget decimal.Decimal, weeks []WeekRange, currentWeek int, transactions []Transaction, category string) Allocation {
	allocation := Allocation{
		Category:       category,
		Week:           currentWeek,
		MonthlyBudget:  monthlyBudget.Abs(),
		OriginalBudget: originalWeekBudget(monthlyBudget, weeks, currentWeek),
		AdjustedBudget: WeeklyBudget(monthlyBudget, weeks, currentWeek, transactions, category),
		Spending:       decimal.Zero,
	}

	if currentWeek >= 1 && currentWeek <= len(weeks) {
		allocation.Spending = WeekSpending(transactions, category, weeks[currentWeek-1])
	}

	allocation.Remaining = allocation.AdjustedBudget.Sub(allocation.Spending)
	allocation.Percentage = percentage(allocation.Spending, allocation.AdjustedBudget)
	allocation.Status = status(allocation.Percentage)

	return allocation
}

// originalWeekBudget returns the unadjusted day-share of the monthly
// budget for the week, without any carry-over. It equals WeeklyBudget for
// an empty transaction set.
func originalWeekBudget(monthlyBudget decimal.Decimal, weeks []WeekRange, currentWeek int) decimal.Decimal {
	return WeeklyBudget(monthlyBudget, weeks, currentWeek, nil, "")
}

// Totals sums a list of allocations into overall budget, spending and
// remaining values with an overall percentage and status.
type Totals struct {
	Budget     decimal.Decimal `json:"budget" example:"350"`      // Sum of all adjusted budgets
	Spending   decimal.Decimal `json:"spending" example:"120.34"` // Sum of all spending
	Remaining  decimal.Decimal `json:"remaining" example:"229.66"`
	Percentage decimal.Decimal `json:"percentage" example:"34.4"`
	Status     string          `json:"status" example:"ok" enums:"ok,warning,over"`
}

// Sum computes the Totals over a list of allocations.
func Sum(allocations []Allocation) Totals {
	totals := Totals{
		Budget:   decimal.Zero,
		Spending: decimal.Zero,
	}

	for _, a := range allocations {
		totals.Budget = totals.Budget.Add(a.AdjustedBudget.Abs())
		totals.Spending = totals.Spending.Add(a.Spending)
	}

	totals.Remaining = totals.Budget.Sub(totals.Spending)
	totals.Percentage = percentage(totals.Spending, totals.Budget)
	totals.Status = status(totals.Percentage)

	return totals
}

// percentage returns spent as a percentage of budget, zero when there is
// no budget to spend against.
func percentage(spent, budget decimal.Decimal) decimal.Decimal {
	if !budget.IsPositive() {
		return decimal.Zero
	}

	return spent.Div(budget).Mul(decimal.NewFromInt(100))
}

func status(percentage decimal.Decimal) string {
	switch {
	case percentage.GreaterThan(decimal.NewFromInt(100)):
		return StatusOver
	case percentage.GreaterThanOrEqual(warningThreshold):
		return StatusWarning
	default:
		return StatusOK
	}
}
