package budget

import (
	"github.com/shopspring/decimal"
)

// WeeklyBudget computes the effective budget of one week by distributing
// the monthly budget over all weeks and cascading every earlier week's
// surplus or deficit into the weeks after it.
//
// The monthly budget is spread per day over the budget windows of all
// weeks. Each completed week that overspent its adjusted budget charges a
// penalty to every later week, spread evenly across the remaining days of
// the month; a week that underspent hands out a bonus the same way. The
// computation walks the weeks in order so that the adjustment of week n
// already reflects the carry-over of weeks 1..n-1.
//
// Budgets are sign-insensitive, the magnitude of monthlyBudget is
// distributed. The result is never negative.
func WeeklyBudget(monthlyBudget decimal.Decimal, weeks []WeekRange, currentWeek int, transactions []Transaction, category string) decimal.Decimal {
	if monthlyBudget.IsZero() || len(weeks) == 0 {
		return decimal.Zero
	}

	amount := monthlyBudget.Abs()

	totalDays := 0
	for _, week := range weeks {
		totalDays += week.BudgetDays()
	}
	if totalDays == 0 {
		return decimal.Zero
	}

	perDay := amount.Div(decimal.NewFromInt(int64(totalDays)))

	original := make([]decimal.Decimal, len(weeks))
	for i, week := range weeks {
		original[i] = perDay.Mul(decimal.NewFromInt(int64(week.BudgetDays())))
	}

	if currentWeek < 1 || currentWeek > len(weeks) {
		return decimal.Zero
	}

	// Without spend data there is nothing to cascade.
	if len(transactions) == 0 {
		return original[currentWeek-1]
	}

	// Nothing precedes week 1.
	if currentWeek == 1 {
		return original[0]
	}

	// Walk all weeks up to and including the current one, maintaining the
	// over- and under-budget ledgers. Each week's adjusted budget reflects
	// the carry-over of every week before it.
	over := make([]decimal.Decimal, 0, currentWeek)
	under := make([]decimal.Decimal, 0, currentWeek)

	for i := range currentWeek {
		penalty, bonus := carryover(weeks, over, under, i, i)
		adjusted := clampZero(original[i].Sub(penalty).Add(bonus))

		spent := WeekSpending(transactions, category, weeks[i])
		over = append(over, clampZero(spent.Sub(adjusted)))
		under = append(under, clampZero(adjusted.Sub(spent)))
	}

	// The current week's own carry-over spreads the ledgers of all
	// completed weeks before it.
	penalty, bonus := carryover(weeks, over, under, currentWeek-1, currentWeek-1)

	return clampZero(original[currentWeek-1].Sub(penalty).Add(bonus))
}

// carryover computes the penalty and bonus the target week absorbs from
// the first count ledger entries. A ledger entry of week j is spread
// evenly over the budget days of all weeks after j; the target week is
// charged its day-share of each.
func carryover(weeks []WeekRange, over, under []decimal.Decimal, count, target int) (penalty, bonus decimal.Decimal) {
	penalty = decimal.Zero
	bonus = decimal.Zero

	targetDays := decimal.NewFromInt(int64(weeks[target].BudgetDays()))

	for j := 0; j < count && j < len(over); j++ {
		remaining := budgetDaysAfter(weeks, j)
		if remaining == 0 {
			// No days left to spread over, the ledger entry is dropped
			// rather than dividing by zero.
			continue
		}

		remainingDays := decimal.NewFromInt(int64(remaining))

		if over[j].IsPositive() {
			penalty = penalty.Add(over[j].Div(remainingDays).Mul(targetDays))
		}
		if under[j].IsPositive() {
			bonus = bonus.Add(under[j].Div(remainingDays).Mul(targetDays))
		}
	}

	return penalty, bonus
}

// budgetDaysAfter sums the budget day-counts of all weeks strictly after
// index j.
func budgetDaysAfter(weeks []WeekRange, j int) int {
	days := 0
	for _, week := range weeks[j+1:] {
		days += week.BudgetDays()
	}

	return days
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}

	return d
}
