// Package budget implements the weekly budget computations: partitioning a
// month into 4 to 6 budgeting weeks, aggregating spending per week and
// distributing a monthly budget across the weeks with carry-over of
// surpluses and deficits.
//
// All functions are pure. They hold no state between calls and always
// return identical results for identical inputs.
package budget

import (
	"errors"
	"fmt"
	"time"

	"github.com/saku-app/backend/internal/types"
)

// Budgeting UI assumes between 4 and 6 weeks for every month, regardless
// of the true calendar week count.
const (
	MinWeeks = 4
	MaxWeeks = 6
)

var ErrWeekOutOfRange = errors.New("the week number is out of range for the month")

// WeekRange describes one budgeting week of a month.
//
// StartDate and EndDate delimit the transaction matching window. For the
// first week of a month, StartDate reaches back to the first day of the
// previous month, and for the last week, EndDate extends to the last day
// of the next month, so that transactions posted around the month
// boundaries are still captured.
//
// BudgetStartDate and BudgetEndDate delimit the day-counting window used
// to distribute the monthly budget. These never leave the month: the
// budget windows of all weeks of a month partition its days exactly.
type WeekRange struct {
	Week            int         `json:"week" example:"2"`                                 // 1-based week number within the month
	Month           types.Month `json:"month" example:"2026-01-01T00:00:00Z"`             // The month the week belongs to
	StartDate       time.Time   `json:"startDate" example:"2026-01-05T00:00:00Z"`         // Start of the transaction matching window
	EndDate         time.Time   `json:"endDate" example:"2026-01-11T23:59:59.999Z"`       // End of the transaction matching window
	BudgetStartDate time.Time   `json:"budgetStartDate" example:"2026-01-05T00:00:00Z"`   // Start of the day-counting window
	BudgetEndDate   time.Time   `json:"budgetEndDate" example:"2026-01-11T23:59:59.999Z"` // End of the day-counting window
}

// BudgetDays returns the number of days in the week's budget window.
// Invalid windows count as zero days so that a broken week never
// contributes to budget distribution.
func (w WeekRange) BudgetDays() int {
	if w.BudgetStartDate.IsZero() || w.BudgetEndDate.IsZero() || w.BudgetEndDate.Before(w.BudgetStartDate) {
		return 0
	}

	return int(w.BudgetEndDate.Sub(w.BudgetStartDate)/(24*time.Hour)) + 1
}

// Contains reports whether t falls into the transaction matching window.
// Both ends are inclusive since EndDate carries an end-of-day timestamp.
func (w WeekRange) Contains(t time.Time) bool {
	return !t.Before(w.StartDate) && !t.After(w.EndDate)
}

// WeeksInMonth returns the number of budgeting weeks the month is divided
// into. The first week runs from the first day of the month to the first
// Sunday, every following week is a Monday to Sunday block. The result is
// clamped to [MinWeeks, MaxWeeks].
func WeeksInMonth(month types.Month) int {
	first := month.FirstDay()
	firstMonday := firstMondayOf(month)

	weeks := 0
	if firstMonday.After(first) {
		// Leading partial week before the first Monday
		weeks++
	}

	remaining := month.Days() - firstMonday.Day() + 1
	weeks += (remaining + 6) / 7

	return min(max(weeks, MinWeeks), MaxWeeks)
}

// WeekInfo returns the WeekRange for a specific week of a month.
// The week number is 1-based and must not exceed WeeksInMonth.
func WeekInfo(month types.Month, week int) (WeekRange, error) {
	weeks := WeeksInMonth(month)
	if week < 1 || week > weeks {
		return WeekRange{}, fmt.Errorf("%w: week %d of %s has %d weeks", ErrWeekOutOfRange, week, month, weeks)
	}

	first := month.FirstDay()
	last := month.LastDay()

	if week == 1 {
		// The budget window is the tight window from the first day of the
		// month to the first Sunday. The transaction window additionally
		// captures everything since the start of the previous month.
		firstSunday := firstSundayOf(month)

		return WeekRange{
			Week:            1,
			Month:           month,
			StartDate:       month.AddDate(0, -1).FirstDay(),
			EndDate:         endOfDay(firstSunday),
			BudgetStartDate: first,
			BudgetEndDate:   endOfDay(firstSunday),
		}, nil
	}

	// Monday to Sunday blocks, (week - 2) blocks after the Monday that
	// follows the first week.
	start := firstSundayOf(month).AddDate(0, 0, 1+(week-2)*7)
	budgetEnd := start.AddDate(0, 0, 6)
	if budgetEnd.After(last) {
		budgetEnd = last
	}

	end := budgetEnd
	if week == weeks {
		// The last week widens its transaction window to the end of the
		// next month to catch transactions posted after month-end.
		end = month.AddDate(0, 1).LastDay()
	}

	return WeekRange{
		Week:            week,
		Month:           month,
		StartDate:       start,
		EndDate:         endOfDay(end),
		BudgetStartDate: start,
		BudgetEndDate:   endOfDay(budgetEnd),
	}, nil
}

// MonthWeeks returns the WeekRange for every week of the month in order.
func MonthWeeks(month types.Month) []WeekRange {
	count := WeeksInMonth(month)

	weeks := make([]WeekRange, 0, count)
	for i := 1; i <= count; i++ {
		week, err := WeekInfo(month, i)
		if err != nil {
			continue
		}
		weeks = append(weeks, week)
	}

	return weeks
}

// WeekInfoByName resolves a month name and returns the WeekRange for the
// requested week. An unknown month name falls back to the calendar week
// that contains now, so callers always get a renderable window.
func WeekInfoByName(name string, year, week int, now time.Time) (WeekRange, error) {
	month, err := types.ParseMonthName(name, year)
	if err != nil {
		return CurrentWeek(now), nil
	}

	return WeekInfo(month, week)
}

// CurrentWeek returns the Monday to Sunday calendar week containing now.
// It serves as the fallback window when a month name cannot be resolved.
func CurrentWeek(now time.Time) WeekRange {
	now = now.UTC()

	// ISO weeks start on Monday
	offset := int(now.Weekday())
	if offset == 0 {
		offset = 7
	}

	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1-offset)
	end := start.AddDate(0, 0, 6)
	month := types.MonthOf(now)

	return WeekRange{
		Week:            (now.Day()-1)/7 + 1,
		Month:           month,
		StartDate:       start,
		EndDate:         endOfDay(end),
		BudgetStartDate: start,
		BudgetEndDate:   endOfDay(end),
	}
}

// firstMondayOf returns the first Monday of the month. If the month starts
// on a Sunday, this is the second day of the month.
func firstMondayOf(month types.Month) time.Time {
	first := month.FirstDay()

	switch first.Weekday() {
	case time.Monday:
		return first
	case time.Sunday:
		return first.AddDate(0, 0, 1)
	default:
		return first.AddDate(0, 0, 8-int(first.Weekday()))
	}
}

// firstSundayOf returns the Sunday ending the first week of the month.
// If the month starts on a Sunday, that day ends the first week on its own.
func firstSundayOf(month types.Month) time.Time {
	first := month.FirstDay()
	if first.Weekday() == time.Sunday {
		return first
	}

	return first.AddDate(0, 0, 7-int(first.Weekday()))
}

// endOfDay moves a date to 23:59:59.999 so that range comparisons are
// inclusive of the whole day.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
}
