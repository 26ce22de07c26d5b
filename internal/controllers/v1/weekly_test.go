package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/saku-app/backend/internal/controllers/v1"
	"github.com/saku-app/backend/internal/budget"
	"github.com/saku-app/backend/internal/models"
	"github.com/saku-app/backend/internal/types"
	"github.com/saku-app/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestWeeksList() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/weeks?month=January&year=2026", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.WeeksResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 5)

	// The budget windows cover the whole month
	days := 0
	for _, week := range response.Data {
		days += week.BudgetDays()
	}
	suite.Assert().Equal(31, days)
}

func (suite *TestSuiteStandard) TestWeeksListInvalidMonth() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/weeks?month=Juneuary&year=2026", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestWeeksListMissingYear() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/weeks?month=January", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestWeeklyFirstWeek() {
	category := suite.createTestCategory(models.Category{Key: "GROCERIES"})
	_ = suite.createTestMonthlyBudget(models.MonthlyBudget{
		CategoryID: category.ID,
		Month:      types.NewMonth(2026, 1),
		Amount:     decimal.NewFromInt(310),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/weekly?month=January&year=2026&week=1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.WeeklyResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(1, response.Data.Week.Week)
	suite.Require().Len(response.Data.Allocations, 1)

	// January 2026 has 31 days, the first budget window has 4
	allocation := response.Data.Allocations[0]
	suite.Assert().Equal("GROCERIES", allocation.Category)
	suite.Assert().True(allocation.AdjustedBudget.Equal(decimal.NewFromInt(40)), "adjusted budget is %s, expected 40", allocation.AdjustedBudget)
	suite.Assert().Equal(budget.StatusOK, allocation.Status)
}

func (suite *TestSuiteStandard) TestWeeklyCascade() {
	category := suite.createTestCategory(models.Category{Key: "FOOD"})
	_ = suite.createTestMonthlyBudget(models.MonthlyBudget{
		CategoryID: category.ID,
		Month:      types.NewMonth(2026, 1),
		Amount:     decimal.NewFromInt(310),
	})

	// Overspend the first week by 20
	_ = suite.createTestTransaction(models.Transaction{
		Type:     "Spending",
		Category: "GROCERIES",
		Date:     time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(60),
	})
	_ = suite.createTestTransaction(models.Transaction{
		Type:     "Spending",
		Category: "FOOD",
		Date:     time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(60),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/weekly?month=January&year=2026&week=2", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.WeeklyResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data.Allocations, 1)
	allocation := response.Data.Allocations[0]

	// Week 1 budget is 40, overspending by 20 spreads the penalty over
	// the remaining 27 days: 70 - 20/27*7
	expected := decimal.NewFromInt(70).Sub(decimal.NewFromInt(20).Div(decimal.NewFromInt(27)).Mul(decimal.NewFromInt(7)))
	suite.Assert().True(allocation.AdjustedBudget.Sub(expected).Abs().LessThan(decimal.New(1, -9)),
		"adjusted budget is %s, expected %s", allocation.AdjustedBudget, expected)

	// The GROCERIES transaction must not affect the FOOD budget
	suite.Assert().True(allocation.Spending.IsZero())
}

func (suite *TestSuiteStandard) TestWeeklyCategoryFilter() {
	groceries := suite.createTestCategory(models.Category{Key: "GROCERIES"})
	food := suite.createTestCategory(models.Category{Key: "FOOD"})

	for _, category := range []models.Category{groceries, food} {
		_ = suite.createTestMonthlyBudget(models.MonthlyBudget{
			CategoryID: category.ID,
			Month:      types.NewMonth(2026, 1),
			Amount:     decimal.NewFromInt(100),
		})
	}

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/weekly?month=January&year=2026&week=1&category=food", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.WeeklyResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data.Allocations, 1)
	suite.Assert().Equal("FOOD", response.Data.Allocations[0].Category)
}

func (suite *TestSuiteStandard) TestWeeklyInvalidMonthFallsBack() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/weekly?month=Notamonth&year=2026&week=1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.WeeklyResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Falls back to the current week
	now := time.Now().UTC()
	suite.Assert().Equal(types.MonthOf(now).Name(), response.Data.Week.Month.Name())
}

func (suite *TestSuiteStandard) TestWeeklyWeekOutOfRange() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/weekly?month=January&year=2026&week=9", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
