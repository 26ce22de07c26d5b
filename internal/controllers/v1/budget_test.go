package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/saku-app/backend/internal/controllers/v1"
	"github.com/saku-app/backend/internal/models"
	"github.com/saku-app/backend/internal/types"
	"github.com/saku-app/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	category := suite.createTestCategory(models.Category{Key: "GROCERIES"})

	body := fmt.Sprintf(`[{ "categoryId": "%s", "month": "2026-01-01T00:00:00Z", "amount": 310 }]`, category.ID)
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/budgets", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("GROCERIES", response.Data[0].Data.CategoryKey)
	suite.Assert().True(response.Data[0].Data.Amount.Equal(decimal.NewFromInt(310)))
}

func (suite *TestSuiteStandard) TestBudgetsCreateDuplicate() {
	category := suite.createTestCategory(models.Category{Key: "FOOD"})
	_ = suite.createTestMonthlyBudget(models.MonthlyBudget{
		CategoryID: category.ID,
		Month:      types.NewMonth(2026, 1),
		Amount:     decimal.NewFromInt(100),
	})

	body := fmt.Sprintf(`[{ "categoryId": "%s", "month": "2026-01-01T00:00:00Z", "amount": 200 }]`, category.ID)
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/budgets", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(models.ErrMonthlyBudgetNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestBudgetsCreateUnknownCategory() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/budgets", `[{ "categoryId": "4e743e94-6a4b-44d6-aba5-d46c62a0c37c", "month": "2026-01-01T00:00:00Z", "amount": 100 }]`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsListFilterMonth() {
	category := suite.createTestCategory(models.Category{Key: "FRUITS"})
	_ = suite.createTestMonthlyBudget(models.MonthlyBudget{
		CategoryID: category.ID,
		Month:      types.NewMonth(2026, 1),
		Amount:     decimal.NewFromInt(100),
	})
	_ = suite.createTestMonthlyBudget(models.MonthlyBudget{
		CategoryID: category.ID,
		Month:      types.NewMonth(2026, 2),
		Amount:     decimal.NewFromInt(120),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/budgets?month=2026-02", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().True(response.Data[0].Amount.Equal(decimal.NewFromInt(120)))
}

func (suite *TestSuiteStandard) TestBudgetsListFilterMonthInvalid() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/budgets?month=yesterday", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	category := suite.createTestCategory(models.Category{Key: "GRAB CREDIT"})
	budget := suite.createTestMonthlyBudget(models.MonthlyBudget{
		CategoryID: category.ID,
		Month:      types.NewMonth(2026, 1),
		Amount:     decimal.NewFromInt(50),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/budgets/%s", budget.ID), `{ "amount": 75 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromInt(75)))
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	category := suite.createTestCategory(models.Category{Key: "DINING OUT"})
	budget := suite.createTestMonthlyBudget(models.MonthlyBudget{
		CategoryID: category.ID,
		Month:      types.NewMonth(2026, 1),
		Amount:     decimal.NewFromInt(50),
	})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/budgets/%s", budget.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}
