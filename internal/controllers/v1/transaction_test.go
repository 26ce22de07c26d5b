package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/saku-app/backend/internal/controllers/v1"
	"github.com/saku-app/backend/internal/models"
	"github.com/saku-app/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", `[{ "type": "Spending", "category": "GROCERIES", "date": "2026-01-14T00:00:00Z", "amount": 25000 }]`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("GROCERIES", response.Data[0].Data.Category)
}

func (suite *TestSuiteStandard) TestTransactionsCreateMissingType() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", `[{ "category": "GROCERIES", "amount": 100 }]`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(models.ErrTransactionTypeNotSet.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestTransactionsListFilter() {
	for day, category := range map[int]string{10: "FOOD", 15: "GROCERIES", 20: "FOOD"} {
		_ = suite.createTestTransaction(models.Transaction{
			Type:     "Spending",
			Category: category,
			Date:     time.Date(2026, 1, day, 12, 0, 0, 0, time.UTC),
			Amount:   decimal.NewFromInt(int64(day)),
		})
	}

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?category=FOOD", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/transactions?fromDate=2026-01-12&untilDate=2026-01-15", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("GROCERIES", response.Data[0].Category)
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	transaction := suite.createTestTransaction(models.Transaction{
		Type:     "Spending",
		Category: "FOOD",
		Date:     time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(100),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.ID), `{ "note": "Snacks" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Snacks", response.Data.Note)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := suite.createTestTransaction(models.Transaction{
		Type:     "Spending",
		Category: "FOOD",
		Date:     time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(100),
	})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
