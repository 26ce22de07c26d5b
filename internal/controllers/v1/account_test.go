package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/saku-app/backend/internal/controllers/v1"
	"github.com/saku-app/backend/internal/models"
	"github.com/saku-app/backend/internal/reconcile"
	"github.com/saku-app/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAccountsCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts", `[{ "name": "Mandiri", "kind": "decimal" }]`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.AccountCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Mandiri", response.Data[0].Data.Name)
	suite.Assert().Equal(reconcile.KindDecimal, response.Data[0].Data.Kind)
}

func (suite *TestSuiteStandard) TestAccountsCreateDuplicateName() {
	_ = suite.createTestAccount(models.Account{Name: "BCA"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts", `[{ "name": "BCA" }]`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.AccountCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(models.ErrAccountNameNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestAccountsCreateInvalidBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts", `[{ broken`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAccountsList() {
	_ = suite.createTestAccount(models.Account{Name: "Cash"})
	_ = suite.createTestAccount(models.Account{Name: "BCA"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/accounts", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("BCA", response.Data[0].Name)
	suite.Assert().Equal("Cash", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestAccountsGet() {
	account := suite.createTestAccount(models.Account{Name: "Mandiri"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/accounts/%s", account.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Mandiri", response.Data.Name)
}

func (suite *TestSuiteStandard) TestAccountsGetNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/accounts/4e743e94-6a4b-44d6-aba5-d46c62a0c37c", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountsGetInvalidID() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/accounts/not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAccountsUpdate() {
	account := suite.createTestAccount(models.Account{Name: "Cash"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/accounts/%s", account.ID), `{ "note": "Wallet money" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Wallet money", response.Data.Note)
}

func (suite *TestSuiteStandard) TestAccountsDelete() {
	account := suite.createTestAccount(models.Account{Name: "Old"})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/accounts/%s", account.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/accounts/%s", account.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountsReconcileDecimal() {
	_ = suite.createTestAccount(models.Account{
		Name:    "Mandiri",
		Kind:    reconcile.KindDecimal,
		Balance: decimal.NewFromInt(1000),
	})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts/reconcile", `{ "accountName": "Mandiri", "realBalance": "1.200,50" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ReconciliationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.NewBalancing.Equal(decimal.NewFromFloat(1200.5)), "newBalancing is %s", response.Data.NewBalancing)
	suite.Assert().True(response.Data.Difference.Equal(decimal.NewFromFloat(200.5)), "difference is %s", response.Data.Difference)
	suite.Assert().Equal("1.200,50", response.Data.Display)
}

func (suite *TestSuiteStandard) TestAccountsReconcileInteger() {
	_ = suite.createTestAccount(models.Account{
		Name:    "GoPay",
		Balance: decimal.NewFromInt(150000),
	})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts/reconcile", `{ "accountName": "GoPay", "realBalance": "175000" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ReconciliationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.NewBalancing.Equal(decimal.NewFromInt(175000)))
	suite.Assert().True(response.Data.Difference.Equal(decimal.NewFromInt(25000)))
	suite.Assert().Equal("175.000", response.Data.Display)
}

func (suite *TestSuiteStandard) TestAccountsReconcileInvalidValue() {
	_ = suite.createTestAccount(models.Account{Name: "Cash"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts/reconcile", `{ "accountName": "Cash", "realBalance": "1,2,3" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAccountsReconcileUnknownAccount() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts/reconcile", `{ "accountName": "Nope", "realBalance": "100" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountsReconcileMissingFields() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts/reconcile", `{ "accountName": "Cash" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/accounts/reconcile", `{ "realBalance": "100" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
