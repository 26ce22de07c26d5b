package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/saku-app/backend/internal/controllers/v1"
	"github.com/saku-app/backend/internal/models"
	"github.com/saku-app/backend/test"
)

func (suite *TestSuiteStandard) TestCategoriesList() {
	_ = suite.createTestCategory(models.Category{Key: "GROCERIES", Name: "Groceries", Icon: "🛒"})
	_ = suite.createTestCategory(models.Category{Key: "FOOD", Name: "Food", Icon: "🍚"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("FOOD", response.Data[0].Key)
	suite.Assert().Equal("GROCERIES", response.Data[1].Key)
	suite.Assert().Equal("🛒", response.Data[1].Icon)
}

func (suite *TestSuiteStandard) TestCategoriesGet() {
	category := suite.createTestCategory(models.Category{Key: "FRUITS", Name: "Fruits"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/categories/%s", category.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("FRUITS", response.Data.Key)
}

func (suite *TestSuiteStandard) TestCategoriesGetNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories/4e743e94-6a4b-44d6-aba5-d46c62a0c37c", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesReadOnly() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", `[{ "key": "NEW" }]`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
}
