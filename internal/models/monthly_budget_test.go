package models_test

import (
	"github.com/google/uuid"
	"github.com/saku-app/backend/internal/models"
	"github.com/saku-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestMonthlyBudgetMonthRequired() {
	category := suite.createTestCategory(models.Category{Key: "GROCERIES"})

	err := models.DB.Create(&models.MonthlyBudget{
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(310),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrMonthlyBudgetMonthNotSet)
}

func (suite *TestSuiteStandard) TestMonthlyBudgetCategoryMustExist() {
	err := models.DB.Create(&models.MonthlyBudget{
		CategoryID: uuid.New(),
		Month:      types.NewMonth(2026, 1),
		Amount:     decimal.NewFromInt(310),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestMonthlyBudgetUnique() {
	category := suite.createTestCategory(models.Category{Key: "FOOD"})

	_ = suite.createTestMonthlyBudget(models.MonthlyBudget{
		CategoryID: category.ID,
		Month:      types.NewMonth(2026, 1),
		Amount:     decimal.NewFromInt(310),
	})

	err := models.DB.Create(&models.MonthlyBudget{
		CategoryID: category.ID,
		Month:      types.NewMonth(2026, 1),
		Amount:     decimal.NewFromInt(400),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrMonthlyBudgetNotUnique)
}

func (suite *TestSuiteStandard) TestMonthlyBudgetDifferentMonths() {
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

	var count int64
	suite.Require().Nil(models.DB.Model(&models.MonthlyBudget{}).Count(&count).Error)
	suite.Assert().Equal(int64(2), count)
}
