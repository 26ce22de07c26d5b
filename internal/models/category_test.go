package models_test

import (
	"github.com/saku-app/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryKeyUppercased() {
	category := suite.createTestCategory(models.Category{Key: " groceries ", Name: "Groceries"})

	suite.Assert().Equal("GROCERIES", category.Key)
}

func (suite *TestSuiteStandard) TestCategoryKeyUnique() {
	_ = suite.createTestCategory(models.Category{Key: "FOOD"})

	err := models.DB.Create(&models.Category{Key: "food"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryKeyNotUnique)
}

func (suite *TestSuiteStandard) TestSeedCategories() {
	categories := []models.Category{
		{Key: "FOOD", Name: "Food", Icon: "🍚"},
		{Key: "FRUITS", Name: "Fruits", Icon: "🍉"},
	}

	suite.Require().Nil(models.SeedCategories(models.DB, categories))

	// Seeding again with a changed name updates instead of failing
	categories[0].Name = "Eating in"
	suite.Require().Nil(models.SeedCategories(models.DB, categories))

	var food models.Category
	suite.Require().Nil(models.DB.Where("key = ?", "FOOD").First(&food).Error)
	suite.Assert().Equal("Eating in", food.Name)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Category{}).Count(&count).Error)
	suite.Assert().Equal(int64(2), count)
}

func (suite *TestSuiteStandard) TestSeedCategoriesEmpty() {
	suite.Assert().Nil(models.SeedCategories(models.DB, nil))
}
