package models_test

import (
	"github.com/saku-app/backend/internal/models"
	"github.com/saku-app/backend/internal/reconcile"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAccountTrimWhitespace() {
	account := suite.createTestAccount(models.Account{
		Name: " Mandiri  ",
		Note: " Payroll account ",
	})

	suite.Assert().Equal("Mandiri", account.Name)
	suite.Assert().Equal("Payroll account", account.Note)
}

func (suite *TestSuiteStandard) TestAccountDefaultKind() {
	account := suite.createTestAccount(models.Account{})

	suite.Assert().Equal(reconcile.KindInteger, account.Kind)
}

func (suite *TestSuiteStandard) TestAccountInvalidKind() {
	err := models.DB.Create(&models.Account{
		Name: "Broken",
		Kind: "percentage",
	}).Error

	suite.Assert().ErrorIs(err, models.ErrAccountKindInvalid)
}

func (suite *TestSuiteStandard) TestAccountNameUnique() {
	_ = suite.createTestAccount(models.Account{Name: "BCA"})

	err := models.DB.Create(&models.Account{Name: "BCA"}).Error
	suite.Assert().ErrorIs(err, models.ErrAccountNameNotUnique)
}

func (suite *TestSuiteStandard) TestAccountReconcile() {
	account := suite.createTestAccount(models.Account{
		Name:    "Mandiri",
		Kind:    reconcile.KindDecimal,
		Balance: decimal.NewFromInt(1000),
	})

	difference, err := account.Reconcile(models.DB, decimal.NewFromInt(1200))
	suite.Require().Nil(err)
	suite.Assert().True(difference.Equal(decimal.NewFromInt(200)), "difference is %s, expected 200", difference)

	var reloaded models.Account
	suite.Require().Nil(models.DB.First(&reloaded, account.ID).Error)
	suite.Assert().True(reloaded.Balance.Equal(decimal.NewFromInt(1000)), "balance is %s, expected the externally maintained 1000", reloaded.Balance)
	suite.Assert().True(reloaded.Balancing.Equal(decimal.NewFromInt(1200)))
}

func (suite *TestSuiteStandard) TestAccountReconcileRepeated() {
	account := suite.createTestAccount(models.Account{
		Name:    "BCA",
		Kind:    reconcile.KindDecimal,
		Balance: decimal.NewFromInt(1000),
	})

	_, err := account.Reconcile(models.DB, decimal.NewFromInt(1200))
	suite.Require().Nil(err)

	// The difference is always against the recorded balance, not against
	// the previously entered real balance
	difference, err := account.Reconcile(models.DB, decimal.NewFromInt(900))
	suite.Require().Nil(err)
	suite.Assert().True(difference.Equal(decimal.NewFromInt(-100)), "difference is %s, expected -100", difference)

	var reloaded models.Account
	suite.Require().Nil(models.DB.First(&reloaded, account.ID).Error)
	suite.Assert().True(reloaded.Balance.Equal(decimal.NewFromInt(1000)))
	suite.Assert().True(reloaded.Balancing.Equal(decimal.NewFromInt(900)))
}

func (suite *TestSuiteStandard) TestAccountReconcileDBClosed() {
	account := suite.createTestAccount(models.Account{Name: "GoPay"})

	suite.CloseDB()

	_, err := account.Reconcile(models.DB, decimal.NewFromInt(50))
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
