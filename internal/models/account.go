package models

import (
	"strings"

	"github.com/saku-app/backend/internal/reconcile"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents an asset account, e.g. a bank account.
type Account struct {
	DefaultModel
	Name      string                `json:"name" gorm:"uniqueIndex" example:"Mandiri"`
	Note      string                `json:"note" example:"Main payroll account"`
	Kind      reconcile.AccountKind `json:"kind" gorm:"default:integer" example:"decimal"`
	Balance   decimal.Decimal       `json:"balance" gorm:"type:DECIMAL(20,8)" example:"1500000"`
	Balancing decimal.Decimal       `json:"balancing" gorm:"type:DECIMAL(20,8)" example:"1475000"`
}

// BeforeSave sets defaults and verifies the data.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	if a.Kind == "" {
		a.Kind = reconcile.KindInteger
	}

	if !a.Kind.Valid() {
		return ErrAccountKindInvalid
	}

	return nil
}

// Reconcile stores the real balance as the account's balancing value and
// returns the difference to the recorded balance. The balance itself is
// maintained externally and stays untouched.
func (a *Account) Reconcile(db *gorm.DB, real decimal.Decimal) (decimal.Decimal, error) {
	difference := reconcile.Difference(a.Balance, real)

	err := db.Model(a).Select("Balancing").Updates(Account{
		Balancing: real,
	}).Error
	if err != nil {
		return decimal.Zero, err
	}

	return difference, nil
}
