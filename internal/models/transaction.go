package models

import (
	"strings"
	"time"

	"github.com/saku-app/backend/internal/budget"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single booking, imported or entered manually.
type Transaction struct {
	DefaultModel
	Type       string          `json:"type" example:"Spending"`
	Category   string          `json:"category" example:"GROCERIES"`
	Date       time.Time       `json:"date" example:"2026-01-14T00:00:00Z"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"25000"`
	Note       string          `json:"note" example:"Weekly market run"`
	ImportHash string          `json:"-" gorm:"index"`
}

// BeforeSave verifies the transaction and normalizes the date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Type = strings.TrimSpace(t.Type)
	if t.Type == "" {
		return ErrTransactionTypeNotSet
	}

	t.Category = strings.TrimSpace(t.Category)
	if t.Category == "" {
		return ErrTransactionCategoryNotSet
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// AfterFind returns the date in UTC.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	err := t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)

	return nil
}

// AsInput converts the transaction into the form the budget calculations
// consume.
func (t Transaction) AsInput() budget.Transaction {
	return budget.Transaction{
		Type:     t.Type,
		Category: t.Category,
		Date:     t.Date.Format("2006-01-02"),
		Amount:   t.Amount,
	}
}

// TransactionsBetween returns all transactions with a date in the inclusive
// range from from to to.
func TransactionsBetween(db *gorm.DB, from, to time.Time) ([]Transaction, error) {
	var transactions []Transaction

	err := db.Where("date >= ? AND date <= ?", from, to).Order("date ASC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
