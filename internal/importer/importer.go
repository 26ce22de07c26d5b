// Package importer converts transaction rows from external sources into
// transactions in the database.
package importer

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/saku-app/backend/internal/budget"
	"github.com/saku-app/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrAmountInvalid = errors.New("the amount of the row could not be parsed")
	ErrDateInvalid   = errors.New("the date of the row could not be parsed")
)

// Row is one transaction row as read from an external source.
type Row struct {
	Note     string // Free text description of the transaction
	Type     string // Type of the transaction, defaults to Spending
	Category string // Category or account the transaction belongs to
	Date     string // Date in DD/MM/YYYY or ISO 8601 format
	Amount   string // Amount of the transaction
}

// Result summarizes an import run.
type Result struct {
	Imported int `json:"imported" example:"27"` // Number of newly created transactions
	Skipped  int `json:"skipped" example:"3"`   // Number of rows that already existed
}

// Transaction converts the row into a transaction.
//
// The import hash identifies the row so that importing the same source
// twice does not duplicate transactions.
func (r Row) Transaction() (models.Transaction, error) {
	date, err := budget.ParseDate(strings.TrimSpace(r.Date))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %q", ErrDateInvalid, r.Date)
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(r.Amount), ",", "."))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %q", ErrAmountInvalid, r.Amount)
	}

	transactionType := strings.TrimSpace(r.Type)
	if transactionType == "" {
		transactionType = budget.TypeSpending
	}

	transaction := models.Transaction{
		Type:     transactionType,
		Category: strings.TrimSpace(r.Category),
		Date:     date,
		Amount:   amount,
		Note:     strings.TrimSpace(r.Note),
	}

	hash := sha256.Sum256([]byte(strings.Join([]string{
		transaction.Type,
		transaction.Category,
		date.Format("2006-01-02"),
		amount.String(),
		transaction.Note,
	}, "|")))
	transaction.ImportHash = fmt.Sprintf("%x", hash)

	return transaction, nil
}

// Import creates all rows that are not yet in the database.
//
// Rows that cannot be parsed or whose import hash already exists are
// counted as skipped.
func Import(db *gorm.DB, rows []Row) (Result, error) {
	var result Result

	for _, row := range rows {
		transaction, err := row.Transaction()
		if err != nil {
			result.Skipped++
			continue
		}

		var count int64
		err = db.Model(&models.Transaction{}).Where("import_hash = ?", transaction.ImportHash).Count(&count).Error
		if err != nil {
			return result, err
		}

		if count > 0 {
			result.Skipped++
			continue
		}

		err = db.Create(&transaction).Error
		if err != nil {
			return result, err
		}

		result.Imported++
	}

	return result, nil
}
