package v1

import (
	"time"

	"github.com/saku-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters of a transaction
type TransactionEditable struct {
	Type     string          `json:"type" example:"Spending" default:""`         // Type of the transaction
	Category string          `json:"category" example:"GROCERIES" default:""`    // Category or account the transaction belongs to
	Date     time.Time       `json:"date" example:"2026-01-14T00:00:00Z"`        // Date of the transaction
	Amount   decimal.Decimal `json:"amount" example:"25000"`                     // Amount of the transaction
	Note     string          `json:"note" example:"Weekly market run" default:""` // Notes about the transaction
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Type:     editable.Type,
		Category: editable.Category,
		Date:     editable.Date,
		Amount:   editable.Amount,
		Note:     editable.Note,
	}
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
}

func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Type:     model.Type,
			Category: model.Category,
			Date:     model.Date,
			Amount:   model.Amount,
			Note:     model.Note,
		},
	}
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`  // Data for the transaction
	Error *string      `json:"error"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`  // List of transactions
	Error *string       `json:"error"` // The error, if any occurred
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`  // The created transactions or their respective error
	Error *string               `json:"error"` // The error, if any occurred
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionQueryFilter struct {
	Type      string    `form:"type"`                                 // By type
	Category  string    `form:"category"`                             // By category
	FromDate  time.Time `form:"fromDate" time_format:"2006-01-02"`    // Transactions at and after this date
	UntilDate time.Time `form:"untilDate" time_format:"2006-01-02"`   // Transactions before and at this date
}
