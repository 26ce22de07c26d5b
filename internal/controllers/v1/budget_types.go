package v1

import (
	"github.com/google/uuid"
	"github.com/saku-app/backend/internal/models"
	"github.com/saku-app/backend/internal/types"
	saku_uuid "github.com/saku-app/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters of a monthly budget
type BudgetEditable struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"550dc76a-aa94-4c64-b1e2-122f4b9f6a2f"` // ID of the category this budget is for
	Month      types.Month     `json:"month" example:"2026-01-01T00:00:00Z"`                      // The month this budget applies to
	Amount     decimal.Decimal `json:"amount" example:"310"`                                      // The budgeted amount for the whole month
}

func (editable BudgetEditable) model() models.MonthlyBudget {
	return models.MonthlyBudget{
		CategoryID: editable.CategoryID,
		Month:      editable.Month,
		Amount:     editable.Amount,
	}
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	CategoryKey string `json:"categoryKey" example:"GROCERIES"` // Key of the category this budget is for
}

func newBudget(model models.MonthlyBudget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			CategoryID: model.CategoryID,
			Month:      model.Month,
			Amount:     model.Amount,
		},
		CategoryKey: model.Category.Key,
	}
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`  // Data for the budget
	Error *string `json:"error"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`  // List of budgets
	Error *string  `json:"error"` // The error, if any occurred
}

type BudgetCreateResponse struct {
	Data  []BudgetResponse `json:"data"`  // The created budgets or their respective error
	Error *string          `json:"error"` // The error, if any occurred
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetQueryFilter struct {
	CategoryID saku_uuid.UUID `form:"category"`                 // By ID of the category
	Month      string         `form:"month" example:"2026-01"`  // By month in YYYY-MM format
}
