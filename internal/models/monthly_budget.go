package models

import (
	"github.com/google/uuid"
	"github.com/saku-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyBudget is the amount budgeted for a category in a specific month.
type MonthlyBudget struct {
	DefaultModel
	CategoryID uuid.UUID       `json:"categoryId" gorm:"uniqueIndex:monthly_budget_category_month" example:"550dc76a-aa94-4c64-b1e2-122f4b9f6a2f"`
	Category   Category        `json:"-"`
	Month      types.Month     `json:"month" gorm:"uniqueIndex:monthly_budget_category_month" example:"2026-01-01T00:00:00Z"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"310"`
}

// BeforeSave verifies the budget references an existing category and has a
// month set.
func (m *MonthlyBudget) BeforeSave(tx *gorm.DB) error {
	if m.Month.IsZero() {
		return ErrMonthlyBudgetMonthNotSet
	}

	return m.checkIntegrity(tx)
}

// checkIntegrity verifies references to other resources
func (m *MonthlyBudget) checkIntegrity(tx *gorm.DB) error {
	return tx.First(&Category{}, m.CategoryID).Error
}
