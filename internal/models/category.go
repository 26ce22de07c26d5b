package models

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Category represents a spending category that budgets and transactions
// reference.
type Category struct {
	DefaultModel
	Key  string `json:"key" gorm:"uniqueIndex" example:"GROCERIES"`
	Name string `json:"name" example:"Groceries"`
	Icon string `json:"icon" example:"🛒"`
}

// BeforeSave normalizes the category key.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Key = strings.ToUpper(strings.TrimSpace(c.Key))
	c.Name = strings.TrimSpace(c.Name)

	return nil
}

// SeedCategories upserts the configured categories so that they exist with
// the configured name and icon after startup.
func SeedCategories(db *gorm.DB, categories []Category) error {
	if len(categories) == 0 {
		return nil
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "icon"}),
	}).Create(&categories).Error
}
