package v1

import (
	saku_uuid "github.com/saku-app/backend/internal/uuid"
)

type URIID struct {
	ID saku_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// QueryWeeks selects the month a request refers to.
type QueryWeeks struct {
	Month string `form:"month" example:"January"` // Name of the month
	Year  int    `form:"year" example:"2026"`     // The year
}

// QueryWeekly selects the week a request refers to.
type QueryWeekly struct {
	QueryWeeks
	Week     int    `form:"week" example:"2"`            // Week of the month, starting at 1
	Category string `form:"category" example:"GROCERIES"` // Only return the allocation for this category
}
