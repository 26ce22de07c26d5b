package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/saku-app/backend/internal/budget"
	"github.com/saku-app/backend/internal/httputil"
	"github.com/saku-app/backend/internal/models"
	"github.com/saku-app/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type WeeksResponse struct {
	Data  []budget.WeekRange `json:"data"`  // The weeks of the month
	Error *string            `json:"error"` // The error, if any occurred
}

// Weekly is the weekly budget overview for one week of a month.
type Weekly struct {
	Week        budget.WeekRange    `json:"week"`        // The week the overview is for
	Allocations []budget.Allocation `json:"allocations"` // Per-category weekly budgets
	Totals      budget.Totals       `json:"totals"`      // Sums over all categories
}

type WeeklyResponse struct {
	Data  *Weekly `json:"data"`  // The weekly overview
	Error *string `json:"error"` // The error, if any occurred
}

// RegisterWeeklyRoutes registers the routes for the weekly budget
// calculations with the RouterGroups that are passed.
func RegisterWeeklyRoutes(weeks, weekly *gin.RouterGroup) {
	weeks.OPTIONS("", OptionsWeeks)
	weeks.GET("", GetWeeks)

	weekly.OPTIONS("", OptionsWeekly)
	weekly.GET("", GetWeekly)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Weekly
// @Success		204
// @Router			/v1/weeks [options]
func OptionsWeeks(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Weekly
// @Success		204
// @Router			/v1/weekly [options]
func OptionsWeekly(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get weeks
// @Description	Returns the weeks a month is partitioned into
// @Tags			Weekly
// @Produce		json
// @Success		200		{object}	WeeksResponse
// @Failure		400		{object}	WeeksResponse
// @Param			month	query		string	true	"Name of the month"
// @Param			year	query		int		true	"The year"
// @Router			/v1/weeks [get]
func GetWeeks(c *gin.Context) {
	var query QueryWeeks
	if err := c.Bind(&query); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, WeeksResponse{Error: &e})
		return
	}

	if query.Year <= 0 {
		e := errYearInvalid.Error()
		c.JSON(http.StatusBadRequest, WeeksResponse{Error: &e})
		return
	}

	month, err := types.ParseMonthName(query.Month, query.Year)
	if err != nil {
		e := errMonthInvalid.Error()
		c.JSON(http.StatusBadRequest, WeeksResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, WeeksResponse{Data: budget.MonthWeeks(month)})
}

// @Summary		Get weekly budgets
// @Description	Returns the weekly budget allocation for every category in the requested week. When the month name is not a valid month, the current week is used.
// @Tags			Weekly
// @Produce		json
// @Success		200			{object}	WeeklyResponse
// @Failure		400			{object}	WeeklyResponse
// @Failure		500			{object}	WeeklyResponse
// @Param			month		query		string	true	"Name of the month"
// @Param			year		query		int		true	"The year"
// @Param			week		query		int		true	"Week of the month, starting at 1"
// @Param			category	query		string	false	"Only return the allocation for this category"
// @Router			/v1/weekly [get]
func GetWeekly(c *gin.Context) {
	var query QueryWeekly
	if err := c.Bind(&query); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, WeeklyResponse{Error: &e})
		return
	}

	year := query.Year
	if year <= 0 {
		year = time.Now().UTC().Year()
	}

	week, err := budget.WeekInfoByName(query.Month, year, query.Week, time.Now().UTC())
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, WeeklyResponse{Error: &e})
		return
	}

	weeks := budget.MonthWeeks(week.Month)

	var budgets []models.MonthlyBudget
	err = models.DB.Preload("Category").Where("month = ?", week.Month).Order("category_id ASC").Find(&budgets).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyResponse{Error: &e})
		return
	}

	// Transaction windows reach into the previous and the next month, so
	// all transactions between the first and the last window are needed.
	transactions, err := models.TransactionsBetween(models.DB, weeks[0].StartDate, weeks[len(weeks)-1].EndDate)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyResponse{Error: &e})
		return
	}

	inputs := make([]budget.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		inputs = append(inputs, transaction.AsInput())
	}

	allocations := make([]budget.Allocation, 0)
	for _, monthlyBudget := range budgets {
		key := monthlyBudget.Category.Key
		if query.Category != "" && !strings.EqualFold(query.Category, key) {
			continue
		}

		allocations = append(allocations, budget.Allocate(monthlyBudget.Amount, weeks, week.Week, inputs, key))
	}

	data := Weekly{
		Week:        week,
		Allocations: allocations,
		Totals:      budget.Sum(allocations),
	}

	c.JSON(http.StatusOK, WeeklyResponse{Data: &data})
}
