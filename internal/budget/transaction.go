package budget

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TypeSpending marks a transaction as an outflow. Only transactions of
// this type count towards weekly spending.
const TypeSpending = "Spending"

var ErrInvalidDate = errors.New("the transaction date could not be parsed")

// isoFormats are tried in order for dates that do not use the DD/MM/YYYY
// form.
var isoFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Transaction is the plain input record the computations work on. The
// data layer maps its own storage representation into this type.
type Transaction struct {
	Type     string          `json:"type" example:"Spending"`     // Transaction type, outflows are "Spending"
	Category string          `json:"category" example:"FOOD"`     // Category key, matched case-insensitively
	Date     string          `json:"date" example:"14/01/2026"`   // Date in DD/MM/YYYY or ISO form
	Amount   decimal.Decimal `json:"amount" example:"-125000.50"` // Signed amount, the sign follows the ledger convention
}

// ParseDate normalizes a transaction date string. Dates containing "/"
// are read as DD/MM/YYYY, everything else as an ISO-like date. Both forms
// yield comparable UTC values.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}

	if strings.Contains(s, "/") {
		t, err := time.ParseInLocation("02/01/2006", s, time.UTC)
		if err != nil {
			return time.Time{}, ErrInvalidDate
		}
		return t, nil
	}

	for _, format := range isoFormats {
		if t, err := time.ParseInLocation(format, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, ErrInvalidDate
}
