package v1

import (
	"errors"
	"net/http"

	"github.com/saku-app/backend/internal/models"
	"github.com/saku-app/backend/internal/reconcile"
)

type httpError struct {
	Error string `json:"error" example:"there is no account matching your query"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, reconcile.ErrValueInvalid) || errors.Is(err, reconcile.ErrTooManyDecimals) || errors.Is(err, reconcile.ErrValueTooLarge) {
		return http.StatusBadRequest
	}

	return http.StatusBadRequest
}

var (
	errMonthInvalid       = errors.New("the month query parameter must be set to a valid month name")
	errYearInvalid        = errors.New("the year query parameter must be set to a valid year")
	errAccountNameNotSet  = errors.New("the accountName parameter must be set")
	errRealBalanceNotSet  = errors.New("the realBalance parameter must be set")
	errImportNotConfigured = errors.New("the Google Sheets import is not configured on this server")
)
