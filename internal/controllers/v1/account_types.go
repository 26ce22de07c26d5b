package v1

import (
	"github.com/saku-app/backend/internal/models"
	"github.com/saku-app/backend/internal/reconcile"
	"github.com/shopspring/decimal"
)

// AccountEditable represents all user configurable parameters of an account
type AccountEditable struct {
	Name    string                `json:"name" example:"Mandiri" default:""`                // Name of the account
	Note    string                `json:"note" example:"Main payroll account" default:""`   // Notes about the account
	Kind    reconcile.AccountKind `json:"kind" example:"decimal" default:"integer"`         // How balance values are parsed for this account
	Balance decimal.Decimal       `json:"balance" example:"1500000"`                        // The last recorded balance
}

func (editable AccountEditable) model() models.Account {
	return models.Account{
		Name:    editable.Name,
		Note:    editable.Note,
		Kind:    editable.Kind,
		Balance: editable.Balance,
	}
}

type Account struct {
	models.DefaultModel
	AccountEditable
	Balancing decimal.Decimal `json:"balancing" example:"1475000"` // The balance the account was last reconciled to
}

func newAccount(model models.Account) Account {
	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name:    model.Name,
			Note:    model.Note,
			Kind:    model.Kind,
			Balance: model.Balance,
		},
		Balancing: model.Balancing,
	}
}

type AccountResponse struct {
	Data  *Account `json:"data"`  // Data for the account
	Error *string  `json:"error"` // The error, if any occurred
}

type AccountListResponse struct {
	Data  []Account `json:"data"`  // List of accounts
	Error *string   `json:"error"` // The error, if any occurred
}

type AccountCreateResponse struct {
	Data  []AccountResponse `json:"data"`  // The created accounts or their respective error
	Error *string           `json:"error"` // The error, if any occurred
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

// ReconcileEditable is the request body for a reconciliation.
type ReconcileEditable struct {
	AccountName string `json:"accountName" example:"Mandiri"`  // Name of the account to reconcile
	RealBalance string `json:"realBalance" example:"1.234,56"` // The real balance as entered by the user
}

// Reconciliation is the result of reconciling an account.
type Reconciliation struct {
	Account      Account         `json:"account"`                             // The account after reconciliation
	NewBalancing decimal.Decimal `json:"newBalancing" example:"1234.56"`      // The parsed real balance
	Difference   decimal.Decimal `json:"difference" example:"-265.44"`        // Real balance minus the previously recorded balance
	Display      string          `json:"display" example:"1.234,56"`          // The new balance formatted for display
}

type ReconciliationResponse struct {
	Data  *Reconciliation `json:"data"`  // The reconciliation result
	Error *string         `json:"error"` // The error, if any occurred
}
