package v1

import (
	"net/http"
	"strings"

	"github.com/saku-app/backend/internal/config"
	"github.com/saku-app/backend/internal/httputil"
	"github.com/saku-app/backend/internal/models"
	"github.com/saku-app/backend/internal/reconcile"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup, cfg *config.Config) {
	// Root group
	{
		r.OPTIONS("", OptionsAccountList)
		r.GET("", GetAccounts)
		r.POST("", CreateAccounts(cfg))
	}

	// Reconciliation
	{
		r.OPTIONS("/reconcile", OptionsAccountReconcile)
		r.POST("/reconcile", ReconcileAccount)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", OptionsAccountDetail)
		r.GET("/:id", GetAccount)
		r.PATCH("/:id", UpdateAccount)
		r.DELETE("/:id", DeleteAccount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts/reconcile [options]
func OptionsAccountReconcile(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [options]
func OptionsAccountDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Account{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// CreateAccounts returns the handler that creates new accounts. Accounts
// that do not set a kind get the kind configured for their name.
//
// @Summary		Create accounts
// @Description	Creates new accounts
// @Tags			Accounts
// @Produce		json
// @Success		201			{object}	AccountCreateResponse
// @Failure		400			{object}	AccountCreateResponse
// @Failure		500			{object}	AccountCreateResponse
// @Param			accounts	body		[]AccountEditable	true	"Accounts"
// @Router			/v1/accounts [post]
func CreateAccounts(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editables []AccountEditable

		err := httputil.BindData(c, &editables)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), AccountCreateResponse{Error: &e})
			return
		}

		// The final http status. Will be modified when errors occur
		status := http.StatusCreated
		r := AccountCreateResponse{}

		for _, editable := range editables {
			account := editable.model()
			if account.Kind == "" {
				account.Kind = cfg.KindFor(account.Name)
			}

			err = models.DB.Create(&account).Error
			if err != nil {
				status = r.appendError(err, status)
				continue
			}

			data := newAccount(account)
			r.Data = append(r.Data, AccountResponse{Data: &data})
		}

		c.JSON(status, r)
	}
}

// @Summary		Get accounts
// @Description	Returns a list of accounts
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountListResponse
// @Failure		500		{object}	AccountListResponse
// @Param			name	query		string	false	"Filter by name"
// @Router			/v1/accounts [get]
func GetAccounts(c *gin.Context) {
	q := models.DB.Order("name ASC")

	if name, ok := c.GetQuery("name"); ok {
		q = q.Where("name = ?", name)
	}

	var accounts []models.Account
	err := q.Find(&accounts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountListResponse{Error: &e})
		return
	}

	data := make([]Account, 0)
	for _, account := range accounts {
		data = append(data, newAccount(account))
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: data})
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	AccountResponse
// @Failure		404	{object}	AccountResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [get]
func GetAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	var account models.Account
	err = models.DB.First(&account, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	data := newAccount(account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// @Summary		Update account
// @Description	Updates an existing account. Only values to be updated need to be specified.
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		404		{object}	AccountResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts/{id} [patch]
func UpdateAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	var account models.Account
	err = models.DB.First(&account, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	var editable AccountEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	err = models.DB.Model(&account).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	data := newAccount(account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// @Summary		Delete account
// @Description	Deletes an account
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [delete]
func DeleteAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var account models.Account
	err = models.DB.First(&account, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&account).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Reconcile account
// @Description	Stores the real balance counted by the user as the account's balancing value and returns the difference to the recorded balance
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200				{object}	ReconciliationResponse
// @Failure		400				{object}	ReconciliationResponse
// @Failure		404				{object}	ReconciliationResponse
// @Param			reconciliation	body		ReconcileEditable	true	"Reconciliation"
// @Router			/v1/accounts/reconcile [post]
func ReconcileAccount(c *gin.Context) {
	var editable ReconcileEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReconciliationResponse{Error: &e})
		return
	}

	if strings.TrimSpace(editable.AccountName) == "" {
		e := errAccountNameNotSet.Error()
		c.JSON(http.StatusBadRequest, ReconciliationResponse{Error: &e})
		return
	}

	if strings.TrimSpace(editable.RealBalance) == "" {
		e := errRealBalanceNotSet.Error()
		c.JSON(http.StatusBadRequest, ReconciliationResponse{Error: &e})
		return
	}

	var account models.Account
	err = models.DB.Where("name = ?", editable.AccountName).First(&account).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReconciliationResponse{Error: &e})
		return
	}

	real, err := reconcile.Parse(account.Kind, editable.RealBalance)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReconciliationResponse{Error: &e})
		return
	}

	difference, err := account.Reconcile(models.DB, real)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReconciliationResponse{Error: &e})
		return
	}

	data := Reconciliation{
		Account:      newAccount(account),
		NewBalancing: real,
		Difference:   difference,
		Display:      reconcile.Format(account.Kind, real),
	}

	c.JSON(http.StatusOK, ReconciliationResponse{Data: &data})
}
