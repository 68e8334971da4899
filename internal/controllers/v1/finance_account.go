package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kasbuku/backend/internal/httputil"
	"github.com/kasbuku/backend/internal/models"
)

// RegisterFinanceAccountRoutes registers the routes for finance accounts
// with the RouterGroup that is passed.
func RegisterFinanceAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsFinanceAccountList)
		r.GET("", GetFinanceAccounts)
		r.POST("", CreateFinanceAccounts)
	}

	// FinanceAccount with ID
	{
		r.OPTIONS("/:id", OptionsFinanceAccountDetail)
		r.GET("/:id", GetFinanceAccount)
		r.PATCH("/:id", UpdateFinanceAccount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			FinanceAccounts
// @Success		204
// @Router			/v1/finance-accounts [options]
func OptionsFinanceAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			FinanceAccounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/finance-accounts/{id} [options]
func OptionsFinanceAccountDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.FinanceAccount{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Create finance accounts
// @Description	Creates new cash or bank accounts
// @Tags			FinanceAccounts
// @Produce		json
// @Success		201			{object}	FinanceAccountCreateResponse
// @Failure		400			{object}	FinanceAccountCreateResponse
// @Failure		404			{object}	FinanceAccountCreateResponse
// @Failure		500			{object}	FinanceAccountCreateResponse
// @Param			accounts	body		[]FinanceAccountEditable	true	"FinanceAccounts"
// @Router			/v1/finance-accounts [post]
func CreateFinanceAccounts(c *gin.Context) {
	var editables []FinanceAccountEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FinanceAccountCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := FinanceAccountCreateResponse{}

	for _, editable := range editables {
		account := editable.model()

		// The linked ledger account has to exist
		if account.LinkedAccountID != nil {
			err = models.DB.First(&models.Account{}, *account.LinkedAccountID).Error
			if err != nil {
				status = r.appendError(err, status)
				continue
			}
		}

		err = models.DB.Create(&account).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newFinanceAccount(account)
		r.Data = append(r.Data, FinanceAccountResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get finance accounts
// @Description	Returns a list of finance accounts
// @Tags			FinanceAccounts
// @Produce		json
// @Success		200	{object}	FinanceAccountListResponse
// @Failure		500	{object}	FinanceAccountListResponse
// @Router			/v1/finance-accounts [get]
func GetFinanceAccounts(c *gin.Context) {
	var accounts []models.FinanceAccount
	err := models.DB.Order("name ASC").Find(&accounts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinanceAccountListResponse{
			Error: &s,
		})
		return
	}

	data := make([]FinanceAccount, 0, len(accounts))
	for _, account := range accounts {
		data = append(data, newFinanceAccount(account))
	}

	c.JSON(http.StatusOK, FinanceAccountListResponse{Data: data})
}

// @Summary		Get finance account
// @Description	Returns a specific finance account
// @Tags			FinanceAccounts
// @Produce		json
// @Success		200	{object}	FinanceAccountResponse
// @Failure		400	{object}	FinanceAccountResponse
// @Failure		404	{object}	FinanceAccountResponse
// @Failure		500	{object}	FinanceAccountResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/finance-accounts/{id} [get]
func GetFinanceAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinanceAccountResponse{
			Error: &s,
		})
		return
	}

	var account models.FinanceAccount
	err = models.DB.First(&account, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinanceAccountResponse{
			Error: &s,
		})
		return
	}

	data := newFinanceAccount(account)
	c.JSON(http.StatusOK, FinanceAccountResponse{Data: &data})
}

// @Summary		Update finance account
// @Description	Updates a finance account, e.g. to set its ledger account link
// @Tags			FinanceAccounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	FinanceAccountResponse
// @Failure		400		{object}	FinanceAccountResponse
// @Failure		404		{object}	FinanceAccountResponse
// @Failure		500		{object}	FinanceAccountResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			account	body		FinanceAccountEditable	true	"FinanceAccount"
// @Router			/v1/finance-accounts/{id} [patch]
func UpdateFinanceAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinanceAccountResponse{
			Error: &s,
		})
		return
	}

	var account models.FinanceAccount
	err = models.DB.First(&account, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinanceAccountResponse{
			Error: &s,
		})
		return
	}

	var editable FinanceAccountEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FinanceAccountResponse{
			Error: &e,
		})
		return
	}

	if editable.LinkedAccountID != nil {
		err = models.DB.First(&models.Account{}, *editable.LinkedAccountID).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), FinanceAccountResponse{
				Error: &s,
			})
			return
		}
	}

	err = models.DB.Model(&account).Select("Name", "Note", "LinkedAccountID").Updates(editable.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinanceAccountResponse{
			Error: &s,
		})
		return
	}

	data := newFinanceAccount(account)
	c.JSON(http.StatusOK, FinanceAccountResponse{Data: &data})
}
