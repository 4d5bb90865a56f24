package v1

import (
	"errors"
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountEditable represents all user configurable parameters
type AccountEditable struct {
	Name              string             `json:"name" example:"Girokonto" default:""`                        // Name of the account
	Type              models.AccountType `json:"type" example:"checking"`                                    // Type of the account
	Note              string             `json:"note" example:"Main account" default:""`                     // A longer description
	OnBudget          *bool              `json:"onBudget" example:"true"`                                    // Omit to inherit the default for the account type
	PaymentCategoryID *uuid.UUID         `json:"paymentCategoryId" example:"a6f29a6b-4f39-4f42-a786-e104a48e279b"` // The payment category for credit-type accounts
	Archived          bool               `json:"archived" example:"false" default:"false"`                   // Is the account archived?
}

func (editable AccountEditable) model(userID uuid.UUID) models.Account {
	return models.Account{
		UserID:            userID,
		Name:              editable.Name,
		Type:              editable.Type,
		Note:              editable.Note,
		OnBudget:          editable.OnBudget,
		PaymentCategoryID: editable.PaymentCategoryID,
		Archived:          editable.Archived,
	}
}

// Account is the API representation of an account.
type Account struct {
	models.Account
	Computed struct {
		OnBudget    bool `json:"onBudget"`    // The resolved tri-state on-budget setting
		IsLiability bool `json:"isLiability"` // Whether the account represents debt
	} `json:"computed"`
}

func newAccount(model models.Account) Account {
	account := Account{Account: model}
	account.Computed.OnBudget = model.IsOnBudget()
	account.Computed.IsLiability = model.IsLiability
	return account
}

type AccountResponse struct {
	Data  *Account `json:"data"`  // Data for the account
	Error *string  `json:"error"` // The error, if any occurred
}

type AccountListResponse struct {
	Data  []Account `json:"data"`  // List of accounts
	Error *string   `json:"error"` // The error, if any occurred
}

type AccountQueryFilter struct {
	Name     string             `form:"name"`     // By name
	Type     models.AccountType `form:"type"`     // By account type
	Archived bool               `form:"archived"` // Is the account archived?
}

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsAccountList)
		r.GET("", GetAccounts)
		r.POST("", CreateAccount)
	}
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
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/accounts/{id} [options]
func OptionsAccountDetail(c *gin.Context) {
	if _, err := getAccount(c); err != nil {
		s := err.Error()
		c.JSON(status(err), httpError{Error: s})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create account
// @Description	Creates a new account
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts [post]
func CreateAccount(c *gin.Context) {
	var editable AccountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	account := editable.model(currentUser(c))
	if err := models.DB.Create(&account).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	data := newAccount(account)
	c.JSON(http.StatusCreated, AccountResponse{Data: &data})
}

// @Summary		List accounts
// @Description	Returns a list of accounts
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountListResponse
// @Failure		500	{object}	AccountListResponse
// @Param			name		query	string	false	"Filter by name"
// @Param			type		query	string	false	"Filter by account type"
// @Param			archived	query	bool	false	"Is the account archived?"
// @Router			/v1/accounts [get]
func GetAccounts(c *gin.Context) {
	var filter AccountQueryFilter
	_ = c.Bind(&filter)

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	var accounts []models.Account
	err := models.DB.
		Where(&models.Account{UserID: currentUser(c)}).
		Where(&models.Account{
			Name:     filter.Name,
			Type:     filter.Type,
			Archived: filter.Archived,
		}, queryFields...).
		Order("name ASC").
		Find(&accounts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountListResponse{Error: &s})
		return
	}

	data := make([]Account, 0, len(accounts))
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
// @Failure		500	{object}	AccountResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/accounts/{id} [get]
func GetAccount(c *gin.Context) {
	account, err := getAccount(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	data := newAccount(account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// @Summary		Update account
// @Description	Updates an account. Only values to be updated need to be specified.
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		404		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts/{id} [patch]
func UpdateAccount(c *gin.Context) {
	account, err := getAccount(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AccountEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	var editable AccountEditable
	editable.Type = account.Type
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	if !editable.Type.Valid() {
		s := models.ErrAccountTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, AccountResponse{Error: &s})
		return
	}

	err = models.DB.Model(&account).Select("", updateFields...).Updates(editable.model(account.UserID)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
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
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/accounts/{id} [delete]
func DeleteAccount(c *gin.Context) {
	account, err := getAccount(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&account).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// getAccount resolves the account from the URI, scoped to the
// requesting user.
func getAccount(c *gin.Context) (models.Account, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.Account{}, httputil.ErrInvalidBody
	}

	var account models.Account
	err := models.DB.
		Where(&models.Account{UserID: currentUser(c)}).
		First(&account, uri.ID.UUID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Account{}, models.ErrResourceNotFound
	}

	return account, err
}
