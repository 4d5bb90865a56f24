package v1

import (
	"errors"
	"net/http"
	"time"

	app_uuid "github.com/centsible/backend/internal/uuid"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	AccountID           app_uuid.UUID          `json:"accountId" binding:"required" example:"af892e10-7e0a-4fb8-b1bc-4b6d88107b68"` // ID of the account the transaction belongs to
	CategoryID          *app_uuid.UUID         `json:"categoryId" example:"f51287f6-ee26-4be2-b6e8-2022e06e2bdb"`                   // ID of the category, nil for uncategorized
	PayeeID             *app_uuid.UUID         `json:"payeeId" example:"1e777d24-3f5b-4c43-8500-04511f1a2fb4"`                      // ID of the payee, if any
	Amount              decimal.Decimal        `json:"amount" example:"-14.37"`                                                     // Signed amount, negative for outflows
	Type                models.TransactionType `json:"type" binding:"required" example:"expense"`                                   // Type of the transaction
	Date                time.Time              `json:"date" example:"2024-03-20T00:00:00Z"`                                         // Date the transaction occurred
	Memo                string                 `json:"memo" example:"Weekly groceries" default:""`                                  // Any notes for the transaction
	Cleared             bool                   `json:"cleared" example:"true" default:"false"`                                      // Has the transaction cleared the account?
	IsSplit             bool                   `json:"isSplit" example:"false" default:"false"`                                     // Is this a split parent transaction?
	ParentTransactionID *app_uuid.UUID         `json:"parentTransactionId"`                                                         // ID of the split parent, if this is a split child
}

func (editable TransactionEditable) model() models.Transaction {
	transaction := models.Transaction{
		AccountID: editable.AccountID.UUID,
		Amount:    editable.Amount,
		Type:      editable.Type,
		Date:      editable.Date,
		Memo:      editable.Memo,
		Cleared:   editable.Cleared,
		IsSplit:   editable.IsSplit,
	}

	if editable.CategoryID != nil {
		transaction.CategoryID = &editable.CategoryID.UUID
	}

	if editable.PayeeID != nil {
		transaction.PayeeID = &editable.PayeeID.UUID
	}

	if editable.ParentTransactionID != nil {
		transaction.ParentTransactionID = &editable.ParentTransactionID.UUID
	}

	return transaction
}

// TransactionQueryFilter contains the fields transactions can be filtered with
type TransactionQueryFilter struct {
	AccountID  string                 `form:"account"`  // By account ID
	CategoryID string                 `form:"category"` // By category ID
	PayeeID    string                 `form:"payee"`    // By payee ID
	Type       models.TransactionType `form:"type"`     // By type
	FromDate   time.Time              `form:"fromDate" time_format:"2006-01-02"`
	UntilDate  time.Time              `form:"untilDate" time_format:"2006-01-02"`
}

type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`  // Data for the transaction
	Error *string             `json:"error"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data  []models.Transaction `json:"data"`  // List of transactions
	Error *string              `json:"error"` // The error, if any occurred
}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	if _, err := getTransaction(c); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create transaction
// @Description	Creates a new transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	// The account has to belong to the requesting user
	var account models.Account
	err := models.DB.
		Where(&models.Account{UserID: currentUser(c)}).
		First(&account, editable.AccountID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	if editable.CategoryID != nil {
		if _, err := userCategory(c, editable.CategoryID.UUID); err != nil {
			s := err.Error()
			c.JSON(status(err), TransactionResponse{Error: &s})
			return
		}
	}

	transaction := editable.model()
	if err := models.DB.Create(&transaction).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}

// @Summary		List transactions
// @Description	Returns a list of transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Param			account		query	string	false	"Filter by account ID"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			payee		query	string	false	"Filter by payee ID"
// @Param			type		query	string	false	"Filter by type"
// @Param			fromDate	query	string	false	"Transactions on or after this date"
// @Param			untilDate	query	string	false	"Transactions on or before this date"
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	_ = c.Bind(&filter)

	query := models.DB.
		Joins("JOIN accounts ON accounts.id = transactions.account_id AND accounts.deleted_at IS NULL").
		Where("accounts.user_id = ?", currentUser(c))

	if filter.AccountID != "" {
		query = query.Where("transactions.account_id = ?", filter.AccountID)
	}

	if filter.CategoryID != "" {
		query = query.Where("transactions.category_id = ?", filter.CategoryID)
	}

	if filter.PayeeID != "" {
		query = query.Where("transactions.payee_id = ?", filter.PayeeID)
	}

	if filter.Type != "" {
		query = query.Where("transactions.type = ?", filter.Type)
	}

	if !filter.FromDate.IsZero() {
		query = query.Where("transactions.date >= ?", filter.FromDate)
	}

	if !filter.UntilDate.IsZero() {
		query = query.Where("transactions.date <= ?", filter.UntilDate)
	}

	var transactions []models.Transaction
	err := query.
		Order("transactions.date DESC").
		Find(&transactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	transaction, err := getTransaction(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Update transaction
// @Description	Updates a transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		string				true	"ID formatted as string"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	transaction, err := getTransaction(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	var editable TransactionEditable
	editable.AccountID.UUID = transaction.AccountID
	editable.Type = transaction.Type
	editable.Amount = transaction.Amount
	editable.Date = transaction.Date
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	if !editable.Type.Valid() {
		s := models.ErrTransactionTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	if editable.CategoryID != nil {
		if _, err := userCategory(c, editable.CategoryID.UUID); err != nil {
			s := err.Error()
			c.JSON(status(err), TransactionResponse{Error: &s})
			return
		}
	}

	err = models.DB.Model(&transaction).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	transaction, err := getTransaction(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&transaction).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func getTransaction(c *gin.Context) (models.Transaction, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.Transaction{}, httputil.ErrInvalidBody
	}

	var transaction models.Transaction
	err := models.DB.
		Joins("JOIN accounts ON accounts.id = transactions.account_id AND accounts.deleted_at IS NULL").
		Where("accounts.user_id = ?", currentUser(c)).
		First(&transaction, "transactions.id = ?", uri.ID.UUID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Transaction{}, models.ErrResourceNotFound
	}

	return transaction, err
}
