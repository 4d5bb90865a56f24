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

// PayeeEditable represents all user configurable parameters
type PayeeEditable struct {
	Name string `json:"name" example:"Grocery store" default:""`     // Name of the payee
	Note string `json:"note" example:"The one downtown" default:""` // Any notes for the payee
}

func (editable PayeeEditable) model(userID uuid.UUID) models.Payee {
	return models.Payee{
		UserID: userID,
		Name:   editable.Name,
		Note:   editable.Note,
	}
}

// PayeeQueryFilter contains the fields payees can be filtered with
type PayeeQueryFilter struct {
	Name string `form:"name"` // By name
}

type PayeeResponse struct {
	Data  *models.Payee `json:"data"`  // Data for the payee
	Error *string       `json:"error"` // The error, if any occurred
}

type PayeeListResponse struct {
	Data  []models.Payee `json:"data"`  // List of payees
	Error *string        `json:"error"` // The error, if any occurred
}

// RegisterPayeeRoutes registers the routes for payees with
// the RouterGroup that is passed.
func RegisterPayeeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsPayeeList)
		r.GET("", GetPayees)
		r.POST("", CreatePayee)
	}
	{
		r.OPTIONS("/:id", OptionsPayeeDetail)
		r.GET("/:id", GetPayee)
		r.PATCH("/:id", UpdatePayee)
		r.DELETE("/:id", DeletePayee)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payees
// @Success		204
// @Router			/v1/payees [options]
func OptionsPayeeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payees
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/payees/{id} [options]
func OptionsPayeeDetail(c *gin.Context) {
	if _, err := getPayee(c); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create payee
// @Description	Creates a new payee
// @Tags			Payees
// @Accept			json
// @Produce		json
// @Success		201		{object}	PayeeResponse
// @Failure		400		{object}	PayeeResponse
// @Failure		500		{object}	PayeeResponse
// @Param			payee	body		PayeeEditable	true	"Payee"
// @Router			/v1/payees [post]
func CreatePayee(c *gin.Context) {
	var editable PayeeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), PayeeResponse{Error: &s})
		return
	}

	payee := editable.model(currentUser(c))
	if err := models.DB.Create(&payee).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), PayeeResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, PayeeResponse{Data: &payee})
}

// @Summary		List payees
// @Description	Returns a list of payees
// @Tags			Payees
// @Produce		json
// @Success		200	{object}	PayeeListResponse
// @Failure		500	{object}	PayeeListResponse
// @Param			name	query	string	false	"Filter by name"
// @Router			/v1/payees [get]
func GetPayees(c *gin.Context) {
	var filter PayeeQueryFilter
	_ = c.Bind(&filter)

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	var payees []models.Payee
	err := models.DB.
		Where(&models.Payee{UserID: currentUser(c)}).
		Where(&models.Payee{Name: filter.Name}, queryFields...).
		Order("name ASC").
		Find(&payees).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayeeListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, PayeeListResponse{Data: payees})
}

// @Summary		Get payee
// @Description	Returns a specific payee
// @Tags			Payees
// @Produce		json
// @Success		200	{object}	PayeeResponse
// @Failure		400	{object}	PayeeResponse
// @Failure		404	{object}	PayeeResponse
// @Failure		500	{object}	PayeeResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/payees/{id} [get]
func GetPayee(c *gin.Context) {
	payee, err := getPayee(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayeeResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, PayeeResponse{Data: &payee})
}

// @Summary		Update payee
// @Description	Updates a payee. Only values to be updated need to be specified.
// @Tags			Payees
// @Accept			json
// @Produce		json
// @Success		200		{object}	PayeeResponse
// @Failure		400		{object}	PayeeResponse
// @Failure		404		{object}	PayeeResponse
// @Failure		500		{object}	PayeeResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			payee	body		PayeeEditable	true	"Payee"
// @Router			/v1/payees/{id} [patch]
func UpdatePayee(c *gin.Context) {
	payee, err := getPayee(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayeeResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PayeeEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayeeResponse{Error: &s})
		return
	}

	var editable PayeeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), PayeeResponse{Error: &s})
		return
	}

	err = models.DB.Model(&payee).Select("", updateFields...).Updates(editable.model(payee.UserID)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayeeResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, PayeeResponse{Data: &payee})
}

// @Summary		Delete payee
// @Description	Deletes a payee
// @Tags			Payees
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/payees/{id} [delete]
func DeletePayee(c *gin.Context) {
	payee, err := getPayee(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&payee).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func getPayee(c *gin.Context) (models.Payee, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.Payee{}, httputil.ErrInvalidBody
	}

	var payee models.Payee
	err := models.DB.
		Where(&models.Payee{UserID: currentUser(c)}).
		First(&payee, uri.ID.UUID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Payee{}, models.ErrResourceNotFound
	}

	return payee, err
}
