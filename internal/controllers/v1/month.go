package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/budgeting"
	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthResponse wraps the budget summary for one month.
type MonthResponse struct {
	Data  *budgeting.Summary `json:"data"`  // The summary for the month
	Error *string            `json:"error"` // The error, if any occurred
}

// AllocationEditable sets the allocation of one category for the month.
type AllocationEditable struct {
	CategoryID uuid.UUID       `json:"categoryId" binding:"required" example:"4b5b9c2a-3f0e-4f29-b2c5-0d9f1e1d8f30"` // The category to allocate for
	Amount     decimal.Decimal `json:"amount" example:"180.50"`                                                      // The amount to allocate, any sign allowed
}

// CopyMode configures what POST /months copies into the month.
type CopyMode struct {
	Mode string `json:"mode" example:"copy"` // Must be "copy": copy the previous month's allocations
}

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMonth)
		r.GET("", GetMonth)
		r.POST("", CopyMonth)
		r.PATCH("", SetAllocation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGetPostPatch(c)
}

// @Summary		Get the budget summary for a month
// @Description	Returns budgeted amount, activity and rolling available balance for every category, plus the to-be-budgeted amount.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	month, err := parseMonthQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	summarize(c, month)
}

// @Summary		Copy the previous month's allocations
// @Description	Copies every allocation of the previous month into this month, overwriting existing ones, then returns the recomputed summary.
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	query		string		true	"The month in YYYY-MM format"
// @Param			mode	body		CopyMode	true	"Copy mode"
// @Router			/v1/months [post]
func CopyMonth(c *gin.Context) {
	month, err := parseMonthQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	var data CopyMode
	err = httputil.BindData(c, &data)
	if err == nil && data.Mode != "copy" {
		err = errCopyModeInvalid
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	budget, err := budgetForMonth(c, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	var previous models.Budget
	err = models.DB.
		Where(&models.Budget{UserID: currentUser(c), Month: month.AddDate(0, -1)}).
		First(&previous).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	// Nothing to copy when the previous month was never budgeted
	if err == nil {
		var allocations []models.CategoryAllocation
		err = models.DB.
			Where(&models.CategoryAllocation{BudgetID: previous.ID}).
			Find(&allocations).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), MonthResponse{Error: &s})
			return
		}

		for _, allocation := range allocations {
			err = models.DB.
				Where(models.CategoryAllocation{
					BudgetID:   budget.ID,
					CategoryID: allocation.CategoryID,
				}).
				Assign(map[string]interface{}{"amount": allocation.Amount}).
				FirstOrCreate(&models.CategoryAllocation{}).Error
			if err != nil {
				s := err.Error()
				c.JSON(status(err), MonthResponse{Error: &s})
				return
			}
		}
	}

	summarize(c, month)
}

// @Summary		Set the allocation for a category
// @Description	Creates or updates the allocation of one category for this month, then returns the recomputed summary.
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		200			{object}	MonthResponse
// @Failure		400			{object}	MonthResponse
// @Failure		404			{object}	MonthResponse
// @Failure		500			{object}	MonthResponse
// @Param			month		query		string				true	"The month in YYYY-MM format"
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v1/months [patch]
func SetAllocation(c *gin.Context) {
	month, err := parseMonthQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	var data AllocationEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	budget, err := budgetForMonth(c, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	err = models.DB.
		Where(models.CategoryAllocation{
			BudgetID:   budget.ID,
			CategoryID: data.CategoryID,
		}).
		Assign(map[string]interface{}{"amount": data.Amount}).
		FirstOrCreate(&models.CategoryAllocation{}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	summarize(c, month)
}

// summarize runs the budgeting engine and writes the summary response.
func summarize(c *gin.Context, month types.Month) {
	year, m := month.YearMonth()

	summary, err := budgeting.NewService(models.DB).Summary(c.Request.Context(), currentUser(c), int(m), year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &summary})
}

// budgetForMonth resolves the requesting user's budget for the month.
func budgetForMonth(c *gin.Context, month types.Month) (models.Budget, error) {
	var budget models.Budget
	err := models.DB.
		Where(&models.Budget{UserID: currentUser(c), Month: month}).
		First(&budget).Error
	if err == gorm.ErrRecordNotFound {
		return models.Budget{}, budgeting.ErrNoBudget
	}

	return budget, err
}

// parseMonthQuery parses the month query parameter.
func parseMonthQuery(c *gin.Context) (types.Month, error) {
	var query QueryMonth
	if err := c.BindQuery(&query); err != nil {
		return types.Month{}, errMonthNotSetInQuery
	}

	if query.Month.IsZero() {
		return types.Month{}, errMonthNotSetInQuery
	}

	return types.MonthOf(query.Month), nil
}
