package v1

import (
	"errors"
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Month types.Month `json:"month" binding:"required" example:"2024-03-01T00:00:00.000000Z"` // The month to start budgeting
}

type BudgetListResponse struct {
	Data  []models.Budget `json:"data"`  // List of budgets
	Error *string         `json:"error"` // The error, if any occurred
}

// RegisterBudgetRoutes registers the routes for Budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		List budgets
// @Description	Returns the budgeting months of the user
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	var budgets []models.Budget
	err := models.DB.
		Where(&models.Budget{UserID: currentUser(c)}).
		Order("month ASC").
		Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: budgets})
}

// @Summary		Create budget
// @Description	Creates the budget for a month, seeding a zero allocation for every visible category, and returns the summary for it.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func CreateBudget(c *gin.Context) {
	var data BudgetEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	userID := currentUser(c)

	err = models.DB.
		Where(&models.Budget{UserID: userID, Month: data.Month}).
		First(&models.Budget{}).Error
	if err == nil {
		s := models.ErrBudgetExists.Error()
		c.JSON(status(models.ErrBudgetExists), MonthResponse{Error: &s})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	budget := models.Budget{UserID: userID, Month: data.Month}
	err = models.DB.Create(&budget).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	// Seed a zero allocation for every visible category so the month
	// starts out fully listed.
	var categories []models.Category
	err = models.DB.
		Joins("JOIN category_groups ON category_groups.id = categories.group_id AND category_groups.deleted_at IS NULL").
		Where("category_groups.user_id = ?", userID).
		Where("categories.is_hidden = ?", false).
		Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	for _, category := range categories {
		err = models.DB.Create(&models.CategoryAllocation{
			BudgetID:   budget.ID,
			CategoryID: category.ID,
			Amount:     decimal.Zero,
		}).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), MonthResponse{Error: &s})
			return
		}
	}

	summarize(c, data.Month)
}
