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

// GoalEditable represents all user configurable parameters
type GoalEditable struct {
	CategoryID    app_uuid.UUID       `json:"categoryId" binding:"required" example:"f51287f6-ee26-4be2-b6e8-2022e06e2bdb"` // ID of the category the goal is set for
	GoalType      models.GoalType     `json:"goalType" binding:"required" example:"monthly_savings"`                        // Type of the goal
	TargetAmount  decimal.NullDecimal `json:"targetAmount" example:"1200.00"`                                               // Balance the category should reach
	TargetDate    *time.Time          `json:"targetDate" example:"2027-06-01T00:00:00Z"`                                    // Date the target balance should be reached by
	MonthlyAmount decimal.NullDecimal `json:"monthlyAmount" example:"100.00"`                                               // Amount to allocate or spend each month
}

func (editable GoalEditable) model() models.CategoryGoal {
	return models.CategoryGoal{
		CategoryID:    editable.CategoryID.UUID,
		GoalType:      editable.GoalType,
		TargetAmount:  editable.TargetAmount,
		TargetDate:    editable.TargetDate,
		MonthlyAmount: editable.MonthlyAmount,
	}
}

type GoalResponse struct {
	Data  *models.CategoryGoal `json:"data"`  // Data for the goal
	Error *string              `json:"error"` // The error, if any occurred
}

type GoalListResponse struct {
	Data  []models.CategoryGoal `json:"data"`  // List of goals
	Error *string               `json:"error"` // The error, if any occurred
}

// RegisterGoalRoutes registers the routes for category goals with
// the RouterGroup that is passed.
func RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsGoalList)
		r.GET("", GetGoals)
		r.POST("", CreateGoal)
	}
	{
		r.OPTIONS("/:id", OptionsGoalDetail)
		r.GET("/:id", GetGoal)
		r.PATCH("/:id", UpdateGoal)
		r.DELETE("/:id", DeleteGoal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func OptionsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/goals/{id} [options]
func OptionsGoalDetail(c *gin.Context) {
	if _, err := getGoal(c); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create goal
// @Description	Creates a new goal for a category. A category can have at most one goal.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals [post]
func CreateGoal(c *gin.Context) {
	var editable GoalEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	if !editable.GoalType.Valid() {
		s := models.ErrGoalTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{Error: &s})
		return
	}

	// The category has to belong to the requesting user
	if _, err := userCategory(c, editable.CategoryID.UUID); err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	goal := editable.model()
	if err := models.DB.Create(&goal).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, GoalResponse{Data: &goal})
}

// @Summary		List goals
// @Description	Returns the goals for all categories of the user
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Failure		500	{object}	GoalListResponse
// @Router			/v1/goals [get]
func GetGoals(c *gin.Context) {
	var goals []models.CategoryGoal
	err := models.DB.
		Joins("JOIN categories ON categories.id = category_goals.category_id AND categories.deleted_at IS NULL").
		Joins("JOIN category_groups ON category_groups.id = categories.group_id AND category_groups.deleted_at IS NULL").
		Where("category_groups.user_id = ?", currentUser(c)).
		Find(&goals).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: goals})
}

// @Summary		Get goal
// @Description	Returns a specific goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/goals/{id} [get]
func GetGoal(c *gin.Context) {
	goal, err := getGoal(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: &goal})
}

// @Summary		Update goal
// @Description	Updates a goal. Only values to be updated need to be specified.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals/{id} [patch]
func UpdateGoal(c *gin.Context) {
	goal, err := getGoal(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, GoalEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	var editable GoalEditable
	editable.CategoryID.UUID = goal.CategoryID
	editable.GoalType = goal.GoalType
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	if !editable.GoalType.Valid() {
		s := models.ErrGoalTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{Error: &s})
		return
	}

	err = models.DB.Model(&goal).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: &goal})
}

// @Summary		Delete goal
// @Description	Deletes a goal
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/goals/{id} [delete]
func DeleteGoal(c *gin.Context) {
	goal, err := getGoal(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&goal).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func getGoal(c *gin.Context) (models.CategoryGoal, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.CategoryGoal{}, httputil.ErrInvalidBody
	}

	var goal models.CategoryGoal
	err := models.DB.
		Joins("JOIN categories ON categories.id = category_goals.category_id AND categories.deleted_at IS NULL").
		Joins("JOIN category_groups ON category_groups.id = categories.group_id AND category_groups.deleted_at IS NULL").
		Where("category_groups.user_id = ?", currentUser(c)).
		First(&goal, "category_goals.id = ?", uri.ID.UUID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CategoryGoal{}, models.ErrResourceNotFound
	}

	return goal, err
}
