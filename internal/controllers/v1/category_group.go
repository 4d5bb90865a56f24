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

// CategoryGroupEditable represents all user configurable parameters
type CategoryGroupEditable struct {
	Name      string `json:"name" example:"Monthly bills" default:""`  // Name of the group
	SortOrder int    `json:"sortOrder" example:"10" default:"0"`       // Position of the group in summaries
	IsSystem  bool   `json:"isSystem" example:"false" default:"false"` // Is the group managed by the backend?
}

func (editable CategoryGroupEditable) model(userID uuid.UUID) models.CategoryGroup {
	return models.CategoryGroup{
		UserID:    userID,
		Name:      editable.Name,
		SortOrder: editable.SortOrder,
		IsSystem:  editable.IsSystem,
	}
}

type CategoryGroupResponse struct {
	Data  *models.CategoryGroup `json:"data"`  // Data for the group
	Error *string               `json:"error"` // The error, if any occurred
}

type CategoryGroupListResponse struct {
	Data  []models.CategoryGroup `json:"data"`  // List of groups
	Error *string                `json:"error"` // The error, if any occurred
}

// RegisterCategoryGroupRoutes registers the routes for category groups
// with the RouterGroup that is passed.
func RegisterCategoryGroupRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategoryGroupList)
		r.GET("", GetCategoryGroups)
		r.POST("", CreateCategoryGroup)
	}
	{
		r.OPTIONS("/:id", OptionsCategoryGroupDetail)
		r.GET("/:id", GetCategoryGroup)
		r.PATCH("/:id", UpdateCategoryGroup)
		r.DELETE("/:id", DeleteCategoryGroup)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryGroups
// @Success		204
// @Router			/v1/category-groups [options]
func OptionsCategoryGroupList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryGroups
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/category-groups/{id} [options]
func OptionsCategoryGroupDetail(c *gin.Context) {
	if _, err := getCategoryGroup(c); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create category group
// @Description	Creates a new category group
// @Tags			CategoryGroups
// @Accept			json
// @Produce		json
// @Success		201		{object}	CategoryGroupResponse
// @Failure		400		{object}	CategoryGroupResponse
// @Failure		500		{object}	CategoryGroupResponse
// @Param			group	body		CategoryGroupEditable	true	"Category group"
// @Router			/v1/category-groups [post]
func CreateCategoryGroup(c *gin.Context) {
	var editable CategoryGroupEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{Error: &s})
		return
	}

	group := editable.model(currentUser(c))
	if err := models.DB.Create(&group).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, CategoryGroupResponse{Data: &group})
}

// @Summary		List category groups
// @Description	Returns the category groups of the user, in summary order
// @Tags			CategoryGroups
// @Produce		json
// @Success		200	{object}	CategoryGroupListResponse
// @Failure		500	{object}	CategoryGroupListResponse
// @Router			/v1/category-groups [get]
func GetCategoryGroups(c *gin.Context) {
	var groups []models.CategoryGroup
	err := models.DB.
		Where(&models.CategoryGroup{UserID: currentUser(c)}).
		Order("sort_order ASC").
		Order("name ASC").
		Find(&groups).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, CategoryGroupListResponse{Data: groups})
}

// @Summary		Get category group
// @Description	Returns a specific category group
// @Tags			CategoryGroups
// @Produce		json
// @Success		200	{object}	CategoryGroupResponse
// @Failure		400	{object}	CategoryGroupResponse
// @Failure		404	{object}	CategoryGroupResponse
// @Failure		500	{object}	CategoryGroupResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/category-groups/{id} [get]
func GetCategoryGroup(c *gin.Context) {
	group, err := getCategoryGroup(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, CategoryGroupResponse{Data: &group})
}

// @Summary		Update category group
// @Description	Updates a category group. Only values to be updated need to be specified.
// @Tags			CategoryGroups
// @Accept			json
// @Produce		json
// @Success		200		{object}	CategoryGroupResponse
// @Failure		400		{object}	CategoryGroupResponse
// @Failure		404		{object}	CategoryGroupResponse
// @Failure		500		{object}	CategoryGroupResponse
// @Param			id		path		string					true	"ID formatted as string"
// @Param			group	body		CategoryGroupEditable	true	"Category group"
// @Router			/v1/category-groups/{id} [patch]
func UpdateCategoryGroup(c *gin.Context) {
	group, err := getCategoryGroup(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryGroupEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{Error: &s})
		return
	}

	var editable CategoryGroupEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{Error: &s})
		return
	}

	err = models.DB.Model(&group).Select("", updateFields...).Updates(editable.model(group.UserID)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, CategoryGroupResponse{Data: &group})
}

// @Summary		Delete category group
// @Description	Deletes a category group
// @Tags			CategoryGroups
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/category-groups/{id} [delete]
func DeleteCategoryGroup(c *gin.Context) {
	group, err := getCategoryGroup(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&group).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func getCategoryGroup(c *gin.Context) (models.CategoryGroup, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.CategoryGroup{}, httputil.ErrInvalidBody
	}

	var group models.CategoryGroup
	err := models.DB.
		Where(&models.CategoryGroup{UserID: currentUser(c)}).
		First(&group, uri.ID.UUID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CategoryGroup{}, models.ErrResourceNotFound
	}

	return group, err
}
