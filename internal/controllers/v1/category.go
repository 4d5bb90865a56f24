package v1

import (
	"errors"
	"net/http"

	app_uuid "github.com/centsible/backend/internal/uuid"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	GroupID  app_uuid.UUID `json:"groupId" binding:"required" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the group the category belongs to
	Name     string        `json:"name" example:"Groceries" default:""`                                       // Name of the category
	Note     string        `json:"note" example:"Supermarket and farmers market" default:""`                  // Any notes for the category
	IsHidden bool          `json:"isHidden" example:"false" default:"false"`                                  // Is the category hidden from summaries?
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		GroupID:  editable.GroupID.UUID,
		Name:     editable.Name,
		Note:     editable.Note,
		IsHidden: editable.IsHidden,
	}
}

// CategoryQueryFilter contains the fields categories can be filtered with
type CategoryQueryFilter struct {
	GroupID string `form:"group" filterField:"false"` // By group ID
	Name    string `form:"name"`                      // By name
	Hidden  bool   `form:"hidden"`                    // Is the category hidden?
}

type CategoryResponse struct {
	Data  *models.Category `json:"data"`  // Data for the category
	Error *string          `json:"error"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []models.Category `json:"data"`  // List of categories
	Error *string           `json:"error"` // The error, if any occurred
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.PATCH("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	if _, err := getCategory(c); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create category
// @Description	Creates a new category in a category group
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	// The group has to belong to the requesting user
	var group models.CategoryGroup
	err := models.DB.
		Where(&models.CategoryGroup{UserID: currentUser(c)}).
		First(&group, editable.GroupID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	category := editable.model()
	if err := models.DB.Create(&category).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &category})
}

// @Summary		List categories
// @Description	Returns a list of categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Param			group	query	string	false	"Filter by group ID"
// @Param			name	query	string	false	"Filter by name"
// @Param			hidden	query	bool	false	"Is the category hidden?"
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	_ = c.Bind(&filter)

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	query := models.DB.
		Joins("JOIN category_groups ON category_groups.id = categories.group_id AND category_groups.deleted_at IS NULL").
		Where("category_groups.user_id = ?", currentUser(c))

	if filter.GroupID != "" {
		query = query.Where("categories.group_id = ?", filter.GroupID)
	}

	var categories []models.Category
	err := query.
		Where(&models.Category{
			Name:     filter.Name,
			IsHidden: filter.Hidden,
		}, queryFields...).
		Order("categories.name ASC").
		Preload("Group").
		Preload("Goal").
		Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Failure		500	{object}	CategoryResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	category, err := getCategory(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// @Summary		Update category
// @Description	Updates a category. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			id			path		string				true	"ID formatted as string"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	category, err := getCategory(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	var editable CategoryEditable
	editable.GroupID.UUID = category.GroupID
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	err = models.DB.Model(&category).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// @Summary		Delete category
// @Description	Deletes a category
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	category, err := getCategory(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&category).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// userCategory returns the category with the ID if it belongs to the
// requesting user.
func userCategory(c *gin.Context, id uuid.UUID) (models.Category, error) {
	var category models.Category
	err := models.DB.
		Joins("JOIN category_groups ON category_groups.id = categories.group_id AND category_groups.deleted_at IS NULL").
		Where("category_groups.user_id = ?", currentUser(c)).
		First(&category, "categories.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Category{}, models.ErrResourceNotFound
	}

	return category, err
}

func getCategory(c *gin.Context) (models.Category, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.Category{}, httputil.ErrInvalidBody
	}

	var category models.Category
	err := models.DB.
		Joins("JOIN category_groups ON category_groups.id = categories.group_id AND category_groups.deleted_at IS NULL").
		Where("category_groups.user_id = ?", currentUser(c)).
		Preload("Group").
		Preload("Goal").
		First(&category, "categories.id = ?", uri.ID.UUID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Category{}, models.ErrResourceNotFound
	}

	return category, err
}
