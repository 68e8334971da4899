package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kasbuku/backend/internal/httputil"
	"github.com/kasbuku/backend/internal/models"
)

// RegisterCategoryMappingRoutes registers the routes for category
// mappings with the RouterGroup that is passed.
func RegisterCategoryMappingRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryMappingList)
		r.GET("", GetCategoryMappings)
		r.POST("", CreateCategoryMappings)
	}

	// CategoryMapping with ID
	{
		r.OPTIONS("/:id", OptionsCategoryMappingDetail)
		r.GET("/:id", GetCategoryMapping)
		r.DELETE("/:id", DeleteCategoryMapping)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryMappings
// @Success		204
// @Router			/v1/category-mappings [options]
func OptionsCategoryMappingList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryMappings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-mappings/{id} [options]
func OptionsCategoryMappingDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.CategoryMapping{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create category mappings
// @Description	Creates new category to account mappings
// @Tags			CategoryMappings
// @Produce		json
// @Success		201			{object}	CategoryMappingCreateResponse
// @Failure		400			{object}	CategoryMappingCreateResponse
// @Failure		404			{object}	CategoryMappingCreateResponse
// @Failure		500			{object}	CategoryMappingCreateResponse
// @Param			mappings	body		[]CategoryMappingEditable	true	"CategoryMappings"
// @Router			/v1/category-mappings [post]
func CreateCategoryMappings(c *gin.Context) {
	var editables []CategoryMappingEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryMappingCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryMappingCreateResponse{}

	for _, editable := range editables {
		mapping := editable.model()

		// The target account has to exist
		err = models.DB.First(&models.Account{}, mapping.AccountID).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Create(&mapping).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCategoryMapping(mapping)
		r.Data = append(r.Data, CategoryMappingResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get category mappings
// @Description	Returns a list of category mappings
// @Tags			CategoryMappings
// @Produce		json
// @Success		200	{object}	CategoryMappingListResponse
// @Failure		500	{object}	CategoryMappingListResponse
// @Router			/v1/category-mappings [get]
func GetCategoryMappings(c *gin.Context) {
	var mappings []models.CategoryMapping
	err := models.DB.Order("category ASC").Find(&mappings).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryMappingListResponse{
			Error: &s,
		})
		return
	}

	data := make([]CategoryMapping, 0, len(mappings))
	for _, mapping := range mappings {
		data = append(data, newCategoryMapping(mapping))
	}

	c.JSON(http.StatusOK, CategoryMappingListResponse{Data: data})
}

// @Summary		Get category mapping
// @Description	Returns a specific category mapping
// @Tags			CategoryMappings
// @Produce		json
// @Success		200	{object}	CategoryMappingResponse
// @Failure		400	{object}	CategoryMappingResponse
// @Failure		404	{object}	CategoryMappingResponse
// @Failure		500	{object}	CategoryMappingResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-mappings/{id} [get]
func GetCategoryMapping(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryMappingResponse{
			Error: &s,
		})
		return
	}

	var mapping models.CategoryMapping
	err = models.DB.First(&mapping, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryMappingResponse{
			Error: &s,
		})
		return
	}

	data := newCategoryMapping(mapping)
	c.JSON(http.StatusOK, CategoryMappingResponse{Data: &data})
}

// @Summary		Delete category mapping
// @Description	Deletes a category mapping. The category resolves via the defaults again, or not at all, until a new mapping is learned.
// @Tags			CategoryMappings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-mappings/{id} [delete]
func DeleteCategoryMapping(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var mapping models.CategoryMapping
	err = models.DB.First(&mapping, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&mapping).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
