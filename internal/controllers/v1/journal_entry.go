package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kasbuku/backend/internal/httputil"
	"github.com/kasbuku/backend/internal/ledger"
	"github.com/kasbuku/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterJournalEntryRoutes registers the routes for journal entries
// with the RouterGroup that is passed.
func RegisterJournalEntryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsJournalEntryList)
		r.GET("", GetJournalEntries)
		r.POST("", CreateJournalEntry)
	}

	// JournalEntry with ID
	{
		r.OPTIONS("/:id", OptionsJournalEntryDetail)
		r.GET("/:id", GetJournalEntry)
		r.PATCH("/:id", UpdateJournalEntry)
		r.DELETE("/:id", DeleteJournalEntry)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			JournalEntries
// @Success		204
// @Router			/v1/journal-entries [options]
func OptionsJournalEntryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			JournalEntries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/journal-entries/{id} [options]
func OptionsJournalEntryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.JournalEntry{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Post journal entry
// @Description	Posts a balanced journal entry. Debits and credits must balance, otherwise nothing is written.
// @Tags			JournalEntries
// @Produce		json
// @Success		201		{object}	JournalEntryResponse
// @Failure		400		{object}	JournalEntryResponse
// @Failure		404		{object}	JournalEntryResponse
// @Failure		500		{object}	JournalEntryResponse
// @Param			entry	body		JournalEntryEditable	true	"JournalEntry"
// @Router			/v1/journal-entries [post]
func CreateJournalEntry(c *gin.Context) {
	var editable JournalEntryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), JournalEntryResponse{
			Error: &e,
		})
		return
	}

	if editable.Lines == nil {
		e := errNoEntryLines.Error()
		c.JSON(http.StatusBadRequest, JournalEntryResponse{
			Error: &e,
		})
		return
	}

	entry, err := ledger.PostEntry(models.DB, editable.Description, editable.Date, models.ReferenceManual, nil, editable.lines())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), JournalEntryResponse{
			Error: &e,
		})
		return
	}

	data := newJournalEntry(entry)
	c.JSON(http.StatusCreated, JournalEntryResponse{Data: &data})
}

// @Summary		Get journal entries
// @Description	Returns a list of journal entries
// @Tags			JournalEntries
// @Produce		json
// @Success		200	{object}	JournalEntryListResponse
// @Failure		400	{object}	JournalEntryListResponse
// @Failure		500	{object}	JournalEntryListResponse
// @Router			/v1/journal-entries [get]
// @Param			referenceType	query	string	false	"Filter by reference type"
// @Param			description		query	string	false	"Filter by description"
// @Param			offset			query	uint	false	"The offset of the first JournalEntry returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of JournalEntries to return. Defaults to 50."
func GetJournalEntries(c *gin.Context) {
	var filter JournalEntryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Preload("Items").
		Order("date DESC").
		Where(filter.model(), queryFields...)

	if slices.Contains(setFields, "Description") {
		q = q.Where("description LIKE ?", "%"+filter.Description+"%")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 JournalEntries and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var entries []models.JournalEntry
	err := q.Find(&entries).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JournalEntryListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), JournalEntryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]JournalEntry, 0, len(entries))
	for _, entry := range entries {
		data = append(data, newJournalEntry(entry))
	}

	c.JSON(http.StatusOK, JournalEntryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get journal entry
// @Description	Returns a specific journal entry with its lines
// @Tags			JournalEntries
// @Produce		json
// @Success		200	{object}	JournalEntryResponse
// @Failure		400	{object}	JournalEntryResponse
// @Failure		404	{object}	JournalEntryResponse
// @Failure		500	{object}	JournalEntryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/journal-entries/{id} [get]
func GetJournalEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JournalEntryResponse{
			Error: &s,
		})
		return
	}

	var entry models.JournalEntry
	err = models.DB.Preload("Items").First(&entry, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JournalEntryResponse{
			Error: &s,
		})
		return
	}

	data := newJournalEntry(entry)
	c.JSON(http.StatusOK, JournalEntryResponse{Data: &data})
}

// @Summary		Update journal entry
// @Description	Replaces the description, date and lines of a journal entry. This is an administrative correction: the balances of all accounts touched before and after the update are recalculated.
// @Tags			JournalEntries
// @Accept			json
// @Produce		json
// @Success		200		{object}	JournalEntryResponse
// @Failure		400		{object}	JournalEntryResponse
// @Failure		404		{object}	JournalEntryResponse
// @Failure		500		{object}	JournalEntryResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			entry	body		JournalEntryEditable	true	"JournalEntry"
// @Router			/v1/journal-entries/{id} [patch]
func UpdateJournalEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JournalEntryResponse{
			Error: &s,
		})
		return
	}

	var editable JournalEntryEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), JournalEntryResponse{
			Error: &e,
		})
		return
	}

	if editable.Lines == nil {
		e := errNoEntryLines.Error()
		c.JSON(http.StatusBadRequest, JournalEntryResponse{
			Error: &e,
		})
		return
	}

	entry, err := ledger.UpdateEntry(models.DB, uri.ID.UUID, editable.Description, editable.Date, editable.lines())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JournalEntryResponse{
			Error: &s,
		})
		return
	}

	data := newJournalEntry(entry)
	c.JSON(http.StatusOK, JournalEntryResponse{Data: &data})
}

// @Summary		Delete journal entry
// @Description	Deletes a journal entry and its lines and recalculates the balances of all touched accounts
// @Tags			JournalEntries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/journal-entries/{id} [delete]
func DeleteJournalEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = ledger.DeleteEntry(models.DB, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
