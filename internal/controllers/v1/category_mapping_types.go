package v1

import (
	"github.com/google/uuid"
	"github.com/kasbuku/backend/internal/models"
)

type CategoryMappingEditable struct {
	Category  string    `json:"category" example:"Maintenance"`                               // The free-text category the mapping is for
	AccountID uuid.UUID `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`     // Account the category resolves to
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryMappingEditable) model() models.CategoryMapping {
	return models.CategoryMapping{
		Category:  editable.Category,
		AccountID: editable.AccountID,
	}
}

// CategoryMapping is the representation of a CategoryMapping in API v1.
type CategoryMapping struct {
	models.DefaultModel
	CategoryMappingEditable
}

// newCategoryMapping returns the API v1 representation of the resource
func newCategoryMapping(model models.CategoryMapping) CategoryMapping {
	return CategoryMapping{
		DefaultModel: model.DefaultModel,
		CategoryMappingEditable: CategoryMappingEditable{
			Category:  model.Category,
			AccountID: model.AccountID,
		},
	}
}

type CategoryMappingResponse struct {
	Data  *CategoryMapping `json:"data"`                                                          // The CategoryMapping data
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryMappingListResponse struct {
	Data  []CategoryMapping `json:"data"`                                                          // List of category mappings
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryMappingCreateResponse struct {
	Error *string                   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryMappingResponse `json:"data"`                                                          // List of created CategoryMappings
}

func (m *CategoryMappingCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	m.Data = append(m.Data, CategoryMappingResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		currentStatus = newStatus
	}

	return currentStatus
}
