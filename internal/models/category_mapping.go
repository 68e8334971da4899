package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryMapping is a persisted association from a free-text transaction
// category to an account.
//
// A mapping is created the first time a category is resolved with an
// explicit manual mapping and reused on every later resolution of the
// same category.
type CategoryMapping struct {
	DefaultModel
	Category  string    `gorm:"uniqueIndex"`
	AccountID uuid.UUID `gorm:"index"`
	Account   Account   `json:"-"`
}

// BeforeSave trims whitespace from the category.
func (m *CategoryMapping) BeforeSave(_ *gorm.DB) error {
	m.Category = strings.TrimSpace(m.Category)
	return nil
}

// SaveCategoryMapping persists a mapping for a category if none exists yet.
//
// Two concurrent first-time resolutions of the same category must not
// conflict, so the insert ignores an existing row for the category
// instead of failing on the unique index.
func SaveCategoryMapping(db *gorm.DB, category string, accountID uuid.UUID) error {
	mapping := CategoryMapping{
		Category:  strings.TrimSpace(category),
		AccountID: accountID,
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoNothing: true,
	}).Create(&mapping).Error
}

// CategoryMappingFor returns the persisted mapping for a category.
func CategoryMappingFor(db *gorm.DB, category string) (CategoryMapping, error) {
	var mapping CategoryMapping

	err := db.Where(&CategoryMapping{Category: strings.TrimSpace(category)}).First(&mapping).Error
	if err != nil {
		return CategoryMapping{}, err
	}

	return mapping, nil
}
