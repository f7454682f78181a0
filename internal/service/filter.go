package service

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeFilter restricts a list query. All conditions are optional and
// combine with AND; the zero value matches every recipe.
type RecipeFilter struct {
	// Keyword matches the title as a case-insensitive substring.
	Keyword string
	// Category restricts to an exact category match.
	Category string
	// OwnerID restricts to recipes created by that user.
	OwnerID *uuid.UUID
}

// Apply attaches the filter's conditions to a query. Results keep the
// store-native order; there is no pagination.
func (f RecipeFilter) Apply(query *gorm.DB) *gorm.DB {
	if f.Keyword != "" {
		like := "%" + strings.ToLower(f.Keyword) + "%"
		query = query.Where("LOWER(title) LIKE ?", like)
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.OwnerID != nil {
		query = query.Where("owner_id = ?", *f.OwnerID)
	}
	return query
}
