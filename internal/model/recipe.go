package model

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/resepku/backend/internal/types"
)

// Recipe categories form a closed set; any other value is rejected at
// validation time.
const (
	CategoryDrink   = "Drink"
	CategoryFood    = "Food"
	CategoryDessert = "Dessert"
	CategoryLunch   = "Lunch"
	CategoryVegan   = "Vegan"
)

// Categories lists every permitted recipe category.
var Categories = []string{
	CategoryDrink,
	CategoryFood,
	CategoryDessert,
	CategoryLunch,
	CategoryVegan,
}

// ValidCategory reports whether c is a member of the closed category set.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// NutritionInfo is stored as a single JSONB document on the recipe.
// Sub-fields omitted at write time default to 0.
type NutritionInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
}

// Value implements the driver.Valuer interface
func (n NutritionInfo) Value() (driver.Value, error) {
	return json.Marshal(n)
}

// Scan implements the sql.Scanner interface
func (n *NutritionInfo) Scan(value interface{}) error {
	if value == nil {
		*n = NutritionInfo{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, n)
}

// Recipe is the sole persisted resource. ID and OwnerID are assigned at
// creation and never change afterwards; deletion is permanent.
type Recipe struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Description string           `gorm:"type:text;not null" json:"description"`
	Category    string           `gorm:"size:50;not null" json:"category"`
	Ingredients JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps       JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	Image       string           `gorm:"size:255" json:"image"`
	VideoURL    string           `gorm:"size:255" json:"video_url"`
	Nutrition   NutritionInfo    `gorm:"type:jsonb" json:"nutrition_info"`
	OwnerID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner       *User            `gorm:"foreignKey:OwnerID" json:"-"`
}

// BeforeCreate assigns the recipe id when the store has not
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ValidateCreate checks a create payload against the entity invariants:
// title, description and category must be non-blank, category must belong to
// the closed set, and ingredients and steps must each carry at least one
// non-blank entry.
func ValidateCreate(in *types.CreateRecipeInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return missingField("title")
	}
	if strings.TrimSpace(in.Description) == "" {
		return missingField("description")
	}
	if strings.TrimSpace(in.Category) == "" {
		return missingField("category")
	}
	if !ValidCategory(in.Category) {
		return invalidCategory(in.Category)
	}
	if err := validateEntries("ingredients", in.Ingredients); err != nil {
		return err
	}
	if err := validateEntries("steps", in.Steps); err != nil {
		return err
	}
	if err := validateNutrition(in.Nutrition, in.Calories, in.Protein, in.Fat); err != nil {
		return err
	}
	return nil
}

// ValidateUpdate applies the same checks as ValidateCreate, but only to the
// fields actually present in the partial payload.
func ValidateUpdate(in *types.UpdateRecipeInput) error {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return missingField("title")
	}
	if in.Description != nil && strings.TrimSpace(*in.Description) == "" {
		return missingField("description")
	}
	if in.Category != nil {
		if strings.TrimSpace(*in.Category) == "" {
			return missingField("category")
		}
		if !ValidCategory(*in.Category) {
			return invalidCategory(*in.Category)
		}
	}
	if in.Ingredients != nil {
		if err := validateEntries("ingredients", in.Ingredients); err != nil {
			return err
		}
	}
	if in.Steps != nil {
		if err := validateEntries("steps", in.Steps); err != nil {
			return err
		}
	}
	if err := validateNutrition(in.Nutrition, in.Calories, in.Protein, in.Fat); err != nil {
		return err
	}
	return nil
}

func validateEntries(field string, entries []string) error {
	if len(entries) == 0 {
		return missingField(field)
	}
	for _, e := range entries {
		if strings.TrimSpace(e) == "" {
			return missingField(field)
		}
	}
	return nil
}

// validateNutrition rejects negative values rather than clamping them; the
// stored document only ever carries non-negative numbers.
func validateNutrition(n *types.NutritionInput, calories, protein, fat *float64) error {
	if n != nil && (n.Calories < 0 || n.Protein < 0 || n.Fat < 0) {
		return invalidNutrition()
	}
	for _, v := range []*float64{calories, protein, fat} {
		if v != nil && *v < 0 {
			return invalidNutrition()
		}
	}
	return nil
}
