package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resepku/backend/internal/types"
)

func validCreateInput() *types.CreateRecipeInput {
	return &types.CreateRecipeInput{
		Title:       "Nasi Goreng",
		Description: "Fried rice with sweet soy sauce",
		Category:    CategoryFood,
		Ingredients: []string{"rice", "egg", "kecap manis"},
		Steps:       []string{"fry the rice", "add the egg"},
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(c))
	}
	assert.False(t, ValidCategory("Snacks"))
	assert.False(t, ValidCategory("food")) // exact match only
	assert.False(t, ValidCategory(""))
}

func TestValidateCreateOK(t *testing.T) {
	assert.NoError(t, ValidateCreate(validCreateInput()))
}

func TestValidateCreateMissingFields(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*types.CreateRecipeInput)
		field  string
	}{
		{"empty title", func(in *types.CreateRecipeInput) { in.Title = "" }, "title"},
		{"blank title", func(in *types.CreateRecipeInput) { in.Title = "   " }, "title"},
		{"empty description", func(in *types.CreateRecipeInput) { in.Description = "" }, "description"},
		{"empty category", func(in *types.CreateRecipeInput) { in.Category = "" }, "category"},
		{"no ingredients", func(in *types.CreateRecipeInput) { in.Ingredients = nil }, "ingredients"},
		{"blank ingredient entry", func(in *types.CreateRecipeInput) { in.Ingredients = []string{"rice", " "} }, "ingredients"},
		{"no steps", func(in *types.CreateRecipeInput) { in.Steps = []string{} }, "steps"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreateInput()
			tc.mutate(in)

			err := ValidateCreate(in)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, ValidationMissingField, verr.Kind)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestValidateCreateInvalidCategory(t *testing.T) {
	in := validCreateInput()
	in.Category = "Snacks"

	err := ValidateCreate(in)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, ValidationInvalidCategory, verr.Kind)
}

func TestValidateCreateNegativeNutrition(t *testing.T) {
	in := validCreateInput()
	in.Nutrition = &types.NutritionInput{Calories: -10}

	err := ValidateCreate(in)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, ValidationInvalidNutrition, verr.Kind)

	in = validCreateInput()
	neg := -1.5
	in.Protein = &neg
	err = ValidateCreate(in)
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, ValidationInvalidNutrition, verr.Kind)
}

func TestValidateUpdatePartial(t *testing.T) {
	// An empty patch is valid: every field retains its prior value
	assert.NoError(t, ValidateUpdate(&types.UpdateRecipeInput{}))

	title := "Updated"
	assert.NoError(t, ValidateUpdate(&types.UpdateRecipeInput{Title: &title}))

	// Category is checked only when present
	bad := "Snacks"
	err := ValidateUpdate(&types.UpdateRecipeInput{Category: &bad})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, ValidationInvalidCategory, verr.Kind)

	// Provided collections follow the non-blank-entry convention
	err = ValidateUpdate(&types.UpdateRecipeInput{Steps: []string{""}})
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, ValidationMissingField, verr.Kind)
	assert.Equal(t, "steps", verr.Field)

	blank := "  "
	err = ValidateUpdate(&types.UpdateRecipeInput{Title: &blank})
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, ValidationMissingField, verr.Kind)
}
