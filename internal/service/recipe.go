package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/resepku/backend/internal/model"
	"github.com/resepku/backend/internal/types"
)

// RecipeService orchestrates the recipe lifecycle against the store. It is
// stateless per request; concurrent updates resolve last-write-wins at the
// store and no optimistic-concurrency token is added.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListRecipes returns every recipe matching the filter, each with its owner
// preloaded for display-name enrichment. An empty result is not an error.
func (s *RecipeService) ListRecipes(ctx context.Context, filter RecipeFilter) ([]model.Recipe, error) {
	var recipes []model.Recipe
	query := filter.Apply(s.db.WithContext(ctx).Preload("Owner"))
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).Preload("Owner").First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe validates the input and persists a new recipe owned by the
// caller. The owner is always the authenticated caller, never a payload
// value. uploadedRef is the storage path of an uploaded image file, if any;
// it takes precedence over a URL supplied in the input.
func (s *RecipeService) CreateRecipe(ctx context.Context, callerID uuid.UUID, in *types.CreateRecipeInput, uploadedRef string) (*model.Recipe, error) {
	if callerID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	if err := model.ValidateCreate(in); err != nil {
		return nil, err
	}

	recipe := model.Recipe{
		OwnerID:     callerID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Ingredients: in.Ingredients,
		Steps:       in.Steps,
		Image:       ResolveForWrite(uploadedRef, in.Image),
		VideoURL:    in.VideoURL,
		Nutrition:   resolveNutrition(in.Nutrition, in.Calories, in.Protein, in.Fat),
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, recipe.ID)
}

// UpdateRecipe loads the recipe, authorizes the mutation, validates the
// partial input and merges it over the stored record. Omitted fields retain
// their prior values, except nutrition, which is recomputed wholesale: an
// explicit nutrition document wins, otherwise it is rebuilt from the scalar
// inputs with missing scalars defaulting to 0.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id, callerID uuid.UUID, in *types.UpdateRecipeInput, uploadedRef string) (*model.Recipe, error) {
	recipe, err := s.loadForMutation(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	if err := model.ValidateUpdate(in); err != nil {
		return nil, err
	}

	if in.Title != nil {
		recipe.Title = *in.Title
	}
	if in.Description != nil {
		recipe.Description = *in.Description
	}
	if in.Category != nil {
		recipe.Category = *in.Category
	}
	if in.Ingredients != nil {
		recipe.Ingredients = in.Ingredients
	}
	if in.Steps != nil {
		recipe.Steps = in.Steps
	}
	if uploadedRef != "" {
		recipe.Image = uploadedRef
	} else if in.Image != nil {
		recipe.Image = *in.Image
	}
	if in.VideoURL != nil {
		recipe.VideoURL = *in.VideoURL
	}
	recipe.Nutrition = resolveNutrition(in.Nutrition, in.Calories, in.Protein, in.Fat)

	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, id)
}

// DeleteRecipe removes a recipe permanently. There is no soft delete.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id, callerID uuid.UUID) error {
	recipe, err := s.loadForMutation(ctx, id, callerID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(recipe).Error
}

// loadForMutation performs the read half of a mutation: fetch the recipe and
// run the ordered authorization checks against it.
func (s *RecipeService) loadForMutation(ctx context.Context, id, callerID uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := AuthorizeMutation(&recipe, callerID); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func resolveNutrition(n *types.NutritionInput, calories, protein, fat *float64) model.NutritionInfo {
	if n != nil {
		return model.NutritionInfo{Calories: n.Calories, Protein: n.Protein, Fat: n.Fat}
	}
	out := model.NutritionInfo{}
	if calories != nil {
		out.Calories = *calories
	}
	if protein != nil {
		out.Protein = *protein
	}
	if fat != nil {
		out.Fat = *fat
	}
	return out
}
