package types

// NutritionInput carries the optional nutrition document of a write request.
type NutritionInput struct {
	Calories float64 `json:"calories" form:"-"`
	Protein  float64 `json:"protein" form:"-"`
	Fat      float64 `json:"fat" form:"-"`
}

// CreateRecipeInput represents the request body for creating a recipe.
// It binds from JSON or from multipart form fields; an uploaded image file is
// handled separately by the upload service and takes precedence over Image.
type CreateRecipeInput struct {
	Title       string          `json:"title" form:"title"`
	Description string          `json:"description" form:"description"`
	Category    string          `json:"category" form:"category"`
	Ingredients []string        `json:"ingredients" form:"ingredients"`
	Steps       []string        `json:"steps" form:"steps"`
	Image       string          `json:"image" form:"image"`
	VideoURL    string          `json:"video_url" form:"video_url"`
	Nutrition   *NutritionInput `json:"nutrition_info" form:"-"`
	Calories    *float64        `json:"calories" form:"calories"`
	Protein     *float64        `json:"protein" form:"protein"`
	Fat         *float64        `json:"fat" form:"fat"`
}

// UpdateRecipeInput represents the request body for updating a recipe.
// Pointer fields distinguish "omitted" (nil, prior value retained) from an
// explicit value; nil slices mean omitted as well.
type UpdateRecipeInput struct {
	Title       *string         `json:"title" form:"title"`
	Description *string         `json:"description" form:"description"`
	Category    *string         `json:"category" form:"category"`
	Ingredients []string        `json:"ingredients" form:"ingredients"`
	Steps       []string        `json:"steps" form:"steps"`
	Image       *string         `json:"image" form:"image"`
	VideoURL    *string         `json:"video_url" form:"video_url"`
	Nutrition   *NutritionInput `json:"nutrition_info" form:"-"`
	Calories    *float64        `json:"calories" form:"calories"`
	Protein     *float64        `json:"protein" form:"protein"`
	Fat         *float64        `json:"fat" form:"fat"`
}

// RegisterRequest represents the request body for registering a user
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
