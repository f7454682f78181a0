package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"github.com/resepku/backend/internal/middleware"
	"github.com/resepku/backend/internal/model"
	"github.com/resepku/backend/internal/service"
	"github.com/resepku/backend/internal/types"
)

// RecipeHandler exposes the recipe resource over HTTP.
type RecipeHandler struct {
	recipes     *service.RecipeService
	uploader    service.Uploader
	authService middleware.TokenValidator
	rateLimiter *middleware.RateLimiter
	storageRoot string
}

// NewRecipeHandler creates a new RecipeHandler instance. uploader and
// rateLimiter may be nil; file uploads and write throttling are then skipped.
func NewRecipeHandler(recipes *service.RecipeService, uploader service.Uploader, authService middleware.TokenValidator, rateLimiter *middleware.RateLimiter, storageRoot string) *RecipeHandler {
	return &RecipeHandler{
		recipes:     recipes,
		uploader:    uploader,
		authService: authService,
		rateLimiter: rateLimiter,
		storageRoot: storageRoot,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.authService)

	// Writes share one chain; the limiter only throttles authenticated writes.
	write := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		chain := []gin.HandlerFunc{auth}
		if h.rateLimiter != nil {
			chain = append(chain, h.rateLimiter.RateLimitMiddleware())
		}
		return append(chain, fn)
	}

	recipes := router.Group("/recipes")
	{
		recipes.GET("", middleware.OptionalAuthMiddleware(h.authService), h.ListRecipes)
		// Detail requires login as a product policy; the list stays public.
		recipes.GET("/:id", auth, h.GetRecipe)
		recipes.POST("", write(h.CreateRecipe)...)
		recipes.PUT("/:id", write(h.UpdateRecipe)...)
		recipes.DELETE("/:id", write(h.DeleteRecipe)...)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filter := service.RecipeFilter{
		Keyword:  c.Query("keyword"),
		Category: c.Query("category"),
	}

	if c.Query("owner") == "me" {
		id := callerID(c)
		if id == uuid.Nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		filter.OwnerID = &id
	}

	recipes, err := h.recipes.ListRecipes(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	out := make([]types.Recipe, 0, len(recipes))
	for i := range recipes {
		out = append(out, h.toResponse(&recipes[i]))
	}
	c.JSON(http.StatusOK, gin.H{"recipes": out})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(recipe))
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var in types.CreateRecipeInput
	if err := bindRecipeInput(c, &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uploadedRef, err := h.storeUploadedImage(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), callerID(c), &in, uploadedRef)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.toResponse(recipe))
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	var in types.UpdateRecipeInput
	if err := bindRecipeInput(c, &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uploadedRef, err := h.storeUploadedImage(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), id, callerID(c), &in, uploadedRef)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(recipe))
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	if err := h.recipes.DeleteRecipe(c.Request.Context(), id, callerID(c)); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// bindRecipeInput binds the typed input from JSON or multipart form fields.
func bindRecipeInput(c *gin.Context, in interface{}) error {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return c.ShouldBindWith(in, binding.FormMultipart)
	}
	return c.ShouldBindJSON(in)
}

// storeUploadedImage stores a multipart "image" file, if one was attached,
// and returns its relative storage path.
func (h *RecipeHandler) storeUploadedImage(c *gin.Context) (string, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return "", nil
	}
	file, err := c.FormFile("image")
	if err != nil {
		// No file attached is simply absent
		return "", nil
	}
	if h.uploader == nil {
		log.Printf("[RecipeHandler] upload of %q skipped: no uploader configured", file.Filename)
		return "", nil
	}
	return h.uploader.UploadRecipeImage(c.Request.Context(), file)
}

func (h *RecipeHandler) toResponse(r *model.Recipe) types.Recipe {
	out := types.Recipe{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		Image:       r.Image,
		ImageURL:    service.ResolveForDisplay(r.Image, h.storageRoot),
		VideoURL:    r.VideoURL,
		Nutrition: types.Nutrition{
			Calories: r.Nutrition.Calories,
			Protein:  r.Nutrition.Protein,
			Fat:      r.Nutrition.Fat,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Owner != nil {
		out.OwnerName = r.Owner.Name
	}
	return out
}

// respondError maps business errors onto status codes. Store faults are
// reported generically without leaking internal detail.
func (h *RecipeHandler) respondError(c *gin.Context, err error) {
	var verr *model.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "kind": verr.Kind, "field": verr.Field})
	default:
		log.Printf("[RecipeHandler] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// callerID returns the authenticated caller identity, or uuid.Nil when the
// request carries none.
func callerID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
