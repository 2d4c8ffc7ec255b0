package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/repositories"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// IngredientController handles HTTP requests related to the ingredient catalogue
type IngredientController interface {
	// GetAllIngredients retrieves all ingredients, optionally of one type
	GetAllIngredients(c *gin.Context)
	// GetIngredientByID retrieves an ingredient by its ID
	GetIngredientByID(c *gin.Context)
	// CreateIngredient adds an ingredient to the catalogue
	CreateIngredient(c *gin.Context)
	// UpdateIngredient renames or reclassifies an ingredient
	UpdateIngredient(c *gin.Context)
	// DeleteIngredient removes an ingredient by its ID
	DeleteIngredient(c *gin.Context)
}

// IngredientRequest is the payload for creating or updating an ingredient
type IngredientRequest struct {
	ID   string `json:"id" binding:"omitempty,max=16,alphanum"`
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
}

type ingredientController struct {
	ingredients repositories.IngredientRepository
}

// NewIngredientController creates a new instance of IngredientController
func NewIngredientController(ingredients repositories.IngredientRepository) IngredientController {
	return &ingredientController{ingredients: ingredients}
}

// GetAllIngredients godoc
// @Summary Get all ingredients
// @Description Get every ingredient, optionally filtered by type
// @Tags ingredients
// @Produce json
// @Param type query string false "Ingredient type (WRAP, PROTEIN, VEGGIES, CHEESE, SAUCE)"
// @Success 200 {array} models.Ingredient
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/ingredients [get]
func (c *ingredientController) GetAllIngredients(ctx *gin.Context) {
	var filter models.IngredientType
	if raw := ctx.Query("type"); raw != "" {
		parsed, ok := models.ParseIngredientType(raw)
		if !ok {
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Unknown ingredient type", map[string]interface{}{
				"type":    raw,
				"allowed": models.IngredientTypes(),
			}))
			return
		}
		filter = parsed
	}

	ingredients, err := c.ingredients.FindAll(ctx.Request.Context())
	if err != nil {
		internalError(ctx, err, "Failed to retrieve ingredients")
		return
	}
	if filter != "" {
		ingredients = filterByType(ingredients, filter)
	}
	ctx.JSON(http.StatusOK, ingredients)
}

// GetIngredientByID godoc
// @Summary Get ingredient by ID
// @Tags ingredients
// @Produce json
// @Param id path string true "Ingredient ID"
// @Success 200 {object} models.Ingredient
// @Failure 404 {object} models.APIError
// @Router /api/v1/ingredients/{id} [get]
func (c *ingredientController) GetIngredientByID(ctx *gin.Context) {
	ingredient, ok := c.findOr404(ctx, ctx.Param("id"))
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, ingredient)
}

// CreateIngredient godoc
// @Summary Create an ingredient
// @Description Add a new ingredient to the catalogue
// @Tags ingredients
// @Accept json
// @Produce json
// @Param ingredient body IngredientRequest true "Ingredient"
// @Success 201 {object} models.Ingredient
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/ingredients [post]
func (c *ingredientController) CreateIngredient(ctx *gin.Context) {
	ingredient, ok := bindIngredient(ctx)
	if !ok {
		return
	}
	if ingredient.ID == "" {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrIngredientInvalidData, "id is required"))
		return
	}

	if _, err := c.ingredients.FindByID(ctx.Request.Context(), ingredient.ID); err == nil {
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrConflict, "Ingredient already exists", map[string]interface{}{"id": ingredient.ID}))
		return
	} else if !errors.Is(err, repositories.ErrNotFound) {
		internalError(ctx, err, "Failed to check ingredient")
		return
	}

	created, err := c.ingredients.Save(ctx.Request.Context(), ingredient)
	if err != nil {
		internalError(ctx, err, "Failed to create ingredient")
		return
	}
	log.WithFields(log.Fields{"ingredient_id": created.ID, "type": created.Type}).Info("Created ingredient")
	ctx.JSON(http.StatusCreated, created)
}

// UpdateIngredient godoc
// @Summary Update an ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path string true "Ingredient ID"
// @Param ingredient body IngredientRequest true "Ingredient"
// @Success 200 {object} models.Ingredient
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/ingredients/{id} [put]
func (c *ingredientController) UpdateIngredient(ctx *gin.Context) {
	existing, ok := c.findOr404(ctx, ctx.Param("id"))
	if !ok {
		return
	}

	ingredient, ok := bindIngredient(ctx)
	if !ok {
		return
	}
	// Ensure the ID from URL is used
	ingredient.ID = existing.ID

	updated, err := c.ingredients.Save(ctx.Request.Context(), ingredient)
	if err != nil {
		internalError(ctx, err, "Failed to update ingredient")
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteIngredient godoc
// @Summary Delete an ingredient
// @Tags ingredients
// @Param id path string true "Ingredient ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/ingredients/{id} [delete]
func (c *ingredientController) DeleteIngredient(ctx *gin.Context) {
	ingredient, ok := c.findOr404(ctx, ctx.Param("id"))
	if !ok {
		return
	}

	inUse, err := c.ingredients.InUse(ctx.Request.Context(), ingredient.ID)
	if err != nil {
		internalError(ctx, err, "Failed to check ingredient usage")
		return
	}
	if inUse {
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrIngredientInUse, "Ingredient is used by saved pizzas", map[string]interface{}{"id": ingredient.ID}))
		return
	}

	if err := c.ingredients.Delete(ctx.Request.Context(), ingredient.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrIngredientNotFound, "Ingredient not found"))
			return
		}
		internalError(ctx, err, "Failed to delete ingredient")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// findOr404 looks up an ingredient; ids are stored upper-case
func (c *ingredientController) findOr404(ctx *gin.Context, id string) (models.Ingredient, bool) {
	ingredient, err := c.ingredients.FindByID(ctx.Request.Context(), strings.ToUpper(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrIngredientNotFound, "Ingredient not found"))
			return models.Ingredient{}, false
		}
		internalError(ctx, err, "Failed to retrieve ingredient")
		return models.Ingredient{}, false
	}
	return ingredient, true
}

// bindIngredient reads and validates an IngredientRequest
func bindIngredient(ctx *gin.Context) (models.Ingredient, bool) {
	var req IngredientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrIngredientInvalidData, "Invalid request body", map[string]interface{}{"error": err.Error()}))
		return models.Ingredient{}, false
	}

	ingredientType, ok := models.ParseIngredientType(req.Type)
	if !ok {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrIngredientInvalidData, "Unknown ingredient type", map[string]interface{}{
			"type":    req.Type,
			"allowed": models.IngredientTypes(),
		}))
		return models.Ingredient{}, false
	}

	return models.Ingredient{
		ID:   strings.ToUpper(req.ID),
		Name: strings.TrimSpace(req.Name),
		Type: ingredientType,
	}, true
}
