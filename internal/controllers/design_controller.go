package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/repositories"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

const (
	nameTooShortMessage  = "Name must be at least 5 characters long"
	noIngredientsMessage = "You must choose at least 1 ingredient"
	unknownIngredient    = "Unknown ingredient selected"
)

// PizzaForm is the submitted pizza design
type PizzaForm struct {
	Name        string   `form:"name" json:"name" binding:"required,min=5"`
	Ingredients []string `form:"ingredients" json:"ingredients" binding:"required,min=1"`
}

// DesignController serves the pizza design form and collects submitted designs
// into the session order
type DesignController struct {
	ingredients repositories.IngredientRepository
	pizzas      repositories.PizzaRepository
	orders      session.Store
}

// NewDesignController creates a new instance of DesignController
func NewDesignController(ingredients repositories.IngredientRepository, pizzas repositories.PizzaRepository, orders session.Store) *DesignController {
	return &DesignController{
		ingredients: ingredients,
		pizzas:      pizzas,
		orders:      orders,
	}
}

// ShowDesignForm godoc
// @Summary Show the design form
// @Description Lists every ingredient grouped by type together with a blank pizza and the session order
// @Tags design
// @Produce html
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.APIError
// @Router /design [get]
func (dc *DesignController) ShowDesignForm(ctx *gin.Context) {
	model, err := dc.designModel(ctx)
	if err != nil {
		internalError(ctx, err, "Failed to load ingredients")
		return
	}
	model["pizza"] = models.Pizza{Ingredients: []models.Ingredient{}}
	render(ctx, http.StatusOK, "design", model)
}

// ProcessDesign godoc
// @Summary Submit a pizza design
// @Description Validates and saves the design, adds it to the session order and redirects to the order
// @Tags design
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce html
// @Produce json
// @Param name formData string true "Pizza name, at least 5 characters"
// @Param ingredients formData []string true "Selected ingredient ids" collectionFormat(multi)
// @Success 302 "Redirect to /orders/current"
// @Success 200 {object} map[string]interface{} "Form re-rendered with validation errors"
// @Failure 500 {object} models.APIError
// @Router /design [post]
func (dc *DesignController) ProcessDesign(ctx *gin.Context) {
	var form PizzaForm
	errs := models.ValidationErrors{}
	if err := ctx.ShouldBind(&form); err != nil {
		errs = append(errs, bindingErrors(err)...)
	}

	design := models.Pizza{Name: form.Name, Ingredients: []models.Ingredient{}}
	ids := uniqueIDs(form.Ingredients)
	if len(ids) == 0 && len(errs.For("ingredients")) == 0 {
		errs.Add("ingredients", noIngredientsMessage)
	}
	if len(ids) > 0 {
		ingredients, err := dc.ingredients.FindAllByID(ctx.Request.Context(), ids)
		if err != nil {
			internalError(ctx, err, "Failed to load ingredients")
			return
		}
		if len(ingredients) != len(ids) {
			errs.Add("ingredients", unknownIngredient)
		}
		design.Ingredients = ingredients
	}

	if errs.HasErrors() {
		dc.showErrors(ctx, design, errs)
		return
	}

	if user, ok := middleware.CurrentUser(ctx); ok {
		design.CreatedBy = &user.ID
	}

	saved, err := dc.pizzas.Save(ctx.Request.Context(), design)
	if err != nil {
		internalError(ctx, err, "Failed to save pizza")
		return
	}

	sessionID := middleware.SessionID(ctx)
	if err := dc.orders.AddDesign(ctx.Request.Context(), sessionID, saved); err != nil {
		// A design outside any order is not kept
		if deleteErr := dc.pizzas.Delete(ctx.Request.Context(), saved.ID); deleteErr != nil {
			log.WithError(deleteErr).WithField("pizza_id", saved.ID).Error("Failed to discard unordered pizza")
		}
		internalError(ctx, err, "Failed to add pizza to order")
		return
	}

	log.WithFields(log.Fields{
		"pizza_id":    saved.ID,
		"name":        saved.Name,
		"ingredients": saved.IngredientIDs(),
		"session_id":  sessionID,
	}).Info("Processed design")

	ctx.Redirect(http.StatusFound, "/orders/current")
}

// showErrors re-renders the form with the submitted design; nothing is saved
func (dc *DesignController) showErrors(ctx *gin.Context, design models.Pizza, errs models.ValidationErrors) {
	model, err := dc.designModel(ctx)
	if err != nil {
		internalError(ctx, err, "Failed to load ingredients")
		return
	}
	model["pizza"] = design
	model["errors"] = errs
	render(ctx, http.StatusOK, "design", model)
}

// designModel loads the ingredient groups, the session order and the user
func (dc *DesignController) designModel(ctx *gin.Context) (gin.H, error) {
	ingredients, err := dc.ingredients.FindAll(ctx.Request.Context())
	if err != nil {
		return nil, err
	}

	model := viewModel(ctx)
	for _, ingredientType := range models.IngredientTypes() {
		model[ingredientType.Key()] = filterByType(ingredients, ingredientType)
	}
	model["order"] = middleware.CurrentOrder(ctx)
	return model, nil
}

// filterByType keeps the ingredients of the given type, preserving their order
func filterByType(ingredients []models.Ingredient, ingredientType models.IngredientType) []models.Ingredient {
	filtered := make([]models.Ingredient, 0)
	for _, ingredient := range ingredients {
		if ingredient.Type == ingredientType {
			filtered = append(filtered, ingredient)
		}
	}
	return filtered
}

// bindingErrors turns binding failures into field messages
func bindingErrors(err error) models.ValidationErrors {
	errs := models.ValidationErrors{}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		errs.Add("pizza", "Invalid design submission")
		return errs
	}

	for _, fe := range fieldErrors {
		switch fe.Field() {
		case "Name":
			errs.Add("name", nameTooShortMessage)
		case "Ingredients":
			errs.Add("ingredients", noIngredientsMessage)
		default:
			errs.Add(fe.Field(), fe.Error())
		}
	}
	return errs
}

// uniqueIDs drops blank and repeated ids, keeping first occurrences
func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	return unique
}
