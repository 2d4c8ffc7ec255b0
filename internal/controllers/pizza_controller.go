package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/repositories"
	"github.com/gin-gonic/gin"
)

const (
	defaultRecentLimit = 12
	maxRecentLimit     = 50
)

// PizzaController handles HTTP requests related to saved pizza designs
type PizzaController interface {
	// GetRecentPizzas retrieves the latest designs
	GetRecentPizzas(c *gin.Context)
	// GetPizzaByID retrieves a design by its ID
	GetPizzaByID(c *gin.Context)
}

type pizzaController struct {
	pizzas repositories.PizzaRepository
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(pizzas repositories.PizzaRepository) PizzaController {
	return &pizzaController{pizzas: pizzas}
}

// GetRecentPizzas godoc
// @Summary Get recent pizzas
// @Description Get the most recently designed pizzas, newest first
// @Tags pizzas
// @Produce json
// @Param limit query int false "Maximum number of pizzas (1-50, default 12)"
// @Success 200 {array} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/pizzas/recent [get]
func (c *pizzaController) GetRecentPizzas(ctx *gin.Context) {
	limit := defaultRecentLimit
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxRecentLimit {
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "limit must be a number between 1 and 50"))
			return
		}
		limit = parsed
	}

	pizzas, err := c.pizzas.FindRecent(ctx.Request.Context(), limit)
	if err != nil {
		internalError(ctx, err, "Failed to retrieve pizzas")
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza design with its ingredients
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/pizzas/{id} [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	pizzaID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid pizza ID format"))
		return
	}

	pizza, err := c.pizzas.FindByID(ctx.Request.Context(), uint(pizzaID))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, "Pizza not found"))
			return
		}
		internalError(ctx, err, "Failed to retrieve pizza")
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}
