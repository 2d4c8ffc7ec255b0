// Package routes wires controllers and middleware onto the gin engine.
package routes

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/controllers"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/repositories"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/security"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies carries everything the routes need
type Dependencies struct {
	Ingredients repositories.IngredientRepository
	Pizzas      repositories.PizzaRepository
	Users       repositories.UserRepository

	Sessions   session.Store
	SessionTTL time.Duration

	Encoder security.PasswordEncoder
	Tokens  *security.TokenIssuer

	// RequireLogin protects the design and order pages
	RequireLogin       bool
	CORSAllowedOrigins []string
}

// Setup registers every route on router
func Setup(router *gin.Engine, deps Dependencies) {
	designController := controllers.NewDesignController(deps.Ingredients, deps.Pizzas, deps.Sessions)
	orderController := controllers.NewOrderController(deps.Sessions)
	authController := controllers.NewAuthController(deps.Users, deps.Encoder, deps.Tokens)
	ingredientController := controllers.NewIngredientController(deps.Ingredients)
	pizzaController := controllers.NewPizzaController(deps.Pizzas)

	router.Use(middleware.Authenticate(deps.Tokens, deps.Users))

	// Health check endpoint
	router.GET("/health", healthCheckHandler)
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/design")
	})

	// Session-scoped pages
	pages := router.Group("/")
	if deps.RequireLogin {
		pages.Use(middleware.RequireUser())
	}
	pages.Use(middleware.Session(deps.Sessions, deps.SessionTTL))
	{
		pages.GET("/design", designController.ShowDesignForm)
		pages.POST("/design", designController.ProcessDesign)
		pages.GET("/orders/current", orderController.ShowCurrentOrder)
		pages.POST("/orders/current/clear", orderController.ClearCurrentOrder)
	}

	// Authentication routes
	router.GET("/register", authController.ShowRegistrationForm)
	router.POST("/register", authController.Register)
	router.GET("/login", authController.ShowLoginForm)
	router.POST("/login", authController.Login)
	router.POST("/logout", authController.Logout)

	v1 := router.Group("/api/v1")
	v1.Use(cors.New(corsConfig(deps.CORSAllowedOrigins)))
	{
		// Preflight requests only reach the cors middleware through a matched route
		v1.OPTIONS("/*path", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		v1.GET("/ingredients", ingredientController.GetAllIngredients)
		v1.GET("/ingredients/:id", ingredientController.GetIngredientByID)
		v1.GET("/pizzas/recent", pizzaController.GetRecentPizzas)
		v1.GET("/pizzas/:id", pizzaController.GetPizzaByID)

		adminApi := v1.Group("")
		adminApi.Use(middleware.RequireRole(models.RoleAdmin))
		{
			adminApi.POST("/ingredients", ingredientController.CreateIngredient)
			adminApi.PUT("/ingredients/:id", ingredientController.UpdateIngredient)
			adminApi.DELETE("/ingredients/:id", ingredientController.DeleteIngredient)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.AllowCredentials = !cfg.AllowAllOrigins
	return cfg
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-pizza-designer",
	})
}
