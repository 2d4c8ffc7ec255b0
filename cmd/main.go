package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/franciscosanchezn/gin-pizza-designer/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-pizza-designer/internal/config"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/database"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/repositories"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/routes"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/security"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/session"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/views"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 30 * time.Second

// @title Pizza Designer
// @version 1.0
// @description Design pizzas from the ingredient catalogue and collect them into a session order
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()

	// Initialize database connection
	db := setupDatabase(configuration)

	ingredients := repositories.NewIngredientRepository(db)
	pizzas := repositories.NewPizzaRepository(db)
	users := repositories.NewUserRepository(db)

	// Seed only if the catalogue is empty
	checkPanicErr(database.SeedIngredients(context.Background(), ingredients))

	encoder, err := security.NewPasswordEncoder(configuration.PasswordEncoder)
	checkPanicErr(err)

	sessions, err := session.NewStore(context.Background(), session.Options{
		Driver:        configuration.SessionStore,
		TTL:           configuration.SessionTTL,
		RedisAddr:     configuration.RedisAddr,
		RedisPassword: configuration.RedisPassword,
		RedisDB:       configuration.RedisDB,
	})
	checkPanicErr(err)

	// Initialize Gin router
	router := setupRouter(routes.Dependencies{
		Ingredients:        ingredients,
		Pizzas:             pizzas,
		Users:              users,
		Sessions:           sessions,
		SessionTTL:         configuration.SessionTTL,
		Encoder:            encoder,
		Tokens:             security.NewTokenIssuer(configuration.JWTSecret, configuration.TokenTTL),
		RequireLogin:       configuration.RequireLogin,
		CORSAllowedOrigins: configuration.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%v:%d", configuration.Host, configuration.Port),
		Handler: router,
	}

	// Stop on SIGINT/SIGTERM, then release the session store
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	shutdownCompleted := make(chan struct{})
	go func() {
		<-ctx.Done()
		log.Info("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("Server shutdown error")
		}
		if err := sessions.Close(); err != nil {
			log.WithError(err).Error("Failed to close session store")
		}
		close(shutdownCompleted)
	}()

	// Start the server
	log.Infof("Starting server on %s", srv.Addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		checkPanicErr(err)
	}
	<-shutdownCompleted
	log.Info("Server stopped")
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter. The level follows
// APP_ENV unless LOG_LEVEL names one explicitly, and is shared with the
// package loggers.
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	level := config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development"))

	if raw := config.GetEnvWithDefault("LOG_LEVEL", ""); raw != "" {
		parsed, err := log.ParseLevel(raw)
		if err != nil {
			log.WithError(err).Warnf("Ignoring invalid LOG_LEVEL %q", raw)
		} else {
			level = parsed
		}
	}

	log.SetLevel(level)
	config.SetLogLevel(level)
	database.SetLogLevel(level)
	session.SetLogLevel(level)
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the configured database and migrates the schema
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		URL:      conf.DatabaseURL,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))
	return db
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter(deps routes.Dependencies) *gin.Engine {
	router := gin.Default()
	router.SetHTMLTemplate(views.MustTemplates())
	routes.Setup(router, deps)
	return router
}
