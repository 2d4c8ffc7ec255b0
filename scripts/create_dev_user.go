package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/config"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/database"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/repositories"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/security"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Parse command line flags
	role := flag.String("role", models.RoleAdmin, "User role (admin or user)")
	password := flag.String("password", "", "Password (defaults to <role>-secret-123)")
	flag.Parse()

	if *role != models.RoleAdmin && *role != models.RoleUser {
		log.Fatalf("Unsupported role %q (supported: admin, user)", *role)
	}
	if *password == "" {
		*password = fmt.Sprintf("%s-secret-123", *role)
	}

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

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
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	encoder, err := security.NewPasswordEncoder(conf.PasswordEncoder)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	users := repositories.NewUserRepository(db)
	username := fmt.Sprintf("%s-dev", *role)

	// Check if user already exists
	if existing, err := users.FindByUsername(ctx, username); err == nil {
		fmt.Printf("Development user already exists for role '%s'!\n", existing.Role)
		fmt.Printf("Username: %s (ID: %d)\n", existing.Username, existing.ID)
		return
	} else if !errors.Is(err, repositories.ErrNotFound) {
		log.Fatal("Failed to look up user: ", err)
	}

	encoded, err := encoder.Encode(*password)
	if err != nil {
		log.Fatal("Failed to encode password: ", err)
	}

	user, err := users.Save(ctx, models.User{
		Username: username,
		Password: encoded,
		Fullname: fmt.Sprintf("Development %s", *role),
		Role:     *role,
	})
	if err != nil {
		log.Fatal("Failed to create user: ", err)
	}

	fmt.Printf("✓ Development user created for role '%s'!\n", user.Role)
	fmt.Printf("Username: %s\n", user.Username)
	fmt.Printf("Password: %s\n", *password)
	fmt.Printf("User ID: %d\n", user.ID)
	fmt.Println("\nUse these credentials for testing:")
	fmt.Printf("curl -X POST http://localhost:%d/login \\\n", conf.Port)
	fmt.Printf("  -H 'Accept: application/json' \\\n")
	fmt.Printf("  -d 'username=%s' \\\n", user.Username)
	fmt.Printf("  -d 'password=%s'\n", *password)
}
