package database

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/repositories"
	"gorm.io/gorm"
)

// DefaultIngredients is the catalogue loaded into an empty database
var DefaultIngredients = []models.Ingredient{
	{ID: "THIN", Name: "Thin Crust", Type: models.Wrap},
	{ID: "THCK", Name: "Thick Crust", Type: models.Wrap},
	{ID: "PEPP", Name: "Pepperoni", Type: models.Protein},
	{ID: "HAMS", Name: "Ham", Type: models.Protein},
	{ID: "SAUS", Name: "Italian Sausage", Type: models.Protein},
	{ID: "MUSH", Name: "Mushrooms", Type: models.Veggies},
	{ID: "ONIO", Name: "Onions", Type: models.Veggies},
	{ID: "PEPR", Name: "Bell Peppers", Type: models.Veggies},
	{ID: "OLIV", Name: "Black Olives", Type: models.Veggies},
	{ID: "MOZZ", Name: "Mozzarella", Type: models.Cheese},
	{ID: "GORG", Name: "Gorgonzola", Type: models.Cheese},
	{ID: "TOMA", Name: "Tomato Sauce", Type: models.Sauce},
	{ID: "PEST", Name: "Pesto", Type: models.Sauce},
}

// Migrate creates or updates the schema for every persisted model
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	if err := db.AutoMigrate(&models.Ingredient{}, &models.Pizza{}, &models.User{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// SeedIngredients loads DefaultIngredients when the catalogue is empty
func SeedIngredients(ctx context.Context, repo repositories.IngredientRepository) error {
	// Create only if is empty
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count ingredients: %w", err)
	}
	if count > 0 {
		log.WithField("ingredients", count).Info("Database already seeded with initial data")
		return nil
	}

	log.Info("Database is empty, seeding initial data")
	for _, ingredient := range DefaultIngredients {
		if _, err := repo.Save(ctx, ingredient); err != nil {
			return fmt.Errorf("failed to seed ingredient %s: %w", ingredient.ID, err)
		}
	}
	log.WithField("ingredients", len(DefaultIngredients)).Info("Database seeded successfully")
	return nil
}
