package repositories

import (
	"context"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"gorm.io/gorm"
)

// IngredientRepository provides access to the ingredient catalogue
type IngredientRepository interface {
	CrudRepository[models.Ingredient, string]
	// FindAllByID retrieves the ingredients with the given ids, in the order the
	// ids were given. Unknown ids are skipped.
	FindAllByID(ctx context.Context, ids []string) ([]models.Ingredient, error)
	// InUse reports whether any saved pizza references the ingredient
	InUse(ctx context.Context, id string) (bool, error)
}

type ingredientRepository struct {
	*gormRepository[models.Ingredient, string]
}

// NewIngredientRepository creates a new instance of IngredientRepository
func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{
		gormRepository: newGormRepository[models.Ingredient, string](db, "id"),
	}
}

func (r *ingredientRepository) FindAllByID(ctx context.Context, ids []string) ([]models.Ingredient, error) {
	if len(ids) == 0 {
		return []models.Ingredient{}, nil
	}

	var found []models.Ingredient
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]models.Ingredient, len(found))
	for _, ingredient := range found {
		byID[ingredient.ID] = ingredient
	}

	ingredients := make([]models.Ingredient, 0, len(ids))
	for _, id := range ids {
		if ingredient, ok := byID[id]; ok {
			ingredients = append(ingredients, ingredient)
		}
	}
	return ingredients, nil
}

func (r *ingredientRepository) InUse(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("pizza_ingredients").Where("ingredient_id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
