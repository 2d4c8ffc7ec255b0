package repositories

import (
	"context"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"gorm.io/gorm"
)

// PizzaRepository provides access to persisted pizza designs
type PizzaRepository interface {
	CrudRepository[models.Pizza, uint]
	// FindRecent retrieves the newest designs first, at most limit of them
	FindRecent(ctx context.Context, limit int) ([]models.Pizza, error)
}

type pizzaRepository struct {
	*gormRepository[models.Pizza, uint]
}

// NewPizzaRepository creates a new instance of PizzaRepository
func NewPizzaRepository(db *gorm.DB) PizzaRepository {
	return &pizzaRepository{
		gormRepository: newGormRepository[models.Pizza, uint](db, "id", "Ingredients"),
	}
}

func (r *pizzaRepository) FindRecent(ctx context.Context, limit int) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := r.query(ctx).Order("created_at DESC").Order("id DESC").Limit(limit).Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}
