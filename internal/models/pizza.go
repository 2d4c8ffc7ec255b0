package models

import "time"

// Pizza represents a named pizza design with its selected ingredients
type Pizza struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"not null"`
	Ingredients []Ingredient `json:"ingredients" gorm:"many2many:pizza_ingredients"`
	CreatedBy   *uint        `json:"created_by,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// IngredientIDs returns the ids of the selected ingredients, in selection order
func (p Pizza) IngredientIDs() []string {
	ids := make([]string, 0, len(p.Ingredients))
	for _, ingredient := range p.Ingredients {
		ids = append(ids, ingredient.ID)
	}
	return ids
}
