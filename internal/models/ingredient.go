package models

import "strings"

// IngredientType classifies an ingredient for display on the design form
type IngredientType string

const (
	Wrap    IngredientType = "WRAP"
	Protein IngredientType = "PROTEIN"
	Veggies IngredientType = "VEGGIES"
	Cheese  IngredientType = "CHEESE"
	Sauce   IngredientType = "SAUCE"
)

var ingredientTypes = []IngredientType{Wrap, Protein, Veggies, Cheese, Sauce}

// IngredientTypes returns every ingredient type in declaration order
func IngredientTypes() []IngredientType {
	types := make([]IngredientType, len(ingredientTypes))
	copy(types, ingredientTypes)
	return types
}

// ParseIngredientType converts a case-insensitive name into an IngredientType
func ParseIngredientType(s string) (IngredientType, bool) {
	t := IngredientType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.IsValid()
}

// IsValid reports whether t is one of the known ingredient types
func (t IngredientType) IsValid() bool {
	for _, known := range ingredientTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Key is the lowercase name used as a view model key
func (t IngredientType) Key() string {
	return strings.ToLower(string(t))
}

func (t IngredientType) String() string {
	return string(t)
}

// Ingredient is a single selectable pizza topping, crust or sauce
type Ingredient struct {
	ID   string         `json:"id" gorm:"primaryKey;size:16"`
	Name string         `json:"name" gorm:"not null"`
	Type IngredientType `json:"type" gorm:"size:16;not null;index"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
