package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIngredientTypes(t *testing.T) {
	types := IngredientTypes()
	assert.Equal(t, []IngredientType{Wrap, Protein, Veggies, Cheese, Sauce}, types)

	// Callers must not be able to mutate the canonical order
	types[0] = Sauce
	assert.Equal(t, Wrap, IngredientTypes()[0])
}

func TestIngredientTypeKey(t *testing.T) {
	keys := []string{}
	for _, it := range IngredientTypes() {
		keys = append(keys, it.Key())
	}
	assert.Equal(t, []string{"wrap", "protein", "veggies", "cheese", "sauce"}, keys)
}

func TestParseIngredientType(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected IngredientType
		valid    bool
	}{
		{name: "upper case", input: "VEGGIES", expected: Veggies, valid: true},
		{name: "lower case", input: "sauce", expected: Sauce, valid: true},
		{name: "padded", input: " cheese ", expected: Cheese, valid: true},
		{name: "unknown", input: "DESSERT", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseIngredientType(tt.input)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestOrderAddDesign(t *testing.T) {
	order := NewOrder()
	assert.Empty(t, order.Designs)

	order.AddDesign(Pizza{ID: 1, Name: "Margherita"})
	order.AddDesign(Pizza{ID: 2, Name: "Diavola"})

	assert.Len(t, order.Designs, 2)
	assert.Equal(t, "Margherita", order.Designs[0].Name)
	assert.Equal(t, "Diavola", order.Designs[1].Name)
}

func TestPizzaIngredientIDs(t *testing.T) {
	pizza := Pizza{Ingredients: []Ingredient{{ID: "THIN"}, {ID: "MOZZ"}}}
	assert.Equal(t, []string{"THIN", "MOZZ"}, pizza.IngredientIDs())
	assert.Empty(t, Pizza{}.IngredientIDs())
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	assert.False(t, errs.HasErrors())

	errs.Add("name", "Name must be at least 5 characters long")
	errs.Add("ingredients", "You must choose at least 1 ingredient")

	assert.True(t, errs.HasErrors())
	assert.Equal(t, []string{"Name must be at least 5 characters long"}, errs.For("name"))
	assert.Nil(t, errs.For("missing"))
	assert.Contains(t, errs.Error(), "ingredients: You must choose at least 1 ingredient")
}
