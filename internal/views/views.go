// Package views holds the server-rendered pages of the pizza designer.
package views

import (
	"embed"
	"html/template"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
)

//go:embed templates/*.html
var files embed.FS

// IngredientGroup is one titled section of checkboxes on the design form
type IngredientGroup struct {
	Key         string
	Title       string
	Ingredients []models.Ingredient
	Pizza       models.Pizza
}

// Funcs are the helpers available to every template
var Funcs = template.FuncMap{
	"group": func(key, title string, ingredients []models.Ingredient, pizza models.Pizza) IngredientGroup {
		return IngredientGroup{Key: key, Title: title, Ingredients: ingredients, Pizza: pizza}
	},
	"selected": func(pizza models.Pizza, ingredientID string) bool {
		for _, ingredient := range pizza.Ingredients {
			if ingredient.ID == ingredientID {
				return true
			}
		}
		return false
	},
}

// Templates parses every embedded page; each file defines one named view
func Templates() (*template.Template, error) {
	return template.New("views").Funcs(Funcs).ParseFS(files, "templates/*.html")
}

// MustTemplates is Templates for program start-up, panicking on a broken template
func MustTemplates() *template.Template {
	return template.Must(Templates())
}
