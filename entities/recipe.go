package entities

import (
	"github.com/google/uuid"
)

// RequiredIngredient is one line of a recipe's ingredient list. Amount
// stays as the catalog's free text ("2개", "1/2큰술", "약간"); there is
// no unit normalization.
type RequiredIngredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// NutritionFacts are per single serving.
type NutritionFacts struct {
	Calories      float64 `json:"calories"`
	Carbohydrates float64 `json:"carbohydrates"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
}

// Recipe is a record from the shared read-only catalog. Recipes are
// immutable within a session.
type Recipe struct {
	ID                 uuid.UUID            `json:"id"`
	Name               string               `json:"name"`
	Category           string               `json:"category"`
	DishType           string               `json:"dish_type"`
	Tags               []string             `json:"tags,omitempty"`
	Ingredients        []RequiredIngredient `json:"ingredients"`
	Allergens          []string             `json:"allergens,omitempty"`
	Nutrition          NutritionFacts       `json:"nutrition"`
	CookingTimeMinutes int                  `json:"cooking_time_minutes"`
	Difficulty         string               `json:"difficulty"`
	Steps              []string             `json:"steps,omitempty"`
	Rating             float64              `json:"rating"`
	ReviewCount        int                  `json:"review_count"`
}

// IngredientNames returns the names of the required ingredients in
// catalog order.
func (r *Recipe) IngredientNames() []string {
	names := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		names = append(names, ing.Name)
	}
	return names
}
