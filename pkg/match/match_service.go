package match

import (
	"math"
	"time"

	"fridge-planner/domain"
	"fridge-planner/entities"
)

const DefaultExpiringWindowDays = 7

type (
	MatchService interface {
		MatchRecipe(recipe *entities.Recipe, fridge []*entities.Ingredient, today time.Time) domain.MatchResult
		MatchRecipes(recipes []*entities.Recipe, fridge []*entities.Ingredient, today time.Time) []domain.RecipeMatch
		CountExpiring(fridge []*entities.Ingredient, today time.Time) int
		ApplyCook(recipe *entities.Recipe, fridge []*entities.Ingredient) []*entities.Ingredient
	}

	matchService struct {
		expiringWindowDays int
	}
)

func NewMatchService(expiringWindowDays int) MatchService {
	if expiringWindowDays <= 0 {
		expiringWindowDays = DefaultExpiringWindowDays
	}
	return &matchService{expiringWindowDays: expiringWindowDays}
}

// MatchRecipe scores one recipe against the fridge snapshot. A fridge
// item matches a required ingredient when either name contains the
// other; the rate is the rounded percentage of required ingredients
// covered, defined as 0 for a recipe with no required ingredients.
func (s *matchService) MatchRecipe(recipe *entities.Recipe, fridge []*entities.Ingredient, today time.Time) domain.MatchResult {
	result := domain.MatchResult{MissingIngredients: []string{}}
	if len(recipe.Ingredients) == 0 {
		return result
	}

	for _, required := range recipe.Ingredients {
		matched := false
		for _, item := range fridge {
			if !entities.NamesOverlap(item.Name, required.Name) {
				continue
			}
			matched = true
			if item.IsExpiringSoon(today, s.expiringWindowDays) {
				result.HasExpiringMatch = true
			}
		}
		if matched {
			result.MatchCount++
		} else {
			result.MissingIngredients = append(result.MissingIngredients, required.Name)
		}
	}

	result.MatchRate = int(math.Round(100 * float64(result.MatchCount) / float64(len(recipe.Ingredients))))
	return result
}

// MatchRecipes annotates every catalog recipe, preserving catalog
// order so downstream ranking can use it as the stable tie-break.
func (s *matchService) MatchRecipes(recipes []*entities.Recipe, fridge []*entities.Ingredient, today time.Time) []domain.RecipeMatch {
	annotated := make([]domain.RecipeMatch, 0, len(recipes))
	for _, recipe := range recipes {
		annotated = append(annotated, domain.RecipeMatch{
			Recipe:      recipe,
			MatchResult: s.MatchRecipe(recipe, fridge, today),
		})
	}
	return annotated
}

// CountExpiring counts fridge items inside the expiry window.
func (s *matchService) CountExpiring(fridge []*entities.Ingredient, today time.Time) int {
	count := 0
	for _, item := range fridge {
		if item.IsExpiringSoon(today, s.expiringWindowDays) {
			count++
		}
	}
	return count
}

// ApplyCook returns a copy of the fridge with the recipe's parsed
// amounts deducted from every matching item. Quantities never go below
// zero; items the recipe does not touch are copied unchanged.
func (s *matchService) ApplyCook(recipe *entities.Recipe, fridge []*entities.Ingredient) []*entities.Ingredient {
	updated := make([]*entities.Ingredient, 0, len(fridge))
	for _, item := range fridge {
		copied := *item
		for _, required := range recipe.Ingredients {
			if !entities.NamesOverlap(copied.Name, required.Name) {
				continue
			}
			qty, _ := entities.ParseAmount(required.Amount)
			copied.Quantity = math.Max(0, copied.Quantity-qty)
		}
		updated = append(updated, &copied)
	}
	return updated
}
