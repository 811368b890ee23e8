package domain

import (
	"fridge-planner/entities"
)

type (
	// MatchResult is the outcome of matching one recipe against the
	// current fridge snapshot.
	MatchResult struct {
		MatchCount         int      `json:"match_count"`
		MatchRate          int      `json:"match_rate"`
		MissingIngredients []string `json:"missing_ingredients"`
		HasExpiringMatch   bool     `json:"has_expiring_match"`
	}

	// RecipeMatch is a catalog recipe annotated with its match result.
	RecipeMatch struct {
		Recipe *entities.Recipe `json:"recipe"`
		MatchResult
	}
)

// CanCook reports whether every required ingredient had a matching
// fridge entry.
func (m MatchResult) CanCook() bool {
	return len(m.MissingIngredients) == 0 && m.MatchCount > 0
}
