package domain

import (
	"errors"
)

var (
	MessageSuccessGeneratePlan   = "meal plan generated successfully"
	MessageSuccessGetRecommended = "recommendations retrieved successfully"
	MessageFailedLoadCatalog     = "failed to load recipe catalog"
	MessageFailedLoadPlans       = "failed to load meal plans"
	MessageNoCandidates          = "no recipe candidates for this slot"

	ErrCatalogUnavailable = errors.New("recipe catalog unavailable")
	ErrInvalidPlanRange   = errors.New("number of days must be positive")
	ErrUnknownSlot        = errors.New("unknown meal slot")
)

type (
	// RecommendationResponse is what the recommender hands the caller
	// for one slot: ranked candidates plus the expiring-item count the
	// UI badges.
	RecommendationResponse struct {
		Recipes       []RecipeMatch `json:"recipes"`
		TotalRecipes  int           `json:"total_recipes"`
		ExpiringItems int           `json:"expiring_items"`
	}
)
