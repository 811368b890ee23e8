package planner

import (
	"math/rand"
	"sort"
	"time"

	"fridge-planner/domain"
	"fridge-planner/entities"
	"fridge-planner/pkg/household"
	"fridge-planner/pkg/match"

	"github.com/google/uuid"
)

const DefaultTopK = 5

type (
	PlannerService interface {
		Recommend(slot entities.MealSlot, date time.Time, fridge []*entities.Ingredient, members []*entities.Member, catalog []*entities.Recipe) []domain.RecipeMatch
		GeneratePlan(start time.Time, numDays int, fridge []*entities.Ingredient, members []*entities.Member, catalog []*entities.Recipe) []*entities.DailyMealPlan
		ResetDay(date time.Time) *entities.DailyMealPlan
	}

	plannerService struct {
		matchService      match.MatchService
		constraintService household.ConstraintService
		topK              int
		rng               *rand.Rand
	}
)

// NewPlannerService builds the recommender/generator. topK bounds the
// random pick during generation and rng is the injected source; a nil
// rng falls back to a time-seeded one.
func NewPlannerService(matchService match.MatchService, constraintService household.ConstraintService, topK int, rng *rand.Rand) PlannerService {
	if topK <= 0 {
		topK = DefaultTopK
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &plannerService{
		matchService:      matchService,
		constraintService: constraintService,
		topK:              topK,
		rng:               rng,
	}
}

// Recommend ranks the catalog for one slot. Recipes unsafe for any
// participating member are excluded outright; the rest sort by match
// rate, expiring matches first on ties, catalog order last. The sort
// is deterministic; any randomness ("pick one of the top five")
// belongs to the caller, not the ranker.
func (s *plannerService) Recommend(slot entities.MealSlot, date time.Time, fridge []*entities.Ingredient, members []*entities.Member, catalog []*entities.Recipe) []domain.RecipeMatch {
	participants := s.constraintService.ParticipantsFor(date, slot, members)

	candidates := []domain.RecipeMatch{}
	for _, annotated := range s.matchService.MatchRecipes(catalog, fridge, date) {
		if !s.safeForAll(annotated.Recipe, participants) {
			continue
		}
		candidates = append(candidates, annotated)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].MatchRate != candidates[j].MatchRate {
			return candidates[i].MatchRate > candidates[j].MatchRate
		}
		if candidates[i].HasExpiringMatch != candidates[j].HasExpiringMatch {
			return candidates[i].HasExpiringMatch
		}
		return false
	})
	return candidates
}

// GeneratePlan fills numDays of plans starting at start. Every day is
// emitted even when nothing could be planned; a slot stays empty when
// nobody eats it or no safe candidate exists. Each day is evaluated
// against the initial fridge snapshot — planned meals do not deplete
// it for later days.
func (s *plannerService) GeneratePlan(start time.Time, numDays int, fridge []*entities.Ingredient, members []*entities.Member, catalog []*entities.Recipe) []*entities.DailyMealPlan {
	plans := make([]*entities.DailyMealPlan, 0, numDays)
	for offset := 0; offset < numDays; offset++ {
		date := start.AddDate(0, 0, offset)
		plan := entities.NewDailyMealPlan(date)

		for _, slot := range entities.AllSlots {
			participants := s.constraintService.ParticipantsFor(date, slot, members)
			if len(participants) == 0 {
				continue
			}

			ranked := s.Recommend(slot, date, fridge, members, catalog)
			if len(ranked) == 0 {
				continue
			}

			pick := ranked[s.rng.Intn(min(s.topK, len(ranked)))]
			memberIDs := make([]uuid.UUID, 0, len(participants))
			for _, m := range participants {
				memberIDs = append(memberIDs, m.ID)
			}
			plan.Append(slot, entities.MealPlanItem{
				ID:        uuid.New(),
				RecipeID:  pick.Recipe.ID,
				MemberIDs: memberIDs,
			})
		}
		plans = append(plans, plan)
	}
	return plans
}

// ResetDay replaces a date's plan with the empty three-slot document.
func (s *plannerService) ResetDay(date time.Time) *entities.DailyMealPlan {
	return entities.NewDailyMealPlan(date)
}

func (s *plannerService) safeForAll(recipe *entities.Recipe, participants []*entities.Member) bool {
	for _, member := range participants {
		if !s.constraintService.IsSafeFor(recipe, member) {
			return false
		}
	}
	return true
}
