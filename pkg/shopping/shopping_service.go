package shopping

import (
	"sort"
	"time"

	"fridge-planner/domain"
	"fridge-planner/entities"

	"github.com/google/uuid"
)

type (
	ShoppingService interface {
		Project(from time.Time, horizonDays int, plans []*entities.DailyMealPlan, fridge []*entities.Ingredient, catalog []*entities.Recipe) []domain.ShoppingNeed
	}

	shoppingService struct{}

	// demand tracks one ingredient name across the horizon walk.
	demand struct {
		total      float64
		onHand     float64
		unit       string
		dateNeeded string
		dday       int
		short      bool
		order      int
	}
)

func NewShoppingService() ShoppingService {
	return &shoppingService{}
}

// Project walks every planned meal from `from` through the horizon in
// date order and accumulates per-ingredient demand from the recipes'
// free-text amounts. No unit conversion is attempted; amounts are
// compared as plain counts against the fridge quantities. An entry is
// emitted for each ingredient whose cumulative demand overtakes what
// is on hand, dated at the first day of the shortfall. Ingredients
// that stay stocked through the whole horizon produce nothing.
func (s *shoppingService) Project(from time.Time, horizonDays int, plans []*entities.DailyMealPlan, fridge []*entities.Ingredient, catalog []*entities.Recipe) []domain.ShoppingNeed {
	recipesByID := make(map[uuid.UUID]*entities.Recipe, len(catalog))
	for _, r := range catalog {
		recipesByID[r.ID] = r
	}
	plansByDate := make(map[string]*entities.DailyMealPlan, len(plans))
	for _, p := range plans {
		plansByDate[p.Date] = p
	}

	demands := map[string]*demand{}
	for offset := 0; offset < horizonDays; offset++ {
		date := from.AddDate(0, 0, offset)
		plan, ok := plansByDate[date.Format(entities.DateKeyLayout)]
		if !ok {
			continue
		}
		for _, slot := range entities.AllSlots {
			for _, item := range plan.Slot(slot) {
				recipe, ok := recipesByID[item.RecipeID]
				if !ok {
					// dangling recipe reference, tolerated
					continue
				}
				for _, required := range recipe.Ingredients {
					s.consume(demands, required, fridge, date, offset)
				}
			}
		}
	}

	needs := []domain.ShoppingNeed{}
	for name, d := range demands {
		if !d.short {
			continue
		}
		needs = append(needs, domain.ShoppingNeed{
			Name:       name,
			Amount:     d.total - d.onHand,
			Unit:       d.unit,
			DateNeeded: d.dateNeeded,
			DDay:       d.dday,
		})
	}
	sortNeeds(needs, demands)
	return needs
}

func (s *shoppingService) consume(demands map[string]*demand, required entities.RequiredIngredient, fridge []*entities.Ingredient, date time.Time, offset int) {
	qty, unit := entities.ParseAmount(required.Amount)

	d, ok := demands[required.Name]
	if !ok {
		d = &demand{unit: unit, onHand: onHandQuantity(required.Name, fridge), order: len(demands)}
		if d.unit == "" {
			d.unit = fridgeUnit(required.Name, fridge)
		}
		demands[required.Name] = d
	}

	d.total += qty
	if !d.short && d.total > d.onHand {
		d.short = true
		d.dateNeeded = date.Format(entities.DateKeyLayout)
		d.dday = offset
	}
}

// onHandQuantity sums the quantities of every fridge item matching the
// ingredient name under the shared substring rule.
func onHandQuantity(name string, fridge []*entities.Ingredient) float64 {
	total := 0.0
	for _, item := range fridge {
		if entities.NamesOverlap(item.Name, name) {
			total += item.Quantity
		}
	}
	return total
}

func fridgeUnit(name string, fridge []*entities.Ingredient) string {
	for _, item := range fridge {
		if entities.NamesOverlap(item.Name, name) {
			return item.Unit
		}
	}
	return ""
}

// sortNeeds keeps output order stable: soonest shortage first, then
// first-seen order for same-day entries.
func sortNeeds(needs []domain.ShoppingNeed, demands map[string]*demand) {
	sort.SliceStable(needs, func(i, j int) bool {
		if needs[i].DDay != needs[j].DDay {
			return needs[i].DDay < needs[j].DDay
		}
		return demands[needs[i].Name].order < demands[needs[j].Name].order
	})
}
