package entities

import (
	"time"

	"github.com/google/uuid"
)

// MealSlot is one of the three meals of a day.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
)

// AllSlots is the fixed planning order.
var AllSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner}

// DayType splits the week for the default schedule.
type DayType string

const (
	DayTypeWeekday DayType = "weekday"
	DayTypeWeekend DayType = "weekend"
)

// DayTypeFor classifies a date; Saturday and Sunday count as weekend.
func DayTypeFor(date time.Time) DayType {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return DayTypeWeekend
	}
	return DayTypeWeekday
}

// DateKeyLayout is the plan key format, one plan document per date.
const DateKeyLayout = "2006-01-02"

// MealPlanItem is one planned meal within a slot. The same recipe may
// appear more than once in a slot, and member references are not
// structurally enforced; consumers skip dangling IDs.
type MealPlanItem struct {
	ID        uuid.UUID   `json:"id"`
	RecipeID  uuid.UUID   `json:"recipe_id"`
	MemberIDs []uuid.UUID `json:"member_ids"`
	Done      bool        `json:"done"`
}

// DailyMealPlan holds the three slots of a single date, keyed by the
// ISO date string.
type DailyMealPlan struct {
	Date      string         `json:"date"`
	Breakfast []MealPlanItem `json:"breakfast"`
	Lunch     []MealPlanItem `json:"lunch"`
	Dinner    []MealPlanItem `json:"dinner"`
}

// NewDailyMealPlan returns the empty plan for a date, all three slots
// present and empty.
func NewDailyMealPlan(date time.Time) *DailyMealPlan {
	return &DailyMealPlan{
		Date:      date.Format(DateKeyLayout),
		Breakfast: []MealPlanItem{},
		Lunch:     []MealPlanItem{},
		Dinner:    []MealPlanItem{},
	}
}

// Slot returns the items of one slot.
func (p *DailyMealPlan) Slot(slot MealSlot) []MealPlanItem {
	switch slot {
	case SlotBreakfast:
		return p.Breakfast
	case SlotLunch:
		return p.Lunch
	case SlotDinner:
		return p.Dinner
	}
	return nil
}

// Append adds an item to a slot, keeping catalog order of insertion.
func (p *DailyMealPlan) Append(slot MealSlot, item MealPlanItem) {
	switch slot {
	case SlotBreakfast:
		p.Breakfast = append(p.Breakfast, item)
	case SlotLunch:
		p.Lunch = append(p.Lunch, item)
	case SlotDinner:
		p.Dinner = append(p.Dinner, item)
	}
}
