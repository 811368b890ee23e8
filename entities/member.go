package entities

import (
	"time"

	"github.com/google/uuid"
)

// Relationship markers.
const (
	RelationshipSelf   = "self"
	RelationshipFamily = "family"
)

// SlotSchedule holds the default participation for the three meal
// slots of one day type.
type SlotSchedule struct {
	Breakfast bool `json:"breakfast" yaml:"breakfast"`
	Lunch     bool `json:"lunch" yaml:"lunch"`
	Dinner    bool `json:"dinner" yaml:"dinner"`
}

// Eats reports the default participation for a slot.
func (s SlotSchedule) Eats(slot MealSlot) bool {
	switch slot {
	case SlotBreakfast:
		return s.Breakfast
	case SlotLunch:
		return s.Lunch
	case SlotDinner:
		return s.Dinner
	}
	return false
}

// MealSchedule is the per-day-type default participation schedule.
type MealSchedule struct {
	Weekday SlotSchedule `json:"weekday" yaml:"weekday"`
	Weekend SlotSchedule `json:"weekend" yaml:"weekend"`
}

// Member is a household participant. Allergies, Diseases and Dislikes
// are free-text tag sets; an empty set means "none known", so the
// redundant has-no-allergy flag of older clients cannot disagree with
// the set.
type Member struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Gender       string       `json:"gender"`
	BirthDate    time.Time    `json:"birth_date"`
	HeightCM     *float64     `json:"height_cm,omitempty"`
	WeightKG     *float64     `json:"weight_kg,omitempty"`
	Allergies    []string     `json:"allergies,omitempty"`
	Diseases     []string     `json:"diseases,omitempty"`
	Dislikes     []string     `json:"dislikes,omitempty"`
	Relationship string       `json:"relationship"`
	ProteinFocus bool         `json:"protein_focus"`
	QuickMeals   bool         `json:"quick_meals"`
	Schedule     MealSchedule `json:"schedule"`
}

// Age derives the member's age in full years at the given date.
func (m *Member) Age(today time.Time) int {
	years := today.Year() - m.BirthDate.Year()
	anniversary := m.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(today) {
		years--
	}
	return years
}

// ParticipatesIn reports whether the member's default schedule marks
// them as eating the given slot on the given date.
func (m *Member) ParticipatesIn(date time.Time, slot MealSlot) bool {
	if DayTypeFor(date) == DayTypeWeekend {
		return m.Schedule.Weekend.Eats(slot)
	}
	return m.Schedule.Weekday.Eats(slot)
}
