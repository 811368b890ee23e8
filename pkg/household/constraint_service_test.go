package household

import (
	"testing"
	"time"

	"fridge-planner/domain"
	"fridge-planner/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func member(name string, mutate func(*entities.Member)) *entities.Member {
	m := &entities.Member{
		ID:           uuid.New(),
		Name:         name,
		Relationship: entities.RelationshipFamily,
		Schedule: entities.MealSchedule{
			Weekday: entities.SlotSchedule{Breakfast: true, Lunch: true, Dinner: true},
			Weekend: entities.SlotSchedule{Breakfast: true, Lunch: true, Dinner: true},
		},
	}
	if mutate != nil {
		mutate(m)
	}
	return m
}

func shrimpRecipe() *entities.Recipe {
	return &entities.Recipe{
		ID:   uuid.New(),
		Name: "새우볶음밥",
		Ingredients: []entities.RequiredIngredient{
			{Name: "새우", Amount: "200g"},
			{Name: "밥", Amount: "2공기"},
		},
	}
}

func TestCheckWarningsAllergy(t *testing.T) {
	svc := NewConstraintService()

	allergic := member("아빠", func(m *entities.Member) { m.Allergies = []string{"새우"} })
	recipe := shrimpRecipe()

	warnings := svc.CheckWarnings(recipe, []uuid.UUID{allergic.ID}, []*entities.Member{allergic})
	require.Len(t, warnings, 1)
	assert.Equal(t, domain.WarningAllergy, warnings[0].Kind)
	assert.Equal(t, "아빠", warnings[0].MemberName)
	assert.Equal(t, "새우", warnings[0].Tag)
	assert.Contains(t, warnings[0].Message, "아빠")
	assert.Contains(t, warnings[0].Message, "새우")

	assert.False(t, svc.IsSafeFor(recipe, allergic))
}

func TestCheckWarningsDeclaredAllergens(t *testing.T) {
	svc := NewConstraintService()

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		Name:        "해물탕",
		Ingredients: []entities.RequiredIngredient{{Name: "모둠해물", Amount: "1팩"}},
		Allergens:   []string{"갑각류"},
	}
	allergic := member("엄마", func(m *entities.Member) { m.Allergies = []string{"갑각류"} })

	warnings := svc.CheckWarnings(recipe, []uuid.UUID{allergic.ID}, []*entities.Member{allergic})
	require.Len(t, warnings, 1)
	assert.Equal(t, domain.WarningAllergy, warnings[0].Kind)
}

func TestCheckWarningsDislikeIsNotSafetyIssue(t *testing.T) {
	svc := NewConstraintService()

	picky := member("막내", func(m *entities.Member) { m.Dislikes = []string{"당근"} })
	recipe := &entities.Recipe{
		ID:          uuid.New(),
		Name:        "당근볶음",
		Ingredients: []entities.RequiredIngredient{{Name: "당근", Amount: "1개"}},
	}

	warnings := svc.CheckWarnings(recipe, []uuid.UUID{picky.ID}, []*entities.Member{picky})
	require.Len(t, warnings, 1)
	assert.Equal(t, domain.WarningDislike, warnings[0].Kind)
	assert.False(t, warnings[0].IsSafety())

	assert.True(t, svc.IsSafeFor(recipe, picky))
}

func TestCheckWarningsUnknownMemberSkipped(t *testing.T) {
	svc := NewConstraintService()

	known := member("아빠", func(m *entities.Member) { m.Allergies = []string{"새우"} })
	ids := []uuid.UUID{known.ID, uuid.New()} // second id resolves to nobody

	warnings := svc.CheckWarnings(shrimpRecipe(), ids, []*entities.Member{known})
	assert.Len(t, warnings, 1)
}

func TestCheckWarningsMonotonicOnMemberRemoval(t *testing.T) {
	svc := NewConstraintService()

	a := member("아빠", func(m *entities.Member) { m.Allergies = []string{"새우"} })
	b := member("막내", func(m *entities.Member) { m.Dislikes = []string{"새우"} })
	recipe := shrimpRecipe()

	all := svc.CheckWarnings(recipe, []uuid.UUID{a.ID, b.ID}, []*entities.Member{a, b})
	reduced := svc.CheckWarnings(recipe, []uuid.UUID{b.ID}, []*entities.Member{a, b})

	assert.LessOrEqual(t, len(reduced), len(all))
	messages := make(map[string]bool, len(all))
	for _, w := range all {
		messages[w.Message] = true
	}
	for _, w := range reduced {
		assert.True(t, messages[w.Message], "warning %q not in the original set", w.Message)
	}
}

func TestParticipantsForSchedule(t *testing.T) {
	svc := NewConstraintService()

	weekdayOnly := member("아빠", func(m *entities.Member) {
		m.Schedule = entities.MealSchedule{
			Weekday: entities.SlotSchedule{Dinner: true},
		}
	})
	everyDay := member("엄마", nil)
	members := []*entities.Member{weekdayOnly, everyDay}

	tuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	assert.Len(t, svc.ParticipantsFor(tuesday, entities.SlotDinner, members), 2)
	assert.Len(t, svc.ParticipantsFor(tuesday, entities.SlotBreakfast, members), 1)

	weekend := svc.ParticipantsFor(saturday, entities.SlotDinner, members)
	require.Len(t, weekend, 1)
	assert.Equal(t, "엄마", weekend[0].Name)
}
