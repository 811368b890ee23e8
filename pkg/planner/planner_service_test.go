package planner

import (
	"math/rand"
	"testing"
	"time"

	"fridge-planner/entities"
	"fridge-planner/pkg/household"
	"fridge-planner/pkg/match"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tuesday
var start = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func newService(seed int64) PlannerService {
	return NewPlannerService(
		match.NewMatchService(7),
		household.NewConstraintService(),
		5,
		rand.New(rand.NewSource(seed)),
	)
}

func testMember(mutate func(*entities.Member)) *entities.Member {
	m := &entities.Member{
		ID:   uuid.New(),
		Name: "엄마",
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

func testRecipe(name string, ingredients ...string) *entities.Recipe {
	required := make([]entities.RequiredIngredient, 0, len(ingredients))
	for _, n := range ingredients {
		required = append(required, entities.RequiredIngredient{Name: n, Amount: "1개"})
	}
	return &entities.Recipe{ID: uuid.New(), Name: name, Ingredients: required}
}

func testFridge(names ...string) []*entities.Ingredient {
	fridge := make([]*entities.Ingredient, 0, len(names))
	for _, n := range names {
		fridge = append(fridge, &entities.Ingredient{
			ID:         uuid.New(),
			Name:       n,
			Quantity:   5,
			ExpiryDate: start.AddDate(0, 0, 30),
		})
	}
	return fridge
}

func TestRecommendOrdering(t *testing.T) {
	svc := newService(1)
	members := []*entities.Member{testMember(nil)}
	fridge := testFridge("양파", "당근")

	full := testRecipe("가득", "양파", "당근")    // 100%
	half := testRecipe("절반", "양파", "두부")    // 50%
	none := testRecipe("없음", "두부", "계란")    // 0%
	catalog := []*entities.Recipe{none, half, full}

	ranked := svc.Recommend(entities.SlotDinner, start, fridge, members, catalog)
	require.Len(t, ranked, 3)
	assert.Equal(t, "가득", ranked[0].Recipe.Name)
	assert.Equal(t, "절반", ranked[1].Recipe.Name)
	assert.Equal(t, "없음", ranked[2].Recipe.Name)
}

func TestRecommendExpiringBreaksTies(t *testing.T) {
	svc := newService(1)
	members := []*entities.Member{testMember(nil)}

	fridge := []*entities.Ingredient{
		{ID: uuid.New(), Name: "양파", Quantity: 2, ExpiryDate: start.AddDate(0, 0, 30)},
		{ID: uuid.New(), Name: "우유", Quantity: 1, ExpiryDate: start.AddDate(0, 0, 2)},
	}
	fresh := testRecipe("양파전", "양파")
	urgent := testRecipe("우유죽", "우유")
	catalog := []*entities.Recipe{fresh, urgent}

	ranked := svc.Recommend(entities.SlotDinner, start, fridge, members, catalog)
	require.Len(t, ranked, 2)
	assert.Equal(t, "우유죽", ranked[0].Recipe.Name)
	assert.True(t, ranked[0].HasExpiringMatch)
}

func TestRecommendStableOnFullTies(t *testing.T) {
	svc := newService(1)
	members := []*entities.Member{testMember(nil)}
	fridge := testFridge("양파")

	a := testRecipe("첫째", "양파")
	b := testRecipe("둘째", "양파")
	c := testRecipe("셋째", "양파")
	catalog := []*entities.Recipe{a, b, c}

	for i := 0; i < 5; i++ {
		ranked := svc.Recommend(entities.SlotDinner, start, fridge, members, catalog)
		require.Len(t, ranked, 3)
		assert.Equal(t, "첫째", ranked[0].Recipe.Name)
		assert.Equal(t, "둘째", ranked[1].Recipe.Name)
		assert.Equal(t, "셋째", ranked[2].Recipe.Name)
	}
}

func TestRecommendExcludesUnsafeRecipes(t *testing.T) {
	svc := newService(1)
	allergic := testMember(func(m *entities.Member) { m.Allergies = []string{"새우"} })
	fridge := testFridge("새우", "양파")

	shrimp := testRecipe("새우볶음", "새우") // 100% match but unsafe
	onion := testRecipe("양파전", "양파", "밀가루")
	catalog := []*entities.Recipe{shrimp, onion}

	ranked := svc.Recommend(entities.SlotDinner, start, fridge, []*entities.Member{allergic}, catalog)
	require.Len(t, ranked, 1)
	assert.Equal(t, "양파전", ranked[0].Recipe.Name)
}

func TestRecommendEmptyWhenNothingSafe(t *testing.T) {
	svc := newService(1)
	allergic := testMember(func(m *entities.Member) { m.Allergies = []string{"새우"} })

	catalog := []*entities.Recipe{testRecipe("새우볶음", "새우")}
	ranked := svc.Recommend(entities.SlotDinner, start, testFridge("새우"), []*entities.Member{allergic}, catalog)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestGeneratePlanAllSlotsEmptyWithoutSafeRecipes(t *testing.T) {
	svc := newService(1)
	allergic := testMember(func(m *entities.Member) { m.Allergies = []string{"새우"} })
	catalog := []*entities.Recipe{testRecipe("새우볶음", "새우")}

	plans := svc.GeneratePlan(start, 3, testFridge("새우"), []*entities.Member{allergic}, catalog)
	require.Len(t, plans, 3)
	for i, plan := range plans {
		assert.Equal(t, start.AddDate(0, 0, i).Format(entities.DateKeyLayout), plan.Date)
		assert.Empty(t, plan.Breakfast)
		assert.Empty(t, plan.Lunch)
		assert.Empty(t, plan.Dinner)
		assert.NotNil(t, plan.Breakfast)
		assert.NotNil(t, plan.Lunch)
		assert.NotNil(t, plan.Dinner)
	}
}

func TestGeneratePlanPicksFromTopFive(t *testing.T) {
	members := []*entities.Member{testMember(nil)}
	fridge := testFridge("양파", "당근", "감자")

	// ten recipes with strictly decreasing match rates
	catalog := []*entities.Recipe{
		testRecipe("1위", "양파", "당근", "감자"),
		testRecipe("2위", "양파", "당근", "두부"),
		testRecipe("3위", "양파", "두부", "계란"),
		testRecipe("4위", "양파", "당근"),
		testRecipe("5위", "양파", "두부"),
		testRecipe("6위", "두부", "계란"),
		testRecipe("7위", "두부", "김치"),
		testRecipe("8위", "계란", "김치"),
		testRecipe("9위", "김치", "어묵"),
		testRecipe("10위", "어묵", "멸치"),
	}
	topFive := map[string]bool{"1위": true, "2위": true, "3위": true, "4위": true, "5위": true}

	recipesByID := map[uuid.UUID]string{}
	for _, r := range catalog {
		recipesByID[r.ID] = r.Name
	}

	for seed := int64(1); seed <= 10; seed++ {
		svc := newService(seed)
		plans := svc.GeneratePlan(start, 1, fridge, members, catalog)
		require.Len(t, plans, 1)
		for _, slot := range entities.AllSlots {
			items := plans[0].Slot(slot)
			require.Len(t, items, 1)
			name := recipesByID[items[0].RecipeID]
			assert.True(t, topFive[name], "seed %d picked %s outside the top five", seed, name)
		}
	}
}

func TestGeneratePlanDeterministicWithSameSeed(t *testing.T) {
	members := []*entities.Member{testMember(nil)}
	fridge := testFridge("양파", "당근")
	catalog := []*entities.Recipe{
		testRecipe("하나", "양파"),
		testRecipe("둘", "당근"),
		testRecipe("셋", "양파", "당근"),
	}

	first := newService(42).GeneratePlan(start, 5, fridge, members, catalog)
	second := newService(42).GeneratePlan(start, 5, fridge, members, catalog)

	require.Len(t, second, len(first))
	for i := range first {
		for _, slot := range entities.AllSlots {
			a, b := first[i].Slot(slot), second[i].Slot(slot)
			require.Len(t, b, len(a))
			for j := range a {
				assert.Equal(t, a[j].RecipeID, b[j].RecipeID)
			}
		}
	}
}

func TestGeneratePlanSkipsSlotsNobodyEats(t *testing.T) {
	svc := newService(1)
	dinnerOnly := testMember(func(m *entities.Member) {
		m.Schedule = entities.MealSchedule{
			Weekday: entities.SlotSchedule{Dinner: true},
			Weekend: entities.SlotSchedule{Dinner: true},
		}
	})
	catalog := []*entities.Recipe{testRecipe("양파전", "양파")}

	plans := svc.GeneratePlan(start, 1, testFridge("양파"), []*entities.Member{dinnerOnly}, catalog)
	require.Len(t, plans, 1)
	assert.Empty(t, plans[0].Breakfast)
	assert.Empty(t, plans[0].Lunch)
	require.Len(t, plans[0].Dinner, 1)
	assert.Equal(t, []uuid.UUID{dinnerOnly.ID}, plans[0].Dinner[0].MemberIDs)
}

func TestResetDayIdempotent(t *testing.T) {
	svc := newService(1)

	first := svc.ResetDay(start)
	second := svc.ResetDay(start)

	assert.Equal(t, first.Date, second.Date)
	assert.Empty(t, first.Breakfast)
	assert.Empty(t, first.Lunch)
	assert.Empty(t, first.Dinner)
	assert.Equal(t, first, second)
}
