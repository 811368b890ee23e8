package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"fridge-planner/domain"
	"fridge-planner/entities"
	"fridge-planner/internal/logging"
	"fridge-planner/internal/utils"

	"go.uber.org/zap"
)

type (
	// PlanRepository supplies the household's existing meal plans,
	// one document per date.
	PlanRepository interface {
		GetPlans(ctx context.Context) ([]*entities.DailyMealPlan, error)
	}

	planRepository struct {
		path string
	}

	planFile struct {
		Plans []planRecord `json:"plans"`
	}

	planRecord struct {
		Date      string                  `json:"date" validate:"required,datetime=2006-01-02"`
		Breakfast []entities.MealPlanItem `json:"breakfast"`
		Lunch     []entities.MealPlanItem `json:"lunch"`
		Dinner    []entities.MealPlanItem `json:"dinner"`
	}
)

func NewPlanRepository(path string) PlanRepository {
	return &planRepository{path: path}
}

// GetPlans loads the plan snapshot. A missing file is an empty plan
// collection, not an error; malformed documents are skipped.
func (r *planRepository) GetPlans(ctx context.Context) ([]*entities.DailyMealPlan, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*entities.DailyMealPlan{}, nil
		}
		return nil, fmt.Errorf("%s: %w", domain.MessageFailedLoadPlans, err)
	}

	var file planFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", domain.MessageFailedLoadPlans, err)
	}

	plans := make([]*entities.DailyMealPlan, 0, len(file.Plans))
	for _, rec := range file.Plans {
		if err := utils.Validate.Struct(rec); err != nil {
			logging.LogWarn("skipping invalid meal plan document", zap.String("date", rec.Date), zap.Error(err))
			continue
		}
		plans = append(plans, &entities.DailyMealPlan{
			Date:      rec.Date,
			Breakfast: orEmpty(rec.Breakfast),
			Lunch:     orEmpty(rec.Lunch),
			Dinner:    orEmpty(rec.Dinner),
		})
	}
	return plans, nil
}

func orEmpty(items []entities.MealPlanItem) []entities.MealPlanItem {
	if items == nil {
		return []entities.MealPlanItem{}
	}
	return items
}
