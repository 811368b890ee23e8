package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"fridge-planner/cmd/config"
	"fridge-planner/domain"
	"fridge-planner/entities"
	"fridge-planner/internal/logging"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const usage = `usage: planner <command> [flags]

commands:
  recommend   rank catalog recipes for one meal slot
  plan        generate a multi-day meal plan
  shopping    project shopping needs over a horizon
  cook        deduct a recipe's ingredients from the fridge
`

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logging.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	app, err := config.NewApp(cfg)
	if err != nil {
		logging.LogError("failed to build application", zap.Error(err))
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(2)
	}

	ctx := context.Background()
	switch os.Args[1] {
	case "recommend":
		err = runRecommend(ctx, app, os.Args[2:])
	case "plan":
		err = runPlan(ctx, app, os.Args[2:])
	case "shopping":
		err = runShopping(ctx, app, cfg, os.Args[2:])
	case "cook":
		err = runCook(ctx, app, os.Args[2:])
	default:
		fmt.Print(usage)
		os.Exit(2)
	}
	if err != nil {
		logging.LogError(domain.MessageFailedProcessRequest, zap.Error(err))
		os.Exit(1)
	}
}

func runRecommend(ctx context.Context, app *config.App, args []string) error {
	fs := flag.NewFlagSet("recommend", flag.ExitOnError)
	slotFlag := fs.String("slot", string(entities.SlotDinner), "meal slot: breakfast, lunch or dinner")
	dateFlag := fs.String("date", "", "target date (YYYY-MM-DD, default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	slot, err := parseSlot(*slotFlag)
	if err != nil {
		return err
	}
	date, err := parseDate(*dateFlag)
	if err != nil {
		return err
	}

	fridge, members, catalog, err := loadSnapshots(ctx, app)
	if err != nil {
		return err
	}

	ranked := app.Planner.Recommend(slot, date, fridge, members, catalog)
	logging.LogInfo(domain.MessageSuccessGetRecommended,
		zap.String("slot", string(slot)),
		zap.Int("candidates", len(ranked)),
	)
	return printJSON(domain.RecommendationResponse{
		Recipes:       ranked,
		TotalRecipes:  len(ranked),
		ExpiringItems: app.Match.CountExpiring(fridge, date),
	})
}

func runPlan(ctx context.Context, app *config.App, args []string) error {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	startFlag := fs.String("start", "", "first day of the plan (YYYY-MM-DD, default today)")
	daysFlag := fs.Int("days", 3, "number of days to plan")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *daysFlag <= 0 {
		return domain.ErrInvalidPlanRange
	}

	start, err := parseDate(*startFlag)
	if err != nil {
		return err
	}

	fridge, members, catalog, err := loadSnapshots(ctx, app)
	if err != nil {
		return err
	}

	plans := app.Planner.GeneratePlan(start, *daysFlag, fridge, members, catalog)
	logging.LogInfo(domain.MessageSuccessGeneratePlan, zap.Int("days", len(plans)))
	return printJSON(plans)
}

func runShopping(ctx context.Context, app *config.App, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("shopping", flag.ExitOnError)
	fromFlag := fs.String("from", "", "first day of the horizon (YYYY-MM-DD, default today)")
	horizonFlag := fs.Int("horizon", cfg.Shopping.HorizonDays, "horizon length in days")
	if err := fs.Parse(args); err != nil {
		return err
	}

	from, err := parseDate(*fromFlag)
	if err != nil {
		return err
	}

	fridge, _, catalog, err := loadSnapshots(ctx, app)
	if err != nil {
		return err
	}
	plans, err := app.Plans.GetPlans(ctx)
	if err != nil {
		return err
	}

	needs := app.Shopping.Project(from, *horizonFlag, plans, fridge, catalog)
	logging.LogInfo(domain.MessageSuccessProjectNeeds, zap.Int("shortages", len(needs)))
	return printJSON(needs)
}

func runCook(ctx context.Context, app *config.App, args []string) error {
	fs := flag.NewFlagSet("cook", flag.ExitOnError)
	nameFlag := fs.String("recipe", "", "name of the catalog recipe that was cooked")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fridge, _, catalog, err := loadSnapshots(ctx, app)
	if err != nil {
		return err
	}

	var recipe *entities.Recipe
	for _, r := range catalog {
		if r.Name == *nameFlag {
			recipe = r
			break
		}
	}
	if recipe == nil {
		return fmt.Errorf("recipe %q not found in catalog", *nameFlag)
	}

	return printJSON(app.Match.ApplyCook(recipe, fridge))
}

func loadSnapshots(ctx context.Context, app *config.App) ([]*entities.Ingredient, []*entities.Member, []*entities.Recipe, error) {
	fridge, err := app.Roster.GetFridge(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	members, err := app.Roster.GetMembers(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	catalog, err := app.Catalog.GetRecipes(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return fridge, members, catalog, nil
}

func parseSlot(s string) (entities.MealSlot, error) {
	slot := entities.MealSlot(s)
	for _, known := range entities.AllSlots {
		if slot == known {
			return slot, nil
		}
	}
	return "", domain.ErrUnknownSlot
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse(entities.DateKeyLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return date, nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
