package config

import (
	"math/rand"
	"time"

	"fridge-planner/internal/utils"
	"fridge-planner/pkg/catalog"
	"fridge-planner/pkg/household"
	"fridge-planner/pkg/match"
	"fridge-planner/pkg/planner"
	"fridge-planner/pkg/shopping"
)

// App bundles the wired repositories and services for the CLI.
type App struct {
	Catalog catalog.CatalogRepository
	Roster  household.RosterRepository
	Plans   planner.PlanRepository

	Match       match.MatchService
	Constraints household.ConstraintService
	Planner     planner.PlannerService
	Shopping    shopping.ShoppingService
}

func NewApp(cfg *Config) (*App, error) {
	utils.InitValidator()

	// Repository
	catalogRepository := catalog.NewCatalogRepository(cfg.Catalog.Source, cfg.Catalog.Timeout)
	rosterRepository := household.NewRosterRepository(cfg.Snapshot.HouseholdPath)
	planRepository := planner.NewPlanRepository(cfg.Snapshot.PlansPath)

	// Service
	matchService := match.NewMatchService(cfg.Match.ExpiringWindowDays)
	constraintService := household.NewConstraintService()

	seed := cfg.Planner.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	plannerService := planner.NewPlannerService(
		matchService,
		constraintService,
		cfg.Planner.TopK,
		rand.New(rand.NewSource(seed)),
	)
	shoppingService := shopping.NewShoppingService()

	return &App{
		Catalog:     catalogRepository,
		Roster:      rosterRepository,
		Plans:       planRepository,
		Match:       matchService,
		Constraints: constraintService,
		Planner:     plannerService,
		Shopping:    shoppingService,
	}, nil
}
