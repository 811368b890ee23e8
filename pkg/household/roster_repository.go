package household

import (
	"context"
	"fmt"
	"os"
	"time"

	"fridge-planner/domain"
	"fridge-planner/entities"
	"fridge-planner/internal/logging"
	"fridge-planner/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

type (
	// RosterRepository supplies the household-owned snapshots: the
	// member roster and the current fridge contents.
	RosterRepository interface {
		GetMembers(ctx context.Context) ([]*entities.Member, error)
		GetFridge(ctx context.Context) ([]*entities.Ingredient, error)
	}

	rosterRepository struct {
		path string
	}

	memberRecord struct {
		ID           string                `yaml:"id"`
		Name         string                `yaml:"name" validate:"required"`
		Gender       string                `yaml:"gender"`
		BirthDate    string                `yaml:"birth_date"`
		HeightCM     *float64              `yaml:"height_cm"`
		WeightKG     *float64              `yaml:"weight_kg"`
		Allergies    []string              `yaml:"allergies"`
		Diseases     []string              `yaml:"diseases"`
		Dislikes     []string              `yaml:"dislikes"`
		Relationship string                `yaml:"relationship"`
		ProteinFocus bool                  `yaml:"protein_focus"`
		QuickMeals   bool                  `yaml:"quick_meals"`
		Schedule     entities.MealSchedule `yaml:"schedule"`
	}

	fridgeRecord struct {
		ID         string  `yaml:"id"`
		Name       string  `yaml:"name" validate:"required"`
		Category   string  `yaml:"category"`
		Quantity   float64 `yaml:"quantity" validate:"min=0"`
		Unit       string  `yaml:"unit"`
		Storage    string  `yaml:"storage"`
		ExpiryDate string  `yaml:"expiry_date" validate:"required"`
	}

	householdFile struct {
		Members []memberRecord `yaml:"members"`
		Fridge  []fridgeRecord `yaml:"fridge"`
	}
)

func NewRosterRepository(path string) RosterRepository {
	return &rosterRepository{path: path}
}

func (r *rosterRepository) GetMembers(ctx context.Context) ([]*entities.Member, error) {
	file, err := r.load()
	if err != nil {
		return nil, err
	}

	members := make([]*entities.Member, 0, len(file.Members))
	for _, rec := range file.Members {
		if err := utils.Validate.Struct(rec); err != nil {
			logging.LogWarn("skipping invalid member record", zap.String("name", rec.Name), zap.Error(err))
			continue
		}
		member := &entities.Member{
			ID:           parseOrNewUUID(rec.ID),
			Name:         rec.Name,
			Gender:       rec.Gender,
			HeightCM:     rec.HeightCM,
			WeightKG:     rec.WeightKG,
			Allergies:    rec.Allergies,
			Diseases:     rec.Diseases,
			Dislikes:     rec.Dislikes,
			Relationship: rec.Relationship,
			ProteinFocus: rec.ProteinFocus,
			QuickMeals:   rec.QuickMeals,
			Schedule:     rec.Schedule,
		}
		if rec.BirthDate != "" {
			birth, err := time.Parse(entities.DateKeyLayout, rec.BirthDate)
			if err != nil {
				logging.LogWarn("skipping member with invalid birth date", zap.String("name", rec.Name))
				continue
			}
			member.BirthDate = birth
		}
		members = append(members, member)
	}
	return members, nil
}

func (r *rosterRepository) GetFridge(ctx context.Context) ([]*entities.Ingredient, error) {
	file, err := r.load()
	if err != nil {
		return nil, err
	}

	fridge := make([]*entities.Ingredient, 0, len(file.Fridge))
	for _, rec := range file.Fridge {
		if err := utils.Validate.Struct(rec); err != nil {
			logging.LogWarn("skipping invalid fridge record", zap.String("name", rec.Name), zap.Error(err))
			continue
		}
		expiry, err := time.Parse(entities.DateKeyLayout, rec.ExpiryDate)
		if err != nil {
			logging.LogWarn("skipping fridge record with invalid expiry date", zap.String("name", rec.Name))
			continue
		}
		category := rec.Category
		if category == "" {
			category = entities.CategoryOther
		}
		storage := rec.Storage
		if storage == "" {
			storage = entities.StorageFridge
		}
		fridge = append(fridge, &entities.Ingredient{
			ID:         parseOrNewUUID(rec.ID),
			Name:       rec.Name,
			Category:   category,
			Quantity:   rec.Quantity,
			Unit:       rec.Unit,
			Storage:    storage,
			ExpiryDate: expiry,
		})
	}
	return fridge, nil
}

func (r *rosterRepository) load() (*householdFile, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrHouseholdFileUnreadable, err)
	}
	var file householdFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrHouseholdFileUnreadable, err)
	}
	return &file, nil
}

// parseOrNewUUID keeps authored IDs when they parse and mints one
// otherwise, so hand-written snapshot files stay convenient.
func parseOrNewUUID(s string) uuid.UUID {
	if s == "" {
		return uuid.New()
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.New()
	}
	return id
}
