package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"fridge-planner/domain"
	"fridge-planner/entities"
	"fridge-planner/internal/logging"
	"fridge-planner/internal/utils"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	// CatalogRepository supplies the shared, read-only recipe catalog.
	CatalogRepository interface {
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
	}

	fileCatalogRepository struct {
		path string
	}

	remoteCatalogRepository struct {
		client *resty.Client
	}

	recipeRecord struct {
		ID                 string                        `json:"id"`
		Name               string                        `json:"name" validate:"required"`
		Category           string                        `json:"category"`
		DishType           string                        `json:"dish_type"`
		Tags               []string                      `json:"tags"`
		Ingredients        []entities.RequiredIngredient `json:"ingredients"`
		Allergens          []string                      `json:"allergens"`
		Nutrition          entities.NutritionFacts       `json:"nutrition"`
		CookingTimeMinutes int                           `json:"cooking_time_minutes" validate:"min=0"`
		Difficulty         string                        `json:"difficulty"`
		Steps              []string                      `json:"steps"`
		Rating             float64                       `json:"rating"`
		ReviewCount        int                           `json:"review_count"`
	}

	catalogFile struct {
		Recipes []recipeRecord `json:"recipes"`
	}
)

// NewCatalogRepository picks the implementation from the source: an
// http(s) URL gets the remote client, anything else is a local JSON
// file path.
func NewCatalogRepository(source string, timeout time.Duration) CatalogRepository {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		client := resty.New().
			SetBaseURL(source).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json")
		return &remoteCatalogRepository{client: client}
	}
	return &fileCatalogRepository{path: source}
}

func (r *fileCatalogRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	return toEntities(file.Recipes), nil
}

func (r *remoteCatalogRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var file catalogFile
	resp, err := r.client.R().
		SetContext(ctx).
		SetResult(&file).
		Get("/recipes")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: catalog service returned %s", domain.ErrCatalogUnavailable, resp.Status())
	}
	return toEntities(file.Recipes), nil
}

// toEntities validates and converts records, keeping catalog order.
// Invalid records are skipped so one bad row cannot take the catalog
// down.
func toEntities(records []recipeRecord) []*entities.Recipe {
	recipes := make([]*entities.Recipe, 0, len(records))
	for _, rec := range records {
		if err := utils.Validate.Struct(rec); err != nil {
			logging.LogWarn("skipping invalid catalog recipe", zap.String("name", rec.Name), zap.Error(err))
			continue
		}
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			id = uuid.New()
		}
		recipes = append(recipes, &entities.Recipe{
			ID:                 id,
			Name:               rec.Name,
			Category:           rec.Category,
			DishType:           rec.DishType,
			Tags:               rec.Tags,
			Ingredients:        rec.Ingredients,
			Allergens:          rec.Allergens,
			Nutrition:          rec.Nutrition,
			CookingTimeMinutes: rec.CookingTimeMinutes,
			Difficulty:         rec.Difficulty,
			Steps:              rec.Steps,
			Rating:             rec.Rating,
			ReviewCount:        rec.ReviewCount,
		})
	}
	return recipes
}
