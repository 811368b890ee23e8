package planner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fridge-planner/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	utils.InitValidator()
	os.Exit(m.Run())
}

func TestPlanRepositoryLoadsPlans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.json")
	body := `{
		"plans": [
			{
				"date": "2026-09-01",
				"dinner": [
					{
						"id": "0e1d2c3b-4a5f-6e7d-8c9b-0a1b2c3d4e5f",
						"recipe_id": "8f9c2a1e-7b3d-4f5a-9c8e-1d2b3a4c5d6e",
						"member_ids": ["5f0d3f6a-2c4e-4d8b-9a1f-0e2c3b4d5e6f"],
						"done": false
					}
				]
			},
			{"date": "09/02/2026"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	plans, err := NewPlanRepository(path).GetPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 1) // the malformed date key is skipped

	assert.Equal(t, "2026-09-01", plans[0].Date)
	assert.NotNil(t, plans[0].Breakfast)
	assert.Empty(t, plans[0].Breakfast)
	require.Len(t, plans[0].Dinner, 1)
	assert.Equal(t, "8f9c2a1e-7b3d-4f5a-9c8e-1d2b3a4c5d6e", plans[0].Dinner[0].RecipeID.String())
}

func TestPlanRepositoryMissingFileMeansNoPlans(t *testing.T) {
	plans, err := NewPlanRepository(filepath.Join(t.TempDir(), "nope.json")).GetPlans(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, plans)
	assert.Empty(t, plans)
}
