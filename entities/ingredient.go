package entities

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Ingredient categories. Free-text names are matched by substring, but
// the category itself is a closed set.
const (
	CategoryVegetable = "vegetable"
	CategoryFruit     = "fruit"
	CategoryMeat      = "meat"
	CategorySeafood   = "seafood"
	CategoryGrain     = "grain"
	CategoryDairy     = "dairy"
	CategorySauce     = "sauce"
	CategoryProcessed = "processed"
	CategoryOther     = "other"
)

// Storage locations.
const (
	StorageFridge  = "fridge"
	StorageFreezer = "freezer"
	StorageRoom    = "room"
)

// Ingredient is a single fridge entry owned by the household.
type Ingredient struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	Storage    string    `json:"storage"`
	ExpiryDate time.Time `json:"expiry_date"`
}

// DaysUntilExpiry returns the whole number of days until the item
// expires, rounded up. Zero means it expires today, negative means it
// is already past its date.
func (i *Ingredient) DaysUntilExpiry(today time.Time) int {
	return int(math.Ceil(i.ExpiryDate.Sub(today).Hours() / 24))
}

// IsExpiringSoon reports whether the item expires within windowDays.
func (i *Ingredient) IsExpiringSoon(today time.Time, windowDays int) bool {
	return i.DaysUntilExpiry(today) <= windowDays
}

// NamesOverlap is the shared fuzzy ingredient test: two names match
// when either contains the other. The check is case-sensitive and a
// blank name never matches ("대파" still matches "대파(흰부분)").
func NamesOverlap(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
