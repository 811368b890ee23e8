package domain

var (
	MessageSuccessProjectNeeds = "shopping needs projected successfully"
)

type (
	// ShoppingNeed is one projected shortage. Amount is the shortfall
	// accumulated over the horizon in the recipe's own (unconverted)
	// counting; DDay is the signed day count until the shortage is due,
	// 0 meaning today.
	ShoppingNeed struct {
		Name       string  `json:"name"`
		Amount     float64 `json:"amount"`
		Unit       string  `json:"unit"`
		DateNeeded string  `json:"date_needed"`
		DDay       int     `json:"dday"`
	}
)
