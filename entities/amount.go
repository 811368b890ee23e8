package entities

import (
	"regexp"
	"strconv"
	"strings"
)

var amountPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)(?:\s*/\s*([0-9]+(?:\.[0-9]+)?))?`)

// ParseAmount reads the leading number of a free-text amount ("2개",
// "1/2큰술", "300g") and returns it with the remaining text as the
// unit. Fractions like "1/2" are evaluated. Text with no leading
// number ("약간") counts as a single use of the ingredient.
func ParseAmount(s string) (float64, string) {
	s = strings.TrimSpace(s)
	loc := amountPattern.FindStringSubmatch(s)
	if loc == nil || loc[1] == "" {
		return 1, s
	}
	qty, err := strconv.ParseFloat(loc[1], 64)
	if err != nil {
		return 1, s
	}
	if loc[2] != "" {
		den, err := strconv.ParseFloat(loc[2], 64)
		if err == nil && den != 0 {
			qty = qty / den
		}
	}
	unit := strings.TrimSpace(s[len(loc[0]):])
	return qty, unit
}
