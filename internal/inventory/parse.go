package inventory

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/culinarycompanion/internal/domain"
)

// knownUnits are the unit words the quick-add parser recognises. Anything
// else after the number is treated as part of the name ("3 eggs").
var knownUnits = map[string]string{
	"g": "g", "gram": "g", "grams": "g",
	"kg": "kg", "kilo": "kg", "kilos": "kg",
	"ml": "ml", "l": "l", "liter": "l", "liters": "l", "litre": "l", "litres": "l",
	"cup": "cups", "cups": "cups",
	"tbsp": "tbsp", "tablespoon": "tbsp", "tablespoons": "tbsp",
	"tsp": "tsp", "teaspoon": "tsp", "teaspoons": "tsp",
	"oz": "oz", "lb": "lb", "lbs": "lb",
	"piece": "pieces", "pieces": "pieces", "pc": "pieces", "pcs": "pieces",
	"slice": "slices", "slices": "slices",
	"can": "cans", "cans": "cans",
	"pack": "packs", "packs": "packs",
	"bunch": "bunches", "bunches": "bunches",
	"pinch": "pinch", "handful": "handful",
}

// leading amount, optionally glued to a unit ("100ml", "2.5kg").
var amountRe = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)\s*([a-zA-Z]*)$`)

// ParseItem turns a quick-add line like "2 cups flour", "100ml milk" or
// just "flour" into an ingredient. A bare name gets amount 1 and no unit.
// Returns false when no name is left after parsing.
func ParseItem(line string) (domain.Ingredient, bool) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return domain.Ingredient{}, false
	}

	amount := 1.0
	unit := ""
	rest := fields

	if m := amountRe.FindStringSubmatch(fields[0]); m != nil {
		parsed, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err == nil {
			amount = parsed
			rest = fields[1:]
			if m[2] != "" {
				// Glued unit: "100ml".
				if u, ok := knownUnits[strings.ToLower(m[2])]; ok {
					unit = u
				} else {
					// "3eggs" — treat the suffix as the name start.
					rest = append([]string{m[2]}, rest...)
				}
			} else if len(rest) > 1 {
				// Separate unit word: "2 cups flour" but not "3 eggs".
				if u, ok := knownUnits[strings.ToLower(rest[0])]; ok {
					unit = u
					rest = rest[1:]
				}
			}
		}
	}

	name := strings.TrimSpace(strings.Join(rest, " "))
	if name == "" {
		return domain.Ingredient{}, false
	}

	return domain.Ingredient{
		ID:     domain.NewID(),
		Name:   name,
		Amount: amount,
		Unit:   unit,
	}, true
}
