package nutrition

import (
	"strconv"

	"storefront/internal/domain"
)

// NormalizeMacro converts a stored macro to a single non-negative number.
// Text yields its first run of digits, so a range such as "250-290 kcal"
// normalizes to its lower bound and "2.5g" to 2.
func NormalizeMacro(v domain.MacroValue) float64 {
	switch v.Kind {
	case domain.MacroNumber:
		if v.Number < 0 {
			return 0
		}
		return v.Number
	case domain.MacroText:
		return leadingInteger(v.Text)
	default:
		return 0
	}
}

func leadingInteger(s string) float64 {
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return parseDigits(s[start:i])
		}
	}
	if start < 0 {
		return 0
	}
	return parseDigits(s[start:])
}

func parseDigits(digits string) float64 {
	n, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0
	}
	return n
}

// NormalizeDish converts a catalog row into a Dish with numeric macros.
func NormalizeDish(raw domain.RawDish) domain.Dish {
	return domain.Dish{
		ID:            raw.ID,
		Name:          raw.Name,
		Description:   raw.Description,
		Calories:      NormalizeMacro(raw.Calories),
		Protein:       NormalizeMacro(raw.Protein),
		Carbs:         NormalizeMacro(raw.Carbs),
		Fats:          NormalizeMacro(raw.Fats),
		Price:         raw.Price,
		Category:      raw.Category,
		IsVegetarian:  bool(raw.IsVegetarian),
		IsHighProtein: bool(raw.IsHighProtein),
		IsLowCalorie:  bool(raw.IsLowCalorie),
		ImageURL:      raw.ImageURL,
		Available:     bool(raw.Available),
		CreatedAt:     raw.CreatedAt,
		UpdatedAt:     raw.UpdatedAt,
	}
}

// NormalizeDishes normalizes every row, preserving order.
func NormalizeDishes(raw []domain.RawDish) []domain.Dish {
	out := make([]domain.Dish, 0, len(raw))
	for _, r := range raw {
		out = append(out, NormalizeDish(r))
	}
	return out
}
