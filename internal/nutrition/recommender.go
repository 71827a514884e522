package nutrition

import (
	"sort"

	"storefront/internal/domain"
)

const (
	// MaxSuggestedDishes caps the dishes returned with a plan.
	MaxSuggestedDishes = 6
	// MinHighProteinGrams is the protein floor for protein-focused goals.
	MinHighProteinGrams = 15
)

// RecommendDishes filters and ranks normalized dishes for the profile. The
// result may be empty.
func RecommendDishes(dishes []domain.Dish, p domain.UserProfile) []domain.Dish {
	out := make([]domain.Dish, 0, len(dishes))
	vegetarianOnly := p.HasRestriction(domain.VegetarianRestriction)
	proteinFocus := p.Goal == domain.GoalMuscleGain || p.Goal == domain.GoalWeightLoss

	for _, d := range dishes {
		if !d.Available {
			continue
		}
		if vegetarianOnly && !d.IsVegetarian {
			continue
		}
		if proteinFocus && d.Protein < MinHighProteinGrams {
			continue
		}
		out = append(out, d)
	}

	if proteinFocus {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Protein > out[j].Protein
		})
	}
	if len(out) > MaxSuggestedDishes {
		out = out[:MaxSuggestedDishes]
	}
	return out
}
