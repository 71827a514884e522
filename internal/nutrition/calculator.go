package nutrition

import (
	"math"

	"storefront/internal/domain"
)

const (
	proteinKcalPerGram = 4
	carbKcalPerGram    = 4
	fatKcalPerGram     = 9
	fatCalorieShare    = 0.25
)

var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// BMR is the Mifflin-St Jeor basal metabolic rate in kcal/day.
func BMR(p domain.UserProfile) float64 {
	base := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == domain.GenderMale {
		return base + 5
	}
	return base - 161
}

// TDEE scales the BMR by the profile's activity multiplier.
func TDEE(p domain.UserProfile) float64 {
	return BMR(p) * activityMultipliers[p.ActivityLevel]
}

func calorieAdjustment(g domain.Goal) float64 {
	switch g {
	case domain.GoalWeightLoss:
		return -500
	case domain.GoalWeightGain:
		return 500
	case domain.GoalMuscleGain:
		return 300
	default:
		return 0
	}
}

func proteinPerKg(g domain.Goal) float64 {
	switch g {
	case domain.GoalMuscleGain:
		return 2.2
	case domain.GoalWeightLoss:
		return 2.0
	default:
		return 1.6
	}
}

// CalculateTargets derives daily calorie and macro targets from a validated
// profile. Carbs may come out negative for extreme inputs; callers get the raw
// value.
func CalculateTargets(p domain.UserProfile) domain.MacroTargets {
	dailyCalories := roundHalfUp(TDEE(p) + calorieAdjustment(p.Goal))
	protein := roundHalfUp(p.Weight * proteinPerKg(p.Goal))

	proteinCalories := protein * proteinKcalPerGram
	fatCalories := dailyCalories * fatCalorieShare
	carbCalories := dailyCalories - proteinCalories - fatCalories

	return domain.MacroTargets{
		DailyCalories: int(dailyCalories),
		Protein:       int(protein),
		Carbs:         int(roundHalfUp(carbCalories / carbKcalPerGram)),
		Fats:          int(roundHalfUp(fatCalories / fatKcalPerGram)),
	}
}

// roundHalfUp rounds .5 toward positive infinity, matching the rounding the
// targets were tuned with (math.Round would move -12.5 to -13).
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
