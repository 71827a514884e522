package domain

import (
	"fmt"
	"strings"
)

// Gender enumerates the sexes supported by the BMR equation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel enumerates daily activity bands.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Goal enumerates nutrition goals.
type Goal string

const (
	GoalWeightLoss  Goal = "weight_loss"
	GoalMaintenance Goal = "maintenance"
	GoalWeightGain  Goal = "weight_gain"
	GoalMuscleGain  Goal = "muscle_gain"
)

// Words renders the goal for prose, e.g. "muscle gain".
func (g Goal) Words() string {
	return strings.ReplaceAll(string(g), "_", " ")
}

// VegetarianRestriction is the only dietary label that filters the catalog.
const VegetarianRestriction = "Vegetarian"

const (
	MinAge    = 13
	MaxAge    = 100
	MinWeight = 30.0
	MaxWeight = 300.0
	MinHeight = 120.0
	MaxHeight = 250.0
)

// UserProfile is the anthropometric input to the nutrition planner.
type UserProfile struct {
	Age                 int           `json:"age"`
	Weight              float64       `json:"weight"`
	Height              float64       `json:"height"`
	Gender              Gender        `json:"gender"`
	ActivityLevel       ActivityLevel `json:"activityLevel"`
	Goal                Goal          `json:"goal"`
	DietaryRestrictions []string      `json:"dietaryRestrictions,omitempty"`
	HealthConditions    string        `json:"healthConditions,omitempty"`
}

// Validate checks bounds and enum membership. The calculator assumes a profile
// that passed this check.
func (p UserProfile) Validate() error {
	if p.Age < MinAge || p.Age > MaxAge {
		return fmt.Errorf("%w: age must be between %d and %d", ErrInvalidProfile, MinAge, MaxAge)
	}
	if p.Weight < MinWeight || p.Weight > MaxWeight {
		return fmt.Errorf("%w: weight must be between %g and %g", ErrInvalidProfile, MinWeight, MaxWeight)
	}
	if p.Height < MinHeight || p.Height > MaxHeight {
		return fmt.Errorf("%w: height must be between %g and %g", ErrInvalidProfile, MinHeight, MaxHeight)
	}
	switch p.Gender {
	case GenderMale, GenderFemale:
	default:
		return fmt.Errorf("%w: unsupported gender %q", ErrInvalidProfile, p.Gender)
	}
	switch p.ActivityLevel {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
	default:
		return fmt.Errorf("%w: unsupported activityLevel %q", ErrInvalidProfile, p.ActivityLevel)
	}
	switch p.Goal {
	case GoalWeightLoss, GoalMaintenance, GoalWeightGain, GoalMuscleGain:
	default:
		return fmt.Errorf("%w: unsupported goal %q", ErrInvalidProfile, p.Goal)
	}
	return nil
}

// HasRestriction reports an exact, case-sensitive label match.
func (p UserProfile) HasRestriction(label string) bool {
	for _, r := range p.DietaryRestrictions {
		if r == label {
			return true
		}
	}
	return false
}

// MacroTargets are the daily energy and macro goals in kcal and grams.
type MacroTargets struct {
	DailyCalories int `json:"dailyCalories"`
	Protein       int `json:"protein"`
	Carbs         int `json:"carbs"`
	Fats          int `json:"fats"`
}

// MealPlan groups sample meal ideas by slot.
type MealPlan struct {
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
	Dinner    []string `json:"dinner"`
	Snacks    []string `json:"snacks"`
}

// NutritionPlan is the response of the nutrition planner.
type NutritionPlan struct {
	DailyCalories   int      `json:"dailyCalories"`
	Protein         int      `json:"protein"`
	Carbs           int      `json:"carbs"`
	Fats            int      `json:"fats"`
	Recommendations []string `json:"recommendations"`
	MealPlan        MealPlan `json:"mealPlan"`
	SuggestedDishes []Dish   `json:"suggestedDishes"`
}
