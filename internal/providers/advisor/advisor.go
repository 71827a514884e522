package advisor

import (
	"context"
	"fmt"

	"storefront/internal/domain"
)

const (
	StaticProviderName = "static"
	OpenAIProviderName = "openai"
	GeminiProviderName = "gemini"
)

// Request is the input for advisory text generation.
type Request struct {
	Profile domain.UserProfile
	Targets domain.MacroTargets
	Locale  string
}

// Advice holds generated recommendations and a sample meal plan. A nil field
// means the provider did not return a usable value for it.
type Advice struct {
	Recommendations []string
	MealPlan        *domain.MealPlan
}

// Advisor produces advisory copy for a computed nutrition plan.
type Advisor interface {
	Advise(ctx context.Context, req Request) (*Advice, error)
	Name() string
}

// Error describes a failed call to a remote advisor.
type Error struct {
	Provider string
	Reason   string
	Err      error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s advisor: %s", e.Provider, e.Reason)
	}
	return fmt.Sprintf("%s advisor: %s: %v", e.Provider, e.Reason, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets callers match any advisor failure with domain.ErrProviderFailure.
func (e *Error) Is(target error) bool { return target == domain.ErrProviderFailure }

func providerError(provider, reason string, err error) *Error {
	return &Error{Provider: provider, Reason: reason, Err: err}
}

// DefaultRecommendations are the deterministic recommendations for a protein
// target and goal.
func DefaultRecommendations(protein int, goal domain.Goal) []string {
	return []string{
		fmt.Sprintf("Your target of %dg protein daily is crucial for your %s goal", protein, goal.Words()),
		"Distribute protein evenly across meals for optimal absorption",
		"Stay hydrated and aim for 8-10 glasses of water daily",
		"Consider meal prep on weekends to stay consistent with your nutrition goals",
	}
}

// DefaultMealPlan is the deterministic sample meal plan.
func DefaultMealPlan() domain.MealPlan {
	return domain.MealPlan{
		Breakfast: []string{"Greek yogurt with berries", "Oatmeal with protein powder"},
		Lunch:     []string{"Grilled chicken salad", "Quinoa power bowl"},
		Dinner:    []string{"Lean protein with vegetables", "Fish with brown rice"},
		Snacks:    []string{"Mixed nuts", "Protein smoothie"},
	}
}

// DefaultAdvice combines the deterministic recommendations and meal plan.
func DefaultAdvice(protein int, goal domain.Goal) *Advice {
	plan := DefaultMealPlan()
	return &Advice{
		Recommendations: DefaultRecommendations(protein, goal),
		MealPlan:        &plan,
	}
}

// Static is the deterministic advisor used when no remote provider is configured.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

func (s *Static) Advise(_ context.Context, req Request) (*Advice, error) {
	return DefaultAdvice(req.Targets.Protein, req.Profile.Goal), nil
}

func (s *Static) Name() string { return StaticProviderName }

var _ Advisor = (*Static)(nil)
