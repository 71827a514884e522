package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"storefront/internal/domain"
	"storefront/internal/providers/advisor"
)

// SourceFallback marks a plan built without the configured advisor.
const SourceFallback = "fallback"

// Catalog is the read side of the dish store used by the engine.
type Catalog interface {
	ListAvailable(ctx context.Context) ([]domain.RawDish, error)
}

// Result wraps a generated plan with where its advice came from.
type Result struct {
	Plan           domain.NutritionPlan
	Source         string
	FallbackReason string
}

// Engine builds nutrition plans from a user profile, the dish catalog and an
// advisor, falling back to built-in advice when the advisor fails.
type Engine struct {
	catalog Catalog
	advisor advisor.Advisor
	logger  zerolog.Logger
	timeout time.Duration
}

// NewEngine wires the planner. A nil advisor means static advice.
func NewEngine(catalog Catalog, adv advisor.Advisor, logger zerolog.Logger, timeout time.Duration) *Engine {
	if adv == nil {
		adv = advisor.NewStatic()
	}
	return &Engine{
		catalog: catalog,
		advisor: adv,
		logger:  logger,
		timeout: timeout,
	}
}

// AdvisorName reports the configured advisor.
func (e *Engine) AdvisorName() string {
	return e.advisor.Name()
}

// GeneratePlan computes targets for a validated profile, asks the advisor for
// copy and attaches suggested dishes. Only a catalog read failure is returned;
// advisor failures produce a fallback plan.
func (e *Engine) GeneratePlan(ctx context.Context, profile domain.UserProfile, locale string) (*Result, error) {
	raw, err := e.catalog.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	targets := CalculateTargets(profile)
	if targets.Carbs < 0 {
		e.logger.Warn().
			Int("daily_calories", targets.DailyCalories).
			Int("protein", targets.Protein).
			Int("carbs", targets.Carbs).
			Msg("nutrition: negative carb target")
	}

	advice, err := e.advise(ctx, advisor.Request{Profile: profile, Targets: targets, Locale: locale})
	if err != nil {
		return e.fallback(profile, raw, err), nil
	}

	recommendations := advice.Recommendations
	if len(recommendations) == 0 {
		recommendations = advisor.DefaultRecommendations(targets.Protein, profile.Goal)
	}
	mealPlan := advisor.DefaultMealPlan()
	if advice.MealPlan != nil {
		mealPlan = *advice.MealPlan
	}

	return &Result{
		Plan: domain.NutritionPlan{
			DailyCalories:   targets.DailyCalories,
			Protein:         targets.Protein,
			Carbs:           targets.Carbs,
			Fats:            targets.Fats,
			Recommendations: recommendations,
			MealPlan:        mealPlan,
			SuggestedDishes: RecommendDishes(NormalizeDishes(raw), profile),
		},
		Source: e.advisor.Name(),
	}, nil
}

func (e *Engine) advise(ctx context.Context, req advisor.Request) (*advisor.Advice, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	advice, err := e.advisor.Advise(ctx, req)
	if err != nil {
		return nil, err
	}
	if advice == nil {
		return nil, errors.New("advisor returned no advice")
	}
	return advice, nil
}

func (e *Engine) fallback(profile domain.UserProfile, raw []domain.RawDish, cause error) *Result {
	reason := "advisor_error"
	var advErr *advisor.Error
	if errors.As(cause, &advErr) {
		reason = advErr.Reason
	} else if errors.Is(cause, context.DeadlineExceeded) {
		reason = "timeout"
	}
	e.logger.Warn().
		Err(cause).
		Str("advisor", e.advisor.Name()).
		Str("reason", reason).
		Msg("nutrition: advisor failed, using fallback plan")

	targets := CalculateTargets(profile)
	head := make([]domain.RawDish, 0, MaxSuggestedDishes)
	for _, d := range raw {
		if len(head) == MaxSuggestedDishes {
			break
		}
		if d.Available {
			head = append(head, d)
		}
	}
	advice := advisor.DefaultAdvice(targets.Protein, profile.Goal)
	return &Result{
		Plan: domain.NutritionPlan{
			DailyCalories:   targets.DailyCalories,
			Protein:         targets.Protein,
			Carbs:           targets.Carbs,
			Fats:            targets.Fats,
			Recommendations: advice.Recommendations,
			MealPlan:        *advice.MealPlan,
			SuggestedDishes: NormalizeDishes(head),
		},
		Source:         SourceFallback,
		FallbackReason: reason,
	}
}
