package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"storefront/internal/domain"
	"storefront/internal/providers/advisor"
)

type stubCatalog struct {
	dishes []domain.RawDish
	err    error
	calls  int
}

func (s *stubCatalog) ListAvailable(context.Context) ([]domain.RawDish, error) {
	s.calls++
	return s.dishes, s.err
}

type stubAdvisor struct {
	advice *advisor.Advice
	err    error
	req    advisor.Request
}

func (s *stubAdvisor) Advise(_ context.Context, req advisor.Request) (*advisor.Advice, error) {
	s.req = req
	return s.advice, s.err
}

func (s *stubAdvisor) Name() string { return "stub" }

func muscleGainProfile() domain.UserProfile {
	return domain.UserProfile{
		Age: 25, Weight: 70, Height: 175,
		Gender: domain.GenderMale, ActivityLevel: domain.ActivityModerate, Goal: domain.GoalMuscleGain,
	}
}

func rawDish(id int64, protein float64, vegetarian bool) domain.RawDish {
	return domain.RawDish{
		ID:           id,
		Name:         "dish",
		Protein:      domain.MacroNumberValue(protein),
		Calories:     domain.MacroTextValue("400 kcal"),
		IsVegetarian: domain.Flag(vegetarian),
		Available:    true,
	}
}

func catalogOf(n int) []domain.RawDish {
	out := make([]domain.RawDish, 0, n)
	for i := 1; i <= n; i++ {
		// odd ids are low protein so the recommender and the fallback disagree
		protein := 30.0
		if i%2 == 1 {
			protein = 5
		}
		out = append(out, rawDish(int64(i), protein, false))
	}
	return out
}

func TestGeneratePlanUsesAdvisor(t *testing.T) {
	plan := domain.MealPlan{Breakfast: []string{"idli"}, Lunch: []string{"dal"}, Dinner: []string{"roti"}, Snacks: []string{"chana"}}
	adv := &stubAdvisor{advice: &advisor.Advice{Recommendations: []string{"one", "two"}, MealPlan: &plan}}
	catalog := &stubCatalog{dishes: catalogOf(10)}
	engine := NewEngine(catalog, adv, zerolog.Nop(), 0)

	res, err := engine.GeneratePlan(context.Background(), muscleGainProfile(), "hi")
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if res.Source != "stub" || res.FallbackReason != "" {
		t.Fatalf("source = %q reason = %q", res.Source, res.FallbackReason)
	}
	if catalog.calls != 1 {
		t.Fatalf("catalog calls = %d, want 1", catalog.calls)
	}
	if adv.req.Locale != "hi" || adv.req.Targets.Protein != 154 {
		t.Fatalf("advisor request = %+v", adv.req)
	}
	got := res.Plan
	if got.DailyCalories != 2894 || got.Protein != 154 || got.Carbs != 389 || got.Fats != 80 {
		t.Fatalf("targets = %d/%d/%d/%d", got.DailyCalories, got.Protein, got.Carbs, got.Fats)
	}
	if len(got.Recommendations) != 2 || got.MealPlan.Breakfast[0] != "idli" {
		t.Fatalf("advice not used: %+v", got)
	}
	if !equalIDs(ids(got.SuggestedDishes), []int64{2, 4, 6, 8, 10}) {
		t.Fatalf("suggested = %v", ids(got.SuggestedDishes))
	}
}

func TestGeneratePlanSubstitutesMissingKeys(t *testing.T) {
	tests := []struct {
		name      string
		advice    *advisor.Advice
		wantRecs  string
		wantBreak string
	}{
		{
			name:      "meal plan missing",
			advice:    &advisor.Advice{Recommendations: []string{"custom"}},
			wantRecs:  "custom",
			wantBreak: "Greek yogurt with berries",
		},
		{
			name: "recommendations missing",
			advice: &advisor.Advice{MealPlan: &domain.MealPlan{
				Breakfast: []string{"poha"}, Lunch: []string{}, Dinner: []string{}, Snacks: []string{},
			}},
			wantRecs:  "Your target of 154g protein daily is crucial for your muscle gain goal",
			wantBreak: "poha",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			engine := NewEngine(&stubCatalog{}, &stubAdvisor{advice: tc.advice}, zerolog.Nop(), 0)
			res, err := engine.GeneratePlan(context.Background(), muscleGainProfile(), "en")
			if err != nil {
				t.Fatalf("GeneratePlan: %v", err)
			}
			if res.Source != "stub" {
				t.Fatalf("Source = %q", res.Source)
			}
			if res.Plan.Recommendations[0] != tc.wantRecs {
				t.Fatalf("Recommendations[0] = %q, want %q", res.Plan.Recommendations[0], tc.wantRecs)
			}
			if res.Plan.MealPlan.Breakfast[0] != tc.wantBreak {
				t.Fatalf("Breakfast[0] = %q, want %q", res.Plan.MealPlan.Breakfast[0], tc.wantBreak)
			}
		})
	}
}

func TestGeneratePlanFallsBackOnAdvisorFailure(t *testing.T) {
	catalog := &stubCatalog{dishes: catalogOf(10)}
	failing := &stubAdvisor{err: &advisor.Error{Provider: "openai", Reason: "http_503"}}
	res, err := NewEngine(catalog, failing, zerolog.Nop(), 0).GeneratePlan(context.Background(), muscleGainProfile(), "en")
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if res.Source != SourceFallback || res.FallbackReason != "http_503" {
		t.Fatalf("source = %q reason = %q", res.Source, res.FallbackReason)
	}

	primary, err := NewEngine(catalog, advisor.NewStatic(), zerolog.Nop(), 0).GeneratePlan(context.Background(), muscleGainProfile(), "en")
	if err != nil {
		t.Fatalf("GeneratePlan(static): %v", err)
	}
	fb, pr := res.Plan, primary.Plan
	if fb.DailyCalories != pr.DailyCalories || fb.Protein != pr.Protein || fb.Carbs != pr.Carbs || fb.Fats != pr.Fats {
		t.Fatalf("fallback targets %+v differ from primary %+v", fb, pr)
	}
	want := advisor.DefaultRecommendations(154, domain.GoalMuscleGain)
	for i := range want {
		if fb.Recommendations[i] != want[i] {
			t.Fatalf("Recommendations[%d] = %q, want %q", i, fb.Recommendations[i], want[i])
		}
	}
	if fb.MealPlan.Snacks[1] != "Protein smoothie" {
		t.Fatalf("MealPlan = %+v", fb.MealPlan)
	}
	// first six catalog rows, not the recommender's ranking
	if !equalIDs(ids(fb.SuggestedDishes), []int64{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("fallback suggested = %v", ids(fb.SuggestedDishes))
	}
	if fb.SuggestedDishes[0].Calories != 400 {
		t.Fatalf("fallback dishes not normalized: %+v", fb.SuggestedDishes[0])
	}
	if catalog.calls != 2 {
		t.Fatalf("catalog calls = %d, want one per plan", catalog.calls)
	}
}

func TestGeneratePlanFallbackSkipsUnavailableDishes(t *testing.T) {
	dishes := catalogOf(8)
	dishes[0].Available = false
	dishes[3].Available = false
	catalog := &stubCatalog{dishes: dishes}

	res, err := NewEngine(catalog, &stubAdvisor{err: errors.New("down")}, zerolog.Nop(), 0).
		GeneratePlan(context.Background(), muscleGainProfile(), "en")
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if res.Source != SourceFallback {
		t.Fatalf("Source = %q, want fallback", res.Source)
	}
	if got := ids(res.Plan.SuggestedDishes); !equalIDs(got, []int64{2, 3, 5, 6, 7, 8}) {
		t.Fatalf("fallback suggested = %v", got)
	}
}

func TestGeneratePlanFallbackReasonForPlainErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		reason string
	}{
		{name: "deadline", err: context.DeadlineExceeded, reason: "timeout"},
		{name: "other", err: errors.New("boom"), reason: "advisor_error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			engine := NewEngine(&stubCatalog{}, &stubAdvisor{err: tc.err}, zerolog.Nop(), 0)
			res, err := engine.GeneratePlan(context.Background(), muscleGainProfile(), "en")
			if err != nil {
				t.Fatalf("GeneratePlan: %v", err)
			}
			if res.FallbackReason != tc.reason {
				t.Fatalf("FallbackReason = %q, want %q", res.FallbackReason, tc.reason)
			}
		})
	}
}

func TestGeneratePlanNilAdviceFallsBack(t *testing.T) {
	engine := NewEngine(&stubCatalog{}, &stubAdvisor{}, zerolog.Nop(), 0)
	res, err := engine.GeneratePlan(context.Background(), muscleGainProfile(), "en")
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if res.Source != SourceFallback {
		t.Fatalf("Source = %q, want fallback", res.Source)
	}
}

func TestGeneratePlanEmptyCatalogSerializesEmptyArray(t *testing.T) {
	for _, adv := range []advisor.Advisor{advisor.NewStatic(), &stubAdvisor{err: errors.New("down")}} {
		res, err := NewEngine(&stubCatalog{}, adv, zerolog.Nop(), 0).GeneratePlan(context.Background(), muscleGainProfile(), "en")
		if err != nil {
			t.Fatalf("GeneratePlan: %v", err)
		}
		body, err := json.Marshal(res.Plan)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var decoded map[string]json.RawMessage
		if err := json.Unmarshal(body, &decoded); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if string(decoded["suggestedDishes"]) != "[]" {
			t.Fatalf("suggestedDishes = %s, want []", decoded["suggestedDishes"])
		}
	}
}

func TestGeneratePlanCatalogError(t *testing.T) {
	adv := &stubAdvisor{}
	engine := NewEngine(&stubCatalog{err: errors.New("db down")}, adv, zerolog.Nop(), 0)
	if _, err := engine.GeneratePlan(context.Background(), muscleGainProfile(), "en"); err == nil {
		t.Fatal("expected catalog error")
	}
	if adv.req.Targets.Protein != 0 {
		t.Fatal("advisor should not be called when the catalog fails")
	}
}
