package advisor

import "testing"

func TestParseAdvicePayload(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantErr     bool
		wantRecs    int
		wantMeal    bool
		firstRecNot string
	}{
		{
			name:     "complete",
			raw:      `{"recommendations":["a","b"],"mealPlan":{"breakfast":["x"],"lunch":[],"dinner":["z"],"snacks":["s"]}}`,
			wantRecs: 2,
			wantMeal: true,
		},
		{
			name:     "code fence with prose",
			raw:      "Sure!\n```json\n{\"recommendations\":[\"a\"]}\n```",
			wantRecs: 1,
		},
		{
			name:     "meal plan missing slot",
			raw:      `{"recommendations":["a"],"mealPlan":{"breakfast":["x"],"lunch":["y"],"dinner":["z"]}}`,
			wantRecs: 1,
		},
		{
			name:     "recommendations wrong type",
			raw:      `{"recommendations":"eat more","mealPlan":{"breakfast":[],"lunch":[],"dinner":[],"snacks":[]}}`,
			wantMeal: true,
		},
		{
			name:     "blank strings dropped",
			raw:      `{"recommendations":["  ","keep going"]}`,
			wantRecs: 1,
		},
		{name: "array document", raw: `["a","b"]`, wantErr: true},
		{name: "plain text", raw: "no json here", wantErr: true},
		{name: "empty", raw: "   ", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			advice, err := parseAdvicePayload(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %#v", advice)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(advice.Recommendations) != tc.wantRecs {
				t.Fatalf("Recommendations = %#v, want %d entries", advice.Recommendations, tc.wantRecs)
			}
			if (advice.MealPlan != nil) != tc.wantMeal {
				t.Fatalf("MealPlan = %#v, want present=%v", advice.MealPlan, tc.wantMeal)
			}
		})
	}
}

func TestTrimCodeFence(t *testing.T) {
	cases := map[string]string{
		"```json\n{}\n```": "{}",
		"```\n{}\n```":     "{}",
		"{}":               "{}",
	}
	for in, want := range cases {
		if got := trimCodeFence(in); got != want {
			t.Fatalf("trimCodeFence(%q) = %q, want %q", in, got, want)
		}
	}
}
