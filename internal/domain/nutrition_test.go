package domain

import (
	"errors"
	"testing"
)

func validProfile() UserProfile {
	return UserProfile{
		Age:           25,
		Weight:        70,
		Height:        175,
		Gender:        GenderMale,
		ActivityLevel: ActivityModerate,
		Goal:          GoalMuscleGain,
	}
}

func TestUserProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *UserProfile)
		wantErr bool
	}{
		{name: "valid", mutate: func(p *UserProfile) {}},
		{name: "age lower bound", mutate: func(p *UserProfile) { p.Age = 13 }},
		{name: "age too low", mutate: func(p *UserProfile) { p.Age = 12 }, wantErr: true},
		{name: "age too high", mutate: func(p *UserProfile) { p.Age = 101 }, wantErr: true},
		{name: "weight too low", mutate: func(p *UserProfile) { p.Weight = 29.9 }, wantErr: true},
		{name: "weight upper bound", mutate: func(p *UserProfile) { p.Weight = 300 }},
		{name: "height too high", mutate: func(p *UserProfile) { p.Height = 251 }, wantErr: true},
		{name: "bad gender", mutate: func(p *UserProfile) { p.Gender = "other" }, wantErr: true},
		{name: "bad activity", mutate: func(p *UserProfile) { p.ActivityLevel = "extreme" }, wantErr: true},
		{name: "bad goal", mutate: func(p *UserProfile) { p.Goal = "bulk" }, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validProfile()
			tc.mutate(&p)
			err := p.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidProfile) {
					t.Fatalf("Validate() = %v, want ErrInvalidProfile", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestGoalWords(t *testing.T) {
	if got := GoalWeightLoss.Words(); got != "weight loss" {
		t.Fatalf("Words() = %q, want %q", got, "weight loss")
	}
	if got := GoalMaintenance.Words(); got != "maintenance" {
		t.Fatalf("Words() = %q, want %q", got, "maintenance")
	}
}

func TestHasRestrictionIsCaseSensitive(t *testing.T) {
	p := UserProfile{DietaryRestrictions: []string{"vegetarian", "Gluten-Free"}}
	if p.HasRestriction(VegetarianRestriction) {
		t.Fatal("lowercase label must not match")
	}
	p.DietaryRestrictions = append(p.DietaryRestrictions, "Vegetarian")
	if !p.HasRestriction(VegetarianRestriction) {
		t.Fatal("exact label should match")
	}
}
