package advisor

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const systemPrompt = "You are a nutrition expert helping students and young professionals. Provide practical, science-based advice focused on their busy lifestyle and budget constraints. Always format responses as valid JSON."

const responseShape = `{
  "recommendations": ["insight1", "insight2", "insight3", "insight4"],
  "mealPlan": {
    "breakfast": ["meal1", "meal2"],
    "lunch": ["meal1", "meal2"],
    "dinner": ["meal1", "meal2"],
    "snacks": ["snack1", "snack2"]
  }
}`

// BuildPrompt renders the user prompt for a plan request.
func BuildPrompt(req Request) string {
	p := req.Profile
	t := req.Targets

	dietary := "No dietary restrictions"
	if len(p.DietaryRestrictions) > 0 {
		dietary = "Dietary restrictions: " + strings.Join(p.DietaryRestrictions, ", ")
	}
	health := "No specific health conditions mentioned"
	if strings.TrimSpace(p.HealthConditions) != "" {
		health = "Health considerations: " + strings.TrimSpace(p.HealthConditions)
	}

	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Create personalized nutrition recommendations for a %d-year-old %s who is %gcm tall, weighs %gkg, has %s activity level, and wants %s.\n\n",
		p.Age, p.Gender, p.Height, p.Weight, p.ActivityLevel, p.Goal.Words())
	fmt.Fprintf(sb, "%s\n%s\n\n", dietary, health)
	sb.WriteString("Their calculated daily nutrition targets are:\n")
	fmt.Fprintf(sb, "- Calories: %d\n", t.DailyCalories)
	fmt.Fprintf(sb, "- Protein: %dg (TARGET FOR STUDENT/PROFESSIONAL)\n", t.Protein)
	fmt.Fprintf(sb, "- Carbs: %dg\n", t.Carbs)
	fmt.Fprintf(sb, "- Fats: %dg\n\n", t.Fats)
	sb.WriteString("Provide exactly 4 key nutrition insights/recommendations as an array of strings. Focus on practical advice for students and young professionals. Include emphasis on their protein target being crucial for their goals.\n\n")
	sb.WriteString("Then create a sample daily meal plan with specific meal ideas (not from any menu, just general meal types) organized into breakfast, lunch, dinner, and snacks arrays.\n\n")
	sb.WriteString("Format as JSON with this structure:\n")
	sb.WriteString(responseShape)
	if name := languageName(req.Locale); name != "" {
		fmt.Fprintf(sb, "\n\nWrite every string value in %s.", name)
	}
	return sb.String()
}

// languageName returns the English name of a non-English locale, or "".
func languageName(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ""
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	if base.String() == "en" {
		return ""
	}
	return display.English.Languages().Name(tag)
}
