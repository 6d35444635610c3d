package content

import (
	"fmt"
	"strings"

	"github.com/holyfit/holyfit-api/pkg/models"
)

const systemPrompt = `You are a certified nutritionist and strength coach writing for the HOLYFIT app.

Rules:
- Answer with a single JSON object that matches the provided schema exactly
- Never add commentary, markdown or code fences
- Use realistic portions, calorie counts and exercise volumes
- Keep descriptions short and encouraging`

var languageNames = map[Language]string{
	Korean:  "Korean",
	English: "English",
}

// dietPrompt builds the user prompt for a diet plan request
func dietPrompt(goal models.Goal, consumed, target int, lang Language) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a one-day meal plan (breakfast, lunch, dinner) for the goal %q.\n", goal)
	fmt.Fprintf(&b, "The daily calorie target is %d kcal.\n", target)
	if consumed > 0 {
		remaining := target - consumed
		if remaining > 0 {
			fmt.Fprintf(&b, "The user has already eaten %d kcal today, so the plan must fit in the remaining %d kcal.\n", consumed, remaining)
		} else {
			fmt.Fprintf(&b, "The user has already eaten %d kcal today and is over the target. Suggest very light, vegetable-based meals.\n", consumed)
		}
	}
	b.WriteString("Give protein, carbs and fat as gram amounts such as \"30g\" and list the main ingredients of each meal.\n")
	fmt.Fprintf(&b, "Write every text field in %s.", languageNames[lang])
	return b.String()
}

// workoutPrompt builds the user prompt for a workout routine request
func workoutPrompt(level models.Difficulty, lang Language) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a single workout session for a %s trainee.\n", level)
	fmt.Fprintf(&b, "Set difficulty to %q, include 4 to 6 exercises and a realistic total duration in minutes.\n", level)
	b.WriteString("For each exercise give the number of sets, the reps (or a time such as \"30s\") and a one-sentence form cue.\n")
	fmt.Fprintf(&b, "Write every text field in %s.", languageNames[lang])
	return b.String()
}
