package content

import (
	"github.com/holyfit/holyfit-api/pkg/ai/llm"
	"github.com/holyfit/holyfit-api/pkg/models"
)

var dietPlanSchema = llm.Object(
	llm.Prop("title", llm.String()),
	llm.Prop("description", llm.String()),
	llm.Prop("meals", llm.ArrayOf(llm.Object(
		llm.Prop("name", llm.String()),
		llm.Prop("calories", llm.Integer()),
		llm.Prop("protein", llm.String()),
		llm.Prop("carbs", llm.String()),
		llm.Prop("fat", llm.String()),
		llm.Prop("ingredients", llm.ArrayOf(llm.String())),
	))),
)

var workoutSchema = llm.Object(
	llm.Prop("title", llm.String()),
	llm.Prop("difficulty", llm.String(difficultyValues()...)),
	llm.Prop("durationMinutes", llm.Integer()),
	llm.Prop("exercises", llm.ArrayOf(llm.Object(
		llm.Prop("name", llm.String()),
		llm.Prop("sets", llm.Integer()),
		llm.Prop("reps", llm.String()),
		llm.Prop("description", llm.String()),
	))),
)

func difficultyValues() []string {
	out := make([]string, len(models.Difficulties))
	for i, d := range models.Difficulties {
		out[i] = string(d)
	}
	return out
}
