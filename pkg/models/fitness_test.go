package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGoal(t *testing.T) {
	for _, g := range Goals {
		got, ok := ParseGoal(string(g))
		assert.True(t, ok)
		assert.Equal(t, g, got)
	}

	got, ok := ParseGoal("weight loss")
	assert.False(t, ok, "matching is exact")
	assert.Equal(t, DefaultGoal, got)

	got, ok = ParseGoal("")
	assert.False(t, ok)
	assert.Equal(t, DefaultGoal, got)
}

func TestParseDifficulty(t *testing.T) {
	got, ok := ParseDifficulty("Advanced")
	assert.True(t, ok)
	assert.Equal(t, DifficultyAdvanced, got)

	got, ok = ParseDifficulty("Expert")
	assert.False(t, ok)
	assert.Equal(t, DifficultyIntermediate, got)

	assert.True(t, DifficultyBeginner.Valid())
	assert.False(t, Difficulty("expert").Valid())
}

func samplePlan() *DietPlan {
	return &DietPlan{
		Title:       "plan",
		Description: "desc",
		Meals: []Meal{
			{Name: "a", Calories: 300, Ingredients: []string{"x", "y"}},
			{Name: "b", Calories: 450},
		},
	}
}

func TestDietPlan_CloneIsIndependent(t *testing.T) {
	orig := samplePlan()
	cp := orig.Clone()
	require.Equal(t, orig, cp)

	cp.Description = "changed"
	cp.Meals[0].Name = "changed"
	cp.Meals[0].Ingredients[0] = "changed"

	assert.Equal(t, "desc", orig.Description)
	assert.Equal(t, "a", orig.Meals[0].Name)
	assert.Equal(t, "x", orig.Meals[0].Ingredients[0])

	var nilPlan *DietPlan
	assert.Nil(t, nilPlan.Clone())
}

func TestDietPlan_Complete(t *testing.T) {
	assert.True(t, samplePlan().Complete())

	noMeals := samplePlan()
	noMeals.Meals = nil
	assert.False(t, noMeals.Complete())

	noTitle := samplePlan()
	noTitle.Title = ""
	assert.False(t, noTitle.Complete())

	badMeal := samplePlan()
	badMeal.Meals[1].Name = ""
	assert.False(t, badMeal.Complete())

	var nilPlan *DietPlan
	assert.False(t, nilPlan.Complete())
}

func TestDietPlan_TotalCalories(t *testing.T) {
	assert.Equal(t, 750, samplePlan().TotalCalories())
}

func sampleRoutine() *WorkoutRoutine {
	return &WorkoutRoutine{
		Title:           "routine",
		Difficulty:      DifficultyBeginner,
		DurationMinutes: 30,
		Exercises:       []Exercise{{Name: "squat", Sets: 3, Reps: "12"}},
	}
}

func TestWorkoutRoutine_CloneIsIndependent(t *testing.T) {
	orig := sampleRoutine()
	cp := orig.Clone()
	cp.Exercises[0].Name = "changed"
	cp.Title = "changed"

	assert.Equal(t, "squat", orig.Exercises[0].Name)
	assert.Equal(t, "routine", orig.Title)
}

func TestWorkoutRoutine_Complete(t *testing.T) {
	assert.True(t, sampleRoutine().Complete())

	badLevel := sampleRoutine()
	badLevel.Difficulty = "Expert"
	assert.False(t, badLevel.Complete())

	zeroDuration := sampleRoutine()
	zeroDuration.DurationMinutes = 0
	assert.False(t, zeroDuration.Complete())

	zeroSets := sampleRoutine()
	zeroSets.Exercises[0].Sets = 0
	assert.False(t, zeroSets.Complete())
}
