package models

// Goal identifies a dietary objective selected by the user
type Goal string

const (
	GoalWeightLoss  Goal = "Weight Loss"
	GoalMuscleGain  Goal = "Muscle Gain"
	GoalMaintenance Goal = "Maintenance"
	GoalKeto        Goal = "Keto"
	GoalVegan       Goal = "Vegan"
)

// Goals lists the recognised goals in display order
var Goals = []Goal{GoalWeightLoss, GoalMuscleGain, GoalMaintenance, GoalKeto, GoalVegan}

// DefaultGoal is used for any unrecognised goal
const DefaultGoal = GoalMaintenance

// ParseGoal returns the recognised goal matching s, or DefaultGoal and false
func ParseGoal(s string) (Goal, bool) {
	for _, g := range Goals {
		if string(g) == s {
			return g, true
		}
	}
	return DefaultGoal, false
}

// Difficulty is a workout intensity tier
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Difficulties lists the recognised levels from easiest to hardest
var Difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// DefaultDifficulty is used for any unrecognised level
const DefaultDifficulty = DifficultyIntermediate

// ParseDifficulty returns the recognised level matching s, or DefaultDifficulty and false
func ParseDifficulty(s string) (Difficulty, bool) {
	for _, d := range Difficulties {
		if string(d) == s {
			return d, true
		}
	}
	return DefaultDifficulty, false
}

// Valid reports whether d is one of the recognised levels
func (d Difficulty) Valid() bool {
	_, ok := ParseDifficulty(string(d))
	return ok
}

// Meal is a single meal within a diet plan
type Meal struct {
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	Protein     string   `json:"protein"`
	Carbs       string   `json:"carbs"`
	Fat         string   `json:"fat"`
	Ingredients []string `json:"ingredients"`
}

// DietPlan is a day of meals for a goal
type DietPlan struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Meals       []Meal `json:"meals"`
}

// Clone returns a deep copy of the plan
func (p *DietPlan) Clone() *DietPlan {
	if p == nil {
		return nil
	}
	out := &DietPlan{
		Title:       p.Title,
		Description: p.Description,
		Meals:       make([]Meal, len(p.Meals)),
	}
	for i, m := range p.Meals {
		m.Ingredients = append([]string(nil), m.Ingredients...)
		out.Meals[i] = m
	}
	return out
}

// Complete reports whether every field a client renders is populated
func (p *DietPlan) Complete() bool {
	if p == nil || p.Title == "" || p.Description == "" || len(p.Meals) == 0 {
		return false
	}
	for _, m := range p.Meals {
		if m.Name == "" || m.Calories < 0 {
			return false
		}
	}
	return true
}

// TotalCalories sums the calories of all meals
func (p *DietPlan) TotalCalories() int {
	total := 0
	for _, m := range p.Meals {
		total += m.Calories
	}
	return total
}

// Exercise is one movement of a routine
type Exercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	Description string `json:"description"`
}

// WorkoutRoutine is a session of exercises for a difficulty level
type WorkoutRoutine struct {
	Title           string     `json:"title"`
	Difficulty      Difficulty `json:"difficulty"`
	DurationMinutes int        `json:"durationMinutes"`
	Exercises       []Exercise `json:"exercises"`
}

// Clone returns a deep copy of the routine
func (r *WorkoutRoutine) Clone() *WorkoutRoutine {
	if r == nil {
		return nil
	}
	out := *r
	out.Exercises = append([]Exercise(nil), r.Exercises...)
	return &out
}

// Complete reports whether the routine can be displayed as-is
func (r *WorkoutRoutine) Complete() bool {
	if r == nil || r.Title == "" || !r.Difficulty.Valid() || r.DurationMinutes <= 0 || len(r.Exercises) == 0 {
		return false
	}
	for _, e := range r.Exercises {
		if e.Name == "" || e.Sets <= 0 {
			return false
		}
	}
	return true
}
