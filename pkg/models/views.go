package models

import "time"

// ViewKind names a view that owns generation state
type ViewKind string

const (
	ViewDiet    ViewKind = "diet"
	ViewWorkout ViewKind = "workout"
)

// Valid reports whether k is a known view
func (k ViewKind) Valid() bool {
	return k == ViewDiet || k == ViewWorkout
}

// ViewState is the last committed result of a view plus its request bookkeeping.
// Loading is true while a request newer than ResolvedSeq is outstanding. A result
// that could not be stored after retries leaves Loading set until the next
// request for the view commits.
type ViewState struct {
	View        ViewKind             `json:"view"`
	LatestSeq   int64                `json:"latest_seq"`
	ResolvedSeq int64                `json:"resolved_seq"`
	Loading     bool                 `json:"loading"`
	Selector    *GenerateViewRequest `json:"selector,omitempty"`
	Diet        *DietPlanResult      `json:"diet,omitempty"`
	Workout     *WorkoutResult       `json:"workout,omitempty"`
	UpdatedAt   *time.Time           `json:"updated_at,omitempty"`
}

// GenerateViewRequest triggers a regeneration; only the fields of the target view are used
type GenerateViewRequest struct {
	Goal             string `json:"goal" validate:"max=64"`
	ConsumedCalories int    `json:"consumed_calories" validate:"gte=0,lte=20000"`
	Difficulty       string `json:"difficulty" validate:"max=32"`
}

// GenerateViewResponse acknowledges a dispatched generation
type GenerateViewResponse struct {
	View ViewKind `json:"view"`
	Seq  int64    `json:"seq"`
}
