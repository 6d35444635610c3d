package models

// ContentSource tells where a generated object came from
type ContentSource string

const (
	SourceCatalog   ContentSource = "catalog"   // static in-memory table
	SourceGenerated ContentSource = "generated" // external model response
	SourceFallback  ContentSource = "fallback"  // designated default after a failure
)

// Fallback reasons
const (
	ReasonMissingCredential = "missing_credential"
	ReasonRequestFailed     = "request_failed"
	ReasonMalformedResponse = "malformed_response"
)

// DietPlanRequest holds the query parameters of a diet plan generation
type DietPlanRequest struct {
	Goal             string `query:"goal" json:"goal" validate:"max=64"`
	ConsumedCalories int    `query:"consumed_calories" json:"consumed_calories" validate:"gte=0,lte=20000"`
}

// WorkoutRequest holds the query parameters of a routine generation
type WorkoutRequest struct {
	Difficulty string `query:"difficulty" json:"difficulty" validate:"max=32"`
}

// DietPlanResult is a generated plan with provenance
type DietPlanResult struct {
	Plan     *DietPlan     `json:"plan"`
	Goal     Goal          `json:"goal"`
	Source   ContentSource `json:"source"`
	Degraded bool          `json:"degraded"`
	Reason   string        `json:"reason,omitempty"`
}

// WorkoutResult is a generated routine with provenance
type WorkoutResult struct {
	Routine  *WorkoutRoutine `json:"routine"`
	Source   ContentSource   `json:"source"`
	Degraded bool            `json:"degraded"`
	Reason   string          `json:"reason,omitempty"`
}

// OptionsResponse lists the selector values a client can offer
type OptionsResponse struct {
	Goals        []Goal       `json:"goals"`
	Difficulties []Difficulty `json:"difficulties"`
}
