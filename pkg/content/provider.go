package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/holyfit/holyfit-api/pkg/ai/llm"
	"github.com/holyfit/holyfit-api/pkg/logger"
	"github.com/holyfit/holyfit-api/pkg/models"
)

// Generation categories used in logs and metrics
const (
	CategoryDiet    = "diet"
	CategoryWorkout = "workout"
)

var errIncomplete = errors.New("generated object is incomplete")

// Observer receives one call per finished generation
type Observer interface {
	ObserveGeneration(category string, source models.ContentSource, duration time.Duration)
}

// Config controls how the provider produces content
type Config struct {
	// Remote selects the external model path. With Remote set and no client,
	// every call falls back without issuing a request.
	Remote          bool
	CalorieTarget   int
	DefaultLanguage Language
	MaxTokens       int
}

// Provider produces diet plans and workout routines, from the catalog or from a model
type Provider struct {
	cfg      Config
	client   llm.StructuredClient
	observer Observer
	logger   logger.Logger
}

// NewProvider creates a provider. client may be nil.
func NewProvider(cfg Config, client llm.StructuredClient, observer Observer, log logger.Logger) *Provider {
	if cfg.CalorieTarget <= 0 {
		cfg.CalorieTarget = 2500
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = Korean
	}
	if log == nil {
		log = logger.Default()
	}
	return &Provider{
		cfg:      cfg,
		client:   client,
		observer: observer,
		logger:   log.With("component", "content"),
	}
}

// Remote reports whether the provider asks an external model
func (p *Provider) Remote() bool {
	return p.cfg.Remote
}

// DefaultLanguage returns the language used when a request names none
func (p *Provider) DefaultLanguage() Language {
	return p.cfg.DefaultLanguage
}

// Backend names where content comes from
func (p *Provider) Backend() string {
	switch {
	case !p.cfg.Remote:
		return "catalog"
	case p.client == nil:
		return "unconfigured"
	default:
		return p.client.Name()
	}
}

// DietPlan returns a plan for goal. It never fails: any problem on the remote
// path yields the fallback plan flagged as degraded.
func (p *Provider) DietPlan(ctx context.Context, goal string, consumed int, lang Language) *models.DietPlanResult {
	start := time.Now()
	normalized, _ := models.ParseGoal(goal)
	if consumed < 0 {
		consumed = 0
	}
	if lang == "" {
		lang = p.cfg.DefaultLanguage
	}

	result := &models.DietPlanResult{Goal: normalized}

	if !p.cfg.Remote {
		plan := CatalogDietPlan(normalized)
		if consumed > 0 {
			plan.Description = calorieMessage(lang, consumed, p.cfg.CalorieTarget)
		}
		result.Plan = plan
		result.Source = models.SourceCatalog
		p.observe(CategoryDiet, result.Source, start)
		return result
	}

	plan, reason, err := p.generateDietPlan(ctx, normalized, consumed, lang)
	if err != nil {
		p.fail(CategoryDiet, reason, err)
		result.Plan = FallbackDietPlan()
		result.Source = models.SourceFallback
		result.Degraded = true
		result.Reason = reason
	} else {
		result.Plan = plan
		result.Source = models.SourceGenerated
	}

	p.observe(CategoryDiet, result.Source, start)
	return result
}

// Workout returns a routine for level with the same failure policy as DietPlan
func (p *Provider) Workout(ctx context.Context, level string, lang Language) *models.WorkoutResult {
	start := time.Now()
	normalized, _ := models.ParseDifficulty(level)
	if lang == "" {
		lang = p.cfg.DefaultLanguage
	}

	result := &models.WorkoutResult{}

	if !p.cfg.Remote {
		result.Routine = CatalogWorkout(normalized)
		result.Source = models.SourceCatalog
		p.observe(CategoryWorkout, result.Source, start)
		return result
	}

	routine, reason, err := p.generateWorkout(ctx, normalized, lang)
	if err != nil {
		p.fail(CategoryWorkout, reason, err)
		result.Routine = FallbackWorkout()
		result.Source = models.SourceFallback
		result.Degraded = true
		result.Reason = reason
	} else {
		result.Routine = routine
		result.Source = models.SourceGenerated
	}

	p.observe(CategoryWorkout, result.Source, start)
	return result
}

func (p *Provider) generateDietPlan(ctx context.Context, goal models.Goal, consumed int, lang Language) (*models.DietPlan, string, error) {
	if p.client == nil {
		return nil, models.ReasonMissingCredential, llm.ErrMissingCredential
	}

	text, err := p.client.GenerateJSON(ctx, llm.StructuredRequest{
		SystemPrompt: systemPrompt,
		Prompt:       dietPrompt(goal, consumed, p.cfg.CalorieTarget, lang),
		SchemaName:   "diet_plan",
		Schema:       dietPlanSchema,
		MaxTokens:    p.cfg.MaxTokens,
	})
	if err != nil {
		return nil, models.ReasonRequestFailed, err
	}

	var plan models.DietPlan
	if err := decodeJSON(text, &plan); err != nil {
		return nil, models.ReasonMalformedResponse, err
	}
	if !plan.Complete() {
		return nil, models.ReasonMalformedResponse, errIncomplete
	}
	return &plan, "", nil
}

func (p *Provider) generateWorkout(ctx context.Context, level models.Difficulty, lang Language) (*models.WorkoutRoutine, string, error) {
	if p.client == nil {
		return nil, models.ReasonMissingCredential, llm.ErrMissingCredential
	}

	text, err := p.client.GenerateJSON(ctx, llm.StructuredRequest{
		SystemPrompt: systemPrompt,
		Prompt:       workoutPrompt(level, lang),
		SchemaName:   "workout_routine",
		Schema:       workoutSchema,
		MaxTokens:    p.cfg.MaxTokens,
	})
	if err != nil {
		return nil, models.ReasonRequestFailed, err
	}

	var routine models.WorkoutRoutine
	if err := decodeJSON(text, &routine); err != nil {
		return nil, models.ReasonMalformedResponse, err
	}
	if routine.Difficulty == "" {
		routine.Difficulty = level
	}
	if !routine.Complete() {
		return nil, models.ReasonMalformedResponse, errIncomplete
	}
	return &routine, "", nil
}

// decodeJSON parses a model reply, tolerating a surrounding code fence
func decodeJSON(text string, v any) error {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return fmt.Errorf("decode model response: %w", err)
	}
	return nil
}

func (p *Provider) fail(category, reason string, err error) {
	if reason == models.ReasonMissingCredential {
		p.logger.Warn("⚠️  No model credential configured, serving fallback content", "category", category)
		return
	}

	p.logger.Error("❌ Content generation failed, serving fallback content",
		"category", category,
		"reason", reason,
		"backend", p.Backend(),
		"error", err,
	)

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("category", category)
		scope.SetTag("reason", reason)
		scope.SetTag("backend", p.Backend())
		sentry.CaptureException(err)
	})
}

func (p *Provider) observe(category string, source models.ContentSource, start time.Time) {
	if p.observer != nil {
		p.observer.ObserveGeneration(category, source, time.Since(start))
	}
}
