package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/holyfit/holyfit-api/pkg/api/errors"
	"github.com/holyfit/holyfit-api/pkg/content"
	"github.com/holyfit/holyfit-api/pkg/models"
	"github.com/labstack/echo/v4"
)

// ContentHandler serves one-off diet plans and workouts
type ContentHandler struct {
	provider  *content.Provider
	validator *validator.Validate
	timeout   time.Duration
}

// NewContentHandler creates a new content handler
func NewContentHandler(provider *content.Provider, timeout time.Duration) *ContentHandler {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ContentHandler{
		provider:  provider,
		validator: validator.New(),
		timeout:   timeout,
	}
}

// GetOptions godoc
// @Summary List selectable goals and difficulties
// @Tags Content
// @Produce json
// @Success 200 {object} models.OptionsResponse
// @Router /options [get]
func (h *ContentHandler) GetOptions(c echo.Context) error {
	return c.JSON(http.StatusOK, models.OptionsResponse{
		Goals:        models.Goals,
		Difficulties: models.Difficulties,
	})
}

// GetDietPlan godoc
// @Summary Get a diet plan
// @Description Returns a plan for the goal. Unknown goals get the default plan. When the content model fails the fallback plan is returned with degraded=true.
// @Tags Content
// @Produce json
// @Param goal query string false "Goal (Weight Loss, Muscle Gain, Maintenance, Keto, Vegan)"
// @Param consumed_calories query int false "Calories eaten so far today"
// @Param lang query string false "Response language (ko, en)"
// @Success 200 {object} models.DietPlanResult
// @Failure 400 {object} models.ErrorResponse
// @Router /diet-plans [get]
func (h *ContentHandler) GetDietPlan(c echo.Context) error {
	var req models.DietPlanRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result := h.provider.DietPlan(ctx, req.Goal, req.ConsumedCalories, requestLanguage(c, h.provider.DefaultLanguage()))
	return c.JSON(http.StatusOK, result)
}

// GetWorkout godoc
// @Summary Get a workout routine
// @Description Returns a routine for the difficulty. Unknown levels get the Intermediate routine.
// @Tags Content
// @Produce json
// @Param difficulty query string false "Difficulty (Beginner, Intermediate, Advanced)"
// @Param lang query string false "Response language (ko, en)"
// @Success 200 {object} models.WorkoutResult
// @Failure 400 {object} models.ErrorResponse
// @Router /workouts [get]
func (h *ContentHandler) GetWorkout(c echo.Context) error {
	var req models.WorkoutRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result := h.provider.Workout(ctx, req.Difficulty, requestLanguage(c, h.provider.DefaultLanguage()))
	return c.JSON(http.StatusOK, result)
}
