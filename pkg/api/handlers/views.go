package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/holyfit/holyfit-api/pkg/api/errors"
	"github.com/holyfit/holyfit-api/pkg/api/middleware"
	"github.com/holyfit/holyfit-api/pkg/content"
	"github.com/holyfit/holyfit-api/pkg/export"
	"github.com/holyfit/holyfit-api/pkg/models"
	"github.com/holyfit/holyfit-api/pkg/views"
	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

// ExportRecorder counts workbook downloads
type ExportRecorder interface {
	RecordExportCreated(view string)
}

// ViewHandler exposes the per-session diet and workout views
type ViewHandler struct {
	views       *views.Service
	defaultLang content.Language
	validator   *validator.Validate
	exports     ExportRecorder
}

// NewViewHandler creates a new view handler. exports may be nil.
func NewViewHandler(service *views.Service, defaultLang content.Language, exports ExportRecorder) *ViewHandler {
	return &ViewHandler{
		views:       service,
		defaultLang: defaultLang,
		validator:   validator.New(),
		exports:     exports,
	}
}

// Generate godoc
// @Summary Regenerate a view
// @Description Dispatches a new generation and returns its sequence number immediately. Poll the view until loading is false. Results of older requests that finish later are discarded.
// @Tags Views
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param view path string true "diet or workout"
// @Param body body models.GenerateViewRequest false "Selector"
// @Success 202 {object} models.GenerateViewResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /views/{view}/generate [post]
func (h *ViewHandler) Generate(c echo.Context) error {
	view := models.ViewKind(c.Param("view"))
	if !view.Valid() {
		return errors.NotFoundError(c, "view")
	}

	var req models.GenerateViewRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	seq, err := h.views.Generate(c.Request().Context(), middleware.SessionID(c), view, req, requestLanguage(c, h.defaultLang))
	if err != nil {
		return errors.FromDomain(c, err)
	}

	return c.JSON(http.StatusAccepted, models.GenerateViewResponse{View: view, Seq: seq})
}

// GetState godoc
// @Summary Get a view
// @Description Returns the last committed result and whether a newer generation is still running
// @Tags Views
// @Produce json
// @Security BearerAuth
// @Param view path string true "diet or workout"
// @Success 200 {object} models.ViewState
// @Failure 404 {object} models.ErrorResponse
// @Router /views/{view} [get]
func (h *ViewHandler) GetState(c echo.Context) error {
	state, err := h.views.State(c.Request().Context(), middleware.SessionID(c), models.ViewKind(c.Param("view")))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, state)
}

// Export godoc
// @Summary Download a view as a spreadsheet
// @Tags Views
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param view path string true "diet or workout"
// @Success 200 {file} file
// @Failure 404 {object} models.ErrorResponse "Unknown view or nothing generated yet"
// @Router /views/{view}/export [get]
func (h *ViewHandler) Export(c echo.Context) error {
	view := models.ViewKind(c.Param("view"))
	state, err := h.views.State(c.Request().Context(), middleware.SessionID(c), view)
	if err != nil {
		return errors.FromDomain(c, err)
	}

	var f *excelize.File
	switch {
	case view == models.ViewDiet && state.Diet != nil:
		f, err = export.DietPlanWorkbook(state.Diet.Plan)
	case view == models.ViewWorkout && state.Workout != nil:
		f, err = export.WorkoutWorkbook(state.Workout.Routine)
	default:
		return errors.NotFoundError(c, "view result")
	}
	if err != nil {
		return errors.InternalError(c, err)
	}
	defer f.Close()

	c.Response().Header().Set(echo.HeaderContentType, export.ContentType)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename(view)))
	c.Response().WriteHeader(http.StatusOK)

	if _, err := f.WriteTo(c.Response()); err != nil {
		// Headers are already sent
		return err
	}

	if h.exports != nil {
		h.exports.RecordExportCreated(string(view))
	}
	return nil
}

// Reset godoc
// @Summary Forget all views of the session
// @Tags Views
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.SuccessResponse
// @Router /views [delete]
func (h *ViewHandler) Reset(c echo.Context) error {
	if err := h.views.Reset(c.Request().Context(), middleware.SessionID(c)); err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "views cleared"})
}
