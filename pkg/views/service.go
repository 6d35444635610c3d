package views

import (
	"context"
	"sync"
	"time"

	"github.com/holyfit/holyfit-api/pkg/content"
	"github.com/holyfit/holyfit-api/pkg/domain"
	"github.com/holyfit/holyfit-api/pkg/logger"
	"github.com/holyfit/holyfit-api/pkg/models"
)

const (
	commitAttempts = 4
	commitBackoff  = 200 * time.Millisecond
)

// Generator produces view content. *content.Provider implements it.
type Generator interface {
	DietPlan(ctx context.Context, goal string, consumed int, lang content.Language) *models.DietPlanResult
	Workout(ctx context.Context, level string, lang content.Language) *models.WorkoutResult
}

// Observer is told whether each finished generation was committed or discarded as stale
type Observer interface {
	ObserveViewCommit(view string, committed bool)
}

// Service runs view generations in the background and keeps the newest result.
// Results of requests superseded by a later one are dropped.
type Service struct {
	store    *Store
	gen      Generator
	timeout  time.Duration
	observer Observer
	logger   logger.Logger
	wg       sync.WaitGroup
}

// NewService creates a view service. timeout bounds each generation.
func NewService(store *Store, gen Generator, timeout time.Duration, observer Observer, log logger.Logger) *Service {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		store:    store,
		gen:      gen,
		timeout:  timeout,
		observer: observer,
		logger:   log.With("component", "views"),
	}
}

// Generate dispatches a new generation for a view and returns its sequence number
// without waiting for the result.
func (s *Service) Generate(ctx context.Context, sessionID string, view models.ViewKind, req models.GenerateViewRequest, lang content.Language) (int64, error) {
	if !view.Valid() {
		return 0, domain.NewNotFoundError("view")
	}

	seq, err := s.store.Next(ctx, sessionID, view)
	if err != nil {
		return 0, domain.NewInternalError(err)
	}

	s.wg.Add(1)
	go s.run(sessionID, view, seq, req, lang)

	return seq, nil
}

func (s *Service) run(sessionID string, view models.ViewKind, seq int64, req models.GenerateViewRequest, lang content.Language) {
	defer s.wg.Done()

	// Detached from the HTTP request, which has already been answered
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	rec := &record{ResolvedSeq: seq, Selector: &req}
	switch view {
	case models.ViewDiet:
		rec.Diet = s.gen.DietPlan(ctx, req.Goal, req.ConsumedCalories, lang)
	case models.ViewWorkout:
		rec.Workout = s.gen.Workout(ctx, req.Difficulty, lang)
	}
	rec.UpdatedAt = time.Now().UTC()

	// Commit with a fresh deadline so a slow generation can still be stored
	commitCtx, commitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer commitCancel()

	committed, err := s.commit(commitCtx, sessionID, view, rec)
	if err != nil {
		// The view keeps reporting loading until a newer request commits
		s.logger.Error("❌ Failed to commit view state", "view", view, "seq", seq, "error", err)
		return
	}
	if s.observer != nil {
		s.observer.ObserveViewCommit(string(view), committed)
	}
	if !committed {
		s.logger.Debug("Discarded stale view result", "view", view, "seq", seq)
	}
}

// commit retries transient store errors until ctx expires
func (s *Service) commit(ctx context.Context, sessionID string, view models.ViewKind, rec *record) (bool, error) {
	var lastErr error
	for attempt := 0; attempt < commitAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return false, lastErr
			case <-time.After(time.Duration(attempt) * commitBackoff):
			}
		}
		committed, err := s.store.Commit(ctx, sessionID, view, rec)
		if err == nil {
			return committed, nil
		}
		lastErr = err
		s.logger.Warn("⚠️  View commit failed, retrying", "view", view, "seq", rec.ResolvedSeq, "attempt", attempt+1, "error", err)
	}
	return false, lastErr
}

// State returns the committed result of a view and whether newer work is pending
func (s *Service) State(ctx context.Context, sessionID string, view models.ViewKind) (*models.ViewState, error) {
	if !view.Valid() {
		return nil, domain.NewNotFoundError("view")
	}

	latest, rec, err := s.store.Load(ctx, sessionID, view)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	state := &models.ViewState{View: view, LatestSeq: latest}
	if rec != nil {
		updated := rec.UpdatedAt
		state.ResolvedSeq = rec.ResolvedSeq
		state.Selector = rec.Selector
		state.Diet = rec.Diet
		state.Workout = rec.Workout
		state.UpdatedAt = &updated
	}
	state.Loading = state.LatestSeq > state.ResolvedSeq

	return state, nil
}

// Reset forgets every view of a session
func (s *Service) Reset(ctx context.Context, sessionID string) error {
	if _, err := s.store.Clear(ctx, sessionID); err != nil {
		return domain.NewInternalError(err)
	}
	return nil
}

// Wait blocks until all dispatched generations have finished
func (s *Service) Wait() {
	s.wg.Wait()
}
