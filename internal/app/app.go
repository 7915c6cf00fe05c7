// Package app is the single owner of application state: the current view,
// the one live session, the rest countdown, and the write-through stores.
// Every mutation goes through App's lock, so persistence side effects are
// observed in mutation order.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/liftlog/internal/advice"
	"github.com/meltforce/liftlog/internal/metrics"
	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/session"
	"github.com/meltforce/liftlog/internal/storage"
)

// Validation and lifecycle errors surfaced to the client.
var (
	ErrNameRequired     = errors.New("template name is required")
	ErrNoExercises      = errors.New("template needs at least one exercise")
	ErrTemplateNotFound = errors.New("template not found")
	ErrSessionActive    = errors.New("a session is already in progress")
	ErrNoActiveSession  = errors.New("no session in progress")
	ErrIndexOutOfRange  = errors.New("set index out of range")
)

// App coordinates the stores, the live session, and the derived state.
type App struct {
	mu        sync.Mutex
	templates *storage.TemplateStore
	history   *storage.HistoryStore
	advisor   advice.Provider
	log       *slog.Logger

	newID session.IDGenerator
	now   func() time.Time

	view       View
	active     *models.WorkoutSession
	rest       session.RestTimer
	adviceText string
}

// New creates an App over the given stores. The advisor may be nil, in
// which case the fixed fallback text is used.
func New(templates *storage.TemplateStore, history *storage.HistoryStore, advisor advice.Provider, log *slog.Logger) *App {
	if advisor == nil {
		advisor = advice.Static(advice.Fallback)
	}
	return &App{
		templates:  templates,
		history:    history,
		advisor:    advisor,
		log:        log,
		newID:      uuid.NewString,
		now:        time.Now,
		view:       ViewDashboard,
		adviceText: advice.Fallback,
	}
}

// View returns the current view.
func (a *App) View() View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

// SetView switches to a navigation view. The active view cannot be entered
// directly: it is only reachable by starting a workout.
func (a *App) SetView(v View) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if v == ViewActive && a.active == nil {
		return ErrNoActiveSession
	}
	a.view = v
	return nil
}

// Templates returns all templates, newest first.
func (a *App) Templates() []models.WorkoutTemplate {
	return a.templates.All()
}

// History returns all finished sessions, newest first.
func (a *App) History() []models.WorkoutSession {
	return a.history.All()
}

// CreateTemplate validates and stores a new template. Exercises keep their
// order; exercises missing an ID get one assigned. Nothing is stored when
// validation fails.
func (a *App) CreateTemplate(ctx context.Context, name string, exercises []models.TemplateExercise) (models.WorkoutTemplate, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return models.WorkoutTemplate{}, ErrNameRequired
	}
	if len(exercises) == 0 {
		return models.WorkoutTemplate{}, ErrNoExercises
	}

	tpl := models.WorkoutTemplate{
		ID:        a.newID(),
		Name:      name,
		Exercises: make([]models.TemplateExercise, len(exercises)),
		CreatedAt: a.now().UnixMilli(),
	}
	copy(tpl.Exercises, exercises)
	for i := range tpl.Exercises {
		if tpl.Exercises[i].ID == "" {
			tpl.Exercises[i].ID = a.newID()
		}
		applyExerciseDefaults(&tpl.Exercises[i])
		clampExercise(&tpl.Exercises[i])
	}

	if err := a.templates.Add(ctx, tpl); err != nil {
		return models.WorkoutTemplate{}, fmt.Errorf("storing template: %w", err)
	}
	a.view = ViewTemplates
	a.log.Info("template created", "id", tpl.ID, "name", tpl.Name, "exercises", len(tpl.Exercises))
	return tpl, nil
}

// Authoring defaults for an exercise added with no targets at all.
const (
	defaultSets = 3
	defaultReps = 10
)

// applyExerciseDefaults fills the authoring defaults when every target of an
// exercise is zero. An exercise with any target set is left alone.
func applyExerciseDefaults(e *models.TemplateExercise) {
	if e.Sets == 0 && e.Reps == 0 && e.Weight == 0 && e.RestTime == 0 {
		e.Sets = defaultSets
		e.Reps = defaultReps
		e.RestTime = session.DefaultRestSeconds
	}
}

// clampExercise floors negative targets at zero, matching the numeric
// normalization applied everywhere else.
func clampExercise(e *models.TemplateExercise) {
	if e.Sets < 0 {
		e.Sets = 0
	}
	if e.Reps < 0 {
		e.Reps = 0
	}
	if e.Weight < 0 {
		e.Weight = 0
	}
	if e.RestTime < 0 {
		e.RestTime = 0
	}
}

// DeleteTemplate removes a template. History entries derived from it are
// untouched: they carry their own name snapshot.
func (a *App) DeleteTemplate(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.templates.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	a.log.Info("template deleted", "id", id)
	return nil
}

// StartWorkout materializes the template into the live session and switches
// to the active view. Only one session may be live at a time. The advisory
// fetch runs detached; its result is dropped if the session ends first.
func (a *App) StartWorkout(ctx context.Context, templateID string) (models.WorkoutSession, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.active != nil {
		return models.WorkoutSession{}, ErrSessionActive
	}
	tpl, ok := a.templates.Get(templateID)
	if !ok {
		return models.WorkoutSession{}, ErrTemplateNotFound
	}

	s := session.Materialize(tpl, a.newID, a.now())
	a.active = &s
	a.rest.Reset()
	a.view = ViewActive
	a.log.Info("session started", "id", s.ID, "template", s.TemplateName)

	go a.fetchAdvice(s.ID, advice.ContextFor(s.TemplateName, len(s.Exercises)))

	return s, nil
}

// fetchAdvice asks the advisor for coaching text and applies it only if the
// session that requested it is still live.
func (a *App) fetchAdvice(sessionID, workoutContext string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	text := a.advisor.Advise(ctx, workoutContext)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.active == nil || a.active.ID != sessionID {
		return
	}
	a.adviceText = text
}

// ToggleSet flips completion on one set of the live session. Completing a
// set starts (or restarts) the rest countdown; un-completing has no timer
// effect.
func (a *App) ToggleSet(exerciseIdx, setIdx int) (models.WorkoutSession, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.active == nil {
		return models.WorkoutSession{}, ErrNoActiveSession
	}
	if err := a.checkIndices(exerciseIdx, setIdx); err != nil {
		return models.WorkoutSession{}, err
	}

	updated, completed := session.ToggleSet(*a.active, exerciseIdx, setIdx)
	a.active = &updated
	if completed {
		a.rest.Start()
	}
	return updated, nil
}

// UpdateSetField edits reps or weight on one set of the live session.
func (a *App) UpdateSetField(exerciseIdx, setIdx int, field session.SetField, raw string) (models.WorkoutSession, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.active == nil {
		return models.WorkoutSession{}, ErrNoActiveSession
	}
	if err := a.checkIndices(exerciseIdx, setIdx); err != nil {
		return models.WorkoutSession{}, err
	}

	updated := session.UpdateSetField(*a.active, exerciseIdx, setIdx, field, raw)
	a.active = &updated
	return updated, nil
}

// checkIndices normalizes out-of-range addressing from the transport
// boundary into an error instead of a panic. Callers rendering the
// session's own data never hit this.
func (a *App) checkIndices(exerciseIdx, setIdx int) error {
	if exerciseIdx < 0 || exerciseIdx >= len(a.active.Exercises) {
		return ErrIndexOutOfRange
	}
	if setIdx < 0 || setIdx >= len(a.active.Exercises[exerciseIdx].Sets) {
		return ErrIndexOutOfRange
	}
	return nil
}

// FinishWorkout finalizes the live session, prepends it to history, clears
// the live slot, and switches to the history view.
func (a *App) FinishWorkout(ctx context.Context) (models.WorkoutSession, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.active == nil {
		return models.WorkoutSession{}, ErrNoActiveSession
	}

	finished := session.Finish(*a.active, a.now())
	if err := a.history.Append(ctx, finished); err != nil {
		return models.WorkoutSession{}, fmt.Errorf("storing session: %w", err)
	}
	a.active = nil
	a.rest.Reset()
	a.adviceText = advice.Fallback
	a.view = ViewHistory
	a.log.Info("session finished", "id", finished.ID,
		"duration_min", metrics.SessionDuration(finished),
		"volume", metrics.CompletedVolume(finished))
	return finished, nil
}

// CancelWorkout discards the live session without touching any store. The
// client confirms with the user before calling.
func (a *App) CancelWorkout() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.active == nil {
		return ErrNoActiveSession
	}
	a.log.Info("session cancelled", "id", a.active.ID)
	a.active = nil
	a.rest.Reset()
	a.adviceText = advice.Fallback
	a.view = ViewDashboard
	return nil
}

// ActiveSession returns a snapshot of the live session, if any.
func (a *App) ActiveSession() (models.WorkoutSession, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.active == nil {
		return models.WorkoutSession{}, false
	}
	return *a.active, true
}

// Tick advances the rest countdown by one second. Driven by the process
// clock once per second while the service runs.
func (a *App) Tick() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rest.Tick()
}

// SessionStatus is the live-session state the active view renders.
type SessionStatus struct {
	Session       models.WorkoutSession `json:"session"`
	Elapsed       string                `json:"elapsed"`
	Progress      int                   `json:"progress"`
	RestRemaining int                   `json:"restRemaining"`
	RestActive    bool                  `json:"restActive"`
	Advice        string                `json:"advice"`
}

// Status returns the live session with its derived display state.
func (a *App) Status() (SessionStatus, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.active == nil {
		return SessionStatus{}, ErrNoActiveSession
	}
	s := *a.active
	return SessionStatus{
		Session:       s,
		Elapsed:       session.FormatElapsed(session.Elapsed(s, a.now())),
		Progress:      session.Progress(s),
		RestRemaining: a.rest.Remaining(),
		RestActive:    a.rest.Active(),
		Advice:        a.adviceText,
	}, nil
}
