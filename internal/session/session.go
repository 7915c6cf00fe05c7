// Package session implements the live-session lifecycle: materializing a
// template into an in-progress session, applying in-session edits, and
// finalizing the session for history.
package session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/meltforce/liftlog/internal/models"
)

// IDGenerator produces opaque unique identifiers for new sessions.
type IDGenerator func() string

// Materialize creates a fresh in-progress session from a template. Each
// template exercise yields one logged exercise with exactly its target set
// count, every set initialized to the target reps/weight and not completed.
// Template values are copied; the session never aliases the template.
func Materialize(tpl models.WorkoutTemplate, newID IDGenerator, now time.Time) models.WorkoutSession {
	exercises := make([]models.LoggedExercise, 0, len(tpl.Exercises))
	for _, te := range tpl.Exercises {
		n := te.Sets
		if n < 0 {
			n = 0
		}
		sets := make([]models.SetLog, n)
		for i := range sets {
			sets[i] = models.SetLog{
				Reps:   float64(te.Reps),
				Weight: te.Weight,
			}
		}
		exercises = append(exercises, models.LoggedExercise{
			ExerciseID: te.ExerciseID,
			Sets:       sets,
		})
	}

	return models.WorkoutSession{
		ID:           newID(),
		TemplateID:   tpl.ID,
		TemplateName: tpl.Name,
		StartTime:    now.UnixMilli(),
		EndTime:      0,
		Exercises:    exercises,
	}
}

// SetField names an editable field of a set log.
type SetField string

const (
	FieldReps   SetField = "reps"
	FieldWeight SetField = "weight"
)

// ToggleSet flips the completion flag on the addressed set and returns the
// updated session plus whether the set just transitioned to completed (the
// caller starts the rest countdown on that transition only). The returned
// session shares no mutated slice with the input. Indices come from
// rendering the session's own data; out-of-range access panics.
func ToggleSet(s models.WorkoutSession, exerciseIdx, setIdx int) (models.WorkoutSession, bool) {
	out := cloneForEdit(s, exerciseIdx)
	set := &out.Exercises[exerciseIdx].Sets[setIdx]
	set.IsCompleted = !set.IsCompleted
	return out, set.IsCompleted
}

// UpdateSetField sets reps or weight on the addressed set from raw user
// input. Empty or non-numeric input normalizes to 0 rather than failing;
// the completion flag is never touched.
func UpdateSetField(s models.WorkoutSession, exerciseIdx, setIdx int, field SetField, raw string) models.WorkoutSession {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		value = 0
	}

	out := cloneForEdit(s, exerciseIdx)
	set := &out.Exercises[exerciseIdx].Sets[setIdx]
	switch field {
	case FieldReps:
		set.Reps = value
	case FieldWeight:
		set.Weight = value
	}
	return out
}

// Finish stamps the end time and returns the finalized session. The caller
// prepends the result to history and clears the live slot.
func Finish(s models.WorkoutSession, now time.Time) models.WorkoutSession {
	s.EndTime = now.UnixMilli()
	return s
}

// cloneForEdit copies the exercise list and the one set list about to be
// edited, so callers holding the old value never observe the change.
func cloneForEdit(s models.WorkoutSession, exerciseIdx int) models.WorkoutSession {
	exercises := make([]models.LoggedExercise, len(s.Exercises))
	copy(exercises, s.Exercises)
	sets := make([]models.SetLog, len(exercises[exerciseIdx].Sets))
	copy(sets, exercises[exerciseIdx].Sets)
	exercises[exerciseIdx].Sets = sets
	s.Exercises = exercises
	return s
}

// Progress reports completion as a 0-100 percentage over all sets of the
// session. A session with no sets reports 0.
func Progress(s models.WorkoutSession) int {
	total, completed := 0, 0
	for _, ex := range s.Exercises {
		total += len(ex.Sets)
		for _, set := range ex.Sets {
			if set.IsCompleted {
				completed++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return 100 * completed / total
}

// Elapsed returns whole seconds since the session started, never negative.
func Elapsed(s models.WorkoutSession, now time.Time) int {
	secs := int((now.UnixMilli() - s.StartTime) / 1000)
	if secs < 0 {
		return 0
	}
	return secs
}

// FormatElapsed renders seconds as H:MM:SS, dropping the hour component
// (and its colon) entirely under one hour.
func FormatElapsed(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
