package session

import (
	"testing"
	"time"

	"github.com/meltforce/liftlog/internal/models"
)

func fixedID(id string) IDGenerator {
	return func() string { return id }
}

func pushTemplate() models.WorkoutTemplate {
	return models.WorkoutTemplate{
		ID:   "tpl-1",
		Name: "Push",
		Exercises: []models.TemplateExercise{
			{ID: "te-1", ExerciseID: "1", Sets: 3, Reps: 10, Weight: 50, RestTime: 90},
		},
		CreatedAt: 1700000000000,
	}
}

// TestMaterialize verifies that a template expands into a session with one
// logged exercise per template exercise and the prescribed number of sets,
// all initialized from the targets and not completed.
func TestMaterialize(t *testing.T) {
	now := time.UnixMilli(1700000100000)
	s := Materialize(pushTemplate(), fixedID("session-1"), now)

	if s.ID != "session-1" {
		t.Errorf("id = %q, want %q", s.ID, "session-1")
	}
	if s.TemplateID != "tpl-1" {
		t.Errorf("templateId = %q, want %q", s.TemplateID, "tpl-1")
	}
	if s.TemplateName != "Push" {
		t.Errorf("templateName = %q, want %q", s.TemplateName, "Push")
	}
	if s.StartTime != 1700000100000 {
		t.Errorf("startTime = %d, want 1700000100000", s.StartTime)
	}
	if s.EndTime != 0 {
		t.Errorf("endTime = %d, want 0", s.EndTime)
	}
	if len(s.Exercises) != 1 {
		t.Fatalf("exercises = %d, want 1", len(s.Exercises))
	}
	ex := s.Exercises[0]
	if ex.ExerciseID != "1" {
		t.Errorf("exerciseId = %q, want %q", ex.ExerciseID, "1")
	}
	if len(ex.Sets) != 3 {
		t.Fatalf("sets = %d, want 3", len(ex.Sets))
	}
	for i, set := range ex.Sets {
		if set.Reps != 10 || set.Weight != 50 || set.IsCompleted {
			t.Errorf("set[%d] = %+v, want {10 50 false}", i, set)
		}
	}
}

// TestMaterializeEdgeCases verifies empty templates, zero-set exercises,
// and negative set counts all produce well-formed sessions.
func TestMaterializeEdgeCases(t *testing.T) {
	now := time.Now()

	empty := Materialize(models.WorkoutTemplate{ID: "t", Name: "Empty"}, fixedID("s"), now)
	if len(empty.Exercises) != 0 {
		t.Errorf("empty template: exercises = %d, want 0", len(empty.Exercises))
	}

	tpl := models.WorkoutTemplate{
		ID:   "t",
		Name: "Odd",
		Exercises: []models.TemplateExercise{
			{ID: "a", ExerciseID: "4", Sets: 0, Reps: 8, Weight: 20},
			{ID: "b", ExerciseID: "5", Sets: -2, Reps: 8, Weight: 20},
		},
	}
	s := Materialize(tpl, fixedID("s"), now)
	if len(s.Exercises) != 2 {
		t.Fatalf("exercises = %d, want 2", len(s.Exercises))
	}
	if len(s.Exercises[0].Sets) != 0 {
		t.Errorf("zero-set exercise: sets = %d, want 0", len(s.Exercises[0].Sets))
	}
	if len(s.Exercises[1].Sets) != 0 {
		t.Errorf("negative-set exercise: sets = %d, want 0", len(s.Exercises[1].Sets))
	}
}

// TestToggleSetTwice verifies that toggling a set twice restores the
// completion flag and leaves reps/weight untouched.
func TestToggleSetTwice(t *testing.T) {
	s := Materialize(pushTemplate(), fixedID("s"), time.Now())

	once, completed := ToggleSet(s, 0, 0)
	if !completed {
		t.Error("first toggle: completed = false, want true")
	}
	if !once.Exercises[0].Sets[0].IsCompleted {
		t.Error("first toggle: isCompleted = false, want true")
	}

	twice, completed := ToggleSet(once, 0, 0)
	if completed {
		t.Error("second toggle: completed = true, want false")
	}
	set := twice.Exercises[0].Sets[0]
	if set.IsCompleted {
		t.Error("second toggle: isCompleted = true, want false")
	}
	if set.Reps != 10 || set.Weight != 50 {
		t.Errorf("set after double toggle = %+v, want reps 10 weight 50", set)
	}
}

// TestToggleSetIndependence verifies the editor's structural-replacement
// contract: the input session value is never mutated.
func TestToggleSetIndependence(t *testing.T) {
	s := Materialize(pushTemplate(), fixedID("s"), time.Now())

	updated, _ := ToggleSet(s, 0, 1)
	if s.Exercises[0].Sets[1].IsCompleted {
		t.Error("input session was mutated by ToggleSet")
	}
	if !updated.Exercises[0].Sets[1].IsCompleted {
		t.Error("output session missing the toggle")
	}

	edited := UpdateSetField(s, 0, 0, FieldWeight, "60")
	if s.Exercises[0].Sets[0].Weight != 50 {
		t.Errorf("input weight = %v after UpdateSetField, want 50", s.Exercises[0].Sets[0].Weight)
	}
	if edited.Exercises[0].Sets[0].Weight != 60 {
		t.Errorf("output weight = %v, want 60", edited.Exercises[0].Sets[0].Weight)
	}
}

// TestUpdateSetField verifies numeric parsing: valid numbers apply, empty
// and garbage input normalize to 0, and the completion flag never changes.
func TestUpdateSetField(t *testing.T) {
	cases := []struct {
		name  string
		field SetField
		raw   string
		want  float64
	}{
		{"valid weight", FieldWeight, "72.5", 72.5},
		{"valid reps", FieldReps, "12", 12},
		{"empty input", FieldWeight, "", 0},
		{"garbage input", FieldReps, "abc", 0},
	}

	base := Materialize(pushTemplate(), fixedID("s"), time.Now())
	completed, _ := ToggleSet(base, 0, 0)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := UpdateSetField(completed, 0, 0, tc.field, tc.raw)
			set := got.Exercises[0].Sets[0]
			var val float64
			if tc.field == FieldReps {
				val = set.Reps
			} else {
				val = set.Weight
			}
			if val != tc.want {
				t.Errorf("%s = %v, want %v", tc.field, val, tc.want)
			}
			if !set.IsCompleted {
				t.Error("isCompleted changed by field edit")
			}
		})
	}
}

// TestUpdateSetFieldIdempotent verifies applying the same edit twice leaves
// the same state as applying it once.
func TestUpdateSetFieldIdempotent(t *testing.T) {
	s := Materialize(pushTemplate(), fixedID("s"), time.Now())
	once := UpdateSetField(s, 0, 0, FieldWeight, "55")
	twice := UpdateSetField(once, 0, 0, FieldWeight, "55")
	if once.Exercises[0].Sets[0] != twice.Exercises[0].Sets[0] {
		t.Errorf("second edit changed state: %+v vs %+v",
			once.Exercises[0].Sets[0], twice.Exercises[0].Sets[0])
	}
}

// TestFinish verifies finalization stamps an end time at or after the
// start, and that an untouched session carries no completed volume.
func TestFinish(t *testing.T) {
	start := time.UnixMilli(1700000000000)
	s := Materialize(pushTemplate(), fixedID("s"), start)
	done := Finish(s, start.Add(45*time.Minute))

	if done.EndTime < done.StartTime {
		t.Errorf("endTime %d < startTime %d", done.EndTime, done.StartTime)
	}
	for _, ex := range done.Exercises {
		for i, set := range ex.Sets {
			if set.IsCompleted {
				t.Errorf("set[%d] completed on a never-toggled session", i)
			}
		}
	}
}

// TestProgress verifies the completion percentage, including the zero-set
// session which reports 0 rather than dividing by zero.
func TestProgress(t *testing.T) {
	s := Materialize(pushTemplate(), fixedID("s"), time.Now())
	if got := Progress(s); got != 0 {
		t.Errorf("fresh session progress = %d, want 0", got)
	}

	s, _ = ToggleSet(s, 0, 0)
	if got := Progress(s); got != 33 {
		t.Errorf("1/3 progress = %d, want 33", got)
	}
	s, _ = ToggleSet(s, 0, 1)
	s, _ = ToggleSet(s, 0, 2)
	if got := Progress(s); got != 100 {
		t.Errorf("3/3 progress = %d, want 100", got)
	}

	empty := Materialize(models.WorkoutTemplate{ID: "t", Name: "Empty"}, fixedID("s"), time.Now())
	if got := Progress(empty); got != 0 {
		t.Errorf("empty session progress = %d, want 0", got)
	}
}

// TestFormatElapsed verifies the H:MM:SS rendering with the hour component
// suppressed under one hour.
func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3661, "1:01:01"},
		{7325, "2:02:05"},
	}
	for _, tc := range cases {
		if got := FormatElapsed(tc.seconds); got != tc.want {
			t.Errorf("FormatElapsed(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

// TestElapsed verifies second derivation from the start timestamp and the
// clamp against clock skew.
func TestElapsed(t *testing.T) {
	start := time.UnixMilli(1700000000000)
	s := Materialize(pushTemplate(), fixedID("s"), start)

	if got := Elapsed(s, start.Add(90*time.Second)); got != 90 {
		t.Errorf("elapsed = %d, want 90", got)
	}
	if got := Elapsed(s, start.Add(-time.Second)); got != 0 {
		t.Errorf("elapsed before start = %d, want 0", got)
	}
}
