package models

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestSessionRoundTrip verifies a finished session survives encoding with
// the documented field names intact.
func TestSessionRoundTrip(t *testing.T) {
	original := WorkoutSession{
		ID:           "s1",
		TemplateID:   "t1",
		TemplateName: "Push",
		StartTime:    1700000000000,
		EndTime:      1700003600000,
		Exercises: []LoggedExercise{
			{ExerciseID: "1", Sets: []SetLog{
				{Reps: 10, Weight: 62.5, IsCompleted: true},
				{Reps: 8, Weight: 60, IsCompleted: false},
			}},
		},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{`"exerciseId"`, `"isCompleted"`, `"templateName"`, `"startTime"`, `"endTime"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("encoded session missing field %s", field)
		}
	}

	var decoded WorkoutSession
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Exercises[0].Sets[0].Weight != 62.5 {
		t.Errorf("Weight = %v, want 62.5", decoded.Exercises[0].Sets[0].Weight)
	}
	if decoded.InProgress() {
		t.Error("finished session reports in-progress")
	}
}

// TestInProgress verifies the zero end time sentinel.
func TestInProgress(t *testing.T) {
	s := WorkoutSession{StartTime: 1700000000000}
	if !s.InProgress() {
		t.Error("session with zero end time should be in progress")
	}
	s.EndTime = s.StartTime + 1
	if s.InProgress() {
		t.Error("session with end time should not be in progress")
	}
}

// TestTemplateOmitsEmptyID verifies ad-hoc sessions drop the template
// reference when encoding.
func TestTemplateOmitsEmptyID(t *testing.T) {
	data, err := json.Marshal(WorkoutSession{ID: "s1"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "templateId") {
		t.Errorf("encoded session should omit empty templateId: %s", data)
	}
}
