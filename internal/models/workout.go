package models

// MuscleGroup categorizes an exercise by the primary muscle it targets.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "Chest"
	MuscleBack      MuscleGroup = "Back"
	MuscleShoulders MuscleGroup = "Shoulders"
	MuscleBiceps    MuscleGroup = "Biceps"
	MuscleTriceps   MuscleGroup = "Triceps"
	MuscleLegs      MuscleGroup = "Legs"
	MuscleAbs       MuscleGroup = "Abs"
	MuscleCalves    MuscleGroup = "Calves"
	MuscleForearms  MuscleGroup = "Forearms"
)

// ExerciseDefinition is a catalog entry. The catalog is static reference
// data; sessions and templates refer to entries by ID only.
type ExerciseDefinition struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Category MuscleGroup `json:"category"`
}

// TemplateExercise is one planned exercise inside a template: targets only,
// never actual performance.
type TemplateExercise struct {
	ID         string  `json:"id"`
	ExerciseID string  `json:"exerciseId"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	RestTime   int     `json:"restTime"` // seconds
}

// WorkoutTemplate is a reusable, named, ordered workout plan. Sessions copy
// its values at start; deleting a template never touches past sessions.
type WorkoutTemplate struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Exercises []TemplateExercise `json:"exercises"`
	CreatedAt int64              `json:"createdAt"` // ms since epoch
}

// SetLog records one set's actual performance. Reps and weight start at the
// template's targets and stay editable whether or not the set is completed.
type SetLog struct {
	Reps        float64 `json:"reps"`
	Weight      float64 `json:"weight"`
	IsCompleted bool    `json:"isCompleted"`
}

// LoggedExercise holds the per-set log for one exercise of a session. The
// set list length is fixed when the session is created.
type LoggedExercise struct {
	ExerciseID string   `json:"exerciseId"`
	Sets       []SetLog `json:"sets"`
}

// WorkoutSession is one performance of a template. EndTime 0 means the
// session is still in progress; finished sessions always have
// EndTime > StartTime > 0.
type WorkoutSession struct {
	ID           string           `json:"id"`
	TemplateID   string           `json:"templateId,omitempty"`
	TemplateName string           `json:"templateName"`
	StartTime    int64            `json:"startTime"` // ms since epoch
	EndTime      int64            `json:"endTime"`   // ms since epoch, 0 while active
	Exercises    []LoggedExercise `json:"exercises"`
}

// InProgress reports whether the session has not been finalized yet.
func (s WorkoutSession) InProgress() bool {
	return s.EndTime == 0
}
