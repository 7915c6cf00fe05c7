// Package catalog holds the static exercise reference list. Templates and
// sessions store exercise IDs only; everything else is looked up here.
package catalog

import "github.com/meltforce/liftlog/internal/models"

// Exercises is the built-in exercise list, ordered by muscle group.
var Exercises = []models.ExerciseDefinition{
	// Chest
	{ID: "1", Name: "Bench Press (Barbell)", Category: models.MuscleChest},
	{ID: "2", Name: "Incline Press (Dumbbell)", Category: models.MuscleChest},
	{ID: "3", Name: "Flat Dumbbell Fly", Category: models.MuscleChest},
	{ID: "18", Name: "Dips (Chest Focus)", Category: models.MuscleChest},
	{ID: "19", Name: "Push-Ups", Category: models.MuscleChest},
	{ID: "20", Name: "Chest Press (Machine)", Category: models.MuscleChest},
	{ID: "21", Name: "Pec Deck", Category: models.MuscleChest},
	{ID: "47", Name: "Dumbbell Pull-Over", Category: models.MuscleChest},
	{ID: "48", Name: "Decline Press (Barbell)", Category: models.MuscleChest},
	// Back
	{ID: "4", Name: "Pull-Ups (Overhand)", Category: models.MuscleBack},
	{ID: "5", Name: "Barbell Row", Category: models.MuscleBack},
	{ID: "6", Name: "Lat Pulldown", Category: models.MuscleBack},
	{ID: "22", Name: "One-Arm Dumbbell Row", Category: models.MuscleBack},
	{ID: "23", Name: "Deadlift", Category: models.MuscleBack},
	{ID: "24", Name: "Seated Cable Row", Category: models.MuscleBack},
	{ID: "25", Name: "Back Extension (Bench)", Category: models.MuscleBack},
	{ID: "49", Name: "Weighted Pull-Up", Category: models.MuscleBack},
	{ID: "50", Name: "Dumbbell Shrugs", Category: models.MuscleBack},
	{ID: "51", Name: "Meadows Row", Category: models.MuscleBack},
	// Shoulders
	{ID: "7", Name: "Overhead Press", Category: models.MuscleShoulders},
	{ID: "8", Name: "Lateral Raises", Category: models.MuscleShoulders},
	{ID: "26", Name: "Reverse Fly (Dumbbell)", Category: models.MuscleShoulders},
	{ID: "27", Name: "Arnold Press", Category: models.MuscleShoulders},
	{ID: "28", Name: "Face Pull", Category: models.MuscleShoulders},
	{ID: "29", Name: "Upright Row", Category: models.MuscleShoulders},
	{ID: "52", Name: "Front Raises", Category: models.MuscleShoulders},
	{ID: "53", Name: "Reverse Cable Fly", Category: models.MuscleShoulders},
	// Biceps
	{ID: "9", Name: "EZ-Bar Curl", Category: models.MuscleBiceps},
	{ID: "10", Name: "Hammer Curl", Category: models.MuscleBiceps},
	{ID: "30", Name: "Incline Dumbbell Curl", Category: models.MuscleBiceps},
	{ID: "31", Name: "Concentration Curl", Category: models.MuscleBiceps},
	{ID: "32", Name: "Spider Curl", Category: models.MuscleBiceps},
	{ID: "54", Name: "Low Cable Curl", Category: models.MuscleBiceps},
	// Triceps
	{ID: "11", Name: "Dips (Triceps Focus)", Category: models.MuscleTriceps},
	{ID: "12", Name: "Triceps Pushdown (Cable)", Category: models.MuscleTriceps},
	{ID: "33", Name: "Skull Crushers", Category: models.MuscleTriceps},
	{ID: "34", Name: "Dumbbell Kickback", Category: models.MuscleTriceps},
	{ID: "35", Name: "Close-Grip Bench Press", Category: models.MuscleTriceps},
	{ID: "55", Name: "Overhead Triceps Extension", Category: models.MuscleTriceps},
	// Legs
	{ID: "13", Name: "Back Squat", Category: models.MuscleLegs},
	{ID: "14", Name: "Walking Lunges", Category: models.MuscleLegs},
	{ID: "15", Name: "Leg Extension", Category: models.MuscleLegs},
	{ID: "36", Name: "Leg Press", Category: models.MuscleLegs},
	{ID: "37", Name: "Leg Curl (Hamstrings)", Category: models.MuscleLegs},
	{ID: "38", Name: "Hack Squat", Category: models.MuscleLegs},
	{ID: "39", Name: "Stiff-Leg Deadlift", Category: models.MuscleLegs},
	{ID: "56", Name: "Bulgarian Split Squat", Category: models.MuscleLegs},
	{ID: "57", Name: "Hip Thrust (Barbell)", Category: models.MuscleLegs},
	{ID: "58", Name: "Adductor Machine", Category: models.MuscleLegs},
	// Calves & forearms
	{ID: "40", Name: "Standing Calf Raise", Category: models.MuscleCalves},
	{ID: "41", Name: "Seated Calf Raise", Category: models.MuscleCalves},
	{ID: "42", Name: "Wrist Curl", Category: models.MuscleForearms},
	{ID: "43", Name: "Farmer's Walk", Category: models.MuscleForearms},
	// Abs
	{ID: "16", Name: "Floor Crunch", Category: models.MuscleAbs},
	{ID: "17", Name: "Plank", Category: models.MuscleAbs},
	{ID: "44", Name: "Hanging Leg Raise", Category: models.MuscleAbs},
	{ID: "45", Name: "Russian Twist", Category: models.MuscleAbs},
	{ID: "46", Name: "Ab Wheel Rollout", Category: models.MuscleAbs},
}

// UnknownName labels exercise IDs missing from the catalog. A missing ID is
// never an error: it renders as unknown and the session data stays intact.
const UnknownName = "Unknown Exercise"

var byID = func() map[string]models.ExerciseDefinition {
	m := make(map[string]models.ExerciseDefinition, len(Exercises))
	for _, e := range Exercises {
		m[e.ID] = e
	}
	return m
}()

// Lookup returns the catalog entry for id, if present.
func Lookup(id string) (models.ExerciseDefinition, bool) {
	def, ok := byID[id]
	return def, ok
}

// Name returns the display name for id, degrading to UnknownName.
func Name(id string) string {
	if def, ok := byID[id]; ok {
		return def.Name
	}
	return UnknownName
}

// MuscleGroups returns the distinct categories in catalog order.
func MuscleGroups() []models.MuscleGroup {
	var groups []models.MuscleGroup
	seen := make(map[models.MuscleGroup]bool)
	for _, e := range Exercises {
		if !seen[e.Category] {
			seen[e.Category] = true
			groups = append(groups, e.Category)
		}
	}
	return groups
}
