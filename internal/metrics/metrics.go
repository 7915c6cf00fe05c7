// Package metrics derives dashboard and history statistics from finalized
// sessions. Every function is a pure read: no store is ever mutated and
// none of these error, even on empty input.
package metrics

import (
	"math"
	"time"

	"github.com/meltforce/liftlog/internal/models"
)

// SessionsInMonth counts sessions whose start falls in the given calendar
// month and year.
func SessionsInMonth(history []models.WorkoutSession, year int, month time.Month) int {
	count := 0
	for _, s := range history {
		t := time.UnixMilli(s.StartTime)
		if t.Year() == year && t.Month() == month {
			count++
		}
	}
	return count
}

// SessionsInTrailingWeek returns sessions started within the last seven
// days, up to and including now.
func SessionsInTrailingWeek(history []models.WorkoutSession, now time.Time) []models.WorkoutSession {
	weekAgo := now.UnixMilli() - 7*24*3600*1000
	var out []models.WorkoutSession
	for _, s := range history {
		if s.StartTime >= weekAgo && s.StartTime <= now.UnixMilli() {
			out = append(out, s)
		}
	}
	return out
}

// WeeklyActivity reports which weekdays have at least one session, indexed
// Monday=0 through Sunday=6. Go's time.Weekday counts Sunday as 0, so the
// weekday is remapped before indexing.
func WeeklyActivity(sessions []models.WorkoutSession) [7]bool {
	var days [7]bool
	for _, s := range sessions {
		wd := time.UnixMilli(s.StartTime).Weekday()
		days[(int(wd)+6)%7] = true
	}
	return days
}

// CompletedVolume sums reps*weight over the completed sets of a session.
// Incomplete sets contribute nothing.
func CompletedVolume(s models.WorkoutSession) float64 {
	var vol float64
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			if set.IsCompleted {
				vol += set.Reps * set.Weight
			}
		}
	}
	return vol
}

// TotalVolume sums CompletedVolume across all of history.
func TotalVolume(history []models.WorkoutSession) float64 {
	var total float64
	for _, s := range history {
		total += CompletedVolume(s)
	}
	return total
}

// AverageVolume is the per-session mean of completed volume, rounded to the
// nearest integer, 0 when history is empty.
func AverageVolume(history []models.WorkoutSession) int {
	if len(history) == 0 {
		return 0
	}
	return int(math.Round(TotalVolume(history) / float64(len(history))))
}

// SuggestedTemplate picks the template to resume: the most recently created
// one, which the store keeps at the front.
func SuggestedTemplate(templates []models.WorkoutTemplate) (models.WorkoutTemplate, bool) {
	if len(templates) == 0 {
		return models.WorkoutTemplate{}, false
	}
	return templates[0], true
}

// SessionDuration returns whole minutes between start and end.
func SessionDuration(s models.WorkoutSession) int {
	return int((s.EndTime - s.StartTime) / 60000)
}

// ExerciseSummary summarizes one exercise of a session for history display.
type ExerciseSummary struct {
	ExerciseID    string  `json:"exerciseId"`
	CompletedSets int     `json:"completedSets"`
	MaxWeight     float64 `json:"maxWeight"`
}

// SummarizeExercise reports the completed-set count and the maximum weight
// for the exercise at index i. MaxWeight spans all sets, not just completed
// ones. An exercise with zero sets reports 0 for both.
func SummarizeExercise(s models.WorkoutSession, i int) ExerciseSummary {
	ex := s.Exercises[i]
	summary := ExerciseSummary{ExerciseID: ex.ExerciseID}
	for _, set := range ex.Sets {
		if set.IsCompleted {
			summary.CompletedSets++
		}
		if set.Weight > summary.MaxWeight {
			summary.MaxWeight = set.Weight
		}
	}
	return summary
}

// CompletedSets counts completed sets across the whole session.
func CompletedSets(s models.WorkoutSession) int {
	count := 0
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			if set.IsCompleted {
				count++
			}
		}
	}
	return count
}
