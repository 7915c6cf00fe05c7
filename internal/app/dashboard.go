package app

import (
	"github.com/meltforce/liftlog/internal/metrics"
	"github.com/meltforce/liftlog/internal/models"
)

// DashboardSummary is everything the dashboard view renders, derived fresh
// from the stores on each read.
type DashboardSummary struct {
	SessionsThisMonth int                     `json:"sessionsThisMonth"`
	TotalVolume       float64                 `json:"totalVolume"`
	AverageVolume     int                     `json:"averageVolume"`
	WeekSessionCount  int                     `json:"weekSessionCount"`
	WeeklyActivity    [7]bool                 `json:"weeklyActivity"` // Monday first
	SuggestedTemplate *models.WorkoutTemplate `json:"suggestedTemplate,omitempty"`
	Advice            string                  `json:"advice"`
}

// Dashboard computes the dashboard summary.
func (a *App) Dashboard() DashboardSummary {
	history := a.history.All()
	templates := a.templates.All()

	a.mu.Lock()
	now := a.now()
	adviceText := a.adviceText
	a.mu.Unlock()

	week := metrics.SessionsInTrailingWeek(history, now)
	summary := DashboardSummary{
		SessionsThisMonth: metrics.SessionsInMonth(history, now.Year(), now.Month()),
		TotalVolume:       metrics.TotalVolume(history),
		AverageVolume:     metrics.AverageVolume(history),
		WeekSessionCount:  len(week),
		WeeklyActivity:    metrics.WeeklyActivity(week),
		Advice:            adviceText,
	}
	if tpl, ok := metrics.SuggestedTemplate(templates); ok {
		summary.SuggestedTemplate = &tpl
	}
	return summary
}

// SessionSummary is one history entry with its derived display stats.
type SessionSummary struct {
	Session       models.WorkoutSession     `json:"session"`
	DurationMin   int                       `json:"durationMin"`
	TotalVolume   float64                   `json:"totalVolume"`
	CompletedSets int                       `json:"completedSets"`
	ExerciseCount int                       `json:"exerciseCount"`
	Exercises     []metrics.ExerciseSummary `json:"exercises"`
}

// HistorySummaries returns history entries, newest first, with per-session
// and per-exercise statistics attached.
func (a *App) HistorySummaries() []SessionSummary {
	history := a.history.All()
	summaries := make([]SessionSummary, 0, len(history))
	for _, s := range history {
		summary := SessionSummary{
			Session:       s,
			DurationMin:   metrics.SessionDuration(s),
			TotalVolume:   metrics.CompletedVolume(s),
			CompletedSets: metrics.CompletedSets(s),
			ExerciseCount: len(s.Exercises),
			Exercises:     make([]metrics.ExerciseSummary, 0, len(s.Exercises)),
		}
		for i := range s.Exercises {
			summary.Exercises = append(summary.Exercises, metrics.SummarizeExercise(s, i))
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
