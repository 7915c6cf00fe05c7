package app

import "fmt"

// View names one of the five mutually exclusive screens the client can
// show. The app owns the current view and moves it on lifecycle events.
type View string

const (
	ViewDashboard      View = "dashboard"
	ViewTemplates      View = "templates"
	ViewCreateTemplate View = "create_template"
	ViewActive         View = "active"
	ViewHistory        View = "history"
)

// NavGroup is the navigation entry a view belongs to. The template list and
// the template creator highlight the same entry; the active session hides
// navigation entirely.
type NavGroup string

const (
	NavDashboard NavGroup = "dashboard"
	NavTemplates NavGroup = "templates"
	NavHistory   NavGroup = "history"
	NavHidden    NavGroup = "hidden"
)

// NavGroup returns the navigation entry for the view.
func (v View) NavGroup() NavGroup {
	switch v {
	case ViewDashboard:
		return NavDashboard
	case ViewTemplates, ViewCreateTemplate:
		return NavTemplates
	case ViewHistory:
		return NavHistory
	case ViewActive:
		return NavHidden
	}
	return NavHidden
}

// ParseView validates a view name coming from the client.
func ParseView(s string) (View, error) {
	switch v := View(s); v {
	case ViewDashboard, ViewTemplates, ViewCreateTemplate, ViewActive, ViewHistory:
		return v, nil
	}
	return "", fmt.Errorf("unknown view %q", s)
}
