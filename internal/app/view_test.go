package app

import "testing"

// TestNavGroup verifies which navigation entry each view highlights.
func TestNavGroup(t *testing.T) {
	cases := []struct {
		view View
		want NavGroup
	}{
		{ViewDashboard, NavDashboard},
		{ViewTemplates, NavTemplates},
		{ViewCreateTemplate, NavTemplates},
		{ViewHistory, NavHistory},
		{ViewActive, NavHidden},
	}
	for _, tc := range cases {
		if got := tc.view.NavGroup(); got != tc.want {
			t.Errorf("NavGroup(%v) = %v, want %v", tc.view, got, tc.want)
		}
	}
}

// TestParseView verifies acceptance of known names and rejection of the
// rest.
func TestParseView(t *testing.T) {
	v, err := ParseView("create_template")
	if err != nil || v != ViewCreateTemplate {
		t.Errorf("ParseView(create_template) = %v, %v", v, err)
	}
	if _, err := ParseView("settings"); err == nil {
		t.Error("ParseView(settings) succeeded, want error")
	}
}
