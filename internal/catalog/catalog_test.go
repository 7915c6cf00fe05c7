package catalog

import (
	"testing"

	"github.com/meltforce/liftlog/internal/models"
)

// TestCatalogIntegrity verifies every entry has an ID, a name, and a
// category, and that IDs are unique.
func TestCatalogIntegrity(t *testing.T) {
	if len(Exercises) != 58 {
		t.Errorf("len(Exercises) = %d, want 58", len(Exercises))
	}
	seen := make(map[string]bool, len(Exercises))
	for _, e := range Exercises {
		if e.ID == "" || e.Name == "" || e.Category == "" {
			t.Errorf("incomplete entry: %+v", e)
		}
		if seen[e.ID] {
			t.Errorf("duplicate exercise ID %q", e.ID)
		}
		seen[e.ID] = true
	}
}

// TestLookup verifies lookup by ID.
func TestLookup(t *testing.T) {
	def, ok := Lookup("13")
	if !ok || def.Name != "Back Squat" || def.Category != models.MuscleLegs {
		t.Errorf("Lookup(13) = %+v %v, want Back Squat in legs", def, ok)
	}
	if _, ok := Lookup("999"); ok {
		t.Error("Lookup(999) = found, want missing")
	}
}

// TestName verifies the unknown-ID degradation.
func TestName(t *testing.T) {
	if got := Name("1"); got != "Bench Press (Barbell)" {
		t.Errorf("Name(1) = %q", got)
	}
	if got := Name("999"); got != UnknownName {
		t.Errorf("Name(999) = %q, want %q", got, UnknownName)
	}
}

// TestMuscleGroups verifies the distinct category list covers all nine
// groups.
func TestMuscleGroups(t *testing.T) {
	groups := MuscleGroups()
	if len(groups) != 9 {
		t.Errorf("len(MuscleGroups) = %d, want 9", len(groups))
	}
	if groups[0] != models.MuscleChest {
		t.Errorf("first group = %v, want chest", groups[0])
	}
}
