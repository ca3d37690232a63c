package suggest

import (
	"strings"
	"testing"
)

func TestAlternativesMatchedPlusGeneric(t *testing.T) {
	tips := Alternatives([]string{"paratha"})

	if len(tips) != 3 {
		t.Fatalf("expected paratha tip plus two generic tips, got %d tips", len(tips))
	}
	if !strings.Contains(tips[0], "paratha") {
		t.Errorf("expected the paratha swap tip first, got %q", tips[0])
	}
	if tips[1] != genericTips[0] || tips[2] != genericTips[1] {
		t.Errorf("expected generic tips appended in order, got %v", tips[1:])
	}
}

func TestAlternativesDeduplicates(t *testing.T) {
	// Two biryani entries in the same day must produce the tip once.
	tips := Alternatives([]string{"biryani (1 plate)", "biryani (1 plate)"})

	if len(tips) != 3 {
		t.Fatalf("expected 3 unique tips, got %d: %v", len(tips), tips)
	}
}

func TestAlternativesNoMatches(t *testing.T) {
	tips := Alternatives([]string{"roti", "dal (1 cup)"})

	if len(tips) != 2 {
		t.Fatalf("expected only the two generic tips, got %d", len(tips))
	}
}

func TestAlternativesEmptyInput(t *testing.T) {
	tips := Alternatives(nil)

	if len(tips) != 2 {
		t.Fatalf("expected the two generic tips for an empty day, got %d", len(tips))
	}
}

func TestActivitiesHighIntake(t *testing.T) {
	got := Activities(2500)
	if len(got) != 4 {
		t.Fatalf("expected 4 suggestions above %d kcal, got %d", highIntakeKcal, len(got))
	}
	if !strings.Contains(got[3], "longer walk") {
		t.Errorf("expected the longer-walk nudge, got %q", got[3])
	}
}

func TestActivitiesNormalIntake(t *testing.T) {
	got := Activities(1800)
	if len(got) != 3 {
		t.Fatalf("expected 3 suggestions at 1800 kcal, got %d", len(got))
	}
	for _, s := range got {
		if strings.Contains(s, "longer walk") {
			t.Errorf("unexpected longer-walk nudge at 1800 kcal: %q", s)
		}
	}
}

func TestActivitiesBoundary(t *testing.T) {
	if got := Activities(highIntakeKcal); len(got) != 3 {
		t.Fatalf("expected no extra nudge at exactly %d kcal, got %d suggestions", highIntakeKcal, len(got))
	}
}
