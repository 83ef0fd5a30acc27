package intent

import "testing"

func TestDetectCategory_CaseInsensitive(t *testing.T) {
	upper := DetectCategory("РАБОТА встреча")
	lower := DetectCategory("работа встреча")
	if upper != CategoryWork || lower != CategoryWork {
		t.Fatalf("expected work for both casings, got %q and %q", upper, lower)
	}
}

func TestDetectCategory_FixedOrder(t *testing.T) {
	// Both home and work keywords are present; home is scanned first.
	if got := DetectCategory("ремонт в офисе"); got != CategoryHome {
		t.Fatalf("expected home to win by scan order, got %q", got)
	}
}

func TestDetectCategory_DefaultCasual(t *testing.T) {
	if got := DetectCategory("просто поболтать ни о чём"); got != CategoryCasual {
		t.Fatalf("expected casual default, got %q", got)
	}
}

func TestDetectCategory_Sport(t *testing.T) {
	if got := DetectCategory("тренировка в зале в 19:00"); got != CategorySport {
		t.Fatalf("expected sport, got %q", got)
	}
}

func TestColorID(t *testing.T) {
	cases := map[Category]string{
		CategoryHome:      "10",
		CategoryWork:      "5",
		CategorySport:     "9",
		CategoryImportant: "11",
		CategoryCasual:    "7",
	}
	for cat, want := range cases {
		if got := ColorID(cat); got != want {
			t.Errorf("ColorID(%q) = %q, want %q", cat, got, want)
		}
	}
	// Unknown categories fall back to the casual color.
	if got := ColorID(Category("nope")); got != "7" {
		t.Errorf("expected casual color for unknown category, got %q", got)
	}
}
