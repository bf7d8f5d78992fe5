package category

import "testing"

func TestDetectSports(t *testing.T) {
	cat := Detect("Underdogs win the championship", "A stunning final match", "")
	if cat != Sports {
		t.Errorf("expected sports, got %s", cat)
	}
}

func TestDetectTechnology(t *testing.T) {
	cat := Detect("New software release", "The startup ships an AI feature", "")
	if cat != Technology {
		t.Errorf("expected technology, got %s", cat)
	}
}

func TestDetectPriorityOrder(t *testing.T) {
	// "game" (sports) and "software" (technology) both match; sports is
	// checked first so it must win.
	cat := Detect("Game studio ships new software", "", "")
	if cat != Sports {
		t.Errorf("expected sports to win by priority, got %s", cat)
	}
}

func TestDetectFallsBackToGeneral(t *testing.T) {
	cat := Detect("A quiet afternoon", "Nothing much happened", "")
	if cat != General {
		t.Errorf("expected general, got %s", cat)
	}
}

func TestDetectUsesContentField(t *testing.T) {
	cat := Detect("", "", "The election results are in")
	if cat != Politics {
		t.Errorf("expected politics, got %s", cat)
	}
}

func TestDetectDeterministic(t *testing.T) {
	first := Detect("Stocks rally", "Markets climb on earnings", "")
	for i := 0; i < 10; i++ {
		if got := Detect("Stocks rally", "Markets climb on earnings", ""); got != first {
			t.Fatalf("classification not deterministic: %s then %s", first, got)
		}
	}
}

func TestMapForProvider(t *testing.T) {
	cases := []struct {
		cat      string
		provider Provider
		want     string
	}{
		{"sports", ProviderGuardian, "sport"},
		{"sports", ProviderNewsAPI, "sports"},
		{"entertainment", ProviderGuardian, "culture"},
		{"entertainment", ProviderNYTimes, "arts"},
		{"world", ProviderNewsAPI, "general"},
		{"general", ProviderNYTimes, "news"},
		{"Technology", ProviderNYTimes, "technology"}, // case-insensitive lookup
		{"obituaries", ProviderGuardian, "obituaries"}, // unknown passes through
	}
	for _, c := range cases {
		if got := MapForProvider(c.cat, c.provider); got != c.want {
			t.Errorf("MapForProvider(%q, %q) = %q, want %q", c.cat, c.provider, got, c.want)
		}
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("technology") || !IsValid("Sports") {
		t.Error("expected known categories to be valid")
	}
	if IsValid("general") {
		t.Error("general is a fallback, not a classifiable category")
	}
	if IsValid("opinion") {
		t.Error("unknown category reported valid")
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("technology"); got != "Technology" {
		t.Errorf("DisplayName = %q", got)
	}
	if got := DisplayName(""); got != "" {
		t.Errorf("DisplayName(\"\") = %q", got)
	}
}
