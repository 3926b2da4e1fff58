package theme

import "testing"

func TestGetKnownTheme(t *testing.T) {
	got := Get("nord")
	if got.Name != "nord" {
		t.Fatalf("Get(nord).Name = %q, want nord", got.Name)
	}
}

func TestGetUnknownThemeFallsBackToDefault(t *testing.T) {
	got := Get("not-a-theme")
	if got != Default {
		t.Fatalf("Get(unknown) = %+v, want Default %+v", got, Default)
	}
}

func TestAllThemesHaveNonEmptyColours(t *testing.T) {
	for name, th := range All {
		if th.Name != name {
			t.Fatalf("theme registered under %q has Name %q", name, th.Name)
		}
		for _, c := range []string{th.Bg, th.BgAlt, th.Primary, th.Secondary, th.Error, th.Dim, th.Text, th.TextMuted, th.Progress, th.GraphLine} {
			if c == "" {
				t.Fatalf("theme %q has an empty colour field", name)
			}
		}
	}
}
