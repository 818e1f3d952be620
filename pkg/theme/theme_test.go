package theme

import "testing"

func TestParseFallsBackToDay(t *testing.T) {
	cases := map[string]Name{
		"night":   Night,
		" Night ": Night,
		"day":     Day,
		"":        Day,
		"dusk":    Day,
	}
	for in, want := range cases {
		if got := Parse(in); got != want {
			t.Fatalf("Parse(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestPalettesSwapVariables(t *testing.T) {
	day := For(Day).Vars()
	night := For(Night).Vars()
	if day[VarDark] != "10, 10, 20" || day[VarLight] != "255, 255, 255" {
		t.Fatalf("unexpected day vars %v", day)
	}
	if night[VarDark] != day[VarLight] || night[VarLight] != day[VarDark] {
		t.Fatalf("night should swap day vars: %v vs %v", night, day)
	}
}

func TestPreferredFollowsDetector(t *testing.T) {
	if Preferred(func() bool { return true }) != Night {
		t.Fatalf("dark environment should prefer night")
	}
	if Preferred(func() bool { return false }) != Day {
		t.Fatalf("light environment should prefer day")
	}
	if Preferred(nil) != Day {
		t.Fatalf("missing detector should prefer day")
	}
}

func TestResolveHonoursExplicitChoice(t *testing.T) {
	dark := func() bool { return true }
	if Resolve("day", dark) != Day {
		t.Fatalf("explicit day ignored")
	}
	if Resolve("system", dark) != Night {
		t.Fatalf("system should follow detector")
	}
}

func TestRGBRoundTrip(t *testing.T) {
	c, err := ParseRGB("10, 10, 20")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != (RGB{10, 10, 20}) {
		t.Fatalf("unexpected %v", c)
	}
	if c.Hex() != "#0a0a14" {
		t.Fatalf("unexpected hex %s", c.Hex())
	}
	if _, err := ParseRGB("1, 2"); err == nil {
		t.Fatalf("expected error for short triple")
	}
}
