package render

import (
	"testing"
)

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestLerpColor(t *testing.T) {
	a, b := RGB(30, 40, 80), RGB(180, 180, 200)
	tests := []struct {
		name string
		t    float64
		want Color
	}{
		{"start", 0, a},
		{"end", 1, b},
		{"half truncates", 0.5, RGB(105, 110, 140)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lerpColor(a, b, tt.t); got != tt.want {
				t.Errorf("lerpColor(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
	if got := lerpColor(RGB(200, 0, 0), RGB(0, 0, 0), 0.25); got.R != 150 {
		t.Errorf("descending lerp R = %d, want 150", got.R)
	}
}

func TestMultiplyColorClamps(t *testing.T) {
	if got := MultiplyColor(RGB(200, 100, 10), 1.5); got != RGB(255, 150, 15) {
		t.Errorf("got %v", got)
	}
	if got := MultiplyColor(RGB(30, 40, 80), 0.5); got != RGB(15, 20, 40) {
		t.Errorf("got %v", got)
	}
}

func TestGradientStitch(t *testing.T) {
	stops := DefaultTheme.Stops
	below := Gradient(stops, 0.5-1e-9)
	at := Gradient(stops, 0.5)
	for ch, pair := range [][2]uint8{{below.R, at.R}, {below.G, at.G}, {below.B, at.B}} {
		if d := absInt(int(pair[0]) - int(pair[1])); d > 1 {
			t.Errorf("channel %d jumps by %d at the stitch", ch, d)
		}
	}
	if at != stops[1] {
		t.Errorf("Gradient(0.5) = %v, want mid stop %v", at, stops[1])
	}
}

func TestGradientMonotonic(t *testing.T) {
	// The default stops rise on every channel, so the ramp must too.
	stops := DefaultTheme.Stops
	prev := Gradient(stops, 0)
	for i := 1; i <= 1000; i++ {
		c := Gradient(stops, float64(i)/1000)
		if c.R < prev.R || c.G < prev.G || c.B < prev.B {
			t.Fatalf("not monotonic at %v: %v after %v", float64(i)/1000, c, prev)
		}
		prev = c
	}
}

func TestGradientEndpoints(t *testing.T) {
	tests := []struct {
		name  string
		stops []Color
	}{
		{"three stops", DefaultTheme.Stops},
		{"five stops", Catalogue()[3].Stops},
		{"two stops", []Color{RGB(0, 0, 0), RGB(255, 255, 255)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Gradient(tt.stops, 0); got != tt.stops[0] {
				t.Errorf("Gradient(0) = %v, want %v", got, tt.stops[0])
			}
			last := tt.stops[len(tt.stops)-1]
			if got := Gradient(tt.stops, 1); got != last {
				t.Errorf("Gradient(1) = %v, want %v", got, last)
			}
			if got := Gradient(tt.stops, 7); got != last {
				t.Errorf("Gradient clamps high: got %v", got)
			}
		})
	}
}

func TestGradientFiveStopSegments(t *testing.T) {
	stops := Catalogue()[3].Stops
	for i, want := range stops {
		lum := float64(i) / float64(len(stops)-1)
		if got := Gradient(stops, lum); got != want {
			t.Errorf("stop %d at %v: got %v, want %v", i, lum, got, want)
		}
	}
}

func TestThemePalette(t *testing.T) {
	theme := Catalogue()[0]
	if got := theme.Palette(0, nil); got[0] != theme.Stops[0] {
		t.Errorf("blend 0 = %v, want base", got[0])
	}
	if got := theme.Palette(1, nil); got[2] != theme.Accent[2] {
		t.Errorf("blend 1 = %v, want accent", got[2])
	}
	plain := DefaultTheme.Palette(0.7, nil)
	if plain[1] != DefaultTheme.Stops[1] {
		t.Errorf("single-palette theme should ignore blend")
	}
}

func TestCatalogueValid(t *testing.T) {
	seen := map[string]bool{}
	for _, theme := range Catalogue() {
		if err := theme.Validate(); err != nil {
			t.Errorf("%s: %v", theme.Name, err)
		}
		if seen[theme.Name] {
			t.Errorf("duplicate theme name %q", theme.Name)
		}
		seen[theme.Name] = true
	}
}

func TestThemesByName(t *testing.T) {
	themes, err := ThemesByName("metallic", "Crystal")
	if err != nil {
		t.Fatalf("ThemesByName: %v", err)
	}
	if themes[0].Name != "Metallic" || len(themes[1].Stops) != 5 {
		t.Errorf("got %v", themes)
	}
	if _, err := ThemesByName("Nope"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestRotateHue(t *testing.T) {
	red := RGB(255, 0, 0)
	tests := []struct {
		name  string
		phase float64
		want  Color
	}{
		{"zero phase", 0, red},
		{"third turn", 1.0 / 3, RGB(0, 255, 0)},
		{"two thirds", 2.0 / 3, RGB(0, 0, 255)},
		{"full turn wraps", 1, red},
		{"negative phase", -1.0 / 3, RGB(0, 0, 255)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateHue(red, tt.phase)
			for ch, d := range []int{int(got.R) - int(tt.want.R), int(got.G) - int(tt.want.G), int(got.B) - int(tt.want.B)} {
				if absInt(d) > 1 {
					t.Errorf("channel %d: got %v, want %v", ch, got, tt.want)
				}
			}
		})
	}
	gray := RGBA(128, 128, 128, 100)
	if got := RotateHue(gray, 0.4); got != gray {
		t.Errorf("gray should be unchanged, got %v", got)
	}
}

func TestBlendOver(t *testing.T) {
	bg := RGB(0, 0, 0)
	if got := blendOver(RGB(200, 100, 50), bg); got != RGB(200, 100, 50) {
		t.Errorf("opaque: got %v", got)
	}
	got := blendOver(RGBA(255, 255, 255, 0), RGB(10, 20, 30))
	if got != RGB(10, 20, 30) {
		t.Errorf("fully transparent: got %v", got)
	}
}
