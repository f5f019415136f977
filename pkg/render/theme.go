package render

import (
	"fmt"
	"math"
	"strings"
)

// Theme is a named color gradient. Stops run from shadow to highlight and
// are spaced evenly over luminance [0, 1]. When Accent is set the surface
// cross-fades from Stops to Accent around the ring.
type Theme struct {
	Name   string
	Stops  []Color
	Accent []Color
}

// CrossFade reports whether the theme blends two palettes.
func (t Theme) CrossFade() bool {
	return len(t.Accent) > 0
}

// Validate checks that the theme can produce a gradient.
func (t Theme) Validate() error {
	if len(t.Stops) < 2 {
		return fmt.Errorf("%w: theme %q needs at least 2 stops, has %d", ErrInvalidConfig, t.Name, len(t.Stops))
	}
	if t.CrossFade() && len(t.Accent) != len(t.Stops) {
		return fmt.Errorf("%w: theme %q accent has %d stops, base has %d", ErrInvalidConfig, t.Name, len(t.Accent), len(t.Stops))
	}
	return nil
}

// Palette writes the stops to use at the given cross-fade blend into dst
// (reusing its storage) and returns it. Blend 0 is the base palette and 1 the
// accent; themes without an accent ignore blend.
func (t Theme) Palette(blend float64, dst []Color) []Color {
	dst = dst[:0]
	if !t.CrossFade() {
		return append(dst, t.Stops...)
	}
	for i, c := range t.Stops {
		dst = append(dst, lerpColor(c, t.Accent[i], blend))
	}
	return dst
}

// Gradient maps luminance onto evenly spaced stops. With three stops this is
// the classic shadow/mid/highlight ramp that switches segment at 0.5 and is
// continuous there.
func Gradient(stops []Color, lum float64) Color {
	switch len(stops) {
	case 0:
		return Color{}
	case 1:
		return stops[0]
	}
	lum = math.Max(0, math.Min(1, lum))
	segments := len(stops) - 1
	pos := lum * float64(segments)
	i := int(pos)
	if i >= segments {
		i = segments - 1
	}
	return lerpColor(stops[i], stops[i+1], pos-float64(i))
}

// DefaultTheme is the shadow/mid/highlight ramp used when no theme list is
// configured.
var DefaultTheme = Theme{
	Name:  "Midnight",
	Stops: []Color{RGB(30, 40, 80), RGB(180, 180, 200), RGB(220, 240, 255)},
}

// Catalogue returns every built-in theme. Each call returns fresh slices.
func Catalogue() []Theme {
	return []Theme{
		{
			Name:   "Plasma Pink",
			Stops:  []Color{RGB(210, 50, 180), RGB(255, 150, 200), RGB(180, 100, 250)},
			Accent: []Color{RGB(120, 200, 255), RGB(180, 240, 255), RGB(100, 200, 255)},
		},
		{
			Name:   "Metallic",
			Stops:  []Color{RGB(80, 80, 80), RGB(180, 180, 180), RGB(255, 255, 255)},
			Accent: []Color{RGB(220, 180, 50), RGB(255, 215, 0), RGB(255, 255, 255)},
		},
		{
			Name:   "Studio Render",
			Stops:  []Color{RGB(60, 60, 70), RGB(150, 150, 160), RGB(240, 240, 250)},
			Accent: []Color{RGB(30, 30, 40), RGB(180, 180, 200), RGB(255, 255, 255)},
		},
		{
			Name:   "Crystal",
			Stops:  []Color{RGB(220, 180, 50), RGB(80, 220, 120), RGB(180, 120, 220), RGB(200, 255, 240), RGB(100, 180, 255)},
			Accent: []Color{RGB(255, 215, 0), RGB(240, 180, 250), RGB(220, 255, 255), RGB(255, 255, 255), RGB(255, 250, 200)},
		},
		{
			Name:   "Solar Ember",
			Stops:  []Color{RGB(120, 30, 10), RGB(200, 100, 50), RGB(255, 200, 100)},
			Accent: []Color{RGB(180, 30, 30), RGB(255, 70, 70), RGB(255, 120, 80)},
		},
		{
			Name:   "Aqua Radiance",
			Stops:  []Color{RGB(20, 50, 80), RGB(50, 180, 200), RGB(180, 250, 255)},
			Accent: []Color{RGB(80, 120, 200), RGB(120, 200, 255), RGB(220, 255, 255)},
		},
		{
			Name:  "Pink Metal",
			Stops: []Color{RGB(210, 50, 180), RGB(180, 210, 220), RGB(155, 150, 100)},
		},
		{
			Name:  "Rendered",
			Stops: []Color{RGB(50, 60, 70), RGB(120, 150, 160), RGB(220, 230, 240)},
		},
		{
			Name:  "Normal",
			Stops: []Color{RGB(50, 50, 50), RGB(180, 180, 180), RGB(255, 255, 255)},
		},
		DefaultTheme,
	}
}

// ThemesByName picks themes from the catalogue, case-insensitively, in the
// order given.
func ThemesByName(names ...string) ([]Theme, error) {
	all := Catalogue()
	out := make([]Theme, 0, len(names))
	for _, name := range names {
		idx := ThemeIndex(all, name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, name)
		}
		out = append(out, all[idx])
	}
	return out, nil
}

// ThemeIndex returns the position of the named theme in themes, or -1.
func ThemeIndex(themes []Theme, name string) int {
	for i, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return i
		}
	}
	return -1
}
