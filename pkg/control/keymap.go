package control

import (
	"errors"
	"fmt"
	"strings"

	"github.com/taigrr/donut/pkg/render"
)

// Binding maps one input symbol to an action.
type Binding struct {
	Symbol string
	Action Action
}

// Keymap is an ordered binding table. Earlier bindings win when a key
// matches more than one symbol.
type Keymap []Binding

var defaultBindings = Keymap{
	{"space", ActionFreeze},
	{"f", ActionFreeze},
	{"x", ActionAxisX},
	{"y", ActionAxisY},
	{"z", ActionAxisZ},
	{"e", ActionResetAngles},
	{"r", ActionReset},
	{"o", ActionTransparency},
	{"c", ActionZoomCycle},
	{"+", ActionZoomIn},
	{"=", ActionZoomIn},
	{"-", ActionZoomOut},
	{"t", ActionThemeNext},
	{"h", ActionHue},
	{"up", ActionSpeedUp},
	{"down", ActionSpeedDown},
	{"d", ActionDetailUp},
	{"D", ActionDetailDown},
	{"l", ActionLightNext},
	{"a", ActionASCII},
	{"1", ActionPlaneX},
	{"2", ActionPlaneY},
	{"3", ActionPlaneZ},
	{"4", ActionPlaneXY},
	{"5", ActionPlaneXZ},
	{"6", ActionPlaneYZ},
	{"?", ActionHUD},
	{"shift+/", ActionHUD},
	{"q", ActionQuit},
	{"esc", ActionQuit},
	{"ctrl+c", ActionQuit},
}

// DefaultKeymap returns the standard bindings for every action cfg
// supports.
func DefaultKeymap(cfg render.Config) Keymap {
	out := make(Keymap, 0, len(defaultBindings))
	for _, b := range defaultBindings {
		if ok, _ := Supported(cfg, b.Action); ok {
			out = append(out, b)
		}
	}
	return out
}

// ParseBinding parses "symbol=action".
func ParseBinding(s string) (Binding, error) {
	sym, act, ok := strings.Cut(s, "=")
	// "==zoom-in" binds the "=" key.
	if ok && sym == "" && strings.HasPrefix(act, "=") {
		sym, act = "=", act[1:]
	}
	sym, act = strings.TrimSpace(sym), strings.TrimSpace(act)
	if !ok || sym == "" || act == "" {
		return Binding{}, fmt.Errorf("binding %q: want symbol=action", s)
	}
	if _, known := actions[Action(act)]; !known {
		return Binding{}, fmt.Errorf("binding %q: %w %q", s, ErrUnknownAction, act)
	}
	return Binding{Symbol: sym, Action: Action(act)}, nil
}

// With returns a copy of m where each override replaces any existing
// binding for its symbol. New symbols are appended.
func (m Keymap) With(overrides ...Binding) Keymap {
	out := append(Keymap(nil), m...)
	for _, o := range overrides {
		replaced := false
		for i := range out {
			if out[i].Symbol == o.Symbol {
				out[i].Action = o.Action
				replaced = true
			}
		}
		if !replaced {
			out = append(out, o)
		}
	}
	return out
}

// Validate checks every binding against the actions cfg supports and
// rejects duplicate symbols.
func (m Keymap) Validate(cfg render.Config) error {
	var errs []error
	seen := make(map[string]bool, len(m))
	for _, b := range m {
		if seen[b.Symbol] {
			errs = append(errs, fmt.Errorf("symbol %q bound twice", b.Symbol))
		}
		seen[b.Symbol] = true
		ok, err := Supported(cfg, b.Action)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%q: %w %q", b.Symbol, err, b.Action))
		case !ok:
			errs = append(errs, fmt.Errorf("%q: %w %q", b.Symbol, ErrUnsupportedAction, b.Action))
		}
	}
	return errors.Join(errs...)
}

// Symbols returns the symbols bound to a.
func (m Keymap) Symbols(a Action) []string {
	var out []string
	for _, b := range m {
		if b.Action == a {
			out = append(out, b.Symbol)
		}
	}
	return out
}
