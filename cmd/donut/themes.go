package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"
	"github.com/taigrr/donut/pkg/control"
	"github.com/taigrr/donut/pkg/render"
)

var (
	listName   = lipgloss.NewStyle().Bold(true).Width(16)
	listActive = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd75f"))
	listDim    = lipgloss.NewStyle().Faint(true)
)

func newThemesCmd(o *Overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the theme catalogue with color swatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.Config()
			if err != nil {
				return err
			}
			w := colorprofile.NewWriter(os.Stdout, os.Environ())
			return writeThemes(w, render.Catalogue(), cfg)
		},
	}
}

// writeThemes prints one line per theme. Themes in cfg's rotation are
// marked, the initial one with an arrow.
func writeThemes(w io.Writer, themes []render.Theme, cfg render.Config) error {
	for _, t := range themes {
		mark := "  "
		switch i := render.ThemeIndex(cfg.Themes, t.Name); {
		case i == cfg.Theme:
			mark = listActive.Render("→ ")
		case i >= 0:
			mark = listActive.Render("• ")
		}
		line := mark + listName.Render(t.Name) + swatch(t.Stops)
		if t.CrossFade() {
			line += listDim.Render(" ⇄ ") + swatch(t.Accent)
		}
		line += " " + listDim.Render(hexStops(t.Stops))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func swatch(stops []render.Color) string {
	var b strings.Builder
	for _, c := range stops {
		b.WriteString(lipgloss.NewStyle().Background(c).Render("  "))
	}
	return b.String()
}

func hexStops(stops []render.Color) string {
	out := make([]string, len(stops))
	for i, c := range stops {
		out[i] = render.Hex(c)
	}
	return strings.Join(out, " ")
}

func newKeysCmd(o *Overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the key bindings for the selected preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.Config()
			if err != nil {
				return err
			}
			km, err := o.Keymap(cfg)
			if err != nil {
				return err
			}
			w := colorprofile.NewWriter(os.Stdout, os.Environ())
			return writeKeys(w, km, cfg)
		},
	}
}

// writeKeys prints every action with its bound symbols. Actions cfg does
// not support are dimmed.
func writeKeys(w io.Writer, km control.Keymap, cfg render.Config) error {
	for _, a := range control.Actions() {
		syms := strings.Join(km.Symbols(a), " ")
		if syms == "" {
			syms = "-"
		}
		line := listName.Render(string(a)) + fmt.Sprintf("%-16s %s", syms, control.Describe(a))
		if ok, _ := control.Supported(cfg, a); !ok {
			line = listDim.Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
