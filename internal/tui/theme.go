package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name   string
	Face   lipgloss.Style
	Fill   lipgloss.Color
	Empty  lipgloss.Color
	Header lipgloss.Style
	Alert  lipgloss.Style
	Status lipgloss.Style
	Dim    lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:   "Default",
		Face:   lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")),
		Fill:   lipgloss.Color("10"),
		Empty:  lipgloss.Color("11"),
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Alert:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Blink(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dark": {
		Name:   "Dark",
		Face:   lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
		Fill:   lipgloss.Color("35"),
		Empty:  lipgloss.Color("238"),
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Alert:  lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true).Blink(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// themeOrder is the cycling order of the theme key.
var themeOrder = []string{"default", "dark"}

// themeName returns name if it is a known theme, else "default".
func themeName(name string) string {
	if _, ok := Themes[name]; ok {
		return name
	}
	return "default"
}

func nextTheme(name string) string {
	for i, n := range themeOrder {
		if n == name {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}
