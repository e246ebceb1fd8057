package tui

import (
	"github.com/charmbracelet/huh"
)

// PlainTheme is selected when colored output is disabled.
const PlainTheme = "plain"

// promptThemes lists the names accepted by the theme setting, in the order
// they are shown to users.
var promptThemes = []struct {
	name  string
	build func() *huh.Theme
}{
	{"tagfind", tagfindTheme},
	{PlainTheme, huh.ThemeBase},
	{"charm", huh.ThemeCharm},
	{"dracula", huh.ThemeDracula},
	{"catppuccin", huh.ThemeCatppuccin},
	{"base16", huh.ThemeBase16},
}

// ThemeNames returns the accepted theme names.
func ThemeNames() []string {
	names := make([]string, len(promptThemes))
	for i, th := range promptThemes {
		names[i] = th.name
	}
	return names
}

// IsValidTheme reports whether name selects a prompt theme.
func IsValidTheme(name string) bool {
	return GetTheme(name) != nil
}

// GetTheme builds the named theme, or returns nil for an unknown name.
func GetTheme(name string) *huh.Theme {
	for _, th := range promptThemes {
		if th.name == name {
			return th.build()
		}
	}
	return nil
}
