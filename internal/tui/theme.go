package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// currentTheme holds the configured theme for prompts.
// When nil, currentThemeOrDefault() returns tagfindTheme.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name.
// Empty or unknown names select the tagfind theme.
func SetTheme(name string) {
	currentTheme = GetTheme(name)
}

func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return tagfindTheme()
	}
	return currentTheme
}

func resetTheme() {
	currentTheme = nil
}

// Palette. Amber accents over neutral greys.
var (
	amberPrimary = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#f59e0b"}
	amberBright  = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"}

	textStrong = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#f9fafb"}
	textNormal = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#d1d5db"}
	textMuted  = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}

	borderFocused = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#f59e0b"}
	borderNormal  = lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#4b5563"}

	buttonBg          = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#f59e0b"}
	buttonBgBlurred   = lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#374151"}
	buttonText        = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#111827"}
	buttonTextBlurred = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#d1d5db"}
)

// tagfindTheme builds the default prompt theme on top of huh's base theme.
func tagfindTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderFocused)
	t.Focused.Title = t.Focused.Title.Foreground(amberPrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(textMuted)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(amberBright)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(amberBright)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(amberBright)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(amberBright)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(textNormal)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(amberBright)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(amberPrimary)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(textStrong)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(buttonText).
		Background(buttonBg)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(buttonTextBlurred).
		Background(buttonBgBlurred)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderForeground(borderNormal)
	t.Blurred.Title = t.Blurred.Title.Foreground(textMuted).Bold(false)

	t.Help.ShortKey = t.Help.ShortKey.Foreground(amberPrimary)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(textMuted)
	t.Help.ShortSeparator = t.Help.ShortSeparator.Foreground(borderNormal)
	t.Help.FullKey = t.Help.FullKey.Foreground(amberPrimary)
	t.Help.FullDesc = t.Help.FullDesc.Foreground(textMuted)
	t.Help.FullSeparator = t.Help.FullSeparator.Foreground(borderNormal)

	return t
}
