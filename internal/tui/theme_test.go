package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTagfindTheme(t *testing.T) {
	theme := tagfindTheme()

	if theme == nil {
		t.Fatal("tagfindTheme() returned nil")
	}

	t.Run("Focused styles are configured", func(t *testing.T) {
		if !theme.Focused.Title.GetBold() {
			t.Error("Focused.Title should be bold")
		}
		if theme.Focused.Base.GetBorderStyle() != lipgloss.RoundedBorder() {
			t.Error("Focused.Base should have rounded border")
		}
		if !theme.Focused.FocusedButton.GetBold() {
			t.Error("Focused.FocusedButton should be bold")
		}
		_, right, _, left := theme.Focused.FocusedButton.GetPadding()
		if left != 1 || right != 1 {
			t.Errorf("Focused.FocusedButton should have horizontal padding of 1, got left=%d right=%d", left, right)
		}
	})

	t.Run("Blurred title is not bold", func(t *testing.T) {
		if theme.Blurred.Title.GetBold() {
			t.Error("Blurred.Title should not be bold")
		}
	})

	t.Run("buttons share padding", func(t *testing.T) {
		_, fRight, _, fLeft := theme.Focused.FocusedButton.GetPadding()
		_, bRight, _, bLeft := theme.Focused.BlurredButton.GetPadding()
		if fLeft != bLeft || fRight != bRight {
			t.Error("FocusedButton and BlurredButton should have consistent padding")
		}
	})
}

func TestTagfindThemeColors(t *testing.T) {
	testCases := []struct {
		name  string
		color lipgloss.AdaptiveColor
	}{
		{"amberPrimary", amberPrimary},
		{"amberBright", amberBright},
		{"textStrong", textStrong},
		{"textNormal", textNormal},
		{"textMuted", textMuted},
		{"borderFocused", borderFocused},
		{"borderNormal", borderNormal},
		{"buttonBg", buttonBg},
		{"buttonBgBlurred", buttonBgBlurred},
		{"buttonText", buttonText},
		{"buttonTextBlurred", buttonTextBlurred},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !isValidHexColor(tc.color.Light) {
				t.Errorf("%s light color %q is not a valid hex color", tc.name, tc.color.Light)
			}
			if !isValidHexColor(tc.color.Dark) {
				t.Errorf("%s dark color %q is not a valid hex color", tc.name, tc.color.Dark)
			}
		})
	}
}

// isValidHexColor checks if a string is a valid hex color (e.g., "#f59e0b")
func isValidHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
