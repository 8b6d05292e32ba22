package formatter

import (
	"fmt"
	"strings"

	"github.com/avictorov/studydesk/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PaceIndicator returns a colored pace indicator string such as "● BEHIND".
func PaceIndicator(pace domain.PaceStatus) string {
	switch pace {
	case domain.PaceBehind:
		return StyleRed.Render("● BEHIND")
	case domain.PaceDone:
		return StyleGreen.Render("✔ DONE")
	case domain.PaceOnTrack:
		return StyleGreen.Render("● ON TRACK")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// MoodPill returns a colored mood indicator.
func MoodPill(mood domain.Mood) string {
	switch mood {
	case domain.MoodGreat:
		return StyleGreen.Render("● great")
	case domain.MoodGood:
		return StyleGreen.Render("○ good")
	case domain.MoodOkay:
		return StyleYellow.Render("○ okay")
	case domain.MoodTired:
		return StyleYellow.Render("● tired")
	case domain.MoodStressed:
		return StyleRed.Render("● stressed")
	default:
		return StyleDim.Render(string(mood))
	}
}

// DifficultyBadge returns a colored difficulty label.
func DifficultyBadge(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyHigh:
		return StyleRed.Render("high")
	case domain.DifficultyMedium:
		return StyleYellow.Render("medium")
	case domain.DifficultyLow:
		return StyleGreen.Render("low")
	default:
		return StyleDim.Render(string(d))
	}
}

// IntensityBadge returns a colored intensity label.
func IntensityBadge(i domain.Intensity) string {
	switch i {
	case domain.IntensityIntense:
		return StyleRed.Render("intense")
	case domain.IntensityModerate:
		return StyleYellow.Render("moderate")
	case domain.IntensityLight:
		return StyleGreen.Render("light")
	default:
		return StyleDim.Render(string(i))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
