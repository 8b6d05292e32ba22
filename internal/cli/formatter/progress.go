package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderHourBar renders a horizontal bar scaled against maxHours,
// used for the per-day columns of the weekly view.
func RenderHourBar(hours, maxHours float64, width int) string {
	if width < 1 {
		width = 1
	}
	if maxHours <= 0 || hours <= 0 {
		return StyleDim.Render(strings.Repeat("·", width))
	}
	filled := int(hours / maxHours * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 1 {
		filled = 1
	}
	return StyleBlue.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat("·", width-filled))
}
