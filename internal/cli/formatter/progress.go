package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a usage bar like [████░░░░] 45%. Coloring
// reads as load, not health: green while there is headroom, yellow
// past 70%, red past 90%.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	display := pct
	if display > 1 {
		display = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(display * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct > 0.9 {
		style = StyleRed
	} else if pct > 0.7 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}
