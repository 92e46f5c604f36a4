package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmercier/orchestrator/internal/domain"
)

// Money renders a dollar amount with thousands separators. Whole
// amounts drop the cents ("$12,500"); fractional ones keep two
// ("$12,500.50").
func Money(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	whole := int64(v)
	frac := v - float64(whole)

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := "$" + b.String()
	if frac > 0.004 {
		out += fmt.Sprintf(".%02d", int(frac*100+0.5))
	}
	if neg {
		return "-" + out
	}
	return out
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// DisplayDate renders a stored YYYY-MM-DD date as "Jan 2, 2006".
// Malformed or empty dates render as a dimmed placeholder.
func DisplayDate(s string) string {
	t, err := domain.ParseDate(s)
	if err != nil {
		return StyleDim.Render("--")
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 2006")
	}
}

// Programs joins program names for display; empty means unassigned.
func Programs(programs []string) string {
	if len(programs) == 0 {
		return StyleDim.Render("--")
	}
	return strings.Join(programs, ", ")
}
