package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmercier/orchestrator/internal/finance"
)

// FormatMonthly renders the monthly payment schedule with cumulative
// totals.
func FormatMonthly(points []finance.MonthlyPoint) string {
	if len(points) == 0 {
		return Dim("No completed months to report.")
	}

	headers := []string{"Month", "Payment", "Cumulative"}
	aligns := []Align{AlignLeft, AlignRight, AlignRight}
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{p.Month, Money(p.Payment), Money(p.Cumulative)})
	}
	return RenderTableAligned(headers, rows, aligns)
}

// FormatComparison renders run-rate spend against delivered value per
// month. The diff column is colored by burn direction: red when spend
// outran delivery, green when under.
func FormatComparison(points []finance.ComparisonPoint) string {
	if len(points) == 0 {
		return Dim("No financial data to compare.")
	}

	headers := []string{"Month", "Budget", "Run Rate", "Diff"}
	aligns := []Align{AlignLeft, AlignRight, AlignRight, AlignRight}
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		diff := Money(p.Diff)
		switch {
		case p.Diff > 0:
			diff = StyleRed.Render(diff)
		case p.Diff < 0:
			diff = StyleGreen.Render(diff)
		default:
			diff = StyleDim.Render(diff)
		}
		rows = append(rows, []string{p.Month, Money(p.Budget), Money(p.RunRate), diff})
	}
	return RenderTableAligned(headers, rows, aligns)
}

// FormatPrograms renders per-program cost shares plus the overall
// readiness percentage.
func FormatPrograms(costs []finance.ProgramCost, readiness int) string {
	var b strings.Builder
	if len(costs) == 0 {
		b.WriteString(Dim("No program costs to report."))
	} else {
		headers := []string{"Program", "Cost"}
		aligns := []Align{AlignLeft, AlignRight}
		rows := make([][]string, 0, len(costs))
		for _, c := range costs {
			rows = append(rows, []string{c.Name, Money(c.Cost)})
		}
		b.WriteString(RenderTableAligned(headers, rows, aligns))
	}
	fmt.Fprintf(&b, "\n%s %s\n", Bold("Readiness:"), RenderProgress(float64(readiness)/100, 20))
	return b.String()
}

// FormatStats renders the portfolio headline numbers.
func FormatStats(s finance.FeatureStats) string {
	var b strings.Builder
	b.WriteString(Header("Portfolio Stats"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %d   %s %s\n", Bold("Total points:"), s.TotalPoints, Bold("Avg points:"), trimFloat(s.AvgPoints))
	fmt.Fprintf(&b, "%s %s   %s %s   %s %d\n",
		Bold("Critical:"), StyleRed.Render(strconv.Itoa(s.CriticalCount)),
		Bold("High:"), StyleYellow.Render(strconv.Itoa(s.HighCount)),
		Bold("In progress:"), s.InProgressCount)
	return b.String()
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
