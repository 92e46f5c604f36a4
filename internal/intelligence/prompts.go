package intelligence

import (
	"fmt"
	"strings"

	"github.com/jmercier/orchestrator/internal/domain"
)

const suggestSystemPrompt = `You are a product planning assistant for an engineering roadmap tool.
You propose new features for a backlog based on a stated theme and the features that already exist.

Respond with ONLY a JSON array. Each element is an object with these fields:
  "name"          (string, required) short feature title
  "description"   (string) one or two sentences
  "priority"      (string) one of "Critical", "High", "Medium", "Low"
  "estimatedCost" (number) rough cost in dollars
  "points"        (number) story points, 1-13
  "owner"         (string) leave empty if unknown
  "programs"      (array of strings) program names
  "system"        (string) one of "TOM", "EOM", "C3"
  "jiraNumber"    (string) leave empty if unknown

Do not propose features that duplicate existing ones. Do not wrap the array in markdown fences. Do not add commentary.`

// buildSuggestPrompt renders the user prompt: the requested theme plus a
// compact listing of the existing backlog so the model avoids duplicates.
func buildSuggestPrompt(theme string, existing []*domain.Feature, activeSystem domain.System) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Theme: %s\n", theme)
	if activeSystem.Valid() {
		fmt.Fprintf(&b, "Target system: %s\n", activeSystem)
	}
	b.WriteString("\nExisting features:\n")
	if len(existing) == 0 {
		b.WriteString("(none)\n")
	}
	for _, f := range existing {
		fmt.Fprintf(&b, "- %s [%s, %s, %s]\n", f.Name, f.System, f.Priority, f.Status)
	}
	b.WriteString("\nPropose 3 to 5 new features as a JSON array.")
	return b.String()
}
