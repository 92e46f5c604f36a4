package audit

import (
	"sort"
	"strings"

	"github.com/jmercier/orchestrator/internal/domain"
)

// FilterLogs narrows a log listing by entity kind and a free-text
// query over entity name, action and details, newest first. An empty
// kind matches every entry; an empty query matches everything.
func FilterLogs(logs []*domain.LogEntry, query string, kind domain.EntityKind) []*domain.LogEntry {
	q := strings.ToLower(query)
	out := make([]*domain.LogEntry, 0, len(logs))
	for _, entry := range logs {
		if kind != "" && entry.Kind != kind {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(entry.EntityName), q) &&
			!strings.Contains(strings.ToLower(entry.Action), q) &&
			!strings.Contains(strings.ToLower(entry.Details), q) {
			continue
		}
		out = append(out, entry)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
