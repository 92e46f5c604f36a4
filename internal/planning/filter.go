package planning

import (
	"sort"
	"strings"

	"github.com/jmercier/orchestrator/internal/domain"
)

// FeatureFilter narrows a feature collection for display. Zero-valued
// fields match everything; System accepts SystemGlobal as the explicit
// "all systems" scope.
type FeatureFilter struct {
	System   domain.System
	Status   domain.Status
	Priority domain.Priority
	Query    string
}

// FilterFeatures returns the features matching every set criterion.
// The text query is a case-insensitive substring match across name,
// description, owner, jira number and program names.
func FilterFeatures(features []*domain.Feature, filter FeatureFilter) []*domain.Feature {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]*domain.Feature, 0, len(features))
	for _, f := range features {
		if filter.System.Valid() && f.System != filter.System {
			continue
		}
		if filter.Status != "" && f.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && f.Priority != filter.Priority {
			continue
		}
		if query != "" && !matchesQuery(f, query) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func matchesQuery(f *domain.Feature, query string) bool {
	fields := []string{f.Name, f.Description, f.Owner, f.JiraNumber}
	fields = append(fields, f.Programs...)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// SortByPriority returns a copy of features ordered most urgent first.
// The sort is stable so relative order within a priority band survives.
func SortByPriority(features []*domain.Feature) []*domain.Feature {
	out := append([]*domain.Feature(nil), features...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Score() < out[j].Priority.Score()
	})
	return out
}
