package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmercier/orchestrator/internal/domain"
	"github.com/jmercier/orchestrator/internal/testutil"
)

func TestFormatFeatureList(t *testing.T) {
	features := []*domain.Feature{
		testutil.NewTestFeature("Checkout revamp", testutil.WithPriority(domain.PriorityCritical), testutil.WithCost(12500)),
		testutil.NewTestFeature("Saved filters", testutil.WithStatus(domain.StatusInProgress)),
	}
	out := FormatFeatureList(features)
	assert.Contains(t, out, "Checkout revamp")
	assert.Contains(t, out, "Critical")
	assert.Contains(t, out, "$12,500")
	assert.Contains(t, out, "In Progress")
}

func TestFormatFeatureInspectResolvesAllocations(t *testing.T) {
	sprint := testutil.NewTestSprint("Sprint 7")
	f := testutil.NewTestFeature("Checkout revamp",
		testutil.WithAllocation(sprint.ID, 5),
		testutil.WithAllocation("gone", 2))

	out := FormatFeatureInspect(f, []*domain.Sprint{sprint})
	assert.Contains(t, out, "Sprint 7")
	assert.Contains(t, out, "5 pts")
	assert.Contains(t, out, "missing sprint")
}

func TestFormatSprintListShowsLoad(t *testing.T) {
	sprint := testutil.NewTestSprint("Sprint 7", testutil.WithCapacity(10))
	f := testutil.NewTestFeature("Work", testutil.WithAllocation(sprint.ID, 5))

	out := FormatSprintList([]*domain.Sprint{sprint}, []*domain.Feature{f})
	assert.Contains(t, out, "Sprint 7")
	assert.Contains(t, out, "5/10")
	assert.Contains(t, out, "50%")
}

func TestFormatLogList(t *testing.T) {
	entries := []*domain.LogEntry{
		testutil.NewTestLogEntry(domain.KindFeature, "Checkout", "Added Feature", testutil.WithLogDetails("New feature created.")),
	}
	out := FormatLogList(entries)
	assert.Contains(t, out, "Checkout")
	assert.Contains(t, out, "Added Feature")
	assert.Contains(t, out, "New feature created.")
}
