package audit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmercier/orchestrator/internal/domain"
)

// NoChanges is the sentinel a differ returns when two snapshots are
// equivalent. Callers use it to suppress log creation: no entry is
// written for a save that changed nothing.
const NoChanges = "No identifiable changes"

// DiffFeature describes what changed between two feature snapshots,
// field by field, skipping identity and storage timestamps. A change
// anywhere in the allocation list collapses to a single generic
// fragment rather than itemizing per sprint.
func DiffFeature(old, updated *domain.Feature) string {
	var changes []string
	appendChange(&changes, "name", old.Name, updated.Name)
	appendChange(&changes, "description", old.Description, updated.Description)
	appendChange(&changes, "priority", string(old.Priority), string(updated.Priority))
	appendChange(&changes, "status", string(old.Status), string(updated.Status))
	appendChange(&changes, "startDate", old.StartDate, updated.StartDate)
	appendChange(&changes, "endDate", old.EndDate, updated.EndDate)
	appendChange(&changes, "estimatedCost", formatFloat(old.EstimatedCost), formatFloat(updated.EstimatedCost))
	appendChange(&changes, "points", strconv.Itoa(old.Points), strconv.Itoa(updated.Points))
	appendChange(&changes, "owner", old.Owner, updated.Owner)
	appendChange(&changes, "programs", strings.Join(old.Programs, ","), strings.Join(updated.Programs, ","))
	appendChange(&changes, "system", string(old.System), string(updated.System))
	appendChange(&changes, "jiraNumber", old.JiraNumber, updated.JiraNumber)

	if !allocationsEqual(old.Allocations, updated.Allocations) {
		changes = append(changes, "Updated sprint allocations")
	}

	return join(changes)
}

// DiffSprint describes what changed between two sprint snapshots.
func DiffSprint(old, updated *domain.Sprint) string {
	var changes []string
	appendChange(&changes, "name", old.Name, updated.Name)
	appendChange(&changes, "startDate", old.StartDate, updated.StartDate)
	appendChange(&changes, "endDate", old.EndDate, updated.EndDate)
	appendChange(&changes, "targetDeploymentDate", old.TargetDeploymentDate, updated.TargetDeploymentDate)
	appendChange(&changes, "capacity", strconv.Itoa(old.Capacity), strconv.Itoa(updated.Capacity))
	appendChange(&changes, "isClosed", strconv.FormatBool(old.IsClosed), strconv.FormatBool(updated.IsClosed))
	appendChange(&changes, "system", string(old.System), string(updated.System))
	return join(changes)
}

func appendChange(changes *[]string, field, oldVal, newVal string) {
	if oldVal != newVal {
		*changes = append(*changes, fmt.Sprintf("Changed %s from %q to %q", field, oldVal, newVal))
	}
}

func allocationsEqual(a, b []domain.SprintAllocation) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func join(changes []string) string {
	if len(changes) == 0 {
		return NoChanges
	}
	return strings.Join(changes, "; ")
}
