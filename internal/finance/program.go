package finance

import (
	"math"
	"sort"

	"github.com/jmercier/orchestrator/internal/domain"
)

// UnassignedProgram is the bucket for features carrying no program.
const UnassignedProgram = "Unassigned"

// ProgramCost is one program's share of the portfolio cost.
type ProgramCost struct {
	Name string
	Cost float64
}

// ProgramFinancials apportions each feature's estimated cost evenly
// across its programs (cost is split, never duplicated) and returns
// programs sorted by cost, biggest first. Features with no program
// land in the Unassigned bucket. Ties order alphabetically so output
// is deterministic.
func ProgramFinancials(features []*domain.Feature) []ProgramCost {
	byProgram := make(map[string]float64)
	for _, f := range features {
		programs := f.Programs
		if len(programs) == 0 {
			programs = []string{UnassignedProgram}
		}
		share := f.EstimatedCost / float64(len(programs))
		for _, p := range programs {
			byProgram[p] += share
		}
	}

	out := make([]ProgramCost, 0, len(byProgram))
	for name, cost := range byProgram {
		out = append(out, ProgramCost{Name: name, Cost: cost})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost > out[j].Cost
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ProgramReadiness is the rounded percentage of features in the
// Completed status. Empty input reads as zero.
func ProgramReadiness(features []*domain.Feature) int {
	if len(features) == 0 {
		return 0
	}
	completed := 0
	for _, f := range features {
		if f.Status == domain.StatusCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(features)) * 100))
}
