package domain

import (
	"time"

	"github.com/google/uuid"
)

// FeatureSuggestion is a partial feature record produced by an external
// suggestion source. Pointer fields distinguish "absent" from zero values;
// absent fields are filled with the documented defaults on admission.
type FeatureSuggestion struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Priority      string   `json:"priority"`
	EstimatedCost *float64 `json:"estimatedCost"`
	Points        *int     `json:"points"`
	Owner         string   `json:"owner"`
	Programs      []string `json:"programs"`
	System        string   `json:"system"`
	JiraNumber    string   `json:"jiraNumber"`
}

// Admission defaults for suggestion ingestion. Every partial external
// record passes through NewFeatureFromSuggestion so the defaults live in
// exactly one place.
const (
	DefaultSuggestionCost   = 5000.0
	DefaultSuggestionPoints = 5
	DefaultSuggestionOwner  = "Unassigned"
	DefaultSuggestionJira   = "TBD"
)

// DefaultSuggestionPrograms is the program bucket for suggestions that
// arrive without one.
var DefaultSuggestionPrograms = []string{"New Program"}

// NewFeatureFromSuggestion admits a partial suggestion into the feature
// collection: fresh identity, empty allocation list, documented defaults
// for anything the source left out. activeSystem supplies the system tag
// when the suggestion carries none or an unknown one; pass SystemGlobal
// (or any invalid tag) to fall back to TOM.
func NewFeatureFromSuggestion(s FeatureSuggestion, activeSystem System, now time.Time) *Feature {
	f := &Feature{
		ID:            uuid.New().String(),
		Name:          s.Name,
		Description:   s.Description,
		Priority:      PriorityMedium,
		Status:        StatusBacklog,
		EstimatedCost: DefaultSuggestionCost,
		Points:        DefaultSuggestionPoints,
		Owner:         DefaultSuggestionOwner,
		Programs:      append([]string(nil), DefaultSuggestionPrograms...),
		System:        SystemTOM,
		JiraNumber:    DefaultSuggestionJira,
		Allocations:   []SprintAllocation{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if p := Priority(s.Priority); p.Valid() {
		f.Priority = p
	}
	if s.EstimatedCost != nil {
		f.EstimatedCost = *s.EstimatedCost
	}
	if s.Points != nil {
		f.Points = *s.Points
	}
	if s.Owner != "" {
		f.Owner = s.Owner
	}
	if len(s.Programs) > 0 {
		f.Programs = append([]string(nil), s.Programs...)
	}
	if sys := System(s.System); sys.Valid() {
		f.System = sys
	} else if activeSystem.Valid() {
		f.System = activeSystem
	}
	if s.JiraNumber != "" {
		f.JiraNumber = s.JiraNumber
	}

	return f
}
