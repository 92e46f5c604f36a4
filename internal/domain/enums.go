package domain

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// AllPriorities lists priorities in ascending order of urgency.
var AllPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Score returns a sort rank for the priority (lower = more urgent).
// Unknown values rank after Low.
func (p Priority) Score() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusBacklog    Status = "Backlog"
	StatusReady      Status = "Ready"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusOnHold     Status = "On Hold"
)

var AllStatuses = []Status{StatusBacklog, StatusReady, StatusInProgress, StatusCompleted, StatusOnHold}

func (s Status) Valid() bool {
	switch s {
	case StatusBacklog, StatusReady, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	default:
		return false
	}
}

// System identifies the target deployment system a feature or sprint
// belongs to. The empty value acts as the "global" scope in filters
// and financial rollups.
type System string

const (
	SystemTOM System = "TOM"
	SystemEOM System = "EOM"
	SystemC3  System = "C3"

	// SystemGlobal is the filter sentinel meaning "all systems".
	SystemGlobal System = "global"
)

// AllSystems lists the concrete systems, excluding the global sentinel.
var AllSystems = []System{SystemTOM, SystemEOM, SystemC3}

func (s System) Valid() bool {
	switch s {
	case SystemTOM, SystemEOM, SystemC3:
		return true
	default:
		return false
	}
}
