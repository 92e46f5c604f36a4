package domain

import "time"

// EntityKind names the kind of entity an audit record is about.
type EntityKind string

const (
	KindFeature EntityKind = "feature"
	KindSprint  EntityKind = "sprint"
)

// LogEntry is an immutable audit record. Entries are created once as a
// side effect of a mutation and never updated; listings are newest-first.
type LogEntry struct {
	ID         string
	Timestamp  time.Time
	Kind       EntityKind
	EntityID   string
	EntityName string
	Action     string
	Details    string
}
