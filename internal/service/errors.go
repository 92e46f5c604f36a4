package service

import "errors"

// ErrSprintClosed rejects allocation edits against a closed sprint.
// Closing a sprint never touches allocations it already holds; it only
// blocks new membership and points changes.
var ErrSprintClosed = errors.New("sprint is closed to allocation changes")

// ErrInvalidRunRate rejects run-rate writes outside the table's shape
// (month outside 0-11, unknown system, negative amount).
var ErrInvalidRunRate = errors.New("invalid run rate entry")
