package cli

import (
	"errors"
	"fmt"

	"github.com/jmercier/orchestrator/internal/planning"
	"github.com/jmercier/orchestrator/internal/repository"
	"github.com/jmercier/orchestrator/internal/service"
)

// humanize rewrites service and planning errors into the messages shown
// to the user. Unrecognized errors pass through untouched.
func humanize(err error) error {
	if err == nil {
		return nil
	}

	var overErr *planning.OverAllocationError
	if errors.As(err, &overErr) {
		return fmt.Errorf("Cannot allocate %d pts. Total for '%s' would exceed its limit of %d pts.",
			overErr.Requested, overErr.FeatureName, overErr.Limit)
	}

	var overlapErr *planning.SprintOverlapError
	if errors.As(err, &overlapErr) {
		return fmt.Errorf("Sprint '%s' overlaps with '%s'. Adjust the dates and try again.",
			overlapErr.SprintName, overlapErr.ConflictName)
	}

	var orderErr *planning.DateOrderError
	if errors.As(err, &orderErr) {
		return fmt.Errorf("Start date %s is after end date %s.", orderErr.StartDate, orderErr.EndDate)
	}

	if errors.Is(err, service.ErrSprintClosed) {
		return errors.New("That sprint is closed. Reopen it before changing allocations.")
	}
	if errors.Is(err, repository.ErrNotFound) {
		return errors.New("Nothing matches that ID.")
	}

	return err
}
