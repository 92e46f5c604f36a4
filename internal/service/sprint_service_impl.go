package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/jmercier/orchestrator/internal/audit"
	"github.com/jmercier/orchestrator/internal/db"
	"github.com/jmercier/orchestrator/internal/domain"
	"github.com/jmercier/orchestrator/internal/planning"
	"github.com/jmercier/orchestrator/internal/repository"
)

type sprintService struct {
	conn     *sql.DB
	uow      db.UnitOfWork
	now      func() time.Time
	observer UseCaseObserver
}

// NewSprintService creates the sprint use cases. Saves are validated
// against the rest of the sprint's system scope before anything is
// written; deletion cascades allocation cleanup across every feature
// in the same transaction.
func NewSprintService(conn *sql.DB, uow db.UnitOfWork, observers ...UseCaseObserver) SprintService {
	return &sprintService{
		conn:     conn,
		uow:      uow,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *sprintService) Create(ctx context.Context, sprint *domain.Sprint) (err error) {
	start := s.now()
	defer func() { observe(ctx, s.observer, "sprint.create", start, err, map[string]any{"sprint": sprint.Name}) }()

	now := s.now().UTC()
	if sprint.ID == "" {
		sprint.ID = uuid.New().String()
	}
	sprint.CreatedAt = now
	sprint.UpdatedAt = now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sprints := repository.NewSQLiteSprintRepo(tx)
		others, err := sprints.ListBySystem(ctx, sprint.System)
		if err != nil {
			return err
		}
		if err := planning.ValidateSprintSave(sprint, others); err != nil {
			return err
		}
		if err := sprints.Create(ctx, sprint); err != nil {
			return err
		}
		return appendLog(ctx, tx, now, domain.KindSprint, sprint.ID, sprint.Name, "Added Sprint", "New sprint created.")
	})
}

func (s *sprintService) GetByID(ctx context.Context, id string) (*domain.Sprint, error) {
	return repository.NewSQLiteSprintRepo(s.conn).GetByID(ctx, id)
}

func (s *sprintService) List(ctx context.Context, sys domain.System) ([]*domain.Sprint, error) {
	return repository.NewSQLiteSprintRepo(s.conn).ListBySystem(ctx, sys)
}

// Save persists an edited sprint. The draft is validated against every
// other sprint in its system scope, and features allocated to the
// sprint get their derived date ranges recomputed, since those follow
// the sprint's dates.
func (s *sprintService) Save(ctx context.Context, sprint *domain.Sprint) (err error) {
	start := s.now()
	defer func() { observe(ctx, s.observer, "sprint.save", start, err, map[string]any{"sprint": sprint.Name}) }()

	now := s.now().UTC()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sprints := repository.NewSQLiteSprintRepo(tx)
		old, err := sprints.GetByID(ctx, sprint.ID)
		if err != nil {
			return err
		}
		others, err := sprints.ListBySystem(ctx, sprint.System)
		if err != nil {
			return err
		}
		if err := planning.ValidateSprintSave(sprint, others); err != nil {
			return err
		}

		sprint.UpdatedAt = now
		if err := sprints.Update(ctx, sprint); err != nil {
			return err
		}
		if err := s.recomputeAllocatedFeatures(ctx, tx, sprint.ID, now); err != nil {
			return err
		}

		if details := audit.DiffSprint(old, sprint); details != audit.NoChanges {
			return appendLog(ctx, tx, now, domain.KindSprint, sprint.ID, sprint.Name, "Updated Sprint", details)
		}
		return nil
	})
}

// SetClosed toggles the sprint's closure flag. Allocations the sprint
// already holds are untouched; closing only blocks new edits.
func (s *sprintService) SetClosed(ctx context.Context, id string, closed bool) (err error) {
	start := s.now()
	defer func() {
		observe(ctx, s.observer, "sprint.set_closed", start, err, map[string]any{"sprint_id": id, "closed": closed})
	}()

	now := s.now().UTC()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sprints := repository.NewSQLiteSprintRepo(tx)
		old, err := sprints.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if old.IsClosed == closed {
			return nil
		}

		updated := old.Clone()
		updated.IsClosed = closed
		updated.UpdatedAt = now
		if err := sprints.Update(ctx, updated); err != nil {
			return err
		}
		return appendLog(ctx, tx, now, domain.KindSprint, id, updated.Name, "Updated Sprint", audit.DiffSprint(old, updated))
	})
}

// Delete removes the sprint and cascades the cleanup: every feature
// allocated to it loses that allocation and has its dates recomputed
// against the surviving sprints. The whole batch commits atomically so
// no dangling allocation reference can survive a partial failure.
func (s *sprintService) Delete(ctx context.Context, id string) (err error) {
	start := s.now()
	defer func() { observe(ctx, s.observer, "sprint.delete", start, err, map[string]any{"sprint_id": id}) }()

	now := s.now().UTC()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sprints := repository.NewSQLiteSprintRepo(tx)
		features := repository.NewSQLiteFeatureRepo(tx)

		old, err := sprints.GetByID(ctx, id)
		if err != nil {
			return err
		}
		allFeatures, err := features.List(ctx)
		if err != nil {
			return err
		}
		allSprints, err := sprints.List(ctx)
		if err != nil {
			return err
		}

		updated := planning.CascadeDeleteSprint(id, allFeatures, allSprints)
		for i, f := range updated {
			if f == allFeatures[i] {
				continue
			}
			f.UpdatedAt = now
			if err := features.Update(ctx, f); err != nil {
				return err
			}
		}

		if err := sprints.Delete(ctx, id); err != nil {
			return err
		}
		return appendLog(ctx, tx, now, domain.KindSprint, id, old.Name, "Deleted Sprint", "Sprint removed.")
	})
}

func (s *sprintService) recomputeAllocatedFeatures(ctx context.Context, tx db.DBTX, sprintID string, now time.Time) error {
	features := repository.NewSQLiteFeatureRepo(tx)
	sprints := repository.NewSQLiteSprintRepo(tx)

	allFeatures, err := features.List(ctx)
	if err != nil {
		return err
	}
	allSprints, err := sprints.List(ctx)
	if err != nil {
		return err
	}
	for _, f := range allFeatures {
		if !f.AllocatedTo(sprintID) {
			continue
		}
		next := planning.RecomputeDates(f, allSprints)
		if next.StartDate == f.StartDate && next.EndDate == f.EndDate {
			continue
		}
		next.UpdatedAt = now
		if err := features.Update(ctx, next); err != nil {
			return err
		}
	}
	return nil
}
