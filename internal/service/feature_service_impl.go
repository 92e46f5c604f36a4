package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmercier/orchestrator/internal/audit"
	"github.com/jmercier/orchestrator/internal/db"
	"github.com/jmercier/orchestrator/internal/domain"
	"github.com/jmercier/orchestrator/internal/planning"
	"github.com/jmercier/orchestrator/internal/repository"
)

type featureService struct {
	conn     *sql.DB
	uow      db.UnitOfWork
	now      func() time.Time
	observer UseCaseObserver
}

// NewFeatureService creates the feature use cases over the given
// database handle and unit of work. Every mutation and its audit log
// entry commit in one transaction.
func NewFeatureService(conn *sql.DB, uow db.UnitOfWork, observers ...UseCaseObserver) FeatureService {
	return &featureService{
		conn:     conn,
		uow:      uow,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *featureService) Create(ctx context.Context, f *domain.Feature) (err error) {
	start := s.now()
	defer func() { observe(ctx, s.observer, "feature.create", start, err, map[string]any{"feature": f.Name}) }()

	now := s.now().UTC()
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	f.CreatedAt = now
	f.UpdatedAt = now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteFeatureRepo(tx).Create(ctx, f); err != nil {
			return err
		}
		return appendLog(ctx, tx, now, domain.KindFeature, f.ID, f.Name, "Added Feature", "New feature created.")
	})
}

func (s *featureService) GetByID(ctx context.Context, id string) (*domain.Feature, error) {
	return repository.NewSQLiteFeatureRepo(s.conn).GetByID(ctx, id)
}

func (s *featureService) List(ctx context.Context, sys domain.System) ([]*domain.Feature, error) {
	return repository.NewSQLiteFeatureRepo(s.conn).ListBySystem(ctx, sys)
}

func (s *featureService) Update(ctx context.Context, f *domain.Feature) (err error) {
	start := s.now()
	defer func() { observe(ctx, s.observer, "feature.update", start, err, map[string]any{"feature": f.Name}) }()

	now := s.now().UTC()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		features := repository.NewSQLiteFeatureRepo(tx)
		old, err := features.GetByID(ctx, f.ID)
		if err != nil {
			return err
		}

		f.UpdatedAt = now
		if err := features.Update(ctx, f); err != nil {
			return err
		}

		// A save that changed nothing produces no log entry.
		if details := audit.DiffFeature(old, f); details != audit.NoChanges {
			return appendLog(ctx, tx, now, domain.KindFeature, f.ID, f.Name, "Updated Feature", details)
		}
		return nil
	})
}

func (s *featureService) Delete(ctx context.Context, id string) (err error) {
	start := s.now()
	defer func() { observe(ctx, s.observer, "feature.delete", start, err, map[string]any{"feature_id": id}) }()

	now := s.now().UTC()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		features := repository.NewSQLiteFeatureRepo(tx)
		old, err := features.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := features.Delete(ctx, id); err != nil {
			return err
		}
		return appendLog(ctx, tx, now, domain.KindFeature, id, old.Name, "Deleted Feature", "Feature removed from backlog.")
	})
}

func (s *featureService) Allocate(ctx context.Context, featureID, sprintID string, points int) (*domain.Feature, error) {
	return s.mutateAllocations(ctx, "feature.allocate", featureID, sprintID,
		func(f *domain.Feature) (*domain.Feature, error) {
			return planning.AddAllocation(f, sprintID, points), nil
		})
}

func (s *featureService) Deallocate(ctx context.Context, featureID, sprintID string) (*domain.Feature, error) {
	return s.mutateAllocations(ctx, "feature.deallocate", featureID, sprintID,
		func(f *domain.Feature) (*domain.Feature, error) {
			return planning.RemoveAllocation(f, sprintID), nil
		})
}

func (s *featureService) SetAllocationPoints(ctx context.Context, featureID, sprintID string, points int) (*domain.Feature, error) {
	return s.mutateAllocations(ctx, "feature.set_allocation_points", featureID, sprintID,
		func(f *domain.Feature) (*domain.Feature, error) {
			return planning.SetAllocationPoints(f, sprintID, points)
		})
}

// mutateAllocations runs one allocation edit end to end: closed-sprint
// policy check, the pure engine mutation, date recomputation against
// the current sprint collection, and the audit entry — all in one
// transaction. The engine's validation errors pass through untouched.
func (s *featureService) mutateAllocations(
	ctx context.Context,
	useCase, featureID, sprintID string,
	mutate func(*domain.Feature) (*domain.Feature, error),
) (updated *domain.Feature, err error) {
	start := s.now()
	defer func() {
		observe(ctx, s.observer, useCase, start, err, map[string]any{"feature_id": featureID, "sprint_id": sprintID})
	}()

	now := s.now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		features := repository.NewSQLiteFeatureRepo(tx)
		sprints := repository.NewSQLiteSprintRepo(tx)

		f, err := features.GetByID(ctx, featureID)
		if err != nil {
			return err
		}
		sprint, err := sprints.GetByID(ctx, sprintID)
		if err != nil {
			return err
		}
		if sprint.IsClosed {
			return fmt.Errorf("sprint %q: %w", sprint.Name, ErrSprintClosed)
		}

		next, err := mutate(f)
		if err != nil {
			return err
		}

		all, err := sprints.List(ctx)
		if err != nil {
			return err
		}
		next = planning.RecomputeDates(next, all)
		next.UpdatedAt = now

		if err := features.Update(ctx, next); err != nil {
			return err
		}
		if details := audit.DiffFeature(f, next); details != audit.NoChanges {
			if err := appendLog(ctx, tx, now, domain.KindFeature, next.ID, next.Name, "Updated Feature", details); err != nil {
				return err
			}
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *featureService) AdmitSuggestions(ctx context.Context, suggestions []domain.FeatureSuggestion, activeSystem domain.System) (admitted []*domain.Feature, err error) {
	start := s.now()
	defer func() { observe(ctx, s.observer, "feature.admit_suggestions", start, err, map[string]any{"count": len(suggestions)}) }()

	now := s.now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		features := repository.NewSQLiteFeatureRepo(tx)
		for _, suggestion := range suggestions {
			f := domain.NewFeatureFromSuggestion(suggestion, activeSystem, now)
			if err := features.Create(ctx, f); err != nil {
				return err
			}
			if err := appendLog(ctx, tx, now, domain.KindFeature, f.ID, f.Name, "Added Feature", "New feature created."); err != nil {
				return err
			}
			admitted = append(admitted, f)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return admitted, nil
}
