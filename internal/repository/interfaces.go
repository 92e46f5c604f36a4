package repository

import (
	"context"

	"github.com/jmercier/orchestrator/internal/domain"
)

// Repositories are constructed over a db.DBTX, so the same
// implementation serves both plain reads and transactional batches:
// services build tx-scoped instances inside a unit of work when a
// mutation spans entities (sprint delete + feature cascade).

type FeatureRepo interface {
	Create(ctx context.Context, f *domain.Feature) error
	GetByID(ctx context.Context, id string) (*domain.Feature, error)
	List(ctx context.Context) ([]*domain.Feature, error)
	ListBySystem(ctx context.Context, sys domain.System) ([]*domain.Feature, error)
	Update(ctx context.Context, f *domain.Feature) error
	Delete(ctx context.Context, id string) error
}

type SprintRepo interface {
	Create(ctx context.Context, s *domain.Sprint) error
	GetByID(ctx context.Context, id string) (*domain.Sprint, error)
	List(ctx context.Context) ([]*domain.Sprint, error)
	ListBySystem(ctx context.Context, sys domain.System) ([]*domain.Sprint, error)
	Update(ctx context.Context, s *domain.Sprint) error
	Delete(ctx context.Context, id string) error
}

type RunRateRepo interface {
	Load(ctx context.Context) (domain.RunRateTable, error)
	Set(ctx context.Context, year, month int, sys domain.System, amount float64) error
}

// LogRepo is append-only: entries are never updated or deleted, and
// listings come back newest first.
type LogRepo interface {
	Append(ctx context.Context, e *domain.LogEntry) error
	List(ctx context.Context) ([]*domain.LogEntry, error)
}
