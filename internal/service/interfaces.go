package service

import (
	"context"

	"github.com/jmercier/orchestrator/internal/domain"
)

type FeatureService interface {
	Create(ctx context.Context, f *domain.Feature) error
	GetByID(ctx context.Context, id string) (*domain.Feature, error)
	List(ctx context.Context, sys domain.System) ([]*domain.Feature, error)
	Update(ctx context.Context, f *domain.Feature) error
	Delete(ctx context.Context, id string) error

	Allocate(ctx context.Context, featureID, sprintID string, points int) (*domain.Feature, error)
	Deallocate(ctx context.Context, featureID, sprintID string) (*domain.Feature, error)
	SetAllocationPoints(ctx context.Context, featureID, sprintID string, points int) (*domain.Feature, error)

	AdmitSuggestions(ctx context.Context, suggestions []domain.FeatureSuggestion, activeSystem domain.System) ([]*domain.Feature, error)
}

type SprintService interface {
	Create(ctx context.Context, s *domain.Sprint) error
	GetByID(ctx context.Context, id string) (*domain.Sprint, error)
	List(ctx context.Context, sys domain.System) ([]*domain.Sprint, error)
	Save(ctx context.Context, s *domain.Sprint) error
	SetClosed(ctx context.Context, id string, closed bool) error
	Delete(ctx context.Context, id string) error
}

type RunRateService interface {
	Set(ctx context.Context, year, month int, sys domain.System, amount float64) error
	Table(ctx context.Context) (domain.RunRateTable, error)
}

type LogService interface {
	List(ctx context.Context, query string, kind domain.EntityKind) ([]*domain.LogEntry, error)
}
