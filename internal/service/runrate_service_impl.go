package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmercier/orchestrator/internal/domain"
	"github.com/jmercier/orchestrator/internal/repository"
)

type runRateService struct {
	conn     *sql.DB
	now      func() time.Time
	observer UseCaseObserver
}

// NewRunRateService creates the run-rate use cases. Writes are single
// cell upserts; no audit log is kept for reference data.
func NewRunRateService(conn *sql.DB, observers ...UseCaseObserver) RunRateService {
	return &runRateService{
		conn:     conn,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *runRateService) Set(ctx context.Context, year, month int, sys domain.System, amount float64) (err error) {
	start := s.now()
	defer func() {
		observe(ctx, s.observer, "runrate.set", start, err, map[string]any{"year": year, "month": month})
	}()

	if month < 0 || month > 11 {
		return fmt.Errorf("month %d out of range 0-11: %w", month, ErrInvalidRunRate)
	}
	if !sys.Valid() {
		return fmt.Errorf("unknown system %q: %w", sys, ErrInvalidRunRate)
	}
	if amount < 0 {
		return fmt.Errorf("negative amount %.2f: %w", amount, ErrInvalidRunRate)
	}
	return repository.NewSQLiteRunRateRepo(s.conn).Set(ctx, year, month, sys, amount)
}

func (s *runRateService) Table(ctx context.Context) (domain.RunRateTable, error) {
	return repository.NewSQLiteRunRateRepo(s.conn).Load(ctx)
}
