package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmercier/orchestrator/internal/db"
	"github.com/jmercier/orchestrator/internal/domain"
)

const sprintColumns = `id, name, start_date, end_date, target_deployment_date,
	capacity, is_closed, system, created_at, updated_at`

// SQLiteSprintRepo implements SprintRepo over SQLite.
type SQLiteSprintRepo struct {
	db db.DBTX
}

// NewSQLiteSprintRepo creates a new SQLiteSprintRepo.
func NewSQLiteSprintRepo(conn db.DBTX) *SQLiteSprintRepo {
	return &SQLiteSprintRepo{db: conn}
}

func (r *SQLiteSprintRepo) Create(ctx context.Context, s *domain.Sprint) error {
	query := `INSERT INTO sprints (` + sprintColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.StartDate,
		s.EndDate,
		s.TargetDeploymentDate,
		s.Capacity,
		boolToInt(s.IsClosed),
		string(s.System),
		s.CreatedAt.Format(timeLayout),
		s.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting sprint: %w", err)
	}
	return nil
}

func (r *SQLiteSprintRepo) GetByID(ctx context.Context, id string) (*domain.Sprint, error) {
	query := `SELECT ` + sprintColumns + ` FROM sprints WHERE id = ?`
	return r.scanSprint(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSprintRepo) List(ctx context.Context) ([]*domain.Sprint, error) {
	query := `SELECT ` + sprintColumns + ` FROM sprints ORDER BY start_date, id`
	return r.list(ctx, query)
}

func (r *SQLiteSprintRepo) ListBySystem(ctx context.Context, sys domain.System) ([]*domain.Sprint, error) {
	if !sys.Valid() {
		return r.List(ctx)
	}
	query := `SELECT ` + sprintColumns + ` FROM sprints WHERE system = ? ORDER BY start_date, id`
	return r.list(ctx, query, string(sys))
}

func (r *SQLiteSprintRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Sprint, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sprints: %w", err)
	}
	defer rows.Close()

	var sprints []*domain.Sprint
	for rows.Next() {
		s, err := r.scanSprintFromRows(rows)
		if err != nil {
			return nil, err
		}
		sprints = append(sprints, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sprints: %w", err)
	}
	return sprints, nil
}

func (r *SQLiteSprintRepo) Update(ctx context.Context, s *domain.Sprint) error {
	query := `UPDATE sprints SET name = ?, start_date = ?, end_date = ?,
		target_deployment_date = ?, capacity = ?, is_closed = ?, system = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Name,
		s.StartDate,
		s.EndDate,
		s.TargetDeploymentDate,
		s.Capacity,
		boolToInt(s.IsClosed),
		string(s.System),
		s.UpdatedAt.Format(timeLayout),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating sprint: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("sprint %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSprintRepo) Delete(ctx context.Context, id string) error {
	// Allocation rows referencing the sprint are the features' to clean
	// up: the service removes them in the same transaction.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sprints WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting sprint: %w", err)
	}
	return nil
}

func (r *SQLiteSprintRepo) scanSprint(row *sql.Row) (*domain.Sprint, error) {
	var s domain.Sprint
	var isClosed int
	var system, createdAt, updatedAt string

	err := row.Scan(
		&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.TargetDeploymentDate,
		&s.Capacity, &isClosed, &system, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("sprint: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning sprint: %w", err)
	}
	return r.finishSprint(&s, isClosed, system, createdAt, updatedAt)
}

func (r *SQLiteSprintRepo) scanSprintFromRows(rows *sql.Rows) (*domain.Sprint, error) {
	var s domain.Sprint
	var isClosed int
	var system, createdAt, updatedAt string

	err := rows.Scan(
		&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.TargetDeploymentDate,
		&s.Capacity, &isClosed, &system, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning sprint row: %w", err)
	}
	return r.finishSprint(&s, isClosed, system, createdAt, updatedAt)
}

func (r *SQLiteSprintRepo) finishSprint(s *domain.Sprint, isClosed int, system, createdAt, updatedAt string) (*domain.Sprint, error) {
	s.IsClosed = intToBool(isClosed)
	s.System = domain.System(system)

	var err error
	if s.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return s, nil
}
