package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmercier/orchestrator/internal/db"
	"github.com/jmercier/orchestrator/internal/domain"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

const featureColumns = `id, name, description, priority, status, start_date, end_date,
	estimated_cost, points, owner, programs, system, jira_number, created_at, updated_at`

// SQLiteFeatureRepo implements FeatureRepo over SQLite. Allocation rows
// live in feature_allocations and are rewritten wholesale on every
// save, matching the whole-document replacement the callers work with.
// Run Create/Update inside a transaction when atomicity with other
// entities matters.
type SQLiteFeatureRepo struct {
	db db.DBTX
}

// NewSQLiteFeatureRepo creates a new SQLiteFeatureRepo.
func NewSQLiteFeatureRepo(conn db.DBTX) *SQLiteFeatureRepo {
	return &SQLiteFeatureRepo{db: conn}
}

func (r *SQLiteFeatureRepo) Create(ctx context.Context, f *domain.Feature) error {
	programs, err := encodePrograms(f.Programs)
	if err != nil {
		return err
	}
	query := `INSERT INTO features (` + featureColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		f.ID,
		f.Name,
		f.Description,
		string(f.Priority),
		string(f.Status),
		f.StartDate,
		f.EndDate,
		f.EstimatedCost,
		f.Points,
		f.Owner,
		programs,
		string(f.System),
		f.JiraNumber,
		f.CreatedAt.Format(timeLayout),
		f.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting feature: %w", err)
	}
	return r.replaceAllocations(ctx, f)
}

func (r *SQLiteFeatureRepo) GetByID(ctx context.Context, id string) (*domain.Feature, error) {
	query := `SELECT ` + featureColumns + ` FROM features WHERE id = ?`
	f, err := r.scanFeature(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadAllocations(ctx, []*domain.Feature{f}); err != nil {
		return nil, err
	}
	return f, nil
}

func (r *SQLiteFeatureRepo) List(ctx context.Context) ([]*domain.Feature, error) {
	query := `SELECT ` + featureColumns + ` FROM features ORDER BY created_at, id`
	return r.list(ctx, query)
}

func (r *SQLiteFeatureRepo) ListBySystem(ctx context.Context, sys domain.System) ([]*domain.Feature, error) {
	if !sys.Valid() {
		return r.List(ctx)
	}
	query := `SELECT ` + featureColumns + ` FROM features WHERE system = ? ORDER BY created_at, id`
	return r.list(ctx, query, string(sys))
}

func (r *SQLiteFeatureRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Feature, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing features: %w", err)
	}
	defer rows.Close()

	var features []*domain.Feature
	for rows.Next() {
		f, err := r.scanFeatureFromRows(rows)
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating features: %w", err)
	}
	if err := r.loadAllocations(ctx, features); err != nil {
		return nil, err
	}
	return features, nil
}

func (r *SQLiteFeatureRepo) Update(ctx context.Context, f *domain.Feature) error {
	programs, err := encodePrograms(f.Programs)
	if err != nil {
		return err
	}
	query := `UPDATE features SET name = ?, description = ?, priority = ?, status = ?,
		start_date = ?, end_date = ?, estimated_cost = ?, points = ?, owner = ?,
		programs = ?, system = ?, jira_number = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		f.Name,
		f.Description,
		string(f.Priority),
		string(f.Status),
		f.StartDate,
		f.EndDate,
		f.EstimatedCost,
		f.Points,
		f.Owner,
		programs,
		string(f.System),
		f.JiraNumber,
		f.UpdatedAt.Format(timeLayout),
		f.ID,
	)
	if err != nil {
		return fmt.Errorf("updating feature: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("feature %s: %w", f.ID, ErrNotFound)
	}
	return r.replaceAllocations(ctx, f)
}

func (r *SQLiteFeatureRepo) Delete(ctx context.Context, id string) error {
	// Allocation rows go with the feature via ON DELETE CASCADE.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM features WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting feature: %w", err)
	}
	return nil
}

// replaceAllocations rewrites the feature's allocation rows to mirror
// the in-memory list, preserving its order via the position column.
func (r *SQLiteFeatureRepo) replaceAllocations(ctx context.Context, f *domain.Feature) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM feature_allocations WHERE feature_id = ?`, f.ID); err != nil {
		return fmt.Errorf("clearing allocations: %w", err)
	}
	for i, a := range f.Allocations {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO feature_allocations (feature_id, sprint_id, points, position) VALUES (?, ?, ?, ?)`,
			f.ID, a.SprintID, a.Points, i)
		if err != nil {
			return fmt.Errorf("inserting allocation: %w", err)
		}
	}
	return nil
}

func (r *SQLiteFeatureRepo) loadAllocations(ctx context.Context, features []*domain.Feature) error {
	for _, f := range features {
		rows, err := r.db.QueryContext(ctx,
			`SELECT sprint_id, points FROM feature_allocations WHERE feature_id = ? ORDER BY position`, f.ID)
		if err != nil {
			return fmt.Errorf("loading allocations: %w", err)
		}
		f.Allocations = nil
		for rows.Next() {
			var a domain.SprintAllocation
			if err := rows.Scan(&a.SprintID, &a.Points); err != nil {
				rows.Close()
				return fmt.Errorf("scanning allocation: %w", err)
			}
			f.Allocations = append(f.Allocations, a)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return fmt.Errorf("iterating allocations: %w", err)
		}
		rows.Close()
	}
	return nil
}

func (r *SQLiteFeatureRepo) scanFeature(row *sql.Row) (*domain.Feature, error) {
	var f domain.Feature
	var priority, status, system, programs, createdAt, updatedAt string

	err := row.Scan(
		&f.ID, &f.Name, &f.Description, &priority, &status,
		&f.StartDate, &f.EndDate, &f.EstimatedCost, &f.Points,
		&f.Owner, &programs, &system, &f.JiraNumber,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("feature: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning feature: %w", err)
	}
	return r.finishFeature(&f, priority, status, system, programs, createdAt, updatedAt)
}

func (r *SQLiteFeatureRepo) scanFeatureFromRows(rows *sql.Rows) (*domain.Feature, error) {
	var f domain.Feature
	var priority, status, system, programs, createdAt, updatedAt string

	err := rows.Scan(
		&f.ID, &f.Name, &f.Description, &priority, &status,
		&f.StartDate, &f.EndDate, &f.EstimatedCost, &f.Points,
		&f.Owner, &programs, &system, &f.JiraNumber,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning feature row: %w", err)
	}
	return r.finishFeature(&f, priority, status, system, programs, createdAt, updatedAt)
}

func (r *SQLiteFeatureRepo) finishFeature(f *domain.Feature, priority, status, system, programs, createdAt, updatedAt string) (*domain.Feature, error) {
	f.Priority = domain.Priority(priority)
	f.Status = domain.Status(status)
	f.System = domain.System(system)

	var err error
	if f.Programs, err = decodePrograms(programs); err != nil {
		return nil, err
	}
	if f.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if f.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return f, nil
}
