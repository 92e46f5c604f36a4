package repository

import (
	"context"
	"fmt"

	"github.com/jmercier/orchestrator/internal/db"
	"github.com/jmercier/orchestrator/internal/domain"
)

// SQLiteRunRateRepo implements RunRateRepo over SQLite. The table is
// sparse on disk exactly as it is in memory: only explicitly set
// (year, month, system) cells get a row.
type SQLiteRunRateRepo struct {
	db db.DBTX
}

// NewSQLiteRunRateRepo creates a new SQLiteRunRateRepo.
func NewSQLiteRunRateRepo(conn db.DBTX) *SQLiteRunRateRepo {
	return &SQLiteRunRateRepo{db: conn}
}

func (r *SQLiteRunRateRepo) Load(ctx context.Context) (domain.RunRateTable, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT year, month, system, amount FROM run_rates`)
	if err != nil {
		return nil, fmt.Errorf("loading run rates: %w", err)
	}
	defer rows.Close()

	table := domain.RunRateTable{}
	for rows.Next() {
		var year, month int
		var system string
		var amount float64
		if err := rows.Scan(&year, &month, &system, &amount); err != nil {
			return nil, fmt.Errorf("scanning run rate: %w", err)
		}
		table.Set(year, month, domain.System(system), amount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run rates: %w", err)
	}
	return table, nil
}

func (r *SQLiteRunRateRepo) Set(ctx context.Context, year, month int, sys domain.System, amount float64) error {
	query := `INSERT INTO run_rates (year, month, system, amount) VALUES (?, ?, ?, ?)
		ON CONFLICT(year, month, system) DO UPDATE SET amount = excluded.amount`
	if _, err := r.db.ExecContext(ctx, query, year, month, string(sys), amount); err != nil {
		return fmt.Errorf("setting run rate: %w", err)
	}
	return nil
}
