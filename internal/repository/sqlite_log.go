package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmercier/orchestrator/internal/db"
	"github.com/jmercier/orchestrator/internal/domain"
)

// SQLiteLogRepo implements LogRepo over SQLite.
type SQLiteLogRepo struct {
	db db.DBTX
}

// NewSQLiteLogRepo creates a new SQLiteLogRepo.
func NewSQLiteLogRepo(conn db.DBTX) *SQLiteLogRepo {
	return &SQLiteLogRepo{db: conn}
}

func (r *SQLiteLogRepo) Append(ctx context.Context, e *domain.LogEntry) error {
	query := `INSERT INTO audit_logs (id, timestamp, kind, entity_id, entity_name, action, details)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Timestamp.Format(timeLayout),
		string(e.Kind),
		e.EntityID,
		e.EntityName,
		e.Action,
		e.Details,
	)
	if err != nil {
		return fmt.Errorf("appending log entry: %w", err)
	}
	return nil
}

func (r *SQLiteLogRepo) List(ctx context.Context) ([]*domain.LogEntry, error) {
	query := `SELECT id, timestamp, kind, entity_id, entity_name, action, details
		FROM audit_logs ORDER BY timestamp DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing log entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.LogEntry
	for rows.Next() {
		var e domain.LogEntry
		var ts, kind string
		if err := rows.Scan(&e.ID, &ts, &kind, &e.EntityID, &e.EntityName, &e.Action, &e.Details); err != nil {
			return nil, fmt.Errorf("scanning log entry: %w", err)
		}
		e.Kind = domain.EntityKind(kind)
		if e.Timestamp, err = time.Parse(timeLayout, ts); err != nil {
			return nil, fmt.Errorf("parsing timestamp: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating log entries: %w", err)
	}
	return entries, nil
}
