package service

import (
	"context"
	"database/sql"

	"github.com/jmercier/orchestrator/internal/audit"
	"github.com/jmercier/orchestrator/internal/domain"
	"github.com/jmercier/orchestrator/internal/repository"
)

type logService struct {
	conn *sql.DB
}

// NewLogService creates the read side of the audit trail.
func NewLogService(conn *sql.DB) LogService {
	return &logService{conn: conn}
}

func (s *logService) List(ctx context.Context, query string, kind domain.EntityKind) ([]*domain.LogEntry, error) {
	entries, err := repository.NewSQLiteLogRepo(s.conn).List(ctx)
	if err != nil {
		return nil, err
	}
	return audit.FilterLogs(entries, query, kind), nil
}
