package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jmercier/orchestrator/internal/db"
	"github.com/jmercier/orchestrator/internal/domain"
	"github.com/jmercier/orchestrator/internal/repository"
)

// appendLog writes an audit entry inside the caller's transaction so a
// rolled-back mutation never leaves a log behind.
func appendLog(ctx context.Context, tx db.DBTX, now time.Time, kind domain.EntityKind, entityID, entityName, action, details string) error {
	logs := repository.NewSQLiteLogRepo(tx)
	return logs.Append(ctx, &domain.LogEntry{
		ID:         uuid.New().String(),
		Timestamp:  now,
		Kind:       kind,
		EntityID:   entityID,
		EntityName: entityName,
		Action:     action,
		Details:    details,
	})
}

func observe(ctx context.Context, obs UseCaseObserver, name string, start time.Time, err error, fields map[string]any) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}
