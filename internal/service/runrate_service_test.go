package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmercier/orchestrator/internal/domain"
	"github.com/jmercier/orchestrator/internal/testutil"
)

func TestRunRateServiceSetAndTable(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewRunRateService(conn)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, 2026, 0, domain.SystemTOM, 1500))
	require.NoError(t, svc.Set(ctx, 2026, 0, domain.SystemEOM, 500))
	// Overwrites the existing cell.
	require.NoError(t, svc.Set(ctx, 2026, 0, domain.SystemTOM, 2000))

	table, err := svc.Table(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, table.Amount(2026, 0, domain.SystemTOM))
	assert.Equal(t, 2500.0, table.GlobalAmount(2026, 0))
}

func TestRunRateServiceRejectsInvalidInput(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewRunRateService(conn)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Set(ctx, 2026, 12, domain.SystemTOM, 100), ErrInvalidRunRate)
	assert.ErrorIs(t, svc.Set(ctx, 2026, -1, domain.SystemTOM, 100), ErrInvalidRunRate)
	assert.ErrorIs(t, svc.Set(ctx, 2026, 3, domain.System("Mainframe"), 100), ErrInvalidRunRate)
	assert.ErrorIs(t, svc.Set(ctx, 2026, 3, domain.SystemTOM, -5), ErrInvalidRunRate)
}
