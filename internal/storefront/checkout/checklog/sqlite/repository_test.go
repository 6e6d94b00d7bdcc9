package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxecuffs/storefront/internal/storefront/checkout/checklog"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "checkout.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSaveAndGetLatest(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	base := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	entries := []*checklog.Entry{
		{
			OrderID:    "ord-1",
			Status:     checklog.StatusStarted,
			Payload:    `{"items":[{"productId":"p1","quantity":2}]}`,
			Errors:     "[]",
			TraceID:    "0af7651916cd43dd8448eb211c80319c",
			SpanID:     "b7ad6b7169203331",
			RecordedAt: base,
		},
		{
			OrderID:    "ord-1",
			Status:     checklog.StatusStepDone,
			Step:       "reserve_stock",
			Errors:     "[]",
			RecordedAt: base.Add(time.Second),
		},
		{
			OrderID:    "ord-1",
			Status:     checklog.StatusCompleted,
			Errors:     "[]",
			RecordedAt: base.Add(2 * time.Second),
		},
	}
	for _, e := range entries {
		require.NoError(t, repo.Save(ctx, e))
	}

	latest, err := repo.GetLatest(ctx, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, checklog.StatusCompleted, latest.Status)
	assert.Equal(t, "ord-1", latest.OrderID)
	assert.True(t, latest.RecordedAt.Equal(base.Add(2*time.Second)))
}

func TestGetLatestUnknownOrder(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.GetLatest(context.Background(), "missing")
	assert.Error(t, err)
}

func TestSaveOrdersSameTimestampByInsertion(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	at := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	first := &checklog.Entry{OrderID: "ord-2", Status: checklog.StatusCompensating, Step: "persist_order", Errors: `["boom"]`, RecordedAt: at}
	second := &checklog.Entry{OrderID: "ord-2", Status: checklog.StatusFailed, Errors: `["boom"]`, RecordedAt: at}
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	latest, err := repo.GetLatest(ctx, "ord-2")
	require.NoError(t, err)
	assert.Equal(t, checklog.StatusFailed, latest.Status)
	assert.Equal(t, `["boom"]`, latest.Errors)
}
