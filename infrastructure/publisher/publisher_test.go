package publisher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

func TestNewSyncCompletedMessage(t *testing.T) {
	startedAt := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	summary := domain.NewSyncSummary("acc-1", "run-1", startedAt)

	orders := &domain.BatchResult{}
	orders.Success("1")
	orders.Failure("2", assert.AnError)
	summary.Record(domain.ResourceOrders, orders)

	now := time.Date(2024, 5, 10, 9, 5, 0, 0, time.FixedZone("BRT", -3*60*60))
	msg := newSyncCompletedMessage(summary, now)

	assert.Equal(t, EventSyncCompleted, msg.Event)
	assert.Equal(t, "acc-1", msg.AccountID)
	assert.Equal(t, "run-1", msg.RunID)
	assert.Equal(t, 1, msg.TotalErrors)
	assert.Equal(t, time.UTC, msg.Timestamp.Location())

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, EventSyncCompleted, decoded["event"])
	assert.Contains(t, decoded, "summary")
}

func TestNoop(t *testing.T) {
	var p Publisher = NewNoop()

	assert.NoError(t, p.PublishSyncCompleted(context.Background(), &domain.SyncSummary{}))
	assert.NoError(t, p.Close())
}
