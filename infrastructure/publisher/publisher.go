package publisher

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const EventSyncCompleted = "marketplace.sync.completed"

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mocks.go -package=mocks

// Publisher notifica consumidores externos ao fim de cada sincronização
type Publisher interface {
	PublishSyncCompleted(ctx context.Context, summary *domain.SyncSummary) error
	Close() error
}

type SyncCompletedMessage struct {
	Event       string              `json:"event"`
	AccountID   string              `json:"account_id"`
	RunID       string              `json:"run_id"`
	TotalErrors int                 `json:"total_errors"`
	Summary     *domain.SyncSummary `json:"summary"`
	Timestamp   time.Time           `json:"timestamp"`
}

func newSyncCompletedMessage(summary *domain.SyncSummary, now time.Time) SyncCompletedMessage {
	return SyncCompletedMessage{
		Event:       EventSyncCompleted,
		AccountID:   summary.AccountID,
		RunID:       summary.RunID,
		TotalErrors: summary.TotalErrors(),
		Summary:     summary,
		Timestamp:   now.UTC(),
	}
}

type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (Noop) PublishSyncCompleted(context.Context, *domain.SyncSummary) error {
	return nil
}

func (Noop) Close() error {
	return nil
}
