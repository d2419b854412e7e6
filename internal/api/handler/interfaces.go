package handler

import (
	"context"

	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/handler_mocks.go -package=mocks

// NotificationEnqueuer aceita notificações do marketplace sem bloquear
type NotificationEnqueuer interface {
	Enqueue(notification domain.Notification) error
}

// AccountSyncer executa a sincronização sob o lock da conta
type AccountSyncer interface {
	SyncAccount(ctx context.Context, account *domain.MarketplaceAccount) (*domain.SyncSummary, error)
}

type CronService interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

type Pinger interface {
	Ping(ctx context.Context) error
}
