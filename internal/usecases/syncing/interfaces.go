package syncing

import (
	"context"

	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/syncing_mocks.go -package=mocks
type TokenProvider interface {
	EnsureValidToken(ctx context.Context, account *domain.MarketplaceAccount) (string, error)
}

type MilestoneValidator interface {
	Validate(ctx context.Context, accountID string, snapshot *domain.MetricsSnapshot) ([]*domain.Milestone, error)
}

// Syncer é o contrato exposto para o agendador, a API e o processador de webhooks
type Syncer interface {
	Run(ctx context.Context, account *domain.MarketplaceAccount) (*domain.SyncSummary, error)
	RecomputeMetrics(ctx context.Context, account *domain.MarketplaceAccount) (*domain.MetricsSnapshot, error)
}
