package aggregating

import (
	"time"

	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

// Input reúne tudo o que foi sincronizado (ou lido do banco) para uma conta
type Input struct {
	AccountID   string
	Listings    []*domain.Listing
	Orders      []*domain.Order
	Profile     *domain.SellerProfile
	WindowStart time.Time
	WindowEnd   time.Time
}

// Aggregator não guarda estado entre chamadas; o relógio é injetável para testes
type Aggregator struct {
	shipping ShippingCalculator
	now      func() time.Time
}

func NewAggregator() *Aggregator {
	return &Aggregator{now: time.Now}
}

func NewAggregatorWithClock(now func() time.Time) *Aggregator {
	return &Aggregator{now: now}
}

// Compute deriva vendas, envios e reputação. Métricas de ads são preenchidas depois pelo AdsSyncer
func (a *Aggregator) Compute(input Input) *domain.MetricsSnapshot {
	now := a.now()

	return &domain.MetricsSnapshot{
		AccountID:  input.AccountID,
		Sales:      CalculateSalesMetrics(input.Orders, input.WindowStart, input.WindowEnd),
		Shipping:   a.shipping.Calculate(input.Listings),
		Reputation: BuildReputation(input.Profile, now),
		ComputedAt: now,
	}
}
