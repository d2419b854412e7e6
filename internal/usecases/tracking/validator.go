package tracking

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
	"github.com/vfg2006/marketplace-sync-api/pkg/utils"
)

type Validator struct {
	milestoneRepository repository.MilestoneRepository
	stockRepository     repository.StockRepository
	lookback            time.Duration
	now                 func() time.Time
	generateID          func() (string, error)
}

func NewValidator(
	milestoneRepository repository.MilestoneRepository,
	stockRepository repository.StockRepository,
	lookback time.Duration,
) *Validator {
	return &Validator{
		milestoneRepository: milestoneRepository,
		stockRepository:     stockRepository,
		lookback:            lookback,
		now:                 time.Now,
		generateID:          utils.GenerateID,
	}
}

// Validate avança os marcos da conta a partir do snapshot. Marcos concluídos ou bloqueados
// nunca são alterados; retorna apenas os marcos criados ou modificados
func (v *Validator) Validate(ctx context.Context, accountID string, snapshot *domain.MetricsSnapshot) ([]*domain.Milestone, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("snapshot de métricas ausente para a conta %s", accountID)
	}

	now := v.now()

	existing, err := v.milestoneRepository.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar marcos: %w", err)
	}

	byKey := make(map[domain.MilestoneKey]*domain.Milestone, len(existing))
	for _, m := range existing {
		byKey[m.Key] = m
	}

	facts, err := v.collectFacts(ctx, accountID, snapshot, now)
	if err != nil {
		return nil, err
	}

	updated := make([]*domain.Milestone, 0)
	for _, rule := range Rules {
		milestone, ok := byKey[rule.Key]
		created := false
		if !ok {
			id, err := v.generateID()
			if err != nil {
				return nil, fmt.Errorf("erro ao gerar id do marco: %w", err)
			}
			milestone = &domain.Milestone{
				ID:        id,
				AccountID: accountID,
				Key:       rule.Key,
				Phase:     rule.Phase,
				Title:     rule.Title,
				Status:    domain.MilestoneNotStarted,
				UpdatedAt: now,
			}
			created = true
		}

		status, progress := rule.Evaluate(facts)
		if milestone.Advance(status, progress, now) || created {
			updated = append(updated, milestone)
		}
	}

	if err := v.milestoneRepository.SaveAll(ctx, updated); err != nil {
		return nil, fmt.Errorf("erro ao salvar marcos: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"updated":    len(updated),
	}).Debug("Marcos validados")

	return updated, nil
}

func (v *Validator) collectFacts(ctx context.Context, accountID string, snapshot *domain.MetricsSnapshot, now time.Time) (Facts, error) {
	facts := Facts{
		TotalSales:      snapshot.Sales.TotalSales,
		FlexListings:    snapshot.Shipping.Flex.Count,
		FullListings:    snapshot.Shipping.Full.Count,
		DecolaActive:    snapshot.Reputation.DecolaActive,
		AdsEnabled:      snapshot.Ads.Enabled,
		ActiveCampaigns: snapshot.Ads.ActiveCampaigns,
	}

	available, err := v.stockRepository.CountAvailableSince(ctx, accountID, now.Add(-v.lookback))
	if err != nil {
		return facts, fmt.Errorf("erro ao consultar estoque FULL: %w", err)
	}
	facts.FullStockAvailable = available > 0

	return facts, nil
}
