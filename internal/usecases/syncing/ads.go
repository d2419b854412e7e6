package syncing

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-sync-api/internal/config"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
	"github.com/vfg2006/marketplace-sync-api/internal/usecases/aggregating"
)

type AdsResult struct {
	Enabled bool
	Metrics domain.AdMetrics
	Batch   *domain.BatchResult
}

type AdsSyncer struct {
	integrator         mercadolivre.Integrator
	campaignRepository repository.CampaignRepository
	maxAdItems         int
	itemDelay          time.Duration
	now                func() time.Time
}

func NewAdsSyncer(cfg config.MarketplaceSync, integrator mercadolivre.Integrator, campaignRepository repository.CampaignRepository) *AdsSyncer {
	return &AdsSyncer{
		integrator:         integrator,
		campaignRepository: campaignRepository,
		maxAdItems:         positiveOr(cfg.MaxAdItems, 50),
		itemDelay:          cfg.AdItemRequestDelay(),
		now:                time.Now,
	}
}

// Sync é opcional: conta sem anunciante desativa a feature sem contar erro
func (s *AdsSyncer) Sync(ctx context.Context, account *domain.MarketplaceAccount, token string, listings []*domain.Listing, from, to time.Time) *AdsResult {
	result := &AdsResult{Batch: &domain.BatchResult{}}
	logger := logrus.WithField("account_id", account.ID)

	advertiserID, err := s.integrator.GetAdvertiserID(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrFeatureUnavailable) {
			logger.Info("Conta sem Mercado Ads, desativando feature")
			result.Metrics = aggregating.CalculateAdMetrics(nil, 0, false)
			return result
		}

		logger.WithError(err).Warn("Erro ao buscar anunciante")
		result.Batch.Failure("advertiser", err)
		result.Enabled = account.AdsEnabled
		result.Metrics = domain.AdMetrics{Enabled: account.AdsEnabled}
		return result
	}

	result.Enabled = true

	campaigns, err := s.integrator.ListCampaigns(ctx, token, advertiserID, from, to)
	if err != nil {
		logger.WithError(err).Warn("Erro ao buscar campanhas")
		result.Batch.Failure("campaigns", err)
	}

	syncedAt := s.now()
	for _, campaign := range campaigns {
		campaign.AccountID = account.ID
		campaign.SyncedAt = syncedAt

		if err := s.campaignRepository.SaveOrUpdate(ctx, campaign); err != nil {
			logger.WithError(err).WithField("campaign_id", campaign.CampaignID).Error("Erro ao salvar campanha")
			result.Batch.Failure(campaign.CampaignID, err)
			continue
		}
		result.Batch.Success(campaign.CampaignID)
	}

	itemsWithAds := s.countItemsWithActiveAds(ctx, token, listings, result.Batch)
	result.Metrics = aggregating.CalculateAdMetrics(campaigns, itemsWithAds, true)

	return result
}

func (s *AdsSyncer) countItemsWithActiveAds(ctx context.Context, token string, listings []*domain.Listing, batch *domain.BatchResult) int {
	limiter := newDelayLimiter(s.itemDelay)
	checked := 0
	active := 0

	for _, listing := range listings {
		if checked >= s.maxAdItems {
			break
		}
		if !listing.IsActive() {
			continue
		}
		checked++

		if err := limiter.Wait(ctx); err != nil {
			break
		}

		status, err := s.integrator.GetItemAdStatus(ctx, token, listing.ExternalItemID)
		if err != nil {
			batch.Failure("item_ad:"+listing.ExternalItemID, err)
			continue
		}
		if status.IsActive() {
			active++
		}
	}

	return active
}
