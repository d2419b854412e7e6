package aggregating

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

func CalculateAdMetrics(campaigns []*domain.Campaign, itemsWithActiveAds int, enabled bool) domain.AdMetrics {
	metrics := domain.AdMetrics{
		Enabled:            enabled,
		ItemsWithActiveAds: itemsWithActiveAds,
	}
	if !enabled {
		return metrics
	}

	spend := decimal.Zero
	revenue := decimal.Zero
	for _, campaign := range campaigns {
		if campaign == nil || !campaign.IsActive() {
			continue
		}

		metrics.ActiveCampaigns++
		metrics.Clicks += campaign.Clicks
		metrics.Impressions += campaign.Impressions
		spend = spend.Add(decimal.NewFromFloat(campaign.Spend))
		revenue = revenue.Add(decimal.NewFromFloat(campaign.Revenue))
	}

	metrics.Spend = spend.Round(2).InexactFloat64()
	metrics.Revenue = revenue.Round(2).InexactFloat64()

	if !spend.IsZero() {
		metrics.Roas = revenue.Div(spend).Round(2).InexactFloat64()
	}
	if !revenue.IsZero() {
		metrics.Acos = spend.Div(revenue).Mul(hundred).Round(2).InexactFloat64()
	}

	return metrics
}
