package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

const campaignsTable = "campaigns"

//go:generate mockgen -source=campaign.go -destination=mocks/campaign_mocks.go -package=mocks
type CampaignRepository interface {
	SaveOrUpdate(ctx context.Context, campaign *domain.Campaign) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) SaveOrUpdate(ctx context.Context, campaign *domain.Campaign) error {
	query, args, err := squirrel.
		Insert(campaignsTable).
		Columns(
			"account_id",
			"campaign_id",
			"name",
			"status",
			"budget",
			"spend",
			"revenue",
			"clicks",
			"impressions",
			"units_sold",
			"date_from",
			"date_to",
			"synced_at",
		).
		Values(
			campaign.AccountID,
			campaign.CampaignID,
			campaign.Name,
			string(campaign.Status),
			campaign.Budget,
			campaign.Spend,
			campaign.Revenue,
			campaign.Clicks,
			campaign.Impressions,
			campaign.UnitsSold,
			campaign.DateFrom,
			campaign.DateTo,
			campaign.SyncedAt,
		).
		Suffix(`ON CONFLICT (account_id, campaign_id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			budget = EXCLUDED.budget,
			spend = EXCLUDED.spend,
			revenue = EXCLUDED.revenue,
			clicks = EXCLUDED.clicks,
			impressions = EXCLUDED.impressions,
			units_sold = EXCLUDED.units_sold,
			date_from = EXCLUDED.date_from,
			date_to = EXCLUDED.date_to,
			synced_at = EXCLUDED.synced_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return &domain.PersistenceError{Resource: domain.ResourceAds, Key: campaign.CampaignID, Err: wrapDBError(err)}
	}

	return nil
}
