package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const metricsTable = "metrics_snapshots"

//go:generate mockgen -source=metrics.go -destination=mocks/metrics_mocks.go -package=mocks
type MetricsRepository interface {
	SaveOrUpdate(ctx context.Context, snapshot *domain.MetricsSnapshot) error
	GetByAccountID(ctx context.Context, accountID string) (*domain.MetricsSnapshot, error)
}

type metricsRepository struct {
	conn *postgres.Connection
}

func NewMetricsRepository(conn *postgres.Connection) MetricsRepository {
	return &metricsRepository{
		conn: conn,
	}
}

// SaveOrUpdate mantém um único snapshot por conta, substituído a cada recomputação
func (r *metricsRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.MetricsSnapshot) error {
	sales, err := json.Marshal(snapshot.Sales)
	if err != nil {
		return fmt.Errorf("erro ao serializar vendas: %w", err)
	}

	shipping, err := json.Marshal(snapshot.Shipping)
	if err != nil {
		return fmt.Errorf("erro ao serializar envios: %w", err)
	}

	reputation, err := json.Marshal(snapshot.Reputation)
	if err != nil {
		return fmt.Errorf("erro ao serializar reputação: %w", err)
	}

	ads, err := json.Marshal(snapshot.Ads)
	if err != nil {
		return fmt.Errorf("erro ao serializar anúncios patrocinados: %w", err)
	}

	query, args, err := squirrel.
		Insert(metricsTable).
		Columns("account_id", "sales", "shipping", "reputation", "ads", "computed_at").
		Values(snapshot.AccountID, sales, shipping, reputation, ads, snapshot.ComputedAt).
		Suffix(`ON CONFLICT (account_id) DO UPDATE SET
			sales = EXCLUDED.sales,
			shipping = EXCLUDED.shipping,
			reputation = EXCLUDED.reputation,
			ads = EXCLUDED.ads,
			computed_at = EXCLUDED.computed_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return &domain.PersistenceError{Resource: domain.ResourceMetrics, Key: snapshot.AccountID, Err: wrapDBError(err)}
	}

	return nil
}

func (r *metricsRepository) GetByAccountID(ctx context.Context, accountID string) (*domain.MetricsSnapshot, error) {
	query, args, err := squirrel.
		Select("account_id", "sales", "shipping", "reputation", "ads", "computed_at").
		From(metricsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.MetricsSnapshot{}
	var sales, shipping, reputation, ads []byte

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&snapshot.AccountID,
		&sales,
		&shipping,
		&reputation,
		&ads,
		&snapshot.ComputedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err)
	}

	if err := json.Unmarshal(sales, &snapshot.Sales); err != nil {
		return nil, fmt.Errorf("erro ao deserializar vendas: %w", err)
	}
	if err := json.Unmarshal(shipping, &snapshot.Shipping); err != nil {
		return nil, fmt.Errorf("erro ao deserializar envios: %w", err)
	}
	if err := json.Unmarshal(reputation, &snapshot.Reputation); err != nil {
		return nil, fmt.Errorf("erro ao deserializar reputação: %w", err)
	}
	if err := json.Unmarshal(ads, &snapshot.Ads); err != nil {
		return nil, fmt.Errorf("erro ao deserializar anúncios patrocinados: %w", err)
	}

	return snapshot, nil
}
