package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

const stockTable = "stock_records"

//go:generate mockgen -source=stock.go -destination=mocks/stock_mocks.go -package=mocks
type StockRepository interface {
	SaveOrUpdate(ctx context.Context, record *domain.StockRecord) error
	CountAvailableSince(ctx context.Context, accountID string, since time.Time) (int, error)
}

type stockRepository struct {
	conn *postgres.Connection
}

func NewStockRepository(conn *postgres.Connection) StockRepository {
	return &stockRepository{
		conn: conn,
	}
}

func (r *stockRepository) SaveOrUpdate(ctx context.Context, record *domain.StockRecord) error {
	query, args, err := squirrel.
		Insert(stockTable).
		Columns(
			"account_id",
			"inventory_id",
			"external_item_id",
			"available_units",
			"reserved_units",
			"inbound_units",
			"damaged_units",
			"lost_units",
			"stock_status",
			"synced_at",
		).
		Values(
			record.AccountID,
			record.InventoryID,
			record.ExternalItemID,
			record.AvailableUnits,
			record.ReservedUnits,
			record.InboundUnits,
			record.DamagedUnits,
			record.LostUnits,
			string(record.StockStatus),
			record.SyncedAt,
		).
		Suffix(`ON CONFLICT (account_id, inventory_id) DO UPDATE SET
			external_item_id = EXCLUDED.external_item_id,
			available_units = EXCLUDED.available_units,
			reserved_units = EXCLUDED.reserved_units,
			inbound_units = EXCLUDED.inbound_units,
			damaged_units = EXCLUDED.damaged_units,
			lost_units = EXCLUDED.lost_units,
			stock_status = EXCLUDED.stock_status,
			synced_at = EXCLUDED.synced_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return &domain.PersistenceError{Resource: domain.ResourceStock, Key: record.InventoryID, Err: wrapDBError(err)}
	}

	return nil
}

// CountAvailableSince conta inventários FULL com unidades disponíveis sincronizados a partir de since
func (r *stockRepository) CountAvailableSince(ctx context.Context, accountID string, since time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(stockTable).
		Where(squirrel.Eq{"account_id": accountID}).
		Where(squirrel.Gt{"available_units": 0}).
		Where(squirrel.GtOrEq{"synced_at": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, wrapDBError(err)
	}

	return count, nil
}
