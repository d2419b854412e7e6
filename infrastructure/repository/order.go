package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

const ordersTable = "orders"

var orderColumns = []string{
	"account_id",
	"external_order_id",
	"status",
	"total_amount",
	"paid_amount",
	"currency_id",
	"buyer_id",
	"buyer_nickname",
	"date_created",
	"date_closed",
	"synced_at",
}

//go:generate mockgen -source=order.go -destination=mocks/order_mocks.go -package=mocks
type OrderRepository interface {
	SaveOrUpdate(ctx context.Context, order *domain.Order) error
	ListCreatedSince(ctx context.Context, accountID string, since time.Time) ([]*domain.Order, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

// SaveOrUpdate mantém valores de pedidos já pagos; só status e datas de fechamento são corrigidos
func (r *orderRepository) SaveOrUpdate(ctx context.Context, order *domain.Order) error {
	query, args, err := squirrel.
		Insert(ordersTable).
		Columns(orderColumns...).
		Values(
			order.AccountID,
			order.ExternalOrderID,
			string(order.Status),
			order.TotalAmount,
			order.PaidAmount,
			order.CurrencyID,
			order.BuyerID,
			order.BuyerNickname,
			order.DateCreated,
			order.DateClosed,
			order.SyncedAt,
		).
		Suffix(`ON CONFLICT (account_id, external_order_id) DO UPDATE SET
			status = EXCLUDED.status,
			total_amount = CASE WHEN orders.status = 'paid' THEN orders.total_amount ELSE EXCLUDED.total_amount END,
			paid_amount = CASE WHEN orders.status = 'paid' THEN orders.paid_amount ELSE EXCLUDED.paid_amount END,
			currency_id = EXCLUDED.currency_id,
			buyer_nickname = EXCLUDED.buyer_nickname,
			date_closed = COALESCE(EXCLUDED.date_closed, orders.date_closed),
			synced_at = EXCLUDED.synced_at,
			updated_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return &domain.PersistenceError{Resource: domain.ResourceOrders, Key: order.ExternalOrderID, Err: wrapDBError(err)}
	}

	return nil
}

func (r *orderRepository) ListCreatedSince(ctx context.Context, accountID string, since time.Time) ([]*domain.Order, error) {
	query, args, err := squirrel.
		Select(orderColumns...).
		From(ordersTable).
		Where(squirrel.Eq{"account_id": accountID}).
		Where(squirrel.GtOrEq{"date_created": since}).
		OrderBy("date_created").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		o := &domain.Order{}
		var status string
		var dateClosed sql.NullTime

		if err := rows.Scan(
			&o.AccountID,
			&o.ExternalOrderID,
			&status,
			&o.TotalAmount,
			&o.PaidAmount,
			&o.CurrencyID,
			&o.BuyerID,
			&o.BuyerNickname,
			&o.DateCreated,
			&dateClosed,
			&o.SyncedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler pedido: %w", err)
		}

		o.Status = domain.OrderStatus(status)
		if dateClosed.Valid {
			o.DateClosed = &dateClosed.Time
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}
