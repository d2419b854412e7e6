package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

const webhookEventsTable = "webhook_events"

//go:generate mockgen -source=webhook_event.go -destination=mocks/webhook_event_mocks.go -package=mocks
type WebhookEventRepository interface {
	SaveOrUpdate(ctx context.Context, event *domain.WebhookEvent) error
	Get(ctx context.Context, resource, topic string) (*domain.WebhookEvent, error)
}

type webhookEventRepository struct {
	conn *postgres.Connection
}

func NewWebhookEventRepository(conn *postgres.Connection) WebhookEventRepository {
	return &webhookEventRepository{
		conn: conn,
	}
}

// SaveOrUpdate registra o processamento; reentregas incrementam attempts
func (r *webhookEventRepository) SaveOrUpdate(ctx context.Context, event *domain.WebhookEvent) error {
	query, args, err := squirrel.
		Insert(webhookEventsTable).
		Columns("resource", "topic", "user_id", "status", "error", "attempts", "processed_at").
		Values(event.Resource, event.Topic, event.UserID, string(event.Status), event.Error, event.Attempts, event.ProcessedAt).
		Suffix(`ON CONFLICT (resource, topic) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			status = EXCLUDED.status,
			error = EXCLUDED.error,
			attempts = webhook_events.attempts + 1,
			processed_at = EXCLUDED.processed_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError(err)
	}

	return nil
}

func (r *webhookEventRepository) Get(ctx context.Context, resource, topic string) (*domain.WebhookEvent, error) {
	query, args, err := squirrel.
		Select("resource", "topic", "user_id", "status", "error", "attempts", "processed_at").
		From(webhookEventsTable).
		Where(squirrel.Eq{"resource": resource, "topic": topic}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	event := &domain.WebhookEvent{}
	var status string
	var errMsg sql.NullString

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&event.Resource,
		&event.Topic,
		&event.UserID,
		&status,
		&errMsg,
		&event.Attempts,
		&event.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err)
	}

	event.Status = domain.WebhookStatus(status)
	if errMsg.Valid {
		event.Error = &errMsg.String
	}

	return event, nil
}
