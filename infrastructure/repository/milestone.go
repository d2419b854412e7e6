package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

const milestonesTable = "milestones"

//go:generate mockgen -source=milestone.go -destination=mocks/milestone_mocks.go -package=mocks
type MilestoneRepository interface {
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Milestone, error)
	SaveAll(ctx context.Context, milestones []*domain.Milestone) error
}

type milestoneRepository struct {
	conn *postgres.Connection
}

func NewMilestoneRepository(conn *postgres.Connection) MilestoneRepository {
	return &milestoneRepository{
		conn: conn,
	}
}

func (r *milestoneRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Milestone, error) {
	query, args, err := squirrel.
		Select("id", "account_id", "key", "phase", "title", "status", "progress", "completed_at", "updated_at").
		From(milestonesTable).
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("phase", "key").
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

	milestones := make([]*domain.Milestone, 0)
	for rows.Next() {
		m := &domain.Milestone{}
		var key, status string
		var completedAt sql.NullTime

		if err := rows.Scan(
			&m.ID,
			&m.AccountID,
			&key,
			&m.Phase,
			&m.Title,
			&status,
			&m.Progress,
			&completedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler marco: %w", err)
		}

		m.Key = domain.MilestoneKey(key)
		m.Status = domain.MilestoneStatus(status)
		if completedAt.Valid {
			m.CompletedAt = &completedAt.Time
		}
		milestones = append(milestones, m)
	}

	return milestones, rows.Err()
}

// SaveAll grava os marcos alterados numa única transação
func (r *milestoneRepository) SaveAll(ctx context.Context, milestones []*domain.Milestone) error {
	if len(milestones) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		for _, m := range milestones {
			query, args, err := squirrel.
				Insert(milestonesTable).
				Columns("id", "account_id", "key", "phase", "title", "status", "progress", "completed_at", "updated_at").
				Values(m.ID, m.AccountID, string(m.Key), m.Phase, m.Title, string(m.Status), m.Progress, m.CompletedAt, m.UpdatedAt).
				Suffix(`ON CONFLICT (account_id, key) DO UPDATE SET
					status = EXCLUDED.status,
					progress = EXCLUDED.progress,
					completed_at = COALESCE(milestones.completed_at, EXCLUDED.completed_at),
					updated_at = EXCLUDED.updated_at
				WHERE milestones.status <> 'completed'`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := q.ExecContext(ctx, query, args...); err != nil {
				return &domain.PersistenceError{Resource: domain.ResourceMilestones, Key: string(m.Key), Err: wrapDBError(err)}
			}
		}
		return nil
	})
}
