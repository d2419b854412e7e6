package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

const accountsTable = "marketplace_accounts"

var accountColumns = []string{
	"id",
	"external_user_id",
	"nickname",
	"access_token",
	"refresh_token",
	"expires_at",
	"is_active",
	"is_primary",
	"needs_reauthorization",
	"ads_enabled",
	"recovery_program_enabled",
	"last_sync_at",
}

//go:generate mockgen -source=account.go -destination=mocks/account_mocks.go -package=mocks
type AccountRepository interface {
	GetByID(ctx context.Context, accountID string) (*domain.MarketplaceAccount, error)
	GetByExternalUserID(ctx context.Context, externalUserID string) (*domain.MarketplaceAccount, error)
	ListActive(ctx context.Context) ([]*domain.MarketplaceAccount, error)
	SaveOrUpdate(ctx context.Context, account *domain.MarketplaceAccount) error
	UpdateTokens(ctx context.Context, accountID, accessToken, refreshToken string, expiresAt time.Time) error
	MarkReauthorizationRequired(ctx context.Context, accountID string) error
	UpdateSyncState(ctx context.Context, state domain.AccountSyncState) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetByID(ctx context.Context, accountID string) (*domain.MarketplaceAccount, error) {
	return a.getAccount(ctx, squirrel.Eq{"id": accountID})
}

func (a *accountRepository) GetByExternalUserID(ctx context.Context, externalUserID string) (*domain.MarketplaceAccount, error) {
	return a.getAccount(ctx, squirrel.Eq{"external_user_id": externalUserID})
}

func (a *accountRepository) getAccount(ctx context.Context, where squirrel.Sqlizer) (*domain.MarketplaceAccount, error) {
	query, args, err := squirrel.
		Select(accountColumns...).
		From(accountsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	acc, err := deserializeAccount(a.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err)
	}

	return acc, nil
}

// ListActive retorna contas ativas, a principal primeiro
func (a *accountRepository) ListActive(ctx context.Context) ([]*domain.MarketplaceAccount, error) {
	query, args, err := squirrel.
		Select(accountColumns...).
		From(accountsTable).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("is_primary DESC", "id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := a.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	accounts := make([]*domain.MarketplaceAccount, 0)
	for rows.Next() {
		acc, err := deserializeAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler conta: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (a *accountRepository) SaveOrUpdate(ctx context.Context, account *domain.MarketplaceAccount) error {
	query, args, err := squirrel.
		Insert(accountsTable).
		Columns(accountColumns...).
		Values(
			account.ID,
			account.ExternalUserID,
			account.Nickname,
			account.AccessToken,
			account.RefreshToken,
			account.ExpiresAt,
			account.IsActive,
			account.IsPrimary,
			account.NeedsReauthorization,
			account.AdsEnabled,
			account.RecoveryProgramEnabled,
			account.LastSyncAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			nickname = EXCLUDED.nickname,
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at,
			is_active = EXCLUDED.is_active,
			is_primary = EXCLUDED.is_primary,
			needs_reauthorization = EXCLUDED.needs_reauthorization,
			updated_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := a.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError(err)
	}

	return nil
}

// UpdateTokens grava o novo trio de credenciais e limpa a flag de reautorização
func (a *accountRepository) UpdateTokens(ctx context.Context, accountID, accessToken, refreshToken string, expiresAt time.Time) error {
	return a.update(ctx, accountID, map[string]any{
		"access_token":          accessToken,
		"refresh_token":         refreshToken,
		"expires_at":            expiresAt,
		"needs_reauthorization": false,
	})
}

func (a *accountRepository) MarkReauthorizationRequired(ctx context.Context, accountID string) error {
	return a.update(ctx, accountID, map[string]any{
		"needs_reauthorization": true,
	})
}

func (a *accountRepository) UpdateSyncState(ctx context.Context, state domain.AccountSyncState) error {
	return a.update(ctx, state.AccountID, map[string]any{
		"last_sync_at":             state.LastSyncAt,
		"ads_enabled":              state.AdsEnabled,
		"recovery_program_enabled": state.RecoveryProgramEnabled,
	})
}

func (a *accountRepository) update(ctx context.Context, accountID string, fields map[string]any) error {
	query, args, err := squirrel.
		Update(accountsTable).
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := a.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapDBError(err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountID)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func deserializeAccount(row rowScanner) (*domain.MarketplaceAccount, error) {
	acc := &domain.MarketplaceAccount{}
	var lastSyncAt sql.NullTime

	if err := row.Scan(
		&acc.ID,
		&acc.ExternalUserID,
		&acc.Nickname,
		&acc.AccessToken,
		&acc.RefreshToken,
		&acc.ExpiresAt,
		&acc.IsActive,
		&acc.IsPrimary,
		&acc.NeedsReauthorization,
		&acc.AdsEnabled,
		&acc.RecoveryProgramEnabled,
		&lastSyncAt,
	); err != nil {
		return nil, err
	}

	if lastSyncAt.Valid {
		acc.LastSyncAt = &lastSyncAt.Time
	}

	return acc, nil
}
