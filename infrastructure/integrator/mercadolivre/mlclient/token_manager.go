package mlclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

const DefaultRefreshSkew = time.Hour

// TokenStore persiste o novo trio de credenciais da conta
type TokenStore interface {
	UpdateTokens(ctx context.Context, accountID, accessToken, refreshToken string, expiresAt time.Time) error
	MarkReauthorizationRequired(ctx context.Context, accountID string) error
}

// TokenManager garante um access token válido por conta antes de qualquer chamada ao marketplace
type TokenManager struct {
	client Client
	store  TokenStore
	skew   time.Duration
	now    func() time.Time

	mu       sync.Mutex
	locks    map[string]*sync.Mutex
	lastSeen map[string]domain.TokenGrant
}

func NewTokenManager(client Client, store TokenStore, skew time.Duration) *TokenManager {
	if skew <= 0 {
		skew = DefaultRefreshSkew
	}

	return &TokenManager{
		client:   client,
		store:    store,
		skew:     skew,
		now:      time.Now,
		locks:    make(map[string]*sync.Mutex),
		lastSeen: make(map[string]domain.TokenGrant),
	}
}

func (tm *TokenManager) accountLock(accountID string) *sync.Mutex {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	lock, ok := tm.locks[accountID]
	if !ok {
		lock = &sync.Mutex{}
		tm.locks[accountID] = lock
	}
	return lock
}

// applyLatestGrant atualiza a conta com o token renovado por outra chamada (refresh tokens são de uso único)
func (tm *TokenManager) applyLatestGrant(account *domain.MarketplaceAccount) {
	tm.mu.Lock()
	grant, ok := tm.lastSeen[account.ID]
	tm.mu.Unlock()

	if ok && grant.ExpiresAt.After(account.ExpiresAt) {
		account.AccessToken = grant.AccessToken
		account.RefreshToken = grant.RefreshToken
		account.ExpiresAt = grant.ExpiresAt
	}
}

// EnsureValidToken renova o token quando now >= expires_at - skew e persiste antes de retornar
func (tm *TokenManager) EnsureValidToken(ctx context.Context, account *domain.MarketplaceAccount) (string, error) {
	lock := tm.accountLock(account.ID)
	lock.Lock()
	defer lock.Unlock()

	tm.applyLatestGrant(account)

	if account.NeedsReauthorization {
		return "", domain.NewAuthError(account.ID, errors.New("conta marcada para reautorização"))
	}

	now := tm.now()
	if !account.TokenExpiresWithin(now, tm.skew) {
		return account.AccessToken, nil
	}

	logger := logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"expires_at": account.ExpiresAt.Format(time.RFC3339),
	})

	if account.RefreshToken == "" {
		return "", tm.reject(ctx, account, errors.New("conta sem refresh token"))
	}

	logger.Info("Renovando access token do Mercado Livre")

	resp, err := tm.client.RefreshToken(ctx, account.RefreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidGrant) || errors.Is(err, domain.ErrUnauthorized) {
			return "", tm.reject(ctx, account, err)
		}

		// Falha transitória: enquanto o token atual não expirou ele ainda pode ser usado
		if now.Before(account.ExpiresAt) && account.AccessToken != "" {
			logger.WithError(err).Warn("Falha transitória ao renovar token, usando token atual")
			return account.AccessToken, nil
		}

		return "", fmt.Errorf("erro ao renovar token da conta %s: %w", account.ID, err)
	}

	grant := domain.TokenGrant{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    CalculateTokenExpiration(now, resp.ExpiresIn),
	}
	if grant.RefreshToken == "" {
		grant.RefreshToken = account.RefreshToken
	}

	if err := tm.store.UpdateTokens(ctx, account.ID, grant.AccessToken, grant.RefreshToken, grant.ExpiresAt); err != nil {
		return "", fmt.Errorf("erro ao persistir token renovado da conta %s: %w", account.ID, err)
	}

	tm.mu.Lock()
	tm.lastSeen[account.ID] = grant
	tm.mu.Unlock()

	account.AccessToken = grant.AccessToken
	account.RefreshToken = grant.RefreshToken
	account.ExpiresAt = grant.ExpiresAt

	logger.WithField("new_expires_at", grant.ExpiresAt.Format(time.RFC3339)).Info("Token renovado com sucesso")

	return grant.AccessToken, nil
}

func (tm *TokenManager) reject(ctx context.Context, account *domain.MarketplaceAccount, cause error) error {
	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
	}).WithError(cause).Error("Refresh token rejeitado, conta precisa ser reconectada")

	account.NeedsReauthorization = true
	if err := tm.store.MarkReauthorizationRequired(ctx, account.ID); err != nil {
		logrus.WithError(err).WithField("account_id", account.ID).Error("Erro ao marcar conta para reautorização")
	}

	return domain.NewAuthError(account.ID, cause)
}

// CalculateTokenExpiration converte expires_in (segundos) em instante absoluto
func CalculateTokenExpiration(now time.Time, expiresIn int) time.Time {
	if expiresIn <= 0 {
		expiresIn = 6 * 60 * 60
	}
	return now.Add(time.Duration(expiresIn) * time.Second)
}
