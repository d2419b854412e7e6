package domain

import "time"

type MarketplaceAccount struct {
	ID                     string     `json:"id"`
	ExternalUserID         string     `json:"external_user_id"`
	Nickname               string     `json:"nickname"`
	AccessToken            string     `json:"-"`
	RefreshToken           string     `json:"-"`
	ExpiresAt              time.Time  `json:"expires_at"`
	IsActive               bool       `json:"is_active"`
	IsPrimary              bool       `json:"is_primary"`
	NeedsReauthorization   bool       `json:"needs_reauthorization"`
	AdsEnabled             bool       `json:"ads_enabled"`
	RecoveryProgramEnabled bool       `json:"recovery_program_enabled"`
	LastSyncAt             *time.Time `json:"last_sync_at"`
}

// TokenExpiresWithin indica se o access token expira dentro da janela informada
func (a *MarketplaceAccount) TokenExpiresWithin(now time.Time, skew time.Duration) bool {
	return !now.Before(a.ExpiresAt.Add(-skew))
}

// AccountSyncState é o que o orquestrador grava na conta ao final de uma execução
type AccountSyncState struct {
	AccountID              string
	LastSyncAt             time.Time
	AdsEnabled             bool
	RecoveryProgramEnabled bool
}

type TokenGrant struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}
