package mlclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketplace-sync-api/internal/config"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

type fakeTokenStore struct {
	mu           sync.Mutex
	updates      []domain.TokenGrant
	reauthMarked []string
	updateErr    error
}

func (s *fakeTokenStore) UpdateTokens(_ context.Context, _ string, accessToken, refreshToken string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updates = append(s.updates, domain.TokenGrant{AccessToken: accessToken, RefreshToken: refreshToken, ExpiresAt: expiresAt})
	return nil
}

func (s *fakeTokenStore) MarkReauthorizationRequired(_ context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reauthMarked = append(s.reauthMarked, accountID)
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (Client, *int32) {
	t.Helper()

	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{MercadoLivre: config.MercadoLivre{
		BaseURL:      server.URL,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	}}

	return NewClient(cfg), &hits
}

func refreshOK(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	if r.URL.Path != "/oauth/token" || r.Form.Get("grant_type") != "refresh_token" || r.Form.Get("refresh_token") != "refresh-old" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_request"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"access_token":"access-new","refresh_token":"refresh-new","expires_in":21600,"token_type":"Bearer","user_id":123}`))
}

func TestTokenManager_EnsureValidToken(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("token longe de expirar não é renovado", func(t *testing.T) {
		client, hits := newTestClient(t, refreshOK)
		store := &fakeTokenStore{}
		tm := NewTokenManager(client, store, time.Hour)
		tm.now = func() time.Time { return now }

		account := &domain.MarketplaceAccount{ID: "acc-1", AccessToken: "access-old", RefreshToken: "refresh-old", ExpiresAt: now.Add(61 * time.Minute)}

		token, err := tm.EnsureValidToken(context.Background(), account)

		require.NoError(t, err)
		assert.Equal(t, "access-old", token)
		assert.Equal(t, int32(0), atomic.LoadInt32(hits))
		assert.Empty(t, store.updates)
	})

	t.Run("token dentro da janela de 1h é renovado uma única vez", func(t *testing.T) {
		client, hits := newTestClient(t, refreshOK)
		store := &fakeTokenStore{}
		tm := NewTokenManager(client, store, time.Hour)
		tm.now = func() time.Time { return now }

		account := &domain.MarketplaceAccount{ID: "acc-1", AccessToken: "access-old", RefreshToken: "refresh-old", ExpiresAt: now.Add(time.Hour)}

		token, err := tm.EnsureValidToken(context.Background(), account)
		require.NoError(t, err)
		assert.Equal(t, "access-new", token)

		token, err = tm.EnsureValidToken(context.Background(), account)
		require.NoError(t, err)
		assert.Equal(t, "access-new", token)

		assert.Equal(t, int32(1), atomic.LoadInt32(hits))
		require.Len(t, store.updates, 1)
		assert.Equal(t, "refresh-new", store.updates[0].RefreshToken)
		assert.Equal(t, now.Add(6*time.Hour), store.updates[0].ExpiresAt)
		assert.Equal(t, now.Add(6*time.Hour), account.ExpiresAt)
	})

	t.Run("outra instância da mesma conta reaproveita o token renovado", func(t *testing.T) {
		client, hits := newTestClient(t, refreshOK)
		store := &fakeTokenStore{}
		tm := NewTokenManager(client, store, time.Hour)
		tm.now = func() time.Time { return now }

		first := &domain.MarketplaceAccount{ID: "acc-1", AccessToken: "access-old", RefreshToken: "refresh-old", ExpiresAt: now.Add(-time.Minute)}
		stale := *first

		_, err := tm.EnsureValidToken(context.Background(), first)
		require.NoError(t, err)

		token, err := tm.EnsureValidToken(context.Background(), &stale)
		require.NoError(t, err)

		assert.Equal(t, "access-new", token)
		assert.Equal(t, int32(1), atomic.LoadInt32(hits))
	})

	t.Run("refresh rejeitado retorna AuthError e marca a conta", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"Error validating grant","error":"invalid_grant","status":400}`))
		})
		store := &fakeTokenStore{}
		tm := NewTokenManager(client, store, time.Hour)
		tm.now = func() time.Time { return now }

		account := &domain.MarketplaceAccount{ID: "acc-2", AccessToken: "access-old", RefreshToken: "refresh-old", ExpiresAt: now.Add(10 * time.Minute)}

		token, err := tm.EnsureValidToken(context.Background(), account)

		assert.Empty(t, token)
		assert.True(t, domain.IsAuthError(err))
		assert.ErrorIs(t, err, domain.ErrInvalidGrant)
		assert.Equal(t, []string{"acc-2"}, store.reauthMarked)
		assert.True(t, account.NeedsReauthorization)
	})

	t.Run("falha transitória com token ainda válido mantém o token atual", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		store := &fakeTokenStore{}
		tm := NewTokenManager(client, store, time.Hour)
		tm.now = func() time.Time { return now }

		account := &domain.MarketplaceAccount{ID: "acc-3", AccessToken: "access-old", RefreshToken: "refresh-old", ExpiresAt: now.Add(30 * time.Minute)}

		token, err := tm.EnsureValidToken(context.Background(), account)

		require.NoError(t, err)
		assert.Equal(t, "access-old", token)
		assert.Empty(t, store.reauthMarked)
	})

	t.Run("falha transitória com token expirado retorna erro não fatal", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		tm := NewTokenManager(client, &fakeTokenStore{}, time.Hour)
		tm.now = func() time.Time { return now }

		account := &domain.MarketplaceAccount{ID: "acc-4", AccessToken: "access-old", RefreshToken: "refresh-old", ExpiresAt: now.Add(-time.Minute)}

		_, err := tm.EnsureValidToken(context.Background(), account)

		require.Error(t, err)
		assert.False(t, domain.IsAuthError(err))
		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	})

	t.Run("conta já marcada para reautorização não chama o marketplace", func(t *testing.T) {
		client, hits := newTestClient(t, refreshOK)
		tm := NewTokenManager(client, &fakeTokenStore{}, time.Hour)
		tm.now = func() time.Time { return now }

		account := &domain.MarketplaceAccount{ID: "acc-5", RefreshToken: "refresh-old", ExpiresAt: now.Add(-time.Hour), NeedsReauthorization: true}

		_, err := tm.EnsureValidToken(context.Background(), account)

		assert.True(t, domain.IsAuthError(err))
		assert.Equal(t, int32(0), atomic.LoadInt32(hits))
	})
}

func TestCalculateTokenExpiration(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(6*time.Hour), CalculateTokenExpiration(now, 21600))
	assert.Equal(t, now.Add(6*time.Hour), CalculateTokenExpiration(now, 0))
}
