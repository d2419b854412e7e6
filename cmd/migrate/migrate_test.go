package main

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestLoadMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"002_add_index.sql":                 {Data: []byte("CREATE INDEX x ON orders (status);")},
		"001_create_marketplace_tables.sql": {Data: []byte("CREATE TABLE a (id TEXT);")},
		"README.md":                         {Data: []byte("docs")},
	}

	migrations, err := loadMigrations(fsys)
	require.NoError(t, err)

	require.Len(t, migrations, 2)
	assert.Equal(t, "001_create_marketplace_tables", migrations[0].Version)
	assert.Equal(t, "002_add_index", migrations[1].Version)

	pending := pendingMigrations(migrations, map[string]bool{"001_create_marketplace_tables": true})
	require.Len(t, pending, 1)
	assert.Equal(t, "002_add_index", pending[0].Version)
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		validate func(t *testing.T, accounts []SeedAccount, err error)
	}{
		{
			name:    "seed válido",
			content: `[{"external_user_id":"123","nickname":"LOJA","access_token":"APP-1","refresh_token":"TG-1","expires_at":"2024-05-10T18:00:00Z","is_primary":true}]`,
			validate: func(t *testing.T, accounts []SeedAccount, err error) {
				require.NoError(t, err)
				require.Len(t, accounts, 1)
				assert.True(t, accounts[0].IsPrimary)
				assert.Equal(t, time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC), accounts[0].ExpiresAt)
			},
		},
		{
			name:    "conta sem refresh token",
			content: `[{"external_user_id":"123"}]`,
			validate: func(t *testing.T, _ []SeedAccount, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:    "json inválido",
			content: `{`,
			validate: func(t *testing.T, _ []SeedAccount, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts, err := parseSeed([]byte(tt.content))
			tt.validate(t, accounts, err)
		})
	}
}

func TestSeedAccounts(t *testing.T) {
	seeds := []SeedAccount{
		{ExternalUserID: "123", Nickname: "NOVA", RefreshToken: "TG-1"},
		{ExternalUserID: "456", Nickname: "EXISTENTE", RefreshToken: "TG-2"},
	}

	t.Run("reaproveita o id de contas existentes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAccountRepository(ctrl)

		repo.EXPECT().GetByExternalUserID(gomock.Any(), "123").Return(nil, nil)
		repo.EXPECT().GetByExternalUserID(gomock.Any(), "456").
			Return(&domain.MarketplaceAccount{ID: "acc-456", AdsEnabled: true}, nil)

		saved := make(map[string]*domain.MarketplaceAccount)
		repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, account *domain.MarketplaceAccount) error {
				saved[account.ExternalUserID] = account
				return nil
			}).Times(2)

		require.NoError(t, seedAccounts(context.Background(), repo, seeds))

		assert.Len(t, saved["123"].ID, 12)
		assert.True(t, saved["123"].IsActive)
		assert.Equal(t, "acc-456", saved["456"].ID)
		assert.True(t, saved["456"].AdsEnabled)
	})

	t.Run("erro ao salvar interrompe a carga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAccountRepository(ctrl)

		repo.EXPECT().GetByExternalUserID(gomock.Any(), "123").Return(nil, nil)
		repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		assert.Error(t, seedAccounts(context.Background(), repo, seeds))
	})
}
