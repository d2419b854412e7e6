//go:build integration

package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-sync-api/internal/config"
)

func TestApplyMigrationsAndSeed(t *testing.T) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("marketplace_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn, err := postgres.NewConnection(ctx, config.Database{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	migrations := os.DirFS("../../migrations")

	applied, err := applyMigrations(ctx, conn, migrations)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	applied, err = applyMigrations(ctx, conn, migrations)
	require.NoError(t, err)
	assert.Equal(t, 0, applied, "migrações já aplicadas não rodam de novo")

	repo := repository.NewAccountRepository(conn)
	seeds := []SeedAccount{{
		ExternalUserID: "123456",
		Nickname:       "LOJA TESTE",
		AccessToken:    "APP-1",
		RefreshToken:   "TG-1",
		ExpiresAt:      time.Now().Add(6 * time.Hour).UTC(),
		IsPrimary:      true,
	}}

	require.NoError(t, seedAccounts(ctx, repo, seeds))

	first, err := repo.GetByExternalUserID(ctx, "123456")
	require.NoError(t, err)
	require.NotNil(t, first)

	seeds[0].RefreshToken = "TG-2"
	require.NoError(t, seedAccounts(ctx, repo, seeds))

	second, err := repo.GetByExternalUserID(ctx, "123456")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "TG-2", second.RefreshToken)
}
