package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
	"github.com/vfg2006/marketplace-sync-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type migration struct {
	Version string
	SQL     string
}

// loadMigrations lê os arquivos .sql em ordem lexicográfica; o prefixo numérico define a ordem
func loadMigrations(fsys fs.FS) ([]migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("erro ao listar migrações: %w", err)
	}

	migrations := make([]migration, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".sql" {
			continue
		}

		content, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("erro ao ler %s: %w", entry.Name(), err)
		}

		migrations = append(migrations, migration{
			Version: strings.TrimSuffix(entry.Name(), ".sql"),
			SQL:     string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

func pendingMigrations(all []migration, applied map[string]bool) []migration {
	pending := make([]migration, 0, len(all))
	for _, m := range all {
		if !applied[m.Version] {
			pending = append(pending, m)
		}
	}
	return pending
}

func appliedVersions(ctx context.Context, conn postgres.Conn) (map[string]bool, error) {
	if _, err := conn.ExecContext(ctx, createMigrationsTable); err != nil {
		return nil, fmt.Errorf("erro ao criar schema_migrations: %w", err)
	}

	rows, err := conn.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

// applyMigrations executa cada migração pendente na própria transação
func applyMigrations(ctx context.Context, conn postgres.Conn, fsys fs.FS) (int, error) {
	all, err := loadMigrations(fsys)
	if err != nil {
		return 0, err
	}

	applied, err := appliedVersions(ctx, conn)
	if err != nil {
		return 0, err
	}

	pending := pendingMigrations(all, applied)
	for _, m := range pending {
		startTime := time.Now()

		err := conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
			if _, err := q.ExecContext(ctx, m.SQL); err != nil {
				return err
			}
			_, err := q.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", m.Version)
			return err
		})
		if err != nil {
			return 0, fmt.Errorf("erro ao aplicar migração %s: %w", m.Version, err)
		}

		logrus.WithFields(logrus.Fields{
			"version":  m.Version,
			"duration": time.Since(startTime).String(),
		}).Info("Migração aplicada")
	}

	return len(pending), nil
}

// SeedAccount é o formato do arquivo de carga inicial de contas conectadas
type SeedAccount struct {
	ExternalUserID string    `json:"external_user_id"`
	Nickname       string    `json:"nickname"`
	AccessToken    string    `json:"access_token"`
	RefreshToken   string    `json:"refresh_token"`
	ExpiresAt      time.Time `json:"expires_at"`
	IsPrimary      bool      `json:"is_primary"`
}

func parseSeed(content []byte) ([]SeedAccount, error) {
	var accounts []SeedAccount
	if err := json.Unmarshal(content, &accounts); err != nil {
		return nil, fmt.Errorf("arquivo de seed inválido: %w", err)
	}

	for i, acc := range accounts {
		if acc.ExternalUserID == "" || acc.RefreshToken == "" {
			return nil, fmt.Errorf("conta %d do seed sem external_user_id ou refresh_token", i)
		}
	}

	return accounts, nil
}

// seedAccounts cria ou atualiza as contas pelo external_user_id, preservando o id interno existente
func seedAccounts(ctx context.Context, repo repository.AccountRepository, accounts []SeedAccount) error {
	for _, seed := range accounts {
		existing, err := repo.GetByExternalUserID(ctx, seed.ExternalUserID)
		if err != nil {
			return err
		}

		account := &domain.MarketplaceAccount{
			ExternalUserID: seed.ExternalUserID,
			Nickname:       seed.Nickname,
			AccessToken:    seed.AccessToken,
			RefreshToken:   seed.RefreshToken,
			ExpiresAt:      seed.ExpiresAt,
			IsActive:       true,
			IsPrimary:      seed.IsPrimary,
		}

		if existing != nil {
			account.ID = existing.ID
			account.AdsEnabled = existing.AdsEnabled
			account.RecoveryProgramEnabled = existing.RecoveryProgramEnabled
			account.LastSyncAt = existing.LastSyncAt
		} else {
			id, err := utils.GenerateID()
			if err != nil {
				return err
			}
			account.ID = id
		}

		if err := repo.SaveOrUpdate(ctx, account); err != nil {
			return fmt.Errorf("erro ao salvar conta %s: %w", seed.ExternalUserID, err)
		}

		logrus.WithFields(logrus.Fields{
			"account_id":       account.ID,
			"external_user_id": account.ExternalUserID,
		}).Info("Conta carregada")
	}

	return nil
}

func readSeedFile(file string) ([]SeedAccount, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler %s: %w", file, err)
	}
	return parseSeed(content)
}
