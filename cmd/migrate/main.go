package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-sync-api/internal/config"
	"github.com/vfg2006/marketplace-sync-api/pkg/log"
)

func main() {
	dir := flag.String("dir", "migrations", "diretório com os arquivos .sql")
	seedFile := flag.String("seed", "", "arquivo JSON com contas a carregar após as migrações")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.Environment, cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	applied, err := applyMigrations(ctx, conn, os.DirFS(*dir))
	if err != nil {
		logrus.WithError(err).Fatal("Migração interrompida")
	}

	logrus.WithFields(logrus.Fields{
		"applied":  applied,
		"duration": time.Since(startTime).String(),
	}).Info("Migrações concluídas")

	if *seedFile == "" {
		return
	}

	accounts, err := readSeedFile(*seedFile)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler seed")
	}

	if err := seedAccounts(ctx, repository.NewAccountRepository(conn), accounts); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar contas")
	}

	logrus.WithField("accounts", len(accounts)).Info("Carga inicial concluída")
}
