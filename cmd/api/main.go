package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre/mlclient"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/lock"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/publisher"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-sync-api/internal/api"
	"github.com/vfg2006/marketplace-sync-api/internal/api/handler"
	"github.com/vfg2006/marketplace-sync-api/internal/config"
	"github.com/vfg2006/marketplace-sync-api/internal/scheduler"
	"github.com/vfg2006/marketplace-sync-api/internal/usecases/aggregating"
	"github.com/vfg2006/marketplace-sync-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketplace-sync-api/internal/usecases/processing"
	"github.com/vfg2006/marketplace-sync-api/internal/usecases/syncing"
	"github.com/vfg2006/marketplace-sync-api/internal/usecases/tracking"
	"github.com/vfg2006/marketplace-sync-api/pkg/log"
	"github.com/vfg2006/marketplace-sync-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.Environment, cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	listingRepo := repository.NewListingRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	stockRepo := repository.NewStockRepository(pgConn)
	metricsRepo := repository.NewMetricsRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	milestoneRepo := repository.NewMilestoneRepository(pgConn)
	webhookEventRepo := repository.NewWebhookEventRepository(pgConn)

	recorder := metrics.NewRecorder()

	mlClient := mlclient.NewClient(cfg)
	tokenManager := mlclient.NewTokenManager(mlClient, accountRepo, cfg.MarketplaceSync.TokenRefreshSkew())
	integrator := mercadolivre.NewMercadoLivreIntegrator(mlClient)

	stockSyncer := syncing.NewStockSyncer(integrator, stockRepo)

	orchestrator := syncing.NewOrchestrator(cfg.MarketplaceSync, syncing.Dependencies{
		Tokens:            tokenManager,
		Users:             syncing.NewUserInfoSyncer(integrator),
		Products:          syncing.NewProductSyncer(cfg.MarketplaceSync, integrator, listingRepo, stockSyncer),
		Orders:            syncing.NewOrderSyncer(cfg.MarketplaceSync, integrator, orderRepo),
		Ads:               syncing.NewAdsSyncer(cfg.MarketplaceSync, integrator, campaignRepo),
		Recovery:          syncing.NewRecoveryChecker(integrator),
		Aggregator:        aggregating.NewAggregator(),
		Milestones:        tracking.NewValidator(milestoneRepo, stockRepo, cfg.MarketplaceSync.Lookback()),
		AccountRepository: accountRepo,
		ListingRepository: listingRepo,
		OrderRepository:   orderRepo,
		MetricsRepository: metricsRepo,
		Recorder:          recorder,
	})

	locker := accountLocker(ctx, cfg.Redis)

	pub := syncPublisher(cfg.RabbitMQ)
	defer pub.Close()

	syncService := scheduler.NewMarketplaceSyncService(accountRepo, orchestrator, locker, pub, cfg)
	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do marketplace")
	} else {
		logrus.Info("Agendador de sincronização do marketplace iniciado com sucesso")
	}

	processor := processing.NewProcessor(cfg.Webhook, processing.Dependencies{
		Integrator:             integrator,
		Tokens:                 tokenManager,
		Syncer:                 orchestrator,
		Locker:                 locker,
		Stock:                  stockSyncer,
		AccountRepository:      accountRepo,
		ListingRepository:      listingRepo,
		OrderRepository:        orderRepo,
		WebhookEventRepository: webhookEventRepo,
		Recorder:               recorder,
	})
	processor.Start()

	server, err := api.New(cfg, api.Dependencies{
		Authenticator:  authenticating.NewService(cfg),
		Database:       pgConn,
		MetricsHandler: recorder.Handler(),
		Notifications:  processor,
		Accounts: handler.AccountServices{
			Syncer:              syncService,
			AccountRepository:   accountRepo,
			MetricsRepository:   metricsRepo,
			MilestoneRepository: milestoneRepo,
		},
		CronJobs: map[string]handler.CronService{
			handler.CronJobTypeMarketplaceSync: syncService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := processor.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("Notificações pendentes não foram processadas antes do desligamento")
	}
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// accountLocker usa Redis quando configurado para que várias instâncias compartilhem o lock
func accountLocker(ctx context.Context, cfg config.Redis) lock.AccountLocker {
	if cfg.URL == "" {
		logrus.Info("REDIS_URL não configurado, usando lock de conta em memória")
		return lock.NewMemoryLocker()
	}

	locker, err := lock.NewRedisLocker(ctx, cfg.URL, cfg.LockTTL())
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar no Redis")
	}

	logrus.Info("Lock de conta distribuído via Redis")
	return locker
}

func syncPublisher(cfg config.RabbitMQ) publisher.Publisher {
	if cfg.URL == "" {
		logrus.Info("RABBITMQ_URL não configurado, eventos de sincronização não serão publicados")
		return publisher.NewNoop()
	}

	pub, err := publisher.NewRabbitMQ(cfg)
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar no RabbitMQ, eventos de sincronização não serão publicados")
		return publisher.NewNoop()
	}

	return pub
}
