package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/lock"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/publisher"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-sync-api/internal/config"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
	"github.com/vfg2006/marketplace-sync-api/internal/usecases/syncing"
)

const publishTimeout = 10 * time.Second

// MarketplaceSyncConfig representa a configuração do agendador de sincronização do marketplace
type MarketplaceSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	RunTimeout        time.Duration
	SyncEnabled       bool
}

// MarketplaceSyncService agenda e executa a sincronização de todas as contas ativas
type MarketplaceSyncService struct {
	scheduler   *gocron.Scheduler
	config      MarketplaceSyncConfig
	accountRepo repository.AccountRepository
	syncer      syncing.Syncer
	locker      lock.AccountLocker
	publisher   publisher.Publisher

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncAccounts    int
	lastSyncFailures    int
}

func NewMarketplaceSyncService(
	accountRepo repository.AccountRepository,
	syncer syncing.Syncer,
	locker lock.AccountLocker,
	pub publisher.Publisher,
	appConfig *config.Config,
) *MarketplaceSyncService {
	syncConfig := MarketplaceSyncConfig{
		CronSchedule:      appConfig.MarketplaceSync.CronSchedule,
		MaxConcurrentJobs: max(appConfig.MarketplaceSync.MaxConcurrentJobs, 1),
		RunTimeout:        appConfig.MarketplaceSync.RunTimeout(),
		SyncEnabled:       appConfig.MarketplaceSync.Enabled,
	}
	if syncConfig.RunTimeout <= 0 {
		syncConfig.RunTimeout = 10 * time.Minute
	}
	if pub == nil {
		pub = publisher.NewNoop()
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"run_timeout":         syncConfig.RunTimeout.String(),
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização do marketplace carregada")

	return &MarketplaceSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      syncConfig,
		accountRepo: accountRepo,
		syncer:      syncer,
		locker:      locker,
		publisher:   pub,
	}
}

func (s *MarketplaceSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do marketplace desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização do marketplace")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do marketplace: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do marketplace")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccounts executa um ciclo completo; ciclos não se sobrepõem
func (s *MarketplaceSyncService) syncAllAccounts(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do marketplace já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	logrus.Info("Iniciando sincronização do marketplace para todas as contas ativas")

	accounts, err := s.accountRepo.ListActive(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar contas para sincronização do marketplace")
		return
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização do marketplace")
		return
	}

	failures := s.processAccounts(ctx, accounts)

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"accounts": len(accounts),
		"failures": failures,
	}).Info("Sincronização do marketplace concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncAccounts = len(accounts)
	s.lastSyncFailures = failures
	s.syncMutex.Unlock()
}

func (s *MarketplaceSyncService) processAccounts(ctx context.Context, accounts []*domain.MarketplaceAccount) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failures := 0

	for _, account := range accounts {
		if account.NeedsReauthorization {
			logrus.WithField("account_id", account.ID).Warn("Conta aguardando reautorização. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.MarketplaceAccount) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if _, err := s.SyncAccount(ctx, acc); err != nil {
				mu.Lock()
				failures++
				mu.Unlock()
			}
		}(account)
	}

	wg.Wait()
	return failures
}

// SyncAccount sincroniza uma conta sob o lock da conta e publica o resumo.
// Retorna lock.ErrAlreadyLocked quando outra sincronização da conta está em andamento.
func (s *MarketplaceSyncService) SyncAccount(ctx context.Context, account *domain.MarketplaceAccount) (*domain.SyncSummary, error) {
	logger := logrus.WithFields(logrus.Fields{
		"account_id":       account.ID,
		"external_user_id": account.ExternalUserID,
	})

	release, acquired, err := s.locker.TryLock(ctx, account.ID)
	if err != nil {
		logger.WithError(err).Error("Erro ao adquirir lock da conta")
		return nil, err
	}
	if !acquired {
		logger.Info("Sincronização da conta já em andamento, ignorando")
		return nil, lock.ErrAlreadyLocked
	}
	defer release()

	runCtx, cancel := context.WithTimeout(ctx, s.config.RunTimeout)
	defer cancel()

	summary, err := s.syncer.Run(runCtx, account)
	if err != nil {
		logger.WithError(err).Error("Erro na sincronização da conta")
	}

	if summary != nil {
		s.publish(summary)
	}

	return summary, err
}

func (s *MarketplaceSyncService) publish(summary *domain.SyncSummary) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := s.publisher.PublishSyncCompleted(ctx, summary); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id": summary.AccountID,
			"run_id":     summary.RunID,
		}).Error("Erro ao publicar resumo da sincronização")
	}
}

// TriggerManualSync dispara um ciclo fora do agendamento; retorna false se já houver um em andamento
func (s *MarketplaceSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Sincronização do marketplace já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual do marketplace")
	go s.syncAllAccounts(context.Background())
	return true
}

func (s *MarketplaceSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_run_timeout":       s.config.RunTimeout.String(),
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_accounts":     s.lastSyncAccounts,
		"last_sync_failures":     s.lastSyncFailures,
	}
}
