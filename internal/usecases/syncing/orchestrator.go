package syncing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-sync-api/internal/config"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
	"github.com/vfg2006/marketplace-sync-api/internal/usecases/aggregating"
	"github.com/vfg2006/marketplace-sync-api/pkg/metrics"
	"github.com/vfg2006/marketplace-sync-api/pkg/utils"
)

type Dependencies struct {
	Tokens            TokenProvider
	Users             *UserInfoSyncer
	Products          *ProductSyncer
	Orders            *OrderSyncer
	Ads               *AdsSyncer
	Recovery          *RecoveryChecker
	Aggregator        *aggregating.Aggregator
	Milestones        MilestoneValidator
	AccountRepository repository.AccountRepository
	ListingRepository repository.ListingRepository
	OrderRepository   repository.OrderRepository
	MetricsRepository repository.MetricsRepository
	Recorder          *metrics.Recorder
}

// Orchestrator executa a sincronização completa de uma conta. Chamadas concorrentes
// para a mesma conta devem ser serializadas pelo chamador
type Orchestrator struct {
	Dependencies
	lookback time.Duration
	now      func() time.Time
}

func NewOrchestrator(cfg config.MarketplaceSync, deps Dependencies) *Orchestrator {
	lookback := cfg.Lookback()
	if lookback <= 0 {
		lookback = 30 * 24 * time.Hour
	}

	return &Orchestrator{
		Dependencies: deps,
		lookback:     lookback,
		now:          time.Now,
	}
}

// Run: token (aborta) → usuário/anúncios/pedidos em paralelo → métricas (do banco) → ads → recuperação → marcos → last_sync_at.
// Se ctx for cancelado, retorna o resumo parcial junto com o erro do contexto
func (o *Orchestrator) Run(ctx context.Context, account *domain.MarketplaceAccount) (*domain.SyncSummary, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		runID = fmt.Sprintf("%d", o.now().UnixNano())
	}

	summary := domain.NewSyncSummary(account.ID, runID, o.now())
	summary.Features = domain.FeatureFlags{
		AdsEnabled:             account.AdsEnabled,
		RecoveryProgramEnabled: account.RecoveryProgramEnabled,
	}
	defer o.Recorder.ObserveSync(summary)

	logger := logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"run_id":     runID,
	})
	logger.Info("Iniciando sincronização da conta")

	token, err := o.Tokens.EnsureValidToken(ctx, account)
	if err != nil {
		logger.WithError(err).Error("Sincronização abortada: token inválido")
		summary.Fatal = IsFatal(err)
		summary.Error = err.Error()
		summary.FinishedAt = o.now()
		return summary, err
	}

	windowEnd := o.now()
	windowStart := windowEnd.Add(-o.lookback)

	var (
		wg       sync.WaitGroup
		profile  *domain.SellerProfile
		users    *domain.BatchResult
		products *ProductResult
		ordersBR *domain.BatchResult
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		profile, users = o.Users.Sync(ctx, account, token)
	}()
	go func() {
		defer wg.Done()
		products = o.Products.Sync(ctx, account, token)
	}()
	go func() {
		defer wg.Done()
		_, ordersBR = o.Orders.Sync(ctx, account, token, windowStart, windowEnd)
	}()
	wg.Wait()

	summary.Record(domain.ResourceUsers, users)
	summary.Record(domain.ResourceProducts, products.Products)
	summary.Record(domain.ResourceStock, products.Stock)
	summary.Record(domain.ResourceOrders, ordersBR)

	if ctx.Err() != nil {
		return o.partial(summary, logger, ctx.Err())
	}

	// o agregador lê do banco, como RecomputeMetrics
	listings, orders, loadErr := o.loadStored(ctx, account.ID, windowStart)
	if loadErr != nil {
		logger.WithError(loadErr).Error("Erro ao carregar dados armazenados, snapshot não será atualizado")
		listings = products.Listings
	}

	snapshot := o.Aggregator.Compute(aggregating.Input{
		AccountID:   account.ID,
		Listings:    listings,
		Orders:      orders,
		Profile:     profile,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	})

	if profile == nil {
		o.keepPreviousReputation(ctx, account.ID, snapshot)
	}

	adsResult := o.Ads.Sync(ctx, account, token, listings, windowStart, windowEnd)
	summary.Record(domain.ResourceAds, adsResult.Batch)
	summary.Features.AdsEnabled = adsResult.Enabled
	snapshot.Ads = adsResult.Metrics

	if ctx.Err() != nil {
		return o.partial(summary, logger, ctx.Err())
	}

	recovery := o.Recovery.Check(ctx, account, token)
	summary.Record(domain.ResourceRecovery, recovery.Batch)
	summary.Features.RecoveryProgramEnabled = recovery.Enabled
	snapshot.Reputation.RecoveryProgram = recovery.Program

	if ctx.Err() != nil {
		return o.partial(summary, logger, ctx.Err())
	}

	if loadErr != nil {
		batch := &domain.BatchResult{}
		batch.Failure(account.ID, loadErr)
		summary.Record(domain.ResourceMetrics, batch)
	} else {
		summary.Record(domain.ResourceMetrics, o.saveSnapshot(ctx, snapshot))
		summary.Record(domain.ResourceMilestones, o.validateMilestones(ctx, account.ID, snapshot))
	}

	err = o.AccountRepository.UpdateSyncState(ctx, domain.AccountSyncState{
		AccountID:              account.ID,
		LastSyncAt:             windowEnd,
		AdsEnabled:             summary.Features.AdsEnabled,
		RecoveryProgramEnabled: summary.Features.RecoveryProgramEnabled,
	})
	if err != nil {
		logger.WithError(err).Error("Erro ao atualizar estado de sincronização da conta")
		summary.Error = err.Error()
	} else {
		account.LastSyncAt = &windowEnd
		account.AdsEnabled = summary.Features.AdsEnabled
		account.RecoveryProgramEnabled = summary.Features.RecoveryProgramEnabled
	}

	summary.FinishedAt = o.now()

	logger.WithFields(logrus.Fields{
		"errors":   summary.TotalErrors(),
		"duration": summary.FinishedAt.Sub(summary.StartedAt).String(),
	}).Info("Sincronização da conta concluída")

	return summary, nil
}

func (o *Orchestrator) partial(summary *domain.SyncSummary, logger *logrus.Entry, cause error) (*domain.SyncSummary, error) {
	summary.Partial = true
	summary.Error = cause.Error()
	summary.FinishedAt = o.now()
	logger.WithError(cause).Warn("Sincronização interrompida, retornando resumo parcial")
	return summary, fmt.Errorf("sincronização interrompida: %w", cause)
}

// RecomputeMetrics reconstrói o snapshot a partir do banco, mantendo reputação e ads do snapshot anterior
func (o *Orchestrator) RecomputeMetrics(ctx context.Context, account *domain.MarketplaceAccount) (*domain.MetricsSnapshot, error) {
	windowEnd := o.now()
	windowStart := windowEnd.Add(-o.lookback)

	listings, orders, err := o.loadStored(ctx, account.ID, windowStart)
	if err != nil {
		return nil, err
	}

	snapshot := o.Aggregator.Compute(aggregating.Input{
		AccountID:   account.ID,
		Listings:    listings,
		Orders:      orders,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	})

	previous, err := o.MetricsRepository.GetByAccountID(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar snapshot anterior: %w", err)
	}
	if previous != nil {
		snapshot.Reputation = previous.Reputation
		snapshot.Ads = previous.Ads
	}

	if err := o.MetricsRepository.SaveOrUpdate(ctx, snapshot); err != nil {
		return nil, err
	}

	o.validateMilestones(ctx, account.ID, snapshot)

	return snapshot, nil
}

// loadStored lê anúncios ativos e pedidos da janela; é a única fonte de entrada do agregador
func (o *Orchestrator) loadStored(ctx context.Context, accountID string, windowStart time.Time) ([]*domain.Listing, []*domain.Order, error) {
	listings, err := o.ListingRepository.ListByAccount(ctx, accountID, []domain.ListingStatus{domain.ListingStatusActive})
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao buscar anúncios: %w", err)
	}

	orders, err := o.OrderRepository.ListCreatedSince(ctx, accountID, windowStart)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao buscar pedidos: %w", err)
	}

	return listings, orders, nil
}

func (o *Orchestrator) keepPreviousReputation(ctx context.Context, accountID string, snapshot *domain.MetricsSnapshot) {
	previous, err := o.MetricsRepository.GetByAccountID(ctx, accountID)
	if err != nil || previous == nil {
		return
	}
	snapshot.Reputation = previous.Reputation
}

func (o *Orchestrator) saveSnapshot(ctx context.Context, snapshot *domain.MetricsSnapshot) *domain.BatchResult {
	batch := &domain.BatchResult{}
	if err := o.MetricsRepository.SaveOrUpdate(ctx, snapshot); err != nil {
		logrus.WithError(err).WithField("account_id", snapshot.AccountID).Error("Erro ao salvar snapshot de métricas")
		batch.Failure(snapshot.AccountID, err)
		return batch
	}
	batch.Success(snapshot.AccountID)
	return batch
}

func (o *Orchestrator) validateMilestones(ctx context.Context, accountID string, snapshot *domain.MetricsSnapshot) *domain.BatchResult {
	batch := &domain.BatchResult{}

	updated, err := o.Milestones.Validate(ctx, accountID, snapshot)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao validar marcos")
		batch.Failure(accountID, err)
		return batch
	}

	for _, m := range updated {
		batch.Success(string(m.Key))
	}
	return batch
}

// IsFatal indica falhas que exigem reconexão da conta
func IsFatal(err error) bool {
	return domain.IsAuthError(err) || errors.Is(err, domain.ErrReauthorizationRequired)
}
