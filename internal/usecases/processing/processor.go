package processing

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/lock"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-sync-api/internal/config"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
	"github.com/vfg2006/marketplace-sync-api/internal/usecases/syncing"
	"github.com/vfg2006/marketplace-sync-api/pkg/metrics"
)

var (
	ErrQueueFull       = errors.New("fila de notificações cheia")
	ErrProcessorClosed = errors.New("processador de notificações encerrado")
	errAccountNotFound = errors.New("conta não encontrada para o user_id")
	errUnknownTopic    = errors.New("tópico não suportado")
)

type Dependencies struct {
	Integrator             mercadolivre.Integrator
	Tokens                 syncing.TokenProvider
	Syncer                 syncing.Syncer
	Locker                 lock.AccountLocker
	Stock                  *syncing.StockSyncer
	AccountRepository      repository.AccountRepository
	ListingRepository      repository.ListingRepository
	OrderRepository        repository.OrderRepository
	WebhookEventRepository repository.WebhookEventRepository
	Recorder               *metrics.Recorder
}

// Processor recebe notificações do marketplace e processa de forma assíncrona num pool limitado de workers
type Processor struct {
	Dependencies
	queue   chan domain.Notification
	workers int
	timeout time.Duration
	now     func() time.Time

	wg      sync.WaitGroup
	mu      sync.RWMutex
	started bool
	closed  bool
}

func NewProcessor(cfg config.Webhook, deps Dependencies) *Processor {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 100
	}
	timeout := time.Duration(cfg.ProcessTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Processor{
		Dependencies: deps,
		queue:        make(chan domain.Notification, queueSize),
		workers:      workers,
		timeout:      timeout,
		now:          time.Now,
	}
}

func (p *Processor) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started || p.closed {
		return
	}
	p.started = true

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	logrus.WithField("workers", p.workers).Info("Processador de notificações iniciado")
}

// Enqueue nunca bloqueia: com a fila cheia retorna ErrQueueFull
func (p *Processor) Enqueue(notification domain.Notification) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrProcessorClosed
	}

	select {
	case p.queue <- notification:
		return nil
	default:
		return ErrQueueFull
	}
}

// Shutdown fecha a fila e espera os workers drenarem o que já foi enfileirado
func (p *Processor) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logrus.Info("Processador de notificações finalizado")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Processor) worker(id int) {
	defer p.wg.Done()

	for notification := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		p.Process(ctx, notification)
		cancel()
	}

	logrus.WithField("worker", id).Debug("Worker de notificações encerrado")
}

// Process trata uma notificação e registra o desfecho por (resource, topic)
func (p *Processor) Process(ctx context.Context, notification domain.Notification) domain.WebhookStatus {
	logger := logrus.WithFields(logrus.Fields{
		"topic":    notification.Topic,
		"resource": notification.Resource,
		"user_id":  notification.UserID,
	})

	status := domain.WebhookStatusProcessed
	err := p.handle(ctx, notification)
	switch {
	case errors.Is(err, errUnknownTopic) || errors.Is(err, errAccountNotFound):
		status = domain.WebhookStatusSkipped
		logger.WithError(err).Info("Notificação ignorada")
	case err != nil:
		status = domain.WebhookStatusError
		logger.WithError(err).Error("Erro ao processar notificação")
	default:
		logger.Debug("Notificação processada")
	}

	event := &domain.WebhookEvent{
		Resource:    notification.Resource,
		Topic:       notification.Topic,
		UserID:      notification.UserID,
		Status:      status,
		Attempts:    max(notification.Attempts, 1),
		ProcessedAt: p.now(),
	}
	if err != nil {
		msg := err.Error()
		event.Error = &msg
	}

	if saveErr := p.WebhookEventRepository.SaveOrUpdate(ctx, event); saveErr != nil {
		logger.WithError(saveErr).Error("Erro ao registrar processamento da notificação")
	}

	p.Recorder.ObserveWebhook(notification.Topic, status)

	return status
}

func (p *Processor) handle(ctx context.Context, notification domain.Notification) error {
	if notification.Topic != domain.TopicOrders && notification.Topic != domain.TopicItems {
		return fmt.Errorf("%w: %s", errUnknownTopic, notification.Topic)
	}

	resourceID := notification.ResourceID()
	if resourceID == "" {
		return fmt.Errorf("resource inválido: %q", notification.Resource)
	}

	account, err := p.AccountRepository.GetByExternalUserID(ctx, strconv.FormatInt(notification.UserID, 10))
	if err != nil {
		return fmt.Errorf("erro ao buscar conta: %w", err)
	}
	if account == nil || !account.IsActive {
		return fmt.Errorf("%w: %d", errAccountNotFound, notification.UserID)
	}

	token, err := p.Tokens.EnsureValidToken(ctx, account)
	if err != nil {
		return err
	}

	switch notification.Topic {
	case domain.TopicOrders:
		err = p.handleOrder(ctx, account, token, resourceID)
	case domain.TopicItems:
		err = p.handleItem(ctx, account, token, resourceID)
	}
	if err != nil {
		return err
	}

	return p.recompute(ctx, account)
}

// recompute divide o lock da conta com a sincronização agendada; se ela estiver rodando, o snapshot
// dela já vai ler o que acabou de ser gravado
func (p *Processor) recompute(ctx context.Context, account *domain.MarketplaceAccount) error {
	release, acquired, err := p.Locker.TryLock(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("erro ao adquirir lock da conta: %w", err)
	}
	if !acquired {
		logrus.WithField("account_id", account.ID).Info("Sincronização em andamento, recálculo de métricas dispensado")
		return nil
	}
	defer release()

	if _, err := p.Syncer.RecomputeMetrics(ctx, account); err != nil {
		return fmt.Errorf("erro ao recalcular métricas: %w", err)
	}

	return nil
}

func (p *Processor) handleOrder(ctx context.Context, account *domain.MarketplaceAccount, token, orderID string) error {
	order, err := p.Integrator.GetOrder(ctx, token, orderID)
	if err != nil {
		return fmt.Errorf("erro ao buscar pedido %s: %w", orderID, err)
	}

	order.AccountID = account.ID
	order.SyncedAt = p.now()

	return p.OrderRepository.SaveOrUpdate(ctx, order)
}

func (p *Processor) handleItem(ctx context.Context, account *domain.MarketplaceAccount, token, itemID string) error {
	item, err := p.Integrator.GetItemDetail(ctx, token, itemID)
	if err != nil {
		return fmt.Errorf("erro ao buscar item %s: %w", itemID, err)
	}

	listing := domain.BuildListing(account.ID, item, p.now())
	if err := p.ListingRepository.SaveOrUpdate(ctx, listing); err != nil {
		return err
	}

	if p.Stock != nil && listing.NeedsStockSync() {
		batch := &domain.BatchResult{}
		p.Stock.SyncItem(ctx, account, token, listing, batch)
		if batch.Errors() > 0 {
			logrus.WithField("item_id", itemID).Warn("Falha ao sincronizar estoque do item notificado")
		}
	}

	return nil
}
