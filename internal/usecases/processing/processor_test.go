package processing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mlmocks "github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre/mocks"
	lockmocks "github.com/vfg2006/marketplace-sync-api/infrastructure/lock/mocks"
	repomocks "github.com/vfg2006/marketplace-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketplace-sync-api/internal/config"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
	"github.com/vfg2006/marketplace-sync-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

type processorMocks struct {
	integrator *mlmocks.MockIntegrator
	tokens     *mocks.MockTokenProvider
	syncer     *mocks.MockSyncer
	locker     *lockmocks.MockAccountLocker
	accounts   *repomocks.MockAccountRepository
	listings   *repomocks.MockListingRepository
	orders     *repomocks.MockOrderRepository
	events     *repomocks.MockWebhookEventRepository
}

func newTestProcessor(t *testing.T, cfg config.Webhook) (*Processor, *processorMocks) {
	ctrl := gomock.NewController(t)
	m := &processorMocks{
		integrator: mlmocks.NewMockIntegrator(ctrl),
		tokens:     mocks.NewMockTokenProvider(ctrl),
		syncer:     mocks.NewMockSyncer(ctrl),
		locker:     lockmocks.NewMockAccountLocker(ctrl),
		accounts:   repomocks.NewMockAccountRepository(ctrl),
		listings:   repomocks.NewMockListingRepository(ctrl),
		orders:     repomocks.NewMockOrderRepository(ctrl),
		events:     repomocks.NewMockWebhookEventRepository(ctrl),
	}

	p := NewProcessor(cfg, Dependencies{
		Integrator:             m.integrator,
		Tokens:                 m.tokens,
		Syncer:                 m.syncer,
		Locker:                 m.locker,
		AccountRepository:      m.accounts,
		ListingRepository:      m.listings,
		OrderRepository:        m.orders,
		WebhookEventRepository: m.events,
	})
	return p, m
}

func activeAccount() *domain.MarketplaceAccount {
	return &domain.MarketplaceAccount{ID: "acc-1", ExternalUserID: "123", IsActive: true}
}

func TestProcessor_Process(t *testing.T) {
	tests := []struct {
		name         string
		notification domain.Notification
		setup        func(m *processorMocks)
		expected     domain.WebhookStatus
	}{
		{
			name:         "pedido é buscado, salvo e métricas recalculadas",
			notification: domain.Notification{Topic: domain.TopicOrders, Resource: "/orders/2000001", UserID: 123},
			setup: func(m *processorMocks) {
				account := activeAccount()
				m.accounts.EXPECT().GetByExternalUserID(gomock.Any(), "123").Return(account, nil)
				m.tokens.EXPECT().EnsureValidToken(gomock.Any(), account).Return("APP-1", nil)
				m.integrator.EXPECT().GetOrder(gomock.Any(), "APP-1", "2000001").
					Return(&domain.Order{ExternalOrderID: "2000001", Status: domain.OrderStatusPaid}, nil)
				m.orders.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *domain.Order) error {
						assert.Equal(t, "acc-1", order.AccountID)
						return nil
					})
				released := false
				m.locker.EXPECT().TryLock(gomock.Any(), "acc-1").Return(func() { released = true }, true, nil)
				m.syncer.EXPECT().RecomputeMetrics(gomock.Any(), account).
					DoAndReturn(func(_ context.Context, _ *domain.MarketplaceAccount) (*domain.MetricsSnapshot, error) {
						assert.False(t, released, "recálculo deve rodar com o lock da conta")
						return &domain.MetricsSnapshot{}, nil
					})
				m.events.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event *domain.WebhookEvent) error {
						assert.Equal(t, domain.WebhookStatusProcessed, event.Status)
						assert.Equal(t, "/orders/2000001", event.Resource)
						assert.Equal(t, 1, event.Attempts)
						assert.Nil(t, event.Error)
						return nil
					})
			},
			expected: domain.WebhookStatusProcessed,
		},
		{
			name:         "item usa a mesma inferência logística da sincronização",
			notification: domain.Notification{Topic: domain.TopicItems, Resource: "/items/MLB1", UserID: 123, Attempts: 3},
			setup: func(m *processorMocks) {
				account := activeAccount()
				m.accounts.EXPECT().GetByExternalUserID(gomock.Any(), "123").Return(account, nil)
				m.tokens.EXPECT().EnsureValidToken(gomock.Any(), account).Return("APP-1", nil)
				m.integrator.EXPECT().GetItemDetail(gomock.Any(), "APP-1", "MLB1").
					Return(&domain.ItemDetail{ID: "MLB1", Status: "active", ShippingMode: "me2", Tags: []string{domain.TagCrossDocking}}, nil)
				m.listings.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, listing *domain.Listing) error {
						assert.Equal(t, domain.LogisticCrossDocking, listing.LogisticType)
						assert.True(t, listing.IsCollection())
						return nil
					})
				released := false
				m.locker.EXPECT().TryLock(gomock.Any(), "acc-1").Return(func() { released = true }, true, nil)
				m.syncer.EXPECT().RecomputeMetrics(gomock.Any(), account).
					DoAndReturn(func(_ context.Context, _ *domain.MarketplaceAccount) (*domain.MetricsSnapshot, error) {
						assert.False(t, released, "recálculo deve rodar com o lock da conta")
						return &domain.MetricsSnapshot{}, nil
					})
				m.events.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event *domain.WebhookEvent) error {
						assert.Equal(t, 3, event.Attempts)
						return nil
					})
			},
			expected: domain.WebhookStatusProcessed,
		},
		{
			name:         "sincronização em andamento dispensa o recálculo",
			notification: domain.Notification{Topic: domain.TopicOrders, Resource: "/orders/2000001", UserID: 123},
			setup: func(m *processorMocks) {
				account := activeAccount()
				m.accounts.EXPECT().GetByExternalUserID(gomock.Any(), "123").Return(account, nil)
				m.tokens.EXPECT().EnsureValidToken(gomock.Any(), account).Return("APP-1", nil)
				m.integrator.EXPECT().GetOrder(gomock.Any(), "APP-1", "2000001").
					Return(&domain.Order{ExternalOrderID: "2000001", Status: domain.OrderStatusPaid}, nil)
				m.orders.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
				m.locker.EXPECT().TryLock(gomock.Any(), "acc-1").Return(nil, false, nil)
				m.events.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event *domain.WebhookEvent) error {
						assert.Equal(t, domain.WebhookStatusProcessed, event.Status)
						return nil
					})
			},
			expected: domain.WebhookStatusProcessed,
		},
		{
			name:         "erro no lock registra erro sem recalcular",
			notification: domain.Notification{Topic: domain.TopicOrders, Resource: "/orders/2000001", UserID: 123},
			setup: func(m *processorMocks) {
				account := activeAccount()
				m.accounts.EXPECT().GetByExternalUserID(gomock.Any(), "123").Return(account, nil)
				m.tokens.EXPECT().EnsureValidToken(gomock.Any(), account).Return("APP-1", nil)
				m.integrator.EXPECT().GetOrder(gomock.Any(), "APP-1", "2000001").
					Return(&domain.Order{ExternalOrderID: "2000001", Status: domain.OrderStatusPaid}, nil)
				m.orders.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
				m.locker.EXPECT().TryLock(gomock.Any(), "acc-1").Return(nil, false, errors.New("redis"))
				m.events.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event *domain.WebhookEvent) error {
						assert.Equal(t, domain.WebhookStatusError, event.Status)
						return nil
					})
			},
			expected: domain.WebhookStatusError,
		},
		{
			name:         "tópico desconhecido é ignorado",
			notification: domain.Notification{Topic: "questions", Resource: "/questions/1", UserID: 123},
			setup: func(m *processorMocks) {
				m.events.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event *domain.WebhookEvent) error {
						assert.Equal(t, domain.WebhookStatusSkipped, event.Status)
						require.NotNil(t, event.Error)
						return nil
					})
			},
			expected: domain.WebhookStatusSkipped,
		},
		{
			name:         "conta desconhecida é ignorada",
			notification: domain.Notification{Topic: domain.TopicOrders, Resource: "/orders/1", UserID: 999},
			setup: func(m *processorMocks) {
				m.accounts.EXPECT().GetByExternalUserID(gomock.Any(), "999").Return(nil, nil)
				m.events.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
			},
			expected: domain.WebhookStatusSkipped,
		},
		{
			name:         "falha de token registra erro",
			notification: domain.Notification{Topic: domain.TopicOrders, Resource: "/orders/1", UserID: 123},
			setup: func(m *processorMocks) {
				m.accounts.EXPECT().GetByExternalUserID(gomock.Any(), "123").Return(activeAccount(), nil)
				m.tokens.EXPECT().EnsureValidToken(gomock.Any(), gomock.Any()).
					Return("", domain.NewAuthError("acc-1", domain.ErrInvalidGrant))
				m.events.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event *domain.WebhookEvent) error {
						assert.Equal(t, domain.WebhookStatusError, event.Status)
						return nil
					})
			},
			expected: domain.WebhookStatusError,
		},
		{
			name:         "erro ao buscar pedido não recalcula métricas",
			notification: domain.Notification{Topic: domain.TopicOrders, Resource: "/orders/1", UserID: 123},
			setup: func(m *processorMocks) {
				m.accounts.EXPECT().GetByExternalUserID(gomock.Any(), "123").Return(activeAccount(), nil)
				m.tokens.EXPECT().EnsureValidToken(gomock.Any(), gomock.Any()).Return("APP-1", nil)
				m.integrator.EXPECT().GetOrder(gomock.Any(), "APP-1", "1").Return(nil, domain.ErrNotFound)
				m.events.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(errors.New("db"))
			},
			expected: domain.WebhookStatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, m := newTestProcessor(t, config.Webhook{})
			tt.setup(m)

			assert.Equal(t, tt.expected, p.Process(context.Background(), tt.notification))
		})
	}
}

func TestProcessor_EnqueueQueueFull(t *testing.T) {
	p, _ := newTestProcessor(t, config.Webhook{Workers: 1, QueueSize: 1})

	require.NoError(t, p.Enqueue(domain.Notification{Topic: "questions"}))
	assert.ErrorIs(t, p.Enqueue(domain.Notification{Topic: "questions"}), ErrQueueFull)
}

func TestProcessor_ShutdownDrainsQueue(t *testing.T) {
	p, m := newTestProcessor(t, config.Webhook{Workers: 2, QueueSize: 10})

	m.events.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	for i := 0; i < 3; i++ {
		require.NoError(t, p.Enqueue(domain.Notification{Topic: "questions", Resource: "/questions/1"}))
	}
	p.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.Shutdown(ctx))

	assert.ErrorIs(t, p.Enqueue(domain.Notification{}), ErrProcessorClosed)
}
