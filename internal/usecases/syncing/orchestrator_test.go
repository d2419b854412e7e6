package syncing

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mlmocks "github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre/mocks"
	repomocks "github.com/vfg2006/marketplace-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketplace-sync-api/internal/config"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
	"github.com/vfg2006/marketplace-sync-api/internal/usecases/aggregating"
	"github.com/vfg2006/marketplace-sync-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

type orchestratorMocks struct {
	integrator *mlmocks.MockIntegrator
	tokens     *mocks.MockTokenProvider
	milestones *mocks.MockMilestoneValidator
	accounts   *repomocks.MockAccountRepository
	listings   *repomocks.MockListingRepository
	orders     *repomocks.MockOrderRepository
	stock      *repomocks.MockStockRepository
	metrics    *repomocks.MockMetricsRepository
	campaigns  *repomocks.MockCampaignRepository
}

func newTestOrchestrator(t *testing.T, now time.Time) (*Orchestrator, *orchestratorMocks) {
	ctrl := gomock.NewController(t)
	m := &orchestratorMocks{
		integrator: mlmocks.NewMockIntegrator(ctrl),
		tokens:     mocks.NewMockTokenProvider(ctrl),
		milestones: mocks.NewMockMilestoneValidator(ctrl),
		accounts:   repomocks.NewMockAccountRepository(ctrl),
		listings:   repomocks.NewMockListingRepository(ctrl),
		orders:     repomocks.NewMockOrderRepository(ctrl),
		stock:      repomocks.NewMockStockRepository(ctrl),
		metrics:    repomocks.NewMockMetricsRepository(ctrl),
		campaigns:  repomocks.NewMockCampaignRepository(ctrl),
	}

	cfg := config.MarketplaceSync{
		ItemPageSize:  50,
		MaxItems:      500,
		OrderPageSize: 50,
		MaxOrders:     1000,
		MaxOrderPages: 10,
		LookbackDays:  30,
		MaxAdItems:    50,
	}
	clock := func() time.Time { return now }

	stock := NewStockSyncer(m.integrator, m.stock)
	stock.now = clock
	products := NewProductSyncer(cfg, m.integrator, m.listings, stock)
	products.now = clock
	orders := NewOrderSyncer(cfg, m.integrator, m.orders)
	orders.now = clock
	ads := NewAdsSyncer(cfg, m.integrator, m.campaigns)
	ads.now = clock

	o := NewOrchestrator(cfg, Dependencies{
		Tokens:            m.tokens,
		Users:             NewUserInfoSyncer(m.integrator),
		Products:          products,
		Orders:            orders,
		Ads:               ads,
		Recovery:          NewRecoveryChecker(m.integrator),
		Aggregator:        aggregating.NewAggregatorWithClock(clock),
		Milestones:        m.milestones,
		AccountRepository: m.accounts,
		ListingRepository: m.listings,
		OrderRepository:   m.orders,
		MetricsRepository: m.metrics,
	})
	o.now = clock

	return o, m
}

func TestOrchestrator_Run(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	future := now.Add(72 * time.Hour)

	t.Run("sincronização completa", func(t *testing.T) {
		o, m := newTestOrchestrator(t, now)
		account := testAccount()

		m.tokens.EXPECT().EnsureValidToken(gomock.Any(), account).Return("APP-2", nil)

		m.integrator.EXPECT().GetSellerProfile(gomock.Any(), "APP-2", "123").Return(&domain.SellerProfile{
			UserID:            "123",
			LevelID:           "5_green",
			RealLevel:         stringPtr("4_light_green"),
			ProtectionEndDate: &future,
		}, nil)

		m.integrator.EXPECT().SearchActiveItemIDs(gomock.Any(), "APP-2", "123", 0, 50).
			Return(&domain.ItemIDPage{IDs: []string{"MLB1"}, Total: 1}, nil)
		m.integrator.EXPECT().GetItemDetail(gomock.Any(), "APP-2", "MLB1").
			Return(&domain.ItemDetail{ID: "MLB1", Status: "active", ShippingMode: "me2", Tags: []string{domain.TagSelfServiceIn}}, nil)
		m.listings.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
		m.listings.EXPECT().MarkInactiveExcept(gomock.Any(), "acc-1", []string{"MLB1"}).Return(int64(0), nil)

		paidOrders := []*domain.Order{
			{ExternalOrderID: "1", Status: domain.OrderStatusPaid, TotalAmount: 100, DateCreated: now.AddDate(0, 0, -1)},
			{ExternalOrderID: "2", Status: domain.OrderStatusPaid, TotalAmount: 300, DateCreated: now.AddDate(0, 0, -2)},
		}
		m.integrator.EXPECT().SearchOrders(gomock.Any(), "APP-2", "123", now.AddDate(0, 0, -30), now, 0, 50).
			Return(&domain.OrderPage{Orders: paidOrders, Total: 2}, nil)
		m.orders.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		storedListing := domain.BuildListing("acc-1", &domain.ItemDetail{ID: "MLB1", Status: "active", ShippingMode: "me2", Tags: []string{domain.TagSelfServiceIn}}, now)
		m.listings.EXPECT().ListByAccount(gomock.Any(), "acc-1", []domain.ListingStatus{domain.ListingStatusActive}).
			Return([]*domain.Listing{storedListing}, nil)
		m.orders.EXPECT().ListCreatedSince(gomock.Any(), "acc-1", now.AddDate(0, 0, -30)).Return(paidOrders, nil)

		m.integrator.EXPECT().GetAdvertiserID(gomock.Any(), "APP-2").Return("", domain.ErrFeatureUnavailable)
		m.integrator.EXPECT().GetRecoveryProgram(gomock.Any(), "APP-2", "123").
			Return(&domain.RecoveryProgram{Enrolled: true, Status: "active"}, nil)

		var saved *domain.MetricsSnapshot
		m.metrics.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, snapshot *domain.MetricsSnapshot) error {
				saved = snapshot
				return nil
			})
		m.milestones.EXPECT().Validate(gomock.Any(), "acc-1", gomock.Any()).
			Return([]*domain.Milestone{{Key: domain.MilestoneFirstSale}, {Key: domain.MilestoneFlexEnabled}}, nil)
		m.accounts.EXPECT().UpdateSyncState(gomock.Any(), domain.AccountSyncState{
			AccountID:              "acc-1",
			LastSyncAt:             now,
			AdsEnabled:             false,
			RecoveryProgramEnabled: true,
		}).Return(nil)

		summary, err := o.Run(context.Background(), account)
		require.NoError(t, err)

		assert.False(t, summary.Fatal)
		assert.False(t, summary.Partial)
		assert.NotEmpty(t, summary.RunID)
		assert.Equal(t, 1, summary.Resources[domain.ResourceUsers].Synced)
		assert.Equal(t, 1, summary.Resources[domain.ResourceProducts].Synced)
		assert.Equal(t, 2, summary.Resources[domain.ResourceOrders].Synced)
		assert.Equal(t, 0, summary.Resources[domain.ResourceAds].Errors)
		assert.Equal(t, 2, summary.Resources[domain.ResourceMilestones].Synced)
		assert.Equal(t, 1, summary.Resources[domain.ResourceMetrics].Synced)
		assert.False(t, summary.Features.AdsEnabled)
		assert.True(t, summary.Features.RecoveryProgramEnabled)
		assert.Equal(t, 0, summary.TotalErrors())

		require.NotNil(t, saved)
		assert.Equal(t, 2, saved.Sales.TotalSales)
		assert.Equal(t, 200.0, saved.Sales.AverageTicket)
		assert.Equal(t, 1, saved.Shipping.Flex.Count)
		assert.True(t, saved.Reputation.DecolaActive)
		require.NotNil(t, saved.Reputation.RecoveryProgram)
		assert.True(t, saved.Reputation.RecoveryProgram.Enrolled)

		require.NotNil(t, account.LastSyncAt)
		assert.True(t, account.RecoveryProgramEnabled)
	})

	t.Run("falha de token aborta a execução", func(t *testing.T) {
		o, m := newTestOrchestrator(t, now)

		m.tokens.EXPECT().EnsureValidToken(gomock.Any(), gomock.Any()).
			Return("", domain.NewAuthError("acc-1", domain.ErrInvalidGrant))

		summary, err := o.Run(context.Background(), testAccount())
		require.Error(t, err)
		assert.True(t, IsFatal(err))
		assert.True(t, summary.Fatal)
		assert.Empty(t, summary.Resources)
		assert.NotEmpty(t, summary.Error)
	})

	t.Run("falha transitória na renovação aborta sem marcar como fatal", func(t *testing.T) {
		o, m := newTestOrchestrator(t, now)

		m.tokens.EXPECT().EnsureValidToken(gomock.Any(), gomock.Any()).
			Return("", fmt.Errorf("erro ao renovar token da conta acc-1: %w", domain.ErrUpstreamUnavailable))

		summary, err := o.Run(context.Background(), testAccount())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
		assert.False(t, IsFatal(err))
		assert.False(t, summary.Fatal)
		assert.Empty(t, summary.Resources)
		assert.NotEmpty(t, summary.Error)
	})

	t.Run("erro de página não zera métricas já armazenadas", func(t *testing.T) {
		o, m := newTestOrchestrator(t, now)

		m.tokens.EXPECT().EnsureValidToken(gomock.Any(), gomock.Any()).Return("APP-1", nil)
		m.integrator.EXPECT().GetSellerProfile(gomock.Any(), "APP-1", "123").Return(&domain.SellerProfile{UserID: "123", LevelID: "5_green"}, nil)
		m.integrator.EXPECT().SearchActiveItemIDs(gomock.Any(), "APP-1", "123", 0, 50).Return(nil, domain.ErrUpstreamUnavailable)
		m.integrator.EXPECT().SearchOrders(gomock.Any(), "APP-1", "123", gomock.Any(), gomock.Any(), 0, 50).Return(nil, domain.ErrRateLimited)

		m.listings.EXPECT().ListByAccount(gomock.Any(), "acc-1", []domain.ListingStatus{domain.ListingStatusActive}).
			Return([]*domain.Listing{
				{ExternalItemID: "MLB1", Status: domain.ListingStatusActive, ShippingModes: []string{"me2"}, LogisticTypes: []string{domain.LogisticFulfillment}},
				{ExternalItemID: "MLB2", Status: domain.ListingStatusActive, ShippingModes: []string{"me2"}, LogisticTypes: []string{domain.LogisticSelfService}},
			}, nil)
		m.orders.EXPECT().ListCreatedSince(gomock.Any(), "acc-1", now.AddDate(0, 0, -30)).
			Return([]*domain.Order{{ExternalOrderID: "9", Status: domain.OrderStatusPaid, TotalAmount: 50, DateCreated: now.Add(-time.Hour)}}, nil)

		m.integrator.EXPECT().GetAdvertiserID(gomock.Any(), "APP-1").Return("", domain.ErrFeatureUnavailable)
		m.integrator.EXPECT().GetRecoveryProgram(gomock.Any(), "APP-1", "123").Return(&domain.RecoveryProgram{}, nil)

		var saved *domain.MetricsSnapshot
		m.metrics.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, snapshot *domain.MetricsSnapshot) error {
				saved = snapshot
				return nil
			})
		m.milestones.EXPECT().Validate(gomock.Any(), "acc-1", gomock.Any()).Return(nil, nil)
		m.accounts.EXPECT().UpdateSyncState(gomock.Any(), gomock.Any()).Return(nil)

		summary, err := o.Run(context.Background(), testAccount())
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Resources[domain.ResourceProducts].Errors)
		assert.Equal(t, 1, summary.Resources[domain.ResourceOrders].Errors)

		require.NotNil(t, saved)
		assert.Equal(t, 2, saved.Shipping.Total)
		assert.Equal(t, 1, saved.Shipping.Full.Count)
		assert.Equal(t, 1, saved.Shipping.Flex.Count)
		assert.Equal(t, 1, saved.Sales.TotalSales)
	})

	t.Run("falha ao ler o banco não sobrescreve o snapshot", func(t *testing.T) {
		o, m := newTestOrchestrator(t, now)

		m.tokens.EXPECT().EnsureValidToken(gomock.Any(), gomock.Any()).Return("APP-1", nil)
		m.integrator.EXPECT().GetSellerProfile(gomock.Any(), "APP-1", "123").Return(&domain.SellerProfile{UserID: "123"}, nil)
		m.integrator.EXPECT().SearchActiveItemIDs(gomock.Any(), "APP-1", "123", 0, 50).Return(&domain.ItemIDPage{}, nil)
		m.listings.EXPECT().MarkInactiveExcept(gomock.Any(), "acc-1", []string{}).Return(int64(0), nil)
		m.integrator.EXPECT().SearchOrders(gomock.Any(), "APP-1", "123", gomock.Any(), gomock.Any(), 0, 50).Return(&domain.OrderPage{}, nil)
		m.listings.EXPECT().ListByAccount(gomock.Any(), "acc-1", gomock.Any()).Return(nil, errors.New("db"))
		m.integrator.EXPECT().GetAdvertiserID(gomock.Any(), "APP-1").Return("", domain.ErrFeatureUnavailable)
		m.integrator.EXPECT().GetRecoveryProgram(gomock.Any(), "APP-1", "123").Return(&domain.RecoveryProgram{}, nil)
		m.accounts.EXPECT().UpdateSyncState(gomock.Any(), gomock.Any()).Return(nil)

		summary, err := o.Run(context.Background(), testAccount())
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Resources[domain.ResourceMetrics].Errors)
		assert.NotContains(t, summary.Resources, domain.ResourceMilestones)
	})

	t.Run("falhas opcionais não interrompem a execução", func(t *testing.T) {
		o, m := newTestOrchestrator(t, now)

		m.tokens.EXPECT().EnsureValidToken(gomock.Any(), gomock.Any()).Return("APP-1", nil)
		m.integrator.EXPECT().GetSellerProfile(gomock.Any(), "APP-1", "123").Return(nil, domain.ErrUpstreamUnavailable)
		m.integrator.EXPECT().SearchActiveItemIDs(gomock.Any(), "APP-1", "123", 0, 50).Return(&domain.ItemIDPage{}, nil)
		m.listings.EXPECT().MarkInactiveExcept(gomock.Any(), "acc-1", []string{}).Return(int64(0), nil)
		m.integrator.EXPECT().SearchOrders(gomock.Any(), "APP-1", "123", gomock.Any(), gomock.Any(), 0, 50).Return(&domain.OrderPage{}, nil)
		m.listings.EXPECT().ListByAccount(gomock.Any(), "acc-1", gomock.Any()).Return(nil, nil)
		m.orders.EXPECT().ListCreatedSince(gomock.Any(), "acc-1", gomock.Any()).Return(nil, nil)
		m.integrator.EXPECT().GetAdvertiserID(gomock.Any(), "APP-1").Return("", domain.ErrUpstreamUnavailable)
		m.integrator.EXPECT().GetRecoveryProgram(gomock.Any(), "APP-1", "123").Return(nil, domain.ErrRateLimited)

		previous := &domain.MetricsSnapshot{Reputation: domain.ReputationSnapshot{LevelID: "3_yellow", Color: domain.ReputationYellow}}
		m.metrics.EXPECT().GetByAccountID(gomock.Any(), "acc-1").Return(previous, nil)
		m.metrics.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, snapshot *domain.MetricsSnapshot) error {
				assert.Equal(t, domain.ReputationYellow, snapshot.Reputation.Color)
				return nil
			})
		m.milestones.EXPECT().Validate(gomock.Any(), "acc-1", gomock.Any()).Return(nil, errors.New("db"))
		m.accounts.EXPECT().UpdateSyncState(gomock.Any(), gomock.Any()).Return(nil)

		summary, err := o.Run(context.Background(), testAccount())
		require.NoError(t, err)
		assert.False(t, summary.Fatal)
		assert.Equal(t, 1, summary.Resources[domain.ResourceUsers].Errors)
		assert.Equal(t, 1, summary.Resources[domain.ResourceAds].Errors)
		assert.Equal(t, 1, summary.Resources[domain.ResourceRecovery].Errors)
		assert.Equal(t, 1, summary.Resources[domain.ResourceMilestones].Errors)
		assert.Equal(t, 4, summary.TotalErrors())
	})

	t.Run("contexto cancelado retorna resumo parcial", func(t *testing.T) {
		o, m := newTestOrchestrator(t, now)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		m.tokens.EXPECT().EnsureValidToken(gomock.Any(), gomock.Any()).Return("APP-1", nil)
		m.integrator.EXPECT().GetSellerProfile(gomock.Any(), "APP-1", "123").Return(nil, context.Canceled).AnyTimes()

		summary, err := o.Run(ctx, testAccount())
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.True(t, summary.Partial)
		assert.False(t, summary.Fatal)
		assert.Contains(t, summary.Resources, domain.ResourceProducts)
	})
}

func TestOrchestrator_RecomputeMetrics(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	o, m := newTestOrchestrator(t, now)

	m.listings.EXPECT().ListByAccount(gomock.Any(), "acc-1", []domain.ListingStatus{domain.ListingStatusActive}).
		Return([]*domain.Listing{{Status: domain.ListingStatusActive, ShippingModes: []string{"me2"}, LogisticTypes: []string{domain.LogisticFulfillment}}}, nil)
	m.orders.EXPECT().ListCreatedSince(gomock.Any(), "acc-1", now.AddDate(0, 0, -30)).
		Return([]*domain.Order{{Status: domain.OrderStatusPaid, TotalAmount: 80, DateCreated: now.Add(-time.Hour)}}, nil)
	m.metrics.EXPECT().GetByAccountID(gomock.Any(), "acc-1").Return(&domain.MetricsSnapshot{
		Reputation: domain.ReputationSnapshot{DecolaActive: true},
		Ads:        domain.AdMetrics{Enabled: true, ActiveCampaigns: 2},
	}, nil)
	m.metrics.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
	m.milestones.EXPECT().Validate(gomock.Any(), "acc-1", gomock.Any()).Return(nil, nil)

	snapshot, err := o.RecomputeMetrics(context.Background(), testAccount())
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Sales.TotalSales)
	assert.Equal(t, 1, snapshot.Shipping.Full.Count)
	assert.True(t, snapshot.Reputation.DecolaActive)
	assert.Equal(t, 2, snapshot.Ads.ActiveCampaigns)
}
