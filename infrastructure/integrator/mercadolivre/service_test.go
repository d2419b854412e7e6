package mercadolivre

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mldomain "github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre/domain"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre/mocks"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}

func TestMercadoLivreIntegrator_GetItemDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := NewMercadoLivreIntegrator(mockClient)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, detail *domain.ItemDetail, err error)
	}{
		{
			name: "item com descrição",
			setup: func() {
				mockClient.EXPECT().GetItem(gomock.Any(), "token", "MLB1").Return(&mldomain.Item{
					ID:       "MLB1",
					Status:   "Active",
					Shipping: mldomain.ItemShipping{Mode: "me2", LogisticType: "drop_off", Tags: []string{"self_service_in"}},
					Pictures: []mldomain.Picture{{Size: "500x500", MaxSize: "1200x900"}},
					Attributes: []mldomain.Attribute{
						{ID: "GTIN", ValueName: stringPtr("789")},
						{ID: "BRAND"},
					},
					Tags: []string{"good_quality_picture"},
				}, nil)
				mockClient.EXPECT().GetItemDescription(gomock.Any(), "token", "MLB1").
					Return(&mldomain.ItemDescription{PlainText: "descrição"}, nil)
			},
			validate: func(t *testing.T, detail *domain.ItemDetail, err error) {
				require.NoError(t, err)
				assert.Equal(t, "active", detail.Status)
				assert.Equal(t, "descrição", detail.Description)
				assert.Equal(t, []string{"self_service_in", "good_quality_picture"}, detail.Tags)
				assert.Equal(t, []domain.ItemAttribute{{ID: "GTIN", Value: "789"}, {ID: "BRAND", Value: ""}}, detail.Attributes)
				assert.Equal(t, "1200x900", detail.Pictures[0].MaxSize)
			},
		},
		{
			name: "descrição inexistente não é erro",
			setup: func() {
				mockClient.EXPECT().GetItem(gomock.Any(), "token", "MLB2").Return(&mldomain.Item{ID: "MLB2"}, nil)
				mockClient.EXPECT().GetItemDescription(gomock.Any(), "token", "MLB2").
					Return(nil, fmt.Errorf("GET: %w", domain.ErrNotFound))
			},
			validate: func(t *testing.T, detail *domain.ItemDetail, err error) {
				require.NoError(t, err)
				assert.Empty(t, detail.Description)
			},
		},
		{
			name: "falha na descrição propaga erro",
			setup: func() {
				mockClient.EXPECT().GetItem(gomock.Any(), "token", "MLB3").Return(&mldomain.Item{ID: "MLB3"}, nil)
				mockClient.EXPECT().GetItemDescription(gomock.Any(), "token", "MLB3").Return(nil, domain.ErrRateLimited)
			},
			validate: func(t *testing.T, detail *domain.ItemDetail, err error) {
				assert.Nil(t, detail)
				assert.ErrorIs(t, err, domain.ErrRateLimited)
			},
		},
	}

	ids := []string{"MLB1", "MLB2", "MLB3"}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			detail, err := integrator.GetItemDetail(context.Background(), "token", ids[i])
			tt.validate(t, detail, err)
		})
	}
}

func TestMercadoLivreIntegrator_GetAdvertiserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := NewMercadoLivreIntegrator(mockClient)

	t.Run("404 desabilita a funcionalidade", func(t *testing.T) {
		mockClient.EXPECT().GetAdvertisers(gomock.Any(), "token").Return(nil, fmt.Errorf("GET: %w", domain.ErrNotFound))

		id, err := integrator.GetAdvertiserID(context.Background(), "token")

		assert.Empty(t, id)
		assert.ErrorIs(t, err, domain.ErrFeatureUnavailable)
	})

	t.Run("lista vazia desabilita a funcionalidade", func(t *testing.T) {
		mockClient.EXPECT().GetAdvertisers(gomock.Any(), "token").Return(&mldomain.AdvertiserResponse{}, nil)

		_, err := integrator.GetAdvertiserID(context.Background(), "token")

		assert.ErrorIs(t, err, domain.ErrFeatureUnavailable)
	})

	t.Run("anunciante encontrado", func(t *testing.T) {
		mockClient.EXPECT().GetAdvertisers(gomock.Any(), "token").Return(&mldomain.AdvertiserResponse{
			Advertisers: []mldomain.Advertiser{{AdvertiserID: 9876}},
		}, nil)

		id, err := integrator.GetAdvertiserID(context.Background(), "token")

		require.NoError(t, err)
		assert.Equal(t, "9876", id)
	})

	t.Run("erro transitório não vira funcionalidade desabilitada", func(t *testing.T) {
		mockClient.EXPECT().GetAdvertisers(gomock.Any(), "token").Return(nil, domain.ErrUpstreamUnavailable)

		_, err := integrator.GetAdvertiserID(context.Background(), "token")

		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
		assert.NotErrorIs(t, err, domain.ErrFeatureUnavailable)
	})
}

func TestMercadoLivreIntegrator_ListCampaignsIsBounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := NewMercadoLivreIntegrator(mockClient)

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 30)

	// Paging.Total mentiroso: o laço precisa parar no limite de páginas
	mockClient.EXPECT().GetCampaigns(gomock.Any(), "token", "adv", from, to, gomock.Any(), campaignPageSize).
		DoAndReturn(func(_ context.Context, _, _ string, _, _ time.Time, offset, limit int) (*mldomain.CampaignsResponse, error) {
			results := make([]mldomain.Campaign, limit)
			for i := range results {
				results[i] = mldomain.Campaign{ID: int64(offset + i + 1), Status: "active"}
			}
			return &mldomain.CampaignsResponse{Results: results, Paging: mldomain.Paging{Total: 1_000_000}}, nil
		}).Times(maxCampaignPages)

	campaigns, err := integrator.ListCampaigns(context.Background(), "token", "adv", from, to)

	require.NoError(t, err)
	assert.Len(t, campaigns, maxCampaignPages*campaignPageSize)
}

func TestFactorySellerProfile(t *testing.T) {
	user := &mldomain.User{
		ID:       123,
		Nickname: "LOJA",
		SellerReputation: mldomain.SellerReputation{
			LevelID:           stringPtr("5_green"),
			RealLevel:         stringPtr("3_yellow"),
			ProtectionEndDate: stringPtr("2024-07-01T00:00:00.000-03:00"),
			Metrics: mldomain.ReputationMetrics{
				Claims: mldomain.QualityMetric{
					Rate:     0.01,
					Value:    1,
					Excluded: &mldomain.ExcludedMetric{RealRate: floatPtr(0.05), RealValue: intPtr(4)},
				},
			},
		},
	}

	profile := FactorySellerProfile(user)

	assert.Equal(t, "123", profile.UserID)
	assert.Equal(t, "5_green", profile.LevelID)
	require.NotNil(t, profile.ProtectionEndDate)
	assert.True(t, profile.ProtectionEndDate.Equal(time.Date(2024, 7, 1, 3, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0.05, *profile.Claims.RealRate)
	assert.Equal(t, 4, *profile.Claims.RealValue)
	assert.Nil(t, profile.Cancellations.RealValue)
}

func TestFactoryStockRecord(t *testing.T) {
	stock := &mldomain.FulfillmentStock{
		AvailableQuantity: 50,
		NotAvailableDetail: []mldomain.StockDetail{
			{Status: "damaged", Quantity: 4},
			{Status: "lost", Quantity: 2},
			{Status: "transfer", Quantity: 10},
			{Status: "withdrawal", Quantity: 3},
		},
		ExternalReferences: []mldomain.ExternalReference{{Type: "item", ID: "MLB1"}},
	}

	record := FactoryStockRecord("INV1", stock)

	assert.Equal(t, "INV1", record.InventoryID)
	assert.Equal(t, "MLB1", record.ExternalItemID)
	assert.Equal(t, 4, record.DamagedUnits)
	assert.Equal(t, 2, record.LostUnits)
	assert.Equal(t, 10, record.InboundUnits)
	assert.Equal(t, 3, record.ReservedUnits)
	assert.Equal(t, domain.StockStatusLowQuality, record.StockStatus)
}

func TestFactoryOrder(t *testing.T) {
	order := FactoryOrder(&mldomain.Order{
		ID:          2000001,
		Status:      "PAID",
		TotalAmount: 250,
		DateCreated: "2024-05-02T10:00:00.000-03:00",
		Buyer:       mldomain.Buyer{ID: 55, Nickname: "COMPRADOR"},
	})

	assert.Equal(t, "2000001", order.ExternalOrderID)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)
	assert.True(t, order.IsPaid())
	assert.Equal(t, "55", order.BuyerID)
	assert.True(t, order.DateCreated.Equal(time.Date(2024, 5, 2, 13, 0, 0, 0, time.UTC)))
	assert.Nil(t, order.DateClosed)
}
