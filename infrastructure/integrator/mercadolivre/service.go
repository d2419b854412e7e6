package mercadolivre

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	mldomain "github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre/domain"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre/mlclient"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

const (
	campaignPageSize    = 50
	maxCampaignPages    = 10
	upstreamTimeLayout  = "2006-01-02T15:04:05.000-07:00"
	recoveryStatusEmpty = "not_enrolled"
)

//go:generate mockgen -source=service.go -destination=mocks/integrator_mocks.go -package=mocks
type Integrator interface {
	GetSellerProfile(ctx context.Context, token, userID string) (*domain.SellerProfile, error)
	SearchActiveItemIDs(ctx context.Context, token, userID string, offset, limit int) (*domain.ItemIDPage, error)
	GetItemDetail(ctx context.Context, token, itemID string) (*domain.ItemDetail, error)
	SearchOrders(ctx context.Context, token, sellerID string, from, to time.Time, offset, limit int) (*domain.OrderPage, error)
	GetOrder(ctx context.Context, token, orderID string) (*domain.Order, error)
	GetFulfillmentStock(ctx context.Context, token, inventoryID string) (*domain.StockRecord, error)
	GetAdvertiserID(ctx context.Context, token string) (string, error)
	ListCampaigns(ctx context.Context, token, advertiserID string, from, to time.Time) ([]*domain.Campaign, error)
	GetItemAdStatus(ctx context.Context, token, itemID string) (*domain.ItemAdStatus, error)
	GetRecoveryProgram(ctx context.Context, token, userID string) (*domain.RecoveryProgram, error)
}

type MercadoLivreIntegrator struct {
	client mlclient.Client
}

func NewMercadoLivreIntegrator(client mlclient.Client) Integrator {
	return &MercadoLivreIntegrator{
		client: client,
	}
}

func (s *MercadoLivreIntegrator) GetSellerProfile(ctx context.Context, token, userID string) (*domain.SellerProfile, error) {
	user, err := s.client.GetUser(ctx, token, userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário %s: %w", userID, err)
	}

	return FactorySellerProfile(user), nil
}

func (s *MercadoLivreIntegrator) SearchActiveItemIDs(ctx context.Context, token, userID string, offset, limit int) (*domain.ItemIDPage, error) {
	resp, err := s.client.SearchItems(ctx, token, userID, offset, limit)
	if err != nil {
		return nil, err
	}

	return &domain.ItemIDPage{
		IDs:   resp.Results,
		Total: resp.Paging.Total,
	}, nil
}

// GetItemDetail busca item e descrição; ausência de descrição não é erro
func (s *MercadoLivreIntegrator) GetItemDetail(ctx context.Context, token, itemID string) (*domain.ItemDetail, error) {
	item, err := s.client.GetItem(ctx, token, itemID)
	if err != nil {
		return nil, err
	}

	detail := FactoryItemDetail(item)

	description, err := s.client.GetItemDescription(ctx, token, itemID)
	switch {
	case err == nil:
		detail.Description = description.PlainText
	case errors.Is(err, domain.ErrNotFound):
		logrus.WithField("item_id", itemID).Debug("Item sem descrição")
	default:
		return nil, fmt.Errorf("erro ao buscar descrição do item %s: %w", itemID, err)
	}

	return detail, nil
}

func (s *MercadoLivreIntegrator) SearchOrders(ctx context.Context, token, sellerID string, from, to time.Time, offset, limit int) (*domain.OrderPage, error) {
	resp, err := s.client.SearchOrders(ctx, token, sellerID, from, to, offset, limit)
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, 0, len(resp.Results))
	for i := range resp.Results {
		orders = append(orders, FactoryOrder(&resp.Results[i]))
	}

	return &domain.OrderPage{
		Orders: orders,
		Total:  resp.Paging.Total,
	}, nil
}

func (s *MercadoLivreIntegrator) GetOrder(ctx context.Context, token, orderID string) (*domain.Order, error) {
	order, err := s.client.GetOrder(ctx, token, orderID)
	if err != nil {
		return nil, err
	}

	return FactoryOrder(order), nil
}

func (s *MercadoLivreIntegrator) GetFulfillmentStock(ctx context.Context, token, inventoryID string) (*domain.StockRecord, error) {
	stock, err := s.client.GetFulfillmentStock(ctx, token, inventoryID)
	if err != nil {
		return nil, err
	}

	return FactoryStockRecord(inventoryID, stock), nil
}

// GetAdvertiserID retorna ErrFeatureUnavailable quando a conta não tem Product Ads
func (s *MercadoLivreIntegrator) GetAdvertiserID(ctx context.Context, token string) (string, error) {
	resp, err := s.client.GetAdvertisers(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("%w: %v", domain.ErrFeatureUnavailable, err)
		}
		return "", err
	}

	if len(resp.Advertisers) == 0 || resp.Advertisers[0].AdvertiserID == 0 {
		return "", fmt.Errorf("%w: nenhum anunciante cadastrado", domain.ErrFeatureUnavailable)
	}

	return strconv.FormatInt(resp.Advertisers[0].AdvertiserID, 10), nil
}

func (s *MercadoLivreIntegrator) ListCampaigns(ctx context.Context, token, advertiserID string, from, to time.Time) ([]*domain.Campaign, error) {
	var campaigns []*domain.Campaign

	for page := 0; page < maxCampaignPages; page++ {
		offset := page * campaignPageSize

		resp, err := s.client.GetCampaigns(ctx, token, advertiserID, from, to, offset, campaignPageSize)
		if err != nil {
			return campaigns, fmt.Errorf("erro ao buscar campanhas (offset %d): %w", offset, err)
		}

		for i := range resp.Results {
			campaigns = append(campaigns, FactoryCampaign(&resp.Results[i], from, to))
		}

		if len(resp.Results) == 0 || offset+len(resp.Results) >= resp.Paging.Total {
			break
		}
	}

	return campaigns, nil
}

func (s *MercadoLivreIntegrator) GetItemAdStatus(ctx context.Context, token, itemID string) (*domain.ItemAdStatus, error) {
	ad, err := s.client.GetItemAd(ctx, token, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.ItemAdStatus{ItemID: itemID, Status: "none"}, nil
		}
		return nil, err
	}

	return &domain.ItemAdStatus{
		ItemID:     ad.ItemID,
		CampaignID: strconv.FormatInt(ad.CampaignID, 10),
		Status:     strings.ToLower(ad.Status),
	}, nil
}

// GetRecoveryProgram trata 404 como conta fora do programa de recuperação
func (s *MercadoLivreIntegrator) GetRecoveryProgram(ctx context.Context, token, userID string) (*domain.RecoveryProgram, error) {
	status, err := s.client.GetRecoveryStatus(ctx, token, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.RecoveryProgram{Enrolled: false, Status: recoveryStatusEmpty}, nil
		}
		return nil, err
	}

	program := &domain.RecoveryProgram{
		Status:    strings.ToLower(status.Status),
		StartDate: parseUpstreamTime(status.StartDate),
		EndDate:   parseUpstreamTime(status.EndDate),
	}
	program.Enrolled = program.Status != "" && program.Status != recoveryStatusEmpty

	return program, nil
}

func FactorySellerProfile(user *mldomain.User) *domain.SellerProfile {
	rep := user.SellerReputation

	return &domain.SellerProfile{
		UserID:              strconv.FormatInt(user.ID, 10),
		Nickname:            user.Nickname,
		LevelID:             derefString(rep.LevelID),
		PowerSellerStatus:   derefString(rep.PowerSellerStatus),
		RealLevel:           rep.RealLevel,
		ProtectionEndDate:   parseUpstreamTime(rep.ProtectionEndDate),
		Claims:              factoryQualityMetric(rep.Metrics.Claims),
		DelayedHandlingTime: factoryQualityMetric(rep.Metrics.DelayedHandlingTime),
		Cancellations:       factoryQualityMetric(rep.Metrics.Cancellations),
		TotalTransactions:   rep.Transactions.Total,
	}
}

func factoryQualityMetric(metric mldomain.QualityMetric) domain.QualityMetric {
	result := domain.QualityMetric{
		Rate:  metric.Rate,
		Value: metric.Value,
	}
	if metric.Excluded != nil {
		result.RealRate = metric.Excluded.RealRate
		result.RealValue = metric.Excluded.RealValue
	}
	return result
}

func FactoryItemDetail(item *mldomain.Item) *domain.ItemDetail {
	detail := &domain.ItemDetail{
		ID:                item.ID,
		Title:             item.Title,
		Status:            strings.ToLower(item.Status),
		Price:             item.Price,
		AvailableQuantity: item.AvailableQuantity,
		SoldQuantity:      item.SoldQuantity,
		ShippingMode:      item.Shipping.Mode,
		LogisticType:      item.Shipping.LogisticType,
		InventoryID:       item.InventoryID,
	}

	detail.Tags = append(detail.Tags, item.Shipping.Tags...)
	detail.Tags = append(detail.Tags, item.Tags...)

	for _, picture := range item.Pictures {
		detail.Pictures = append(detail.Pictures, domain.ItemPicture{Size: picture.Size, MaxSize: picture.MaxSize})
	}
	detail.Attributes = factoryAttributes(item.Attributes)
	detail.SaleTerms = factoryAttributes(item.SaleTerms)

	return detail
}

func factoryAttributes(attributes []mldomain.Attribute) []domain.ItemAttribute {
	result := make([]domain.ItemAttribute, 0, len(attributes))
	for _, attr := range attributes {
		result = append(result, domain.ItemAttribute{ID: attr.ID, Value: derefString(attr.ValueName)})
	}
	return result
}

func FactoryOrder(order *mldomain.Order) *domain.Order {
	result := &domain.Order{
		ExternalOrderID: strconv.FormatInt(order.ID, 10),
		Status:          domain.OrderStatus(strings.ToLower(order.Status)),
		TotalAmount:     order.TotalAmount,
		PaidAmount:      order.PaidAmount,
		CurrencyID:      order.CurrencyID,
		BuyerID:         strconv.FormatInt(order.Buyer.ID, 10),
		BuyerNickname:   order.Buyer.Nickname,
		DateClosed:      parseUpstreamTime(order.DateClosed),
	}

	if created := parseUpstreamTime(&order.DateCreated); created != nil {
		result.DateCreated = *created
	} else {
		logrus.WithField("order_id", order.ID).Warn("Pedido com date_created inválido")
	}

	return result
}

// FactoryStockRecord distribui o not_available_detail entre reservado, entrada, avariado e perdido
func FactoryStockRecord(inventoryID string, stock *mldomain.FulfillmentStock) *domain.StockRecord {
	record := &domain.StockRecord{
		InventoryID:    inventoryID,
		AvailableUnits: stock.AvailableQuantity,
	}

	for _, detail := range stock.NotAvailableDetail {
		switch strings.ToLower(detail.Status) {
		case "damaged":
			record.DamagedUnits += detail.Quantity
		case "lost":
			record.LostUnits += detail.Quantity
		case "inbound", "transfer":
			record.InboundUnits += detail.Quantity
		case "reserved", "withdrawal":
			record.ReservedUnits += detail.Quantity
		}
	}

	for _, ref := range stock.ExternalReferences {
		if ref.Type == "item" {
			record.ExternalItemID = ref.ID
			break
		}
	}

	record.StockStatus = domain.ClassifyStockStatus(record.AvailableUnits, record.DamagedUnits, record.LostUnits)

	return record
}

func FactoryCampaign(campaign *mldomain.Campaign, from, to time.Time) *domain.Campaign {
	revenue := campaign.Metrics.TotalAmount
	if revenue == 0 {
		revenue = campaign.Metrics.DirectAmount + campaign.Metrics.IndirectAmount
	}

	return &domain.Campaign{
		CampaignID:  strconv.FormatInt(campaign.ID, 10),
		Name:        campaign.Name,
		Status:      domain.CampaignStatus(strings.ToLower(campaign.Status)),
		Budget:      campaign.Budget,
		Spend:       campaign.Metrics.Cost,
		Revenue:     revenue,
		Clicks:      campaign.Metrics.Clicks,
		Impressions: campaign.Metrics.Prints,
		UnitsSold:   campaign.Metrics.UnitsQuantity,
		DateFrom:    from,
		DateTo:      to,
	}
}

func parseUpstreamTime(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}

	for _, layout := range []string{upstreamTimeLayout, time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, *value); err == nil {
			return &parsed
		}
	}

	logrus.WithField("value", *value).Warn("Data em formato desconhecido")
	return nil
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
