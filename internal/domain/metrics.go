package domain

import "time"

type CategoryStat struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ShippingStats struct {
	Total        int          `json:"total"`
	Flex         CategoryStat `json:"flex"`
	Agencies     CategoryStat `json:"agencies"`
	Collection   CategoryStat `json:"collection"`
	Full         CategoryStat `json:"full"`
	Correios     CategoryStat `json:"correios"`
	EnvioProprio CategoryStat `json:"envio_proprio"`
	Outro        CategoryStat `json:"outro"`
}

// Category devolve o contador de uma categoria
func (s *ShippingStats) Category(category ShippingCategory) *CategoryStat {
	switch category {
	case ShippingCategoryFlex:
		return &s.Flex
	case ShippingCategoryAgencies:
		return &s.Agencies
	case ShippingCategoryCollection:
		return &s.Collection
	case ShippingCategoryFull:
		return &s.Full
	case ShippingCategoryCorreios:
		return &s.Correios
	case ShippingCategoryEnvioProprio:
		return &s.EnvioProprio
	default:
		return &s.Outro
	}
}

type SalesMetrics struct {
	TotalSales    int       `json:"total_sales"`
	TotalRevenue  float64   `json:"total_revenue"`
	AverageTicket float64   `json:"average_ticket"`
	WindowStart   time.Time `json:"window_start"`
	WindowEnd     time.Time `json:"window_end"`
}

type AdMetrics struct {
	Enabled            bool    `json:"enabled"`
	ActiveCampaigns    int     `json:"active_campaigns"`
	Spend              float64 `json:"spend"`
	Revenue            float64 `json:"revenue"`
	Clicks             int     `json:"clicks"`
	Impressions        int     `json:"impressions"`
	Roas               float64 `json:"roas"`
	Acos               float64 `json:"acos"`
	ItemsWithActiveAds int     `json:"items_with_active_ads"`
}

// MetricsSnapshot é recalculado por inteiro a cada sincronização
type MetricsSnapshot struct {
	AccountID  string             `json:"account_id"`
	Sales      SalesMetrics       `json:"sales"`
	Shipping   ShippingStats      `json:"shipping"`
	Reputation ReputationSnapshot `json:"reputation"`
	Ads        AdMetrics          `json:"ads"`
	ComputedAt time.Time          `json:"computed_at"`
}
