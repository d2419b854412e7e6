package aggregating

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// ShippingCalculator conta anúncios ativos por categoria de envio; um anúncio pode contar em várias categorias
type ShippingCalculator struct{}

func (ShippingCalculator) Calculate(listings []*domain.Listing) domain.ShippingStats {
	stats := domain.ShippingStats{}

	for _, listing := range listings {
		if listing == nil || !listing.IsActive() {
			continue
		}
		stats.Total++

		for _, category := range listing.GetAllShippingTypes() {
			stats.Category(category).Count++
		}
	}

	for _, category := range domain.ShippingCategories {
		stat := stats.Category(category)
		stat.Percentage = percentage(stat.Count, stats.Total)
	}
	stats.Outro.Percentage = percentage(stats.Outro.Count, stats.Total)

	return stats
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}

	return decimal.NewFromInt(int64(count)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(hundred).
		Round(2).
		InexactFloat64()
}
