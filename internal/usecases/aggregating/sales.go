package aggregating

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

// CalculateSalesMetrics considera apenas pedidos pagos criados dentro da janela [start, end]
func CalculateSalesMetrics(orders []*domain.Order, start, end time.Time) domain.SalesMetrics {
	metrics := domain.SalesMetrics{
		WindowStart: start,
		WindowEnd:   end,
	}

	revenue := decimal.Zero
	for _, order := range orders {
		if order == nil || !order.IsPaid() {
			continue
		}
		if order.DateCreated.Before(start) || order.DateCreated.After(end) {
			continue
		}

		metrics.TotalSales++
		revenue = revenue.Add(decimal.NewFromFloat(order.TotalAmount))
	}

	metrics.TotalRevenue = revenue.Round(2).InexactFloat64()
	if metrics.TotalSales > 0 {
		metrics.AverageTicket = revenue.
			Div(decimal.NewFromInt(int64(metrics.TotalSales))).
			Round(2).
			InexactFloat64()
	}

	return metrics
}
