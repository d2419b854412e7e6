package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-sync-api/internal/config"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

type OrderSyncer struct {
	integrator      mercadolivre.Integrator
	orderRepository repository.OrderRepository
	pageSize        int
	maxOrders       int
	maxPages        int
	now             func() time.Time
}

func NewOrderSyncer(cfg config.MarketplaceSync, integrator mercadolivre.Integrator, orderRepository repository.OrderRepository) *OrderSyncer {
	return &OrderSyncer{
		integrator:      integrator,
		orderRepository: orderRepository,
		pageSize:        positiveOr(cfg.OrderPageSize, 50),
		maxOrders:       positiveOr(cfg.MaxOrders, 1000),
		maxPages:        positiveOr(cfg.MaxOrderPages, 10),
		now:             time.Now,
	}
}

// Sync pagina pedidos criados em [from, to] com teto de páginas e de pedidos
func (s *OrderSyncer) Sync(ctx context.Context, account *domain.MarketplaceAccount, token string, from, to time.Time) ([]*domain.Order, *domain.BatchResult) {
	batch := &domain.BatchResult{}
	orders := make([]*domain.Order, 0)
	logger := logrus.WithField("account_id", account.ID)

	offset := 0
	for page := 0; page < s.maxPages && len(orders) < s.maxOrders; page++ {
		if ctx.Err() != nil {
			return orders, batch
		}

		result, err := s.integrator.SearchOrders(ctx, token, account.ExternalUserID, from, to, offset, s.pageSize)
		if err != nil {
			logger.WithError(err).WithField("offset", offset).Warn("Erro ao buscar página de pedidos")
			batch.Failure(fmt.Sprintf("page:%d", offset), err)
			break
		}

		if len(result.Orders) == 0 {
			break
		}

		syncedAt := s.now()
		for _, order := range result.Orders {
			if len(orders) >= s.maxOrders {
				break
			}

			order.AccountID = account.ID
			order.SyncedAt = syncedAt

			if err := s.orderRepository.SaveOrUpdate(ctx, order); err != nil {
				logger.WithError(err).WithField("order_id", order.ExternalOrderID).Error("Erro ao salvar pedido")
				batch.Failure(order.ExternalOrderID, err)
				continue
			}

			batch.Success(order.ExternalOrderID)
			orders = append(orders, order)
		}

		offset += len(result.Orders)
		if offset >= result.Total {
			break
		}
	}

	logger.WithFields(logrus.Fields{
		"synced": batch.Synced(),
		"errors": batch.Errors(),
	}).Info("Pedidos sincronizados")

	return orders, batch
}
