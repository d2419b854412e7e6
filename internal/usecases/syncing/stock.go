package syncing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

type StockSyncer struct {
	integrator      mercadolivre.Integrator
	stockRepository repository.StockRepository
	now             func() time.Time
}

func NewStockSyncer(integrator mercadolivre.Integrator, stockRepository repository.StockRepository) *StockSyncer {
	return &StockSyncer{
		integrator:      integrator,
		stockRepository: stockRepository,
		now:             time.Now,
	}
}

// SyncItem busca o estoque fulfillment do inventário do anúncio, classifica e grava
func (s *StockSyncer) SyncItem(ctx context.Context, account *domain.MarketplaceAccount, token string, listing *domain.Listing, batch *domain.BatchResult) {
	if !listing.NeedsStockSync() {
		return
	}
	inventoryID := *listing.InventoryID

	record, err := s.integrator.GetFulfillmentStock(ctx, token, inventoryID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id":   account.ID,
			"inventory_id": inventoryID,
		}).Warn("Erro ao buscar estoque fulfillment")
		batch.Failure(inventoryID, err)
		return
	}

	record.AccountID = account.ID
	record.InventoryID = inventoryID
	if record.ExternalItemID == "" {
		record.ExternalItemID = listing.ExternalItemID
	}
	record.StockStatus = domain.ClassifyStockStatus(record.AvailableUnits, record.DamagedUnits, record.LostUnits)
	record.SyncedAt = s.now()

	if err := s.stockRepository.SaveOrUpdate(ctx, record); err != nil {
		logrus.WithError(err).WithField("inventory_id", inventoryID).Error("Erro ao salvar estoque")
		batch.Failure(inventoryID, err)
		return
	}

	batch.Success(inventoryID)
}
