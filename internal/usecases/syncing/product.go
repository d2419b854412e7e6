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
	"golang.org/x/time/rate"
)

type ProductResult struct {
	Listings []*domain.Listing
	Products *domain.BatchResult
	Stock    *domain.BatchResult
	// Complete indica que a busca de ativos foi percorrida até o fim, sem erro de página nem corte pelo teto
	Complete bool
}

type ProductSyncer struct {
	integrator        mercadolivre.Integrator
	listingRepository repository.ListingRepository
	stock             *StockSyncer
	pageSize          int
	maxItems          int
	requestDelay      time.Duration
	now               func() time.Time
}

func NewProductSyncer(
	cfg config.MarketplaceSync,
	integrator mercadolivre.Integrator,
	listingRepository repository.ListingRepository,
	stock *StockSyncer,
) *ProductSyncer {
	return &ProductSyncer{
		integrator:        integrator,
		listingRepository: listingRepository,
		stock:             stock,
		pageSize:          positiveOr(cfg.ItemPageSize, 50),
		maxItems:          positiveOr(cfg.MaxItems, 500),
		requestDelay:      cfg.ItemRequestDelay(),
		now:               time.Now,
	}
}

// Sync pagina os anúncios ativos até maxItems; cada item é buscado em sequência respeitando o intervalo entre requisições.
// Com a busca completa, anúncios ativos no banco que não apareceram são marcados como inactive
func (s *ProductSyncer) Sync(ctx context.Context, account *domain.MarketplaceAccount, token string) *ProductResult {
	result := &ProductResult{
		Listings: make([]*domain.Listing, 0),
		Products: &domain.BatchResult{},
		Stock:    &domain.BatchResult{},
	}

	logger := logrus.WithField("account_id", account.ID)
	limiter := newDelayLimiter(s.requestDelay)
	seen := make([]string, 0)
	offset := 0

	for len(seen) < s.maxItems {
		if ctx.Err() != nil {
			return result
		}

		limit := min(s.pageSize, s.maxItems-len(seen))
		page, err := s.integrator.SearchActiveItemIDs(ctx, token, account.ExternalUserID, offset, limit)
		if err != nil {
			logger.WithError(err).WithField("offset", offset).Warn("Erro ao buscar página de anúncios")
			result.Products.Failure(fmt.Sprintf("page:%d", offset), err)
			return result
		}

		if len(page.IDs) == 0 {
			result.Complete = true
			break
		}

		truncated := false
		for _, itemID := range page.IDs {
			if len(seen) >= s.maxItems {
				truncated = true
				break
			}
			seen = append(seen, itemID)

			if err := limiter.Wait(ctx); err != nil {
				return result
			}

			listing, err := s.syncItem(ctx, account, token, itemID)
			if err != nil {
				logger.WithError(err).WithField("item_id", itemID).Warn("Erro ao sincronizar anúncio")
				result.Products.Failure(itemID, err)
				continue
			}

			result.Products.Success(itemID)
			result.Listings = append(result.Listings, listing)

			if listing.NeedsStockSync() {
				s.stock.SyncItem(ctx, account, token, listing, result.Stock)
			}
		}

		offset += len(page.IDs)
		if !truncated && offset >= page.Total {
			result.Complete = true
			break
		}
	}

	if result.Complete && ctx.Err() == nil {
		s.deactivateMissing(ctx, account, seen, result)
	}

	logger.WithFields(logrus.Fields{
		"synced":   result.Products.Synced(),
		"errors":   result.Products.Errors(),
		"complete": result.Complete,
	}).Info("Anúncios sincronizados")

	return result
}

func (s *ProductSyncer) deactivateMissing(ctx context.Context, account *domain.MarketplaceAccount, seen []string, result *ProductResult) {
	affected, err := s.listingRepository.MarkInactiveExcept(ctx, account.ID, seen)
	if err != nil {
		logrus.WithError(err).WithField("account_id", account.ID).Error("Erro ao desativar anúncios ausentes da busca")
		result.Products.Failure("inactive", err)
		return
	}

	if affected > 0 {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"affected":   affected,
		}).Info("Anúncios ausentes da busca marcados como inativos")
	}
}

func (s *ProductSyncer) syncItem(ctx context.Context, account *domain.MarketplaceAccount, token, itemID string) (*domain.Listing, error) {
	item, err := s.integrator.GetItemDetail(ctx, token, itemID)
	if err != nil {
		return nil, err
	}

	listing := domain.BuildListing(account.ID, item, s.now())
	if err := s.listingRepository.SaveOrUpdate(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// newDelayLimiter espaça requisições sequenciais; delay <= 0 desativa o limite
func newDelayLimiter(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}

func positiveOr(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}
