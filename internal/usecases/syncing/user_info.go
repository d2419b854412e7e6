package syncing

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

// UserInfoSyncer busca o perfil do vendedor; não persiste nada, alimenta o agregador
type UserInfoSyncer struct {
	integrator mercadolivre.Integrator
}

func NewUserInfoSyncer(integrator mercadolivre.Integrator) *UserInfoSyncer {
	return &UserInfoSyncer{integrator: integrator}
}

func (s *UserInfoSyncer) Sync(ctx context.Context, account *domain.MarketplaceAccount, token string) (*domain.SellerProfile, *domain.BatchResult) {
	batch := &domain.BatchResult{}

	profile, err := s.integrator.GetSellerProfile(ctx, token, account.ExternalUserID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", account.ID).Warn("Erro ao buscar perfil do vendedor")
		batch.Failure(account.ExternalUserID, err)
		return nil, batch
	}

	batch.Success(account.ExternalUserID)
	return profile, batch
}
