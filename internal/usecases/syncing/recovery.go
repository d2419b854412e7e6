package syncing

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/integrator/mercadolivre"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

type RecoveryResult struct {
	Enabled bool
	Program *domain.RecoveryProgram
	Batch   *domain.BatchResult
}

// RecoveryChecker consulta o programa de recuperação de reputação; falhas não interrompem a sincronização
type RecoveryChecker struct {
	integrator mercadolivre.Integrator
}

func NewRecoveryChecker(integrator mercadolivre.Integrator) *RecoveryChecker {
	return &RecoveryChecker{integrator: integrator}
}

func (c *RecoveryChecker) Check(ctx context.Context, account *domain.MarketplaceAccount, token string) *RecoveryResult {
	result := &RecoveryResult{Batch: &domain.BatchResult{}}

	program, err := c.integrator.GetRecoveryProgram(ctx, token, account.ExternalUserID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", account.ID).Warn("Erro ao consultar programa de recuperação")
		result.Batch.Failure(account.ExternalUserID, err)
		result.Enabled = account.RecoveryProgramEnabled
		return result
	}

	result.Program = program
	result.Enabled = program != nil && program.Enrolled
	result.Batch.Success(account.ExternalUserID)

	return result
}
