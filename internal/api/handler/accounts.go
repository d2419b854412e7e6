package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/lock"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
	"github.com/vfg2006/marketplace-sync-api/pkg/apiErrors"
	"github.com/vfg2006/marketplace-sync-api/pkg/log"
)

type AccountServices struct {
	Syncer              AccountSyncer
	AccountRepository   repository.AccountRepository
	MetricsRepository   repository.MetricsRepository
	MilestoneRepository repository.MilestoneRepository
}

// loadAccount escreve a resposta de erro e retorna nil quando a conta não pode ser usada
func loadAccount(w http.ResponseWriter, r *http.Request, repo repository.AccountRepository) *domain.MarketplaceAccount {
	accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if accountID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
		return nil
	}

	account, err := repo.GetByID(r.Context(), accountID)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).WithField("account_id", accountID).Error("Erro ao buscar conta")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar conta", nil)
		return nil
	}
	if account == nil {
		apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", nil)
		return nil
	}

	return account
}

// SyncAccount executa a sincronização completa de forma síncrona e retorna o resumo
func SyncAccount(services AccountServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account := loadAccount(w, r, services.AccountRepository)
		if account == nil {
			return
		}

		logger := log.ForContext(r.Context()).WithField("account_id", account.ID)
		logger.Info("Sincronização manual da conta solicitada")

		// A execução não acompanha a conexão do cliente; o limite é o timeout por conta
		summary, err := services.Syncer.SyncAccount(context.WithoutCancel(r.Context()), account)
		if err != nil {
			var authErr *domain.AuthError
			switch {
			case errors.Is(err, lock.ErrAlreadyLocked):
				apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, "Sincronização da conta já em andamento", nil)
			case errors.As(err, &authErr):
				apiErrors.WriteError(w, apiErrors.ErrReauthorizationRequired, "Conta precisa ser reconectada ao Mercado Livre", summary)
			case summary != nil && summary.Partial:
				writeJSON(w, http.StatusOK, summary)
			case summary != nil:
				logger.WithError(err).Error("Sincronização da conta falhou")
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao sincronizar conta", summary)
			default:
				logger.WithError(err).Error("Sincronização da conta falhou")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao sincronizar conta", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

func GetAccountMetrics(services AccountServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account := loadAccount(w, r, services.AccountRepository)
		if account == nil {
			return
		}

		snapshot, err := services.MetricsRepository.GetByAccountID(r.Context(), account.ID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("account_id", account.ID).Error("Erro ao buscar métricas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas", nil)
			return
		}
		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrMetricsNotFound, "Conta ainda não possui métricas calculadas", nil)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	})
}

func GetAccountMilestones(services AccountServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account := loadAccount(w, r, services.AccountRepository)
		if account == nil {
			return
		}

		milestones, err := services.MilestoneRepository.ListByAccount(r.Context(), account.ID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("account_id", account.ID).Error("Erro ao buscar marcos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar marcos", nil)
			return
		}
		if milestones == nil {
			milestones = []*domain.Milestone{}
		}

		writeJSON(w, http.StatusOK, milestones)
	})
}
