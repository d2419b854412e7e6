package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketplace-sync-api/pkg/apiErrors"
	"github.com/vfg2006/marketplace-sync-api/pkg/log"
)

const CronJobTypeMarketplaceSync = "marketplace-sync"

// RunCronJob dispara manualmente um ciclo agendado
func RunCronJob(services map[string]CronService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		service, ok := services[cronType]
		if !ok || service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: "+CronJobTypeMarketplaceSync, nil)
			return
		}

		if !service.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, "Cron job já em andamento", nil)
			return
		}

		log.ForContext(r.Context()).WithField("resource", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

func GetCronStatus(services map[string]CronService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, service := range services {
			if service != nil {
				status[name] = service.GetStatus()
			}
		}

		writeJSON(w, http.StatusOK, status)
	})
}
