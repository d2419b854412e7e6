package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/vfg2006/marketplace-sync-api/internal/domain"
	"github.com/vfg2006/marketplace-sync-api/internal/usecases/processing"
	"github.com/vfg2006/marketplace-sync-api/pkg/log"
)

const maxNotificationBody = 64 << 10

// ReceiveNotification confirma o recebimento imediatamente; o processamento é assíncrono.
// Payload inválido ou fila cheia também respondem 200, a reentrega do marketplace não resolveria nenhum dos dois.
func ReceiveNotification(queue NotificationEnqueuer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var notification domain.Notification
		body, err := io.ReadAll(io.LimitReader(r.Body, maxNotificationBody))
		if err == nil {
			err = json.Unmarshal(body, &notification)
		}

		switch {
		case err != nil:
			logger.WithError(err).Warn("Notificação com payload inválido")
		case notification.Topic == "" || notification.Resource == "":
			logger.Warn("Notificação sem topic ou resource")
		default:
			logger = logger.WithFields(log.Fields{
				"topic":    notification.Topic,
				"resource": notification.Resource,
			})

			if err := queue.Enqueue(notification); err != nil {
				if errors.Is(err, processing.ErrQueueFull) {
					logger.Warn("Fila de notificações cheia, notificação descartada")
				} else {
					logger.WithError(err).Error("Erro ao enfileirar notificação")
				}
			}
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "received"})
	})
}
