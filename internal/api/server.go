package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-sync-api/internal/api/handler"
	"github.com/vfg2006/marketplace-sync-api/internal/api/handler/router"
	"github.com/vfg2006/marketplace-sync-api/internal/config"
	"github.com/vfg2006/marketplace-sync-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketplace-sync-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Dependencies struct {
	Authenticator  authenticating.Authenticator
	Database       handler.Pinger
	MetricsHandler http.Handler
	Notifications  handler.NotificationEnqueuer
	Accounts       handler.AccountServices
	CronJobs       map[string]handler.CronService
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	if deps.Authenticator == nil {
		return nil, fmt.Errorf("authenticator é obrigatório")
	}

	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(deps.Database)...),
		router.WithRoutes(handler.Notifications(deps.Notifications)...),
		router.WithRoutes(handler.Accounts(deps.Accounts)...),
		router.WithRoutes(handler.CronJobs(deps.CronJobs)...),
	}
	if deps.MetricsHandler != nil {
		configs = append(configs, router.WithRoutes(handler.Metrics(deps.MetricsHandler)...))
	}

	rt := router.New(configs...)

	chain := alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(deps.Authenticator),
	).Then(rt)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run bloqueia até o contexto ser cancelado e então desliga o servidor
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			return err
		}
		return nil
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
