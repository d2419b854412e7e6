package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/lock"
	repomocks "github.com/vfg2006/marketplace-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketplace-sync-api/internal/api/handler/mocks"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
	"github.com/vfg2006/marketplace-sync-api/internal/usecases/processing"
	"github.com/vfg2006/marketplace-sync-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func withAccountID(req *http.Request, id string) *http.Request {
	params := httprouter.Params{{Key: "id", Value: id}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestReceiveNotification(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		setup func(queue *mocks.MockNotificationEnqueuer)
	}{
		{
			name: "notificação válida é enfileirada",
			body: `{"topic":"orders_v2","resource":"/orders/2000001","user_id":123,"application_id":99}`,
			setup: func(queue *mocks.MockNotificationEnqueuer) {
				queue.EXPECT().Enqueue(gomock.Any()).DoAndReturn(func(n domain.Notification) error {
					assert.Equal(t, domain.TopicOrders, n.Topic)
					assert.Equal(t, int64(123), n.UserID)
					assert.Equal(t, "2000001", n.ResourceID())
					return nil
				})
			},
		},
		{
			name: "fila cheia ainda responde 200",
			body: `{"topic":"items","resource":"/items/MLB1","user_id":123}`,
			setup: func(queue *mocks.MockNotificationEnqueuer) {
				queue.EXPECT().Enqueue(gomock.Any()).Return(processing.ErrQueueFull)
			},
		},
		{
			name:  "payload inválido não é enfileirado",
			body:  `{"topic":`,
			setup: func(queue *mocks.MockNotificationEnqueuer) {},
		},
		{
			name:  "payload sem resource não é enfileirado",
			body:  `{"topic":"items","user_id":123}`,
			setup: func(queue *mocks.MockNotificationEnqueuer) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			queue := mocks.NewMockNotificationEnqueuer(ctrl)
			tt.setup(queue)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/notifications", strings.NewReader(tt.body))

			ReceiveNotification(queue).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

type accountMocks struct {
	syncer     *mocks.MockAccountSyncer
	accounts   *repomocks.MockAccountRepository
	metrics    *repomocks.MockMetricsRepository
	milestones *repomocks.MockMilestoneRepository
}

func newAccountServices(t *testing.T) (AccountServices, *accountMocks) {
	ctrl := gomock.NewController(t)
	m := &accountMocks{
		syncer:     mocks.NewMockAccountSyncer(ctrl),
		accounts:   repomocks.NewMockAccountRepository(ctrl),
		metrics:    repomocks.NewMockMetricsRepository(ctrl),
		milestones: repomocks.NewMockMilestoneRepository(ctrl),
	}
	return AccountServices{
		Syncer:              m.syncer,
		AccountRepository:   m.accounts,
		MetricsRepository:   m.metrics,
		MilestoneRepository: m.milestones,
	}, m
}

func TestSyncAccount(t *testing.T) {
	account := &domain.MarketplaceAccount{ID: "acc-1", ExternalUserID: "123", IsActive: true}

	tests := []struct {
		name           string
		setup          func(m *accountMocks)
		expectedStatus int
		validate       func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "retorna o resumo da sincronização",
			setup: func(m *accountMocks) {
				m.accounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(account, nil)
				m.syncer.EXPECT().SyncAccount(gomock.Any(), account).Return(&domain.SyncSummary{AccountID: "acc-1", RunID: "run-1"}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var summary domain.SyncSummary
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
				assert.Equal(t, "run-1", summary.RunID)
			},
		},
		{
			name: "conta inexistente",
			setup: func(m *accountMocks) {
				m.accounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrAccountNotFound, decodeAPIError(t, rec).Code)
			},
		},
		{
			name: "sincronização em andamento",
			setup: func(m *accountMocks) {
				m.accounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(account, nil)
				m.syncer.EXPECT().SyncAccount(gomock.Any(), account).Return(nil, lock.ErrAlreadyLocked)
			},
			expectedStatus: http.StatusConflict,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrSyncAlreadyRunning, decodeAPIError(t, rec).Code)
			},
		},
		{
			name: "conta precisa de reautorização",
			setup: func(m *accountMocks) {
				m.accounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(account, nil)
				m.syncer.EXPECT().SyncAccount(gomock.Any(), account).
					Return(&domain.SyncSummary{AccountID: "acc-1", Fatal: true}, domain.NewAuthError("acc-1", domain.ErrInvalidGrant))
			},
			expectedStatus: http.StatusPreconditionFailed,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrReauthorizationRequired, body.Code)
				assert.NotNil(t, body.Details)
			},
		},
		{
			name: "execução interrompida retorna resumo parcial",
			setup: func(m *accountMocks) {
				m.accounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(account, nil)
				m.syncer.EXPECT().SyncAccount(gomock.Any(), account).
					Return(&domain.SyncSummary{AccountID: "acc-1", Partial: true}, context.DeadlineExceeded)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "falha fatal fora de autenticação",
			setup: func(m *accountMocks) {
				m.accounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(account, nil)
				m.syncer.EXPECT().SyncAccount(gomock.Any(), account).
					Return(&domain.SyncSummary{AccountID: "acc-1", Fatal: true}, domain.ErrUpstreamUnavailable)
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name: "erro no banco ao buscar conta",
			setup: func(m *accountMocks) {
				m.accounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(nil, errors.New("db"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, m := newAccountServices(t)
			tt.setup(m)

			rec := httptest.NewRecorder()
			req := withAccountID(httptest.NewRequest(http.MethodPost, "/v1/accounts/acc-1/sync", nil), "acc-1")

			SyncAccount(services).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func TestGetAccountMetrics(t *testing.T) {
	account := &domain.MarketplaceAccount{ID: "acc-1"}

	t.Run("retorna o último snapshot", func(t *testing.T) {
		services, m := newAccountServices(t)
		m.accounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(account, nil)
		m.metrics.EXPECT().GetByAccountID(gomock.Any(), "acc-1").Return(&domain.MetricsSnapshot{AccountID: "acc-1"}, nil)

		rec := httptest.NewRecorder()
		GetAccountMetrics(services).ServeHTTP(rec, withAccountID(httptest.NewRequest(http.MethodGet, "/", nil), "acc-1"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"acc-1"`)
	})

	t.Run("conta sem métricas", func(t *testing.T) {
		services, m := newAccountServices(t)
		m.accounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(account, nil)
		m.metrics.EXPECT().GetByAccountID(gomock.Any(), "acc-1").Return(nil, nil)

		rec := httptest.NewRecorder()
		GetAccountMetrics(services).ServeHTTP(rec, withAccountID(httptest.NewRequest(http.MethodGet, "/", nil), "acc-1"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrMetricsNotFound, decodeAPIError(t, rec).Code)
	})
}

func TestGetAccountMilestones(t *testing.T) {
	services, m := newAccountServices(t)
	m.accounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(&domain.MarketplaceAccount{ID: "acc-1"}, nil)
	m.milestones.EXPECT().ListByAccount(gomock.Any(), "acc-1").Return(nil, nil)

	rec := httptest.NewRecorder()
	GetAccountMilestones(services).ServeHTTP(rec, withAccountID(httptest.NewRequest(http.MethodGet, "/", nil), "acc-1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCronHandlers(t *testing.T) {
	withType := func(req *http.Request, cronType string) *http.Request {
		params := httprouter.Params{{Key: "type", Value: cronType}}
		return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
	}

	t.Run("dispara o ciclo manual", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCronService(ctrl)
		service.EXPECT().TriggerManualSync().Return(true)

		rec := httptest.NewRecorder()
		req := withType(httptest.NewRequest(http.MethodPost, "/", nil), CronJobTypeMarketplaceSync)
		RunCronJob(map[string]CronService{CronJobTypeMarketplaceSync: service}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("ciclo em andamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCronService(ctrl)
		service.EXPECT().TriggerManualSync().Return(false)

		rec := httptest.NewRecorder()
		req := withType(httptest.NewRequest(http.MethodPost, "/", nil), CronJobTypeMarketplaceSync)
		RunCronJob(map[string]CronService{CronJobTypeMarketplaceSync: service}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := withType(httptest.NewRequest(http.MethodPost, "/", nil), "meta")
		RunCronJob(map[string]CronService{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("status agrupado por tipo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCronService(ctrl)
		service.EXPECT().GetStatus().Return(map[string]any{"sync_enabled": true})

		rec := httptest.NewRecorder()
		GetCronStatus(map[string]CronService{CronJobTypeMarketplaceSync: service}).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"marketplace-sync":{"sync_enabled":true}}`, rec.Body.String())
	})
}

func TestHealthcheckHandler(t *testing.T) {
	t.Run("banco disponível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockPinger(ctrl)
		db.EXPECT().Ping(gomock.Any()).Return(nil)

		rec := httptest.NewRecorder()
		HealthcheckHandler(db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("banco indisponível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockPinger(ctrl)
		db.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		rec := httptest.NewRecorder()
		HealthcheckHandler(db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
