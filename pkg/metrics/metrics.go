package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

const (
	MetricSyncRunsTotal          = "marketplace_sync_runs_total"
	MetricSyncResourceItemsTotal = "marketplace_sync_resource_items_total"
	MetricSyncDurationSeconds    = "marketplace_sync_duration_seconds"
	MetricWebhookNotifications   = "marketplace_webhook_notifications_total"
)

const (
	ResultSuccess    = "success"
	ResultWithErrors = "with_errors"
	ResultPartial    = "partial"
	ResultFatal      = "fatal"
)

// Recorder usa um registry próprio; métodos em Recorder nil não fazem nada
type Recorder struct {
	registry             *prometheus.Registry
	syncRuns             *prometheus.CounterVec
	resourceItems        *prometheus.CounterVec
	syncDuration         prometheus.Histogram
	webhookNotifications *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	r := &Recorder{
		registry: registry,
		syncRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricSyncRunsTotal,
				Help: "Execuções de sincronização por conta, por resultado.",
			},
			[]string{"result"},
		),
		resourceItems: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricSyncResourceItemsTotal,
				Help: "Itens sincronizados por recurso e desfecho.",
			},
			[]string{"resource", "outcome"},
		),
		syncDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    MetricSyncDurationSeconds,
				Help:    "Duração de uma sincronização completa de conta.",
				Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
			},
		),
		webhookNotifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricWebhookNotifications,
				Help: "Notificações do marketplace processadas, por tópico e status.",
			},
			[]string{"topic", "status"},
		),
	}

	registry.MustRegister(
		r.syncRuns,
		r.resourceItems,
		r.syncDuration,
		r.webhookNotifications,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

func (r *Recorder) ObserveSync(summary *domain.SyncSummary) {
	if r == nil || summary == nil {
		return
	}

	r.syncRuns.WithLabelValues(SyncResult(summary)).Inc()

	if !summary.FinishedAt.IsZero() {
		r.syncDuration.Observe(summary.FinishedAt.Sub(summary.StartedAt).Seconds())
	}

	for resource, res := range summary.Resources {
		r.resourceItems.WithLabelValues(string(resource), "synced").Add(float64(res.Synced))
		r.resourceItems.WithLabelValues(string(resource), "error").Add(float64(res.Errors))
	}
}

func (r *Recorder) ObserveWebhook(topic string, status domain.WebhookStatus) {
	if r == nil {
		return
	}
	r.webhookNotifications.WithLabelValues(topic, string(status)).Inc()
}

func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func SyncResult(summary *domain.SyncSummary) string {
	switch {
	case summary.Fatal:
		return ResultFatal
	case summary.Partial:
		return ResultPartial
	case summary.TotalErrors() > 0:
		return ResultWithErrors
	default:
		return ResultSuccess
	}
}
