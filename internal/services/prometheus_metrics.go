package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsIngested    *prometheus.CounterVec
	ingestDuration          prometheus.Histogram
	syncPagesApplied        prometheus.Counter
	syncPullRetries         prometheus.Counter
	syncItemsDegraded       prometheus.Counter
	syncItemDuration        prometheus.Histogram
	budgetAdjustments       prometheus.Counter
	autoBudgetsCreated      prometheus.Counter
	dynamicBudgetsGenerated *prometheus.GaugeVec
	notificationsRaised     *prometheus.CounterVec
	webhooksReceived        *prometheus.CounterVec
	schedulerJobDuration    *prometheus.HistogramVec
	circuitBreakerState     *prometheus.GaugeVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsIngested: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_ingested_total",
				Help: "Total number of transactions ingested by source and outcome",
			},
			[]string{"source", "outcome"},
		),
		ingestDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_ingest_duration_milliseconds",
				Help:    "Transaction ingest duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		syncPagesApplied: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sync_pages_applied_total",
				Help: "Total number of bank feed pages applied",
			},
		),
		syncPullRetries: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sync_pull_retries_total",
				Help: "Total number of bank feed pull retries",
			},
		),
		syncItemsDegraded: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sync_items_degraded_total",
				Help: "Total number of items marked degraded after sync failures",
			},
		),
		syncItemDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sync_item_duration_milliseconds",
				Help:    "Per-item sync duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		budgetAdjustments: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "budget_adjustments_total",
				Help: "Total number of overspend budget adjustments applied",
			},
		),
		autoBudgetsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "auto_budgets_created_total",
				Help: "Total number of weekly budgets created by the scheduled top-up",
			},
		),
		dynamicBudgetsGenerated: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dynamic_budgets_generated",
				Help: "Number of dynamic budget rows in the latest snapshot per period",
			},
			[]string{"period"},
		),
		notificationsRaised: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_raised_total",
				Help: "Total number of notifications raised by kind",
			},
			[]string{"kind"},
		),
		webhooksReceived: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhooks_received_total",
				Help: "Total number of bank feed webhooks received by code",
			},
			[]string{"code"},
		),
		schedulerJobDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scheduler_job_duration_milliseconds",
				Help:    "Scheduled job run duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 16),
			},
			[]string{"job"},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transaction.ingested":
		m.transactionsIngested.WithLabelValues(tags["source"], tags["outcome"]).Inc()
	case "sync.page.applied":
		m.syncPagesApplied.Inc()
	case "sync.pull.retry":
		m.syncPullRetries.Inc()
	case "sync.item.degraded":
		m.syncItemsDegraded.Inc()
	case "budget.adjusted":
		m.budgetAdjustments.Inc()
	case "budget.auto_created":
		m.autoBudgetsCreated.Inc()
	case "notification.raised":
		if kind := tags["kind"]; kind != "" {
			m.notificationsRaised.WithLabelValues(kind).Inc()
		}
	case "webhook.received":
		if code := tags["code"]; code != "" {
			m.webhooksReceived.WithLabelValues(code).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transaction.ingest":
		m.ingestDuration.Observe(float64(duration.Milliseconds()))
	case "sync.item":
		m.syncItemDuration.Observe(float64(duration.Milliseconds()))
	case "scheduler.sync":
		m.schedulerJobDuration.WithLabelValues("sync").Observe(float64(duration.Milliseconds()))
	case "scheduler.auto_budget":
		m.schedulerJobDuration.WithLabelValues("auto_budget").Observe(float64(duration.Milliseconds()))
	case "scheduler.dynamic_budget":
		m.schedulerJobDuration.WithLabelValues("dynamic_budget").Observe(float64(duration.Milliseconds()))
	case "scheduler.notification_purge":
		m.schedulerJobDuration.WithLabelValues("notification_purge").Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "dynamic_budgets.generated":
		if period := tags["period"]; period != "" {
			m.dynamicBudgetsGenerated.WithLabelValues(period).Set(value)
		}
	case "circuit_breaker.state":
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}
