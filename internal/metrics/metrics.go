package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Session Metrics
var (
	ActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionsTotal,
			Help: HelpTextActionsTotal,
		},
		[]string{LabelAction, LabelResult},
	)

	ActionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameActionDuration,
			Help:    HelpTextActionDuration,
			Buckets: ActionLatencyBuckets,
		},
		[]string{LabelAction},
	)

	ActionsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActionsInFlight,
			Help: HelpTextActionsInFlight,
		},
	)

	DiscardedResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiscardedResponses,
			Help: HelpTextDiscardedResponses,
		},
		[]string{LabelAction},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsTotal,
			Help: HelpTextNotificationsTotal,
		},
		[]string{LabelKind},
	)

	GrowthTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGrowthTicks,
			Help: HelpTextGrowthTicks,
		},
	)

	BedsReady = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameBedsReady,
			Help: HelpTextBedsReady,
		},
	)
)

// Economy Metrics
var (
	AmbiguousDeltas = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAmbiguousDeltas,
			Help: HelpTextAmbiguousDeltas,
		},
	)

	CoinsClamped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsClamped,
			Help: HelpTextCoinsClamped,
		},
	)
)

// Infrastructure Metrics
var (
	AuthorityRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAuthorityRequests,
			Help: HelpTextAuthorityRequests,
		},
		[]string{LabelEndpoint, LabelStatus},
	)

	AuthorityRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAuthorityRetries,
			Help: HelpTextAuthorityRetries,
		},
		[]string{LabelEndpoint},
	)

	JournalWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJournalWrites,
			Help: HelpTextJournalWrites,
		},
		[]string{LabelResult},
	)

	StreamClients = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameStreamClients,
			Help: HelpTextStreamClients,
		},
		[]string{LabelTransport},
	)

	CatalogRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogRefreshes,
			Help: HelpTextCatalogRefreshes,
		},
		[]string{LabelResult},
	)

	WorkerJobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWorkerJobs,
			Help: HelpTextWorkerJobs,
		},
		[]string{LabelJob, LabelResult},
	)

	JobsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobsDropped,
			Help: HelpTextJobsDropped,
		},
		[]string{LabelJob},
	)

	JobQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameJobQueueDepth,
			Help: HelpTextJobQueueDepth,
		},
	)
)

// HTTP guard metrics
var (
	SecurityEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSecurityEvents,
			Help: HelpTextSecurityEvents,
		},
		[]string{LabelKind},
	)
)
