package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Session metric names
const (
	MetricNameActionsTotal       = "garden_actions_total"
	MetricNameActionDuration     = "garden_action_duration_seconds"
	MetricNameActionsInFlight    = "garden_actions_in_flight"
	MetricNameNotificationsTotal = "garden_notifications_total"
	MetricNameAmbiguousDeltas    = "garden_economy_ambiguous_deltas_total"
	MetricNameCoinsClamped       = "garden_economy_coins_clamped_total"
	MetricNameGrowthTicks        = "garden_growth_ticks_total"
	MetricNameBedsReady          = "garden_beds_ready"
	MetricNameDiscardedResponses = "garden_discarded_responses_total"
	MetricNameAuthorityRequests  = "garden_authority_requests_total"
	MetricNameAuthorityRetries   = "garden_authority_retries_total"
	MetricNameJournalWrites      = "garden_journal_writes_total"
	MetricNameStreamClients      = "garden_stream_clients"
	MetricNameCatalogRefreshes   = "garden_catalog_refreshes_total"
)

// Worker metric names
const (
	MetricNameWorkerJobs    = "worker_jobs_total"
	MetricNameJobsDropped   = "worker_jobs_dropped_total"
	MetricNameJobQueueDepth = "worker_job_queue_depth"
)

// HTTP guard metric names
const (
	MetricNameSecurityEvents = "http_security_events_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Session metric help text
const (
	HelpTextActionsTotal       = "Total number of dispatched garden actions by outcome"
	HelpTextActionDuration     = "Round-trip latency of garden actions in seconds"
	HelpTextActionsInFlight    = "Number of garden actions awaiting a server reply"
	HelpTextNotificationsTotal = "Total number of notifications posted"
	HelpTextAmbiguousDeltas    = "Responses carrying both a reward and a coinsSpent amount"
	HelpTextCoinsClamped       = "Merges that would have driven coins below zero"
	HelpTextGrowthTicks        = "Total number of growth clock ticks"
	HelpTextBedsReady          = "Number of beds ready for harvest"
	HelpTextDiscardedResponses = "Action responses discarded because the session moved on"
	HelpTextAuthorityRequests  = "Requests sent to the authority service"
	HelpTextAuthorityRetries   = "Retried requests to the authority service"
	HelpTextJournalWrites      = "Action journal writes by result"
	HelpTextStreamClients      = "Connected stream clients by transport"
	HelpTextCatalogRefreshes   = "Catalog refresh attempts by result"
)

// Worker metric help text
const (
	HelpTextWorkerJobs    = "Background jobs processed by job and result"
	HelpTextJobsDropped   = "Background jobs dropped because the queue was full"
	HelpTextJobQueueDepth = "Jobs waiting in the worker queue"
)

const HelpTextSecurityEvents = "Rejected requests by reason (failed_auth, rate_limited)"

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelAction    = "action"
	LabelResult    = "result"
	LabelKind      = "kind"
	LabelEndpoint  = "endpoint"
	LabelTransport = "transport"
	LabelJob       = "job"
)

// Result label values
const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultInvalid  = "invalid"
	ResultError    = "error"
	ResultBusy     = "busy"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

var (
	HTTPLatencyBuckets   = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
	ActionLatencyBuckets = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}
)
