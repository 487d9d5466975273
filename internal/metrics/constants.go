package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPRequestsRejected = "http_requests_rejected_total"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Item metric names
const (
	MetricNameItemsCreated        = "items_created_total"
	MetricNameItemsUsed           = "items_used_total"
	MetricNameUnsupportedVariants = "items_unsupported_type_total"
	MetricNameAbilitiesSynced     = "items_abilities_synced_total"
)

// Stream metric names
const (
	MetricNameStreamClients       = "item_stream_clients"
	MetricNameStreamEventsDropped = "item_stream_events_dropped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPRequestsRejected = "Total number of requests refused by the client guard, by reason"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Item metric help text
const (
	HelpTextItemsCreated        = "Total number of items created, by type tag"
	HelpTextItemsUsed           = "Total number of item uses, by type tag and outcome"
	HelpTextUnsupportedVariants = "Total number of records rejected for an unknown type tag"
	HelpTextAbilitiesSynced     = "Total number of related abilities updated from a skill"
)

// Stream metric help text
const (
	HelpTextStreamClients       = "Current number of connected item event stream clients"
	HelpTextStreamEventsDropped = "Total number of stream events dropped, by reason"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelItemType = "item_type"
	LabelOwned    = "owned"
	LabelOutcome  = "outcome"
	LabelReason   = "reason"
)

// Stream drop reasons
const (
	DropReasonHubFull    = "hub_full"
	DropReasonClientFull = "client_full"
)

// Client guard rejection reasons
const (
	RejectReasonRateLimit    = "rate_limit"
	RejectReasonAuthLockout  = "auth_lockout"
	RejectReasonUnauthorized = "unauthorized"
)

// UnmatchedRoute labels requests that no route matched.
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
