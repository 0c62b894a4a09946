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

// Planner metric names
const (
	MetricNamePlannerQueries       = "planner_queries_total"
	MetricNamePlannerQueryDuration = "planner_query_duration_seconds"
	MetricNameCycleGuardHits       = "planner_cycle_guard_hits_total"
	MetricNameUnknownItems         = "planner_unknown_items_total"
	MetricNameBuildingCorrections  = "planner_building_corrections_total"
)

// Catalog and session metric names
const (
	MetricNameCatalogItems    = "catalog_items"
	MetricNameSessionsActive  = "sessions_active"
	MetricNameSessionsCreated = "sessions_created_total"
	MetricNameSessionsEvicted = "sessions_evicted_total"
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

// Planner metric help text
const (
	HelpTextPlannerQueries       = "Total number of planner queries by kind"
	HelpTextPlannerQueryDuration = "Planner query latency in seconds"
	HelpTextCycleGuardHits       = "Times a traversal stopped on an item already on its path"
	HelpTextUnknownItems         = "Unknown item ids met while traversing recipes"
	HelpTextBuildingCorrections  = "Building requirements rewritten by the correction table"
)

// Catalog and session help text
const (
	HelpTextCatalogItems    = "Number of items in the loaded catalog"
	HelpTextSessionsActive  = "Number of planner sessions held in memory"
	HelpTextSessionsCreated = "Total number of planner sessions created"
	HelpTextSessionsEvicted = "Total number of planner sessions removed or expired"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelQuery  = "query"
)

// Query kinds used for the planner label
const (
	QueryEffective    = "effective"
	QueryMaterials    = "materials"
	QueryAllMaterials = "materials_all"
	QueryShopping     = "shopping"
	QuerySteps        = "steps"
	QueryBuildings    = "buildings"
	QueryCalculate    = "calculate"
	QueryTree         = "tree"
	QueryReport       = "report"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// PlannerLatencyBuckets covers in-memory graph walks, from 10µs to 1s
var PlannerLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1, .5, 1}

// UnmatchedRoute labels requests that did not hit a registered route
const UnmatchedRoute = "unmatched"
