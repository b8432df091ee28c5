package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry served on /metrics.
	Registry = prometheus.NewRegistry()

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	PlansTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "load_plans_total", Help: "Load plans computed."},
	)
	PlannedLoads = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "load_plan_trucks", Help: "Trucks per load plan.", Buckets: []float64{1, 2, 3, 5, 8, 13, 21}},
	)
	UnassignedItems = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "load_plan_unassigned_items_total", Help: "Items no truck in the catalog could carry."},
	)
	PermitCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "permit_cache_lookups_total", Help: "Route permit cache lookups by result."},
		[]string{"result"},
	)

	// OperationDuration is fed by Time for every timed adapter and service call.
	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "operation_duration_seconds", Help: "Duration of timed operations.", Buckets: prometheus.DefBuckets},
		[]string{"op", "result"},
	)
)

var regOnce sync.Once

// RegisterDefault registers the service collectors on Registry. Safe to call
// more than once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(PlansTotal)
		Registry.MustRegister(PlannedLoads)
		Registry.MustRegister(UnassignedItems)
		Registry.MustRegister(PermitCacheLookups)
		Registry.MustRegister(OperationDuration)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// RecordPlan counts a finished load plan.
func RecordPlan(trucks, unassigned int) {
	PlansTotal.Inc()
	PlannedLoads.Observe(float64(trucks))
	UnassignedItems.Add(float64(unassigned))
}
