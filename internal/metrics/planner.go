package metrics

import "time"

// ObserveQuery counts a planner query and records how long it took
func ObserveQuery(query string, start time.Time) {
	PlannerQueries.WithLabelValues(query).Inc()
	PlannerQueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
}

// RecordDiagnostics adds traversal anomalies reported by the planner
func RecordDiagnostics(cycleGuardHits, unknownItems int) {
	if cycleGuardHits > 0 {
		CycleGuardHits.Add(float64(cycleGuardHits))
	}
	if unknownItems > 0 {
		UnknownItems.Add(float64(unknownItems))
	}
}

// SessionCreated tracks a new session
func SessionCreated() {
	SessionsCreated.Inc()
	SessionsActive.Inc()
}

// SessionEvicted tracks a session leaving the store
func SessionEvicted() {
	SessionsEvicted.Inc()
	SessionsActive.Dec()
}
