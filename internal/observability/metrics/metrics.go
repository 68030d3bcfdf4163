package metrics

import "github.com/prometheus/client_golang/prometheus"

// KioskMetrics exposes counters/histograms for the kiosk flow.
type KioskMetrics struct {
	sessionsStarted prometheus.Counter
	triageTotal     *prometheus.CounterVec
	bookingsTotal   *prometheus.CounterVec
	resetsTotal     prometheus.Counter
	analysisLatency prometheus.Histogram
}

func NewKioskMetrics(reg prometheus.Registerer) *KioskMetrics {
	m := &KioskMetrics{
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "kiosk",
			Subsystem: "flow",
			Name:      "sessions_started_total",
			Help:      "Total patient sessions created",
		}),
		triageTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kiosk",
			Subsystem: "flow",
			Name:      "triage_total",
			Help:      "Total triage resolutions by recommended department",
		}, []string{"department"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kiosk",
			Subsystem: "flow",
			Name:      "bookings_total",
			Help:      "Total confirmed appointments by facility",
		}, []string{"facility_id"}),
		resetsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "kiosk",
			Subsystem: "flow",
			Name:      "resets_total",
			Help:      "Total start-new-consultation resets",
		}),
		analysisLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "kiosk",
			Subsystem: "flow",
			Name:      "analysis_latency_seconds",
			Help:      "Wall-clock duration of the symptom analysis step",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.sessionsStarted, m.triageTotal, m.bookingsTotal, m.resetsTotal, m.analysisLatency)
	return m
}

func (m *KioskMetrics) ObserveSessionStarted() {
	if m == nil {
		return
	}
	m.sessionsStarted.Inc()
}

func (m *KioskMetrics) ObserveTriage(department string) {
	if m == nil {
		return
	}
	m.triageTotal.WithLabelValues(department).Inc()
}

func (m *KioskMetrics) ObserveBooking(facilityID string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(facilityID).Inc()
}

func (m *KioskMetrics) ObserveReset() {
	if m == nil {
		return
	}
	m.resetsTotal.Inc()
}

func (m *KioskMetrics) ObserveAnalysisLatency(seconds float64) {
	if m == nil {
		return
	}
	m.analysisLatency.Observe(seconds)
}
