// Package metrics holds the Prometheus counters of the front desk.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hotel"

// Metrics is safe to use as a nil pointer; every method is then a no-op.
type Metrics struct {
	logins            *prometheus.CounterVec
	checkIns          prometheus.Counter
	cleaningCreated   prometheus.Counter
	cleaningCompleted prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		logins: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
		checkIns: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkins_total",
			Help:      "Guests checked in.",
		}),
		cleaningCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cleaning_tasks_created_total",
			Help:      "Cleaning tasks requested.",
		}),
		cleaningCompleted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cleaning_tasks_completed_total",
			Help:      "Cleaning tasks marked completed.",
		}),
	}
}

func (m *Metrics) LoginAttempt(ok bool) {
	if m == nil {
		return
	}
	result := "failure"
	if ok {
		result = "success"
	}
	m.logins.WithLabelValues(result).Inc()
}

func (m *Metrics) CheckIn() {
	if m == nil {
		return
	}
	m.checkIns.Inc()
}

func (m *Metrics) CleaningTaskCreated() {
	if m == nil {
		return
	}
	m.cleaningCreated.Inc()
}

func (m *Metrics) CleaningTaskCompleted() {
	if m == nil {
		return
	}
	m.cleaningCompleted.Inc()
}

// Handler serves the exposition format for g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
