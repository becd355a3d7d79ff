package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// authEvents counts credential lifecycle outcomes, e.g.
// lms_auth_events_total{event="login",outcome="not_verified"}.
var authEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "lms",
	Name:      "auth_events_total",
	Help:      "Outcomes of registration, login, verification, reset and external login attempts.",
}, []string{"event", "outcome"})

func recordAuthEvent(event, outcome string) {
	authEvents.WithLabelValues(event, outcome).Inc()
}
