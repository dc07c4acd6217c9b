package kafka

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultPublished = "published"
	resultFailed    = "failed"
)

var eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "toy_events_published_total",
	Help: "Toy events handed to the broker, by event type and result.",
}, []string{"event_type", "result"})
