package opsnotify

import "github.com/prometheus/client_golang/prometheus"

// Recorder counts pipeline outcomes. A nil *Recorder records nothing.
type Recorder struct {
	events        *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

// NewRecorder registers the ops counters on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ops",
			Name:      "events_total",
			Help:      "Operational events by pipeline outcome",
		}, []string{"source", "type", "severity", "outcome"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ops",
			Name:      "notifications_total",
			Help:      "Alert notifications by delivery outcome",
		}, []string{"outcome"}),
	}
	reg.MustRegister(r.events, r.notifications)
	return r
}

func (r *Recorder) Event(evt NormalizedEvent, outcome EventOutcome) {
	if r == nil {
		return
	}
	r.events.WithLabelValues(evt.Source, evt.Type, evt.Severity.String(), string(outcome)).Inc()
}

func (r *Recorder) Sink(outcome SinkOutcome) {
	if r == nil {
		return
	}
	r.notifications.WithLabelValues(string(outcome)).Inc()
}
