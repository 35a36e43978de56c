// Package metrics holds the relay's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "unreverse"

// Reply results.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Relay counts what the bot receives and sends. A nil *Relay is valid and
// records nothing.
type Relay struct {
	registry *prometheus.Registry

	messages       *prometheus.CounterVec
	replies        *prometheus.CounterVec
	unauthorized   prometheus.Counter
	tokenFallbacks prometheus.Counter
}

func NewRelay() *Relay {
	r := &Relay{
		registry: prometheus.NewRegistry(),
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_total",
			Help:      "Inbound messages accepted for processing, by media kind.",
		}, []string{"kind"}),
		replies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "replies_total",
			Help:      "Replies attempted, by media kind and result.",
		}, []string{"kind", "result"}),
		unauthorized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unauthorized_total",
			Help:      "Inbound messages dropped by the sender check.",
		}),
		tokenFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_fallbacks_total",
			Help:      "Tokens returned unchanged after a restore failure.",
		}),
	}
	r.registry.MustRegister(
		r.messages,
		r.replies,
		r.unauthorized,
		r.tokenFallbacks,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Relay) ObserveMessage(kind string) {
	if r == nil {
		return
	}
	r.messages.WithLabelValues(kind).Inc()
}

func (r *Relay) ObserveReply(kind string, err error) {
	if r == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	r.replies.WithLabelValues(kind, result).Inc()
}

func (r *Relay) ObserveUnauthorized() {
	if r == nil {
		return
	}
	r.unauthorized.Inc()
}

func (r *Relay) ObserveTokenFallback() {
	if r == nil {
		return
	}
	r.tokenFallbacks.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Relay) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Relay) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}
