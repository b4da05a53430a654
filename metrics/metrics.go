// Package metrics exposes Prometheus counters for envelope processing and an
// optional standalone metrics listener.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openfloor-dev/parrot-go/logging"
)

var (
	envelopes          = prometheus.NewCounter(prometheus.CounterOpts{Name: "parrot_envelopes_total", Help: "Envelopes processed"})
	events             = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "parrot_events_total", Help: "Inbound events by type"}, []string{"event_type"})
	responses          = prometheus.NewCounter(prometheus.CounterOpts{Name: "parrot_responses_total", Help: "Response events produced"})
	validationFailures = prometheus.NewCounter(prometheus.CounterOpts{Name: "parrot_validation_failures_total", Help: "Payloads rejected by validation"})
)

func init() {
	prometheus.MustRegister(envelopes, events, responses, validationFailures)
}

// Start runs a Prometheus handler on the given listen addr until ctx is
// canceled. A blank addr disables the listener.
func Start(ctx context.Context, listen string, log logging.Logger) {
	if listen == "" {
		return
	}
	srv := &http.Server{Addr: listen, Handler: promhttp.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			if log != nil {
				log.Error("metrics server failed", "error", err)
			}
		}
	}()
}

// IncEnvelope counts one processed envelope.
func IncEnvelope() { envelopes.Inc() }

// IncEvent counts one inbound event of the given type.
func IncEvent(eventType string) { events.WithLabelValues(eventType).Inc() }

// AddResponses counts response events produced for one envelope.
func AddResponses(n int) { responses.Add(float64(n)) }

// IncValidationFailure counts one rejected payload.
func IncValidationFailure() { validationFailures.Inc() }
