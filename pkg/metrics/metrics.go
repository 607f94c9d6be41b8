// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes all metric names
const Namespace = "rugix_site"

var (
	// Build metrics

	pagesRendered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "pages_rendered_total",
		Help:      "A counter for rendered pages by page kind.",
	},
		[]string{"kind"},
	)

	buildDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "build_duration_seconds",
		Help:      "A histogram of site build durations.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
	})

	brokenLinks = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "broken_links",
		Help:      "The number of broken links found by the last build.",
	})

	// Server metrics

	serverInFlightGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "server_in_flight_requests",
		Help:      "A gauge of requests currently served.",
	})

	serverCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "server_requests_total",
		Help:      "A counter for served requests.",
	},
		[]string{"code", "method"},
	)

	serverHistVec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "server_request_duration_seconds",
		Help:      "A histogram of request latencies.",
		Buckets:   prometheus.DefBuckets,
	},
		[]string{},
	)
)

// Register registers all metrics in registry, the default registerer
// when nil
func Register(registry prometheus.Registerer) {
	Reset()
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	registry.MustRegister(pagesRendered, buildDuration, brokenLinks, serverInFlightGauge, serverCounter, serverHistVec)
}

// Reset resets the counters and gauges. Histograms keep their observations.
func Reset() {
	pagesRendered.Reset()
	brokenLinks.Set(0)
	serverCounter.Reset()
	serverInFlightGauge.Set(0)
}

// PageRendered counts a rendered page of the given kind
func PageRendered(kind string) {
	pagesRendered.WithLabelValues(kind).Inc()
}

// BuildFinished records the duration and broken link count of a build
func BuildFinished(d time.Duration, broken int) {
	buildDuration.Observe(d.Seconds())
	brokenLinks.Set(float64(broken))
}

// InstrumentHandler meters the requests served by next
func InstrumentHandler(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerInFlight(serverInFlightGauge,
		promhttp.InstrumentHandlerCounter(serverCounter,
			promhttp.InstrumentHandlerDuration(serverHistVec, next),
		),
	)
}

// Handler exposes the metrics gathered by gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
