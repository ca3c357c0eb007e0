// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package metrics exposes the Prometheus metrics of the parking
// service. Metrics are kept in the default prometheus registry and
// Register must be called once before they can be scraped.
package metrics

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/momeni/clean-parking/pkg/core/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "clean_parking"

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route, and status code.",
		},
		[]string{"method", "route", "code"},
	)

	sessionsOpened = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_opened_total",
			Help:      "Parking sessions which were started.",
		},
	)

	sessionsClosed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_closed_total",
			Help:      "Parking sessions which were finished and paid.",
		},
	)

	charged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "charged_amount_total",
			Help:      "Total amount charged for parking sessions.",
		},
		[]string{"currency"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			httpRequests, sessionsOpened, sessionsClosed, charged,
		)
	})
}

// Handler returns the HTTP handler which serves the registered
// metrics in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// IncHTTP increments the requests counter. The route must be the
// registered path pattern (not the requested path) in order to keep
// the label cardinality bounded.
func IncHTTP(method, route string, code int) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}

// Recorder counts the committed parking sessions and their charges.
type Recorder struct{}

func (Recorder) SessionOpened(*model.ClientParking) {
	sessionsOpened.Inc()
}

func (Recorder) SessionClosed(_ *model.ClientParking, ch model.Charge) {
	sessionsClosed.Inc()
	charged.WithLabelValues(ch.Currency).Add(ch.Amount)
}
