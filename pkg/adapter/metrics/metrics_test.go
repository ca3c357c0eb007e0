// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/momeni/clean-parking/pkg/adapter/metrics"
	"github.com/momeni/clean-parking/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerExposesCounters(t *testing.T) {
	metrics.Register()
	metrics.Register()

	r := metrics.Recorder{}
	r.SessionOpened(&model.ClientParking{ID: 1})
	r.SessionClosed(&model.ClientParking{ID: 1}, model.Charge{
		Periods: 2, Amount: 2, Currency: "USD",
	})
	metrics.IncHTTP(http.MethodGet, "/clients/:id", http.StatusOK)
	metrics.IncHTTP(http.MethodGet, "", http.StatusNotFound)

	srv := httptest.NewServer(metrics.Handler())
	defer srv.Close()
	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(b)

	assert.Contains(t, body, "clean_parking_sessions_opened_total")
	assert.Contains(t, body, "clean_parking_sessions_closed_total")
	assert.Contains(t, body, `clean_parking_charged_amount_total{currency="USD"}`)
	assert.Contains(t, body, `route="/clients/:id"`)
	assert.Contains(t, body, `route="unmatched"`)
}
