// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMentorship_Observe(t *testing.T) {
	m := NewMentorship()
	m.ObserveBooking(BookingBooked)
	m.ObserveBooking(BookingConflict)
	m.ObserveBooking(BookingConflict)
	m.ObserveTransition("ready_for_activation", "active")
	m.ObserveRequestAction("accept")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.bookings.WithLabelValues(BookingConflict)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.transitions.WithLabelValues("ready_for_activation", "active")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestActions.WithLabelValues("accept")))
}

func TestMentorship_NilSafe(t *testing.T) {
	var m *Mentorship
	assert.NotPanics(t, func() {
		m.ObserveBooking(BookingBooked)
		m.ObserveTransition("a", "b")
		m.ObserveRequestAction("x")
	})
	var r *CronMetricsRecorder
	assert.NotPanics(t, func() { r.RecordJobRun("job", time.Second, nil) })
}

func TestNewMetricsServer_Handler(t *testing.T) {
	m := NewMentorship()
	cron := NewCronMetricsRecorder()
	server, err := NewMetricsServer(MetricsConfig{}, m, cron)
	require.NoError(t, err)

	m.ObserveBooking(BookingBooked)
	cron.RecordJobRun("session-reminder", 10*time.Millisecond, errors.New("failed"))

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	assert.True(t, strings.Contains(body, `mentorship_bookings_total{result="booked"} 1`))
	assert.True(t, strings.Contains(body, `cron_job_errors_total{job_name="session-reminder"} 1`))
}

func TestServer_StartDisabled(t *testing.T) {
	server := NewServer(MetricsConfig{Enable: false})
	require.NoError(t, server.Start())
	require.NoError(t, server.Stop(t.Context()))
}

func TestRegisterPprof(t *testing.T) {
	mux := http.NewServeMux()
	registerPprof(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
