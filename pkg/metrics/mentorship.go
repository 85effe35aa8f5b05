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
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mentorship"

// Mentorship holds the domain counters. A nil *Mentorship records nothing.
type Mentorship struct {
	bookings       *prometheus.CounterVec
	transitions    *prometheus.CounterVec
	requestActions *prometheus.CounterVec
}

// NewMentorship creates unregistered domain counters
func NewMentorship() *Mentorship {
	return &Mentorship{
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Session booking attempts by result",
		}, []string{"result"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assignment_transitions_total",
			Help:      "Assignment status transitions",
		}, []string{"from", "to"}),
		requestActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_actions_total",
			Help:      "Engagement request actions",
		}, []string{"action"}),
	}
}

// Collectors returns every collector for registration
func (m *Mentorship) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.bookings, m.transitions, m.requestActions}
}

// Booking results
const (
	BookingBooked      = "booked"
	BookingConflict    = "conflict"
	BookingInvalid     = "invalid"
	BookingGateBlocked = "gate_blocked"
)

func (m *Mentorship) ObserveBooking(result string) {
	if m == nil {
		return
	}
	m.bookings.WithLabelValues(result).Inc()
}

func (m *Mentorship) ObserveTransition(from, to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(from, to).Inc()
}

func (m *Mentorship) ObserveRequestAction(action string) {
	if m == nil {
		return
	}
	m.requestActions.WithLabelValues(action).Inc()
}
