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

package service

import (
	"time"

	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/config"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/repo"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/cache"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/metrics"
)

// Options groups the configuration sections used by the services
type Options struct {
	Scheduling config.SchedulingConfig
	Agreement  config.AgreementConfig
	Engagement config.EngagementConfig
}

// Services is the facade the router talks to
type Services struct {
	base *base

	Request          *EngagementRequestService
	Assignment       *AssignmentService
	Agreement        *AgreementService
	Availability     *AvailabilityService
	AvailabilityView *AvailabilityViewService
	Session          *SessionService
}

// NewServices builds every service over one repository set. c, bus, m and conferencing may be nil.
func NewServices(repos *repo.Repositories, c cache.ICache, bus Publisher, m *metrics.Mentorship,
	conferencing ConferencingProvider, opts Options) *Services {
	opts.Scheduling.SetDefaults()
	opts.Engagement.SetDefaults()

	b := &base{repos: repos, bus: bus, metrics: m, now: time.Now}
	availability := NewAvailabilityService(b, c, opts.Scheduling)
	return &Services{
		base:             b,
		Request:          NewEngagementRequestService(b, opts.Engagement, opts.Agreement),
		Assignment:       NewAssignmentService(b, opts.Engagement),
		Agreement:        NewAgreementService(b, opts.Agreement),
		Availability:     availability,
		AvailabilityView: NewAvailabilityViewService(b, availability, opts.Scheduling),
		Session:          NewSessionService(b, opts.Scheduling, conferencing),
	}
}

// SetClock replaces the wall clock of every service
func (s *Services) SetClock(now func() time.Time) {
	s.base.now = now
}
