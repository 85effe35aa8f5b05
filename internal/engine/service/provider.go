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
	"github.com/google/wire"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/config"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/repo"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/cache"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/event"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/metrics"
)

// ProviderSet provides the service layer
var ProviderSet = wire.NewSet(ProvideServices)

func ProvideServices(repos *repo.Repositories, c cache.ICache, bus *event.EventBus, m *metrics.Mentorship,
	conferencing ConferencingProvider, scheduling config.SchedulingConfig, agreement config.AgreementConfig,
	engagement config.EngagementConfig) *Services {
	return NewServices(repos, c, bus, m, conferencing, Options{
		Scheduling: scheduling,
		Agreement:  agreement,
		Engagement: engagement,
	})
}
