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
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
)

// ProviderSet is a Wire provider set for metrics
var ProviderSet = wire.NewSet(
	ProvideMentorship,
	ProvideCronMetricsRecorder,
	NewMetricsServer,
)

func ProvideMentorship() *Mentorship {
	return NewMentorship()
}

func ProvideCronMetricsRecorder() *CronMetricsRecorder {
	return NewCronMetricsRecorder()
}

// NewMetricsServer creates a metrics server and registers the domain and cron collectors
func NewMetricsServer(config MetricsConfig, m *Mentorship, cron *CronMetricsRecorder) (*Server, error) {
	server := NewServer(config)
	groups := [][]prometheus.Collector{m.Collectors(), cron.Collectors()}
	for _, group := range groups {
		for _, c := range group {
			if err := server.RegisterCollector(c); err != nil {
				return nil, err
			}
		}
	}
	return server, nil
}
