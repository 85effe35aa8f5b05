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

package config

import (
	"github.com/google/wire"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/cache"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/database"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/http"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/metrics"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/trace"
)

// ProviderSet 提供配置层相关的依赖
var ProviderSet = wire.NewSet(
	ProvideConf,
	ProvideHttpConfig,
	ProvideLogConfig,
	ProvideDatabaseConfig,
	ProvideRedisConfig,
	ProvideMetricsConfig,
	ProvideSchedulingConfig,
	ProvideAgreementConfig,
	ProvideEngagementConfig,
	ProvideNotifyConfig,
	ProvideConferencingConfig,
	ProvideTraceConfig,
)

// ProvideConf 提供应用配置
func ProvideConf(configPath string) *AppConfig {
	conf := NewConf(configPath)
	return &conf
}

// ProvideHttpConfig 提供 HTTP 配置
func ProvideHttpConfig(appConf *AppConfig) *http.Http {
	httpConfig := &appConf.Http
	httpConfig.SetDefaults()
	return httpConfig
}

// ProvideLogConfig 提供日志配置
func ProvideLogConfig(appConf *AppConfig) *log.Conf {
	return &appConf.Log
}

// ProvideDatabaseConfig 提供数据库配置
func ProvideDatabaseConfig(appConf *AppConfig) database.Database {
	return appConf.Database
}

// ProvideRedisConfig 提供 Redis 配置
func ProvideRedisConfig(appConf *AppConfig) cache.Redis {
	return appConf.Redis
}

// ProvideMetricsConfig 提供 Metrics 配置
func ProvideMetricsConfig(appConf *AppConfig) metrics.MetricsConfig {
	metricsConfig := appConf.Metrics
	metricsConfig.SetDefaults()
	return metricsConfig
}

func ProvideSchedulingConfig(appConf *AppConfig) SchedulingConfig {
	return appConf.Scheduling
}

func ProvideAgreementConfig(appConf *AppConfig) AgreementConfig {
	return appConf.Agreement
}

func ProvideEngagementConfig(appConf *AppConfig) EngagementConfig {
	return appConf.Engagement
}

func ProvideNotifyConfig(appConf *AppConfig) NotifyConfig {
	return appConf.Notify
}

func ProvideConferencingConfig(appConf *AppConfig) ConferencingConfig {
	return appConf.Conferencing
}

func ProvideTraceConfig(appConf *AppConfig) trace.Conf {
	return appConf.Trace
}
