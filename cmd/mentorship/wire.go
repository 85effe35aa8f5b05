//go:build wireinject
// +build wireinject

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

package main

import (
	"github.com/google/wire"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/bootstrap"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/config"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/router"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/service"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/pkg/conferencing"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/pkg/notify"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/cache"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/database"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/metrics"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/shutdown"
	"go.uber.org/zap"
)

func initApp(configPath string, logger *zap.Logger) (*bootstrap.App, func(), error) {
	panic(wire.Build(
		// 配置层
		config.ProviderSet,
		// 存储层
		database.ProviderSet,
		cache.ProviderSet,
		repoProviderSet,
		// 通知与会议
		notify.ProviderSet,
		conferencing.ProviderSet,
		// 指标
		metrics.ProviderSet,
		// 服务层
		service.ProviderSet,
		// 定时任务
		cronProviderSet,
		// 路由层
		shutdown.ProviderSet,
		router.ProviderSet,
		// 应用层
		bootstrap.NewApp,
	))
}
