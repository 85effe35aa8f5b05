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
	"context"

	"github.com/google/wire"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/config"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/repo"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/repo/memory"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/service"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/cron"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/database"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/metrics"
	"gorm.io/gorm"
)

// repoProviderSet 仓储层 ProviderSet
var repoProviderSet = wire.NewSet(provideRepositories)

// provideRepositories falls back to the in-process store when no relational source is configured
func provideRepositories(db *gorm.DB, conf database.Database) (*repo.Repositories, error) {
	if db == nil {
		return memory.NewRepositories(memory.NewStore()), nil
	}
	if conf.AutoMigrate {
		if err := repo.AutoMigrate(db); err != nil {
			return nil, err
		}
		log.Infow("database migrated", "type", conf.Type)
	}
	return repo.NewRepositories(database.NewGormDB(db)), nil
}

// cronProviderSet 定时任务 ProviderSet
var cronProviderSet = wire.NewSet(provideCron)

// provideCron registers the reminder job only when a reminder window is configured
func provideCron(conf config.SchedulingConfig, recorder *metrics.CronMetricsRecorder, services *service.Services) (*cron.Scheduler, error) {
	scheduler := cron.New(conf.Location(), recorder)
	if conf.ReminderWindowMinutes <= 0 {
		return scheduler, nil
	}
	err := scheduler.AddFunc(service.ReminderJobName, conf.ReminderSpec, func(ctx context.Context) error {
		_, err := services.Session.SendDueReminders(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return scheduler, nil
}
