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
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/cache"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/database"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/http"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/metrics"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/trace"
	"github.com/spf13/viper"
)

// SchedulingConfig 排期相关配置
type SchedulingConfig struct {
	MaxRangeDays           int
	DefaultDurationMinutes int
	// SlotCacheTTL 秒
	SlotCacheTTL int
	// Timezone 用于定时任务
	Timezone string
	// ReminderWindowMinutes 会话开始前多少分钟发送提醒, 0 关闭
	ReminderWindowMinutes int
	ReminderSpec          string
}

type AgreementConfig struct {
	// RequireSignature false disables the signed agreement step, ApproveAgreement then
	// no longer fails with PreconditionFailed when no signed agreement is uploaded
	RequireSignature       *bool
	AutoApproveOnSignature *bool
}

type EngagementConfig struct {
	DefaultCurrency string
}

// NotifyConfig webhook 通知配置, WebhookURL 为空时只记录日志
type NotifyConfig struct {
	WebhookURL string
	Method     string
	// Timeout 秒
	Timeout int
	Retry   int
}

type ConferencingConfig struct {
	BaseURL string
}

type AppConfig struct {
	Log          log.Conf
	Http         http.Http
	Database     database.Database
	Redis        cache.Redis
	Metrics      metrics.MetricsConfig
	Scheduling   SchedulingConfig
	Agreement    AgreementConfig
	Engagement   EngagementConfig
	Notify       NotifyConfig
	Conferencing ConferencingConfig
	Trace        trace.Conf
}

var (
	cfg  AppConfig
	once sync.Once
	mu   sync.RWMutex
)

func NewConf(confDir string) AppConfig {
	once.Do(func() {
		loaded, err := LoadConfigFile(confDir)
		if err != nil {
			panic(fmt.Sprintf("load config file error: %s", err))
		}
		mu.Lock()
		cfg = loaded
		mu.Unlock()
	})
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// LoadConfigFile load config file
func LoadConfigFile(confDir string) (AppConfig, error) {
	var out AppConfig

	config := viper.New()
	config.SetConfigFile(confDir) //文件名
	config.SetConfigType("toml")
	config.SetEnvPrefix("MENTORSHIP")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	if err := config.ReadInConfig(); err != nil {
		return out, fmt.Errorf("failed to read configuration file: %w", err)
	}

	config.WatchConfig()
	config.OnConfigChange(func(e fsnotify.Event) {
		log.Infof("The configuration changes, re -analyze the configuration file: %s", e.Name)
		var next AppConfig
		if err := config.Unmarshal(&next); err != nil {
			log.Errorw("failed to unmarshal configuration file", "path", e.Name, "error", err)
			return
		}
		next.SetDefaults()
		mu.Lock()
		cfg = next
		mu.Unlock()
	})
	if err := config.Unmarshal(&out); err != nil {
		return out, fmt.Errorf("failed to unmarshal configuration file: %w", err)
	}
	out.SetDefaults()
	log.Infow("config file loaded",
		"path", confDir,
	)

	return out, nil
}

// SetDefaults fills zero values of every section
func (c *AppConfig) SetDefaults() {
	c.Http.SetDefaults()
	c.Database.SetDefaults()
	c.Redis.SetDefaults()
	c.Metrics.SetDefaults()
	c.Scheduling.SetDefaults()
	c.Agreement.SetDefaults()
	c.Engagement.SetDefaults()
	c.Notify.SetDefaults()
	c.Conferencing.SetDefaults()
	c.Trace.SetDefaults()
}

func (s *SchedulingConfig) SetDefaults() {
	if s.MaxRangeDays <= 0 {
		s.MaxRangeDays = 90
	}
	if s.DefaultDurationMinutes <= 0 {
		s.DefaultDurationMinutes = 60
	}
	if s.SlotCacheTTL <= 0 {
		s.SlotCacheTTL = 300
	}
	if s.Timezone == "" {
		s.Timezone = "UTC"
	}
	if s.ReminderSpec == "" {
		s.ReminderSpec = "0 */5 * * * *"
	}
}

// Location 解析失败时回退到 UTC
func (s SchedulingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		log.Warnw("invalid scheduling timezone, fallback to UTC", "timezone", s.Timezone, "error", err)
		return time.UTC
	}
	return loc
}

func (s SchedulingConfig) SlotCacheDuration() time.Duration {
	return time.Duration(s.SlotCacheTTL) * time.Second
}

func (s SchedulingConfig) ReminderWindow() time.Duration {
	return time.Duration(s.ReminderWindowMinutes) * time.Minute
}

func (a *AgreementConfig) SetDefaults() {
	if a.RequireSignature == nil {
		a.RequireSignature = boolPtr(true)
	}
	if a.AutoApproveOnSignature == nil {
		a.AutoApproveOnSignature = boolPtr(true)
	}
}

func (a AgreementConfig) SignatureRequired() bool {
	return a.RequireSignature == nil || *a.RequireSignature
}

func (a AgreementConfig) AutoApprove() bool {
	return a.AutoApproveOnSignature == nil || *a.AutoApproveOnSignature
}

func (e *EngagementConfig) SetDefaults() {
	if e.DefaultCurrency == "" {
		e.DefaultCurrency = "USD"
	}
	e.DefaultCurrency = strings.ToUpper(e.DefaultCurrency)
}

func (n *NotifyConfig) SetDefaults() {
	if n.Method == "" {
		n.Method = "POST"
	}
	n.Method = strings.ToUpper(n.Method)
	if n.Timeout <= 0 {
		n.Timeout = 5
	}
	if n.Retry < 0 {
		n.Retry = 0
	}
}

func (n NotifyConfig) TimeoutDuration() time.Duration {
	return time.Duration(n.Timeout) * time.Second
}

func (c *ConferencingConfig) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://meet.trackmystartup.com/room"
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
}

func boolPtr(b bool) *bool {
	return &b
}
