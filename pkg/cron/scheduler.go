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

package cron

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/safe"
)

// JobFunc is a named unit of scheduled work
type JobFunc func(ctx context.Context) error

// MetricsRecorder receives one call per job run
type MetricsRecorder interface {
	RecordJobRun(jobName string, duration time.Duration, err error)
}

// Scheduler wraps robfig/cron with named jobs, panic recovery and run metrics
type Scheduler struct {
	mu       sync.Mutex
	cron     *cron.Cron
	recorder MetricsRecorder
	jobs     map[string]string
	running  bool
	timeout  time.Duration
}

// New creates a scheduler in loc. recorder may be nil.
func New(loc *time.Location, recorder MetricsRecorder) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron:     cron.NewWithLocation(loc),
		recorder: recorder,
		jobs:     make(map[string]string),
		timeout:  time.Minute,
	}
}

// AddFunc registers fn under name. spec accepts six fields with seconds or @every <duration>.
func (s *Scheduler) AddFunc(name, spec string, fn JobFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("cron job %q already registered", name)
	}
	if _, err := cron.Parse(spec); err != nil {
		return fmt.Errorf("invalid cron spec %q for job %q: %w", spec, name, err)
	}
	if err := s.cron.AddFunc(spec, func() { s.run(name, fn) }); err != nil {
		return err
	}
	s.jobs[name] = spec
	log.Infow("cron job registered", "name", name, "spec", spec)
	return nil
}

// RunNow executes a registered job synchronously, outside its schedule
func (s *Scheduler) RunNow(name string, fn JobFunc) {
	s.run(name, fn)
}

func (s *Scheduler) run(name string, fn JobFunc) {
	start := time.Now()
	var err error
	safe.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		err = fn(ctx)
	})
	if err != nil {
		log.Errorw("cron job failed", "name", name, "error", err)
	} else {
		log.Debugw("cron job finished", "name", name, "elapsed", time.Since(start).String())
	}
	if s.recorder != nil {
		s.recorder.RecordJobRun(name, time.Since(start), err)
	}
}

// Jobs returns registered job names in order
func (s *Scheduler) Jobs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.cron.Start()
	log.Infow("cron scheduler started", "jobs", len(s.jobs))
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	s.cron.Stop()
	log.Info("cron scheduler stopped")
}
