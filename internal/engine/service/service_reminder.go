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
	"context"

	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/model"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/schedule"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
)

// ReminderJobName is the cron job name of SendDueReminders
const ReminderJobName = "session-reminder"

// SendDueReminders publishes one reminder for each scheduled session starting
// within the reminder window. It only stamps reminder_sent_at, session status
// is never changed.
func (s *SessionService) SendDueReminders(ctx context.Context) (int, error) {
	window := s.conf.ReminderWindow()
	if window <= 0 {
		return 0, nil
	}
	now := s.now().UTC()
	horizon := now.Add(window)
	from := schedule.DateOf(now).AddDays(-1).String()
	to := schedule.DateOf(horizon).AddDays(1).String()

	due, err := s.repos.Session.ListScheduled(ctx, "", from, to)
	if err != nil {
		return 0, storeErr(err, "list sessions for reminders")
	}

	sent := 0
	for _, sess := range due {
		if sess.ReminderSentAt != nil {
			continue
		}
		start, err := sess.StartsAt()
		if err != nil || start.Before(now) || start.After(horizon) {
			continue
		}
		first, err := s.repos.Session.MarkReminded(ctx, sess.SessionId, now)
		if err != nil {
			log.Warnw("mark session reminded failed", "sessionId", sess.SessionId, "error", err)
			continue
		}
		if !first {
			continue
		}
		payload := sessionPayload(sess)
		payload["startsAt"] = start.UTC().Format("2006-01-02T15:04:05Z07:00")
		s.publish(model.NewEvent(model.EventSessionReminderDue, payload))
		sent++
	}
	if sent > 0 {
		log.Infow("session reminders sent", "count", sent)
	}
	return sent, nil
}
