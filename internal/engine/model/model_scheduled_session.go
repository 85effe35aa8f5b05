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

package model

import (
	"strings"
	"time"

	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/schedule"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/statemachine"
)

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// DisplayStatus is the read-time label of a session, never stored
type DisplayStatus string

const (
	DisplayScheduled        DisplayStatus = "scheduled"
	DisplayCompleted        DisplayStatus = "completed"
	DisplayCancelled        DisplayStatus = "cancelled"
	DisplayPastNotCompleted DisplayStatus = "past_not_completed"
)

// SessionLifecycle scheduled is the only non terminal state
var SessionLifecycle = statemachine.New[SessionStatus]().
	Allow(SessionScheduled, SessionCompleted, SessionCancelled)

// ScheduledSession a booked occurrence of an availability slot
type ScheduledSession struct {
	BaseModel
	SessionId        string        `gorm:"column:session_id;size:64;uniqueIndex" json:"sessionId"`
	MentorId         string        `gorm:"column:mentor_id;size:64;index:idx_session_mentor_date" json:"mentorId"`
	StartupId        string        `gorm:"column:startup_id;size:64;index" json:"startupId"`
	StartupName      string        `gorm:"column:startup_name" json:"startupName"`
	AssignmentId     string        `gorm:"column:assignment_id;size:64;index" json:"assignmentId"`
	SlotId           string        `gorm:"column:slot_id;size:64" json:"slotId"`
	SessionDate      string        `gorm:"column:session_date;size:10;index:idx_session_mentor_date" json:"sessionDate"`
	SessionTime      string        `gorm:"column:session_time;size:5" json:"sessionTime"`
	Timezone         string        `gorm:"column:timezone;size:64" json:"timezone"`
	DurationMinutes  int           `gorm:"column:duration_minutes" json:"durationMinutes"`
	Status           SessionStatus `gorm:"column:status;size:16" json:"status"`
	ConferencingLink *string       `gorm:"column:conferencing_link" json:"conferencingLink,omitempty"`
	Agenda           *string       `gorm:"column:agenda" json:"agenda,omitempty"`
	Feedback         *string       `gorm:"column:feedback" json:"feedback,omitempty"`
	// BookingKey is set only while scheduled, the unique index over it rejects double booking
	BookingKey     *string    `gorm:"column:booking_key;size:160;uniqueIndex" json:"-"`
	ReminderSentAt *time.Time `gorm:"column:reminder_sent_at" json:"reminderSentAt,omitempty"`
	CancelledBy    *string    `gorm:"column:cancelled_by;size:64" json:"cancelledBy,omitempty"`
	CompletedAt    *time.Time `gorm:"column:completed_at" json:"completedAt,omitempty"`
	CancelledAt    *time.Time `gorm:"column:cancelled_at" json:"cancelledAt,omitempty"`
}

func (ScheduledSession) TableName() string {
	return "t_scheduled_session"
}

// BookingKey builds the uniqueness key of a mentor occurrence
func BookingKey(mentorId, date, clock string) string {
	return strings.Join([]string{mentorId, date, clock}, "|")
}

// StartsAt is the session start in its own timezone
func (s *ScheduledSession) StartsAt() (time.Time, error) {
	d, err := schedule.ParseDate(s.SessionDate)
	if err != nil {
		return time.Time{}, err
	}
	c, err := schedule.ParseClock(s.SessionTime)
	if err != nil {
		return time.Time{}, err
	}
	loc, err := schedule.ParseLocation(s.Timezone)
	if err != nil {
		return time.Time{}, err
	}
	return d.At(c, loc), nil
}

// DisplayStatus labels scheduled sessions whose start has passed
func (s *ScheduledSession) DisplayStatus(now time.Time) DisplayStatus {
	switch s.Status {
	case SessionCompleted:
		return DisplayCompleted
	case SessionCancelled:
		return DisplayCancelled
	}
	start, err := s.StartsAt()
	if err == nil && start.Before(now) {
		return DisplayPastNotCompleted
	}
	return DisplayScheduled
}

// IsParty reports whether userId is the mentor or the startup of the session
func (s *ScheduledSession) IsParty(userId string) bool {
	return userId != "" && (s.MentorId == userId || s.StartupId == userId)
}

// SessionView a session with its read-time label
type SessionView struct {
	*ScheduledSession
	DisplayStatus DisplayStatus `json:"displayStatus"`
}
