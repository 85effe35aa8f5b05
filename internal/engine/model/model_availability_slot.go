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
	"time"

	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/schedule"
)

// AvailabilitySlot a recurring or one-time bookable window published by a mentor
type AvailabilitySlot struct {
	BaseModel
	SlotId       string  `gorm:"column:slot_id;size:64;uniqueIndex" json:"slotId"`
	MentorId     string  `gorm:"column:mentor_id;size:64;index" json:"mentorId"`
	IsRecurring  bool    `gorm:"column:is_recurring" json:"isRecurring"`
	DayOfWeek    *int    `gorm:"column:day_of_week" json:"dayOfWeek,omitempty"`
	SpecificDate *string `gorm:"column:specific_date;size:10" json:"specificDate,omitempty"`
	StartTime    string  `gorm:"column:start_time;size:5" json:"startTime"`
	EndTime      string  `gorm:"column:end_time;size:5" json:"endTime"`
	Timezone     string  `gorm:"column:timezone;size:64" json:"timezone"`
	ValidFrom    *string `gorm:"column:valid_from;size:10" json:"validFrom,omitempty"`
	ValidUntil   *string `gorm:"column:valid_until;size:10" json:"validUntil,omitempty"`
	IsActive     bool    `gorm:"column:is_active" json:"isActive"`
}

func (AvailabilitySlot) TableName() string {
	return "t_availability_slot"
}

// Window parses the stored columns into a schedule window
func (s *AvailabilitySlot) Window() (schedule.Window, error) {
	var w schedule.Window
	var err error

	if w.Start, err = schedule.ParseClock(s.StartTime); err != nil {
		return w, err
	}
	if w.End, err = schedule.ParseClock(s.EndTime); err != nil {
		return w, err
	}
	if w.Location, err = schedule.ParseLocation(s.Timezone); err != nil {
		return w, err
	}

	w.Recurring = s.IsRecurring
	if s.IsRecurring {
		// -1 fails Validate when the weekday is missing
		w.DayOfWeek = -1
		if s.DayOfWeek != nil {
			w.DayOfWeek = time.Weekday(*s.DayOfWeek)
		}
	}
	if s.SpecificDate != nil && *s.SpecificDate != "" {
		if w.SpecificDate, err = schedule.ParseDate(*s.SpecificDate); err != nil {
			return w, err
		}
	}
	if w.ValidFrom, err = parseOptionalDate(s.ValidFrom); err != nil {
		return w, err
	}
	if w.ValidUntil, err = parseOptionalDate(s.ValidUntil); err != nil {
		return w, err
	}
	return w, nil
}

func parseOptionalDate(s *string) (*schedule.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := schedule.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
