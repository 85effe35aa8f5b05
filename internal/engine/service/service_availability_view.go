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
	"sort"

	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/config"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/errs"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/model"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/schedule"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
	"golang.org/x/sync/errgroup"
)

// AvailabilityViewService projects a mentor's slots into bookable occurrences.
// It never writes.
type AvailabilityViewService struct {
	*base
	availability *AvailabilityService
	conf         config.SchedulingConfig
}

func NewAvailabilityViewService(b *base, availability *AvailabilityService, conf config.SchedulingConfig) *AvailabilityViewService {
	return &AvailabilityViewService{base: b, availability: availability, conf: conf}
}

// ListOccurrences resolves the active slots of mentorId in [from, to] and labels booked ones
func (s *AvailabilityViewService) ListOccurrences(ctx context.Context, mentorId, from, to string) ([]*model.SlotOccurrence, error) {
	if mentorId == "" {
		return nil, errs.Validation("mentor id is required")
	}
	fromDate, err := schedule.ParseDate(from)
	if err != nil {
		return nil, errs.Validation("%v", err)
	}
	toDate, err := schedule.ParseDate(to)
	if err != nil {
		return nil, errs.Validation("%v", err)
	}
	if toDate.Before(fromDate) {
		return nil, errs.Validation("range end is before range start")
	}
	if days := fromDate.DaysUntil(toDate) + 1; days > s.conf.MaxRangeDays {
		return nil, errs.Validation("range spans %d days, at most %d allowed", days, s.conf.MaxRangeDays)
	}

	var (
		slots    []*model.AvailabilitySlot
		sessions []*model.ScheduledSession
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		slots, err = s.availability.mentorSlots(gctx, mentorId)
		return err
	})
	g.Go(func() error {
		// one-day margin either side, slot timezones can shift the civil date
		var err error
		sessions, err = s.repos.Session.ListScheduled(gctx, mentorId, fromDate.AddDays(-1).String(), toDate.AddDays(1).String())
		if err != nil {
			return storeErr(err, "list booked sessions", "mentorId", mentorId)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	booked := make(map[string]string, len(sessions))
	for _, sess := range sessions {
		booked[sess.SessionDate+"|"+sess.SessionTime] = sess.StartupName
	}

	now := s.now()
	out := make([]*model.SlotOccurrence, 0)
	for _, slot := range slots {
		if !slot.IsActive {
			continue
		}
		w, err := slot.Window()
		if err != nil {
			log.Warnw("skip unreadable slot", "slotId", slot.SlotId, "error", err)
			continue
		}
		for _, d := range schedule.OccurrencesBetween(w, fromDate, toDate) {
			if schedule.IsPast(w, d, now) {
				continue
			}
			occ := &model.SlotOccurrence{
				SlotId:      slot.SlotId,
				MentorId:    slot.MentorId,
				Date:        d.String(),
				StartTime:   w.Start.String(),
				EndTime:     w.End.String(),
				Timezone:    slot.Timezone,
				IsRecurring: slot.IsRecurring,
			}
			if name, ok := booked[occ.Date+"|"+occ.StartTime]; ok {
				occ.IsBooked = true
				occ.BookedBy = name
			}
			out = append(out, occ)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}
