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
	"fmt"
	"strings"

	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/config"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/errs"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/model"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/schedule"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/cache"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/id"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
)

const slotCacheKeyPrefix = "mentorship:slots:"

// SlotInput is the mentor supplied definition of a slot
type SlotInput struct {
	IsRecurring  bool    `json:"isRecurring"`
	DayOfWeek    *int    `json:"dayOfWeek,omitempty"`
	SpecificDate *string `json:"specificDate,omitempty"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Timezone     string  `json:"timezone,omitempty"`
	ValidFrom    *string `json:"validFrom,omitempty"`
	ValidUntil   *string `json:"validUntil,omitempty"`
}

type AvailabilityService struct {
	*base
	slots *cache.CachedQuery[[]*model.AvailabilitySlot]
}

func NewAvailabilityService(b *base, c cache.ICache, conf config.SchedulingConfig) *AvailabilityService {
	s := &AvailabilityService{base: b}
	s.slots = cache.NewCachedQuery(
		c,
		func(params ...any) string { return fmt.Sprintf("%s%v", slotCacheKeyPrefix, params[0]) },
		func(ctx context.Context, params ...any) ([]*model.AvailabilitySlot, error) {
			return b.repos.Slot.ListByMentor(ctx, params[0].(string), false)
		},
		cache.WithTTL[[]*model.AvailabilitySlot](conf.SlotCacheDuration()),
		cache.WithLogPrefix[[]*model.AvailabilitySlot]("[SlotCache]"),
	)
	return s
}

// mentorSlots returns every slot of the mentor, cached
func (s *AvailabilityService) mentorSlots(ctx context.Context, mentorId string) ([]*model.AvailabilitySlot, error) {
	slots, err := s.slots.Get(ctx, mentorId)
	if err != nil {
		return nil, storeErr(err, "list slots", "mentorId", mentorId)
	}
	return slots, nil
}

func (s *AvailabilityService) invalidate(ctx context.Context, mentorId string) {
	if err := s.slots.Invalidate(ctx, mentorId); err != nil {
		log.Warnw("invalidate slot cache failed", "mentorId", mentorId, "error", err)
	}
}

// validate checks in against the slot invariants relative to now.
// prev is the stored slot on update; an unchanged valid from is not re-checked against today.
func (s *AvailabilityService) validate(in SlotInput, prev *model.AvailabilitySlot) (*model.AvailabilitySlot, error) {
	slot := &model.AvailabilitySlot{
		IsRecurring: in.IsRecurring,
		StartTime:   strings.TrimSpace(in.StartTime),
		EndTime:     strings.TrimSpace(in.EndTime),
		Timezone:    strings.TrimSpace(in.Timezone),
		ValidFrom:   nonEmpty(in.ValidFrom),
		ValidUntil:  nonEmpty(in.ValidUntil),
	}
	if slot.Timezone == "" {
		slot.Timezone = "UTC"
	}
	if in.IsRecurring {
		if in.DayOfWeek == nil {
			return nil, errs.Validation("recurring slot requires day of week")
		}
		if nonEmpty(in.SpecificDate) != nil {
			return nil, errs.Validation("recurring slot must not set a specific date")
		}
		day := *in.DayOfWeek
		slot.DayOfWeek = &day
	} else {
		if in.DayOfWeek != nil {
			return nil, errs.Validation("one-time slot must not set day of week")
		}
		if slot.SpecificDate = nonEmpty(in.SpecificDate); slot.SpecificDate == nil {
			return nil, errs.Validation("one-time slot requires a specific date")
		}
	}

	w, err := slot.Window()
	if err != nil {
		return nil, errs.Validation("%v", err)
	}
	if err := w.Validate(); err != nil {
		return nil, errs.Validation("%v", err)
	}
	// normalize to HH:MM
	slot.StartTime, slot.EndTime = w.Start.String(), w.End.String()

	now := s.now()
	today := schedule.DateOf(now.In(w.Location))
	if !w.Recurring && schedule.IsPast(w, w.SpecificDate, now) {
		return nil, errs.Validation("one-time slot starts in the past")
	}
	if w.Recurring && w.ValidFrom != nil && w.ValidFrom.Before(today) && !sameDate(slot.ValidFrom, prevValidFrom(prev)) {
		return nil, errs.Validation("valid from must not be before today")
	}
	return slot, nil
}

// Create publishes a new active slot
func (s *AvailabilityService) Create(ctx context.Context, p model.Principal, in SlotInput) (*model.AvailabilitySlot, error) {
	if !p.IsMentor() {
		return nil, errs.Validation("only a mentor can publish availability")
	}
	slot, err := s.validate(in, nil)
	if err != nil {
		return nil, err
	}
	slot.SlotId = id.GetUUID()
	slot.MentorId = p.UserId
	slot.IsActive = true
	if err := s.repos.Slot.Create(ctx, slot); err != nil {
		return nil, storeErr(err, "create slot", "mentorId", p.UserId)
	}
	s.invalidate(ctx, p.UserId)
	log.Infow("availability slot created", "slotId", slot.SlotId, "mentorId", p.UserId, "recurring", slot.IsRecurring)
	return slot, nil
}

// Update replaces the definition of an owned slot, keeping its active flag
func (s *AvailabilityService) Update(ctx context.Context, p model.Principal, slotId string, in SlotInput) (*model.AvailabilitySlot, error) {
	cur, err := s.owned(ctx, p, slotId)
	if err != nil {
		return nil, err
	}
	slot, err := s.validate(in, cur)
	if err != nil {
		return nil, err
	}
	slot.BaseModel = cur.BaseModel
	slot.SlotId = cur.SlotId
	slot.MentorId = cur.MentorId
	slot.IsActive = cur.IsActive
	if err := s.repos.Slot.Update(ctx, slot); err != nil {
		return nil, storeErr(err, "update slot", "slotId", slotId)
	}
	s.invalidate(ctx, p.UserId)
	return slot, nil
}

func (s *AvailabilityService) Activate(ctx context.Context, p model.Principal, slotId string) (*model.AvailabilitySlot, error) {
	return s.setActive(ctx, p, slotId, true)
}

func (s *AvailabilityService) Deactivate(ctx context.Context, p model.Principal, slotId string) (*model.AvailabilitySlot, error) {
	return s.setActive(ctx, p, slotId, false)
}

func (s *AvailabilityService) setActive(ctx context.Context, p model.Principal, slotId string, active bool) (*model.AvailabilitySlot, error) {
	slot, err := s.owned(ctx, p, slotId)
	if err != nil {
		return nil, err
	}
	if slot.IsActive == active {
		return slot, nil
	}
	slot.IsActive = active
	if err := s.repos.Slot.Update(ctx, slot); err != nil {
		return nil, storeErr(err, "toggle slot", "slotId", slotId)
	}
	s.invalidate(ctx, p.UserId)
	return slot, nil
}

// Delete hard deletes one slot. Sessions booked on it are kept.
func (s *AvailabilityService) Delete(ctx context.Context, p model.Principal, slotId string) error {
	if _, err := s.owned(ctx, p, slotId); err != nil {
		return err
	}
	if err := s.repos.Slot.Delete(ctx, slotId); err != nil {
		return storeErr(err, "delete slot", "slotId", slotId)
	}
	s.invalidate(ctx, p.UserId)
	log.Infow("availability slot deleted", "slotId", slotId, "mentorId", p.UserId)
	return nil
}

// List returns the caller's slots, inactive ones included
func (s *AvailabilityService) List(ctx context.Context, p model.Principal) ([]*model.AvailabilitySlot, error) {
	if !p.IsMentor() {
		return nil, errs.Validation("only a mentor has availability slots")
	}
	return s.mentorSlots(ctx, p.UserId)
}

func (s *AvailabilityService) Get(ctx context.Context, p model.Principal, slotId string) (*model.AvailabilitySlot, error) {
	return s.owned(ctx, p, slotId)
}

func (s *AvailabilityService) owned(ctx context.Context, p model.Principal, slotId string) (*model.AvailabilitySlot, error) {
	slot, err := s.repos.Slot.Get(ctx, slotId)
	if err != nil {
		return nil, storeErr(err, "get slot", "slotId", slotId)
	}
	if !p.IsMentor() || slot.MentorId != p.UserId {
		return nil, errs.NotFound("slot %s not found", slotId)
	}
	return slot, nil
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func prevValidFrom(prev *model.AvailabilitySlot) *string {
	if prev == nil {
		return nil
	}
	return prev.ValidFrom
}

func sameDate(a, b *string) bool {
	if a == nil || b == nil {
		return false
	}
	da, errA := schedule.ParseDate(*a)
	db, errB := schedule.ParseDate(*b)
	return errA == nil && errB == nil && da == db
}
