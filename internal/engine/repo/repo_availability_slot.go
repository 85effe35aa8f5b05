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

package repo

import (
	"context"

	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/model"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/database"
)

type IAvailabilitySlotRepository interface {
	Create(ctx context.Context, s *model.AvailabilitySlot) error
	Get(ctx context.Context, slotId string) (*model.AvailabilitySlot, error)
	ListByMentor(ctx context.Context, mentorId string, activeOnly bool) ([]*model.AvailabilitySlot, error)
	Update(ctx context.Context, s *model.AvailabilitySlot) error
	// Delete removes exactly one row
	Delete(ctx context.Context, slotId string) error
}

type AvailabilitySlotRepo struct {
	database.IDatabase
}

func NewAvailabilitySlotRepo(db database.IDatabase) IAvailabilitySlotRepository {
	return &AvailabilitySlotRepo{
		IDatabase: db,
	}
}

func (sr *AvailabilitySlotRepo) Create(ctx context.Context, s *model.AvailabilitySlot) error {
	return sr.Database().WithContext(ctx).Table(s.TableName()).Create(s).Error
}

func (sr *AvailabilitySlotRepo) Get(ctx context.Context, slotId string) (*model.AvailabilitySlot, error) {
	var s model.AvailabilitySlot
	err := sr.Database().WithContext(ctx).Table(s.TableName()).
		Where("slot_id = ?", slotId).
		First(&s).Error
	if err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (sr *AvailabilitySlotRepo) ListByMentor(ctx context.Context, mentorId string, activeOnly bool) ([]*model.AvailabilitySlot, error) {
	var out []*model.AvailabilitySlot
	query := sr.Database().WithContext(ctx).Table(model.AvailabilitySlot{}.TableName()).
		Where("mentor_id = ?", mentorId)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("id ASC").Find(&out).Error
	return out, err
}

func (sr *AvailabilitySlotRepo) Update(ctx context.Context, s *model.AvailabilitySlot) error {
	res := sr.Database().WithContext(ctx).Table(s.TableName()).
		Where("slot_id = ?", s.SlotId).
		Select("*").
		Omit("id", "created_at", "slot_id", "mentor_id").
		Updates(s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (sr *AvailabilitySlotRepo) Delete(ctx context.Context, slotId string) error {
	res := sr.Database().WithContext(ctx).
		Where("slot_id = ?", slotId).
		Delete(&model.AvailabilitySlot{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
