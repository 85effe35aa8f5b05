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
	"errors"
	"time"

	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/model"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/database"
	"gorm.io/gorm"
)

type IScheduledSessionRepository interface {
	// Create returns ErrDuplicateBooking when the booking key is taken
	Create(ctx context.Context, s *model.ScheduledSession) error
	Get(ctx context.Context, sessionId string) (*model.ScheduledSession, error)
	ListByMentor(ctx context.Context, mentorId string) ([]*model.ScheduledSession, error)
	ListByStartup(ctx context.Context, startupId string) ([]*model.ScheduledSession, error)
	// ListScheduled returns scheduled sessions dated in [from, to]. Empty mentorId matches every mentor.
	ListScheduled(ctx context.Context, mentorId, from, to string) ([]*model.ScheduledSession, error)
	// Transition writes the status fields while the stored status is still from
	Transition(ctx context.Context, s *model.ScheduledSession, from model.SessionStatus) error
	SetConferencingLink(ctx context.Context, sessionId, link string) error
	// MarkReminded stamps reminder_sent_at once, false when already stamped
	MarkReminded(ctx context.Context, sessionId string, at time.Time) (bool, error)
}

type ScheduledSessionRepo struct {
	database.IDatabase
}

func NewScheduledSessionRepo(db database.IDatabase) IScheduledSessionRepository {
	return &ScheduledSessionRepo{
		IDatabase: db,
	}
}

func (sr *ScheduledSessionRepo) Create(ctx context.Context, s *model.ScheduledSession) error {
	err := sr.Database().WithContext(ctx).Table(s.TableName()).Create(s).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateBooking
	}
	return err
}

func (sr *ScheduledSessionRepo) Get(ctx context.Context, sessionId string) (*model.ScheduledSession, error) {
	var s model.ScheduledSession
	err := sr.Database().WithContext(ctx).Table(s.TableName()).
		Where("session_id = ?", sessionId).
		First(&s).Error
	if err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (sr *ScheduledSessionRepo) ListByMentor(ctx context.Context, mentorId string) ([]*model.ScheduledSession, error) {
	var out []*model.ScheduledSession
	err := sr.Database().WithContext(ctx).Table(model.ScheduledSession{}.TableName()).
		Where("mentor_id = ?", mentorId).
		Order("session_date ASC, session_time ASC").
		Find(&out).Error
	return out, err
}

func (sr *ScheduledSessionRepo) ListByStartup(ctx context.Context, startupId string) ([]*model.ScheduledSession, error) {
	var out []*model.ScheduledSession
	err := sr.Database().WithContext(ctx).Table(model.ScheduledSession{}.TableName()).
		Where("startup_id = ?", startupId).
		Order("session_date ASC, session_time ASC").
		Find(&out).Error
	return out, err
}

func (sr *ScheduledSessionRepo) ListScheduled(ctx context.Context, mentorId, from, to string) ([]*model.ScheduledSession, error) {
	var out []*model.ScheduledSession
	query := sr.Database().WithContext(ctx).Table(model.ScheduledSession{}.TableName()).
		Where("status = ? AND session_date >= ? AND session_date <= ?", model.SessionScheduled, from, to)
	if mentorId != "" {
		query = query.Where("mentor_id = ?", mentorId)
	}
	err := query.Order("session_date ASC, session_time ASC").Find(&out).Error
	return out, err
}

func (sr *ScheduledSessionRepo) Transition(ctx context.Context, s *model.ScheduledSession, from model.SessionStatus) error {
	res := sr.Database().WithContext(ctx).Table(s.TableName()).
		Where("session_id = ? AND status = ?", s.SessionId, from).
		Select("status", "booking_key", "feedback", "cancelled_by", "completed_at", "cancelled_at", "updated_at").
		Updates(s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleState
	}
	return nil
}

func (sr *ScheduledSessionRepo) SetConferencingLink(ctx context.Context, sessionId, link string) error {
	res := sr.Database().WithContext(ctx).Table(model.ScheduledSession{}.TableName()).
		Where("session_id = ?", sessionId).
		Update("conferencing_link", link)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (sr *ScheduledSessionRepo) MarkReminded(ctx context.Context, sessionId string, at time.Time) (bool, error) {
	res := sr.Database().WithContext(ctx).Table(model.ScheduledSession{}.TableName()).
		Where("session_id = ? AND status = ? AND reminder_sent_at IS NULL", sessionId, model.SessionScheduled).
		Update("reminder_sent_at", at)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
