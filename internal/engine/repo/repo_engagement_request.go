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

	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/model"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/database"
	"gorm.io/gorm"
)

type IEngagementRequestRepository interface {
	// Create returns ErrDuplicatePending when the pending key is taken
	Create(ctx context.Context, r *model.EngagementRequest) error
	Get(ctx context.Context, requestId string) (*model.EngagementRequest, error)
	// FindPending returns ErrNotFound when the pair has no pending request
	FindPending(ctx context.Context, startupId, mentorId string) (*model.EngagementRequest, error)
	ListByMentor(ctx context.Context, mentorId string) ([]*model.EngagementRequest, error)
	ListByStartup(ctx context.Context, startupId string) ([]*model.EngagementRequest, error)
	// Respond writes the response fields only while the stored status is still from
	Respond(ctx context.Context, r *model.EngagementRequest, from model.RequestStatus) error
	Delete(ctx context.Context, requestId string) error
}

type EngagementRequestRepo struct {
	database.IDatabase
}

func NewEngagementRequestRepo(db database.IDatabase) IEngagementRequestRepository {
	return &EngagementRequestRepo{
		IDatabase: db,
	}
}

func (rr *EngagementRequestRepo) Create(ctx context.Context, r *model.EngagementRequest) error {
	err := rr.Database().WithContext(ctx).Table(r.TableName()).Create(r).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicatePending
	}
	return err
}

func (rr *EngagementRequestRepo) Get(ctx context.Context, requestId string) (*model.EngagementRequest, error) {
	var r model.EngagementRequest
	err := rr.Database().WithContext(ctx).Table(r.TableName()).
		Where("request_id = ?", requestId).
		First(&r).Error
	if err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

func (rr *EngagementRequestRepo) FindPending(ctx context.Context, startupId, mentorId string) (*model.EngagementRequest, error) {
	var r model.EngagementRequest
	err := rr.Database().WithContext(ctx).Table(r.TableName()).
		Where("startup_id = ? AND mentor_id = ? AND status = ?", startupId, mentorId, model.RequestPending).
		First(&r).Error
	if err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

func (rr *EngagementRequestRepo) ListByMentor(ctx context.Context, mentorId string) ([]*model.EngagementRequest, error) {
	var out []*model.EngagementRequest
	err := rr.Database().WithContext(ctx).Table(model.EngagementRequest{}.TableName()).
		Where("mentor_id = ?", mentorId).
		Order("requested_at DESC").
		Find(&out).Error
	return out, err
}

func (rr *EngagementRequestRepo) ListByStartup(ctx context.Context, startupId string) ([]*model.EngagementRequest, error) {
	var out []*model.EngagementRequest
	err := rr.Database().WithContext(ctx).Table(model.EngagementRequest{}.TableName()).
		Where("startup_id = ?", startupId).
		Order("requested_at DESC").
		Find(&out).Error
	return out, err
}

func (rr *EngagementRequestRepo) Respond(ctx context.Context, r *model.EngagementRequest, from model.RequestStatus) error {
	res := rr.Database().WithContext(ctx).Table(r.TableName()).
		Where("request_id = ? AND status = ?", r.RequestId, from).
		Select("status", "responded_at", "assignment_id", "pending_key").
		Updates(r)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleState
	}
	return nil
}

func (rr *EngagementRequestRepo) Delete(ctx context.Context, requestId string) error {
	res := rr.Database().WithContext(ctx).
		Where("request_id = ?", requestId).
		Delete(&model.EngagementRequest{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
