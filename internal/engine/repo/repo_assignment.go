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

type IAssignmentRepository interface {
	Create(ctx context.Context, a *model.Assignment) error
	Get(ctx context.Context, assignmentId string) (*model.Assignment, error)
	ListByMentor(ctx context.Context, mentorId string) ([]*model.Assignment, error)
	ListByStartup(ctx context.Context, startupId string) ([]*model.Assignment, error)
	// Update writes a when its revision is unchanged and bumps it, ErrStaleState otherwise
	Update(ctx context.Context, a *model.Assignment) error
	Delete(ctx context.Context, assignmentId string) error
}

type AssignmentRepo struct {
	database.IDatabase
}

func NewAssignmentRepo(db database.IDatabase) IAssignmentRepository {
	return &AssignmentRepo{
		IDatabase: db,
	}
}

func (ar *AssignmentRepo) Create(ctx context.Context, a *model.Assignment) error {
	return ar.Database().WithContext(ctx).Table(a.TableName()).Create(a).Error
}

func (ar *AssignmentRepo) Get(ctx context.Context, assignmentId string) (*model.Assignment, error) {
	var a model.Assignment
	err := ar.Database().WithContext(ctx).Table(a.TableName()).
		Where("assignment_id = ?", assignmentId).
		First(&a).Error
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (ar *AssignmentRepo) ListByMentor(ctx context.Context, mentorId string) ([]*model.Assignment, error) {
	var out []*model.Assignment
	err := ar.Database().WithContext(ctx).Table(model.Assignment{}.TableName()).
		Where("mentor_id = ?", mentorId).
		Order("assigned_at DESC").
		Find(&out).Error
	return out, err
}

func (ar *AssignmentRepo) ListByStartup(ctx context.Context, startupId string) ([]*model.Assignment, error) {
	var out []*model.Assignment
	err := ar.Database().WithContext(ctx).Table(model.Assignment{}.TableName()).
		Where("startup_id = ?", startupId).
		Order("assigned_at DESC").
		Find(&out).Error
	return out, err
}

func (ar *AssignmentRepo) Update(ctx context.Context, a *model.Assignment) error {
	next := *a
	next.Revision = a.Revision + 1
	res := ar.Database().WithContext(ctx).Table(a.TableName()).
		Where("assignment_id = ? AND revision = ?", a.AssignmentId, a.Revision).
		Select("*").
		Omit("id", "created_at", "assignment_id", "mentor_id").
		Updates(&next)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleState
	}
	a.Revision = next.Revision
	a.UpdatedAt = next.UpdatedAt
	return nil
}

func (ar *AssignmentRepo) Delete(ctx context.Context, assignmentId string) error {
	res := ar.Database().WithContext(ctx).
		Where("assignment_id = ?", assignmentId).
		Delete(&model.Assignment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
