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

var (
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateBooking the mentor already has a scheduled session at that date and time
	ErrDuplicateBooking = errors.New("duplicate booking")
	// ErrDuplicatePending the startup already has a pending request to that mentor
	ErrDuplicatePending = errors.New("duplicate pending request")
	// ErrStaleState the row changed between read and conditional write
	ErrStaleState = errors.New("stale state")
)

// TxFunc runs fn with repositories bound to one transaction
type TxFunc func(ctx context.Context, fn func(tx *Repositories) error) error

// Repositories 统一管理所有 repository
type Repositories struct {
	Request    IEngagementRequestRepository
	Assignment IAssignmentRepository
	Slot       IAvailabilitySlotRepository
	Session    IScheduledSessionRepository

	transaction TxFunc
}

// Assemble builds Repositories from arbitrary implementations. tx may be nil.
func Assemble(req IEngagementRequestRepository, asg IAssignmentRepository, slot IAvailabilitySlotRepository,
	session IScheduledSessionRepository, tx TxFunc) *Repositories {
	return &Repositories{
		Request:     req,
		Assignment:  asg,
		Slot:        slot,
		Session:     session,
		transaction: tx,
	}
}

// NewRepositories 初始化所有 gorm repository
func NewRepositories(db database.IDatabase) *Repositories {
	r := Assemble(
		NewEngagementRequestRepo(db),
		NewAssignmentRepo(db),
		NewAvailabilitySlotRepo(db),
		NewScheduledSessionRepo(db),
		nil,
	)
	r.transaction = func(ctx context.Context, fn func(tx *Repositories) error) error {
		return db.Database().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(NewRepositories(database.NewGormDB(tx)))
		})
	}
	return r
}

// Transaction runs fn atomically when the backend supports it
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	if r.transaction == nil {
		return fn(r)
	}
	return r.transaction(ctx, fn)
}

// AutoMigrate creates or alters every table
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(model.Tables()...)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return err
	}
}
