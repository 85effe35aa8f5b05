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
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/model"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRepos opens a private in-memory sqlite database with the production schema
func newTestRepos(t *testing.T) *Repositories {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection of :memory: is its own database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return NewRepositories(database.NewGormDB(db))
}

func newSession(sessionId, mentorId, date, clock string) *model.ScheduledSession {
	key := model.BookingKey(mentorId, date, clock)
	return &model.ScheduledSession{
		SessionId:       sessionId,
		MentorId:        mentorId,
		StartupId:       "s1",
		AssignmentId:    "a1",
		SlotId:          "slot1",
		SessionDate:     date,
		SessionTime:     clock,
		Timezone:        "UTC",
		DurationMinutes: 60,
		Status:          model.SessionScheduled,
		BookingKey:      &key,
	}
}

func TestScheduledSessionRepo_BookingKey(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	first := newSession("sess-1", "m1", "2030-01-07", "10:00")
	require.NoError(t, repos.Session.Create(ctx, first))

	err := repos.Session.Create(ctx, newSession("sess-2", "m1", "2030-01-07", "10:00"))
	assert.ErrorIs(t, err, ErrDuplicateBooking)

	// 其他导师同一时间不冲突
	require.NoError(t, repos.Session.Create(ctx, newSession("sess-3", "m2", "2030-01-07", "10:00")))

	// 取消后释放占用
	now := time.Date(2030, 1, 6, 12, 0, 0, 0, time.UTC)
	by := "s1"
	first.Status = model.SessionCancelled
	first.BookingKey = nil
	first.CancelledBy = &by
	first.CancelledAt = &now
	require.NoError(t, repos.Session.Transition(ctx, first, model.SessionScheduled))
	assert.ErrorIs(t, repos.Session.Transition(ctx, first, model.SessionScheduled), ErrStaleState)

	require.NoError(t, repos.Session.Create(ctx, newSession("sess-4", "m1", "2030-01-07", "10:00")))

	got, err := repos.Session.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, model.SessionCancelled, got.Status)
	assert.Nil(t, got.BookingKey)

	scheduled, err := repos.Session.ListScheduled(ctx, "m1", "2030-01-01", "2030-01-31")
	require.NoError(t, err)
	require.Len(t, scheduled, 1)
	assert.Equal(t, "sess-4", scheduled[0].SessionId)
}

func TestScheduledSessionRepo_LinkAndReminder(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	require.NoError(t, repos.Session.Create(ctx, newSession("sess-1", "m1", "2030-01-07", "10:00")))

	require.NoError(t, repos.Session.SetConferencingLink(ctx, "sess-1", "https://meet.test/abc"))
	assert.ErrorIs(t, repos.Session.SetConferencingLink(ctx, "missing", "x"), ErrNotFound)

	at := time.Date(2030, 1, 7, 9, 30, 0, 0, time.UTC)
	ok, err := repos.Session.MarkReminded(ctx, "sess-1", at)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repos.Session.MarkReminded(ctx, "sess-1", at)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repos.Session.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got.ConferencingLink)
	assert.Equal(t, "https://meet.test/abc", *got.ConferencingLink)
	assert.NotNil(t, got.ReminderSentAt)

	_, err = repos.Session.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAssignmentRepo_OptimisticUpdate(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	a := &model.Assignment{
		AssignmentId:    "a1",
		MentorId:        "m1",
		StartupName:     "Acme",
		Status:          model.AssignmentPendingPayment,
		PaymentRequired: true,
		FeeType:         model.FeeTypeFees,
		FeeAmount:       100,
		AssignedAt:      time.Date(2030, 1, 7, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repos.Assignment.Create(ctx, a))

	stale, err := repos.Assignment.Get(ctx, "a1")
	require.NoError(t, err)

	a.PaymentStatus = model.PaymentCompleted
	a.Status = model.AssignmentReadyForActivation
	require.NoError(t, repos.Assignment.Update(ctx, a))
	assert.Equal(t, int64(1), a.Revision)

	stale.Status = model.AssignmentActive
	assert.ErrorIs(t, repos.Assignment.Update(ctx, stale), ErrStaleState)

	got, err := repos.Assignment.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, model.AssignmentReadyForActivation, got.Status)
	assert.Equal(t, model.PaymentCompleted, got.PaymentStatus)
	assert.Equal(t, "m1", got.MentorId)
	assert.Equal(t, int64(1), got.Revision)
}

func newRequest(requestId, startupId, mentorId string) *model.EngagementRequest {
	key := model.PendingKey(startupId, mentorId)
	return &model.EngagementRequest{
		RequestId:   requestId,
		StartupId:   startupId,
		MentorId:    mentorId,
		Status:      model.RequestPending,
		PendingKey:  &key,
		FeeType:     model.FeeTypeFree,
		RequestedAt: time.Date(2030, 1, 7, 9, 0, 0, 0, time.UTC),
	}
}

func TestEngagementRequestRepo_PendingKey(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	req := newRequest("r1", "s1", "m1")
	require.NoError(t, repos.Request.Create(ctx, req))
	assert.ErrorIs(t, repos.Request.Create(ctx, newRequest("r2", "s1", "m1")), ErrDuplicatePending)

	pending, err := repos.Request.FindPending(ctx, "s1", "m1")
	require.NoError(t, err)
	assert.Equal(t, "r1", pending.RequestId)

	now := time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC)
	req.Status = model.RequestRejected
	req.RespondedAt = &now
	req.PendingKey = nil
	require.NoError(t, repos.Request.Respond(ctx, req, model.RequestPending))
	assert.ErrorIs(t, repos.Request.Respond(ctx, req, model.RequestPending), ErrStaleState)

	_, err = repos.Request.FindPending(ctx, "s1", "m1")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, repos.Request.Create(ctx, newRequest("r3", "s1", "m1")))
}

func TestRepositories_TransactionRollsBack(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	require.NoError(t, repos.Request.Create(ctx, newRequest("r1", "s1", "m1")))

	accept := func(requestId, assignmentId string) error {
		return repos.Transaction(ctx, func(tx *Repositories) error {
			a := &model.Assignment{AssignmentId: assignmentId, MentorId: "m1", Status: model.AssignmentReadyForActivation,
				AssignedAt: time.Date(2030, 1, 7, 9, 0, 0, 0, time.UTC)}
			if err := tx.Assignment.Create(ctx, a); err != nil {
				return err
			}
			now := time.Date(2030, 1, 7, 9, 0, 0, 0, time.UTC)
			return tx.Request.Respond(ctx, &model.EngagementRequest{
				RequestId: requestId, Status: model.RequestAccepted, RespondedAt: &now, AssignmentId: &assignmentId,
			}, model.RequestPending)
		})
	}

	// 请求不存在, 分配记录必须回滚
	assert.ErrorIs(t, accept("missing", "a-rolled-back"), ErrStaleState)
	_, err := repos.Assignment.Get(ctx, "a-rolled-back")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, accept("r1", "a1"))
	got, err := repos.Assignment.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "m1", got.MentorId)
	req, err := repos.Request.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, model.RequestAccepted, req.Status)
	assert.Nil(t, req.PendingKey)

	// 同一请求不能被接受两次
	assert.ErrorIs(t, accept("r1", "a2"), ErrStaleState)
	_, err = repos.Assignment.Get(ctx, "a2")
	assert.ErrorIs(t, err, ErrNotFound)
}
