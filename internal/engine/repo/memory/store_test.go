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

package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/model"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(id, key string) *model.ScheduledSession {
	return &model.ScheduledSession{
		SessionId:   id,
		MentorId:    "m1",
		SessionDate: "2030-01-07",
		SessionTime: "14:00",
		Status:      model.SessionScheduled,
		BookingKey:  &key,
	}
}

func TestSessionRepo_BookingKeyIsUnique(t *testing.T) {
	repos := NewRepositories(NewStore())
	ctx := context.Background()
	key := model.BookingKey("m1", "2030-01-07", "14:00")

	var wg sync.WaitGroup
	var mu sync.Mutex
	var ok, dup int
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repos.Session.Create(ctx, newSession(string(rune('a'+i)), key))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, repo.ErrDuplicateBooking):
				dup++
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, ok)
	assert.Equal(t, 9, dup)
}

func TestSessionRepo_TransitionReleasesKey(t *testing.T) {
	repos := NewRepositories(NewStore())
	ctx := context.Background()
	key := model.BookingKey("m1", "2030-01-07", "14:00")

	first := newSession("s1", key)
	require.NoError(t, repos.Session.Create(ctx, first))

	first.Status = model.SessionCancelled
	first.BookingKey = nil
	require.NoError(t, repos.Session.Transition(ctx, first, model.SessionScheduled))
	assert.ErrorIs(t, repos.Session.Transition(ctx, first, model.SessionScheduled), repo.ErrStaleState)

	require.NoError(t, repos.Session.Create(ctx, newSession("s2", key)))

	listed, err := repos.Session.ListScheduled(ctx, "m1", "2030-01-01", "2030-01-31")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "s2", listed[0].SessionId)
}

func TestSessionRepo_MarkReminded(t *testing.T) {
	repos := NewRepositories(NewStore())
	ctx := context.Background()
	require.NoError(t, repos.Session.Create(ctx, newSession("s1", "k")))

	first, err := repos.Session.MarkReminded(ctx, "s1", time.Now())
	require.NoError(t, err)
	assert.True(t, first)

	again, err := repos.Session.MarkReminded(ctx, "s1", time.Now())
	require.NoError(t, err)
	assert.False(t, again)
}

func TestTransaction_RollsBack(t *testing.T) {
	repos := NewRepositories(NewStore())
	ctx := context.Background()
	require.NoError(t, repos.Request.Create(ctx, &model.EngagementRequest{RequestId: "r1", Status: model.RequestPending}))

	boom := errors.New("boom")
	err := repos.Transaction(ctx, func(tx *repo.Repositories) error {
		require.NoError(t, tx.Assignment.Create(ctx, &model.Assignment{AssignmentId: "a1"}))
		req := &model.EngagementRequest{RequestId: "r1", Status: model.RequestAccepted}
		require.NoError(t, tx.Request.Respond(ctx, req, model.RequestPending))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repos.Assignment.Get(ctx, "a1")
	assert.ErrorIs(t, err, repo.ErrNotFound)
	got, err := repos.Request.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, model.RequestPending, got.Status)
}

func TestAssignmentRepo_OptimisticUpdate(t *testing.T) {
	repos := NewRepositories(NewStore())
	ctx := context.Background()
	require.NoError(t, repos.Assignment.Create(ctx, &model.Assignment{AssignmentId: "a1", MentorId: "m1"}))

	a, err := repos.Assignment.Get(ctx, "a1")
	require.NoError(t, err)
	stale := *a

	a.Status = model.AssignmentActive
	require.NoError(t, repos.Assignment.Update(ctx, a))
	assert.Equal(t, int64(1), a.Revision)

	stale.Status = model.AssignmentCompleted
	assert.ErrorIs(t, repos.Assignment.Update(ctx, &stale), repo.ErrStaleState)
}

func TestSlotRepo_DeleteTouchesOneRow(t *testing.T) {
	repos := NewRepositories(NewStore())
	ctx := context.Background()
	for _, id := range []string{"x", "y"} {
		require.NoError(t, repos.Slot.Create(ctx, &model.AvailabilitySlot{SlotId: id, MentorId: "m1", IsActive: true}))
	}
	require.NoError(t, repos.Slot.Delete(ctx, "x"))
	assert.ErrorIs(t, repos.Slot.Delete(ctx, "x"), repo.ErrNotFound)

	left, err := repos.Slot.ListByMentor(ctx, "m1", false)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "y", left[0].SlotId)
}

func TestRequestRepo_PendingKey(t *testing.T) {
	repos := NewRepositories(NewStore())
	ctx := context.Background()
	newRequest := func(id string) *model.EngagementRequest {
		key := model.PendingKey("s1", "m1")
		return &model.EngagementRequest{RequestId: id, StartupId: "s1", MentorId: "m1", Status: model.RequestPending, PendingKey: &key}
	}

	req := newRequest("r1")
	require.NoError(t, repos.Request.Create(ctx, req))
	assert.ErrorIs(t, repos.Request.Create(ctx, newRequest("r2")), repo.ErrDuplicatePending)

	// 回滚后占用恢复
	err := repos.Transaction(ctx, func(tx *repo.Repositories) error {
		cancelled := *req
		cancelled.Status = model.RequestCancelled
		cancelled.PendingKey = nil
		if err := tx.Request.Respond(ctx, &cancelled, model.RequestPending); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)
	assert.ErrorIs(t, repos.Request.Create(ctx, newRequest("r3")), repo.ErrDuplicatePending)

	req.Status = model.RequestCancelled
	req.PendingKey = nil
	require.NoError(t, repos.Request.Respond(ctx, req, model.RequestPending))
	require.NoError(t, repos.Request.Create(ctx, newRequest("r4")))
}
