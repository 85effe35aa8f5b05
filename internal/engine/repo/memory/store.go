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

// Package memory keeps every repository in process. It enforces the same
// uniqueness rules as the relational schema, including the booking key.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/model"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/repo"
)

type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex
	seq  uint64

	requests    map[string]*model.EngagementRequest
	assignments map[string]*model.Assignment
	slots       map[string]*model.AvailabilitySlot
	sessions    map[string]*model.ScheduledSession
	bookingKeys map[string]string
	pendingKeys map[string]string
}

func NewStore() *Store {
	return &Store{
		requests:    make(map[string]*model.EngagementRequest),
		assignments: make(map[string]*model.Assignment),
		slots:       make(map[string]*model.AvailabilitySlot),
		sessions:    make(map[string]*model.ScheduledSession),
		bookingKeys: make(map[string]string),
		pendingKeys: make(map[string]string),
	}
}

// view is the handle the repositories share. Inside a transaction undo is non nil
// and every mutation pushes its inverse.
type view struct {
	s    *Store
	undo *[]func()
}

func (v view) remember(f func()) {
	if v.undo != nil {
		*v.undo = append(*v.undo, f)
	}
}

// NewRepositories returns repositories backed by s
func NewRepositories(s *Store) *repo.Repositories {
	return s.repositories(view{s: s})
}

func (s *Store) repositories(v view) *repo.Repositories {
	var tx repo.TxFunc
	if v.undo == nil {
		tx = s.transaction
	}
	return repo.Assemble(
		&requestRepo{v},
		&assignmentRepo{v},
		&slotRepo{v},
		&sessionRepo{v},
		tx,
	)
}

// transaction serializes transactional callers and rolls back on error
func (s *Store) transaction(ctx context.Context, fn func(tx *repo.Repositories) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	var undo []func()
	tx := s.repositories(view{s: s, undo: &undo})
	if err := fn(tx); err != nil {
		s.mu.Lock()
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
		s.mu.Unlock()
		return err
	}
	return ctx.Err()
}

func (s *Store) stamp(b *model.BaseModel) {
	now := time.Now()
	if b.ID == 0 {
		s.seq++
		b.ID = s.seq
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

type requestRepo struct{ view }

func (r *requestRepo) Create(_ context.Context, req *model.EngagementRequest) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[req.RequestId]; ok {
		return repo.ErrStaleState
	}
	if req.PendingKey != nil {
		if _, taken := s.pendingKeys[*req.PendingKey]; taken {
			return repo.ErrDuplicatePending
		}
		s.pendingKeys[*req.PendingKey] = req.RequestId
	}
	s.stamp(&req.BaseModel)
	cp := *req
	s.requests[req.RequestId] = &cp
	r.remember(func() {
		delete(s.requests, req.RequestId)
		if cp.PendingKey != nil {
			delete(s.pendingKeys, *cp.PendingKey)
		}
	})
	return nil
}

func (r *requestRepo) Get(_ context.Context, requestId string) (*model.EngagementRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.requests[requestId]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *requestRepo) FindPending(_ context.Context, startupId, mentorId string) (*model.EngagementRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, req := range r.s.requests {
		if req.StartupId == startupId && req.MentorId == mentorId && req.Status == model.RequestPending {
			cp := *req
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *requestRepo) list(match func(*model.EngagementRequest) bool) []*model.EngagementRequest {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*model.EngagementRequest
	for _, req := range r.s.requests {
		if match(req) {
			cp := *req
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestedAt.After(out[j].RequestedAt) })
	return out
}

func (r *requestRepo) ListByMentor(_ context.Context, mentorId string) ([]*model.EngagementRequest, error) {
	return r.list(func(req *model.EngagementRequest) bool { return req.MentorId == mentorId }), nil
}

func (r *requestRepo) ListByStartup(_ context.Context, startupId string) ([]*model.EngagementRequest, error) {
	return r.list(func(req *model.EngagementRequest) bool { return req.StartupId == startupId }), nil
}

func (r *requestRepo) Respond(_ context.Context, req *model.EngagementRequest, from model.RequestStatus) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.requests[req.RequestId]
	if !ok || cur.Status != from {
		return repo.ErrStaleState
	}
	prev := *cur
	if cur.PendingKey != nil && req.PendingKey == nil {
		delete(s.pendingKeys, *cur.PendingKey)
	}
	cur.Status = req.Status
	cur.RespondedAt = req.RespondedAt
	cur.AssignmentId = req.AssignmentId
	cur.PendingKey = req.PendingKey
	cur.UpdatedAt = time.Now()
	r.remember(func() {
		*cur = prev
		if prev.PendingKey != nil {
			s.pendingKeys[*prev.PendingKey] = prev.RequestId
		}
	})
	return nil
}

func (r *requestRepo) Delete(_ context.Context, requestId string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.requests[requestId]
	if !ok {
		return repo.ErrNotFound
	}
	delete(s.requests, requestId)
	r.remember(func() { s.requests[requestId] = cur })
	return nil
}

type assignmentRepo struct{ view }

func (r *assignmentRepo) Create(_ context.Context, a *model.Assignment) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.assignments[a.AssignmentId]; ok {
		return repo.ErrStaleState
	}
	s.stamp(&a.BaseModel)
	cp := *a
	s.assignments[a.AssignmentId] = &cp
	r.remember(func() { delete(s.assignments, a.AssignmentId) })
	return nil
}

func (r *assignmentRepo) Get(_ context.Context, assignmentId string) (*model.Assignment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.assignments[assignmentId]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *assignmentRepo) list(match func(*model.Assignment) bool) []*model.Assignment {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*model.Assignment
	for _, a := range r.s.assignments {
		if match(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssignedAt.After(out[j].AssignedAt) })
	return out
}

func (r *assignmentRepo) ListByMentor(_ context.Context, mentorId string) ([]*model.Assignment, error) {
	return r.list(func(a *model.Assignment) bool { return a.MentorId == mentorId }), nil
}

func (r *assignmentRepo) ListByStartup(_ context.Context, startupId string) ([]*model.Assignment, error) {
	return r.list(func(a *model.Assignment) bool { return a.BelongsToStartup(startupId) }), nil
}

func (r *assignmentRepo) Update(_ context.Context, a *model.Assignment) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.assignments[a.AssignmentId]
	if !ok || cur.Revision != a.Revision {
		return repo.ErrStaleState
	}
	prev := *cur
	next := *a
	next.ID, next.CreatedAt, next.MentorId = cur.ID, cur.CreatedAt, cur.MentorId
	next.Revision = a.Revision + 1
	next.UpdatedAt = time.Now()
	*cur = next
	a.Revision, a.UpdatedAt = next.Revision, next.UpdatedAt
	r.remember(func() { *cur = prev })
	return nil
}

func (r *assignmentRepo) Delete(_ context.Context, assignmentId string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.assignments[assignmentId]
	if !ok {
		return repo.ErrNotFound
	}
	delete(s.assignments, assignmentId)
	r.remember(func() { s.assignments[assignmentId] = cur })
	return nil
}

type slotRepo struct{ view }

func (r *slotRepo) Create(_ context.Context, slot *model.AvailabilitySlot) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.slots[slot.SlotId]; ok {
		return repo.ErrStaleState
	}
	s.stamp(&slot.BaseModel)
	cp := *slot
	s.slots[slot.SlotId] = &cp
	r.remember(func() { delete(s.slots, slot.SlotId) })
	return nil
}

func (r *slotRepo) Get(_ context.Context, slotId string) (*model.AvailabilitySlot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	slot, ok := r.s.slots[slotId]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *slot
	return &cp, nil
}

func (r *slotRepo) ListByMentor(_ context.Context, mentorId string, activeOnly bool) ([]*model.AvailabilitySlot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*model.AvailabilitySlot
	for _, slot := range r.s.slots {
		if slot.MentorId != mentorId || (activeOnly && !slot.IsActive) {
			continue
		}
		cp := *slot
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *slotRepo) Update(_ context.Context, slot *model.AvailabilitySlot) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.slots[slot.SlotId]
	if !ok {
		return repo.ErrNotFound
	}
	prev := *cur
	next := *slot
	next.ID, next.CreatedAt, next.MentorId = cur.ID, cur.CreatedAt, cur.MentorId
	next.UpdatedAt = time.Now()
	*cur = next
	r.remember(func() { *cur = prev })
	return nil
}

func (r *slotRepo) Delete(_ context.Context, slotId string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.slots[slotId]
	if !ok {
		return repo.ErrNotFound
	}
	delete(s.slots, slotId)
	r.remember(func() { s.slots[slotId] = cur })
	return nil
}

type sessionRepo struct{ view }

func (r *sessionRepo) Create(_ context.Context, sess *model.ScheduledSession) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess.BookingKey != nil {
		if _, taken := s.bookingKeys[*sess.BookingKey]; taken {
			return repo.ErrDuplicateBooking
		}
	}
	if _, ok := s.sessions[sess.SessionId]; ok {
		return repo.ErrStaleState
	}
	s.stamp(&sess.BaseModel)
	cp := *sess
	s.sessions[sess.SessionId] = &cp
	if sess.BookingKey != nil {
		s.bookingKeys[*sess.BookingKey] = sess.SessionId
	}
	r.remember(func() {
		delete(s.sessions, cp.SessionId)
		if cp.BookingKey != nil {
			delete(s.bookingKeys, *cp.BookingKey)
		}
	})
	return nil
}

func (r *sessionRepo) Get(_ context.Context, sessionId string) (*model.ScheduledSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sess, ok := r.s.sessions[sessionId]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *sess
	return &cp, nil
}

func (r *sessionRepo) list(match func(*model.ScheduledSession) bool) []*model.ScheduledSession {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*model.ScheduledSession
	for _, sess := range r.s.sessions {
		if match(sess) {
			cp := *sess
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SessionDate != out[j].SessionDate {
			return out[i].SessionDate < out[j].SessionDate
		}
		return out[i].SessionTime < out[j].SessionTime
	})
	return out
}

func (r *sessionRepo) ListByMentor(_ context.Context, mentorId string) ([]*model.ScheduledSession, error) {
	return r.list(func(s *model.ScheduledSession) bool { return s.MentorId == mentorId }), nil
}

func (r *sessionRepo) ListByStartup(_ context.Context, startupId string) ([]*model.ScheduledSession, error) {
	return r.list(func(s *model.ScheduledSession) bool { return s.StartupId == startupId }), nil
}

func (r *sessionRepo) ListScheduled(_ context.Context, mentorId, from, to string) ([]*model.ScheduledSession, error) {
	return r.list(func(s *model.ScheduledSession) bool {
		return s.Status == model.SessionScheduled &&
			(mentorId == "" || s.MentorId == mentorId) &&
			s.SessionDate >= from && s.SessionDate <= to
	}), nil
}

func (r *sessionRepo) Transition(_ context.Context, sess *model.ScheduledSession, from model.SessionStatus) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.sessions[sess.SessionId]
	if !ok || cur.Status != from {
		return repo.ErrStaleState
	}
	prev := *cur
	if cur.BookingKey != nil && (sess.BookingKey == nil || *sess.BookingKey != *cur.BookingKey) {
		delete(s.bookingKeys, *cur.BookingKey)
	}
	cur.Status = sess.Status
	cur.BookingKey = sess.BookingKey
	cur.Feedback = sess.Feedback
	cur.CancelledBy = sess.CancelledBy
	cur.CompletedAt = sess.CompletedAt
	cur.CancelledAt = sess.CancelledAt
	cur.UpdatedAt = time.Now()
	r.remember(func() {
		*cur = prev
		if prev.BookingKey != nil {
			s.bookingKeys[*prev.BookingKey] = prev.SessionId
		}
	})
	return nil
}

func (r *sessionRepo) SetConferencingLink(_ context.Context, sessionId, link string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.sessions[sessionId]
	if !ok {
		return repo.ErrNotFound
	}
	prev := cur.ConferencingLink
	cur.ConferencingLink = &link
	r.remember(func() { cur.ConferencingLink = prev })
	return nil
}

func (r *sessionRepo) MarkReminded(_ context.Context, sessionId string, at time.Time) (bool, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.sessions[sessionId]
	if !ok || cur.Status != model.SessionScheduled || cur.ReminderSentAt != nil {
		return false, nil
	}
	cur.ReminderSentAt = &at
	r.remember(func() { cur.ReminderSentAt = nil })
	return true, nil
}
