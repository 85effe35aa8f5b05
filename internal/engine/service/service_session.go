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
	"errors"
	"strings"

	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/config"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/errs"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/model"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/schedule"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/id"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ConferencingProvider supplies the meeting link of a booked session
type ConferencingProvider interface {
	RoomLink(ctx context.Context, session *model.ScheduledSession) (string, error)
}

// BookingRequest a startup's request to book one occurrence
type BookingRequest struct {
	AssignmentId    string `json:"assignmentId"`
	SlotId          string `json:"slotId"`
	Date            string `json:"date"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	Agenda          string `json:"agenda,omitempty"`
}

type SessionService struct {
	*base
	conf         config.SchedulingConfig
	conferencing ConferencingProvider
}

func NewSessionService(b *base, conf config.SchedulingConfig, conferencing ConferencingProvider) *SessionService {
	return &SessionService{base: b, conf: conf, conferencing: conferencing}
}

// BookSession claims an occurrence for the calling startup. The unique booking
// key decides between concurrent bookers.
func (s *SessionService) BookSession(ctx context.Context, p model.Principal, in BookingRequest) (sess *model.ScheduledSession, err error) {
	ctx, span := tracer.Start(ctx, "SessionService.BookSession")
	span.SetAttributes(
		attribute.String("assignment.id", in.AssignmentId),
		attribute.String("slot.id", in.SlotId),
		attribute.String("session.date", in.Date),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, errs.KindOf(err).String())
		}
		span.End()
	}()

	sess, err = s.book(ctx, p, in)
	switch {
	case err == nil:
		s.metrics.ObserveBooking(metrics.BookingBooked)
	case errors.Is(err, errs.ErrSlotAlreadyBooked):
		s.metrics.ObserveBooking(metrics.BookingConflict)
	case errors.Is(err, errs.ErrInvalidState):
		s.metrics.ObserveBooking(metrics.BookingGateBlocked)
	default:
		s.metrics.ObserveBooking(metrics.BookingInvalid)
	}
	return sess, err
}

func (s *SessionService) book(ctx context.Context, p model.Principal, in BookingRequest) (*model.ScheduledSession, error) {
	if !p.IsStartup() {
		return nil, errs.NotFound("assignment %s not found", in.AssignmentId)
	}
	a, err := s.loadAssignment(ctx, p, in.AssignmentId, true)
	if err != nil {
		return nil, err
	}
	if a.Status != model.AssignmentActive {
		return nil, errs.InvalidState("assignment is %s, sessions need an active assignment", a.Status)
	}

	slot, err := s.repos.Slot.Get(ctx, in.SlotId)
	if err != nil || slot.MentorId != a.MentorId {
		return nil, errs.Validation("slot %s is not offered by this mentor", in.SlotId)
	}
	if !slot.IsActive {
		return nil, errs.Validation("slot %s is not active", in.SlotId)
	}
	w, err := slot.Window()
	if err != nil {
		return nil, errs.Validation("%v", err)
	}
	date, err := schedule.ParseDate(in.Date)
	if err != nil {
		return nil, errs.Validation("%v", err)
	}
	if !schedule.ValidOn(w, date) {
		return nil, errs.Validation("slot %s has no occurrence on %s", in.SlotId, in.Date)
	}
	if schedule.IsPast(w, date, s.now()) {
		return nil, errs.Validation("occurrence on %s %s is in the past", in.Date, w.Start)
	}

	maxMinutes := int(w.Length().Minutes())
	duration := in.DurationMinutes
	if duration == 0 {
		duration = min(s.conf.DefaultDurationMinutes, maxMinutes)
	}
	if duration <= 0 || duration > maxMinutes {
		return nil, errs.Validation("duration must be between 1 and %d minutes", maxMinutes)
	}

	clock := w.Start.String()
	// advisory, the unique key below is authoritative
	existing, err := s.repos.Session.ListScheduled(ctx, a.MentorId, in.Date, in.Date)
	if err != nil {
		return nil, storeErr(err, "list booked sessions", "mentorId", a.MentorId)
	}
	for _, e := range existing {
		if e.SessionTime == clock {
			return nil, errs.SlotAlreadyBooked("occurrence %s %s is already booked", in.Date, clock)
		}
	}

	key := model.BookingKey(a.MentorId, in.Date, clock)
	sess := &model.ScheduledSession{
		SessionId:       id.GetUlid(),
		MentorId:        a.MentorId,
		StartupId:       p.UserId,
		StartupName:     a.StartupName,
		AssignmentId:    a.AssignmentId,
		SlotId:          slot.SlotId,
		SessionDate:     in.Date,
		SessionTime:     clock,
		Timezone:        slot.Timezone,
		DurationMinutes: duration,
		Status:          model.SessionScheduled,
		BookingKey:      &key,
	}
	if agenda := strings.TrimSpace(in.Agenda); agenda != "" {
		sess.Agenda = &agenda
	}
	if err := s.repos.Session.Create(ctx, sess); err != nil {
		return nil, storeErr(err, "create session", "mentorId", a.MentorId, "date", in.Date, "time", clock)
	}

	s.attachRoomLink(ctx, sess)
	s.publish(model.NewEvent(model.EventSessionBooked, sessionPayload(sess)))
	log.Infow("session booked", "sessionId", sess.SessionId, "mentorId", sess.MentorId, "date", sess.SessionDate, "time", sess.SessionTime)
	return sess, nil
}

// attachRoomLink is best effort, a failure leaves the session without a link
func (s *SessionService) attachRoomLink(ctx context.Context, sess *model.ScheduledSession) {
	if s.conferencing == nil {
		return
	}
	link, err := s.conferencing.RoomLink(ctx, sess)
	if err != nil || link == "" {
		log.Warnw("conferencing link unavailable", "sessionId", sess.SessionId, "error", err)
		return
	}
	if err := s.repos.Session.SetConferencingLink(ctx, sess.SessionId, link); err != nil {
		log.Warnw("store conferencing link failed", "sessionId", sess.SessionId, "error", err)
		return
	}
	sess.ConferencingLink = &link
}

// CancelSession either party cancels a scheduled session
func (s *SessionService) CancelSession(ctx context.Context, p model.Principal, sessionId string) (*model.ScheduledSession, error) {
	sess, err := s.loadSession(ctx, p, sessionId, true)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	by := p.UserId
	sess.CancelledBy = &by
	sess.CancelledAt = &now
	if err := s.finish(ctx, sess, model.SessionCancelled); err != nil {
		return nil, err
	}
	s.publish(model.NewEvent(model.EventSessionCancelled, sessionPayload(sess)))
	return sess, nil
}

// CompleteSession mentor marks a scheduled session held
func (s *SessionService) CompleteSession(ctx context.Context, p model.Principal, sessionId string, feedback *string) (*model.ScheduledSession, error) {
	sess, err := s.loadSession(ctx, p, sessionId, false)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	sess.CompletedAt = &now
	if f := nonEmpty(feedback); f != nil {
		sess.Feedback = f
	}
	if err := s.finish(ctx, sess, model.SessionCompleted); err != nil {
		return nil, err
	}
	s.publish(model.NewEvent(model.EventSessionCompleted, sessionPayload(sess)))
	return sess, nil
}

// finish moves sess to a terminal status and frees its booking key
func (s *SessionService) finish(ctx context.Context, sess *model.ScheduledSession, to model.SessionStatus) error {
	from := sess.Status
	if err := model.SessionLifecycle.Transition(from, to); err != nil {
		return errs.InvalidState("session is %s", from)
	}
	sess.Status = to
	sess.BookingKey = nil
	if err := s.repos.Session.Transition(ctx, sess, from); err != nil {
		return storeErr(err, "transition session", "sessionId", sess.SessionId)
	}
	log.Infow("session finished", "sessionId", sess.SessionId, "status", to)
	return nil
}

// AttachConferencingLink mentor replaces the link of a scheduled session
func (s *SessionService) AttachConferencingLink(ctx context.Context, p model.Principal, sessionId, link string) (*model.ScheduledSession, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, errs.Validation("conferencing link is required")
	}
	sess, err := s.loadSession(ctx, p, sessionId, false)
	if err != nil {
		return nil, err
	}
	if sess.Status != model.SessionScheduled {
		return nil, errs.InvalidState("session is %s", sess.Status)
	}
	if err := s.repos.Session.SetConferencingLink(ctx, sessionId, link); err != nil {
		return nil, storeErr(err, "set conferencing link", "sessionId", sessionId)
	}
	sess.ConferencingLink = &link
	return sess, nil
}

// ListSessions returns the caller's sessions with their read-time label
func (s *SessionService) ListSessions(ctx context.Context, p model.Principal) ([]*model.SessionView, error) {
	var list []*model.ScheduledSession
	var err error
	switch {
	case p.IsMentor():
		list, err = s.repos.Session.ListByMentor(ctx, p.UserId)
	case p.IsStartup():
		list, err = s.repos.Session.ListByStartup(ctx, p.UserId)
	default:
		return nil, errs.Validation("unknown principal role %q", p.Role)
	}
	if err != nil {
		return nil, storeErr(err, "list sessions", "userId", p.UserId)
	}
	now := s.now()
	out := make([]*model.SessionView, 0, len(list))
	for _, sess := range list {
		out = append(out, &model.SessionView{ScheduledSession: sess, DisplayStatus: sess.DisplayStatus(now)})
	}
	return out, nil
}

func (s *SessionService) Get(ctx context.Context, p model.Principal, sessionId string) (*model.SessionView, error) {
	sess, err := s.loadSession(ctx, p, sessionId, true)
	if err != nil {
		return nil, err
	}
	return &model.SessionView{ScheduledSession: sess, DisplayStatus: sess.DisplayStatus(s.now())}, nil
}

func (s *SessionService) loadSession(ctx context.Context, p model.Principal, sessionId string, allowStartup bool) (*model.ScheduledSession, error) {
	sess, err := s.repos.Session.Get(ctx, sessionId)
	if err != nil {
		return nil, storeErr(err, "get session", "sessionId", sessionId)
	}
	switch {
	case p.IsMentor() && sess.MentorId == p.UserId:
		return sess, nil
	case allowStartup && p.IsStartup() && sess.StartupId == p.UserId:
		return sess, nil
	}
	return nil, errs.NotFound("session %s not found", sessionId)
}

func sessionPayload(sess *model.ScheduledSession) map[string]any {
	payload := map[string]any{
		"sessionId":    sess.SessionId,
		"mentorId":     sess.MentorId,
		"startupId":    sess.StartupId,
		"assignmentId": sess.AssignmentId,
		"date":         sess.SessionDate,
		"time":         sess.SessionTime,
		"timezone":     sess.Timezone,
		"status":       string(sess.Status),
	}
	if sess.ConferencingLink != nil {
		payload["conferencingLink"] = *sess.ConferencingLink
	}
	return payload
}
