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
	"strings"

	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/config"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/errs"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/model"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/id"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
)

type AssignmentService struct {
	*base
	engagement config.EngagementConfig
}

func NewAssignmentService(b *base, engagement config.EngagementConfig) *AssignmentService {
	return &AssignmentService{base: b, engagement: engagement}
}

// loadAssignment returns the assignment if p is its mentor, or its linked startup when allowStartup
func (b *base) loadAssignment(ctx context.Context, p model.Principal, assignmentId string, allowStartup bool) (*model.Assignment, error) {
	a, err := b.repos.Assignment.Get(ctx, assignmentId)
	if err != nil {
		return nil, storeErr(err, "get assignment", "assignmentId", assignmentId)
	}
	switch {
	case p.IsMentor() && a.MentorId == p.UserId:
		return a, nil
	case allowStartup && p.IsStartup() && a.BelongsToStartup(p.UserId):
		return a, nil
	}
	return nil, errs.NotFound("assignment %s not found", assignmentId)
}

// saveAssignment persists a and reports the status change when there is one
func (b *base) saveAssignment(ctx context.Context, a *model.Assignment, from model.AssignmentStatus) error {
	if err := b.repos.Assignment.Update(ctx, a); err != nil {
		return storeErr(err, "update assignment", "assignmentId", a.AssignmentId)
	}
	if from != a.Status {
		b.metrics.ObserveTransition(string(from), string(a.Status))
		b.publish(model.NewEvent(model.EventAssignmentStatusChanged, map[string]any{
			"assignmentId": a.AssignmentId,
			"mentorId":     a.MentorId,
			"from":         string(from),
			"to":           string(a.Status),
		}))
		log.Infow("assignment status changed", "assignmentId", a.AssignmentId, "from", from, "to", a.Status)
	}
	return nil
}

// recomputeAndSave re-derives the gated status and persists a
func (b *base) recomputeAndSave(ctx context.Context, a *model.Assignment) error {
	from, _, err := a.Recompute()
	if err != nil {
		return errs.InvalidState("assignment cannot move from %s: %v", from, err)
	}
	return b.saveAssignment(ctx, a, from)
}

// MarkPaymentCompleted clears the payment gate
func (s *AssignmentService) MarkPaymentCompleted(ctx context.Context, p model.Principal, assignmentId string) (*model.Assignment, error) {
	a, err := s.loadAssignment(ctx, p, assignmentId, true)
	if err != nil {
		return nil, err
	}
	if !a.PaymentRequired {
		return nil, errs.InvalidState("assignment has no payment gate")
	}
	if a.PaymentStatus == model.PaymentCompleted {
		return nil, errs.InvalidState("payment already completed")
	}
	if !a.Status.IsGated() {
		return nil, errs.InvalidState("assignment is %s", a.Status)
	}
	a.PaymentStatus = model.PaymentCompleted
	if err := s.recomputeAndSave(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// FinalAccept mentor activates an assignment whose gates are all cleared
func (s *AssignmentService) FinalAccept(ctx context.Context, p model.Principal, assignmentId string) (*model.Assignment, error) {
	a, err := s.loadAssignment(ctx, p, assignmentId, false)
	if err != nil {
		return nil, err
	}
	if a.Status != model.AssignmentReadyForActivation {
		return nil, errs.GateNotCleared("assignment is %s, not ready for activation", a.Status)
	}
	from := a.Status
	if err := model.AssignmentLifecycle.Transition(from, model.AssignmentActive); err != nil {
		return nil, errs.InvalidState("%v", err)
	}
	now := s.now().UTC()
	a.Status = model.AssignmentActive
	a.ActivatedAt = &now
	if err := s.saveAssignment(ctx, a, from); err != nil {
		return nil, err
	}
	return a, nil
}

// Complete mentor moves an active assignment to the previous list
func (s *AssignmentService) Complete(ctx context.Context, p model.Principal, assignmentId string) (*model.Assignment, error) {
	a, err := s.loadAssignment(ctx, p, assignmentId, false)
	if err != nil {
		return nil, err
	}
	from := a.Status
	if err := model.AssignmentLifecycle.Transition(from, model.AssignmentCompleted); err != nil {
		return nil, errs.InvalidState("only active assignments can be completed, assignment is %s", from)
	}
	now := s.now().UTC()
	a.Status = model.AssignmentCompleted
	a.CompletedAt = &now
	if err := s.saveAssignment(ctx, a, from); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes a manually recorded engagement
func (s *AssignmentService) Delete(ctx context.Context, p model.Principal, assignmentId string) error {
	a, err := s.loadAssignment(ctx, p, assignmentId, false)
	if err != nil {
		return err
	}
	if !a.IsManual() {
		return errs.InvalidState("only manually recorded engagements can be deleted")
	}
	if err := s.repos.Assignment.Delete(ctx, assignmentId); err != nil {
		return storeErr(err, "delete assignment", "assignmentId", assignmentId)
	}
	log.Infow("manual assignment deleted", "assignmentId", assignmentId, "mentorId", p.UserId)
	return nil
}

// RecordManualEngagement mentor records an engagement with an off-platform startup.
// No gates apply, the assignment starts active.
func (s *AssignmentService) RecordManualEngagement(ctx context.Context, p model.Principal, startup model.ManualStartup, terms model.Terms) (*model.Assignment, error) {
	if !p.IsMentor() {
		return nil, errs.Validation("only a mentor can record an engagement")
	}
	startup.Name = strings.TrimSpace(startup.Name)
	if startup.Name == "" {
		return nil, errs.Validation("startup name is required")
	}
	if terms.FeeType == "" {
		terms.FeeType = model.FeeTypeFree
	}
	if err := ValidateTerms(&terms, s.engagement.DefaultCurrency); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	a := &model.Assignment{
		AssignmentId: id.GetUUID(),
		MentorId:     p.UserId,
		AssignedAt:   now,
	}
	if err := a.SetParty(startup); err != nil {
		return nil, errs.Internal(err, "encode manual startup")
	}
	a.ApplyTerms(terms)
	a.PaymentRequired, a.AgreementRequired = false, false
	a.PaymentStatus = model.PaymentNone
	a.AgreementUrl = nil
	a.Status = model.AssignmentActive
	a.ActivatedAt = &now

	if err := s.repos.Assignment.Create(ctx, a); err != nil {
		return nil, storeErr(err, "create manual assignment", "mentorId", p.UserId)
	}
	log.Infow("manual engagement recorded", "assignmentId", a.AssignmentId, "mentorId", p.UserId)
	return a, nil
}

func (s *AssignmentService) Get(ctx context.Context, p model.Principal, assignmentId string) (*model.Assignment, error) {
	return s.loadAssignment(ctx, p, assignmentId, true)
}

// ListCurrent returns the caller's assignments that are not completed
func (s *AssignmentService) ListCurrent(ctx context.Context, p model.Principal) ([]*model.Assignment, error) {
	return s.list(ctx, p, true)
}

// ListPrevious returns the caller's completed assignments
func (s *AssignmentService) ListPrevious(ctx context.Context, p model.Principal) ([]*model.Assignment, error) {
	return s.list(ctx, p, false)
}

func (s *AssignmentService) list(ctx context.Context, p model.Principal, current bool) ([]*model.Assignment, error) {
	var all []*model.Assignment
	var err error
	switch {
	case p.IsMentor():
		all, err = s.repos.Assignment.ListByMentor(ctx, p.UserId)
	case p.IsStartup():
		all, err = s.repos.Assignment.ListByStartup(ctx, p.UserId)
	default:
		return nil, errs.Validation("unknown principal role %q", p.Role)
	}
	if err != nil {
		return nil, storeErr(err, "list assignments", "userId", p.UserId)
	}
	out := make([]*model.Assignment, 0, len(all))
	for _, a := range all {
		if a.Status.IsCurrent() == current {
			out = append(out, a)
		}
	}
	return out, nil
}
