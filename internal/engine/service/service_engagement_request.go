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
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/repo"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/id"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/statemachine"
)

// requestLifecycle pending is the only state a request can leave
var requestLifecycle = statemachine.New[model.RequestStatus]().
	Allow(model.RequestPending, model.RequestAccepted, model.RequestRejected, model.RequestCancelled)

type EngagementRequestService struct {
	*base
	engagement config.EngagementConfig
	agreement  config.AgreementConfig
}

func NewEngagementRequestService(b *base, engagement config.EngagementConfig, agreement config.AgreementConfig) *EngagementRequestService {
	return &EngagementRequestService{base: b, engagement: engagement, agreement: agreement}
}

// ValidateTerms checks t against its fee type and fills the default currency
func ValidateTerms(t *model.Terms, defaultCurrency string) error {
	if !t.FeeType.Valid() {
		return errs.Validation("unknown fee type %q", t.FeeType)
	}
	if t.FeeAmount < 0 || t.EquityAmount < 0 || t.EsopPercentage < 0 {
		return errs.Validation("amounts must not be negative")
	}
	switch t.FeeType {
	case model.FeeTypeFees:
		if t.FeeAmount <= 0 {
			return errs.Validation("fees engagement requires a fee amount")
		}
	case model.FeeTypeEquity:
		if t.EquityAmount <= 0 && t.EsopPercentage <= 0 {
			return errs.Validation("equity engagement requires an equity amount or esop percentage")
		}
	case model.FeeTypeHybrid:
		if t.FeeAmount <= 0 || (t.EquityAmount <= 0 && t.EsopPercentage <= 0) {
			return errs.Validation("hybrid engagement requires a fee amount and an equity component")
		}
	case model.FeeTypeStockOptions:
		if t.EsopPercentage <= 0 || t.EsopPercentage > 100 {
			return errs.Validation("stock options engagement requires an esop percentage in (0, 100]")
		}
	}
	if t.EsopPercentage > 100 {
		return errs.Validation("esop percentage must not exceed 100")
	}
	t.Currency = strings.ToUpper(strings.TrimSpace(t.Currency))
	if t.Currency == "" {
		t.Currency = defaultCurrency
	}
	return nil
}

// CreateRequest a startup asks a mentor for an engagement
func (s *EngagementRequestService) CreateRequest(ctx context.Context, p model.Principal, mentorId string, terms model.Terms) (*model.EngagementRequest, error) {
	if !p.IsStartup() {
		return nil, errs.Validation("only a startup can request an engagement")
	}
	if mentorId == "" {
		return nil, errs.Validation("mentor id is required")
	}
	if mentorId == p.UserId {
		return nil, errs.Validation("cannot request an engagement with yourself")
	}
	if err := ValidateTerms(&terms, s.engagement.DefaultCurrency); err != nil {
		return nil, err
	}

	_, err := s.repos.Request.FindPending(ctx, p.UserId, mentorId)
	switch {
	case err == nil:
		return nil, errs.InvalidState("a pending request to this mentor already exists")
	case !errors.Is(err, repo.ErrNotFound):
		return nil, storeErr(err, "find pending request", "startupId", p.UserId, "mentorId", mentorId)
	}

	pendingKey := model.PendingKey(p.UserId, mentorId)
	req := &model.EngagementRequest{
		RequestId:   id.GetUUID(),
		StartupId:   p.UserId,
		StartupName: p.DisplayName,
		MentorId:    mentorId,
		Status:      model.RequestPending,
		PendingKey:  &pendingKey,
		FeeType:     terms.FeeType,
		FeeCurrency: terms.Currency,
		RequestedAt: s.now().UTC(),
	}
	if terms.FeeAmount > 0 {
		req.ProposedFeeAmount = &terms.FeeAmount
	}
	if terms.EquityAmount > 0 {
		req.ProposedEquityAmount = &terms.EquityAmount
	}
	if terms.EsopPercentage > 0 {
		req.ProposedEsopPercentage = &terms.EsopPercentage
	}
	if terms.AgreementUrl != "" {
		req.AgreementUrl = &terms.AgreementUrl
	}
	if terms.Message != "" {
		req.Message = &terms.Message
	}

	if err := s.repos.Request.Create(ctx, req); err != nil {
		return nil, storeErr(err, "create request", "startupId", p.UserId, "mentorId", mentorId)
	}
	s.metrics.ObserveRequestAction("created")
	s.publish(model.NewEvent(model.EventRequestCreated, map[string]any{
		"requestId": req.RequestId, "startupId": req.StartupId, "mentorId": req.MentorId,
	}))
	log.Infow("engagement request created", "requestId", req.RequestId, "mentorId", mentorId)
	return req, nil
}

// Accept turns a pending request into an assignment in one transaction
func (s *EngagementRequestService) Accept(ctx context.Context, p model.Principal, requestId string) (*model.Assignment, error) {
	req, err := s.loadForMentor(ctx, p, requestId)
	if err != nil {
		return nil, err
	}
	if err := requestLifecycle.Transition(req.Status, model.RequestAccepted); err != nil {
		return nil, errs.InvalidState("request is %s", req.Status)
	}

	now := s.now().UTC()
	a := &model.Assignment{
		AssignmentId: id.GetUUID(),
		MentorId:     req.MentorId,
		RequestId:    &req.RequestId,
		AssignedAt:   now,
	}
	if err := a.SetParty(model.LinkedStartup{StartupId: req.StartupId, Name: req.StartupName}); err != nil {
		return nil, errs.Internal(err, "set startup party")
	}
	a.ApplyTerms(req.Terms())
	if a.AgreementUrl != nil {
		// an agreement attached to the request counts as its first upload
		a.AgreementStatus = initialAgreementStatus(s.agreement)
	}
	a.Status = model.DeriveAssignmentStatus(a.Gates(), a.PaymentStatus, a.AgreementStatus)

	req.Status = model.RequestAccepted
	req.RespondedAt = &now
	req.PendingKey = nil
	req.AssignmentId = &a.AssignmentId

	err = s.repos.Transaction(ctx, func(tx *repo.Repositories) error {
		if err := tx.Assignment.Create(ctx, a); err != nil {
			return err
		}
		return tx.Request.Respond(ctx, req, model.RequestPending)
	})
	if err != nil {
		return nil, storeErr(err, "accept request", "requestId", requestId)
	}

	s.metrics.ObserveRequestAction("accepted")
	s.publish(model.NewEvent(model.EventRequestAccepted, map[string]any{
		"requestId": req.RequestId, "assignmentId": a.AssignmentId, "status": string(a.Status),
	}))
	log.Infow("engagement request accepted", "requestId", requestId, "assignmentId", a.AssignmentId, "status", a.Status)
	return a, nil
}

// Reject mentor declines a pending request
func (s *EngagementRequestService) Reject(ctx context.Context, p model.Principal, requestId string) (*model.EngagementRequest, error) {
	req, err := s.loadForMentor(ctx, p, requestId)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, req, model.RequestRejected, model.EventRequestRejected)
}

// Cancel startup withdraws its pending request
func (s *EngagementRequestService) Cancel(ctx context.Context, p model.Principal, requestId string) (*model.EngagementRequest, error) {
	req, err := s.loadForStartup(ctx, p, requestId)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, req, model.RequestCancelled, model.EventRequestCancelled)
}

func (s *EngagementRequestService) respond(ctx context.Context, req *model.EngagementRequest, to model.RequestStatus, eventName string) (*model.EngagementRequest, error) {
	from := req.Status
	if err := requestLifecycle.Transition(from, to); err != nil {
		return nil, errs.InvalidState("request is %s", from)
	}
	now := s.now().UTC()
	req.Status = to
	req.RespondedAt = &now
	req.PendingKey = nil
	if err := s.repos.Request.Respond(ctx, req, from); err != nil {
		return nil, storeErr(err, "respond to request", "requestId", req.RequestId)
	}
	s.metrics.ObserveRequestAction(string(to))
	s.publish(model.NewEvent(eventName, map[string]any{
		"requestId": req.RequestId, "startupId": req.StartupId, "mentorId": req.MentorId,
	}))
	return req, nil
}

// Delete removes a cancelled request of the calling startup
func (s *EngagementRequestService) Delete(ctx context.Context, p model.Principal, requestId string) error {
	req, err := s.loadForStartup(ctx, p, requestId)
	if err != nil {
		return err
	}
	if req.Status != model.RequestCancelled {
		return errs.InvalidState("only cancelled requests can be deleted, request is %s", req.Status)
	}
	if err := s.repos.Request.Delete(ctx, requestId); err != nil {
		return storeErr(err, "delete request", "requestId", requestId)
	}
	s.metrics.ObserveRequestAction("deleted")
	return nil
}

func (s *EngagementRequestService) Get(ctx context.Context, p model.Principal, requestId string) (*model.EngagementRequest, error) {
	req, err := s.repos.Request.Get(ctx, requestId)
	if err != nil {
		return nil, storeErr(err, "get request", "requestId", requestId)
	}
	if req.MentorId != p.UserId && req.StartupId != p.UserId {
		return nil, errs.NotFound("request %s not found", requestId)
	}
	return req, nil
}

func (s *EngagementRequestService) ListForMentor(ctx context.Context, p model.Principal) ([]*model.EngagementRequest, error) {
	if !p.IsMentor() {
		return nil, errs.Validation("only a mentor can list received requests")
	}
	out, err := s.repos.Request.ListByMentor(ctx, p.UserId)
	if err != nil {
		return nil, storeErr(err, "list mentor requests", "mentorId", p.UserId)
	}
	return out, nil
}

func (s *EngagementRequestService) ListForStartup(ctx context.Context, p model.Principal) ([]*model.EngagementRequest, error) {
	if !p.IsStartup() {
		return nil, errs.Validation("only a startup can list sent requests")
	}
	out, err := s.repos.Request.ListByStartup(ctx, p.UserId)
	if err != nil {
		return nil, storeErr(err, "list startup requests", "startupId", p.UserId)
	}
	return out, nil
}

func (s *EngagementRequestService) loadForMentor(ctx context.Context, p model.Principal, requestId string) (*model.EngagementRequest, error) {
	req, err := s.repos.Request.Get(ctx, requestId)
	if err != nil {
		return nil, storeErr(err, "get request", "requestId", requestId)
	}
	if !p.IsMentor() || req.MentorId != p.UserId {
		return nil, errs.NotFound("request %s not found", requestId)
	}
	return req, nil
}

func (s *EngagementRequestService) loadForStartup(ctx context.Context, p model.Principal, requestId string) (*model.EngagementRequest, error) {
	req, err := s.repos.Request.Get(ctx, requestId)
	if err != nil {
		return nil, storeErr(err, "get request", "requestId", requestId)
	}
	if !p.IsStartup() || req.StartupId != p.UserId {
		return nil, errs.NotFound("request %s not found", requestId)
	}
	return req, nil
}

func initialAgreementStatus(c config.AgreementConfig) model.AgreementStatus {
	if c.SignatureRequired() {
		return model.AgreementPendingMentorSign
	}
	return model.AgreementPendingMentorApproval
}
