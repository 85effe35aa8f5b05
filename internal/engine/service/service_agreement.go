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
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
)

type AgreementService struct {
	*base
	conf config.AgreementConfig
}

func NewAgreementService(b *base, conf config.AgreementConfig) *AgreementService {
	return &AgreementService{base: b, conf: conf}
}

func (s *AgreementService) loadGated(ctx context.Context, p model.Principal, assignmentId string, allowStartup bool) (*model.Assignment, error) {
	a, err := s.loadAssignment(ctx, p, assignmentId, allowStartup)
	if err != nil {
		return nil, err
	}
	if !a.AgreementRequired {
		return nil, errs.InvalidState("assignment has no agreement gate")
	}
	if !a.Status.IsGated() {
		return nil, errs.InvalidState("assignment is %s", a.Status)
	}
	return a, nil
}

// UploadAgreement startup submits the agreement document
func (s *AgreementService) UploadAgreement(ctx context.Context, p model.Principal, assignmentId, url string) (*model.Assignment, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errs.Validation("agreement url is required")
	}
	if !p.IsStartup() {
		return nil, errs.NotFound("assignment %s not found", assignmentId)
	}
	a, err := s.loadGated(ctx, p, assignmentId, true)
	if err != nil {
		return nil, err
	}
	if a.AgreementStatus != model.AgreementNone {
		return nil, errs.InvalidState("agreement is already %s", a.AgreementStatus)
	}
	a.AgreementUrl = &url
	a.AgreementStatus = initialAgreementStatus(s.conf)
	if err := s.recomputeAndSave(ctx, a); err != nil {
		return nil, err
	}
	s.publish(model.NewEvent(model.EventAgreementUploaded, map[string]any{
		"assignmentId": a.AssignmentId, "mentorId": a.MentorId, "agreementStatus": string(a.AgreementStatus),
	}))
	return a, nil
}

// UploadSignedAgreement mentor returns the signed copy, approving it when configured to
func (s *AgreementService) UploadSignedAgreement(ctx context.Context, p model.Principal, assignmentId, url string) (*model.Assignment, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errs.Validation("signed agreement url is required")
	}
	a, err := s.loadGated(ctx, p, assignmentId, false)
	if err != nil {
		return nil, err
	}
	switch a.AgreementStatus {
	case model.AgreementPendingMentorSign, model.AgreementPendingMentorApproval:
	default:
		return nil, errs.InvalidState("agreement is %q, nothing to sign", a.AgreementStatus)
	}
	a.MentorSignedAgreementUrl = &url
	if s.conf.AutoApprove() {
		a.AgreementStatus = model.AgreementApproved
	}
	if err := s.recomputeAndSave(ctx, a); err != nil {
		return nil, err
	}
	s.publish(model.NewEvent(model.EventAgreementSigned, map[string]any{
		"assignmentId": a.AssignmentId, "agreementStatus": string(a.AgreementStatus),
	}))
	if a.AgreementStatus == model.AgreementApproved {
		s.publish(model.NewEvent(model.EventAgreementApproved, map[string]any{"assignmentId": a.AssignmentId}))
	}
	return a, nil
}

// ApproveAgreement mentor approves the agreement. With a signature step the
// signed copy must be present.
func (s *AgreementService) ApproveAgreement(ctx context.Context, p model.Principal, assignmentId string) (*model.Assignment, error) {
	a, err := s.loadAssignment(ctx, p, assignmentId, false)
	if err != nil {
		return nil, err
	}
	if a.AgreementStatus == model.AgreementApproved {
		return a, nil
	}
	if !a.AgreementRequired || !a.Status.IsGated() {
		return nil, errs.InvalidState("assignment %s has no open agreement gate", assignmentId)
	}
	switch a.AgreementStatus {
	case model.AgreementPendingMentorSign:
		if a.MentorSignedAgreementUrl == nil || *a.MentorSignedAgreementUrl == "" {
			return nil, errs.PreconditionFailed("upload the signed agreement before approving")
		}
	case model.AgreementPendingMentorApproval:
	default:
		return nil, errs.InvalidState("agreement is %q", a.AgreementStatus)
	}
	a.AgreementStatus = model.AgreementApproved
	if err := s.recomputeAndSave(ctx, a); err != nil {
		return nil, err
	}
	s.publish(model.NewEvent(model.EventAgreementApproved, map[string]any{"assignmentId": a.AssignmentId}))
	log.Infow("agreement approved", "assignmentId", assignmentId, "status", a.Status)
	return a, nil
}

// RejectAgreement mentor rejects the agreement, the assignment stays pending
func (s *AgreementService) RejectAgreement(ctx context.Context, p model.Principal, assignmentId, reason string) (*model.Assignment, error) {
	a, err := s.loadGated(ctx, p, assignmentId, false)
	if err != nil {
		return nil, err
	}
	switch a.AgreementStatus {
	case model.AgreementPendingMentorSign, model.AgreementPendingMentorApproval:
	default:
		return nil, errs.InvalidState("agreement is %q, nothing to reject", a.AgreementStatus)
	}
	a.AgreementStatus = model.AgreementRejected
	if reason = strings.TrimSpace(reason); reason != "" {
		a.AgreementRejectionReason = &reason
	}
	if err := s.recomputeAndSave(ctx, a); err != nil {
		return nil, err
	}
	s.publish(model.NewEvent(model.EventAgreementRejected, map[string]any{
		"assignmentId": a.AssignmentId, "reason": reason,
	}))
	return a, nil
}
