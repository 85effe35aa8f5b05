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

package model

import "github.com/saeelmomin786/TrackMyStartup-sub006/pkg/statemachine"

// AssignmentLifecycle is the directed graph of assignment statuses
var AssignmentLifecycle = statemachine.New[AssignmentStatus]().
	Allow(AssignmentPendingPaymentAndAgreement,
		AssignmentPendingPayment, AssignmentPendingAgreement, AssignmentReadyForActivation).
	Allow(AssignmentPendingPayment, AssignmentReadyForActivation).
	Allow(AssignmentPendingAgreement, AssignmentReadyForActivation).
	Allow(AssignmentReadyForActivation, AssignmentActive).
	Allow(AssignmentActive, AssignmentCompleted)

// DeriveAssignmentStatus computes the gated status from the gate progress
func DeriveAssignmentStatus(g Gates, pay PaymentStatus, agr AgreementStatus) AssignmentStatus {
	payOK := !g.Payment || pay == PaymentCompleted
	agrOK := !g.Agreement || agr == AgreementApproved
	switch {
	case payOK && agrOK:
		return AssignmentReadyForActivation
	case !payOK && !agrOK:
		return AssignmentPendingPaymentAndAgreement
	case !payOK:
		return AssignmentPendingPayment
	default:
		return AssignmentPendingAgreement
	}
}

// IsGated reports whether the status is still driven by gate progress
func (s AssignmentStatus) IsGated() bool {
	switch s {
	case AssignmentPendingPayment, AssignmentPendingAgreement,
		AssignmentPendingPaymentAndAgreement, AssignmentReadyForActivation:
		return true
	}
	return false
}

// IsCurrent reports whether the assignment belongs to the current list
func (s AssignmentStatus) IsCurrent() bool {
	return s != AssignmentCompleted
}

// Recompute re-derives the gated status. It returns the previous status and
// whether it changed. Non gated assignments are left untouched.
func (a *Assignment) Recompute() (AssignmentStatus, bool, error) {
	from := a.Status
	if !from.IsGated() {
		return from, false, nil
	}
	to := DeriveAssignmentStatus(a.Gates(), a.PaymentStatus, a.AgreementStatus)
	if to == from {
		return from, false, nil
	}
	if err := AssignmentLifecycle.Transition(from, to); err != nil {
		return from, false, err
	}
	a.Status = to
	return from, true, nil
}
