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

import (
	"strings"
	"time"

	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/event"
)

// event names published on the bus
const (
	EventRequestCreated   = "request.created"
	EventRequestAccepted  = "request.accepted"
	EventRequestRejected  = "request.rejected"
	EventRequestCancelled = "request.cancelled"

	EventAssignmentStatusChanged = "assignment.status_changed"

	EventAgreementUploaded = "agreement.uploaded"
	EventAgreementSigned   = "agreement.signed"
	EventAgreementApproved = "agreement.approved"
	EventAgreementRejected = "agreement.rejected"

	EventSessionBooked      = "session.booked"
	EventSessionCancelled   = "session.cancelled"
	EventSessionCompleted   = "session.completed"
	EventSessionReminderDue = "session.reminder_due"
)

// NewEvent builds an envelope whose type is the name prefix, e.g. "session"
func NewEvent(name string, payload map[string]any) event.Envelope {
	typ, _, _ := strings.Cut(name, ".")
	return event.Envelope{
		Name:       name,
		Type:       typ,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}
