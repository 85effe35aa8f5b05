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
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
)

type AssignmentStatus string

const (
	AssignmentPendingPayment             AssignmentStatus = "pending_payment"
	AssignmentPendingAgreement           AssignmentStatus = "pending_agreement"
	AssignmentPendingPaymentAndAgreement AssignmentStatus = "pending_payment_and_agreement"
	AssignmentReadyForActivation         AssignmentStatus = "ready_for_activation"
	AssignmentActive                     AssignmentStatus = "active"
	AssignmentCompleted                  AssignmentStatus = "completed"
)

// PaymentStatus empty means no payment has been requested
type PaymentStatus string

const (
	PaymentNone      PaymentStatus = ""
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// AgreementStatus empty means no agreement has been uploaded
type AgreementStatus string

const (
	AgreementNone                  AgreementStatus = ""
	AgreementPendingMentorApproval AgreementStatus = "pending_mentor_approval"
	AgreementPendingMentorSign     AgreementStatus = "pending_mentor_signature"
	AgreementApproved              AgreementStatus = "approved"
	AgreementRejected              AgreementStatus = "rejected"
)

// StartupParty is either a LinkedStartup or a ManualStartup
type StartupParty interface {
	DisplayName() string
	isStartupParty()
}

// LinkedStartup a startup that has an account on the platform
type LinkedStartup struct {
	StartupId string `json:"startupId"`
	Name      string `json:"name"`
}

func (l LinkedStartup) DisplayName() string { return l.Name }
func (LinkedStartup) isStartupParty()       {}

// ManualStartup a startup recorded by hand by its mentor
type ManualStartup struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
	Sector  string `json:"sector,omitempty"`
}

func (m ManualStartup) DisplayName() string { return m.Name }
func (ManualStartup) isStartupParty()       {}

// Assignment an engagement between a mentor and a startup after acceptance
type Assignment struct {
	BaseModel
	AssignmentId             string           `gorm:"column:assignment_id;size:64;uniqueIndex" json:"assignmentId"`
	MentorId                 string           `gorm:"column:mentor_id;size:64;index" json:"mentorId"`
	StartupId                *string          `gorm:"column:startup_id;size:64;index" json:"startupId,omitempty"`
	StartupName              string           `gorm:"column:startup_name" json:"startupName"`
	ManualStartup            datatypes.JSON   `gorm:"column:manual_startup" json:"manualStartup,omitempty"`
	RequestId                *string          `gorm:"column:request_id;size:64" json:"requestId,omitempty"`
	Status                   AssignmentStatus `gorm:"column:status;size:40" json:"status"`
	PaymentRequired          bool             `gorm:"column:payment_required" json:"paymentRequired"`
	AgreementRequired        bool             `gorm:"column:agreement_required" json:"agreementRequired"`
	FeeType                  FeeType          `gorm:"column:fee_type;size:32" json:"feeType"`
	FeeAmount                float64          `gorm:"column:fee_amount" json:"feeAmount"`
	FeeCurrency              string           `gorm:"column:fee_currency;size:8" json:"feeCurrency"`
	EquityAmount             float64          `gorm:"column:equity_amount" json:"equityAmount"`
	EsopPercentage           float64          `gorm:"column:esop_percentage" json:"esopPercentage"`
	EsopValue                float64          `gorm:"column:esop_value" json:"esopValue"`
	PaymentStatus            PaymentStatus    `gorm:"column:payment_status;size:16" json:"paymentStatus,omitempty"`
	AgreementStatus          AgreementStatus  `gorm:"column:agreement_status;size:32" json:"agreementStatus,omitempty"`
	AgreementUrl             *string          `gorm:"column:agreement_url" json:"agreementUrl,omitempty"`
	MentorSignedAgreementUrl *string          `gorm:"column:mentor_signed_agreement_url" json:"mentorSignedAgreementUrl,omitempty"`
	AgreementRejectionReason *string          `gorm:"column:agreement_rejection_reason" json:"agreementRejectionReason,omitempty"`
	AssignedAt               time.Time        `gorm:"column:assigned_at" json:"assignedAt"`
	ActivatedAt              *time.Time       `gorm:"column:activated_at" json:"activatedAt,omitempty"`
	CompletedAt              *time.Time       `gorm:"column:completed_at" json:"completedAt,omitempty"`
	// Revision is bumped on each write, used as an optimistic lock
	Revision int64 `gorm:"column:revision" json:"revision"`
}

func (Assignment) TableName() string {
	return "t_assignment"
}

func (a *Assignment) Gates() Gates {
	return Gates{Payment: a.PaymentRequired, Agreement: a.AgreementRequired}
}

// IsManual reports whether the startup party was recorded by hand
func (a *Assignment) IsManual() bool {
	return a.StartupId == nil || *a.StartupId == ""
}

// BelongsToStartup reports whether userId is the linked startup
func (a *Assignment) BelongsToStartup(userId string) bool {
	return !a.IsManual() && *a.StartupId == userId
}

// Party decodes the startup side of the assignment
func (a *Assignment) Party() (StartupParty, error) {
	if !a.IsManual() {
		return LinkedStartup{StartupId: *a.StartupId, Name: a.StartupName}, nil
	}
	if len(a.ManualStartup) == 0 {
		return nil, errors.New("assignment has no startup party")
	}
	var m ManualStartup
	if err := sonic.Unmarshal(a.ManualStartup, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// SetParty stores p in the matching columns
func (a *Assignment) SetParty(p StartupParty) error {
	switch v := p.(type) {
	case LinkedStartup:
		id := v.StartupId
		a.StartupId = &id
		a.StartupName = v.Name
		a.ManualStartup = nil
	case ManualStartup:
		raw, err := sonic.Marshal(v)
		if err != nil {
			return err
		}
		a.StartupId = nil
		a.StartupName = v.Name
		a.ManualStartup = datatypes.JSON(raw)
	default:
		return errors.New("unknown startup party")
	}
	return nil
}

// ApplyTerms copies the commercial terms and the gates they imply
func (a *Assignment) ApplyTerms(t Terms) {
	a.FeeType = t.FeeType
	a.FeeAmount = t.FeeAmount
	a.FeeCurrency = t.Currency
	a.EquityAmount = t.EquityAmount
	a.EsopPercentage = t.EsopPercentage
	a.EsopValue = t.EquityAmount
	g := GatesFor(t.FeeType, t.FeeAmount)
	a.PaymentRequired = g.Payment
	a.AgreementRequired = g.Agreement
	if g.Payment {
		a.PaymentStatus = PaymentPending
	}
	if t.AgreementUrl != "" && g.Agreement {
		url := t.AgreementUrl
		a.AgreementUrl = &url
	}
}
