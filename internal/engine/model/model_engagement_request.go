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

import "time"

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestRejected  RequestStatus = "rejected"
	RequestCancelled RequestStatus = "cancelled"
)

// EngagementRequest a startup's request to be mentored, immutable once it leaves pending
type EngagementRequest struct {
	BaseModel
	RequestId              string        `gorm:"column:request_id;size:64;uniqueIndex" json:"requestId"`
	StartupId              string        `gorm:"column:startup_id;size:64;index:idx_request_pair" json:"startupId"`
	StartupName            string        `gorm:"column:startup_name" json:"startupName"`
	MentorId               string        `gorm:"column:mentor_id;size:64;index:idx_request_pair" json:"mentorId"`
	Status                 RequestStatus `gorm:"column:status;size:32" json:"status"`
	FeeType                FeeType       `gorm:"column:fee_type;size:32" json:"feeType"`
	ProposedFeeAmount      *float64      `gorm:"column:proposed_fee_amount" json:"proposedFeeAmount,omitempty"`
	ProposedEquityAmount   *float64      `gorm:"column:proposed_equity_amount" json:"proposedEquityAmount,omitempty"`
	ProposedEsopPercentage *float64      `gorm:"column:proposed_esop_percentage" json:"proposedEsopPercentage,omitempty"`
	FeeCurrency            string        `gorm:"column:fee_currency;size:8" json:"feeCurrency"`
	AgreementUrl           *string       `gorm:"column:agreement_url" json:"agreementUrl,omitempty"`
	Message                *string       `gorm:"column:message" json:"message,omitempty"`
	RequestedAt            time.Time     `gorm:"column:requested_at" json:"requestedAt"`
	RespondedAt            *time.Time    `gorm:"column:responded_at" json:"respondedAt,omitempty"`
	AssignmentId           *string       `gorm:"column:assignment_id;size:64" json:"assignmentId,omitempty"`
	// PendingKey is set only while pending, the unique index over it allows one open request per pair
	PendingKey *string `gorm:"column:pending_key;size:140;uniqueIndex" json:"-"`
}

func (EngagementRequest) TableName() string {
	return "t_engagement_request"
}

// PendingKey builds the uniqueness key of an open request between a startup and a mentor
func PendingKey(startupId, mentorId string) string {
	return startupId + "|" + mentorId
}

// Terms rebuilds the proposed terms
func (r *EngagementRequest) Terms() Terms {
	t := Terms{FeeType: r.FeeType, Currency: r.FeeCurrency}
	if r.ProposedFeeAmount != nil {
		t.FeeAmount = *r.ProposedFeeAmount
	}
	if r.ProposedEquityAmount != nil {
		t.EquityAmount = *r.ProposedEquityAmount
	}
	if r.ProposedEsopPercentage != nil {
		t.EsopPercentage = *r.ProposedEsopPercentage
	}
	if r.AgreementUrl != nil {
		t.AgreementUrl = *r.AgreementUrl
	}
	if r.Message != nil {
		t.Message = *r.Message
	}
	return t
}
