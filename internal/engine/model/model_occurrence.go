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

// SlotOccurrence a concrete occurrence of a slot, labelled with its booking state
type SlotOccurrence struct {
	SlotId      string `json:"slotId"`
	MentorId    string `json:"mentorId"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Timezone    string `json:"timezone"`
	IsRecurring bool   `json:"isRecurring"`
	IsBooked    bool   `json:"isBooked"`
	BookedBy    string `json:"bookedBy,omitempty"`
}
