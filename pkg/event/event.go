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

package event

import "time"

type Event interface {
	EventName() string
	EventType() string
}

type EventHandler interface {
	Handle(event Event)
}

// HandlerFunc adapts a plain function to EventHandler
type HandlerFunc func(event Event)

func (f HandlerFunc) Handle(event Event) {
	f(event)
}

// Envelope is a ready-made Event for callers that do not need their own type
type Envelope struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurredAt"`
	Payload    map[string]any `json:"payload,omitempty"`
}

func (e Envelope) EventName() string {
	return e.Name
}

func (e Envelope) EventType() string {
	return e.Type
}
