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

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type TestEvent struct {
	Name   string
	Detail Detail
}

type Detail struct {
	Type string
	Data string
}

func (e TestEvent) EventName() string {
	return e.Name
}

func (e TestEvent) EventType() string {
	return e.Detail.Type
}

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Handle(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func TestEventBus_Publish(t *testing.T) {
	bus := NewEventBus()
	named := &recorder{}
	all := &recorder{}
	bus.RegisterHandler("test", named)
	bus.RegisterHandler(Wildcard, all)

	bus.Publish(TestEvent{Name: "test", Detail: Detail{Type: "t", Data: "d"}})
	bus.Publish(TestEvent{Name: "other"})

	assert.Len(t, named.events, 1)
	assert.Len(t, all.events, 2)
	assert.Equal(t, "t", named.events[0].EventType())
}

func TestEventBus_PanickingHandler(t *testing.T) {
	bus := NewEventBus()
	after := &recorder{}
	bus.RegisterHandler("boom", HandlerFunc(func(Event) { panic("handler failed") }))
	bus.RegisterHandler("boom", after)

	assert.NotPanics(t, func() {
		bus.Publish(Envelope{Name: "boom", Type: "test"})
	})
	assert.Len(t, after.events, 1)
}
