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

package notify

import (
	"github.com/google/wire"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/config"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/event"
)

var ProviderSet = wire.NewSet(ProvideEventBus)

// ProvideEventBus creates the event bus with the webhook channel attached
func ProvideEventBus(conf config.NotifyConfig) *event.EventBus {
	bus := event.NewEventBus()
	Register(bus, NewWebhookChannel(conf))
	return bus
}
