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

package conferencing

import (
	"context"
	"fmt"

	"github.com/google/wire"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/config"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/model"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/service"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/id"
)

var ProviderSet = wire.NewSet(ProvideConferencing)

// RoomLinkProvider hands out one meeting room per session under a fixed base url
type RoomLinkProvider struct {
	baseURL string
	newCode func() string
}

func NewRoomLinkProvider(conf config.ConferencingConfig) *RoomLinkProvider {
	conf.SetDefaults()
	return &RoomLinkProvider{baseURL: conf.BaseURL, newCode: id.ShortId}
}

func (p *RoomLinkProvider) RoomLink(ctx context.Context, session *model.ScheduledSession) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	code := p.newCode()
	if code == "" {
		return "", fmt.Errorf("generate room code for session %s", session.SessionId)
	}
	return p.baseURL + "/" + code, nil
}

func ProvideConferencing(conf config.ConferencingConfig) service.ConferencingProvider {
	return NewRoomLinkProvider(conf)
}
