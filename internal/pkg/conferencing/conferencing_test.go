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
	"strings"
	"testing"

	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/config"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomLinkProvider(t *testing.T) {
	p := NewRoomLinkProvider(config.ConferencingConfig{BaseURL: "https://meet.test/room/"})
	sess := &model.ScheduledSession{SessionId: "s1"}

	first, err := p.RoomLink(context.Background(), sess)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first, "https://meet.test/room/"))
	assert.NotContains(t, strings.TrimPrefix(first, "https://meet.test/room/"), "/")

	second, err := p.RoomLink(context.Background(), sess)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestRoomLinkProvider_Errors(t *testing.T) {
	p := NewRoomLinkProvider(config.ConferencingConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.RoomLink(ctx, &model.ScheduledSession{SessionId: "s1"})
	assert.Error(t, err)

	p.newCode = func() string { return "" }
	_, err = p.RoomLink(context.Background(), &model.ScheduledSession{SessionId: "s1"})
	assert.Error(t, err)
}
