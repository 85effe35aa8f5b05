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

package statemachine

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type light string

const (
	red    light = "red"
	green  light = "green"
	yellow light = "yellow"
	off    light = "off"
)

func newLights() *StateMachine[light] {
	return New[light]().
		Allow(red, green, off).
		Allow(green, yellow, off).
		Allow(yellow, red, off)
}

func TestStateMachine_CanTransition(t *testing.T) {
	sm := newLights()

	tests := []struct {
		from, to light
		want     bool
	}{
		{red, green, true},
		{green, yellow, true},
		{yellow, red, true},
		{red, yellow, false},
		{off, red, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sm.CanTransition(tt.from, tt.to), "%s → %s", tt.from, tt.to)
	}
	assert.True(t, sm.IsTerminal(off))
	assert.False(t, sm.IsTerminal(red))
	assert.ElementsMatch(t, []light{green, off}, sm.GetValidNextStates(red))
	assert.ElementsMatch(t, []light{red, green, yellow, off}, sm.GetAllStates())
}

func TestStateMachine_Transition(t *testing.T) {
	sm := newLights()

	require.NoError(t, sm.Transition(red, green))

	err := sm.Transition(red, yellow)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	var te *TransitionError[light]
	require.True(t, errors.As(err, &te))
	assert.Equal(t, red, te.From)
	assert.Equal(t, yellow, te.To)
}

func TestStateMachine_ValidatorsAndHooks(t *testing.T) {
	blocked := errors.New("maintenance")
	var seen [][2]light

	sm := newLights().
		AddValidator(func(from, to light) error {
			if to == off {
				return blocked
			}
			return nil
		}).
		OnTransition(func(from, to light) error {
			seen = append(seen, [2]light{from, to})
			return nil
		})

	assert.ErrorIs(t, sm.Transition(green, off), blocked)
	require.NoError(t, sm.Transition(green, yellow))
	assert.Equal(t, [][2]light{{green, yellow}}, seen)
}

func TestStateMachine_Concurrent(t *testing.T) {
	sm := newLights()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = sm.Transition(red, green)
			_ = sm.CanTransition(green, yellow)
		}()
	}
	wg.Wait()
}
