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
	"fmt"
	"slices"
	"sync"
)

// ErrInvalidTransition is matched by every TransitionError
var ErrInvalidTransition = errors.New("invalid transition")

// TransitionError reports a transition missing from the graph.
type TransitionError[T comparable] struct {
	From T
	To   T
}

func (e *TransitionError[T]) Error() string {
	return fmt.Sprintf("invalid transition: %v → %v", e.From, e.To)
}

func (e *TransitionError[T]) Is(target error) bool {
	return target == ErrInvalidTransition
}

// TransitionHook is triggered after a transition has been validated.
type TransitionHook[T comparable] func(from, to T) error

// TransitionValidator validates whether a state transition is allowed.
type TransitionValidator[T comparable] func(from, to T) error

// StateMachine is a generic transition graph. It holds no current state of its
// own, so one instance can guard any number of records of the same kind.
// It is safe for concurrent use.
type StateMachine[T comparable] struct {
	mu sync.RWMutex

	// from state -> list of valid next states
	validTransitions map[T][]T

	onTransition []TransitionHook[T]
	validators   []TransitionValidator[T]
}

// New creates a new StateMachine instance.
func New[T comparable]() *StateMachine[T] {
	return &StateMachine[T]{
		validTransitions: make(map[T][]T),
	}
}

// Allow registers valid state transitions from a source state.
func (sm *StateMachine[T]) Allow(from T, to ...T) *StateMachine[T] {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	for _, target := range to {
		if !slices.Contains(sm.validTransitions[from], target) {
			sm.validTransitions[from] = append(sm.validTransitions[from], target)
		}
	}
	return sm
}

// CanTransition checks if a transition from one state to another is valid.
func (sm *StateMachine[T]) CanTransition(from, to T) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return slices.Contains(sm.validTransitions[from], to)
}

// GetValidNextStates returns all valid next states from the given state.
func (sm *StateMachine[T]) GetValidNextStates(from T) []T {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return slices.Clone(sm.validTransitions[from])
}

// IsTerminal reports whether no transition leaves state.
func (sm *StateMachine[T]) IsTerminal(state T) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.validTransitions[state]) == 0
}

// GetAllStates returns every state that appears in the graph.
func (sm *StateMachine[T]) GetAllStates() []T {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	seen := make(map[T]bool)
	states := make([]T, 0)
	add := func(s T) {
		if !seen[s] {
			seen[s] = true
			states = append(states, s)
		}
	}
	for from, tos := range sm.validTransitions {
		add(from)
		for _, to := range tos {
			add(to)
		}
	}
	return states
}

// OnTransition registers a hook that is called during any state transition.
func (sm *StateMachine[T]) OnTransition(h TransitionHook[T]) *StateMachine[T] {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.onTransition = append(sm.onTransition, h)
	return sm
}

// AddValidator adds a validator that checks if a transition is allowed.
func (sm *StateMachine[T]) AddValidator(v TransitionValidator[T]) *StateMachine[T] {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.validators = append(sm.validators, v)
	return sm
}

// Transition validates from → to against the graph and validators, then runs hooks.
func (sm *StateMachine[T]) Transition(from, to T) error {
	sm.mu.RLock()
	allowed := slices.Contains(sm.validTransitions[from], to)
	validators := slices.Clone(sm.validators)
	hooks := slices.Clone(sm.onTransition)
	sm.mu.RUnlock()

	if !allowed {
		return &TransitionError[T]{From: from, To: to}
	}
	for _, validator := range validators {
		if err := validator(from, to); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}
	for _, h := range hooks {
		if err := h(from, to); err != nil {
			return fmt.Errorf("transition hook failed: %w", err)
		}
	}
	return nil
}
