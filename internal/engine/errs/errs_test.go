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

package errs

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	err := GateNotCleared("assignment %s is pending_payment", "a1")
	assert.True(t, errors.Is(err, ErrGateNotCleared))
	assert.True(t, errors.Is(err, ErrInvalidState))
	assert.False(t, errors.Is(err, ErrValidation))

	assert.False(t, errors.Is(InvalidState("x"), ErrGateNotCleared))
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("book session: %w", SlotAlreadyBooked("taken"))
	assert.Equal(t, KindSlotAlreadyBooked, KindOf(wrapped))
	assert.True(t, errors.Is(wrapped, ErrSlotAlreadyBooked))
	assert.Equal(t, KindInternal, KindOf(io.EOF))
	assert.Equal(t, "taken", Message(wrapped))
	assert.Equal(t, "EOF", Message(io.EOF))
}

func TestInternal_Unwrap(t *testing.T) {
	err := Internal(io.ErrUnexpectedEOF, "load slot")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, "internal: load slot: unexpected EOF", err.Error())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "precondition_failed", KindPreconditionFailed.String())
	assert.Equal(t, "internal", Kind(99).String())
}
