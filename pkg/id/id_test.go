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

package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUUID(t *testing.T) {
	assert.Len(t, GetUUID(), 36)
	assert.Len(t, GetUUIDWithoutDashes(), 32)
	assert.NotEqual(t, GetUUID(), GetUUID())
}

func TestGetUlid_Sortable(t *testing.T) {
	prev := GetUlid()
	assert.Len(t, prev, 26)
	for i := 0; i < 100; i++ {
		next := GetUlid()
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestGetXid(t *testing.T) {
	tests := []struct {
		name string
	}{
		{name: "generate_xid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetXid()
			assert.Len(t, got, 20)
			assert.NotEqual(t, got, GetXid())
		})
	}
}

func TestShortId(t *testing.T) {
	a, b := ShortId(), ShortId()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
