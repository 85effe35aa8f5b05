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

package safe

import (
	"testing"
	"time"
)

func TestDo(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Do did not recover from panic: %v", r)
		}
	}()

	Do(func() {
		panic("test panic")
	})
}

func TestGo(t *testing.T) {
	done := make(chan bool, 1)
	Go(func() {
		defer func() {
			done <- true
		}()
		panic("test panic in goroutine")
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("goroutine did not finish")
	}
}

func TestGoWith(t *testing.T) {
	got := make(chan int, 1)
	GoWith(func(v int) { got <- v * 2 }, 21)

	select {
	case v := <-got:
		if v != 42 {
			t.Errorf("GoWith() delivered %d, want 42", v)
		}
	case <-time.After(time.Second):
		t.Fatal("goroutine did not finish")
	}
}
