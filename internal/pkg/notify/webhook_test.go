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
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/config"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookChannel_Send(t *testing.T) {
	got := make(chan event.Envelope, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "session.booked", r.Header.Get("X-Event-Name"))
		raw, _ := io.ReadAll(r.Body)
		var env event.Envelope
		assert.NoError(t, sonic.Unmarshal(raw, &env))
		got <- env
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewWebhookChannel(config.NotifyConfig{WebhookURL: srv.URL})
	err := c.Send(context.Background(), event.Envelope{
		Name: "session.booked", Type: "session", Payload: map[string]any{"sessionId": "x"},
	})
	require.NoError(t, err)
	env := <-got
	assert.Equal(t, "session", env.Type)
	assert.Equal(t, "x", env.Payload["sessionId"])
}

func TestWebhookChannel_Retry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewWebhookChannel(config.NotifyConfig{WebhookURL: srv.URL, Retry: 2})
	require.NoError(t, c.Send(context.Background(), event.Envelope{Name: "request.created"}))
	assert.Equal(t, int32(2), calls.Load())
}

func TestWebhookChannel_ClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewWebhookChannel(config.NotifyConfig{WebhookURL: srv.URL, Retry: 3})
	assert.Error(t, c.Send(context.Background(), event.Envelope{Name: "request.created"}))
}

func TestWebhookChannel_Disabled(t *testing.T) {
	c := NewWebhookChannel(config.NotifyConfig{})
	assert.False(t, c.Enabled())
	assert.Error(t, c.Send(context.Background(), event.Envelope{Name: "x"}))
	// no panic, nothing delivered
	c.Handle(event.Envelope{Name: "x"})
}

func TestProvideEventBus_Delivers(t *testing.T) {
	got := make(chan string, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.Header.Get("X-Event-Name")
	}))
	defer srv.Close()

	bus := ProvideEventBus(config.NotifyConfig{WebhookURL: srv.URL})
	bus.Publish(event.Envelope{Name: "assignment.status_changed", Type: "assignment"})

	select {
	case name := <-got:
		assert.Equal(t, "assignment.status_changed", name)
	case <-time.After(5 * time.Second):
		t.Fatal("webhook not called")
	}
}
