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
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/config"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/event"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/safe"
)

// WebhookChannel forwards domain events to an HTTP endpoint
type WebhookChannel struct {
	webhookURL string
	method     string
	timeout    time.Duration
	client     *resty.Client
}

// NewWebhookChannel creates a webhook channel, an empty url disables delivery
func NewWebhookChannel(conf config.NotifyConfig) *WebhookChannel {
	conf.SetDefaults()
	client := resty.New().
		SetTimeout(conf.TimeoutDuration()).
		SetRetryCount(conf.Retry).
		SetRetryWaitTime(200 * time.Millisecond).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})
	return &WebhookChannel{
		webhookURL: conf.WebhookURL,
		method:     conf.Method,
		timeout:    conf.TimeoutDuration(),
		client:     client,
	}
}

func (c *WebhookChannel) Enabled() bool {
	return c != nil && c.webhookURL != ""
}

// Handle implements event.EventHandler, delivery runs in the background
func (c *WebhookChannel) Handle(e event.Event) {
	if !c.Enabled() {
		log.Debugw("event", "name", e.EventName(), "type", e.EventType())
		return
	}
	safe.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout*time.Duration(c.client.RetryCount+1))
		defer cancel()
		if err := c.Send(ctx, e); err != nil {
			log.Warnw("deliver event failed", "name", e.EventName(), "error", err)
		}
	})
}

// Send delivers e synchronously
func (c *WebhookChannel) Send(ctx context.Context, e event.Event) error {
	if !c.Enabled() {
		return fmt.Errorf("webhook URL is required")
	}

	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Event-Name", e.EventName()).
		SetBody(payloadOf(e))

	var resp *resty.Response
	var err error
	switch c.method {
	case http.MethodPut:
		resp, err = req.Put(c.webhookURL)
	case http.MethodPatch:
		resp, err = req.Patch(c.webhookURL)
	default:
		resp, err = req.Post(c.webhookURL)
	}
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("webhook request failed with status %d", resp.StatusCode())
	}
	return nil
}

func payloadOf(e event.Event) any {
	if env, ok := e.(event.Envelope); ok {
		return env
	}
	return map[string]string{"name": e.EventName(), "type": e.EventType()}
}

// Register subscribes the channel to every event on bus
func Register(bus *event.EventBus, c *WebhookChannel) {
	bus.RegisterHandler(event.Wildcard, c)
	if c.Enabled() {
		log.Infow("event webhook registered", "url", c.webhookURL, "method", c.method)
	}
}
