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

package service

import (
	"errors"
	"time"

	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/errs"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/repo"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/event"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/metrics"
	"go.opentelemetry.io/otel"
)

/**
 * @file: service.go
 * @description: shared service dependencies
 */

var tracer = otel.Tracer("github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/service")

// Publisher is satisfied by *event.EventBus
type Publisher interface {
	Publish(event event.Event)
}

// base is shared by every service of one Services instance
type base struct {
	repos   *repo.Repositories
	bus     Publisher
	metrics *metrics.Mentorship
	now     func() time.Time
}

func (b *base) publish(e event.Event) {
	if b.bus == nil {
		return
	}
	b.bus.Publish(e)
}

// storeErr converts a repository error into a domain error
func storeErr(err error, op string, keysAndValues ...any) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return errs.NotFound("%s: not found", op)
	case errors.Is(err, repo.ErrStaleState):
		return errs.InvalidState("%s: record changed concurrently, reload and retry", op)
	case errors.Is(err, repo.ErrDuplicateBooking):
		return errs.SlotAlreadyBooked("slot already booked")
	case errors.Is(err, repo.ErrDuplicatePending):
		return errs.InvalidState("a pending request to this mentor already exists")
	}
	log.Errorw(op+" failed", append(keysAndValues, "error", err)...)
	return errs.Internal(err, "%s failed", op)
}
