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

package schedule

import (
	"errors"
	"time"
)

// Window is a resolved slot definition
type Window struct {
	Recurring    bool
	DayOfWeek    time.Weekday
	SpecificDate Date
	Start        Clock
	End          Clock
	Location     *time.Location
	ValidFrom    *Date
	ValidUntil   *Date
}

// Validate checks the structural invariants of the window
func (w Window) Validate() error {
	if w.Start >= w.End {
		return errors.New("start time must be before end time")
	}
	if w.Recurring {
		if w.DayOfWeek < time.Sunday || w.DayOfWeek > time.Saturday {
			return errors.New("day of week must be between 0 and 6")
		}
		if !w.SpecificDate.IsZero() {
			return errors.New("recurring slot must not carry a specific date")
		}
	} else if w.SpecificDate.IsZero() {
		return errors.New("one-time slot requires a specific date")
	}
	if w.ValidFrom != nil && w.ValidUntil != nil && w.ValidFrom.After(*w.ValidUntil) {
		return errors.New("valid from must not be after valid until")
	}
	return nil
}

// Length is the bookable length of one occurrence
func (w Window) Length() time.Duration {
	return time.Duration(w.End-w.Start) * time.Minute
}

func (w Window) location() *time.Location {
	if w.Location == nil {
		return time.UTC
	}
	return w.Location
}

func (w Window) inBounds(d Date) bool {
	if w.ValidFrom != nil && d.Before(*w.ValidFrom) {
		return false
	}
	if w.ValidUntil != nil && d.After(*w.ValidUntil) {
		return false
	}
	return true
}

// ValidOn reports whether d is an occurrence date of the window
func ValidOn(w Window, d Date) bool {
	if !w.inBounds(d) {
		return false
	}
	if w.Recurring {
		return d.Weekday() == w.DayOfWeek
	}
	return d == w.SpecificDate
}

// NextOccurrence returns the first occurrence whose start has not passed at asOf.
// asOf is read in the window's timezone.
func NextOccurrence(w Window, asOf time.Time) (Date, bool) {
	local := asOf.In(w.location())
	today := DateOf(local)
	now := ClockOf(local)

	if !w.Recurring {
		d := w.SpecificDate
		if d.Before(today) || (d == today && w.Start <= now) {
			return Date{}, false
		}
		return d, w.inBounds(d)
	}

	delta := (int(w.DayOfWeek) - int(today.Weekday()) + 7) % 7
	if delta == 0 && w.Start <= now {
		delta = 7
	}
	d := today.AddDays(delta)
	if !w.inBounds(d) {
		return Date{}, false
	}
	return d, true
}

// OccurrencesBetween enumerates the occurrence dates in [from, to]
func OccurrencesBetween(w Window, from, to Date) []Date {
	if to.Before(from) {
		return nil
	}
	if w.ValidFrom != nil && from.Before(*w.ValidFrom) {
		from = *w.ValidFrom
	}
	if w.ValidUntil != nil && to.After(*w.ValidUntil) {
		to = *w.ValidUntil
	}
	if to.Before(from) {
		return nil
	}

	if !w.Recurring {
		if w.SpecificDate.Before(from) || w.SpecificDate.After(to) {
			return nil
		}
		return []Date{w.SpecificDate}
	}

	first := from.AddDays((int(w.DayOfWeek) - int(from.Weekday()) + 7) % 7)
	var out []Date
	for d := first; !d.After(to); d = d.AddDays(7) {
		out = append(out, d)
	}
	return out
}

// StartsAt is the instant an occurrence on d begins
func StartsAt(w Window, d Date) time.Time {
	return d.At(w.Start, w.location())
}

// IsPast reports whether the occurrence on d started strictly before now
func IsPast(w Window, d Date, now time.Time) bool {
	return StartsAt(w, d).Before(now)
}
