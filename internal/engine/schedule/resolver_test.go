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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func mustClock(t *testing.T, s string) Clock {
	t.Helper()
	c, err := ParseClock(s)
	require.NoError(t, err)
	return c
}

func weekly(t *testing.T, day time.Weekday, start, end string) Window {
	return Window{Recurring: true, DayOfWeek: day, Start: mustClock(t, start), End: mustClock(t, end), Location: time.UTC}
}

func TestParseDateAndClock(t *testing.T) {
	d := mustDate(t, "2025-06-02")
	assert.Equal(t, time.Monday, d.Weekday())
	assert.Equal(t, "2025-06-02", d.String())
	assert.Equal(t, "2025-06-09", d.AddDays(7).String())
	assert.Equal(t, 7, d.DaysUntil(d.AddDays(7)))

	_, err := ParseDate("2025-13-01")
	assert.Error(t, err)

	c := mustClock(t, "09:05")
	assert.Equal(t, 9*60+5, int(c))
	assert.Equal(t, "09:05", c.String())
	assert.Equal(t, "14:30", mustClock(t, "14:30:00").String())

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}

func TestNextOccurrence_WeekdayProperty(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for day := time.Sunday; day <= time.Saturday; day++ {
		w := weekly(t, day, "10:00", "11:00")
		for offset := 0; offset < 14*24; offset += 5 {
			asOf := base.Add(time.Duration(offset) * time.Hour)
			got, ok := NextOccurrence(w, asOf)
			require.True(t, ok)
			assert.Equal(t, day, got.Weekday())
			assert.False(t, got.Before(DateOf(asOf)), "asOf %s got %s", asOf, got)
			assert.Less(t, DateOf(asOf).DaysUntil(got), 8)
		}
	}
}

func TestNextOccurrence_RollsOverWhenStarted(t *testing.T) {
	w := weekly(t, time.Monday, "14:00", "15:00")

	got, ok := NextOccurrence(w, time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "2025-06-09", got.String())

	got, ok = NextOccurrence(w, time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "2025-06-09", got.String())

	got, ok = NextOccurrence(w, time.Date(2025, 6, 2, 13, 59, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "2025-06-02", got.String())
}

func TestNextOccurrence_Timezone(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	w := weekly(t, time.Monday, "09:00", "10:00")
	w.Location = kolkata

	// Sunday 22:00 UTC is Monday 03:30 in Kolkata
	got, ok := NextOccurrence(w, time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "2025-06-02", got.String())

	// Monday 04:00 UTC is 09:30 in Kolkata, window already started
	got, ok = NextOccurrence(w, time.Date(2025, 6, 2, 4, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "2025-06-09", got.String())
}

func TestNextOccurrence_Bounds(t *testing.T) {
	w := weekly(t, time.Monday, "14:00", "15:00")
	until := mustDate(t, "2025-06-05")
	w.ValidUntil = &until

	_, ok := NextOccurrence(w, time.Date(2025, 6, 2, 16, 0, 0, 0, time.UTC))
	assert.False(t, ok)

	from := mustDate(t, "2025-06-16")
	w.ValidUntil = nil
	w.ValidFrom = &from
	_, ok = NextOccurrence(w, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestNextOccurrence_OneTime(t *testing.T) {
	w := Window{SpecificDate: mustDate(t, "2025-06-10"), Start: mustClock(t, "10:00"), End: mustClock(t, "11:00")}

	got, ok := NextOccurrence(w, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "2025-06-10", got.String())

	_, ok = NextOccurrence(w, time.Date(2025, 6, 10, 9, 59, 0, 0, time.UTC))
	assert.True(t, ok)

	_, ok = NextOccurrence(w, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC))
	assert.False(t, ok)

	_, ok = NextOccurrence(w, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestOccurrencesBetween(t *testing.T) {
	w := weekly(t, time.Wednesday, "10:00", "11:00")
	got := OccurrencesBetween(w, mustDate(t, "2025-06-01"), mustDate(t, "2025-06-30"))
	var labels []string
	for _, d := range got {
		labels = append(labels, d.String())
	}
	assert.Equal(t, []string{"2025-06-04", "2025-06-11", "2025-06-18", "2025-06-25"}, labels)

	until := mustDate(t, "2025-06-15")
	w.ValidUntil = &until
	assert.Len(t, OccurrencesBetween(w, mustDate(t, "2025-06-01"), mustDate(t, "2025-06-30")), 2)

	one := Window{SpecificDate: mustDate(t, "2025-06-20"), Start: mustClock(t, "10:00"), End: mustClock(t, "11:00")}
	assert.Len(t, OccurrencesBetween(one, mustDate(t, "2025-06-01"), mustDate(t, "2025-06-30")), 1)
	assert.Empty(t, OccurrencesBetween(one, mustDate(t, "2025-06-21"), mustDate(t, "2025-06-30")))
	assert.Empty(t, OccurrencesBetween(one, mustDate(t, "2025-06-30"), mustDate(t, "2025-06-01")))
}

func TestValidOn(t *testing.T) {
	w := weekly(t, time.Monday, "14:00", "15:00")
	assert.True(t, ValidOn(w, mustDate(t, "2025-06-02")))
	assert.False(t, ValidOn(w, mustDate(t, "2025-06-03")))

	one := Window{SpecificDate: mustDate(t, "2025-06-20"), Start: mustClock(t, "10:00"), End: mustClock(t, "11:00")}
	assert.True(t, ValidOn(one, mustDate(t, "2025-06-20")))
	assert.False(t, ValidOn(one, mustDate(t, "2025-06-27")))
}

func TestWindow_Validate(t *testing.T) {
	from, until := mustDate(t, "2025-07-01"), mustDate(t, "2025-06-01")
	tests := []struct {
		name    string
		w       Window
		wantErr bool
	}{
		{name: "ok weekly", w: weekly(t, time.Friday, "09:00", "10:00")},
		{name: "start after end", w: weekly(t, time.Friday, "11:00", "10:00"), wantErr: true},
		{name: "equal times", w: weekly(t, time.Friday, "10:00", "10:00"), wantErr: true},
		{name: "bad weekday", w: Window{Recurring: true, DayOfWeek: 7, Start: 60, End: 120}, wantErr: true},
		{name: "recurring with date", w: Window{Recurring: true, SpecificDate: from, Start: 60, End: 120}, wantErr: true},
		{name: "one-time without date", w: Window{Start: 60, End: 120}, wantErr: true},
		{name: "inverted bounds", w: Window{Recurring: true, Start: 60, End: 120, ValidFrom: &from, ValidUntil: &until}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.w.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIsPast(t *testing.T) {
	w := weekly(t, time.Monday, "14:00", "15:00")
	d := mustDate(t, "2025-06-02")
	assert.True(t, IsPast(w, d, time.Date(2025, 6, 2, 14, 1, 0, 0, time.UTC)))
	assert.False(t, IsPast(w, d, time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Hour, w.Length())
}
