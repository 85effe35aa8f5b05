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

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/schedule"
	"github.com/spf13/cobra"
)

type occurrencesFlags struct {
	day      int
	date     string
	start    string
	end      string
	timezone string
	from     string
	to       string
}

// newOccurrencesCmd prints the dates a slot definition yields within a range
func newOccurrencesCmd() *cobra.Command {
	f := &occurrencesFlags{}
	cmd := &cobra.Command{
		Use:   "occurrences",
		Short: "Preview the occurrence dates of a slot definition",
		Example: "  mentorship-cli occurrences --day 1 --start 10:00 --end 11:00 --from 2030-01-01 --to 2030-01-31\n" +
			"  mentorship-cli occurrences --date 2030-01-09 --start 14:00 --end 15:30 --from 2030-01-01 --to 2030-01-31",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, from, to, err := f.window()
			if err != nil {
				return err
			}
			for _, d := range schedule.OccurrencesBetween(w, from, to) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", d, schedule.StartsAt(w, d).Format("2006-01-02T15:04:05Z07:00"))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&f.day, "day", -1, "day of week for a recurring slot, 0 is Sunday")
	cmd.Flags().StringVar(&f.date, "date", "", "date of a one-time slot, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.start, "start", "", "start time, HH:MM")
	cmd.Flags().StringVar(&f.end, "end", "", "end time, HH:MM")
	cmd.Flags().StringVar(&f.timezone, "tz", "UTC", "IANA timezone of the slot")
	cmd.Flags().StringVar(&f.from, "from", "", "first date of the range, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.to, "to", "", "last date of the range, YYYY-MM-DD")
	return cmd
}

func (f *occurrencesFlags) window() (schedule.Window, schedule.Date, schedule.Date, error) {
	var w schedule.Window
	if (f.day >= 0) == (f.date != "") {
		return w, schedule.Date{}, schedule.Date{}, errors.New("exactly one of --day or --date is required")
	}
	start, err := schedule.ParseClock(f.start)
	if err != nil {
		return w, schedule.Date{}, schedule.Date{}, fmt.Errorf("--start: %w", err)
	}
	end, err := schedule.ParseClock(f.end)
	if err != nil {
		return w, schedule.Date{}, schedule.Date{}, fmt.Errorf("--end: %w", err)
	}
	loc, err := schedule.ParseLocation(f.timezone)
	if err != nil {
		return w, schedule.Date{}, schedule.Date{}, fmt.Errorf("--tz: %w", err)
	}
	from, err := schedule.ParseDate(f.from)
	if err != nil {
		return w, schedule.Date{}, schedule.Date{}, fmt.Errorf("--from: %w", err)
	}
	to, err := schedule.ParseDate(f.to)
	if err != nil {
		return w, schedule.Date{}, schedule.Date{}, fmt.Errorf("--to: %w", err)
	}

	w = schedule.Window{Start: start, End: end, Location: loc}
	if f.day >= 0 {
		w.Recurring = true
		w.DayOfWeek = time.Weekday(f.day)
	} else {
		date, err := schedule.ParseDate(f.date)
		if err != nil {
			return w, schedule.Date{}, schedule.Date{}, fmt.Errorf("--date: %w", err)
		}
		w.SpecificDate = date
	}
	if err := w.Validate(); err != nil {
		return w, schedule.Date{}, schedule.Date{}, err
	}
	return w, from, to, nil
}
