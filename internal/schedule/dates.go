package schedule

import "time"

// DatePolicy reports whether a calendar date should produce no commits. It
// must be pure: the same date always yields the same answer.
type DatePolicy func(date time.Time) bool

// SkipNone keeps every date.
func SkipNone(time.Time) bool {
	return false
}

// SkipWeekends skips Saturdays and Sundays.
func SkipWeekends(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// SkipDates skips an explicit list of calendar dates, ignoring time of day.
func SkipDates(dates []time.Time) DatePolicy {
	skip := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		skip[d.Format("2006-01-02")] = struct{}{}
	}
	return func(date time.Time) bool {
		_, ok := skip[date.Format("2006-01-02")]
		return ok
	}
}

// AnyOf skips a date when any of the given policies does.
func AnyOf(policies ...DatePolicy) DatePolicy {
	return func(date time.Time) bool {
		for _, p := range policies {
			if p(date) {
				return true
			}
		}
		return false
	}
}
