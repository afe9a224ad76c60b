package schedule

import (
	"fmt"
	"time"
)

// Window bounds the time of day commits may land in, as offsets from
// midnight. Start must come before End.
type Window struct {
	Start time.Duration
	End   time.Duration
}

// ParseWindow parses "HH:MM" start and end times into a Window.
func ParseWindow(start, end string) (Window, error) {
	s, err := parseClock(start)
	if err != nil {
		return Window{}, err
	}
	e, err := parseClock(end)
	if err != nil {
		return Window{}, err
	}
	w := Window{Start: s, End: e}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Validate checks the start < end invariant.
func (w Window) Validate() error {
	if w.Start < 0 || w.End > 24*time.Hour {
		return fmt.Errorf("window %s-%s is outside the day", formatClock(w.Start), formatClock(w.End))
	}
	if w.Start >= w.End {
		return fmt.Errorf("window start %s is not before end %s", formatClock(w.Start), formatClock(w.End))
	}
	return nil
}

// Duration is the length of the working day.
func (w Window) Duration() time.Duration {
	return w.End - w.Start
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func formatClock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
