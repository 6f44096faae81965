package domain

import (
	"strings"
	"time"
)

// Session represents one continuous stretch of a player being engaged in an
// activity (domain entity). A session opens when the activity first appears
// in the player's presence and closes when it disappears. Closed sessions
// are never reopened; seeing the activity again creates a fresh record.
type Session struct {
	ID          string
	PlayerID    string
	DisplayName string
	Activity    string
	StartedAt   time.Time
	Duration    time.Duration
	Active      bool
}

// DurationAt returns the effective elapsed time of the session at the given
// instant. Closed sessions report their banked duration; active sessions add
// the live stretch since StartedAt on top of it.
func (s Session) DurationAt(now time.Time) time.Duration {
	if !s.Active {
		return s.Duration
	}
	return s.Duration + now.Sub(s.StartedAt)
}

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Empty reports whether the interval covers no time at all.
func (iv Interval) Empty() bool {
	return !iv.End.After(iv.Start)
}

// Interval returns the time range the session covers at the given instant.
// Active sessions extend to now; closed sessions end at StartedAt plus the
// banked duration.
func (s Session) Interval(now time.Time) Interval {
	end := now
	if !s.Active {
		end = s.StartedAt.Add(s.Duration)
	}
	return Interval{Start: s.StartedAt, End: end}
}

// NormalizeActivity canonicalizes an activity label for matching and
// storage. Surrounding whitespace is trimmed; an empty result means the
// observation carries no usable label and must be ignored.
func NormalizeActivity(label string) string {
	return strings.TrimSpace(label)
}
