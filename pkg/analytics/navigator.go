package analytics

import (
	"errors"
	"time"

	"github.com/athlion/athlion/pkg/session"
)

// Direction of week navigation.
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

var ErrUnknownDirection = errors.New("direction must be next or prev")

// InitialWindow picks the starting week for an athlete: the week containing
// the most recent session date among the given recent sessions, or the week
// containing today when none exist.
func InitialWindow(recentSessions []session.TrainingSession, today time.Time) WeekWindow {
	var latest time.Time
	for _, s := range recentSessions {
		day := DateOf(s.Date)
		if day.After(latest) {
			latest = day
		}
	}
	if latest.IsZero() {
		return WindowContaining(today)
	}
	return WindowContaining(latest)
}

// NextWindow shifts the window forward by 7 days, but only when the
// destination week contains at least one of the given sessions. An empty
// destination keeps the current window, so navigation can never strand the
// user in an empty future week.
func NextWindow(current WeekWindow, destinationSessions []session.TrainingSession) WeekWindow {
	current.mustBeValid()
	candidate := current.Next()
	for _, s := range destinationSessions {
		if candidate.Contains(s.Date) {
			return candidate
		}
	}
	return current
}

// PrevWindow shifts the window backward by 7 days unconditionally: past weeks
// are real, known-empty history and always navigable.
func PrevWindow(current WeekWindow) WeekWindow {
	current.mustBeValid()
	return current.Prev()
}
