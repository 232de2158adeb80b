package models

import "github.com/segfault/coursecatalog/internal/pkg/validation"

// Meeting represents a weekly meeting pattern for a class: which days it
// meets and the time-of-day window. Times are kept in canonical HH:MM:SS
// string form end to end so a stored "09:00:00" reads back byte-identical.
type Meeting struct {
	ID        int64  `json:"mid" db:"mid"`
	Code      string `json:"ccode" db:"ccode"`
	StartTime string `json:"starttime" db:"starttime"`
	EndTime   string `json:"endtime" db:"endtime"`
	Days      string `json:"cdays" db:"cdays"`
}

// NaturalKey returns the canonical (ccode, starttime, endtime, cdays) key.
// No two meeting rows may share it.
func (m *Meeting) NaturalKey() validation.Key {
	return validation.KeyOf(m.Code, m.StartTime, m.EndTime, m.Days)
}

// MeetingSection is a meeting row joined to one of the sections of its
// class, in (mid, sid) scan order.
type MeetingSection struct {
	Meeting   Meeting
	SectionID int64
}
