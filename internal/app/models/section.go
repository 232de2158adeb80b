package models

// Section represents one offering of a class in a given year and semester,
// scheduled into a room. Belongs to exactly one Class.
type Section struct {
	ID       int64  `json:"sid" db:"sid"`
	ClassID  int64  `json:"classid" db:"classid"`
	RoomID   int64  `json:"roomid" db:"roomid"`
	Semester string `json:"semester" db:"semester"`
	Year     int    `json:"years" db:"years"`
	Capacity int    `json:"capacity" db:"capacity"`

	// Relations (populated when needed)
	Class *Class `json:"class,omitempty"`
}

// SectionClass is a section row joined to its class, in section-scan order.
// Report aggregations group these by class so ties keep scan order.
type SectionClass struct {
	SectionID int64
	Class     Class
}
